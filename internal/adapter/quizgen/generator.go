// Package quizgen generates comprehension quizzes from a submitted summary
// using Claude.
package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"

	"github.com/readify-app/readify-backend/internal/domain"
)

// ErrGeneration means the model produced unusable output. The caller may
// retry; nothing has been persisted.
var ErrGeneration = errors.New("quiz generation failed")

// Config holds the model settings.
type Config struct {
	APIKey    string `yaml:"api_key" env:"ANTHROPIC_API_KEY"`
	Model     string `yaml:"model" env:"QUIZ_MODEL" env-default:"claude-sonnet-4-5"`
	MaxTokens int64  `yaml:"max_tokens" env:"QUIZ_MAX_TOKENS" env-default:"2048"`
}

// Generator produces comprehension quizzes for reading-log summaries.
type Generator struct {
	client anthropic.Client
	cfg    Config
	log    *slog.Logger
}

// New creates a quiz generator backed by the given Anthropic client.
func New(client anthropic.Client, cfg Config, log *slog.Logger) *Generator {
	return &Generator{
		client: client,
		cfg:    cfg,
		log:    log.With("component", "quizgen"),
	}
}

// Generate asks the model for quiz questions about the summary and validates
// the result shape before returning it.
func (g *Generator) Generate(ctx context.Context, title, summary string) ([]domain.QuizQuestion, error) {
	prompt := buildPrompt(title, summary)

	msg, err := g.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(g.cfg.Model),
		MaxTokens: g.cfg.MaxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("llm api call for %q: %w", title, err)
	}

	if len(msg.Content) == 0 {
		return nil, fmt.Errorf("empty response for %q: %w", title, ErrGeneration)
	}

	questions, err := ParseQuestions(msg.Content[0].Text)
	if err != nil {
		g.log.Warn("unusable quiz output", "title", title, "error", err)
		return nil, fmt.Errorf("response for %q: %v: %w", title, err, ErrGeneration)
	}

	return questions, nil
}

// wireQuestion is the shape the prompt asks the model for. The correct
// choice arrives as "answer" on the wire.
type wireQuestion struct {
	Question string   `json:"question"`
	Choices  []string `json:"choices"`
	Answer   int      `json:"answer"`
}

// ParseQuestions extracts and validates the question array from raw model
// output. The model is told to output only JSON, but it sometimes wraps the
// array in prose or a markdown fence.
func ParseQuestions(raw string) ([]domain.QuizQuestion, error) {
	jsonStr, err := extractJSONArray(raw)
	if err != nil {
		return nil, err
	}

	var wire []wireQuestion
	if err := json.Unmarshal([]byte(jsonStr), &wire); err != nil {
		return nil, fmt.Errorf("unmarshal questions: %w", err)
	}

	questions := make([]domain.QuizQuestion, len(wire))
	for i, q := range wire {
		questions[i] = domain.QuizQuestion{
			Question: q.Question,
			Choices:  q.Choices,
			Correct:  q.Answer,
		}
	}

	if err := domain.ValidateQuiz(questions); err != nil {
		return nil, err
	}

	return questions, nil
}

// buildPrompt creates the quiz prompt for one summary.
func buildPrompt(title, summary string) string {
	return fmt.Sprintf(`You are verifying that a student actually read and understood a book.

The student read "%s" and wrote this summary:

%s

Write %d multiple-choice comprehension questions that can only be answered by someone who understood the summary above. Each question has exactly %d answer choices with exactly one correct choice.

Output ONLY a valid JSON array matching this exact schema:
[
  {
    "question": "<the question text>",
    "choices": ["<choice 1>", "<choice 2>", "<choice 3>", "<choice 4>"],
    "answer": <0-based index of the correct choice>
  }
]

Rules:
- Base every question strictly on the summary text, never on outside knowledge of the book
- Make wrong choices plausible but clearly incorrect given the summary
- Vary which position holds the correct answer
- Output ONLY the JSON array, no markdown, no explanations`,
		title, summary, domain.QuizQuestionCount, domain.QuizChoiceCount)
}

// extractJSONArray finds the first complete JSON array in a string.
func extractJSONArray(s string) (string, error) {
	start := strings.Index(s, "[")
	end := strings.LastIndex(s, "]")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON array found in response")
	}
	return s[start : end+1], nil
}
