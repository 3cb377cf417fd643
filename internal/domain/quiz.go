package domain

import (
	"time"

	"github.com/google/uuid"
)

// Comprehension quiz policy. Each generated quiz has exactly QuizQuestionCount
// questions with QuizChoiceCount choices; a student passes with at least
// QuizPassThreshold correct answers. Each question must be answered within
// QuizAnswerWindow; clients auto-submit "no answer" on expiry, and an
// unanswered question always scores as incorrect.
const (
	QuizQuestionCount = 5
	QuizChoiceCount   = 4
	QuizPassThreshold = 4
	QuizAnswerWindow  = 10 * time.Second
)

// QuizQuestion is a single multiple-choice question. Correct is the index
// into Choices and is never serialized to students.
type QuizQuestion struct {
	Question string   `json:"question"`
	Choices  []string `json:"choices"`
	Correct  int      `json:"correct"`
}

// Quiz is a generated comprehension quiz bound to one reading log.
// A quiz is single-use: once scored it is marked consumed and cannot be
// scored again, so a retake always goes through fresh generation.
type Quiz struct {
	ID         uuid.UUID
	LogID      uuid.UUID
	Questions  []QuizQuestion
	ConsumedAt *time.Time
	CreatedAt  time.Time
}

// IsConsumed reports whether the quiz has already been scored.
func (q *Quiz) IsConsumed() bool { return q.ConsumedAt != nil }

// QuizAnswer is one per-question selection. A nil Choice represents a
// timed-out question.
type QuizAnswer struct {
	Choice *int
}

// ScoreQuiz counts correct selections against the quiz and applies the pass
// threshold. Pure function of quiz and answers: a nil (unanswered) or
// out-of-range selection counts as incorrect, and missing trailing answers
// are treated as unanswered.
func ScoreQuiz(questions []QuizQuestion, answers []QuizAnswer) (correct int, passed bool) {
	for i, q := range questions {
		if i >= len(answers) {
			break
		}
		sel := answers[i].Choice
		if sel == nil {
			continue
		}
		if *sel >= 0 && *sel < len(q.Choices) && *sel == q.Correct {
			correct++
		}
	}
	return correct, correct >= QuizPassThreshold
}

// ValidateQuiz checks the shape of a generated quiz before it is stored:
// exactly QuizQuestionCount questions, each with QuizChoiceCount non-empty
// choices and a correct index in range.
func ValidateQuiz(questions []QuizQuestion) error {
	if len(questions) != QuizQuestionCount {
		return NewValidationError("questions", "quiz must have exactly 5 questions")
	}
	for _, q := range questions {
		if q.Question == "" {
			return NewValidationError("question", "must not be empty")
		}
		if len(q.Choices) != QuizChoiceCount {
			return NewValidationError("choices", "each question must have exactly 4 choices")
		}
		for _, c := range q.Choices {
			if c == "" {
				return NewValidationError("choices", "choice text must not be empty")
			}
		}
		if q.Correct < 0 || q.Correct >= len(q.Choices) {
			return NewValidationError("correct", "answer index out of range")
		}
	}
	return nil
}
