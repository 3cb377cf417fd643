package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/readify-app/readify-backend/internal/domain"
	"github.com/readify-app/readify-backend/internal/service/readinglog"
)

// logService defines the minimal interface needed by LogHandler.
type logService interface {
	SubmitLog(ctx context.Context, in readinglog.SubmitLogInput) (domain.ReadingLog, error)
	GetLog(ctx context.Context, logID uuid.UUID) (domain.ReadingLog, error)
	ListMine(ctx context.Context) ([]domain.ReadingLog, error)
	RequestQuiz(ctx context.Context, logID uuid.UUID) (readinglog.QuizChallenge, error)
	SubmitQuizAnswers(ctx context.Context, quizID uuid.UUID, answers []domain.QuizAnswer) (readinglog.QuizResult, error)
}

// LogHandler serves reading-log and quiz endpoints.
type LogHandler struct {
	svc logService
	log *slog.Logger
}

// NewLogHandler creates a LogHandler.
func NewLogHandler(svc logService, logger *slog.Logger) *LogHandler {
	return &LogHandler{svc: svc, log: logger.With("handler", "logs")}
}

type submitLogRequest struct {
	Title           string `json:"title"`
	DurationMinutes int    `json:"durationMinutes"`
	Summary         string `json:"summary"`
}

type submitAnswersRequest struct {
	Answers []*int `json:"answers"`
}

type logResponse struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	DurationMinutes int             `json:"durationMinutes"`
	Summary         string          `json:"summary"`
	Fingerprint     string          `json:"fingerprint"`
	ChainIndex      int64           `json:"chainIndex"`
	Approvals       int             `json:"approvals"`
	Status          string          `json:"status"`
	Validator       *string         `json:"validator,omitempty"`
	Feedback        *string         `json:"feedback,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	Reward          *rewardResponse `json:"reward,omitempty"`
}

type rewardResponse struct {
	ID         string    `json:"id"`
	LogID      string    `json:"logId"`
	TokenType  string    `json:"tokenType"`
	TokenValue int64     `json:"tokenValue"`
	ContractTx string    `json:"contractTx"`
	CreatedAt  time.Time `json:"createdAt"`
}

type quizChallengeResponse struct {
	QuizID             string                 `json:"quizId"`
	LogID              string                 `json:"logId"`
	Questions          []quizQuestionResponse `json:"questions"`
	SecondsPerQuestion int                    `json:"secondsPerQuestion"`
}

type quizQuestionResponse struct {
	Question string   `json:"question"`
	Choices  []string `json:"choices"`
}

type quizResultResponse struct {
	Correct   int  `json:"correct"`
	Passed    bool `json:"passed"`
	Approvals int  `json:"approvals"`
}

// Submit handles POST /api/logs.
func (h *LogHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	log, err := h.svc.SubmitLog(r.Context(), readinglog.SubmitLogInput{
		Title:           req.Title,
		DurationMinutes: req.DurationMinutes,
		Summary:         req.Summary,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toLogResponse(log))
}

// Get handles GET /api/logs/{id}.
func (h *LogHandler) Get(w http.ResponseWriter, r *http.Request) {
	logID, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid log id")
		return
	}

	log, err := h.svc.GetLog(r.Context(), logID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toLogResponse(log))
}

// ListMine handles GET /api/logs.
func (h *LogHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	logs, err := h.svc.ListMine(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toLogResponses(logs))
}

// RequestQuiz handles POST /api/logs/{id}/quiz.
func (h *LogHandler) RequestQuiz(w http.ResponseWriter, r *http.Request) {
	logID, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid log id")
		return
	}

	challenge, err := h.svc.RequestQuiz(r.Context(), logID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	questions := make([]quizQuestionResponse, len(challenge.Questions))
	for i, q := range challenge.Questions {
		questions[i] = quizQuestionResponse{Question: q.Question, Choices: q.Choices}
	}

	writeJSON(w, http.StatusCreated, quizChallengeResponse{
		QuizID:             challenge.QuizID.String(),
		LogID:              challenge.LogID.String(),
		Questions:          questions,
		SecondsPerQuestion: challenge.SecondsPerQuestion,
	})
}

// SubmitAnswers handles POST /api/quizzes/{id}/answers.
func (h *LogHandler) SubmitAnswers(w http.ResponseWriter, r *http.Request) {
	quizID, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid quiz id")
		return
	}

	var req submitAnswersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	answers := make([]domain.QuizAnswer, len(req.Answers))
	for i, choice := range req.Answers {
		answers[i] = domain.QuizAnswer{Choice: choice}
	}

	result, err := h.svc.SubmitQuizAnswers(r.Context(), quizID, answers)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, quizResultResponse{
		Correct:   result.Correct,
		Passed:    result.Passed,
		Approvals: int(result.Approvals),
	})
}

func toLogResponse(log domain.ReadingLog) logResponse {
	resp := logResponse{
		ID:              log.ID.String(),
		Title:           log.Title,
		DurationMinutes: log.DurationMinutes,
		Summary:         log.Summary,
		Fingerprint:     log.Fingerprint,
		ChainIndex:      log.ChainIndex,
		Approvals:       int(log.Approvals),
		Status:          string(log.Status),
		Validator:       log.Validator,
		Feedback:        log.Feedback,
		CreatedAt:       log.CreatedAt,
	}
	if log.Reward != nil {
		resp.Reward = toRewardResponsePtr(*log.Reward)
	}
	return resp
}

func toLogResponses(logs []domain.ReadingLog) []logResponse {
	out := make([]logResponse, len(logs))
	for i, log := range logs {
		out[i] = toLogResponse(log)
	}
	return out
}

func toRewardResponse(reward domain.TokenReward) rewardResponse {
	return rewardResponse{
		ID:         reward.ID.String(),
		LogID:      reward.LogID.String(),
		TokenType:  reward.TokenType,
		TokenValue: reward.TokenValue,
		ContractTx: reward.ContractTx,
		CreatedAt:  reward.CreatedAt,
	}
}

func toRewardResponsePtr(reward domain.TokenReward) *rewardResponse {
	resp := toRewardResponse(reward)
	return &resp
}
