package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/readify-app/readify-backend/internal/domain"
	"github.com/readify-app/readify-backend/internal/service/readinglog"
)

// reviewService defines the review-queue slice of the reading-log service.
type reviewService interface {
	ListForReview(ctx context.Context, status *domain.LogStatus, limit, offset int) ([]domain.ReadingLog, error)
	FinalizeLog(ctx context.Context, logID uuid.UUID, in readinglog.FinalizeInput) (domain.ReadingLog, error)
}

// settlementService defines the settlement slice of the reward service.
type settlementService interface {
	Settle(ctx context.Context, logID uuid.UUID) (domain.TokenReward, error)
}

// AdminHandler serves administrator review and settlement endpoints.
// Route-level admin enforcement happens in the services; the handlers
// only translate requests.
type AdminHandler struct {
	reviews    reviewService
	settlement settlementService
	log        *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(reviews reviewService, settlement settlementService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		reviews:    reviews,
		settlement: settlement,
		log:        logger.With("handler", "admin"),
	}
}

type finalizeRequest struct {
	Decision string  `json:"decision"`
	Feedback *string `json:"feedback,omitempty"`
}

// ReviewQueue handles GET /api/admin/logs?status=APPROVED&limit=50&offset=0.
func (h *AdminHandler) ReviewQueue(w http.ResponseWriter, r *http.Request) {
	var status *domain.LogStatus
	if v := r.URL.Query().Get("status"); v != "" {
		s := domain.LogStatus(v)
		status = &s
	}

	limit := queryInt(r, "limit")
	offset := queryInt(r, "offset")

	logs, err := h.reviews.ListForReview(r.Context(), status, limit, offset)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toLogResponses(logs))
}

// Finalize handles POST /api/admin/logs/{id}/finalize.
func (h *AdminHandler) Finalize(w http.ResponseWriter, r *http.Request) {
	logID, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid log id")
		return
	}

	var req finalizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	log, err := h.reviews.FinalizeLog(r.Context(), logID, readinglog.FinalizeInput{
		Decision: domain.FinalizeDecision(req.Decision),
		Feedback: req.Feedback,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toLogResponse(log))
}

// Settle handles POST /api/admin/logs/{id}/settle. It retries settlement for
// an approved log whose reward is still pending.
func (h *AdminHandler) Settle(w http.ResponseWriter, r *http.Request) {
	if err := requireAdmin(r); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	logID, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid log id")
		return
	}

	reward, err := h.settlement.Settle(r.Context(), logID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toRewardResponse(reward))
}

func queryInt(r *http.Request, key string) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}
