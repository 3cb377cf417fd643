package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/readify-app/readify-backend/internal/domain"
)

// rewardService defines the reporting slice of the reward service.
type rewardService interface {
	ListMine(ctx context.Context) ([]domain.TokenReward, error)
	Leaderboard(ctx context.Context, limit int) ([]domain.UserTotal, error)
}

// RewardHandler serves reward listing and leaderboard endpoints.
type RewardHandler struct {
	svc rewardService
	log *slog.Logger
}

// NewRewardHandler creates a RewardHandler.
func NewRewardHandler(svc rewardService, logger *slog.Logger) *RewardHandler {
	return &RewardHandler{svc: svc, log: logger.With("handler", "rewards")}
}

type leaderboardEntry struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Total  int64  `json:"total"`
}

// ListMine handles GET /api/rewards.
func (h *RewardHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	rewards, err := h.svc.ListMine(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]rewardResponse, len(rewards))
	for i, reward := range rewards {
		out[i] = toRewardResponse(reward)
	}

	writeJSON(w, http.StatusOK, out)
}

// Leaderboard handles GET /api/leaderboard?limit=10.
func (h *RewardHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	totals, err := h.svc.Leaderboard(r.Context(), queryInt(r, "limit"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]leaderboardEntry, len(totals))
	for i, t := range totals {
		out[i] = leaderboardEntry{
			UserID: t.UserID.String(),
			Name:   t.Name,
			Total:  t.Total,
		}
	}

	writeJSON(w, http.StatusOK, out)
}
