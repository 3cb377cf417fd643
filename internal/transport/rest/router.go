package rest

import (
	"net/http"
)

// NewRouter builds the HTTP route table. Identity middleware is applied by
// the caller around the returned handler.
func NewRouter(
	logs *LogHandler,
	admin *AdminHandler,
	rewards *RewardHandler,
	users *UserHandler,
	health *HealthHandler,
) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", health.Health)
	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)

	mux.HandleFunc("POST /api/logs", logs.Submit)
	mux.HandleFunc("GET /api/logs", logs.ListMine)
	mux.HandleFunc("GET /api/logs/{id}", logs.Get)
	mux.HandleFunc("POST /api/logs/{id}/quiz", logs.RequestQuiz)
	mux.HandleFunc("POST /api/quizzes/{id}/answers", logs.SubmitAnswers)

	mux.HandleFunc("GET /api/admin/logs", admin.ReviewQueue)
	mux.HandleFunc("POST /api/admin/logs/{id}/finalize", admin.Finalize)
	mux.HandleFunc("POST /api/admin/logs/{id}/settle", admin.Settle)

	mux.HandleFunc("GET /api/rewards", rewards.ListMine)
	mux.HandleFunc("GET /api/leaderboard", rewards.Leaderboard)

	mux.HandleFunc("GET /api/me", users.Profile)
	mux.HandleFunc("PUT /api/me/wallet", users.SetWallet)

	return mux
}
