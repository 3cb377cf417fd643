package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/readify-app/readify-backend/internal/domain"
	"github.com/readify-app/readify-backend/internal/service/user"
)

// userService defines the minimal interface needed by UserHandler.
type userService interface {
	Profile(ctx context.Context) (domain.User, error)
	SetWallet(ctx context.Context, input user.SetWalletInput) (domain.User, error)
}

// UserHandler serves profile and wallet endpoints.
type UserHandler struct {
	svc userService
	log *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: logger.With("handler", "user")}
}

type setWalletRequest struct {
	Address string `json:"address"`
}

type userResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	WalletAddress *string `json:"walletAddress,omitempty"`
	IsAdmin       bool    `json:"isAdmin"`
}

// Profile handles GET /api/me.
func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.Profile(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// SetWallet handles PUT /api/me/wallet. An empty address unbinds the wallet.
func (h *UserHandler) SetWallet(w http.ResponseWriter, r *http.Request) {
	var req setWalletRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := h.svc.SetWallet(r.Context(), user.SetWalletInput{Address: req.Address})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(u))
}

func toUserResponse(u domain.User) userResponse {
	return userResponse{
		ID:            u.ID.String(),
		Name:          u.Name,
		Email:         u.Email,
		WalletAddress: u.WalletAddress,
		IsAdmin:       u.IsAdmin,
	}
}
