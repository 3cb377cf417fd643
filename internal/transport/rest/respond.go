// Package rest exposes the reading-log pipeline over JSON HTTP handlers.
package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/readify-app/readify-backend/internal/adapter/chain"
	"github.com/readify-app/readify-backend/internal/adapter/quizgen"
	"github.com/readify-app/readify-backend/internal/domain"
	"github.com/readify-app/readify-backend/pkg/ctxutil"
)

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// handleError maps service errors to HTTP status codes. Unexpected errors
// are logged and reported as opaque 500s.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrNoWalletBound):
		writeError(w, http.StatusConflict, "no wallet bound")
	case errors.Is(err, domain.ErrAlreadyExists),
		errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrInvalidTransition):
		writeError(w, http.StatusConflict, "conflict")
	case errors.Is(err, quizgen.ErrGeneration):
		writeError(w, http.StatusBadGateway, "quiz generation failed, try again")
	case errors.Is(err, chain.ErrUnavailable):
		writeError(w, http.StatusServiceUnavailable, "ledger unavailable, try again")
	case errors.Is(err, chain.ErrRejected):
		writeError(w, http.StatusBadGateway, "ledger rejected the transaction")
	case errors.Is(err, chain.ErrEventMissing):
		// The transaction may have committed. Resubmitting blindly could
		// anchor the same log twice.
		writeError(w, http.StatusBadGateway, "submission outcome unknown, check your logs before resubmitting")
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// pathID parses the {id} segment of the request path.
func pathID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(r.PathValue("id"))
}

// requireAdmin gates endpoints whose backing service method has no
// caller check of its own.
func requireAdmin(r *http.Request) error {
	if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
		return domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminFromCtx(r.Context()) {
		return domain.ErrForbidden
	}
	return nil
}
