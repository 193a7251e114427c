package http

import (
	"net/http"
	"time"

	"github.com/tulbadex/authgate/internal/logger"
	"github.com/tulbadex/authgate/internal/utils"
	"github.com/tulbadex/authgate/models"
)

// The protected handlers below are intentionally thin: the interesting work
// happens in the auth middlewares, and these endpoints just echo the resolved
// principal so that callers can see which scheme admitted them.

func (h *Handler) userOnly(w http.ResponseWriter, r *http.Request) {
	h.writeProtected(w, r, "This route requires user authentication (JWT)", "user-only")
}

func (h *Handler) serviceOnly(w http.ResponseWriter, r *http.Request) {
	h.writeProtected(w, r, "This route requires API key authentication", "service-only")
}

func (h *Handler) flexible(w http.ResponseWriter, r *http.Request) {
	h.writeProtected(w, r, "This route accepts both JWT and API key authentication", "flexible")
}

func (h *Handler) writeProtected(w http.ResponseWriter, r *http.Request, message, accessType string) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		log.Error().Msg("no principal found in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	response := models.ProtectedResponse{
		Message:    message,
		User:       principal,
		AccessType: accessType,
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSON(w, models.HealthResponse{Status: "ok", Timestamp: time.Now().UTC()}, http.StatusOK)
}
