package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tulbadex/authgate/internal/logger"
	"github.com/tulbadex/authgate/internal/service"
	"github.com/tulbadex/authgate/internal/store"
	"github.com/tulbadex/authgate/internal/utils"
	"github.com/tulbadex/authgate/models"
)

func (h *Handler) createKey(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		log.Error().Msg("no principal found in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var request models.CreateAPIKeyRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	issued, err := h.services.APIKeyService.Issue(ctx, principal.UserID, request)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrKeyNameAlreadyExists):
			log.Err(err).Msg("api key name already exists")
			http.Error(w, "api key name already exists", http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during api key creation")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, issued, http.StatusCreated)
}

func (h *Handler) listKeys(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		log.Error().Msg("no principal found in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	keys, err := h.services.APIKeyService.List(ctx, principal.UserID)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during api key listing")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, keys, http.StatusOK)
}

func (h *Handler) revokeKey(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		log.Error().Msg("no principal found in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	keyID := chi.URLParam(r, "keyID")

	if err := h.services.APIKeyService.Revoke(ctx, principal.UserID, keyID); err != nil {
		switch {
		case errors.Is(err, store.ErrKeyNotFound):
			log.Err(err).Str("key", keyID).Msg("api key not found")
			http.Error(w, "api key not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Str("key", keyID).Msg("unexpected error occurred during api key revocation")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "API key revoked successfully"}, http.StatusOK)
}
