package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/tulbadex/authgate/internal/logger"
	"github.com/tulbadex/authgate/internal/service"
	"github.com/tulbadex/authgate/internal/utils"
	"github.com/tulbadex/authgate/models"
)

const apiKeyHeader = "X-API-Key"

// requireUser is an HTTP middleware that enforces session-token
// authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [service.AuthService.ParseToken], and — on success — stores
// a user principal in the request context under [utils.PrincipalCtxKey]
// before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized in the following cases:
//   - The "Authorization" header is absent ([ErrEmptyAuthorizationHeader]).
//   - The header value cannot be parsed as a bearer token
//     ([ErrInvalidAuthorizationHeader] or [ErrEmptyToken]).
//   - The token is expired, malformed, or otherwise invalid.
//
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) requireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, ok := h.resolveUserPrincipal(w, r)
		if !ok {
			return
		}

		ctx := context.WithValue(r.Context(), utils.PrincipalCtxKey, principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireService is an HTTP middleware that enforces api-key authentication.
//
// It reads the "X-API-Key" header, verifies the presented plaintext key via
// [service.APIKeyService.Verify], and on success stores the resolved service
// principal in the request context under [utils.PrincipalCtxKey].
//
// A missing header and a failed verification both reject the request with
// HTTP 401 Unauthorized; the response body does not reveal which one happened
// beyond the header being absent.
func (h *Handler) requireService(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, ok := h.resolveServicePrincipal(w, r)
		if !ok {
			return
		}

		ctx := context.WithValue(r.Context(), utils.PrincipalCtxKey, principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireFlexible accepts either credential scheme.
//
// When the "X-API-Key" header carries a value the request commits to the
// api-key scheme: a bad key is rejected even if a valid bearer token is also
// present. Only when the header is absent does the middleware fall back to
// the session-token scheme.
func (h *Handler) requireFlexible(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var (
			principal models.Principal
			ok        bool
		)

		if r.Header.Get(apiKeyHeader) != "" {
			principal, ok = h.resolveServicePrincipal(w, r)
		} else {
			principal, ok = h.resolveUserPrincipal(w, r)
		}
		if !ok {
			return
		}

		ctx := context.WithValue(r.Context(), utils.PrincipalCtxKey, principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// resolveUserPrincipal validates the bearer token of r and returns the user
// principal it encodes. On failure it writes a 401 response and returns
// ok == false; the caller must not touch w afterwards.
func (h *Handler) resolveUserPrincipal(w http.ResponseWriter, r *http.Request) (models.Principal, bool) {
	log := logger.FromRequest(r)

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		log.Err(ErrEmptyAuthorizationHeader).Send()
		http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
		return models.Principal{}, false
	}

	tokenString, err := getTokenFromAuthHeader(authHeader)
	if err != nil {
		log.Err(err).Send()
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return models.Principal{}, false
	}

	token, err := h.services.AuthService.ParseToken(r.Context(), tokenString)
	if err != nil {
		log.Err(err).Msg("error occurred during parsing token")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return models.Principal{}, false
	}

	return models.Principal{
		UserID: token.UserID,
		Email:  token.Email,
		Type:   models.PrincipalTypeUser,
	}, true
}

// resolveServicePrincipal verifies the presented api key of r and returns the
// service principal of its owner. On failure it writes a 401 response and
// returns ok == false; the caller must not touch w afterwards.
//
// Every verification failure maps to the same uniform 401 body so that the
// response does not leak why a key was refused. Storage faults during
// verification map to 500 instead.
func (h *Handler) resolveServicePrincipal(w http.ResponseWriter, r *http.Request) (models.Principal, bool) {
	log := logger.FromRequest(r)

	candidate := r.Header.Get(apiKeyHeader)
	if candidate == "" {
		log.Err(ErrEmptyAPIKeyHeader).Send()
		http.Error(w, ErrEmptyAPIKeyHeader.Error(), http.StatusUnauthorized)
		return models.Principal{}, false
	}

	principal, err := h.services.APIKeyService.Verify(r.Context(), candidate)
	if err != nil {
		if errors.Is(err, service.ErrInvalidAPIKey) {
			log.Err(err).Msg("api key verification rejected the request")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return models.Principal{}, false
		}

		log.Err(err).Msg("unexpected error occurred during api key verification")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return models.Principal{}, false
	}

	return principal, true
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: <scheme> <token>
//
// It returns the following sentinel errors:
//   - [ErrInvalidAuthorizationHeader] — if the header contains fewer than
//     two space-separated parts (i.e. the token is missing entirely).
//   - [ErrEmptyToken] — if the second part exists but is an empty string.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
