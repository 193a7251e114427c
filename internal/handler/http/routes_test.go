package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tulbadex/authgate/internal/service"
	"github.com/tulbadex/authgate/models"
)

// TestRoutes_Wiring drives requests through the full router to verify that
// every route is reachable and sits behind the right auth middleware.
func TestRoutes_Wiring(t *testing.T) {
	auth := &mockAuthService{
		signupFn: func(_ context.Context, req models.SignupRequest) (models.User, error) {
			return models.User{ID: "u-1", Email: req.Email}, nil
		},
		loginFn: func(_ context.Context, _ models.LoginRequest) (models.Token, error) {
			return models.Token{SignedString: "signed.jwt.token"}, nil
		},
		logoutFn: func(_ context.Context, _ string) error { return nil },
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			if tokenString != "valid.jwt.token" {
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			}
			return models.Token{UserID: "u-1", Email: "alice@example.com"}, nil
		},
	}
	keys := &mockAPIKeyService{
		issueFn: func(_ context.Context, _ string, req models.CreateAPIKeyRequest) (models.IssuedKey, error) {
			return models.IssuedKey{ID: "k-1", Key: "sk_deadbeef", Name: req.Name}, nil
		},
		listFn:   func(_ context.Context, _ string) ([]models.APIKeyInfo, error) { return nil, nil },
		revokeFn: func(_ context.Context, _, _ string) error { return nil },
		verifyFn: func(_ context.Context, candidate string) (models.Principal, error) {
			if candidate != "sk_deadbeef" {
				return models.Principal{}, service.ErrInvalidAPIKey
			}
			return models.Principal{UserID: "u-1", Email: "svc@example.com", Type: models.PrincipalTypeService}, nil
		},
	}

	router := newTestHandler(t, auth, keys).Init()

	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		bearer     string
		apiKey     string
		wantStatus int
	}{
		{name: "signup open", method: http.MethodPost, target: "/auth/signup", body: `{"email":"a@b.c","password":"p"}`, wantStatus: http.StatusCreated},
		{name: "login open", method: http.MethodPost, target: "/auth/login", body: `{"email":"a@b.c","password":"p"}`, wantStatus: http.StatusOK},
		{name: "health open", method: http.MethodGet, target: "/health", wantStatus: http.StatusOK},

		{name: "logout requires token", method: http.MethodPost, target: "/auth/logout", wantStatus: http.StatusUnauthorized},
		{name: "logout with token", method: http.MethodPost, target: "/auth/logout", bearer: "valid.jwt.token", wantStatus: http.StatusOK},

		{name: "create key requires token", method: http.MethodPost, target: "/keys/create", body: `{"name":"ci"}`, wantStatus: http.StatusUnauthorized},
		{name: "create key with token", method: http.MethodPost, target: "/keys/create", body: `{"name":"ci"}`, bearer: "valid.jwt.token", wantStatus: http.StatusCreated},
		{name: "list keys with token", method: http.MethodGet, target: "/keys", bearer: "valid.jwt.token", wantStatus: http.StatusOK},
		{name: "revoke key with token", method: http.MethodDelete, target: "/keys/k-1", bearer: "valid.jwt.token", wantStatus: http.StatusOK},

		{name: "user route rejects api key", method: http.MethodGet, target: "/protected/user-only", apiKey: "sk_deadbeef", wantStatus: http.StatusUnauthorized},
		{name: "user route with token", method: http.MethodGet, target: "/protected/user-only", bearer: "valid.jwt.token", wantStatus: http.StatusOK},

		{name: "service route rejects token", method: http.MethodGet, target: "/protected/service-only", bearer: "valid.jwt.token", wantStatus: http.StatusUnauthorized},
		{name: "service route with api key", method: http.MethodGet, target: "/protected/service-only", apiKey: "sk_deadbeef", wantStatus: http.StatusOK},

		{name: "flexible with token", method: http.MethodGet, target: "/protected/flexible", bearer: "valid.jwt.token", wantStatus: http.StatusOK},
		{name: "flexible with api key", method: http.MethodGet, target: "/protected/flexible", apiKey: "sk_deadbeef", wantStatus: http.StatusOK},
		{name: "flexible without credentials", method: http.MethodGet, target: "/protected/flexible", wantStatus: http.StatusUnauthorized},

		{name: "unknown route", method: http.MethodGet, target: "/nope", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body *strings.Reader
			if tt.body != "" {
				body = strings.NewReader(tt.body)
			} else {
				body = strings.NewReader("")
			}

			req := httptest.NewRequest(tt.method, tt.target, body)
			if tt.bearer != "" {
				req.Header.Set("Authorization", "Bearer "+tt.bearer)
			}
			if tt.apiKey != "" {
				req.Header.Set(apiKeyHeader, tt.apiKey)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
		})
	}
}
