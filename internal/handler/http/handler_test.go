package http

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tulbadex/authgate/internal/logger"
	"github.com/tulbadex/authgate/internal/service"
	"github.com/tulbadex/authgate/models"
)

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	signupFn      func(ctx context.Context, request models.SignupRequest) (models.User, error)
	loginFn       func(ctx context.Context, request models.LoginRequest) (models.Token, error)
	logoutFn      func(ctx context.Context, userID string) error
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Signup(ctx context.Context, request models.SignupRequest) (models.User, error) {
	return m.signupFn(ctx, request)
}

func (m *mockAuthService) Login(ctx context.Context, request models.LoginRequest) (models.Token, error) {
	return m.loginFn(ctx, request)
}

func (m *mockAuthService) Logout(ctx context.Context, userID string) error {
	return m.logoutFn(ctx, userID)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// mockAPIKeyService implements service.APIKeyService for unit tests.
type mockAPIKeyService struct {
	issueFn  func(ctx context.Context, ownerID string, request models.CreateAPIKeyRequest) (models.IssuedKey, error)
	listFn   func(ctx context.Context, ownerID string) ([]models.APIKeyInfo, error)
	revokeFn func(ctx context.Context, ownerID, keyID string) error
	verifyFn func(ctx context.Context, candidate string) (models.Principal, error)
}

func (m *mockAPIKeyService) Issue(ctx context.Context, ownerID string, request models.CreateAPIKeyRequest) (models.IssuedKey, error) {
	return m.issueFn(ctx, ownerID, request)
}

func (m *mockAPIKeyService) List(ctx context.Context, ownerID string) ([]models.APIKeyInfo, error) {
	return m.listFn(ctx, ownerID)
}

func (m *mockAPIKeyService) Revoke(ctx context.Context, ownerID, keyID string) error {
	return m.revokeFn(ctx, ownerID, keyID)
}

func (m *mockAPIKeyService) Verify(ctx context.Context, candidate string) (models.Principal, error) {
	return m.verifyFn(ctx, candidate)
}

// newTestHandler builds a Handler with the given service mocks.
// Either argument may be nil when the test exercises only one side.
func newTestHandler(t *testing.T, auth service.AuthService, keys service.APIKeyService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService:   auth,
		APIKeyService: keys,
	}
	return NewHandler(svcs, logger.Nop())
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// userPrincipal is a convenience fixture used across multiple tests.
var userPrincipal = models.Principal{
	UserID: "0191b9f2-0000-7000-8000-000000000001",
	Email:  "alice@example.com",
	Type:   models.PrincipalTypeUser,
}
