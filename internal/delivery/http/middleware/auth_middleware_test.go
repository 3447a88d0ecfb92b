package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	domainerrors "linkup/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// mockTokenService is a testify mock of service.TokenService.
type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) Issue(userID int64) (string, time.Time, error) {
	args := m.Called(userID)

	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *mockTokenService) Validate(token string) (int64, error) {
	args := m.Called(token)

	return args.Get(0).(int64), args.Error(1)
}

func performWithAuth(t *testing.T, tokenSvc *mockTokenService, authHeader string) (*httptest.ResponseRecorder, bool, int64) {
	t.Helper()

	e := echo.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := NewAuthMiddleware(tokenSvc, logger)

	var reached bool
	var gotID int64
	next := func(c echo.Context) error {
		reached = true
		gotID, _ = UserID(c)

		return c.NoContent(http.StatusOK)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/user/profile", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, m.Authenticate(next)(c))

	return rec, reached, gotID
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	tokenSvc := new(mockTokenService)
	tokenSvc.On("Validate", "good-token").Return(int64(42), nil)

	rec, reached, userID := performWithAuth(t, tokenSvc, "Bearer good-token")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, reached)
	assert.Equal(t, int64(42), userID)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	tokenSvc := new(mockTokenService)

	rec, reached, _ := performWithAuth(t, tokenSvc, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
	tokenSvc.AssertNotCalled(t, "Validate", mock.Anything)
}

func TestAuthMiddleware_NotBearer(t *testing.T) {
	tokenSvc := new(mockTokenService)

	rec, reached, _ := performWithAuth(t, tokenSvc, "Basic dXNlcjpwYXNz")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
	tokenSvc.AssertNotCalled(t, "Validate", mock.Anything)
}

func TestAuthMiddleware_RejectedTokensShareOneResponse(t *testing.T) {
	// Expired, bad signature and garbage tokens must be indistinguishable on
	// the wire; only the log knows the reason.
	reasons := map[string]error{
		"expired-token":   domainerrors.ErrTokenExpired.WrapMessage("past expiry"),
		"forged-token":    domainerrors.ErrTokenInvalidSignature.WrapMessage("bad signature"),
		"malformed-token": domainerrors.ErrTokenMalformed.WrapMessage("not a jwt"),
	}

	var bodies []string
	for token, reason := range reasons {
		tokenSvc := new(mockTokenService)
		tokenSvc.On("Validate", token).Return(int64(0), reason)

		rec, reached, _ := performWithAuth(t, tokenSvc, "Bearer "+token)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, reached)
		bodies = append(bodies, rec.Body.String())
	}

	for _, body := range bodies[1:] {
		assert.Equal(t, bodies[0], body)
	}
}
