package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "blog/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubTokenService accepts a single token string and maps it to a fixed user ID.
type stubTokenService struct {
	validToken string
	userID     uuid.UUID
}

func (s *stubTokenService) Issue(userID uuid.UUID) (string, error) {
	return s.validToken, nil
}

func (s *stubTokenService) Verify(tokenString string) (uuid.UUID, error) {
	if tokenString != s.validToken {
		return uuid.Nil, errors.New("invalid token")
	}

	return s.userID, nil
}

func newAuthTestContext(t *testing.T, authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/posts/post", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	mw := NewAuthMiddleware(&stubTokenService{validToken: "good", userID: uuid.New()})

	tests := []struct {
		name   string
		header string
	}{
		{name: "no header", header: ""},
		{name: "wrong scheme", header: "Basic dXNlcjpwYXNz"},
		{name: "bare token without scheme", header: "good"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newAuthTestContext(t, tt.header)

			nextCalled := false
			handler := mw.Authenticate(func(c echo.Context) error {
				nextCalled = true

				return c.NoContent(http.StatusOK)
			})

			require.NoError(t, handler(c))
			assert.False(t, nextCalled)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), "TOKEN_MISSING")
			assert.Contains(t, rec.Body.String(), "Unauthorized: Token missing.")
		})
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	mw := NewAuthMiddleware(&stubTokenService{validToken: "good", userID: uuid.New()})
	c, rec := newAuthTestContext(t, "Bearer tampered")

	nextCalled := false
	handler := mw.Authenticate(func(c echo.Context) error {
		nextCalled = true

		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "TOKEN_INVALID")
	assert.Contains(t, rec.Body.String(), "Unauthorized: Token invalid.")
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	expectedID := uuid.New()
	mw := NewAuthMiddleware(&stubTokenService{validToken: "good", userID: expectedID})
	c, rec := newAuthTestContext(t, "Bearer good")

	var gotID uuid.UUID
	var gotOK bool
	handler := mw.Authenticate(func(c echo.Context) error {
		gotID, gotOK = deliverycontext.GetUserID(c.Request().Context())

		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, gotOK)
	assert.Equal(t, expectedID, gotID)
}
