package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "blog/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newErrorTestContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestErrorMiddleware_AppErrorMapping(t *testing.T) {
	mw := NewErrorMiddleware(slog.Default())

	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedBiz  string
		expectedMsg  string
	}{
		{
			name:         "conflict maps to 400",
			err:          domainerrors.ErrUserAlreadyExists,
			expectedCode: http.StatusBadRequest,
			expectedBiz:  "USER_ALREADY_EXISTS",
			expectedMsg:  "User already exists.",
		},
		{
			name:         "invalid credentials map to 400",
			err:          domainerrors.ErrInvalidCredentials,
			expectedCode: http.StatusBadRequest,
			expectedBiz:  "INVALID_CREDENTIALS",
			expectedMsg:  "Invalid credentials.",
		},
		{
			name:         "forbidden maps to 403",
			err:          domainerrors.ErrForbidden,
			expectedCode: http.StatusForbidden,
			expectedBiz:  "FORBIDDEN",
			expectedMsg:  "Access denied.",
		},
		{
			name:         "missing post maps to 404",
			err:          domainerrors.ErrPostNotFound,
			expectedCode: http.StatusNotFound,
			expectedBiz:  "POST_NOT_FOUND",
			expectedMsg:  "Post not found.",
		},
		{
			name:         "wrapped errors keep their mapping",
			err:          errors.Wrap(domainerrors.ErrPostNotFound, "post lookup failed"),
			expectedCode: http.StatusNotFound,
			expectedBiz:  "POST_NOT_FOUND",
			expectedMsg:  "Post not found.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newErrorTestContext(t)

			mw.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBiz)
			assert.Contains(t, rec.Body.String(), tt.expectedMsg)
		})
	}
}

func TestErrorMiddleware_EchoHTTPError(t *testing.T) {
	mw := NewErrorMiddleware(slog.Default())
	c, rec := newErrorTestContext(t)

	mw.HandleHTTPError(echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"), c)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Contains(t, rec.Body.String(), "HTTP_ERROR")
}

func TestErrorMiddleware_UnexpectedError(t *testing.T) {
	mw := NewErrorMiddleware(slog.Default())
	c, rec := newErrorTestContext(t)

	mw.HandleHTTPError(errors.New("connection reset by peer"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
	assert.Contains(t, rec.Body.String(), "Internal server error.")
	// Internals never leak to the client.
	assert.NotContains(t, rec.Body.String(), "connection reset")
}

func TestErrorMiddleware_CommittedResponseUntouched(t *testing.T) {
	mw := NewErrorMiddleware(slog.Default())
	c, rec := newErrorTestContext(t)

	require.NoError(t, c.NoContent(http.StatusOK))

	mw.HandleHTTPError(domainerrors.ErrPostNotFound, c)

	assert.Equal(t, http.StatusOK, rec.Code)
}
