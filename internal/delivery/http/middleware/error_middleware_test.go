package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/delivery/http/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handleError(t *testing.T, err error) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	m.HandleHTTPError(err, c)

	var env response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return rec, env
}

func TestErrorMiddleware_AppErrorEnvelope(t *testing.T) {
	rec, env := handleError(t, errors.WithStack(domainerrors.ErrProductNotFound))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "PRODUCT_NOT_FOUND", env.Error.Code)
	assert.Equal(t, "product not found", env.Message)
}

func TestErrorMiddleware_UnknownErrorFallsBackToInternal(t *testing.T) {
	rec, env := handleError(t, errors.New("database on fire"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, domainerrors.ErrInternal.ErrorCode(), env.Error.Code)
	assert.Equal(t, domainerrors.ErrInternal.Message(), env.Message)
	// The underlying cause never leaks to the client.
	assert.NotContains(t, rec.Body.String(), "database on fire")
}
