package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierrors "github.com/narender/vending-machine/common/apierrors"
	"github.com/narender/vending-machine/common/log"
)

func newTestApp(route fiber.Handler) *fiber.App {
	logger := log.Discard()
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(logger)})
	app.Use(RequestLoggerMiddleware(logger))
	app.Use(RecoverMiddleware(logger))
	app.Get("/fail", route)
	return app
}

func doGet(t *testing.T, app *fiber.App, path string) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "product not found",
			err:        apierrors.NewBusinessError(apierrors.ErrCodeProductNotFound, "Product with ID 'P9' not found.", nil),
			wantStatus: http.StatusNotFound,
			wantCode:   apierrors.ErrCodeProductNotFound,
		},
		{
			name:       "other business error",
			err:        apierrors.NewBusinessError(apierrors.ErrCodeInsufficientFunds, "Insufficient funds.", nil),
			wantStatus: http.StatusBadRequest,
			wantCode:   apierrors.ErrCodeInsufficientFunds,
		},
		{
			name:       "malformed json",
			err:        &json.SyntaxError{Offset: 1},
			wantStatus: http.StatusBadRequest,
			wantCode:   apierrors.ErrCodeMalformedData,
		},
		{
			name:       "timeout",
			err:        context.DeadlineExceeded,
			wantStatus: http.StatusRequestTimeout,
			wantCode:   apierrors.ErrCodeRequestTimeout,
		},
		{
			name:       "unclassified",
			err:        errors.New("disk on fire"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   apierrors.ErrCodeUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(func(*fiber.Ctx) error { return tt.err })

			status, body := doGet(t, app, "/fail")

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, body["code"])
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestErrorHandler_UnclassifiedHidesCause(t *testing.T) {
	app := newTestApp(func(*fiber.Ctx) error { return errors.New("secret internals") })

	_, body := doGet(t, app, "/fail")

	assert.Equal(t, genericErrorMessage, body["error"])
}

func TestErrorHandler_FlattensDetails(t *testing.T) {
	appErr := apierrors.NewBusinessError(apierrors.ErrCodeInvalidDenomination, "Invalid coin.", nil).
		WithDetail("returnedCoin", "0.30").
		WithDetail("code", "ignored")
	app := newTestApp(func(*fiber.Ctx) error { return appErr })

	status, body := doGet(t, app, "/fail")

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "0.30", body["returnedCoin"])
	assert.Equal(t, apierrors.ErrCodeInvalidDenomination, body["code"])
}

func TestErrorHandler_RouteNotFound(t *testing.T) {
	app := newTestApp(func(c *fiber.Ctx) error { return c.SendStatus(http.StatusNoContent) })

	status, body := doGet(t, app, "/missing")

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, apierrors.ErrCodeRouteNotFound, body["code"])
}

func TestRecoverMiddleware(t *testing.T) {
	app := newTestApp(func(*fiber.Ctx) error { panic("jammed") })

	status, body := doGet(t, app, "/fail")

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, apierrors.ErrCodeSystemPanic, body["code"])
}
