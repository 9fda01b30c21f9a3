package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	commonhttp "github.com/narender/vending-machine/common/http"
	"github.com/narender/vending-machine/common/log"
	"github.com/narender/vending-machine/vending-service/src/models"
	"github.com/narender/vending-machine/vending-service/src/repositories"
	"github.com/narender/vending-machine/vending-service/src/services"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	logger := log.Discard()
	repo := repositories.NewMachineRepository(models.DefaultCatalog(), logger)
	svc := services.NewVendingService(repo, nil, logger)

	cfg := commonhttp.DefaultAppConfig()
	cfg.Logger = logger
	cfg.DisableStartupLog = true
	app := commonhttp.NewApp(cfg)
	SetupRoutes(app, NewVendingHandler(svc, logger))
	return app
}

func call(t *testing.T, app *fiber.App, method, path, body string, out any) int {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if out != nil {
		require.NoError(t, json.Unmarshal(raw, out), string(raw))
	}
	return resp.StatusCode
}

func insertCoin(t *testing.T, app *fiber.App, body string) {
	t.Helper()
	require.Equal(t, http.StatusOK, call(t, app, http.MethodPost, "/insert-coin", body, nil))
}

func TestGetProducts(t *testing.T) {
	app := newTestApp(t)

	var products []ProductResponse
	status := call(t, app, http.MethodGet, "/products", "", &products)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, []ProductResponse{
		{ID: "P1", Name: "Coke", Price: "1.50"},
		{ID: "P2", Name: "Pepsi", Price: "1.45"},
		{ID: "P3", Name: "Water", Price: "0.90"},
	}, products)
}

func TestGetCoinsAndHealth(t *testing.T) {
	app := newTestApp(t)

	var coins CoinsResponse
	assert.Equal(t, http.StatusOK, call(t, app, http.MethodGet, "/coins", "", &coins))
	assert.Equal(t, []string{"0.05", "0.10", "0.20", "0.50", "1.00", "2.00"}, coins.Accepted)

	var health map[string]string
	assert.Equal(t, http.StatusOK, call(t, app, http.MethodGet, "/health", "", &health))
	assert.Equal(t, "ok", health["status"])
	assert.Equal(t, http.StatusOK, call(t, app, http.MethodGet, "/status", "", nil))
}

func TestInsertCoin(t *testing.T) {
	app := newTestApp(t)

	var resp InsertCoinResponse
	status := call(t, app, http.MethodPost, "/insert-coin", `{"coin": 1.00}`, &resp)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "1.00", resp.CurrentBalance)
	assert.NotEmpty(t, resp.Message)

	status = call(t, app, http.MethodPost, "/insert-coin", `{"coin": "0.50"}`, &resp)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "1.50", resp.CurrentBalance)

	var balance BalanceResponse
	call(t, app, http.MethodGet, "/balance", "", &balance)
	assert.Equal(t, "1.50", balance.CurrentBalance)
}

func TestInsertCoin_Refusals(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode string
	}{
		{"missing coin", `{}`, "MISSING_VALUE"},
		{"null coin", `{"coin": null}`, "MISSING_VALUE"},
		{"not a number", `{"coin": "abc"}`, "NOT_A_NUMBER"},
		{"boolean", `{"coin": true}`, "NOT_A_NUMBER"},
		{"invalid denomination", `{"coin": 0.30}`, "INVALID_COIN"},
		{"malformed body", `{"coin": `, "MALFORMED_DATA"},
		{"huge exponent", `{"coin": "1e-10000000"}`, "NOT_A_NUMBER"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t)

			var body map[string]any
			status := call(t, app, http.MethodPost, "/insert-coin", tt.body, &body)

			assert.Equal(t, http.StatusBadRequest, status)
			assert.Equal(t, tt.wantCode, body["code"])
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestInsertCoin_InvalidDenominationBody(t *testing.T) {
	app := newTestApp(t)

	var body map[string]any
	call(t, app, http.MethodPost, "/insert-coin", `{"coin": "0.30"}`, &body)

	assert.Equal(t, "0.30", body["returnedCoin"])
	assert.Equal(t, "0.05, 0.10, 0.20, 0.50, 1.00, 2.00", body["accepted"])

	var balance BalanceResponse
	call(t, app, http.MethodGet, "/balance", "", &balance)
	assert.Equal(t, "0.00", balance.CurrentBalance)
}

func TestPurchase(t *testing.T) {
	app := newTestApp(t)
	insertCoin(t, app, `{"coin": 1}`)
	insertCoin(t, app, `{"coin": 0.5}`)

	var resp PurchaseResponse
	status := call(t, app, http.MethodPost, "/purchase/P3", "", &resp)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Purchase successful! Dispensing Water.", resp.Message)
	assert.Equal(t, ProductResponse{ID: "P3", Name: "Water", Price: "0.90"}, resp.Product)
	assert.Equal(t, "0.60", resp.ChangeReturned)

	var balance BalanceResponse
	call(t, app, http.MethodGet, "/balance", "", &balance)
	assert.Equal(t, "0.00", balance.CurrentBalance)
}

func TestPurchase_Refusals(t *testing.T) {
	app := newTestApp(t)

	var body map[string]any
	status := call(t, app, http.MethodPost, "/purchase/P1", "", &body)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "INSUFFICIENT_FUNDS", body["code"])
	assert.Equal(t, "1.50", body["amountNeeded"])
	assert.Equal(t, "0.00", body["currentBalance"])
	assert.Equal(t, "1.50", body["productPrice"])

	body = nil
	status = call(t, app, http.MethodPost, "/purchase/P9", "", &body)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "PRODUCT_NOT_FOUND", body["code"])
}

func TestPurchase_OutOfStock(t *testing.T) {
	app := newTestApp(t)
	for i := 0; i < 6; i++ {
		insertCoin(t, app, `{"coin": 2}`)
		require.Equal(t, http.StatusOK, call(t, app, http.MethodPost, "/purchase/P2", "", nil))
	}

	var body map[string]any
	status := call(t, app, http.MethodPost, "/purchase/P2", "", &body)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "OUT_OF_STOCK", body["code"])
}

func TestRefund(t *testing.T) {
	app := newTestApp(t)
	insertCoin(t, app, `{"coin": 2}`)

	var body map[string]any
	status := call(t, app, http.MethodPost, "/return-coins/2.50", "", &body)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "REFUND_TOO_HIGH", body["code"])
	assert.Equal(t, "2.50", body["requestedAmount"])
	assert.Equal(t, "2.00", body["currentBalance"])

	body = nil
	status = call(t, app, http.MethodPost, "/return-coins/abc", "", &body)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "INVALID_REFUND_AMOUNT", body["code"])

	body = nil
	status = call(t, app, http.MethodPost, "/return-coins/1e-10000000", "", &body)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "INVALID_REFUND_AMOUNT", body["code"])

	var resp RefundResponse
	status = call(t, app, http.MethodPost, "/return-coins/0.5", "", &resp)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, RefundResponse{
		Message:          "Refund processed. 0.50 returned.",
		ReturnedAmount:   "0.50",
		RemainingBalance: "1.50",
	}, resp)

	status = call(t, app, http.MethodPost, "/return-coins", "", &resp)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "1.50", resp.ReturnedAmount)
	assert.Equal(t, "0.00", resp.RemainingBalance)

	body = nil
	status = call(t, app, http.MethodPost, "/return-coins", "", &body)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "INVALID_REFUND_AMOUNT", body["code"])
}

func TestReset(t *testing.T) {
	app := newTestApp(t)
	insertCoin(t, app, `{"coin": 2}`)
	require.Equal(t, http.StatusOK, call(t, app, http.MethodPost, "/purchase/P1", "", nil))
	insertCoin(t, app, `{"coin": 1}`)

	var resp map[string]string
	status := call(t, app, http.MethodPost, "/admin/reset", "", &resp)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, services.ResetMessage, resp["message"])

	var balance BalanceResponse
	call(t, app, http.MethodGet, "/balance", "", &balance)
	assert.Equal(t, "0.00", balance.CurrentBalance)
}

func TestUnknownRoute(t *testing.T) {
	app := newTestApp(t)

	var body map[string]any
	status := call(t, app, http.MethodGet, "/nowhere", "", &body)

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "ROUTE_NOT_FOUND", body["code"])
}
