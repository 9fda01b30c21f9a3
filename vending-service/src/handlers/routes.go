package handlers

import "github.com/gofiber/fiber/v2"

// SetupRoutes registers every vending route on app.
func SetupRoutes(app *fiber.App, h *VendingHandler) {
	app.Get("/health", h.HealthCheck)
	app.Get("/status", h.HealthCheck)

	app.Get("/products", h.GetProducts)
	app.Get("/balance", h.GetBalance)
	app.Get("/coins", h.GetAcceptedCoins)

	app.Post("/insert-coin", h.InsertCoin)
	app.Post("/purchase/:productId", h.PurchaseProduct)
	app.Post("/return-coins/:amount", h.RefundAmount)
	app.Post("/return-coins", h.RefundAll)

	admin := app.Group("/admin")
	admin.Post("/reset", h.Reset)
}
