package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)
	auth.Get("/me", handler.AuthRequired, handler.Me)

	incidents := api.Group("/incidents", handler.AuthRequired)
	incidents.Get("", handler.ListIncidents)
	incidents.Post("", handler.CreateIncident)
	incidents.Get("/:id", handler.GetIncident)
	incidents.Patch("/:id", handler.UpdateIncident)
	incidents.Delete("/:id", handler.DeleteIncident)

	reports := api.Group("/reports", handler.AuthRequired)
	reports.Get("", handler.ListReports)
	reports.Post("", handler.UpsertReport)
	reports.Get("/:id", handler.GetReport)
	reports.Delete("/:id", handler.DeleteReport)

	aiRoutes := api.Group("/ai", handler.AuthRequired)
	aiRoutes.Post("/analyze", handler.Analyze)
	aiRoutes.Get("/insight-cache", handler.InsightCache)
	aiRoutes.Get("/on-open-message", handler.OnOpenMessage)

	api.Get("/export", handler.AuthRequired, handler.Export)

	api.Post("/billing/webhook", handler.BillingWebhook)
}
