package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, h *Handler, log *zap.Logger) {
	app.Use(RequestLogger(log))

	app.Get("/healthz", h.Health)
	app.Get("/", h.Index)
	app.Get("/sessions/:id", h.EditorPage)

	s := app.Group("/api/sessions")
	s.Post("/", h.CreateSession)
	s.Get("/:id", h.GetSession)
	s.Delete("/:id", h.DeleteSession)
	s.Post("/:id/commands", h.ApplyCommand)
	s.Put("/:id/fields/:field", h.SetField)
	s.Post("/:id/lists/:list", h.AddItem)
	s.Put("/:id/lists/:list/:index", h.UpdateItem)
	s.Delete("/:id/lists/:list/:index", h.RemoveItem)
	s.Get("/:id/preview", h.Preview)
	s.Get("/:id/preview.html", h.PreviewHTML)
	s.Get("/:id/export.pdf", h.ExportPDF)
	s.Get("/:id/exports", h.ExportCount)
}

// RequestLogger logs every request once it has been handled.
func RequestLogger(log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.Debug("request",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return err
	}
}
