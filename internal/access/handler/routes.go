package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *UserHandler) {
	user := app.Group("/api/v1/user")

	user.Post("/enrollment", h.Enroll)
	user.Get("/", h.List)
	user.Put("/verification", h.Verify)
	user.Post("/password", h.InitiateReset)
	user.Put("/password", h.ChangePassword)
	user.Post("/login", h.Login)
	user.Get("/:id", h.Get)
	user.Patch("/:id", h.PatchGrant)
	user.Delete("/:id", h.RevokeAll)
}
