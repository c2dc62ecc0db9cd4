package routers

import (
	controllers "eduserve/controllers/user"
	validators "eduserve/validators/user"

	"github.com/gofiber/fiber/v2"
)

// SetupUserRoutes registers the user sign-in upsert route.
func SetupUserRoutes(app *fiber.App, ctrl *controllers.UserController) {
	api := app.Group("/api")

	api.Post("/users", validators.UpsertUser(), ctrl.UpsertUser)
}
