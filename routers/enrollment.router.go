package routers

import (
	controllers "eduserve/controllers/enrollment"
	"eduserve/middleware"
	validators "eduserve/validators/enrollment"

	"github.com/gofiber/fiber/v2"
)

// SetupEnrollmentRoutes registers the enrollment engine routes.
func SetupEnrollmentRoutes(app *fiber.App, auth *middleware.Auth, ctrl *controllers.EnrollmentController) {
	api := app.Group("/api")

	api.Post("/enroll", auth.RequireAuth, validators.Toggle(), ctrl.Toggle)
	api.Get("/is-enrolled", auth.RequireAuth, validators.EnrollmentStatus(), ctrl.EnrollmentStatus)
	api.Get("/my-enrollments", auth.RequireAuth, auth.RequireEmailMatch, ctrl.MyEnrollments)
}
