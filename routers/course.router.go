package routers

import (
	controllers "eduserve/controllers/course"
	"eduserve/middleware"
	validators "eduserve/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes registers catalog browsing and ownership-gated authoring
// routes. All mutating routes require a verified identity.
func SetupCourseRoutes(app *fiber.App, auth *middleware.Auth, ctrl *controllers.CourseController) {
	api := app.Group("/api")

	// Public catalog
	api.Get("/courses", validators.ListCourses(), ctrl.ListCourses)
	api.Get("/courses/:id", validators.CourseID(), ctrl.GetCourse)

	// Authoring
	api.Post("/courses", auth.RequireAuth, validators.CreateCourse(), ctrl.CreateCourse)
	api.Get("/my-courses", auth.RequireAuth, auth.RequireEmailMatch, ctrl.MyCourses)
	api.Get("/edit-course/:id", auth.RequireAuth, auth.RequireEmailMatch, validators.CourseID(), ctrl.GetCourseForEdit)
	api.Patch("/edit-course/:id", auth.RequireAuth, auth.RequireEmailMatch, validators.CourseID(), validators.UpdateCourse(), ctrl.UpdateCourse)
	api.Delete("/delete-course/:id", auth.RequireAuth, auth.RequireEmailMatch, validators.CourseID(), ctrl.DeleteCourse)
}
