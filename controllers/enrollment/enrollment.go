package controllers

import (
	"errors"

	"eduserve/middleware"
	"eduserve/services/enrollment"
	enrollmentValidator "eduserve/validators/enrollment"

	"github.com/gofiber/fiber/v2"
)

type EnrollmentController struct {
	Engine *enrollment.Engine
}

func NewEnrollmentController(engine *enrollment.Engine) *EnrollmentController {
	return &EnrollmentController{Engine: engine}
}

// Toggle flips the caller's enrollment in a course and reports the seats left.
func (ctrl *EnrollmentController) Toggle(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedToggle").(*enrollmentValidator.ToggleRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	// The body email is never trusted on its own; it must match the
	// verified token identity.
	if reqData.Email != middleware.VerifiedEmail(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Forbidden access",
		})
	}

	result, err := ctrl.Engine.ToggleEnrollment(reqData.Email, reqData.CourseID)
	if err != nil {
		switch {
		case errors.Is(err, enrollment.ErrCourseNotFound):
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "course not found")
		case errors.Is(err, enrollment.ErrOwnCourse):
			return middleware.ErrorResponse(c, fiber.StatusForbidden, "You cannot enroll in your own course.")
		case errors.Is(err, enrollment.ErrQuotaExceeded):
			return middleware.ErrorResponse(c, fiber.StatusForbidden, "You can Enroll in only 3 Courses at a time")
		case errors.Is(err, enrollment.ErrNoSeats):
			return middleware.ErrorResponse(c, fiber.StatusForbidden, "No seats left")
		default:
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to toggle enrollment!")
		}
	}

	message := "Unenrolled successfully"
	if result.Enrolled {
		message = "Enrolled successfully"
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"message":   message,
		"enrolled":  result.Enrolled,
		"seatsLeft": result.SeatsLeft,
	})
}

// EnrollmentStatus reports whether the verified caller is enrolled in a course.
func (ctrl *EnrollmentController) EnrollmentStatus(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	enrolled, err := ctrl.Engine.IsEnrolled(middleware.VerifiedEmail(c), courseID)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to check enrollment!")
	}

	return c.JSON(fiber.Map{
		"enrolled": enrolled,
	})
}

// MyEnrollments lists the caller's enrolled courses as display summaries.
func (ctrl *EnrollmentController) MyEnrollments(c *fiber.Ctx) error {
	courses, err := ctrl.Engine.ListEnrolledCourses(c.Query("email"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to load enrolled courses",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    courses,
	})
}
