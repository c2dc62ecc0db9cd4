package enrollmentValidator

import (
	"strconv"
	"strings"

	"eduserve/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ToggleRequest is the enroll/unenroll body. The email must match the
// verified token identity; the controller enforces that.
type ToggleRequest struct {
	Email    string `json:"email" validate:"required,email"`
	CourseID uint   `json:"courseId"`
}

func Toggle() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ToggleRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		if strings.TrimSpace(reqData.Email) == "" || reqData.CourseID == 0 {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Missing fields")
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid email address!")
		}

		c.Locals("validatedToggle", reqData)
		return c.Next()
	}
}

// EnrollmentStatus validates the courseId query parameter.
func EnrollmentStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseIDStr := strings.TrimSpace(c.Query("courseId"))
		if courseIDStr == "" {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Course ID is required!")
		}

		courseID, err := strconv.Atoi(courseIDStr)
		if err != nil || courseID <= 0 {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid Course ID!")
		}

		c.Locals("courseID", uint(courseID))
		return c.Next()
	}
}
