package userValidator

import (
	"strings"

	"eduserve/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// UpsertUserRequest is the sign-in profile payload from the identity provider.
type UpsertUserRequest struct {
	Email          string `json:"email" validate:"required,email"`
	DisplayName    string `json:"displayName"`
	PhotoURL       string `json:"photoURL" validate:"omitempty,url"`
	CreationTime   string `json:"creationTime"`
	LastSignInTime string `json:"lastSignInTime"`
}

func UpsertUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpsertUserRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		// Validate Email
		if strings.TrimSpace(reqData.Email) == "" {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Email is required")
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid email address!")
		}

		c.Locals("validatedUser", reqData)
		return c.Next()
	}
}
