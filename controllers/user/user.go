package controllers

import (
	"errors"

	"eduserve/middleware"
	"eduserve/models"
	userValidator "eduserve/validators/user"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// UpsertUser creates the user on first sign-in; repeat sign-ins return the
// existing record unchanged.
func (ctrl *UserController) UpsertUser(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedUser").(*userValidator.UpsertUserRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	// Check if user already exists
	var existing models.User
	err := ctrl.DB.Where("email = ?", reqData.Email).First(&existing).Error
	if err == nil {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "existing",
			"user":   existing,
		})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to look up user!")
	}

	user := models.User{
		Email:          reqData.Email,
		DisplayName:    reqData.DisplayName,
		PhotoURL:       reqData.PhotoURL,
		CreationTime:   reqData.CreationTime,
		LastSignInTime: reqData.LastSignInTime,
	}

	// The unique index on email rejects a concurrent duplicate sign-in.
	if err := ctrl.DB.Create(&user).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create user!")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":     "new",
		"insertedId": user.ID,
	})
}
