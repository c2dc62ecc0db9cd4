package courseValidator

import (
	"strconv"
	"strings"

	"eduserve/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// CreateCourseRequest carries the author-supplied course attributes. The
// author identity comes from the verified token, never from the body.
type CreateCourseRequest struct {
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Category     string  `json:"category"`
	Level        string  `json:"level" validate:"omitempty,oneof=Beginner Intermediate Advanced"`
	AccessType   string  `json:"accessType"`
	Image        string  `json:"image" validate:"omitempty,url"`
	Price        float64 `json:"price" validate:"min=0"`
	Duration     int64   `json:"duration" validate:"min=0"`
	TotalVideos  int     `json:"totalVideos" validate:"min=0"`
	TotalLessons int     `json:"totalLessons" validate:"min=0"`
	Seats        *int    `json:"seats" validate:"required,min=0"`
}

func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCourseRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		errors := make(map[string]string)

		// Validate Title
		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		} else if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		// Validate Description
		if strings.TrimSpace(reqData.Description) == "" {
			errors["description"] = "Description is required!"
		} else if len(strings.TrimSpace(reqData.Description)) < 5 {
			errors["description"] = "Description must be at least 5 characters long!"
		}

		// Validate Seats
		if reqData.Seats == nil {
			errors["seats"] = "Seats is required!"
		} else if *reqData.Seats < 0 {
			errors["seats"] = "Seats must not be negative!"
		}

		if err := validate.Struct(reqData); err != nil {
			for _, fieldErr := range err.(validator.ValidationErrors) {
				errors[strings.ToLower(fieldErr.Field())] = "Invalid value!"
			}
		}

		// Respond with validation errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// UpdateCourseRequest holds the editable course fields; nil means unchanged.
// Seat counts are owned by the enrollment engine and cannot be patched.
type UpdateCourseRequest struct {
	Title        *string  `json:"title"`
	Description  *string  `json:"description"`
	Category     *string  `json:"category"`
	Level        *string  `json:"level"`
	AccessType   *string  `json:"accessType"`
	Image        *string  `json:"image"`
	Price        *float64 `json:"price"`
	Duration     *int64   `json:"duration"`
	TotalVideos  *int     `json:"totalVideos"`
	TotalLessons *int     `json:"totalLessons"`
}

func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateCourseRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		errors := make(map[string]string)

		if reqData.Title != nil && len(strings.TrimSpace(*reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}
		if reqData.Description != nil && len(strings.TrimSpace(*reqData.Description)) < 5 {
			errors["description"] = "Description must be at least 5 characters long!"
		}
		if reqData.Price != nil && *reqData.Price < 0 {
			errors["price"] = "Price must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}

// ListCoursesQuery is the parsed listing query. Limit 0 means no limit, and
// an unrecognized filter falls through to the default listing.
type ListCoursesQuery struct {
	Filter string
	Limit  int
}

func ListCourses() fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := &ListCoursesQuery{Filter: c.Query("filter")}

		limitStr := c.Query("limit")
		if limitStr != "" {
			limit, err := strconv.Atoi(limitStr)
			if err != nil || limit < 0 {
				return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid limit!")
			}
			query.Limit = limit
		}

		c.Locals("validatedCourseList", query)
		return c.Next()
	}
}

// CourseID validates the :id route parameter.
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		if idStr == "" {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Course ID is required!")
		}

		// Validate CourseID is a valid integer
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid Course ID!")
		}

		c.Locals("courseID", uint(id))
		return c.Next()
	}
}
