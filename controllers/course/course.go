package controllers

import (
	"errors"

	"eduserve/middleware"
	"eduserve/models"
	courseValidator "eduserve/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CourseController struct {
	DB *gorm.DB
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{DB: db}
}

// ListCourses returns the catalog, optionally ranked by popularity or recency.
func (ctrl *CourseController) ListCourses(c *fiber.Ctx) error {
	query, ok := c.Locals("validatedCourseList").(*courseValidator.ListCoursesQuery)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	db := ctrl.DB.Model(&models.Course{})

	switch query.Filter {
	case "popular":
		// Rank by enrollment count in a single join, most enrolled first.
		db = db.Select("courses.*, COUNT(enrollments.id) AS enroll_count").
			Joins("JOIN enrollments ON enrollments.course_id = courses.id").
			Group("courses.id").
			Order("enroll_count DESC")
	case "recent":
		db = db.Order("created_at DESC")
	}

	if query.Limit > 0 {
		db = db.Limit(query.Limit)
	}

	var courses []models.Course
	if err := db.Find(&courses).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch courses!")
	}

	return c.JSON(courses)
}

type authorInfo struct {
	DisplayName string `json:"displayName"`
	PhotoURL    string `json:"photoURL"`
}

// GetCourse returns a single course with the author's display fields embedded.
func (ctrl *CourseController) GetCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	var course models.Course
	if err := ctrl.DB.First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "Course not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	// Join author display fields; a missing author leaves them empty.
	var author models.User
	ctrl.DB.Where("email = ?", course.AuthorEmail).First(&author)

	return c.JSON(struct {
		models.Course
		AuthorInfo authorInfo `json:"authorInfo"`
	}{
		Course:     course,
		AuthorInfo: authorInfo{DisplayName: author.DisplayName, PhotoURL: author.PhotoURL},
	})
}

// CreateCourse stores a new course owned by the verified caller.
func (ctrl *CourseController) CreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CreateCourseRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	course := models.Course{
		Title:        reqData.Title,
		Description:  reqData.Description,
		Category:     reqData.Category,
		Level:        reqData.Level,
		AccessType:   reqData.AccessType,
		Image:        reqData.Image,
		Price:        reqData.Price,
		Duration:     reqData.Duration,
		TotalVideos:  reqData.TotalVideos,
		TotalLessons: reqData.TotalLessons,
		AuthorEmail:  middleware.VerifiedEmail(c),
		Seats:        *reqData.Seats,
		TotalSeats:   *reqData.Seats,
	}

	if err := ctrl.DB.Create(&course).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create course!")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"insertedId": course.ID,
	})
}

// MyCourses lists the courses authored by the verified caller.
func (ctrl *CourseController) MyCourses(c *fiber.Ctx) error {
	email := c.Query("email")

	db := ctrl.DB.Where("author_email = ?", email)
	if c.Query("filter") == "recent" {
		db = db.Order("created_at DESC")
	}

	var courses []models.Course
	if err := db.Find(&courses).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch courses!")
	}

	return c.JSON(courses)
}

// GetCourseForEdit returns the course for the edit form, owner only.
func (ctrl *CourseController) GetCourseForEdit(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	var course models.Course
	err := ctrl.DB.First(&course, courseID).Error
	if err != nil || course.AuthorEmail != c.Query("email") {
		return middleware.ErrorResponse(c, fiber.StatusForbidden, "Access denied")
	}

	return c.JSON(course)
}

// UpdateCourse applies a partial edit. The update is scoped to the verified
// owner in the WHERE clause, so a non-owner modifies nothing.
func (ctrl *CourseController) UpdateCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	reqData, ok := c.Locals("validatedCourseUpdate").(*courseValidator.UpdateCourseRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	updates := map[string]interface{}{}
	if reqData.Title != nil {
		updates["title"] = *reqData.Title
	}
	if reqData.Description != nil {
		updates["description"] = *reqData.Description
	}
	if reqData.Category != nil {
		updates["category"] = *reqData.Category
	}
	if reqData.Level != nil {
		updates["level"] = *reqData.Level
	}
	if reqData.AccessType != nil {
		updates["access_type"] = *reqData.AccessType
	}
	if reqData.Image != nil {
		updates["image"] = *reqData.Image
	}
	if reqData.Price != nil {
		updates["price"] = *reqData.Price
	}
	if reqData.Duration != nil {
		updates["duration"] = *reqData.Duration
	}
	if reqData.TotalVideos != nil {
		updates["total_videos"] = *reqData.TotalVideos
	}
	if reqData.TotalLessons != nil {
		updates["total_lessons"] = *reqData.TotalLessons
	}

	if len(updates) == 0 {
		return middleware.ErrorResponse(c, fiber.StatusForbidden, "Unauthorized or no Change")
	}

	result := ctrl.DB.Model(&models.Course{}).
		Where("id = ? AND author_email = ?", courseID, middleware.VerifiedEmail(c)).
		Updates(updates)
	if result.Error != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update course!")
	}
	if result.RowsAffected == 0 {
		return middleware.ErrorResponse(c, fiber.StatusForbidden, "Unauthorized or no Change")
	}

	return c.JSON(fiber.Map{
		"success":       true,
		"modifiedCount": result.RowsAffected,
	})
}

// DeleteCourse removes a course, owner only.
func (ctrl *CourseController) DeleteCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	email := c.Query("email")

	var course models.Course
	err := ctrl.DB.First(&course, courseID).Error
	if err != nil || course.AuthorEmail != email {
		return middleware.ErrorResponse(c, fiber.StatusForbidden, "Access denied.")
	}

	result := ctrl.DB.Delete(&course)
	if result.Error != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete course!")
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"deletedCount": result.RowsAffected,
	})
}
