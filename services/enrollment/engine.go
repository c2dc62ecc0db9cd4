package enrollment

import (
	"errors"
	"fmt"
	"time"

	"eduserve/models"

	"gorm.io/gorm"
)

// MaxActiveEnrollments is the per-learner cap on concurrently held seats.
const MaxActiveEnrollments = 3

var (
	ErrCourseNotFound = errors.New("course not found")
	ErrOwnCourse      = errors.New("cannot enroll in own course")
	ErrQuotaExceeded  = errors.New("enrollment quota exceeded")
	ErrNoSeats        = errors.New("no seats left")
)

// ToggleResult reports the state after a toggle.
type ToggleResult struct {
	Enrolled  bool
	SeatsLeft int
}

// Engine flips a learner's enrollment in a course while keeping the seat
// counter bounded and the per-learner quota enforced. Every toggle runs
// under a per-learner and per-course lock, and all mutations of a toggle
// commit in a single transaction, so an enrollment row and its seat
// deduction can never be observed half-applied.
type Engine struct {
	db    *gorm.DB
	locks *keyLock
}

func NewEngine(db *gorm.DB) *Engine {
	return &Engine{db: db, locks: newKeyLock()}
}

// ToggleEnrollment enrolls the learner if no enrollment exists, otherwise
// unenrolls them. Only the enroll direction is capacity- and quota-checked;
// releasing a held seat always succeeds.
func (e *Engine) ToggleEnrollment(learnerEmail string, courseID uint) (ToggleResult, error) {
	// Lock order is fixed (learner, then course) so concurrent toggles
	// touching the same pair cannot deadlock.
	unlockLearner := e.locks.lock("user:" + learnerEmail)
	defer unlockLearner()
	unlockCourse := e.locks.lock(fmt.Sprintf("course:%d", courseID))
	defer unlockCourse()

	var res ToggleResult
	err := e.db.Transaction(func(tx *gorm.DB) error {
		var course models.Course
		if err := tx.First(&course, courseID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCourseNotFound
			}
			return err
		}

		if course.AuthorEmail == learnerEmail {
			return ErrOwnCourse
		}

		var existing models.Enrollment
		err := tx.Where("email = ? AND course_id = ?", learnerEmail, courseID).First(&existing).Error
		switch {
		case err == nil:
			// Unenroll: delete the record and release the seat. The
			// counter never passes its original allotment.
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
			release := tx.Model(&models.Course{}).
				Where("id = ? AND seats < total_seats", courseID).
				UpdateColumn("seats", gorm.Expr("seats + 1"))
			if release.Error != nil {
				return release.Error
			}
			res.Enrolled = false

		case errors.Is(err, gorm.ErrRecordNotFound):
			// Enroll: quota first, then capacity, no mutation on failure.
			var active int64
			if err := tx.Model(&models.Enrollment{}).Where("email = ?", learnerEmail).Count(&active).Error; err != nil {
				return err
			}
			if active >= MaxActiveEnrollments {
				return ErrQuotaExceeded
			}

			// Conditional decrement: claims the seat only if one is left.
			claim := tx.Model(&models.Course{}).
				Where("id = ? AND seats > 0", courseID).
				UpdateColumn("seats", gorm.Expr("seats - 1"))
			if claim.Error != nil {
				return claim.Error
			}
			if claim.RowsAffected == 0 {
				return ErrNoSeats
			}

			record := models.Enrollment{
				Email:      learnerEmail,
				CourseID:   courseID,
				EnrolledAt: time.Now(),
			}
			if err := tx.Create(&record).Error; err != nil {
				return err
			}
			res.Enrolled = true

		default:
			return err
		}

		// Report the post-mutation seat count.
		var updated models.Course
		if err := tx.First(&updated, courseID).Error; err != nil {
			return err
		}
		res.SeatsLeft = updated.Seats
		return nil
	})
	if err != nil {
		return ToggleResult{}, err
	}
	return res, nil
}

// IsEnrolled reports whether the learner currently holds a seat in the course.
func (e *Engine) IsEnrolled(learnerEmail string, courseID uint) (bool, error) {
	var count int64
	err := e.db.Model(&models.Enrollment{}).
		Where("email = ? AND course_id = ?", learnerEmail, courseID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListEnrolledCourses resolves the learner's enrollments to course
// summaries, in enrollment insertion order.
func (e *Engine) ListEnrolledCourses(learnerEmail string) ([]models.CourseSummary, error) {
	summaries := []models.CourseSummary{}
	err := e.db.Model(&models.Enrollment{}).
		Select("courses.id, courses.title, courses.image, courses.price, courses.level, courses.description").
		Joins("JOIN courses ON courses.id = enrollments.course_id AND courses.deleted_at IS NULL").
		Where("enrollments.email = ?", learnerEmail).
		Order("enrollments.id").
		Scan(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}
