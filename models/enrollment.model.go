package models

import "time"

// Enrollment records an active seat held by a learner in a course.
// Existence of a row is the sole source of truth for "enrolled": rows are
// hard-deleted on unenroll, and the composite unique index guarantees at
// most one row per (email, course_id) pair.
type Enrollment struct {
	ID         uint      `json:"id" gorm:"primarykey"`
	Email      string    `json:"email" gorm:"index;uniqueIndex:idx_enrollments_email_course"`
	CourseID   uint      `json:"courseId" gorm:"uniqueIndex:idx_enrollments_email_course"`
	EnrolledAt time.Time `json:"enrolledAt"`
}
