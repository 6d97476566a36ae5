package entity

import "time"

type EnrollmentStatus string

const (
	EnrollmentActive    EnrollmentStatus = "active"
	EnrollmentCompleted EnrollmentStatus = "completed"
	EnrollmentCancelled EnrollmentStatus = "cancelled"
)

// Enrollment records a purchase of one course by one user. At most one
// active enrollment may exist per (user, course) pair; cancellation is a
// terminal state transition, never a deletion.
type Enrollment struct {
	ID               string           `json:"id"`
	UserID           string           `json:"user_id"`
	CourseID         string           `json:"course_id"`
	CourseTitle      string           `json:"course_title"`
	Price            float64          `json:"price"`
	EnrolledAt       time.Time        `json:"enrolled_at"`
	Status           EnrollmentStatus `json:"status"`
	Progress         int              `json:"progress"`
	CompletedLessons []string         `json:"completed_lessons"`
	UpdatedAt        time.Time        `json:"updated_at,omitempty"`
	CompletedAt      *time.Time       `json:"completed_at,omitempty"`
	CancelledAt      *time.Time       `json:"cancelled_at,omitempty"`
}

type CourseStats struct {
	TotalEnrollments     int     `json:"total_enrollments"`
	ActiveEnrollments    int     `json:"active_enrollments"`
	CompletedEnrollments int     `json:"completed_enrollments"`
	TotalRevenue         float64 `json:"total_revenue"`
}

type UserStats struct {
	TotalCourses      int     `json:"total_courses"`
	CompletedCourses  int     `json:"completed_courses"`
	InProgressCourses int     `json:"in_progress_courses"`
	TotalSpent        float64 `json:"total_spent"`
}
