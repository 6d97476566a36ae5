package model

import "time"

type EnrollmentDocument struct {
	ID               string     `json:"id"`
	UserID           string     `json:"userId"`
	CourseID         string     `json:"courseId"`
	CourseTitle      string     `json:"courseTitle"`
	Price            float64    `json:"price"`
	EnrolledAt       time.Time  `json:"enrolledAt"`
	Status           string     `json:"status"`
	Progress         int        `json:"progress"`
	CompletedLessons []string   `json:"completedLessons"`
	UpdatedAt        time.Time  `json:"updatedAt,omitempty"`
	CompletedAt      *time.Time `json:"completedAt,omitempty"`
	CancelledAt      *time.Time `json:"cancelledAt,omitempty"`
}
