package model

import "time"

type CourseDocument struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Author       string    `json:"author"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	Price        string    `json:"price"`
	RegularPrice string    `json:"regularPrice,omitempty"`
	Lesson       string    `json:"lesson"`
	Review       string    `json:"review"`
	Image        string    `json:"image"`
	Type         string    `json:"type"`
	CreatedAt    time.Time `json:"createdAt,omitempty"`
	UpdatedAt    time.Time `json:"updatedAt,omitempty"`
}
