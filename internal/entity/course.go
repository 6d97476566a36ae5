package entity

import "time"

// Course is a catalog record. Prices are display-formatted strings with a
// fixed "$" prefix, as the storefront has always rendered them. Bundled
// courses have no timestamps; locally created ones do.
type Course struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Author       string    `json:"author"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	Price        string    `json:"price"`
	RegularPrice string    `json:"regular_price,omitempty"`
	Lesson       string    `json:"lesson"`
	Review       string    `json:"review"`
	Image        string    `json:"image"`
	Type         string    `json:"type"`
	CreatedAt    time.Time `json:"created_at,omitempty"`
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
}

// CourseUpdate carries the mutable fields of a course; nil means unchanged.
type CourseUpdate struct {
	Title        *string `json:"title"`
	Author       *string `json:"author"`
	Description  *string `json:"description"`
	Category     *string `json:"category"`
	Price        *string `json:"price"`
	RegularPrice *string `json:"regular_price"`
	Lesson       *string `json:"lesson"`
	Review       *string `json:"review"`
	Image        *string `json:"image"`
	Type         *string `json:"type"`
}
