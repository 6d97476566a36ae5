// Package data holds the bundled course dataset: the immutable seed of the
// catalog. Locally created courses are stored separately and concatenated
// after these.
package data

import "gospel-keys/internal/entity"

var bundledCourses = []entity.Course{
	{
		ID:           "gk-001",
		Title:        "Gospel Piano Foundations",
		Author:       "Marcus Reed",
		Description:  "Start from zero: posture, chords, and your first gospel progression.",
		Category:     "beginner",
		Price:        "$49.00",
		RegularPrice: "$69.00",
		Lesson:       "12",
		Review:       "4.8",
		Image:        "courses/1.png",
		Type:         "Beginner",
	},
	{
		ID:           "gk-002",
		Title:        "Worship Chords Demystified",
		Author:       "Marcus Reed",
		Description:  "Sevenths, ninths, and passing chords for modern worship playing.",
		Category:     "worship",
		Price:        "$59.00",
		RegularPrice: "$79.00",
		Lesson:       "15",
		Review:       "4.9",
		Image:        "courses/2.png",
		Type:         "Intermediate",
	},
	{
		ID:          "gk-003",
		Title:       "Play By Ear Bootcamp",
		Author:      "Danielle Hart",
		Description: "Train your ear to pick out melodies and harmonize them on the fly.",
		Category:    "ear-training",
		Price:       "$65.00",
		Lesson:      "10",
		Review:      "4.7",
		Image:       "courses/3.png",
		Type:        "Intermediate",
	},
	{
		ID:           "gk-004",
		Title:        "Hymns Reharmonized",
		Author:       "Danielle Hart",
		Description:  "Classic hymns with contemporary voicings and runs.",
		Category:     "hymns",
		Price:        "$55.00",
		RegularPrice: "$75.00",
		Lesson:       "14",
		Review:       "4.6",
		Image:        "courses/4.png",
		Type:         "Intermediate",
	},
	{
		ID:          "gk-005",
		Title:       "Left Hand Bass Patterns",
		Author:      "Marcus Reed",
		Description: "Walking bass, octave stabs, and shout-music left hand technique.",
		Category:    "technique",
		Price:       "$45.00",
		Lesson:      "8",
		Review:      "4.5",
		Image:       "courses/5.png",
		Type:        "Advanced",
	},
	{
		ID:           "gk-006",
		Title:        "Preacher Chords & Shout Music",
		Author:       "Andre Collins",
		Description:  "High-energy shout music patterns for the seasoned church musician.",
		Category:     "advanced",
		Price:        "$75.00",
		RegularPrice: "$99.00",
		Lesson:       "16",
		Review:       "4.9",
		Image:        "courses/6.png",
		Type:         "Advanced",
	},
}

// Courses returns a fresh copy so callers can never mutate the seed.
func Courses() []entity.Course {
	out := make([]entity.Course, len(bundledCourses))
	copy(out, bundledCourses)
	return out
}
