package entity

import "time"

// CartItem is a snapshot of the course at the moment it was added. The id
// doubles as the course id; a cart never holds two items with the same id.
type CartItem struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Image        string    `json:"image"`
	Price        string    `json:"price"`
	RegularPrice string    `json:"regular_price,omitempty"`
	Author       string    `json:"author"`
	Review       string    `json:"review"`
	Lesson       string    `json:"lesson"`
	AddedAt      time.Time `json:"added_at"`
}

// WishlistItem mirrors CartItem; a course may sit in both collections.
type WishlistItem struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Image        string    `json:"image"`
	Price        string    `json:"price"`
	RegularPrice string    `json:"regular_price,omitempty"`
	Author       string    `json:"author"`
	Review       string    `json:"review"`
	Lesson       string    `json:"lesson"`
	AddedAt      time.Time `json:"added_at"`
}

func NewCartItem(course *Course, addedAt time.Time) *CartItem {
	return &CartItem{
		ID:           course.ID,
		Title:        course.Title,
		Image:        course.Image,
		Price:        course.Price,
		RegularPrice: course.RegularPrice,
		Author:       course.Author,
		Review:       course.Review,
		Lesson:       course.Lesson,
		AddedAt:      addedAt,
	}
}

func NewWishlistItem(course *Course, addedAt time.Time) *WishlistItem {
	return &WishlistItem{
		ID:           course.ID,
		Title:        course.Title,
		Image:        course.Image,
		Price:        course.Price,
		RegularPrice: course.RegularPrice,
		Author:       course.Author,
		Review:       course.Review,
		Lesson:       course.Lesson,
		AddedAt:      addedAt,
	}
}
