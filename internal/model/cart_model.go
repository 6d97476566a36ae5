package model

import "time"

// CartItemDocument serves both the shoppingCart and wishlist keys; the two
// collections persist the same shape.
type CartItemDocument struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Image        string    `json:"image"`
	Price        string    `json:"price"`
	RegularPrice string    `json:"regularPrice,omitempty"`
	Author       string    `json:"author"`
	Review       string    `json:"review"`
	Lesson       string    `json:"lesson"`
	AddedAt      time.Time `json:"addedAt"`
}
