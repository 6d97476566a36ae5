package entity

// ReceiptItem is one priced line of a checkout.
type ReceiptItem struct {
	CourseID string  `json:"course_id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
}

// Receipt is the outcome of a quote or a completed checkout. Amounts are
// rounded to two decimals.
type Receipt struct {
	Items       []ReceiptItem `json:"items"`
	Coupon      string        `json:"coupon,omitempty"`
	Subtotal    float64       `json:"subtotal"`
	Discount    float64       `json:"discount"`
	Total       float64       `json:"total"`
	Enrollments []*Enrollment `json:"enrollments,omitempty"`
}
