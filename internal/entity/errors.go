package entity

import "errors"

// Domain errors. Handlers map these to HTTP statuses with errors.Is;
// anything else is a 500.
var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrWrongPassword      = errors.New("current password is incorrect")
	ErrSelfDelete         = errors.New("cannot delete your own account")

	ErrUserNotFound       = errors.New("user not found")
	ErrCourseNotFound     = errors.New("course not found")
	ErrEnrollmentNotFound = errors.New("enrollment not found")

	ErrAlreadyInCart     = errors.New("course already in cart")
	ErrAlreadyInWishlist = errors.New("course already in wishlist")
	ErrNotInWishlist     = errors.New("course not found in wishlist")
	ErrAlreadyEnrolled   = errors.New("already enrolled in this course")

	ErrStorage = errors.New("storage write failed")
)
