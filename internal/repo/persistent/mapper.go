package persistent

import (
	"time"

	"gospel-keys/internal/entity"
	"gospel-keys/internal/model"
)

func ToUserEntity(m *model.UserDocument) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:           m.ID,
		Email:        m.Email,
		Username:     m.Username,
		PasswordHash: m.Password,
		Role:         entity.UserRole(m.Role),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func ToUserDocument(e *entity.User) *model.UserDocument {
	if e == nil {
		return nil
	}

	return &model.UserDocument{
		ID:        e.ID,
		Email:     e.Email,
		Username:  e.Username,
		Password:  e.PasswordHash,
		Role:      string(e.Role),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToSessionEntity(m *model.SessionDocument) *entity.Session {
	if m == nil {
		return nil
	}

	return &entity.Session{
		UserID:    m.UserID,
		CreatedAt: time.UnixMilli(m.CreatedAt),
		ExpiresAt: time.UnixMilli(m.ExpiresAt),
	}
}

func ToSessionDocument(e *entity.Session) *model.SessionDocument {
	if e == nil {
		return nil
	}

	return &model.SessionDocument{
		UserID:    e.UserID,
		CreatedAt: e.CreatedAt.UnixMilli(),
		ExpiresAt: e.ExpiresAt.UnixMilli(),
	}
}

func ToCourseEntity(m *model.CourseDocument) *entity.Course {
	if m == nil {
		return nil
	}

	return &entity.Course{
		ID:           m.ID,
		Title:        m.Title,
		Author:       m.Author,
		Description:  m.Description,
		Category:     m.Category,
		Price:        m.Price,
		RegularPrice: m.RegularPrice,
		Lesson:       m.Lesson,
		Review:       m.Review,
		Image:        m.Image,
		Type:         m.Type,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func ToCourseDocument(e *entity.Course) *model.CourseDocument {
	if e == nil {
		return nil
	}

	return &model.CourseDocument{
		ID:           e.ID,
		Title:        e.Title,
		Author:       e.Author,
		Description:  e.Description,
		Category:     e.Category,
		Price:        e.Price,
		RegularPrice: e.RegularPrice,
		Lesson:       e.Lesson,
		Review:       e.Review,
		Image:        e.Image,
		Type:         e.Type,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func ToCartItemEntity(m *model.CartItemDocument) *entity.CartItem {
	if m == nil {
		return nil
	}

	return &entity.CartItem{
		ID:           m.ID,
		Title:        m.Title,
		Image:        m.Image,
		Price:        m.Price,
		RegularPrice: m.RegularPrice,
		Author:       m.Author,
		Review:       m.Review,
		Lesson:       m.Lesson,
		AddedAt:      m.AddedAt,
	}
}

func ToCartItemDocument(e *entity.CartItem) *model.CartItemDocument {
	if e == nil {
		return nil
	}

	return &model.CartItemDocument{
		ID:           e.ID,
		Title:        e.Title,
		Image:        e.Image,
		Price:        e.Price,
		RegularPrice: e.RegularPrice,
		Author:       e.Author,
		Review:       e.Review,
		Lesson:       e.Lesson,
		AddedAt:      e.AddedAt,
	}
}

func ToWishlistItemEntity(m *model.CartItemDocument) *entity.WishlistItem {
	if m == nil {
		return nil
	}

	return &entity.WishlistItem{
		ID:           m.ID,
		Title:        m.Title,
		Image:        m.Image,
		Price:        m.Price,
		RegularPrice: m.RegularPrice,
		Author:       m.Author,
		Review:       m.Review,
		Lesson:       m.Lesson,
		AddedAt:      m.AddedAt,
	}
}

func ToWishlistItemDocument(e *entity.WishlistItem) *model.CartItemDocument {
	if e == nil {
		return nil
	}

	return &model.CartItemDocument{
		ID:           e.ID,
		Title:        e.Title,
		Image:        e.Image,
		Price:        e.Price,
		RegularPrice: e.RegularPrice,
		Author:       e.Author,
		Review:       e.Review,
		Lesson:       e.Lesson,
		AddedAt:      e.AddedAt,
	}
}

func ToEnrollmentEntity(m *model.EnrollmentDocument) *entity.Enrollment {
	if m == nil {
		return nil
	}

	return &entity.Enrollment{
		ID:               m.ID,
		UserID:           m.UserID,
		CourseID:         m.CourseID,
		CourseTitle:      m.CourseTitle,
		Price:            m.Price,
		EnrolledAt:       m.EnrolledAt,
		Status:           entity.EnrollmentStatus(m.Status),
		Progress:         m.Progress,
		CompletedLessons: m.CompletedLessons,
		UpdatedAt:        m.UpdatedAt,
		CompletedAt:      m.CompletedAt,
		CancelledAt:      m.CancelledAt,
	}
}

func ToEnrollmentDocument(e *entity.Enrollment) *model.EnrollmentDocument {
	if e == nil {
		return nil
	}

	return &model.EnrollmentDocument{
		ID:               e.ID,
		UserID:           e.UserID,
		CourseID:         e.CourseID,
		CourseTitle:      e.CourseTitle,
		Price:            e.Price,
		EnrolledAt:       e.EnrolledAt,
		Status:           string(e.Status),
		Progress:         e.Progress,
		CompletedLessons: e.CompletedLessons,
		UpdatedAt:        e.UpdatedAt,
		CompletedAt:      e.CompletedAt,
		CancelledAt:      e.CancelledAt,
	}
}
