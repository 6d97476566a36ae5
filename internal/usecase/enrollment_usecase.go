package usecase

import (
	"context"
	"time"

	"gospel-keys/internal/entity"
	"gospel-keys/internal/repo/persistent"
	"gospel-keys/pkg/logger"

	"github.com/google/uuid"
)

type EnrollmentUseCase interface {
	Enroll(ctx context.Context, userID string, course *entity.Course) (*entity.Enrollment, error)
	IsEnrolled(ctx context.Context, userID, courseID string) bool
	GetUserEnrollments(ctx context.Context, userID string) []*entity.Enrollment
	GetAllEnrollments(ctx context.Context) ([]*entity.Enrollment, error)
	UpdateProgress(ctx context.Context, enrollmentID string, progress int) (*entity.Enrollment, error)
	CompleteLesson(ctx context.Context, enrollmentID, lessonID string) (*entity.Enrollment, error)
	CancelEnrollment(ctx context.Context, enrollmentID string) (*entity.Enrollment, error)
	GetCourseStats(ctx context.Context, courseID string) *entity.CourseStats
	GetUserStats(ctx context.Context, userID string) *entity.UserStats
}

type enrollmentUseCase struct {
	enrollmentRepo persistent.EnrollmentRepository
	logger         *logger.Logger
	now            func() time.Time
}

func NewEnrollmentUseCase(enrollmentRepo persistent.EnrollmentRepository, log *logger.Logger) EnrollmentUseCase {
	return &enrollmentUseCase{
		enrollmentRepo: enrollmentRepo,
		logger:         log,
		now:            time.Now,
	}
}

func (uc *enrollmentUseCase) Enroll(ctx context.Context, userID string, course *entity.Course) (*entity.Enrollment, error) {
	if uc.IsEnrolled(ctx, userID, course.ID) {
		return nil, entity.ErrAlreadyEnrolled
	}

	enrollment := &entity.Enrollment{
		ID:               uuid.New().String(),
		UserID:           userID,
		CourseID:         course.ID,
		CourseTitle:      course.Title,
		Price:            parseDisplayPrice(course.Price),
		EnrolledAt:       uc.now(),
		Status:           entity.EnrollmentActive,
		Progress:         0,
		CompletedLessons: []string{},
	}
	if err := uc.enrollmentRepo.Create(ctx, enrollment); err != nil {
		uc.logger.Error("Failed to create enrollment: %v", err)
		return nil, err
	}
	return enrollment, nil
}

// IsEnrolled only counts active enrollments; a cancelled one does not block
// re-enrolling in the same course.
func (uc *enrollmentUseCase) IsEnrolled(ctx context.Context, userID, courseID string) bool {
	enrollments, err := uc.enrollmentRepo.List(ctx)
	if err != nil {
		return false
	}
	for _, e := range enrollments {
		if e.UserID == userID && e.CourseID == courseID && e.Status == entity.EnrollmentActive {
			return true
		}
	}
	return false
}

// GetUserEnrollments returns the user's active enrollments, which is what a
// "my courses" page shows. Completed and cancelled records stay in storage
// and still feed the stats.
func (uc *enrollmentUseCase) GetUserEnrollments(ctx context.Context, userID string) []*entity.Enrollment {
	enrollments, err := uc.enrollmentRepo.List(ctx)
	if err != nil {
		uc.logger.Error("Failed to list enrollments: %v", err)
		return nil
	}
	var mine []*entity.Enrollment
	for _, e := range enrollments {
		if e.UserID == userID && e.Status == entity.EnrollmentActive {
			mine = append(mine, e)
		}
	}
	return mine
}

func (uc *enrollmentUseCase) GetAllEnrollments(ctx context.Context) ([]*entity.Enrollment, error) {
	return uc.enrollmentRepo.List(ctx)
}

// UpdateProgress clamps to [0,100]; hitting 100 marks the enrollment
// completed and stamps the completion time.
func (uc *enrollmentUseCase) UpdateProgress(ctx context.Context, enrollmentID string, progress int) (*entity.Enrollment, error) {
	enrollment, err := uc.enrollmentRepo.GetByID(ctx, enrollmentID)
	if err != nil {
		return nil, err
	}

	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}

	now := uc.now()
	enrollment.Progress = progress
	enrollment.UpdatedAt = now
	if progress == 100 && enrollment.Status == entity.EnrollmentActive {
		enrollment.Status = entity.EnrollmentCompleted
		enrollment.CompletedAt = &now
	}

	if err := uc.enrollmentRepo.Update(ctx, enrollment); err != nil {
		return nil, err
	}
	return enrollment, nil
}

// CompleteLesson records a lesson id once; completing the same lesson twice
// is a no-op.
func (uc *enrollmentUseCase) CompleteLesson(ctx context.Context, enrollmentID, lessonID string) (*entity.Enrollment, error) {
	enrollment, err := uc.enrollmentRepo.GetByID(ctx, enrollmentID)
	if err != nil {
		return nil, err
	}

	for _, done := range enrollment.CompletedLessons {
		if done == lessonID {
			return enrollment, nil
		}
	}

	enrollment.CompletedLessons = append(enrollment.CompletedLessons, lessonID)
	enrollment.UpdatedAt = uc.now()
	if err := uc.enrollmentRepo.Update(ctx, enrollment); err != nil {
		return nil, err
	}
	return enrollment, nil
}

// CancelEnrollment is terminal: the record stays, only the status flips.
func (uc *enrollmentUseCase) CancelEnrollment(ctx context.Context, enrollmentID string) (*entity.Enrollment, error) {
	enrollment, err := uc.enrollmentRepo.GetByID(ctx, enrollmentID)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	enrollment.Status = entity.EnrollmentCancelled
	enrollment.CancelledAt = &now
	enrollment.UpdatedAt = now

	if err := uc.enrollmentRepo.Update(ctx, enrollment); err != nil {
		return nil, err
	}
	return enrollment, nil
}

func (uc *enrollmentUseCase) GetCourseStats(ctx context.Context, courseID string) *entity.CourseStats {
	stats := &entity.CourseStats{}
	enrollments, err := uc.enrollmentRepo.List(ctx)
	if err != nil {
		return stats
	}
	for _, e := range enrollments {
		if e.CourseID != courseID {
			continue
		}
		stats.TotalEnrollments++
		switch e.Status {
		case entity.EnrollmentActive:
			stats.ActiveEnrollments++
			stats.TotalRevenue += e.Price
		case entity.EnrollmentCompleted:
			stats.CompletedEnrollments++
			stats.TotalRevenue += e.Price
		}
	}
	stats.TotalRevenue = round2(stats.TotalRevenue)
	return stats
}

func (uc *enrollmentUseCase) GetUserStats(ctx context.Context, userID string) *entity.UserStats {
	stats := &entity.UserStats{}
	enrollments, err := uc.enrollmentRepo.List(ctx)
	if err != nil {
		return stats
	}
	for _, e := range enrollments {
		if e.UserID != userID {
			continue
		}
		switch e.Status {
		case entity.EnrollmentActive:
			stats.TotalCourses++
			stats.InProgressCourses++
			stats.TotalSpent += e.Price
		case entity.EnrollmentCompleted:
			stats.TotalCourses++
			stats.CompletedCourses++
			stats.TotalSpent += e.Price
		}
	}
	stats.TotalSpent = round2(stats.TotalSpent)
	return stats
}
