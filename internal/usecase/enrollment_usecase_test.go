package usecase

import (
	"context"
	"testing"

	"gospel-keys/internal/entity"
	"gospel-keys/internal/repo/persistent"
	"gospel-keys/pkg/kvstore"
	"gospel-keys/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEnrollmentFixture(t *testing.T) EnrollmentUseCase {
	t.Helper()
	log := logger.New()
	store := kvstore.NewMemoryStore(log)
	return NewEnrollmentUseCase(persistent.NewEnrollmentRepository(store), log)
}

func TestEnroll(t *testing.T) {
	uc := newEnrollmentFixture(t)
	ctx := context.Background()

	enrollment, err := uc.Enroll(ctx, "user-1", testCourse("gk-001", "Foundations", "$49.00"))
	require.NoError(t, err)

	assert.NotEmpty(t, enrollment.ID)
	assert.Equal(t, entity.EnrollmentActive, enrollment.Status)
	assert.Equal(t, 49.00, enrollment.Price)
	assert.Zero(t, enrollment.Progress)
	assert.True(t, uc.IsEnrolled(ctx, "user-1", "gk-001"))
}

func TestEnroll_DuplicateActive(t *testing.T) {
	uc := newEnrollmentFixture(t)
	ctx := context.Background()
	course := testCourse("gk-001", "Foundations", "$49.00")

	_, err := uc.Enroll(ctx, "user-1", course)
	require.NoError(t, err)

	_, err = uc.Enroll(ctx, "user-1", course)
	assert.ErrorIs(t, err, entity.ErrAlreadyEnrolled)

	// A different user is unaffected
	_, err = uc.Enroll(ctx, "user-2", course)
	assert.NoError(t, err)
}

func TestEnroll_AllowedAfterCancellation(t *testing.T) {
	uc := newEnrollmentFixture(t)
	ctx := context.Background()
	course := testCourse("gk-001", "Foundations", "$49.00")

	first, err := uc.Enroll(ctx, "user-1", course)
	require.NoError(t, err)
	_, err = uc.CancelEnrollment(ctx, first.ID)
	require.NoError(t, err)

	assert.False(t, uc.IsEnrolled(ctx, "user-1", "gk-001"))
	_, err = uc.Enroll(ctx, "user-1", course)
	assert.NoError(t, err)
}

func TestUpdateProgress_Clamps(t *testing.T) {
	uc := newEnrollmentFixture(t)
	ctx := context.Background()
	enrollment, err := uc.Enroll(ctx, "user-1", testCourse("gk-001", "Foundations", "$49.00"))
	require.NoError(t, err)

	updated, err := uc.UpdateProgress(ctx, enrollment.ID, -20)
	require.NoError(t, err)
	assert.Zero(t, updated.Progress)

	updated, err = uc.UpdateProgress(ctx, enrollment.ID, 150)
	require.NoError(t, err)
	assert.Equal(t, 100, updated.Progress)
}

func TestUpdateProgress_FullProgressCompletes(t *testing.T) {
	uc := newEnrollmentFixture(t)
	ctx := context.Background()
	enrollment, err := uc.Enroll(ctx, "user-1", testCourse("gk-001", "Foundations", "$49.00"))
	require.NoError(t, err)

	updated, err := uc.UpdateProgress(ctx, enrollment.ID, 100)
	require.NoError(t, err)

	assert.Equal(t, entity.EnrollmentCompleted, updated.Status)
	require.NotNil(t, updated.CompletedAt)
	// A completed course no longer shows up as an active enrollment
	assert.Empty(t, uc.GetUserEnrollments(ctx, "user-1"))
}

func TestCompleteLesson_Idempotent(t *testing.T) {
	uc := newEnrollmentFixture(t)
	ctx := context.Background()
	enrollment, err := uc.Enroll(ctx, "user-1", testCourse("gk-001", "Foundations", "$49.00"))
	require.NoError(t, err)

	updated, err := uc.CompleteLesson(ctx, enrollment.ID, "lesson-3")
	require.NoError(t, err)
	assert.Equal(t, []string{"lesson-3"}, updated.CompletedLessons)

	updated, err = uc.CompleteLesson(ctx, enrollment.ID, "lesson-3")
	require.NoError(t, err)
	assert.Equal(t, []string{"lesson-3"}, updated.CompletedLessons)
}

func TestCancelEnrollment_KeepsRecord(t *testing.T) {
	uc := newEnrollmentFixture(t)
	ctx := context.Background()
	enrollment, err := uc.Enroll(ctx, "user-1", testCourse("gk-001", "Foundations", "$49.00"))
	require.NoError(t, err)

	cancelled, err := uc.CancelEnrollment(ctx, enrollment.ID)
	require.NoError(t, err)

	assert.Equal(t, entity.EnrollmentCancelled, cancelled.Status)
	require.NotNil(t, cancelled.CancelledAt)

	all, err := uc.GetAllEnrollments(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestUpdateProgress_UnknownEnrollment(t *testing.T) {
	uc := newEnrollmentFixture(t)

	_, err := uc.UpdateProgress(context.Background(), "nope", 50)

	assert.ErrorIs(t, err, entity.ErrEnrollmentNotFound)
}

func TestCourseStats(t *testing.T) {
	uc := newEnrollmentFixture(t)
	ctx := context.Background()
	course := testCourse("gk-001", "Foundations", "$49.00")

	first, err := uc.Enroll(ctx, "user-1", course)
	require.NoError(t, err)
	_, err = uc.Enroll(ctx, "user-2", course)
	require.NoError(t, err)
	third, err := uc.Enroll(ctx, "user-3", course)
	require.NoError(t, err)

	_, err = uc.UpdateProgress(ctx, first.ID, 100)
	require.NoError(t, err)
	_, err = uc.CancelEnrollment(ctx, third.ID)
	require.NoError(t, err)

	stats := uc.GetCourseStats(ctx, "gk-001")
	assert.Equal(t, 3, stats.TotalEnrollments)
	assert.Equal(t, 1, stats.ActiveEnrollments)
	assert.Equal(t, 1, stats.CompletedEnrollments)
	// Cancelled enrollments do not count toward revenue
	assert.Equal(t, 98.00, stats.TotalRevenue)
}

func TestUserStats(t *testing.T) {
	uc := newEnrollmentFixture(t)
	ctx := context.Background()

	first, err := uc.Enroll(ctx, "user-1", testCourse("gk-001", "Foundations", "$49.00"))
	require.NoError(t, err)
	_, err = uc.Enroll(ctx, "user-1", testCourse("gk-002", "Worship Chords", "$59.00"))
	require.NoError(t, err)

	_, err = uc.UpdateProgress(ctx, first.ID, 100)
	require.NoError(t, err)

	stats := uc.GetUserStats(ctx, "user-1")
	assert.Equal(t, 2, stats.TotalCourses)
	assert.Equal(t, 1, stats.CompletedCourses)
	assert.Equal(t, 1, stats.InProgressCourses)
	assert.Equal(t, 108.00, stats.TotalSpent)
}
