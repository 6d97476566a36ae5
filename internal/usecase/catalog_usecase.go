package usecase

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"gospel-keys/internal/entity"
	"gospel-keys/internal/repo/persistent"
	"gospel-keys/pkg/logger"
	"gospel-keys/pkg/s3"
)

type CatalogUseCase interface {
	GetAllCourses(ctx context.Context) []*entity.Course
	GetCourseByID(ctx context.Context, id string) (*entity.Course, error)
	SearchCourses(ctx context.Context, query string) []*entity.Course
	GetCoursesByCategory(ctx context.Context, category string) []*entity.Course
	CreateCourse(ctx context.Context, course entity.Course) (*entity.Course, error)
	UpdateCourse(ctx context.Context, id string, updates entity.CourseUpdate) (*entity.Course, error)
	DeleteCourse(ctx context.Context, id string) error
	UploadCourseImage(ctx context.Context, id string, file io.Reader, fileKey, contentType string) (*entity.Course, error)
}

type catalogUseCase struct {
	courseRepo persistent.CourseRepository
	bundled    []entity.Course
	s3Client   *s3.Client
	logger     *logger.Logger
	now        func() time.Time
}

func NewCatalogUseCase(
	courseRepo persistent.CourseRepository,
	bundled []entity.Course,
	s3Client *s3.Client,
	log *logger.Logger,
) CatalogUseCase {
	return &catalogUseCase{
		courseRepo: courseRepo,
		bundled:    bundled,
		s3Client:   s3Client,
		logger:     log,
		now:        time.Now,
	}
}

// GetAllCourses returns bundled courses first, then locally added ones.
func (uc *catalogUseCase) GetAllCourses(ctx context.Context) []*entity.Course {
	courses := make([]*entity.Course, 0, len(uc.bundled))
	for i := range uc.bundled {
		c := uc.bundled[i]
		courses = append(courses, &c)
	}
	local, err := uc.courseRepo.List(ctx)
	if err != nil {
		uc.logger.Error("Failed to list local courses: %v", err)
		return courses
	}
	return append(courses, local...)
}

func (uc *catalogUseCase) GetCourseByID(ctx context.Context, id string) (*entity.Course, error) {
	for _, course := range uc.GetAllCourses(ctx) {
		if course.ID == id {
			return course, nil
		}
	}
	return nil, entity.ErrCourseNotFound
}

func (uc *catalogUseCase) SearchCourses(ctx context.Context, query string) []*entity.Course {
	q := strings.ToLower(query)
	var matches []*entity.Course
	for _, course := range uc.GetAllCourses(ctx) {
		if strings.Contains(strings.ToLower(course.Title), q) ||
			strings.Contains(strings.ToLower(course.Description), q) {
			matches = append(matches, course)
		}
	}
	return matches
}

func (uc *catalogUseCase) GetCoursesByCategory(ctx context.Context, category string) []*entity.Course {
	var matches []*entity.Course
	for _, course := range uc.GetAllCourses(ctx) {
		if strings.EqualFold(course.Category, category) {
			matches = append(matches, course)
		}
	}
	return matches
}

func (uc *catalogUseCase) CreateCourse(ctx context.Context, course entity.Course) (*entity.Course, error) {
	now := uc.now()
	// Course ids have always been millisecond timestamps
	course.ID = fmt.Sprintf("%d", now.UnixMilli())
	course.CreatedAt = now
	if course.Image == "" {
		course.Image = "courses/1.png"
	}

	if err := uc.courseRepo.Create(ctx, &course); err != nil {
		uc.logger.Error("Failed to create course: %v", err)
		return nil, err
	}
	return &course, nil
}

// UpdateCourse only touches the locally added list. Bundled courses are an
// immutable seed; an update against one reports not found.
func (uc *catalogUseCase) UpdateCourse(ctx context.Context, id string, updates entity.CourseUpdate) (*entity.Course, error) {
	course, err := uc.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyIfSet := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	applyIfSet(&course.Title, updates.Title)
	applyIfSet(&course.Author, updates.Author)
	applyIfSet(&course.Description, updates.Description)
	applyIfSet(&course.Category, updates.Category)
	applyIfSet(&course.Price, updates.Price)
	applyIfSet(&course.RegularPrice, updates.RegularPrice)
	applyIfSet(&course.Lesson, updates.Lesson)
	applyIfSet(&course.Review, updates.Review)
	applyIfSet(&course.Image, updates.Image)
	applyIfSet(&course.Type, updates.Type)
	course.UpdatedAt = uc.now()

	if err := uc.courseRepo.Update(ctx, course); err != nil {
		uc.logger.Error("Failed to update course %s: %v", id, err)
		return nil, err
	}
	return course, nil
}

// DeleteCourse removes a locally added course. Bundled courses never sit in
// the local list, so deleting one reports not found and the course stays
// visible.
func (uc *catalogUseCase) DeleteCourse(ctx context.Context, id string) error {
	return uc.courseRepo.Delete(ctx, id)
}

func (uc *catalogUseCase) UploadCourseImage(ctx context.Context, id string, file io.Reader, fileKey, contentType string) (*entity.Course, error) {
	if uc.s3Client == nil {
		return nil, fmt.Errorf("image upload is not configured")
	}

	if _, err := uc.courseRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	url, err := uc.s3Client.UploadFile(fileKey, file, contentType)
	if err != nil {
		uc.logger.Error("Failed to upload course image: %v", err)
		return nil, fmt.Errorf("failed to upload image")
	}

	return uc.UpdateCourse(ctx, id, entity.CourseUpdate{Image: &url})
}
