package persistent

import (
	"context"

	"gospel-keys/internal/entity"
	"gospel-keys/internal/model"
	"gospel-keys/pkg/kvstore"
)

// CourseRepository manages only the locally added course list. The bundled
// dataset never passes through here; merging is catalog logic.
type CourseRepository interface {
	List(ctx context.Context) ([]*entity.Course, error)
	GetByID(ctx context.Context, id string) (*entity.Course, error)
	Create(ctx context.Context, course *entity.Course) error
	Update(ctx context.Context, course *entity.Course) error
	Delete(ctx context.Context, id string) error
}

type courseRepository struct {
	store kvstore.Store
}

func NewCourseRepository(store kvstore.Store) CourseRepository {
	return &courseRepository{store: store}
}

func (r *courseRepository) load(ctx context.Context) []model.CourseDocument {
	var docs []model.CourseDocument
	r.store.Get(ctx, keyCourses, &docs)
	return docs
}

func (r *courseRepository) save(ctx context.Context, docs []model.CourseDocument) error {
	if !r.store.Set(ctx, keyCourses, docs) {
		return entity.ErrStorage
	}
	return nil
}

func (r *courseRepository) List(ctx context.Context) ([]*entity.Course, error) {
	docs := r.load(ctx)
	courses := make([]*entity.Course, len(docs))
	for i := range docs {
		courses[i] = ToCourseEntity(&docs[i])
	}
	return courses, nil
}

func (r *courseRepository) GetByID(ctx context.Context, id string) (*entity.Course, error) {
	for _, doc := range r.load(ctx) {
		if doc.ID == id {
			return ToCourseEntity(&doc), nil
		}
	}
	return nil, entity.ErrCourseNotFound
}

func (r *courseRepository) Create(ctx context.Context, course *entity.Course) error {
	docs := r.load(ctx)
	docs = append(docs, *ToCourseDocument(course))
	return r.save(ctx, docs)
}

func (r *courseRepository) Update(ctx context.Context, course *entity.Course) error {
	docs := r.load(ctx)
	for i := range docs {
		if docs[i].ID == course.ID {
			docs[i] = *ToCourseDocument(course)
			return r.save(ctx, docs)
		}
	}
	return entity.ErrCourseNotFound
}

func (r *courseRepository) Delete(ctx context.Context, id string) error {
	docs := r.load(ctx)
	for i := range docs {
		if docs[i].ID == id {
			docs = append(docs[:i], docs[i+1:]...)
			return r.save(ctx, docs)
		}
	}
	return entity.ErrCourseNotFound
}
