package persistent

import (
	"context"

	"gospel-keys/internal/entity"
	"gospel-keys/internal/model"
	"gospel-keys/pkg/kvstore"
)

type EnrollmentRepository interface {
	List(ctx context.Context) ([]*entity.Enrollment, error)
	GetByID(ctx context.Context, id string) (*entity.Enrollment, error)
	Create(ctx context.Context, enrollment *entity.Enrollment) error
	Update(ctx context.Context, enrollment *entity.Enrollment) error
}

type enrollmentRepository struct {
	store kvstore.Store
}

func NewEnrollmentRepository(store kvstore.Store) EnrollmentRepository {
	return &enrollmentRepository{store: store}
}

func (r *enrollmentRepository) load(ctx context.Context) []model.EnrollmentDocument {
	var docs []model.EnrollmentDocument
	r.store.Get(ctx, keyEnrollments, &docs)
	return docs
}

func (r *enrollmentRepository) save(ctx context.Context, docs []model.EnrollmentDocument) error {
	if !r.store.Set(ctx, keyEnrollments, docs) {
		return entity.ErrStorage
	}
	return nil
}

func (r *enrollmentRepository) List(ctx context.Context) ([]*entity.Enrollment, error) {
	docs := r.load(ctx)
	enrollments := make([]*entity.Enrollment, len(docs))
	for i := range docs {
		enrollments[i] = ToEnrollmentEntity(&docs[i])
	}
	return enrollments, nil
}

func (r *enrollmentRepository) GetByID(ctx context.Context, id string) (*entity.Enrollment, error) {
	for _, doc := range r.load(ctx) {
		if doc.ID == id {
			return ToEnrollmentEntity(&doc), nil
		}
	}
	return nil, entity.ErrEnrollmentNotFound
}

func (r *enrollmentRepository) Create(ctx context.Context, enrollment *entity.Enrollment) error {
	docs := r.load(ctx)
	docs = append(docs, *ToEnrollmentDocument(enrollment))
	return r.save(ctx, docs)
}

func (r *enrollmentRepository) Update(ctx context.Context, enrollment *entity.Enrollment) error {
	docs := r.load(ctx)
	for i := range docs {
		if docs[i].ID == enrollment.ID {
			docs[i] = *ToEnrollmentDocument(enrollment)
			return r.save(ctx, docs)
		}
	}
	return entity.ErrEnrollmentNotFound
}
