package persistent

import (
	"context"

	"gospel-keys/internal/entity"
	"gospel-keys/internal/model"
	"gospel-keys/pkg/kvstore"
)

type UserRepository interface {
	List(ctx context.Context) ([]*entity.User, error)
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id string) error
}

type userRepository struct {
	store kvstore.Store
}

func NewUserRepository(store kvstore.Store) UserRepository {
	return &userRepository{store: store}
}

func (r *userRepository) load(ctx context.Context) []model.UserDocument {
	var docs []model.UserDocument
	r.store.Get(ctx, keyUsers, &docs)
	return docs
}

func (r *userRepository) save(ctx context.Context, docs []model.UserDocument) error {
	if !r.store.Set(ctx, keyUsers, docs) {
		return entity.ErrStorage
	}
	return nil
}

func (r *userRepository) List(ctx context.Context) ([]*entity.User, error) {
	docs := r.load(ctx)
	users := make([]*entity.User, len(docs))
	for i := range docs {
		users[i] = ToUserEntity(&docs[i])
	}
	return users, nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	for _, doc := range r.load(ctx) {
		if doc.ID == id {
			return ToUserEntity(&doc), nil
		}
	}
	return nil, entity.ErrUserNotFound
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	for _, doc := range r.load(ctx) {
		if doc.Username == username {
			return ToUserEntity(&doc), nil
		}
	}
	return nil, entity.ErrUserNotFound
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, doc := range r.load(ctx) {
		if doc.Email == email {
			return ToUserEntity(&doc), nil
		}
	}
	return nil, entity.ErrUserNotFound
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	docs := r.load(ctx)
	docs = append(docs, *ToUserDocument(user))
	return r.save(ctx, docs)
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	docs := r.load(ctx)
	for i := range docs {
		if docs[i].ID == user.ID {
			docs[i] = *ToUserDocument(user)
			return r.save(ctx, docs)
		}
	}
	return entity.ErrUserNotFound
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	docs := r.load(ctx)
	for i := range docs {
		if docs[i].ID == id {
			docs = append(docs[:i], docs[i+1:]...)
			return r.save(ctx, docs)
		}
	}
	return entity.ErrUserNotFound
}
