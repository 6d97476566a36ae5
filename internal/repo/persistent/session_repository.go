package persistent

import (
	"context"

	"gospel-keys/internal/entity"
	"gospel-keys/internal/model"
	"gospel-keys/pkg/kvstore"
)

// SessionRepository owns the singleton session key and the sanitized
// current-user copy stored next to it.
type SessionRepository interface {
	Get(ctx context.Context) *entity.Session
	Save(ctx context.Context, session *entity.Session, user *entity.User) error
	CurrentUser(ctx context.Context) *entity.User
	SetCurrentUser(ctx context.Context, user *entity.User) error
	Clear(ctx context.Context)
}

type sessionRepository struct {
	store kvstore.Store
}

func NewSessionRepository(store kvstore.Store) SessionRepository {
	return &sessionRepository{store: store}
}

func (r *sessionRepository) Get(ctx context.Context) *entity.Session {
	var doc model.SessionDocument
	if !r.store.Get(ctx, keySession, &doc) {
		return nil
	}
	return ToSessionEntity(&doc)
}

func (r *sessionRepository) Save(ctx context.Context, session *entity.Session, user *entity.User) error {
	if !r.store.Set(ctx, keySession, ToSessionDocument(session)) {
		return entity.ErrStorage
	}
	return r.SetCurrentUser(ctx, user)
}

func (r *sessionRepository) CurrentUser(ctx context.Context) *entity.User {
	var doc model.UserDocument
	if !r.store.Get(ctx, keyCurrentUser, &doc) {
		return nil
	}
	return ToUserEntity(&doc)
}

func (r *sessionRepository) SetCurrentUser(ctx context.Context, user *entity.User) error {
	if !r.store.Set(ctx, keyCurrentUser, ToUserDocument(user.Sanitized())) {
		return entity.ErrStorage
	}
	return nil
}

func (r *sessionRepository) Clear(ctx context.Context) {
	r.store.Remove(ctx, keyCurrentUser)
	r.store.Remove(ctx, keySession)
}

// AdminMarkRepository keeps the provider-backed auth variant's only local
// state: which provider identities hold the admin role.
type AdminMarkRepository interface {
	IsAdmin(ctx context.Context, uid string) bool
	SetAdmin(ctx context.Context, uid string, admin bool) error
}

type adminMarkRepository struct {
	store kvstore.Store
}

func NewAdminMarkRepository(store kvstore.Store) AdminMarkRepository {
	return &adminMarkRepository{store: store}
}

func (r *adminMarkRepository) IsAdmin(ctx context.Context, uid string) bool {
	var marks map[string]bool
	r.store.Get(ctx, keyAdminUsers, &marks)
	return marks[uid]
}

func (r *adminMarkRepository) SetAdmin(ctx context.Context, uid string, admin bool) error {
	marks := map[string]bool{}
	r.store.Get(ctx, keyAdminUsers, &marks)
	if admin {
		marks[uid] = true
	} else {
		delete(marks, uid)
	}
	if !r.store.Set(ctx, keyAdminUsers, marks) {
		return entity.ErrStorage
	}
	return nil
}
