package usecase

import (
	"context"
	"time"

	"gospel-keys/internal/entity"
	"gospel-keys/internal/repo/persistent"
	"gospel-keys/pkg/jwt"
	"gospel-keys/pkg/logger"

	"github.com/google/uuid"
)

type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	AdminCode string
}

// UserUpdate carries profile fields a user may change; the password digest,
// role and id are never merged through here.
type UserUpdate struct {
	Username *string
	Email    *string
}

// AuthUseCase is the single authentication contract. Two implementations
// exist: the local one below persists credentials itself, the one in
// auth_provider.go delegates credential checks to an identity provider.
// The composition root picks exactly one.
type AuthUseCase interface {
	Register(ctx context.Context, input RegisterInput) (*entity.User, string, error)
	Login(ctx context.Context, username, password string) (*entity.User, string, error)
	Logout(ctx context.Context)
	IsSessionValid(ctx context.Context) bool
	GetCurrentUser(ctx context.Context) *entity.User
	IsAdmin(ctx context.Context) bool
	GetUser(ctx context.Context, id string) (*entity.User, error)
	GetAllUsers(ctx context.Context) ([]*entity.User, error)
	UpdateUser(ctx context.Context, userID string, updates UserUpdate) (*entity.User, error)
	ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error
	SetUserRole(ctx context.Context, userID string, role entity.UserRole) (*entity.User, error)
	DeleteUser(ctx context.Context, userID, actorID string) error
}

type localAuthUseCase struct {
	userRepo        persistent.UserRepository
	sessionRepo     persistent.SessionRepository
	jwtService      *jwt.Service
	hasher          *PasswordHasher
	adminCode       string
	sessionDuration time.Duration
	logger          *logger.Logger
	now             func() time.Time
}

func NewLocalAuthUseCase(
	userRepo persistent.UserRepository,
	sessionRepo persistent.SessionRepository,
	jwtService *jwt.Service,
	hasher *PasswordHasher,
	adminCode string,
	sessionDuration time.Duration,
	log *logger.Logger,
) AuthUseCase {
	return &localAuthUseCase{
		userRepo:        userRepo,
		sessionRepo:     sessionRepo,
		jwtService:      jwtService,
		hasher:          hasher,
		adminCode:       adminCode,
		sessionDuration: sessionDuration,
		logger:          log,
		now:             time.Now,
	}
}

func (uc *localAuthUseCase) Register(ctx context.Context, input RegisterInput) (*entity.User, string, error) {
	if _, err := uc.userRepo.GetByUsername(ctx, input.Username); err == nil {
		return nil, "", entity.ErrUsernameTaken
	}
	if _, err := uc.userRepo.GetByEmail(ctx, input.Email); err == nil {
		return nil, "", entity.ErrEmailTaken
	}

	role := entity.RoleUser
	if input.AdminCode != "" && input.AdminCode == uc.adminCode {
		role = entity.RoleAdmin
	}

	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: uc.hasher.Hash(input.Password),
		Role:         role,
		CreatedAt:    uc.now(),
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		uc.logger.Error("Failed to create user: %v", err)
		return nil, "", err
	}

	// Auto login after registration
	token, err := uc.startSession(ctx, user)
	if err != nil {
		return nil, "", err
	}
	return user.Sanitized(), token, nil
}

func (uc *localAuthUseCase) Login(ctx context.Context, username, password string) (*entity.User, string, error) {
	user, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil || user.PasswordHash != uc.hasher.Hash(password) {
		return nil, "", entity.ErrInvalidCredentials
	}

	token, err := uc.startSession(ctx, user)
	if err != nil {
		return nil, "", err
	}
	return user.Sanitized(), token, nil
}

func (uc *localAuthUseCase) startSession(ctx context.Context, user *entity.User) (string, error) {
	now := uc.now()
	session := &entity.Session{
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(uc.sessionDuration),
	}
	if err := uc.sessionRepo.Save(ctx, session, user); err != nil {
		uc.logger.Error("Failed to persist session: %v", err)
		return "", err
	}
	return uc.jwtService.GenerateToken(user.ID, string(user.Role))
}

func (uc *localAuthUseCase) Logout(ctx context.Context) {
	uc.sessionRepo.Clear(ctx)
}

// IsSessionValid lazily expires the persisted session: reading an expired
// session logs the user out as a side effect.
func (uc *localAuthUseCase) IsSessionValid(ctx context.Context) bool {
	session := uc.sessionRepo.Get(ctx)
	if session == nil {
		return false
	}
	if session.Expired(uc.now()) {
		uc.Logout(ctx)
		return false
	}
	return true
}

func (uc *localAuthUseCase) GetCurrentUser(ctx context.Context) *entity.User {
	if !uc.IsSessionValid(ctx) {
		return nil
	}
	return uc.sessionRepo.CurrentUser(ctx)
}

func (uc *localAuthUseCase) IsAdmin(ctx context.Context) bool {
	return uc.GetCurrentUser(ctx).IsAdmin()
}

func (uc *localAuthUseCase) GetUser(ctx context.Context, id string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user.Sanitized(), nil
}

func (uc *localAuthUseCase) GetAllUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	sanitized := make([]*entity.User, len(users))
	for i, user := range users {
		sanitized[i] = user.Sanitized()
	}
	return sanitized, nil
}

func (uc *localAuthUseCase) UpdateUser(ctx context.Context, userID string, updates UserUpdate) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if updates.Username != nil {
		user.Username = *updates.Username
	}
	if updates.Email != nil {
		user.Email = *updates.Email
	}
	user.UpdatedAt = uc.now()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		uc.logger.Error("Failed to update user %s: %v", userID, err)
		return nil, err
	}
	uc.refreshCurrentUser(ctx, user)
	return user.Sanitized(), nil
}

func (uc *localAuthUseCase) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if user.PasswordHash != uc.hasher.Hash(oldPassword) {
		return entity.ErrWrongPassword
	}

	user.PasswordHash = uc.hasher.Hash(newPassword)
	user.UpdatedAt = uc.now()
	return uc.userRepo.Update(ctx, user)
}

func (uc *localAuthUseCase) SetUserRole(ctx context.Context, userID string, role entity.UserRole) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Role = role
	user.UpdatedAt = uc.now()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	uc.refreshCurrentUser(ctx, user)
	return user.Sanitized(), nil
}

func (uc *localAuthUseCase) DeleteUser(ctx context.Context, userID, actorID string) error {
	if userID == actorID {
		return entity.ErrSelfDelete
	}
	return uc.userRepo.Delete(ctx, userID)
}

func (uc *localAuthUseCase) refreshCurrentUser(ctx context.Context, user *entity.User) {
	current := uc.sessionRepo.CurrentUser(ctx)
	if current != nil && current.ID == user.ID {
		if err := uc.sessionRepo.SetCurrentUser(ctx, user); err != nil {
			uc.logger.Error("Failed to refresh current user: %v", err)
		}
	}
}
