package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gospel-keys/internal/entity"
	"gospel-keys/internal/repo/persistent"
	"gospel-keys/pkg/jwt"
	"gospel-keys/pkg/logger"
)

// ErrNotSupported is returned for account operations the identity provider
// owns and does not expose to us (profile edits, password changes, deletes).
var ErrNotSupported = errors.New("operation not supported by the identity provider")

// Identity is what an external identity provider knows about a signed-in
// account. Roles are not part of it; the admin mark lives in our own store.
type Identity struct {
	UID         string
	Email       string
	DisplayName string
}

// IdentityProvider is the port the provider-backed auth variant talks to.
type IdentityProvider interface {
	SignIn(ctx context.Context, email, password string) (*Identity, error)
	SignUp(ctx context.Context, email, password, displayName string) (*Identity, error)
	SignOut(ctx context.Context) error
}

// ProviderError carries the provider's machine-readable failure code.
type ProviderError struct {
	Code    string
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// mapProviderError folds provider failure codes into our error taxonomy so
// handlers never see provider-specific codes.
func mapProviderError(err error) error {
	var perr *ProviderError
	if !errors.As(err, &perr) {
		return err
	}
	switch perr.Code {
	case "auth/email-already-in-use":
		return entity.ErrEmailTaken
	case "auth/user-not-found", "auth/wrong-password", "auth/invalid-credential":
		return entity.ErrInvalidCredentials
	case "auth/weak-password":
		return errors.New("password is too weak")
	case "auth/too-many-requests":
		return errors.New("too many attempts, try again later")
	default:
		return errors.New("authentication failed")
	}
}

type providerAuthUseCase struct {
	provider        IdentityProvider
	sessionRepo     persistent.SessionRepository
	adminMarks      persistent.AdminMarkRepository
	jwtService      *jwt.Service
	adminCode       string
	sessionDuration time.Duration
	logger          *logger.Logger
	now             func() time.Time
}

// NewProviderAuthUseCase builds the auth variant that delegates credential
// checks to an external identity provider. It satisfies the same AuthUseCase
// contract as the local variant; user listing and profile mutation are the
// provider's business and answer ErrNotSupported here.
func NewProviderAuthUseCase(
	provider IdentityProvider,
	sessionRepo persistent.SessionRepository,
	adminMarks persistent.AdminMarkRepository,
	jwtService *jwt.Service,
	adminCode string,
	sessionDuration time.Duration,
	log *logger.Logger,
) AuthUseCase {
	return &providerAuthUseCase{
		provider:        provider,
		sessionRepo:     sessionRepo,
		adminMarks:      adminMarks,
		jwtService:      jwtService,
		adminCode:       adminCode,
		sessionDuration: sessionDuration,
		logger:          log,
		now:             time.Now,
	}
}

func (uc *providerAuthUseCase) Register(ctx context.Context, input RegisterInput) (*entity.User, string, error) {
	identity, err := uc.provider.SignUp(ctx, input.Email, input.Password, input.Username)
	if err != nil {
		return nil, "", mapProviderError(err)
	}

	if input.AdminCode != "" && input.AdminCode == uc.adminCode {
		if err := uc.adminMarks.SetAdmin(ctx, identity.UID, true); err != nil {
			uc.logger.Error("Failed to mark admin %s: %v", identity.UID, err)
		}
	}

	user := uc.toUser(ctx, identity)
	token, err := uc.startSession(ctx, user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (uc *providerAuthUseCase) Login(ctx context.Context, username, password string) (*entity.User, string, error) {
	// The provider authenticates by email; the handler passes it through.
	identity, err := uc.provider.SignIn(ctx, username, password)
	if err != nil {
		return nil, "", mapProviderError(err)
	}

	user := uc.toUser(ctx, identity)
	token, err := uc.startSession(ctx, user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (uc *providerAuthUseCase) toUser(ctx context.Context, identity *Identity) *entity.User {
	role := entity.RoleUser
	if uc.adminMarks.IsAdmin(ctx, identity.UID) {
		role = entity.RoleAdmin
	}
	return &entity.User{
		ID:       identity.UID,
		Username: identity.DisplayName,
		Email:    identity.Email,
		Role:     role,
	}
}

func (uc *providerAuthUseCase) startSession(ctx context.Context, user *entity.User) (string, error) {
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

func (uc *providerAuthUseCase) Logout(ctx context.Context) {
	if err := uc.provider.SignOut(ctx); err != nil {
		uc.logger.Warn("Provider sign-out failed: %v", err)
	}
	uc.sessionRepo.Clear(ctx)
}

func (uc *providerAuthUseCase) IsSessionValid(ctx context.Context) bool {
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

func (uc *providerAuthUseCase) GetCurrentUser(ctx context.Context) *entity.User {
	if !uc.IsSessionValid(ctx) {
		return nil
	}
	return uc.sessionRepo.CurrentUser(ctx)
}

func (uc *providerAuthUseCase) IsAdmin(ctx context.Context) bool {
	return uc.GetCurrentUser(ctx).IsAdmin()
}

// GetUser can only answer for the signed-in account; the provider holds the
// rest of the directory.
func (uc *providerAuthUseCase) GetUser(ctx context.Context, id string) (*entity.User, error) {
	current := uc.GetCurrentUser(ctx)
	if current != nil && current.ID == id {
		return current, nil
	}
	return nil, entity.ErrUserNotFound
}

func (uc *providerAuthUseCase) GetAllUsers(ctx context.Context) ([]*entity.User, error) {
	return nil, ErrNotSupported
}

func (uc *providerAuthUseCase) UpdateUser(ctx context.Context, userID string, updates UserUpdate) (*entity.User, error) {
	return nil, ErrNotSupported
}

func (uc *providerAuthUseCase) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	return ErrNotSupported
}

// SetUserRole flips the locally stored admin mark; it is the one piece of
// account state this variant owns.
func (uc *providerAuthUseCase) SetUserRole(ctx context.Context, userID string, role entity.UserRole) (*entity.User, error) {
	if err := uc.adminMarks.SetAdmin(ctx, userID, role == entity.RoleAdmin); err != nil {
		return nil, err
	}
	current := uc.sessionRepo.CurrentUser(ctx)
	if current != nil && current.ID == userID {
		current.Role = role
		if err := uc.sessionRepo.SetCurrentUser(ctx, current); err != nil {
			uc.logger.Error("Failed to refresh current user: %v", err)
		}
		return current, nil
	}
	return &entity.User{ID: userID, Role: role}, nil
}

func (uc *providerAuthUseCase) DeleteUser(ctx context.Context, userID, actorID string) error {
	return ErrNotSupported
}
