package usecase

import (
	"context"
	"testing"
	"time"

	"gospel-keys/internal/entity"
	"gospel-keys/internal/repo/persistent"
	"gospel-keys/pkg/jwt"
	"gospel-keys/pkg/kvstore"
	"gospel-keys/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAdminCode = "PIANO2024"

func newAuthFixture(t *testing.T) (kvstore.Store, *localAuthUseCase) {
	t.Helper()
	log := logger.New()
	store := kvstore.NewMemoryStore(log)
	uc := NewLocalAuthUseCase(
		persistent.NewUserRepository(store),
		persistent.NewSessionRepository(store),
		jwt.NewService("test-secret"),
		NewPasswordHasher("test-salt"),
		testAdminCode,
		24*time.Hour,
		log,
	).(*localAuthUseCase)
	return store, uc
}

func register(t *testing.T, uc *localAuthUseCase, username, email string) *entity.User {
	t.Helper()
	user, token, err := uc.Register(context.Background(), RegisterInput{
		Username: username,
		Email:    email,
		Password: "hunter2!",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)
	return user
}

func TestRegister_DuplicateUsername(t *testing.T) {
	_, uc := newAuthFixture(t)
	register(t, uc, "marcus", "marcus@example.com")

	_, _, err := uc.Register(context.Background(), RegisterInput{
		Username: "marcus",
		Email:    "other@example.com",
		Password: "hunter2!",
	})

	assert.ErrorIs(t, err, entity.ErrUsernameTaken)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	_, uc := newAuthFixture(t)
	register(t, uc, "marcus", "marcus@example.com")

	_, _, err := uc.Register(context.Background(), RegisterInput{
		Username: "other",
		Email:    "marcus@example.com",
		Password: "hunter2!",
	})

	assert.ErrorIs(t, err, entity.ErrEmailTaken)
}

func TestRegister_AdminCodeGrantsAdminRole(t *testing.T) {
	_, uc := newAuthFixture(t)
	ctx := context.Background()

	user, _, err := uc.Register(ctx, RegisterInput{
		Username:  "admin",
		Email:     "admin@example.com",
		Password:  "hunter2!",
		AdminCode: testAdminCode,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.RoleAdmin, user.Role)
	assert.True(t, uc.IsAdmin(ctx))
}

func TestRegister_WrongAdminCodeStaysUser(t *testing.T) {
	_, uc := newAuthFixture(t)

	user, _, err := uc.Register(context.Background(), RegisterInput{
		Username:  "marcus",
		Email:     "marcus@example.com",
		Password:  "hunter2!",
		AdminCode: "GUESSED",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.RoleUser, user.Role)
}

func TestRegister_AutoLogin(t *testing.T) {
	_, uc := newAuthFixture(t)
	ctx := context.Background()

	user := register(t, uc, "marcus", "marcus@example.com")

	assert.True(t, uc.IsSessionValid(ctx))
	current := uc.GetCurrentUser(ctx)
	require.NotNil(t, current)
	assert.Equal(t, user.ID, current.ID)
	assert.Empty(t, current.PasswordHash)
}

func TestLogin_WrongPassword(t *testing.T) {
	_, uc := newAuthFixture(t)
	register(t, uc, "marcus", "marcus@example.com")

	_, _, err := uc.Login(context.Background(), "marcus", "wrong")

	assert.ErrorIs(t, err, entity.ErrInvalidCredentials)
}

func TestLogin_UnknownUser(t *testing.T) {
	_, uc := newAuthFixture(t)

	_, _, err := uc.Login(context.Background(), "nobody", "hunter2!")

	assert.ErrorIs(t, err, entity.ErrInvalidCredentials)
}

func TestPasswordHasher_DeterministicAndOpaque(t *testing.T) {
	hasher := NewPasswordHasher("test-salt")

	first := hasher.Hash("hunter2!")
	second := hasher.Hash("hunter2!")

	assert.Equal(t, first, second)
	assert.NotEqual(t, "hunter2!", first)
	assert.NotContains(t, first, "hunter2")
}

func TestStoredUserCarriesDigestNotPlaintext(t *testing.T) {
	store, uc := newAuthFixture(t)
	ctx := context.Background()
	register(t, uc, "marcus", "marcus@example.com")

	var docs []map[string]any
	require.True(t, store.Get(ctx, "users", &docs))
	require.Len(t, docs, 1)

	assert.Equal(t, uc.hasher.Hash("hunter2!"), docs[0]["password"])
	assert.NotEqual(t, "hunter2!", docs[0]["password"])
}

func TestSessionExpiry_LazyLogout(t *testing.T) {
	store, uc := newAuthFixture(t)
	ctx := context.Background()
	register(t, uc, "marcus", "marcus@example.com")

	// Jump past the 24h window
	uc.now = func() time.Time { return time.Now().Add(25 * time.Hour) }

	assert.False(t, uc.IsSessionValid(ctx))
	assert.Nil(t, uc.GetCurrentUser(ctx))
	// Reading an expired session cleared it from storage
	assert.False(t, store.Has(ctx, "userSession"))
	assert.False(t, store.Has(ctx, "currentUser"))
}

func TestLogout_ClearsSessionKeys(t *testing.T) {
	store, uc := newAuthFixture(t)
	ctx := context.Background()
	register(t, uc, "marcus", "marcus@example.com")

	uc.Logout(ctx)

	assert.False(t, uc.IsSessionValid(ctx))
	assert.False(t, store.Has(ctx, "userSession"))
	assert.False(t, store.Has(ctx, "currentUser"))
	// Logout never touches the user collection
	assert.True(t, store.Has(ctx, "users"))
}

func TestChangePassword(t *testing.T) {
	_, uc := newAuthFixture(t)
	ctx := context.Background()
	user := register(t, uc, "marcus", "marcus@example.com")

	err := uc.ChangePassword(ctx, user.ID, "wrong", "newpass1!")
	assert.ErrorIs(t, err, entity.ErrWrongPassword)

	require.NoError(t, uc.ChangePassword(ctx, user.ID, "hunter2!", "newpass1!"))

	_, _, err = uc.Login(ctx, "marcus", "hunter2!")
	assert.ErrorIs(t, err, entity.ErrInvalidCredentials)
	_, _, err = uc.Login(ctx, "marcus", "newpass1!")
	assert.NoError(t, err)
}

func TestUpdateUser_MergesOnlyProvidedFields(t *testing.T) {
	_, uc := newAuthFixture(t)
	ctx := context.Background()
	user := register(t, uc, "marcus", "marcus@example.com")

	email := "new@example.com"
	updated, err := uc.UpdateUser(ctx, user.ID, UserUpdate{Email: &email})
	require.NoError(t, err)

	assert.Equal(t, "marcus", updated.Username)
	assert.Equal(t, "new@example.com", updated.Email)

	// The persisted current-user copy follows the edit
	current := uc.GetCurrentUser(ctx)
	require.NotNil(t, current)
	assert.Equal(t, "new@example.com", current.Email)
}

func TestSetUserRole(t *testing.T) {
	_, uc := newAuthFixture(t)
	ctx := context.Background()
	user := register(t, uc, "marcus", "marcus@example.com")

	promoted, err := uc.SetUserRole(ctx, user.ID, entity.RoleAdmin)
	require.NoError(t, err)

	assert.Equal(t, entity.RoleAdmin, promoted.Role)
	assert.True(t, uc.IsAdmin(ctx))
}

func TestDeleteUser_SelfDeleteBlocked(t *testing.T) {
	_, uc := newAuthFixture(t)
	ctx := context.Background()
	admin := register(t, uc, "admin", "admin@example.com")

	err := uc.DeleteUser(ctx, admin.ID, admin.ID)
	assert.ErrorIs(t, err, entity.ErrSelfDelete)

	other := register(t, uc, "marcus", "marcus@example.com")
	require.NoError(t, uc.DeleteUser(ctx, other.ID, admin.ID))

	_, err = uc.GetUser(ctx, other.ID)
	assert.ErrorIs(t, err, entity.ErrUserNotFound)
}
