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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockIdentityProvider struct {
	mock.Mock
}

func (m *mockIdentityProvider) SignIn(ctx context.Context, email, password string) (*Identity, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Identity), args.Error(1)
}

func (m *mockIdentityProvider) SignUp(ctx context.Context, email, password, displayName string) (*Identity, error) {
	args := m.Called(ctx, email, password, displayName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Identity), args.Error(1)
}

func (m *mockIdentityProvider) SignOut(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func newProviderFixture(t *testing.T, provider IdentityProvider) (kvstore.Store, AuthUseCase) {
	t.Helper()
	log := logger.New()
	store := kvstore.NewMemoryStore(log)
	uc := NewProviderAuthUseCase(
		provider,
		persistent.NewSessionRepository(store),
		persistent.NewAdminMarkRepository(store),
		jwt.NewService("test-secret"),
		testAdminCode,
		24*time.Hour,
		log,
	)
	return store, uc
}

func TestProviderRegister_AdminCodeSetsAdminMark(t *testing.T) {
	provider := new(mockIdentityProvider)
	provider.On("SignUp", mock.Anything, "admin@example.com", "hunter2!", "admin").
		Return(&Identity{UID: "uid-1", Email: "admin@example.com", DisplayName: "admin"}, nil)
	store, uc := newProviderFixture(t, provider)
	ctx := context.Background()

	user, token, err := uc.Register(ctx, RegisterInput{
		Username:  "admin",
		Email:     "admin@example.com",
		Password:  "hunter2!",
		AdminCode: testAdminCode,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, token)
	assert.Equal(t, entity.RoleAdmin, user.Role)

	var marks map[string]bool
	require.True(t, store.Get(ctx, "adminUsers", &marks))
	assert.True(t, marks["uid-1"])
	provider.AssertExpectations(t)
}

func TestProviderLogin_MapsProviderErrors(t *testing.T) {
	provider := new(mockIdentityProvider)
	provider.On("SignIn", mock.Anything, "marcus@example.com", "wrong").
		Return(nil, &ProviderError{Code: "auth/wrong-password", Message: "bad password"})
	_, uc := newProviderFixture(t, provider)

	_, _, err := uc.Login(context.Background(), "marcus@example.com", "wrong")

	assert.ErrorIs(t, err, entity.ErrInvalidCredentials)
}

func TestProviderLogin_StartsSession(t *testing.T) {
	provider := new(mockIdentityProvider)
	provider.On("SignIn", mock.Anything, "marcus@example.com", "hunter2!").
		Return(&Identity{UID: "uid-2", Email: "marcus@example.com", DisplayName: "marcus"}, nil)
	_, uc := newProviderFixture(t, provider)
	ctx := context.Background()

	user, token, err := uc.Login(ctx, "marcus@example.com", "hunter2!")
	require.NoError(t, err)

	assert.NotEmpty(t, token)
	assert.Equal(t, entity.RoleUser, user.Role)
	assert.True(t, uc.IsSessionValid(ctx))
	current := uc.GetCurrentUser(ctx)
	require.NotNil(t, current)
	assert.Equal(t, "uid-2", current.ID)
}

func TestProviderLogout_SignsOutAndClears(t *testing.T) {
	provider := new(mockIdentityProvider)
	provider.On("SignIn", mock.Anything, "marcus@example.com", "hunter2!").
		Return(&Identity{UID: "uid-2", Email: "marcus@example.com", DisplayName: "marcus"}, nil)
	provider.On("SignOut", mock.Anything).Return(nil)
	store, uc := newProviderFixture(t, provider)
	ctx := context.Background()
	_, _, err := uc.Login(ctx, "marcus@example.com", "hunter2!")
	require.NoError(t, err)

	uc.Logout(ctx)

	assert.False(t, uc.IsSessionValid(ctx))
	assert.False(t, store.Has(ctx, "userSession"))
	provider.AssertExpectations(t)
}

func TestProviderVariant_UnsupportedOperations(t *testing.T) {
	_, uc := newProviderFixture(t, new(mockIdentityProvider))
	ctx := context.Background()

	_, err := uc.GetAllUsers(ctx)
	assert.ErrorIs(t, err, ErrNotSupported)

	_, err = uc.UpdateUser(ctx, "uid-1", UserUpdate{})
	assert.ErrorIs(t, err, ErrNotSupported)

	assert.ErrorIs(t, uc.ChangePassword(ctx, "uid-1", "a", "b"), ErrNotSupported)
	assert.ErrorIs(t, uc.DeleteUser(ctx, "uid-1", "uid-2"), ErrNotSupported)
}
