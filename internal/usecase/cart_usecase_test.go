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

func newCartFixture(t *testing.T) CartUseCase {
	t.Helper()
	log := logger.New()
	store := kvstore.NewMemoryStore(log)
	return NewCartUseCase(persistent.NewCartRepository(store), log)
}

func testCourse(id, title, price string) *entity.Course {
	return &entity.Course{
		ID:     id,
		Title:  title,
		Author: "Marcus Reed",
		Price:  price,
		Image:  "courses/1.png",
	}
}

func TestAddToCart_Duplicate(t *testing.T) {
	uc := newCartFixture(t)
	ctx := context.Background()
	course := testCourse("gk-001", "Gospel Piano Foundations", "$49.00")

	items, err := uc.AddToCart(ctx, course)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	_, err = uc.AddToCart(ctx, course)
	assert.ErrorIs(t, err, entity.ErrAlreadyInCart)
	assert.Equal(t, 1, uc.GetCartCount(ctx))
}

func TestRemoveFromCart_Idempotent(t *testing.T) {
	uc := newCartFixture(t)
	ctx := context.Background()
	_, err := uc.AddToCart(ctx, testCourse("gk-001", "Foundations", "$49.00"))
	require.NoError(t, err)

	items, err := uc.RemoveFromCart(ctx, "gk-001")
	require.NoError(t, err)
	assert.Empty(t, items)

	// Removing again is not an error
	items, err = uc.RemoveFromCart(ctx, "gk-001")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestGetCartTotal_ParsesDisplayPrices(t *testing.T) {
	uc := newCartFixture(t)
	ctx := context.Background()

	_, err := uc.AddToCart(ctx, testCourse("gk-001", "Foundations", "$49.00"))
	require.NoError(t, err)
	_, err = uc.AddToCart(ctx, testCourse("gk-002", "Worship Chords", "$59.00"))
	require.NoError(t, err)

	assert.Equal(t, 108.00, uc.GetCartTotal(ctx))
}

func TestGetCartTotal_UnparseablePriceCountsAsZero(t *testing.T) {
	uc := newCartFixture(t)
	ctx := context.Background()

	_, err := uc.AddToCart(ctx, testCourse("gk-001", "Foundations", "$49.00"))
	require.NoError(t, err)
	_, err = uc.AddToCart(ctx, testCourse("bad", "Broken Record", "free!"))
	require.NoError(t, err)

	assert.Equal(t, 49.00, uc.GetCartTotal(ctx))
}

func TestWishlist_DuplicateAndMembership(t *testing.T) {
	uc := newCartFixture(t)
	ctx := context.Background()
	course := testCourse("gk-003", "Play By Ear", "$65.00")

	_, err := uc.AddToWishlist(ctx, course)
	require.NoError(t, err)
	assert.True(t, uc.IsInWishlist(ctx, "gk-003"))
	assert.False(t, uc.IsInCart(ctx, "gk-003"))

	_, err = uc.AddToWishlist(ctx, course)
	assert.ErrorIs(t, err, entity.ErrAlreadyInWishlist)
}

func TestSameCourseMaySitInCartAndWishlist(t *testing.T) {
	uc := newCartFixture(t)
	ctx := context.Background()
	course := testCourse("gk-001", "Foundations", "$49.00")

	_, err := uc.AddToCart(ctx, course)
	require.NoError(t, err)
	_, err = uc.AddToWishlist(ctx, course)
	require.NoError(t, err)

	assert.True(t, uc.IsInCart(ctx, "gk-001"))
	assert.True(t, uc.IsInWishlist(ctx, "gk-001"))
}

func TestMoveToCart(t *testing.T) {
	uc := newCartFixture(t)
	ctx := context.Background()
	_, err := uc.AddToWishlist(ctx, testCourse("gk-003", "Play By Ear", "$65.00"))
	require.NoError(t, err)

	require.NoError(t, uc.MoveToCart(ctx, "gk-003"))

	assert.True(t, uc.IsInCart(ctx, "gk-003"))
	assert.False(t, uc.IsInWishlist(ctx, "gk-003"))
}

func TestMoveToCart_NotInWishlist(t *testing.T) {
	uc := newCartFixture(t)

	err := uc.MoveToCart(context.Background(), "gk-999")

	assert.ErrorIs(t, err, entity.ErrNotInWishlist)
}

func TestMoveToCart_AlreadyInCartStillLeavesWishlist(t *testing.T) {
	uc := newCartFixture(t)
	ctx := context.Background()
	course := testCourse("gk-001", "Foundations", "$49.00")
	_, err := uc.AddToCart(ctx, course)
	require.NoError(t, err)
	_, err = uc.AddToWishlist(ctx, course)
	require.NoError(t, err)

	require.NoError(t, uc.MoveToCart(ctx, "gk-001"))

	// No duplicate cart entry, wishlist entry gone
	assert.Equal(t, 1, uc.GetCartCount(ctx))
	assert.False(t, uc.IsInWishlist(ctx, "gk-001"))
}

func TestClearCart(t *testing.T) {
	uc := newCartFixture(t)
	ctx := context.Background()
	_, err := uc.AddToCart(ctx, testCourse("gk-001", "Foundations", "$49.00"))
	require.NoError(t, err)

	require.NoError(t, uc.ClearCart(ctx))

	assert.Zero(t, uc.GetCartCount(ctx))
	assert.Zero(t, uc.GetCartTotal(ctx))
}
