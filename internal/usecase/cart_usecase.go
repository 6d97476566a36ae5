package usecase

import (
	"context"
	"time"

	"gospel-keys/internal/entity"
	"gospel-keys/internal/repo/persistent"
	"gospel-keys/pkg/logger"
)

type CartUseCase interface {
	GetCart(ctx context.Context) []*entity.CartItem
	AddToCart(ctx context.Context, course *entity.Course) ([]*entity.CartItem, error)
	RemoveFromCart(ctx context.Context, courseID string) ([]*entity.CartItem, error)
	IsInCart(ctx context.Context, courseID string) bool
	GetCartTotal(ctx context.Context) float64
	GetCartCount(ctx context.Context) int
	ClearCart(ctx context.Context) error

	GetWishlist(ctx context.Context) []*entity.WishlistItem
	AddToWishlist(ctx context.Context, course *entity.Course) ([]*entity.WishlistItem, error)
	RemoveFromWishlist(ctx context.Context, courseID string) ([]*entity.WishlistItem, error)
	IsInWishlist(ctx context.Context, courseID string) bool
	MoveToCart(ctx context.Context, courseID string) error
}

type cartUseCase struct {
	cartRepo persistent.CartRepository
	logger   *logger.Logger
	now      func() time.Time
}

func NewCartUseCase(cartRepo persistent.CartRepository, log *logger.Logger) CartUseCase {
	return &cartUseCase{
		cartRepo: cartRepo,
		logger:   log,
		now:      time.Now,
	}
}

func (uc *cartUseCase) GetCart(ctx context.Context) []*entity.CartItem {
	return uc.cartRepo.GetCart(ctx)
}

func (uc *cartUseCase) AddToCart(ctx context.Context, course *entity.Course) ([]*entity.CartItem, error) {
	items := uc.cartRepo.GetCart(ctx)
	for _, item := range items {
		if item.ID == course.ID {
			return nil, entity.ErrAlreadyInCart
		}
	}
	items = append(items, entity.NewCartItem(course, uc.now()))
	if err := uc.cartRepo.SaveCart(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

// RemoveFromCart is idempotent: removing an absent course rewrites the cart
// unchanged and reports no error.
func (uc *cartUseCase) RemoveFromCart(ctx context.Context, courseID string) ([]*entity.CartItem, error) {
	items := uc.cartRepo.GetCart(ctx)
	kept := make([]*entity.CartItem, 0, len(items))
	for _, item := range items {
		if item.ID != courseID {
			kept = append(kept, item)
		}
	}
	if err := uc.cartRepo.SaveCart(ctx, kept); err != nil {
		return nil, err
	}
	return kept, nil
}

func (uc *cartUseCase) IsInCart(ctx context.Context, courseID string) bool {
	for _, item := range uc.cartRepo.GetCart(ctx) {
		if item.ID == courseID {
			return true
		}
	}
	return false
}

func (uc *cartUseCase) GetCartTotal(ctx context.Context) float64 {
	var total float64
	for _, item := range uc.cartRepo.GetCart(ctx) {
		total += parseDisplayPrice(item.Price)
	}
	return round2(total)
}

func (uc *cartUseCase) GetCartCount(ctx context.Context) int {
	return len(uc.cartRepo.GetCart(ctx))
}

func (uc *cartUseCase) ClearCart(ctx context.Context) error {
	return uc.cartRepo.SaveCart(ctx, []*entity.CartItem{})
}

func (uc *cartUseCase) GetWishlist(ctx context.Context) []*entity.WishlistItem {
	return uc.cartRepo.GetWishlist(ctx)
}

func (uc *cartUseCase) AddToWishlist(ctx context.Context, course *entity.Course) ([]*entity.WishlistItem, error) {
	items := uc.cartRepo.GetWishlist(ctx)
	for _, item := range items {
		if item.ID == course.ID {
			return nil, entity.ErrAlreadyInWishlist
		}
	}
	items = append(items, entity.NewWishlistItem(course, uc.now()))
	if err := uc.cartRepo.SaveWishlist(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

func (uc *cartUseCase) RemoveFromWishlist(ctx context.Context, courseID string) ([]*entity.WishlistItem, error) {
	items := uc.cartRepo.GetWishlist(ctx)
	kept := make([]*entity.WishlistItem, 0, len(items))
	for _, item := range items {
		if item.ID != courseID {
			kept = append(kept, item)
		}
	}
	if err := uc.cartRepo.SaveWishlist(ctx, kept); err != nil {
		return nil, err
	}
	return kept, nil
}

func (uc *cartUseCase) IsInWishlist(ctx context.Context, courseID string) bool {
	for _, item := range uc.cartRepo.GetWishlist(ctx) {
		if item.ID == courseID {
			return true
		}
	}
	return false
}

// MoveToCart transfers a wishlist entry into the cart. The wishlist entry is
// removed even when the course already sits in the cart; the wishlist loses
// the item either way.
func (uc *cartUseCase) MoveToCart(ctx context.Context, courseID string) error {
	wishlist := uc.cartRepo.GetWishlist(ctx)
	var found *entity.WishlistItem
	kept := make([]*entity.WishlistItem, 0, len(wishlist))
	for _, item := range wishlist {
		if item.ID == courseID {
			found = item
			continue
		}
		kept = append(kept, item)
	}
	if found == nil {
		return entity.ErrNotInWishlist
	}

	if !uc.IsInCart(ctx, courseID) {
		cart := uc.cartRepo.GetCart(ctx)
		cart = append(cart, &entity.CartItem{
			ID:           found.ID,
			Title:        found.Title,
			Image:        found.Image,
			Price:        found.Price,
			RegularPrice: found.RegularPrice,
			Author:       found.Author,
			Review:       found.Review,
			Lesson:       found.Lesson,
			AddedAt:      uc.now(),
		})
		if err := uc.cartRepo.SaveCart(ctx, cart); err != nil {
			return err
		}
	}
	return uc.cartRepo.SaveWishlist(ctx, kept)
}
