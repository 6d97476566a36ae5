package persistent

import (
	"context"

	"gospel-keys/internal/entity"
	"gospel-keys/internal/model"
	"gospel-keys/pkg/kvstore"
)

// CartRepository owns both selected-course collections. Every mutation in
// the use case layer writes the affected collection back wholesale.
type CartRepository interface {
	GetCart(ctx context.Context) []*entity.CartItem
	SaveCart(ctx context.Context, items []*entity.CartItem) error
	GetWishlist(ctx context.Context) []*entity.WishlistItem
	SaveWishlist(ctx context.Context, items []*entity.WishlistItem) error
}

type cartRepository struct {
	store kvstore.Store
}

func NewCartRepository(store kvstore.Store) CartRepository {
	return &cartRepository{store: store}
}

func (r *cartRepository) GetCart(ctx context.Context) []*entity.CartItem {
	var docs []model.CartItemDocument
	r.store.Get(ctx, keyCart, &docs)
	items := make([]*entity.CartItem, len(docs))
	for i := range docs {
		items[i] = ToCartItemEntity(&docs[i])
	}
	return items
}

func (r *cartRepository) SaveCart(ctx context.Context, items []*entity.CartItem) error {
	docs := make([]model.CartItemDocument, len(items))
	for i, item := range items {
		docs[i] = *ToCartItemDocument(item)
	}
	if !r.store.Set(ctx, keyCart, docs) {
		return entity.ErrStorage
	}
	return nil
}

func (r *cartRepository) GetWishlist(ctx context.Context) []*entity.WishlistItem {
	var docs []model.CartItemDocument
	r.store.Get(ctx, keyWishlist, &docs)
	items := make([]*entity.WishlistItem, len(docs))
	for i := range docs {
		items[i] = ToWishlistItemEntity(&docs[i])
	}
	return items
}

func (r *cartRepository) SaveWishlist(ctx context.Context, items []*entity.WishlistItem) error {
	docs := make([]model.CartItemDocument, len(items))
	for i, item := range items {
		docs[i] = *ToWishlistItemDocument(item)
	}
	if !r.store.Set(ctx, keyWishlist, docs) {
		return entity.ErrStorage
	}
	return nil
}
