package wishlist

import (
	"context"

	typesProduct "lumina-main/internal/types/product"
)

// Wishlist - отложенные товары клиента. Семантика множества по id товара:
// повторное добавление того же товара ничего не меняет
type Wishlist struct {
	Items []typesProduct.Product `json:"items"`
}

// AddItem добавляет товар, дубль по id - no-op
func (w *Wishlist) AddItem(p typesProduct.Product) {
	if w.Contains(p.ID) {
		return
	}

	w.Items = append(w.Items, p)
}

// RemoveItem убирает все записи с данным id
func (w *Wishlist) RemoveItem(productID string) {
	filtered := w.Items[:0]
	for _, item := range w.Items {
		if item.ID != productID {
			filtered = append(filtered, item)
		}
	}

	w.Items = filtered
}

// Contains - предикат наличия товара, линейный проход на таких объемах норм
func (w *Wishlist) Contains(productID string) bool {
	for _, item := range w.Items {
		if item.ID == productID {
			return true
		}
	}

	return false
}

// Clear очищает вишлист
func (w *Wishlist) Clear() {
	w.Items = []typesProduct.Product{}
}

// WishlistRepo интерфейс репозитория вишлиста
//
//go:generate mockgen -source=wishlist.go -destination=../mocks/mock_wishlist_repo.go -package=mocks
type WishlistRepo interface {
	// GetByClientID возвращает вишлист клиента
	GetByClientID(ctx context.Context, clientID string) (*Wishlist, error)
	// AddItem кладет снимок товара в вишлист клиента
	AddItem(ctx context.Context, clientID string, p typesProduct.Product) (*Wishlist, error)
	// RemoveItem убирает товар из вишлиста клиента
	RemoveItem(ctx context.Context, clientID string, productID string) (*Wishlist, error)
	// Contains проверяет наличие товара в вишлисте клиента
	Contains(ctx context.Context, clientID string, productID string) (bool, error)
	// Clear очищает вишлист клиента
	Clear(ctx context.Context, clientID string) (*Wishlist, error)
}
