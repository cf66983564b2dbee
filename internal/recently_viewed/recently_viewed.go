package recently_viewed

import (
	"context"

	typesProduct "lumina-main/internal/types/product"
)

// MaxItems - потолок истории просмотров, одиннадцатый просмотр вытесняет хвост
const MaxItems = 10

// History - история просмотров клиента: без дублей, самый свежий просмотр
// первым, длина не больше MaxItems
type History struct {
	Items []typesProduct.Product `json:"items"`
}

// RecordView фиксирует просмотр товара: существующая запись с тем же id
// убирается, снимок ставится в голову, хвост обрезается до MaxItems
func (h *History) RecordView(p typesProduct.Product) {
	filtered := make([]typesProduct.Product, 0, len(h.Items)+1)
	filtered = append(filtered, p)
	for _, item := range h.Items {
		if item.ID != p.ID {
			filtered = append(filtered, item)
		}
	}

	if len(filtered) > MaxItems {
		filtered = filtered[:MaxItems]
	}

	h.Items = filtered
}

// Clear очищает историю
func (h *History) Clear() {
	h.Items = []typesProduct.Product{}
}

// RecentlyViewedRepo интерфейс репозитория истории просмотров
//
//go:generate mockgen -source=recently_viewed.go -destination=../mocks/mock_recently_viewed_repo.go -package=mocks
type RecentlyViewedRepo interface {
	// GetByClientID возвращает историю просмотров клиента
	GetByClientID(ctx context.Context, clientID string) (*History, error)
	// RecordView фиксирует просмотр товара клиентом
	RecordView(ctx context.Context, clientID string, p typesProduct.Product) (*History, error)
	// Clear очищает историю просмотров клиента
	Clear(ctx context.Context, clientID string) (*History, error)
}
