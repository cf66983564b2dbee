package catalog

import (
	typesProduct "lumina-main/internal/types/product"
)

// CatalogRepo интерфейс каталога товаров. Витринные сторы зависят только
// от него: каталог для них внешний коллаборатор
//
//go:generate mockgen -source=catalog.go -destination=../mocks/mock_catalog_repo.go -package=mocks
type CatalogRepo interface {
	// GetByID возвращает снимок товара по id
	GetByID(id string) (*typesProduct.Product, error)
	// ListByCategory возвращает товары категории, пустая категория - все товары
	ListByCategory(category string) ([]typesProduct.Product, error)
	// GetPopular возвращает популярные товары для главной
	GetPopular(limit int) ([]typesProduct.Product, error)
	// Search - фолбэк-поиск по каталогу, когда полнотекстовый недоступен
	Search(query string) ([]typesProduct.Product, error)
	// GetInfoForCart возвращает карточки товаров для вывода в корзине
	GetInfoForCart(ids []string) ([]typesProduct.CardInfo, error)
}
