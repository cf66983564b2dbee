package cart

import (
	"context"

	typesProduct "lumina-main/internal/types/product"
)

// Константы расчета заказа. Ставка налога и доставка фиксированы политикой магазина.
const (
	TaxRate     = 0.08
	ShippingFee = 10.00
)

// CartLine - позиция товара в корзине. Поля товара - денормализованный
// снимок карточки на момент добавления, а не живая ссылка на каталог.
type CartLine struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Category string  `json:"category"`
	Quantity int     `json:"quantity"`
}

// Cart - корзина клиента. Порядок позиций = порядок добавления.
// На один id товара всегда не больше одной позиции.
type Cart struct {
	Items []CartLine `json:"items"`
}

// AddItem добавляет товар в корзину: если позиция уже есть, увеличивает
// количество на 1, иначе добавляет новую позицию с количеством 1 в конец
func (c *Cart) AddItem(p typesProduct.Product) {
	for i := range c.Items {
		if c.Items[i].ID == p.ID {
			c.Items[i].Quantity++
			return
		}
	}

	c.Items = append(c.Items, CartLine{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Image:    p.Image(),
		Category: p.Category,
		Quantity: 1,
	})
}

// RemoveItem удаляет позицию по id товара, отсутствие позиции - не ошибка
func (c *Cart) RemoveItem(productID string) {
	for i := range c.Items {
		if c.Items[i].ID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity выставляет количество позиции. Значения меньше 1 прижимаются
// к 1: уменьшение до нуля не удаляет позицию, удаление - отдельная операция
func (c *Cart) UpdateQuantity(productID string, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	for i := range c.Items {
		if c.Items[i].ID == productID {
			c.Items[i].Quantity = quantity
			return
		}
	}
}

// Clear очищает корзину
func (c *Cart) Clear() {
	c.Items = []CartLine{}
}

// Subtotal - сумма по всем позициям price * quantity.
// Всегда считается заново от текущего состояния, нигде не кэшируется
func (c *Cart) Subtotal() float64 {
	var subtotal float64
	for _, item := range c.Items {
		subtotal += item.Price * float64(item.Quantity)
	}

	return subtotal
}

// Tax - налог от промежуточной суммы
func Tax(subtotal float64) float64 {
	return subtotal * TaxRate
}

// Total - итог заказа: сумма + налог + фиксированная доставка
func Total(subtotal float64) float64 {
	return subtotal + Tax(subtotal) + ShippingFee
}

// CartRepo интерфейс репозитория корзины. Все мутации проходят через него,
// каждая операция возвращает состояние корзины после применения
//
//go:generate mockgen -source=cart.go -destination=../mocks/mock_cart_repo.go -package=mocks
type CartRepo interface {
	// GetByClientID возвращает корзину клиента, для нового клиента - пустую
	GetByClientID(ctx context.Context, clientID string) (*Cart, error)
	// AddItem кладет снимок товара в корзину клиента
	AddItem(ctx context.Context, clientID string, p typesProduct.Product) (*Cart, error)
	// RemoveItem убирает позицию из корзины клиента
	RemoveItem(ctx context.Context, clientID string, productID string) (*Cart, error)
	// UpdateQuantity меняет количество позиции в корзине клиента
	UpdateQuantity(ctx context.Context, clientID string, productID string, quantity int) (*Cart, error)
	// Clear очищает корзину клиента
	Clear(ctx context.Context, clientID string) (*Cart, error)
}
