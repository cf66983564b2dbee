package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"

	typesProduct "lumina-main/internal/types/product"
)

func productA() typesProduct.Product {
	return typesProduct.Product{
		ID:       "a",
		Name:     "Ergonomic Office Chair",
		Price:    10.00,
		Category: "furniture",
		Images:   []string{"https://img.example/chair.jpeg"},
	}
}

func productB() typesProduct.Product {
	return typesProduct.Product{
		ID:     "b",
		Name:   "Modern Coffee Table",
		Price:  5.00,
		Images: []string{"https://img.example/table.jpeg"},
	}
}

func TestAddItem_RepeatedAddIncrementsQuantity(t *testing.T) {
	c := &Cart{}

	const addCount = 5
	for i := 0; i < addCount; i++ {
		c.AddItem(productA())
	}

	assert.Len(t, c.Items, 1)
	assert.Equal(t, "a", c.Items[0].ID)
	assert.Equal(t, addCount, c.Items[0].Quantity)
}

func TestAddItem_KeepsInsertionOrder(t *testing.T) {
	c := &Cart{}

	c.AddItem(productA())
	c.AddItem(productB())
	c.AddItem(productA())

	assert.Len(t, c.Items, 2)
	assert.Equal(t, "a", c.Items[0].ID)
	assert.Equal(t, 2, c.Items[0].Quantity)
	assert.Equal(t, "b", c.Items[1].ID)
	assert.Equal(t, 1, c.Items[1].Quantity)
}

func TestAddItem_SnapshotsDisplayFields(t *testing.T) {
	c := &Cart{}
	c.AddItem(productA())

	line := c.Items[0]
	assert.Equal(t, "Ergonomic Office Chair", line.Name)
	assert.Equal(t, 10.00, line.Price)
	assert.Equal(t, "https://img.example/chair.jpeg", line.Image)
	assert.Equal(t, "furniture", line.Category)
}

func TestRemoveItem(t *testing.T) {
	tests := []struct {
		name        string
		removeID    string
		expectedIDs []string
	}{
		{
			name:        "удаление существующей позиции",
			removeID:    "a",
			expectedIDs: []string{"b"},
		},
		{
			name:        "удаление отсутствующей позиции - no-op",
			removeID:    "missing",
			expectedIDs: []string{"a", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Cart{}
			c.AddItem(productA())
			c.AddItem(productB())

			c.RemoveItem(tt.removeID)

			ids := make([]string, 0, len(c.Items))
			for _, item := range c.Items {
				ids = append(ids, item.ID)
			}
			assert.Equal(t, tt.expectedIDs, ids)
		})
	}
}

func TestUpdateQuantity(t *testing.T) {
	tests := []struct {
		name             string
		quantity         int
		expectedQuantity int
	}{
		{
			name:             "обычное значение",
			quantity:         7,
			expectedQuantity: 7,
		},
		{
			name:             "ноль прижимается к единице",
			quantity:         0,
			expectedQuantity: 1,
		},
		{
			name:             "отрицательное значение прижимается к единице",
			quantity:         -3,
			expectedQuantity: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Cart{}
			c.AddItem(productA())

			c.UpdateQuantity("a", tt.quantity)

			// Позиция никогда не удаляется уменьшением количества
			assert.Len(t, c.Items, 1)
			assert.Equal(t, tt.expectedQuantity, c.Items[0].Quantity)
		})
	}
}

func TestUpdateQuantity_MissingIDIsNoop(t *testing.T) {
	c := &Cart{}
	c.AddItem(productA())

	c.UpdateQuantity("missing", 42)

	assert.Len(t, c.Items, 1)
	assert.Equal(t, 1, c.Items[0].Quantity)
}

func TestClear(t *testing.T) {
	c := &Cart{}
	c.AddItem(productA())
	c.AddItem(productB())

	c.Clear()

	assert.Empty(t, c.Items)
}

func TestSubtotal_IndependentOfInsertionOrder(t *testing.T) {
	forward := &Cart{}
	forward.AddItem(productA())
	forward.AddItem(productB())
	forward.UpdateQuantity("a", 3)

	backward := &Cart{}
	backward.AddItem(productB())
	backward.AddItem(productA())
	backward.UpdateQuantity("a", 3)

	assert.InDelta(t, 35.00, forward.Subtotal(), 1e-9)
	assert.InDelta(t, forward.Subtotal(), backward.Subtotal(), 1e-9)
}

func TestTotals(t *testing.T) {
	tests := []struct {
		name          string
		subtotal      float64
		expectedTax   float64
		expectedTotal float64
	}{
		{
			name:          "сто долларов",
			subtotal:      100.00,
			expectedTax:   8.00,
			expectedTotal: 118.00,
		},
		{
			name:          "пустая корзина платит только доставку",
			subtotal:      0,
			expectedTax:   0,
			expectedTotal: 10.00,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expectedTax, Tax(tt.subtotal), 1e-9)
			assert.InDelta(t, tt.expectedTotal, Total(tt.subtotal), 1e-9)
		})
	}
}

// Сценарий из приемки: A(10) + B(5) + еще раз A -> [{A,2},{B,1}], 25.00 -> 37.00
func TestCartScenario(t *testing.T) {
	c := &Cart{}

	c.AddItem(productA())
	c.AddItem(productB())
	c.AddItem(productA())

	assert.Len(t, c.Items, 2)
	assert.Equal(t, 2, c.Items[0].Quantity)
	assert.Equal(t, 1, c.Items[1].Quantity)

	subtotal := c.Subtotal()
	assert.InDelta(t, 25.00, subtotal, 1e-9)
	assert.InDelta(t, 37.00, Total(subtotal), 1e-9)
}
