package kafka

import "time"

type EventType string

const (
	EventTypeSearch    EventType = "search"
	EventTypeView      EventType = "view"
	EventTypeAddToCart EventType = "addToCart"
	EventTypePurchase  EventType = "purchase"
)

// Event - событие клиента витрины для аналитики
type Event struct {
	ClientID   string    `json:"client_id"`
	Type       EventType `json:"type"`
	Categories []string  `json:"categories,omitempty"`
	ProductIDs []string  `json:"product_ids,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}
