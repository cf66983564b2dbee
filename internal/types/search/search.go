package search

// SearchDoc - структура документа товара для хранения в ES
type SearchDoc struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category,omitempty"`
}
