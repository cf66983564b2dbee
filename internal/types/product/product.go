package product

// Product - полный снимок товара каталога.
// JSON-теги повторяют формат документов клиентского хранилища (lumina-*),
// поэтому camelCase, а не snake_case.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	ModelURL    string   `json:"modelUrl"`
	Images      []string `json:"images"`
	Rating      float64  `json:"rating"`
	ReviewCount int      `json:"reviewCount"`
	Stock       int      `json:"stock"`
	Popular     bool     `json:"popular"`
}

// CardInfo - форма для вывода карточки товара в корзине/вишлисте
type CardInfo struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
	Stock int     `json:"stock"`
}

// Image возвращает первую картинку товара, она же идет в снапшот корзины
func (p Product) Image() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}
