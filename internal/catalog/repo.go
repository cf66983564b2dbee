package catalog

import (
	"database/sql"
	"strings"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"lumina-main/internal/types/errors"
	typesProduct "lumina-main/internal/types/product"
)

const productColumns = "id, name, price, category, description, features, model_url, images, rating, review_count, stock, popular"

type CatalogDBRepository struct {
	DB     *sql.DB
	Logger *zap.SugaredLogger
}

func NewCatalogDBRepository(db *sql.DB, l *zap.SugaredLogger) *CatalogDBRepository {
	return &CatalogDBRepository{
		DB:     db,
		Logger: l,
	}
}

func scanProduct(row interface{ Scan(...interface{}) error }, p *typesProduct.Product) error {
	return row.Scan(
		&p.ID,
		&p.Name,
		&p.Price,
		&p.Category,
		&p.Description,
		pq.Array(&p.Features),
		&p.ModelURL,
		pq.Array(&p.Images),
		&p.Rating,
		&p.ReviewCount,
		&p.Stock,
		&p.Popular,
	)
}

func (cr *CatalogDBRepository) GetByID(id string) (*typesProduct.Product, error) {
	var p typesProduct.Product

	query := `
	SELECT ` + productColumns + `
	FROM product
	WHERE id = $1
	`

	err := scanProduct(cr.DB.QueryRow(query, id), &p)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.ErrProductNotFound
		}
		cr.Logger.Errorf("Error getting product by ID: %v", err)
		return nil, errors.ErrDBInternal
	}

	return &p, nil
}

func (cr *CatalogDBRepository) ListByCategory(category string) ([]typesProduct.Product, error) {
	query := `
	SELECT ` + productColumns + `
	FROM product
	WHERE $1 = '' OR category = $1
	ORDER BY name
	`

	rows, err := cr.DB.Query(query, category)
	if err != nil {
		cr.Logger.Errorf("Error listing products by category %q: %v", category, err)
		return nil, errors.ErrDBInternal
	}
	defer rows.Close()

	var products []typesProduct.Product
	for rows.Next() {
		var p typesProduct.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, errors.ErrDBInternal
		}
		products = append(products, p)
	}

	return products, nil
}

func (cr *CatalogDBRepository) GetPopular(limit int) ([]typesProduct.Product, error) {
	query := `
	SELECT ` + productColumns + `
	FROM product
	WHERE popular = TRUE
	ORDER BY rating DESC
	LIMIT $1
	`

	rows, err := cr.DB.Query(query, limit)
	if err != nil {
		cr.Logger.Errorf("Error getting top %d popular products: %v", limit, err)
		return nil, errors.ErrDBInternal
	}
	defer rows.Close()

	var products []typesProduct.Product
	for rows.Next() {
		var p typesProduct.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, errors.ErrDBInternal
		}
		products = append(products, p)
	}

	return products, nil
}

// Search - фолбэк без полнотекстового индекса: скоринг по числу вхождений
// подстроки в имя и описание
func (cr *CatalogDBRepository) Search(query string) ([]typesProduct.Product, error) {
	query = strings.ToLower(query)
	sqlQuery := `
	SELECT ` + productColumns + `,
		(LENGTH(name) - LENGTH(REPLACE(LOWER(name), $1, ''))) +
		(LENGTH(description) - LENGTH(REPLACE(LOWER(description), $1, ''))) AS score
	FROM product
	ORDER BY score DESC
	LIMIT 10
	`

	rows, err := cr.DB.Query(sqlQuery, query)
	if err != nil {
		cr.Logger.Errorf("Error searching products: %v", err)
		return nil, errors.ErrDBInternal
	}
	defer rows.Close()

	var products []typesProduct.Product
	for rows.Next() {
		var p typesProduct.Product
		var score int
		err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Price,
			&p.Category,
			&p.Description,
			pq.Array(&p.Features),
			&p.ModelURL,
			pq.Array(&p.Images),
			&p.Rating,
			&p.ReviewCount,
			&p.Stock,
			&p.Popular,
			&score,
		)
		if err != nil {
			return nil, errors.ErrDBInternal
		}
		products = append(products, p)
	}

	return products, nil
}

func (cr *CatalogDBRepository) GetInfoForCart(ids []string) ([]typesProduct.CardInfo, error) {
	query := `
	SELECT id, name, price, images, stock
	FROM product
	WHERE id = ANY($1)
	`

	rows, err := cr.DB.Query(query, pq.Array(ids))
	if err != nil {
		cr.Logger.Errorf("Error getting cart info for products %v: %v", ids, err)
		return nil, errors.ErrDBInternal
	}
	defer rows.Close()

	var infos []typesProduct.CardInfo
	for rows.Next() {
		var info typesProduct.CardInfo
		var images []string
		err := rows.Scan(
			&info.ID,
			&info.Name,
			&info.Price,
			pq.Array(&images),
			&info.Stock,
		)
		if err != nil {
			return nil, errors.ErrDBInternal
		}
		if len(images) > 0 {
			info.Image = images[0]
		}
		infos = append(infos, info)
	}

	return infos, nil
}
