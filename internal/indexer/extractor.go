package indexer

import (
	"database/sql"
	typesProduct "lumina-main/internal/types/product"

	"go.uber.org/zap"
	"golang.org/x/net/context"
)

type PostgresExtractor struct {
	DB     *sql.DB
	Logger *zap.SugaredLogger
}

func NewPostgresExtractor(db *sql.DB, logger *zap.SugaredLogger) *PostgresExtractor {
	return &PostgresExtractor{
		DB:     db,
		Logger: logger,
	}
}

// ExtractNew - достает товары, которые еще не добавлены в полнотекстовый поиск
// Возвращает массив товаров и error
func (e *PostgresExtractor) ExtractNew(ctx context.Context) ([]typesProduct.Product, error) {
	query :=
		`
		SELECT id, name, description, category
		FROM product
		WHERE indexed = FALSE
		`

	rows, err := e.DB.QueryContext(ctx, query)
	if err != nil {
		e.Logger.Error("Failed to executing query", zap.Error(err))

		return nil, err
	}
	defer rows.Close()

	var result []typesProduct.Product

	for rows.Next() {
		var p typesProduct.Product
		err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Category)
		if err != nil {
			e.Logger.Error("Failed to scan rows", zap.Error(err))

			return nil, err
		}
		result = append(result, p)
	}

	if err := rows.Err(); err != nil {
		e.Logger.Error("Error during rows iteration", zap.Error(err))
		return nil, err
	}

	return result, nil
}
