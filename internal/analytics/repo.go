package analytics

import (
	"context"
	"database/sql"

	"go.uber.org/zap"
)

type Repository struct {
	db     *sql.DB
	logger *zap.SugaredLogger
}

func NewRepository(db *sql.DB, logger *zap.SugaredLogger) *Repository {
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) UpdatePreferences(ctx context.Context, clientID string, weights map[string]int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for category, weight := range weights {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO client_preferences (client_id, category, weight)
			VALUES ($1, $2, $3)
			ON CONFLICT (client_id, category)
			DO UPDATE SET weight = client_preferences.weight + EXCLUDED.weight
		`, clientID, category, weight)

		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *Repository) GetTopCategories(ctx context.Context, clientID string, limit int) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT category
		FROM client_preferences
		WHERE client_id = $1
		ORDER BY weight DESC
		LIMIT $2
	`, clientID, limit)

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}

	return categories, nil
}
