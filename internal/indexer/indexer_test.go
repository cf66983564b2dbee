package indexer_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"lumina-main/internal/indexer"
	typesProduct "lumina-main/internal/types/product"
	searchDoc "lumina-main/internal/types/search"

	"github.com/DATA-DOG/go-sqlmock"
	"go.uber.org/zap"
)

func TestPostgresExtractor_ExtractNew(t *testing.T) {
	logger := zap.NewNop().Sugar()

	tests := []struct {
		name          string
		mockQuery     func(mock sqlmock.Sqlmock)
		expectedError bool
		expectedCount int
	}{
		{
			name: "success with two rows",
			mockQuery: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "name", "description", "category"}).
					AddRow("1", "Ergonomic Office Chair", "Premium ergonomic chair", "furniture").
					AddRow("3", "Wireless Headphones", "Premium wireless headphones", "electronics")
				mock.ExpectQuery(regexp.QuoteMeta(`
					SELECT id, name, description, category
					FROM product
					WHERE indexed = FALSE
				`)).WillReturnRows(rows)
			},
			expectedError: false,
			expectedCount: 2,
		},
		{
			name: "query error",
			mockQuery: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(`
					SELECT id, name, description, category
					FROM product
					WHERE indexed = FALSE
				`)).WillReturnError(errors.New("query failed"))
			},
			expectedError: true,
		},
		{
			name: "no pending rows",
			mockQuery: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "name", "description", "category"})
				mock.ExpectQuery(regexp.QuoteMeta(`
					SELECT id, name, description, category
					FROM product
					WHERE indexed = FALSE
				`)).WillReturnRows(rows)
			},
			expectedError: false,
			expectedCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			if err != nil {
				t.Fatalf("failed to open sqlmock: %v", err)
			}
			defer db.Close()

			tt.mockQuery(mock)

			extractor := indexer.NewPostgresExtractor(db, logger)
			ctx := context.Background()

			results, err := extractor.ExtractNew(ctx)

			if tt.expectedError && err == nil {
				t.Errorf("expected error but got none")
			}
			if !tt.expectedError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if len(results) != tt.expectedCount {
				t.Errorf("expected %d results, got %d", tt.expectedCount, len(results))
			}

			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("unfulfilled expectations: %v", err)
			}
		})
	}
}

func TestTransformer_Transform(t *testing.T) {
	logger := zap.NewNop().Sugar()

	tests := []struct {
		name   string
		input  []typesProduct.Product
		expect []searchDoc.SearchDoc
	}{
		{
			name:   "empty input",
			input:  []typesProduct.Product{},
			expect: []searchDoc.SearchDoc{},
		},
		{
			name: "single product",
			input: []typesProduct.Product{
				{
					ID:          "1",
					Name:        "Ergonomic Office Chair",
					Description: "Premium ergonomic chair",
					Category:    "furniture",
				},
			},
			expect: []searchDoc.SearchDoc{
				{
					ID:          "1",
					Name:        "Ergonomic Office Chair",
					Description: "Premium ergonomic chair",
					Category:    "furniture",
				},
			},
		},
		{
			name: "multiple products",
			input: []typesProduct.Product{
				{ID: "1", Name: "P1", Description: "D1", Category: "furniture"},
				{ID: "2", Name: "P2", Description: "D2", Category: "electronics"},
			},
			expect: []searchDoc.SearchDoc{
				{ID: "1", Name: "P1", Description: "D1", Category: "furniture"},
				{ID: "2", Name: "P2", Description: "D2", Category: "electronics"},
			},
		},
	}

	transformer := indexer.NewTransformer(logger)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := transformer.Transform(tt.input)
			if len(got) != len(tt.expect) {
				t.Fatalf("expected %d results, got %d", len(tt.expect), len(got))
			}

			for i := range got {
				if got[i] != tt.expect[i] {
					t.Errorf("expected %v, got %v", tt.expect[i], got[i])
				}
			}
		})
	}
}
