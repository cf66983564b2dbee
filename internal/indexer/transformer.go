package indexer

import (
	typesProduct "lumina-main/internal/types/product"
	searchDoc "lumina-main/internal/types/search"

	"go.uber.org/zap"
)

type Transformer struct {
	Logger *zap.SugaredLogger
}

func NewTransformer(logger *zap.SugaredLogger) *Transformer {
	return &Transformer{
		Logger: logger,
	}
}

// Transform - переводит товары из формата хранения в PostgreSQL в SearchDoc для хранения в ES
// Принимает массив Product, возвращает массив SearchDoc
func (t *Transformer) Transform(input []typesProduct.Product) []searchDoc.SearchDoc {
	docs := make([]searchDoc.SearchDoc, 0, len(input))
	for _, p := range input {
		docs = append(docs, searchDoc.SearchDoc{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Category:    p.Category,
		})
	}

	t.Logger.Infof("Transformed %d docs succesfully", len(input))

	return docs
}
