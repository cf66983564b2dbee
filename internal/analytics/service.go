package analytics

import (
	"context"

	"lumina-main/internal/kafka"

	"go.uber.org/zap"
)

type Service struct {
	repo   AnalyticsRepo
	logger *zap.SugaredLogger
}

func NewService(repo AnalyticsRepo, logger *zap.SugaredLogger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) ProcessEvent(ctx context.Context, event kafka.Event) error {
	if event.ClientID == "" {
		return nil // Игнорируем события без клиента
	}

	weights := make(map[string]int)
	switch event.Type {
	case kafka.EventTypeSearch:
		for _, cat := range event.Categories {
			weights[cat] += 1
		}
	case kafka.EventTypeView:
		if len(event.Categories) > 0 {
			weights[event.Categories[0]] += 2
		}
	case kafka.EventTypeAddToCart:
		if len(event.Categories) > 0 {
			weights[event.Categories[0]] += 2
		}
	case kafka.EventTypePurchase:
		for _, cat := range event.Categories {
			weights[cat] += 3
		}
	}

	if len(weights) == 0 {
		return nil
	}

	return s.repo.UpdatePreferences(ctx, event.ClientID, weights)
}

func (s *Service) GetTopCategories(ctx context.Context, clientID string, limit int) ([]string, error) {
	return s.repo.GetTopCategories(ctx, clientID, limit)
}
