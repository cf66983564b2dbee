package analytics

import (
	"context"

	"lumina-main/internal/kafka"
)

// AnalyticsRepo — интерфейс репозитория для работы с предпочтениями клиентов.
type AnalyticsRepo interface {
	UpdatePreferences(ctx context.Context, clientID string, weights map[string]int) error
	GetTopCategories(ctx context.Context, clientID string, limit int) ([]string, error)
}

// AnalyticsService — интерфейс сервиса аналитики.
type AnalyticsService interface {
	ProcessEvent(ctx context.Context, event kafka.Event) error
	GetTopCategories(ctx context.Context, clientID string, limit int) ([]string, error)
}
