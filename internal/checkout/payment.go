package checkout

import (
	"context"
	"time"
)

// PaymentProcessor - шлюз проведения платежа. Блокируется до расчета
// или до отмены контекста
//
//go:generate mockgen -source=payment.go -destination=../mocks/mock_payment_processor.go -package=mocks
type PaymentProcessor interface {
	Charge(ctx context.Context, clientID string, amount float64) error
}

// SimulatedProcessor имитирует асинхронный расчет платежного шлюза
// фиксированной задержкой. Платеж всегда проходит
type SimulatedProcessor struct {
	Delay time.Duration
}

func NewSimulatedProcessor(delay time.Duration) *SimulatedProcessor {
	return &SimulatedProcessor{Delay: delay}
}

func (sp *SimulatedProcessor) Charge(ctx context.Context, clientID string, amount float64) error {
	timer := time.NewTimer(sp.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
