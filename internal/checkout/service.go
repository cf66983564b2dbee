package checkout

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"lumina-main/internal/cart"
	"lumina-main/internal/kafka"
	errorspkg "lumina-main/internal/types/errors"
)

// Service ведет сессии оформления заказа. Сессии живут только в памяти
// процесса, в отличие от документов корзины они никуда не персистятся
type Service struct {
	Logger        *zap.SugaredLogger
	CartRepo      cart.CartRepo
	Processor     PaymentProcessor
	EventProducer kafka.EventProducer

	mu       sync.Mutex
	sessions map[string]*Session
	byClient map[string]string
	cancels  map[string]context.CancelFunc
}

func NewService(
	logger *zap.SugaredLogger,
	cartRepo cart.CartRepo,
	processor PaymentProcessor,
	eventProducer kafka.EventProducer,
) *Service {
	return &Service{
		Logger:        logger,
		CartRepo:      cartRepo,
		Processor:     processor,
		EventProducer: eventProducer,
		sessions:      make(map[string]*Session),
		byClient:      make(map[string]string),
		cancels:       make(map[string]context.CancelFunc),
	}
}

// Begin начинает оформление заказа. Гард входа: с пустой корзиной
// оформление не начинается вообще
func (s *Service) Begin(ctx context.Context, clientID string) (*Session, error) {
	c, err := s.CartRepo.GetByClientID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if len(c.Items) == 0 {
		return nil, errorspkg.ErrEmptyCart
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Старая сессия клиента, если была, бросается
	if oldID, ok := s.byClient[clientID]; ok {
		s.abandonLocked(oldID)
	}

	sess := &Session{
		ID:       uuid.New().String(),
		ClientID: clientID,
		Step:     StepShipping,
		active:   true,
	}
	s.sessions[sess.ID] = sess
	s.byClient[clientID] = sess.ID

	s.Logger.Infof("checkout session %s started for client %s", sess.ID, clientID)

	snapshot := *sess
	return &snapshot, nil
}

// Get возвращает снимок сессии для отображения
func (s *Service) Get(sessionID string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, errorspkg.ErrCheckoutNotFound
	}

	snapshot := *sess
	return &snapshot, nil
}

// SubmitShipping принимает адрес доставки и переводит сессию на шаг оплаты.
// Единственная проверка полей - заполненность
func (s *Service) SubmitShipping(sessionID string, info ShippingInfo) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.activeSessionLocked(sessionID)
	if err != nil {
		return nil, err
	}

	if !CanTransitionTo(sess.Step, StepPayment) {
		return nil, errorspkg.ErrIllegalTransition
	}
	if !info.Complete() {
		return nil, errorspkg.ErrMissingShippingInfo
	}

	sess.Shipping = info
	sess.Step = StepPayment

	snapshot := *sess
	return &snapshot, nil
}

// BackToShipping - единственный разрешенный переход назад, с шага оплаты.
// Пока платеж в обработке, уходить с шага нельзя
func (s *Service) BackToShipping(sessionID string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.activeSessionLocked(sessionID)
	if err != nil {
		return nil, err
	}

	if sess.Processing || !CanTransitionTo(sess.Step, StepShipping) {
		return nil, errorspkg.ErrIllegalTransition
	}

	sess.Step = StepShipping

	snapshot := *sess
	return &snapshot, nil
}

// SubmitPayment отдает платеж процессору и возвращается сразу, не дожидаясь
// расчета. Повторный вызов во время обработки или после подтверждения - no-op
func (s *Service) SubmitPayment(ctx context.Context, sessionID string, info PaymentInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.activeSessionLocked(sessionID)
	if err != nil {
		return err
	}

	// Идемпотентность: платеж уже в обработке или сессия уже подтверждена
	if sess.Processing || sess.Step.IsTerminal() {
		return nil
	}

	if sess.Step != StepPayment {
		return errorspkg.ErrIllegalTransition
	}
	if !info.Complete() {
		return errorspkg.ErrMissingPaymentInfo
	}

	c, err := s.CartRepo.GetByClientID(ctx, sess.ClientID)
	if err != nil {
		return err
	}
	amount := cart.Total(c.Subtotal())

	sess.Payment = info
	sess.Processing = true
	sess.LastPaymentError = ""
	sess.pendingAmount = amount

	// Расчет может пережить запрос, поэтому не привязываемся к его контексту.
	// Уход с оформления отменяет settleCtx
	settleCtx, cancel := context.WithCancel(context.Background())
	s.cancels[sessionID] = cancel

	go func() {
		chargeErr := s.Processor.Charge(settleCtx, sess.ClientID, amount)
		s.settle(sessionID, chargeErr)
	}()

	return nil
}

// Abandon бросает сессию: введенные данные теряются, ожидающий расчет
// платежа отменяется и уже ничего не обновит
func (s *Service) Abandon(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.abandonLocked(sessionID)
}

// settle применяет результат расчета платежа. Гард живости: к этому моменту
// сессия могла быть брошена, тогда обновление молча выбрасывается
func (s *Service) settle(sessionID string, chargeErr error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cancel, ok := s.cancels[sessionID]; ok {
		cancel()
		delete(s.cancels, sessionID)
	}

	sess, ok := s.sessions[sessionID]
	if !ok || !sess.active || !sess.Processing {
		s.Logger.Infof("dropping settlement for inactive checkout session %s", sessionID)
		return
	}

	if chargeErr != nil {
		if errors.Is(chargeErr, context.Canceled) {
			return
		}

		// Отказ платежа возвращает сессию на шаг оплаты, попытку можно повторить
		sess.Processing = false
		sess.LastPaymentError = errorspkg.ErrPaymentDeclined.Error()
		s.Logger.Warnf("payment declined for checkout session %s: %v", sessionID, chargeErr)
		return
	}

	// Успешный расчет: корзина безусловно очищается, заказ подтверждается
	productIDs, categories := s.clearCartLocked(sess.ClientID)

	sess.Processing = false
	sess.Order = &Order{
		Number:            orderNumber(),
		Total:             sess.pendingAmount,
		EstimatedDelivery: time.Now().AddDate(0, 0, DeliveryDays),
	}
	sess.Step = StepConfirmation

	s.sendPurchaseEvent(sess.ClientID, productIDs, categories)

	s.Logger.Infof("checkout session %s confirmed, order %s", sessionID, sess.Order.Number)
}

func (s *Service) activeSessionLocked(sessionID string) (*Session, error) {
	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, errorspkg.ErrCheckoutNotFound
	}
	if !sess.active {
		return nil, errorspkg.ErrCheckoutNotActive
	}

	return sess, nil
}

func (s *Service) abandonLocked(sessionID string) {
	sess, ok := s.sessions[sessionID]
	if !ok {
		return
	}

	sess.active = false
	if cancel, ok := s.cancels[sessionID]; ok {
		cancel()
		delete(s.cancels, sessionID)
	}
	if s.byClient[sess.ClientID] == sessionID {
		delete(s.byClient, sess.ClientID)
	}
	delete(s.sessions, sessionID)
}

// clearCartLocked очищает корзину клиента и возвращает id купленных товаров
// и их категории (без повторов). Отказ хранилища здесь не откатывает
// подтверждение, только ворнинг
func (s *Service) clearCartLocked(clientID string) ([]string, []string) {
	ctx := context.Background()

	var productIDs, categories []string
	if c, err := s.CartRepo.GetByClientID(ctx, clientID); err == nil {
		seen := make(map[string]bool)
		for _, item := range c.Items {
			productIDs = append(productIDs, item.ID)
			if item.Category != "" && !seen[item.Category] {
				seen[item.Category] = true
				categories = append(categories, item.Category)
			}
		}
	}

	if _, err := s.CartRepo.Clear(ctx, clientID); err != nil {
		s.Logger.Warnf("failed to clear cart for client %s after purchase: %v", clientID, err)
	}

	return productIDs, categories
}

func (s *Service) sendPurchaseEvent(clientID string, productIDs, categories []string) {
	event := kafka.Event{
		ClientID:   clientID,
		Type:       kafka.EventTypePurchase,
		ProductIDs: productIDs,
		Categories: categories,
		Timestamp:  time.Now(),
	}
	if err := s.EventProducer.SendEvent(context.Background(), event); err != nil {
		s.Logger.Warnf("failed to send purchase event for client %s: %v", clientID, err)
	}
}

// orderNumber - случайный шестизначный display-only номер заказа
func orderNumber() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000)) // nolint:gosec
}
