package checkout

import (
	"time"
)

// Step - шаг оформления заказа
type Step string

const (
	StepShipping     Step = "shipping"
	StepPayment      Step = "payment"
	StepConfirmation Step = "confirmation"
)

// IsTerminal - confirmation завершает сессию, нового оформления без новой
// непустой корзины не будет
func (s Step) IsTerminal() bool {
	return s == StepConfirmation
}

func (s Step) String() string {
	return string(s)
}

// CanTransitionTo - допустимые переходы: только линейно вперед,
// назад - единственный переход payment -> shipping
func CanTransitionTo(from, to Step) bool {
	switch from {
	case StepShipping:
		return to == StepPayment
	case StepPayment:
		return to == StepShipping || to == StepConfirmation
	default:
		return false
	}
}

// ShippingInfo - адрес доставки. Валидация только на заполненность полей
type ShippingInfo struct {
	FullName string `json:"fullName"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zipCode"`
	Country  string `json:"country"`
	Phone    string `json:"phone"`
}

// Complete - все обязательные поля непустые
func (si ShippingInfo) Complete() bool {
	return si.FullName != "" &&
		si.Address != "" &&
		si.City != "" &&
		si.State != "" &&
		si.ZipCode != "" &&
		si.Country != "" &&
		si.Phone != ""
}

// PaymentInfo - платежные данные. Никуда не сохраняются дальше сессии
type PaymentInfo struct {
	CardNumber string `json:"cardNumber"`
	CardHolder string `json:"cardHolder"`
	ExpiryDate string `json:"expiryDate"`
	CVV        string `json:"cvv"`
}

func (pi PaymentInfo) Complete() bool {
	return pi.CardNumber != "" &&
		pi.CardHolder != "" &&
		pi.ExpiryDate != "" &&
		pi.CVV != ""
}

// DeliveryDays - оценка доставки для подтверждения заказа
const DeliveryDays = 7

// Order - витринная запись подтвержденного заказа: display-only номер
// и оценка даты доставки, реального фулфилмента за ней нет
type Order struct {
	Number            string    `json:"number"`
	Total             float64   `json:"total"`
	EstimatedDelivery time.Time `json:"estimatedDelivery"`
}

// Session - эфемерная сессия оформления заказа. Живет только в памяти:
// уход с оформления до подтверждения теряет введенные данные
type Session struct {
	ID       string       `json:"id"`
	ClientID string       `json:"client_id"`
	Step     Step         `json:"step"`
	Shipping ShippingInfo `json:"shipping"`
	Payment  PaymentInfo  `json:"-"`
	Order    *Order       `json:"order,omitempty"`

	// Processing - платеж отдан процессору, расчет еще не пришел
	Processing bool `json:"processing"`
	// LastPaymentError - текст отказа последней попытки оплаты, если был
	LastPaymentError string `json:"last_payment_error,omitempty"`

	active bool
	// сумма, отданная процессору, до подтверждения заказа
	pendingAmount float64
}

// Active - жива ли сессия: обновления от отложенного расчета платежа
// применяются только к живой сессии
func (s *Session) Active() bool {
	return s.active
}
