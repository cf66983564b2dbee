package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"lumina-main/internal/checkout"
	"lumina-main/internal/contextutil"
	myErr "lumina-main/internal/types/errors"
)

// CheckoutHandler ручки машины состояний оформления заказа
type CheckoutHandler struct {
	Logger  *zap.SugaredLogger
	Service *checkout.Service
}

func NewCheckoutHandler(log *zap.SugaredLogger, s *checkout.Service) *CheckoutHandler {
	return &CheckoutHandler{
		Logger:  log,
		Service: s,
	}
}

// Begin - POST /checkout
// С пустой корзиной оформление не начинается
func (h *CheckoutHandler) Begin(w http.ResponseWriter, r *http.Request) {
	clientID, ok := contextutil.GetClientIDFromContext(r.Context())
	if !ok {
		myErr.SendErrorTo(w, myErr.ErrNoAuth, http.StatusUnauthorized, h.Logger)
		return
	}

	sess, err := h.Service.Begin(r.Context(), clientID)
	if err != nil {
		if errors.Is(err, myErr.ErrEmptyCart) {
			myErr.SendErrorTo(w, err, http.StatusBadRequest, h.Logger)
			return
		}
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	h.Logger.Infof("checkout %s started for client %s", sess.ID, clientID)
	h.sendSession(w, sess, http.StatusCreated)
}

// Get - GET /checkout/{id}
func (h *CheckoutHandler) Get(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.ownSession(w, r)
	if !ok {
		return
	}

	h.sendSession(w, sess, http.StatusOK)
}

// SubmitShipping - PUT /checkout/{id}/shipping
func (h *CheckoutHandler) SubmitShipping(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.ownSession(w, r)
	if !ok {
		return
	}

	var info checkout.ShippingInfo
	if err := json.NewDecoder(r.Body).Decode(&info); err != nil {
		myErr.SendErrorTo(w, myErr.ErrInvalidJSONPayload, http.StatusBadRequest, h.Logger)
		return
	}

	updated, err := h.Service.SubmitShipping(sess.ID, info)
	if err != nil {
		h.sendCheckoutError(w, err)
		return
	}

	h.sendSession(w, updated, http.StatusOK)
}

// BackToShipping - POST /checkout/{id}/back
// Единственный разрешенный шаг назад: с оплаты на доставку
func (h *CheckoutHandler) BackToShipping(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.ownSession(w, r)
	if !ok {
		return
	}

	updated, err := h.Service.BackToShipping(sess.ID)
	if err != nil {
		h.sendCheckoutError(w, err)
		return
	}

	h.sendSession(w, updated, http.StatusOK)
}

// SubmitPayment - POST /checkout/{id}/payment
// Платеж уходит процессору асинхронно, клиент опрашивает состояние через Get
func (h *CheckoutHandler) SubmitPayment(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.ownSession(w, r)
	if !ok {
		return
	}

	var info checkout.PaymentInfo
	if err := json.NewDecoder(r.Body).Decode(&info); err != nil {
		myErr.SendErrorTo(w, myErr.ErrInvalidJSONPayload, http.StatusBadRequest, h.Logger)
		return
	}

	if err := h.Service.SubmitPayment(r.Context(), sess.ID, info); err != nil {
		h.sendCheckoutError(w, err)
		return
	}

	w.WriteHeader(http.StatusAccepted)
	h.Logger.Infof("payment submitted for checkout %s", sess.ID)
}

// Abandon - DELETE /checkout/{id}
func (h *CheckoutHandler) Abandon(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.ownSession(w, r)
	if !ok {
		return
	}

	h.Service.Abandon(sess.ID)

	w.WriteHeader(http.StatusNoContent)
	h.Logger.Infof("checkout %s abandoned", sess.ID)
}

// ownSession достает сессию оформления и сверяет, что она принадлежит
// клиенту из контекста. Чужая сессия неотличима от несуществующей
func (h *CheckoutHandler) ownSession(w http.ResponseWriter, r *http.Request) (*checkout.Session, bool) {
	clientID, ok := contextutil.GetClientIDFromContext(r.Context())
	if !ok {
		myErr.SendErrorTo(w, myErr.ErrNoAuth, http.StatusUnauthorized, h.Logger)
		return nil, false
	}

	vars := mux.Vars(r)
	id := vars["id"]
	if id == "" {
		myErr.SendErrorTo(w, myErr.ErrBadID, http.StatusBadRequest, h.Logger)
		return nil, false
	}

	sess, err := h.Service.Get(id)
	if err != nil || sess.ClientID != clientID {
		myErr.SendErrorTo(w, myErr.ErrCheckoutNotFound, http.StatusNotFound, h.Logger)
		return nil, false
	}

	return sess, true
}

func (h *CheckoutHandler) sendCheckoutError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, myErr.ErrCheckoutNotFound):
		myErr.SendErrorTo(w, err, http.StatusNotFound, h.Logger)
	case errors.Is(err, myErr.ErrIllegalTransition), errors.Is(err, myErr.ErrCheckoutNotActive):
		myErr.SendErrorTo(w, err, http.StatusConflict, h.Logger)
	case errors.Is(err, myErr.ErrMissingShippingInfo), errors.Is(err, myErr.ErrMissingPaymentInfo):
		myErr.SendErrorTo(w, err, http.StatusBadRequest, h.Logger)
	default:
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
	}
}

func (h *CheckoutHandler) sendSession(w http.ResponseWriter, sess *checkout.Session, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(sess); err != nil {
		h.Logger.Warnw("error writing response", "err", err)
	}
}
