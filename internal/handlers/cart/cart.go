package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"lumina-main/internal/cart"
	"lumina-main/internal/catalog"
	"lumina-main/internal/contextutil"
	"lumina-main/internal/kafka"
	myErr "lumina-main/internal/types/errors"
)

// CartHandler ручки для репозитория корзины
type CartHandler struct {
	Logger        *zap.SugaredLogger
	CartRepo      cart.CartRepo
	CatalogRepo   catalog.CatalogRepo
	EventProducer kafka.EventProducer
}

func NewCartHandler(
	log *zap.SugaredLogger,
	cr cart.CartRepo,
	catr catalog.CatalogRepo,
	ep kafka.EventProducer,
) *CartHandler {
	return &CartHandler{
		Logger:        log,
		CartRepo:      cr,
		CatalogRepo:   catr,
		EventProducer: ep,
	}
}

// cartResponse - корзина вместе с рассчитанными суммами.
// Суммы всегда пересчитываются по текущему состоянию, клиент им не доверяет
type cartResponse struct {
	Items    []cart.CartLine `json:"items"`
	Subtotal float64         `json:"subtotal"`
	Tax      float64         `json:"tax"`
	Shipping float64         `json:"shipping"`
	Total    float64         `json:"total"`
}

func newCartResponse(c *cart.Cart) cartResponse {
	subtotal := c.Subtotal()
	return cartResponse{
		Items:    c.Items,
		Subtotal: subtotal,
		Tax:      cart.Tax(subtotal),
		Shipping: cart.ShippingFee,
		Total:    cart.Total(subtotal),
	}
}

// cartItemResponse - позиция корзины, дополненная актуальным остатком из каталога
type cartItemResponse struct {
	cart.CartLine
	Stock int `json:"stock"`
}

type cartDetailResponse struct {
	Items    []cartItemResponse `json:"items"`
	Subtotal float64            `json:"subtotal"`
	Tax      float64            `json:"tax"`
	Shipping float64            `json:"shipping"`
	Total    float64            `json:"total"`
}

// GetCart - GET /cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	clientID, ok := contextutil.GetClientIDFromContext(r.Context())
	if !ok {
		myErr.SendErrorTo(w, myErr.ErrNoAuth, http.StatusUnauthorized, h.Logger)
		return
	}

	c, err := h.CartRepo.GetByClientID(r.Context(), clientID)
	if err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	h.sendCartWithStock(w, c)
}

// AddToCart - POST /cart/item/{productID}
// Повторное добавление того же товара увеличивает количество на единицу
func (h *CartHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	clientID, ok := contextutil.GetClientIDFromContext(r.Context())
	if !ok {
		myErr.SendErrorTo(w, myErr.ErrNoAuth, http.StatusUnauthorized, h.Logger)
		return
	}

	vars := mux.Vars(r)
	productID := vars["productID"]
	if productID == "" {
		myErr.SendErrorTo(w, myErr.ErrBadID, http.StatusBadRequest, h.Logger)
		return
	}

	product, err := h.CatalogRepo.GetByID(productID)
	if err != nil {
		if errors.Is(err, myErr.ErrProductNotFound) {
			myErr.SendErrorTo(w, err, http.StatusNotFound, h.Logger)
			return
		}
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	c, err := h.CartRepo.AddItem(r.Context(), clientID, *product)
	if err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	// После успешного добавления — отправляем событие "add_to_cart" в Kafka
	event := kafka.Event{
		ClientID:   clientID,
		Type:       kafka.EventTypeAddToCart,
		Categories: []string{product.Category},
		ProductIDs: []string{product.ID},
		Timestamp:  time.Now(),
	}
	if err := h.EventProducer.SendEvent(r.Context(), event); err != nil {
		h.Logger.Warnf("failed to send add_to_cart event: %v", err)
	}

	h.Logger.Infof("added product %s to client %s cart", productID, clientID)
	h.sendCart(w, c, http.StatusCreated)
}

// DeleteFromCart - DELETE /cart/item/{productID}
// Удаление отсутствующей позиции не ошибка: корзина возвращается как есть
func (h *CartHandler) DeleteFromCart(w http.ResponseWriter, r *http.Request) {
	clientID, ok := contextutil.GetClientIDFromContext(r.Context())
	if !ok {
		myErr.SendErrorTo(w, myErr.ErrNoAuth, http.StatusUnauthorized, h.Logger)
		return
	}

	vars := mux.Vars(r)
	productID := vars["productID"]
	if productID == "" {
		myErr.SendErrorTo(w, myErr.ErrBadID, http.StatusBadRequest, h.Logger)
		return
	}

	c, err := h.CartRepo.RemoveItem(r.Context(), clientID, productID)
	if err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	h.Logger.Infof("deleted product %s from client %s cart", productID, clientID)
	h.sendCart(w, c, http.StatusOK)
}

// UpdateQuantity - PUT /cart/item/{productID}
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	clientID, ok := contextutil.GetClientIDFromContext(r.Context())
	if !ok {
		myErr.SendErrorTo(w, myErr.ErrNoAuth, http.StatusUnauthorized, h.Logger)
		return
	}

	vars := mux.Vars(r)
	productID := vars["productID"]
	if productID == "" {
		myErr.SendErrorTo(w, myErr.ErrBadID, http.StatusBadRequest, h.Logger)
		return
	}

	var input struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		myErr.SendErrorTo(w, myErr.ErrInvalidJSONPayload, http.StatusBadRequest, h.Logger)
		return
	}

	c, err := h.CartRepo.UpdateQuantity(r.Context(), clientID, productID, input.Quantity)
	if err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	h.sendCart(w, c, http.StatusOK)
}

// ClearCart - DELETE /cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	clientID, ok := contextutil.GetClientIDFromContext(r.Context())
	if !ok {
		myErr.SendErrorTo(w, myErr.ErrNoAuth, http.StatusUnauthorized, h.Logger)
		return
	}

	c, err := h.CartRepo.Clear(r.Context(), clientID)
	if err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	h.Logger.Infof("cleared client %s cart", clientID)
	h.sendCart(w, c, http.StatusOK)
}

// sendCartWithStock отдает корзину на рендер, дополняя снимки позиций текущим
// остатком из каталога. Недоступность каталога выдачу не валит - остатки
// остаются нулевыми, корзина уходит как есть
func (h *CartHandler) sendCartWithStock(w http.ResponseWriter, c *cart.Cart) {
	stock := make(map[string]int)
	if len(c.Items) > 0 {
		ids := make([]string, 0, len(c.Items))
		for _, line := range c.Items {
			ids = append(ids, line.ID)
		}

		infos, err := h.CatalogRepo.GetInfoForCart(ids)
		if err != nil {
			h.Logger.Warnf("failed to load card info for cart: %v", err)
		}
		for _, info := range infos {
			stock[info.ID] = info.Stock
		}
	}

	base := newCartResponse(c)
	resp := cartDetailResponse{
		Items:    make([]cartItemResponse, 0, len(c.Items)),
		Subtotal: base.Subtotal,
		Tax:      base.Tax,
		Shipping: base.Shipping,
		Total:    base.Total,
	}
	for _, line := range c.Items {
		resp.Items = append(resp.Items, cartItemResponse{CartLine: line, Stock: stock[line.ID]})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.Logger.Warnw("error writing response", "err", err)
	}
}

func (h *CartHandler) sendCart(w http.ResponseWriter, c *cart.Cart, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(newCartResponse(c)); err != nil {
		h.Logger.Warnw("error writing response", "err", err)
	}
}
