package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"lumina-main/internal/catalog"
	"lumina-main/internal/contextutil"
	"lumina-main/internal/kafka"
	rv "lumina-main/internal/recently_viewed"
	myErr "lumina-main/internal/types/errors"
)

// RecentlyViewedHandler ручки для истории просмотров
type RecentlyViewedHandler struct {
	Logger             *zap.SugaredLogger
	RecentlyViewedRepo rv.RecentlyViewedRepo
	CatalogRepo        catalog.CatalogRepo
	EventProducer      kafka.EventProducer
}

func NewRecentlyViewedHandler(
	log *zap.SugaredLogger,
	rvr rv.RecentlyViewedRepo,
	catr catalog.CatalogRepo,
	ep kafka.EventProducer,
) *RecentlyViewedHandler {
	return &RecentlyViewedHandler{
		Logger:             log,
		RecentlyViewedRepo: rvr,
		CatalogRepo:        catr,
		EventProducer:      ep,
	}
}

// GetHistory - GET /recently-viewed
// Возвращает историю от самого свежего просмотра к самому старому
func (h *RecentlyViewedHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	clientID, ok := contextutil.GetClientIDFromContext(r.Context())
	if !ok {
		myErr.SendErrorTo(w, myErr.ErrNoAuth, http.StatusUnauthorized, h.Logger)
		return
	}

	history, err := h.RecentlyViewedRepo.GetByClientID(r.Context(), clientID)
	if err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	h.sendHistory(w, history, http.StatusOK)
}

// RecordView - POST /recently-viewed/{productID}
// Фиксирует открытие карточки товара клиентом
func (h *RecentlyViewedHandler) RecordView(w http.ResponseWriter, r *http.Request) {
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

	history, err := h.RecentlyViewedRepo.RecordView(r.Context(), clientID, *product)
	if err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	// После успешной записи — отправляем событие "view" в Kafka
	event := kafka.Event{
		ClientID:   clientID,
		Type:       kafka.EventTypeView,
		Categories: []string{product.Category},
		ProductIDs: []string{product.ID},
		Timestamp:  time.Now(),
	}
	if err := h.EventProducer.SendEvent(r.Context(), event); err != nil {
		h.Logger.Warnf("failed to send view event: %v", err)
	}

	h.Logger.Infof("recorded view of product %s by client %s", productID, clientID)
	h.sendHistory(w, history, http.StatusCreated)
}

// ClearHistory - DELETE /recently-viewed
func (h *RecentlyViewedHandler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	clientID, ok := contextutil.GetClientIDFromContext(r.Context())
	if !ok {
		myErr.SendErrorTo(w, myErr.ErrNoAuth, http.StatusUnauthorized, h.Logger)
		return
	}

	history, err := h.RecentlyViewedRepo.Clear(r.Context(), clientID)
	if err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	h.Logger.Infof("cleared client %s view history", clientID)
	h.sendHistory(w, history, http.StatusOK)
}

func (h *RecentlyViewedHandler) sendHistory(w http.ResponseWriter, history *rv.History, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(history); err != nil {
		h.Logger.Warnw("error writing response", "err", err)
	}
}
