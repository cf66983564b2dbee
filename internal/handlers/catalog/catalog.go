package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"lumina-main/internal/catalog"
	"lumina-main/internal/contextutil"
	"lumina-main/internal/kafka"
	myErr "lumina-main/internal/types/errors"
	typesProduct "lumina-main/internal/types/product"
	searchDoc "lumina-main/internal/types/search"
)

const defaultPopularLimit = 4

// SearchService - полнотекстовый поиск по каталогу
type SearchService interface {
	Search(ctx context.Context, query string) ([]searchDoc.SearchDoc, error)
}

// CatalogHandler ручки каталога товаров
type CatalogHandler struct {
	Logger        *zap.SugaredLogger
	CatalogRepo   catalog.CatalogRepo
	SearchService SearchService
	EventProducer kafka.EventProducer
}

func NewCatalogHandler(
	log *zap.SugaredLogger,
	cr catalog.CatalogRepo,
	ss SearchService,
	ep kafka.EventProducer,
) *CatalogHandler {
	return &CatalogHandler{
		Logger:        log,
		CatalogRepo:   cr,
		SearchService: ss,
		EventProducer: ep,
	}
}

// GetByID - GET /products/{id}
func (h *CatalogHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]
	if id == "" {
		myErr.SendErrorTo(w, myErr.ErrBadID, http.StatusBadRequest, h.Logger)
		return
	}

	product, err := h.CatalogRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, myErr.ErrProductNotFound) {
			myErr.SendErrorTo(w, err, http.StatusNotFound, h.Logger)
			return
		}
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	h.sendJSON(w, product, http.StatusOK)
}

// List - GET /products?category={category}
// Без категории отдает весь каталог
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	products, err := h.CatalogRepo.ListByCategory(category)
	if err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	if products == nil {
		products = []typesProduct.Product{}
	}

	h.sendJSON(w, products, http.StatusOK)
}

// GetPopular - GET /products/popular?limit={n}
// Подборка для главной страницы
func (h *CatalogHandler) GetPopular(w http.ResponseWriter, r *http.Request) {
	limit := defaultPopularLimit
	if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
		if n, err := strconv.Atoi(limitParam); err == nil && n > 0 {
			limit = n
		}
	}

	products, err := h.CatalogRepo.GetPopular(limit)
	if err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	if products == nil {
		products = []typesProduct.Product{}
	}

	h.sendJSON(w, products, http.StatusOK)
}

// Search - GET /products/search?q={query}
// Сначала идем в полнотекстовый поиск; если он лежит, деградируем
// до поиска по каталогу в PostgreSQL
func (h *CatalogHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		myErr.SendErrorTo(w, errors.New("missing query parameter"), http.StatusBadRequest, h.Logger)
		return
	}

	products, err := h.searchProducts(r.Context(), q)
	if err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	// Поисковое событие для аналитики: категории найденных товаров
	if clientID, ok := contextutil.GetClientIDFromContext(r.Context()); ok && len(products) > 0 {
		var categories []string
		for _, p := range products {
			categories = append(categories, p.Category)
		}
		event := kafka.Event{
			ClientID:   clientID,
			Type:       kafka.EventTypeSearch,
			Categories: categories,
			Timestamp:  time.Now(),
		}
		if err := h.EventProducer.SendEvent(r.Context(), event); err != nil {
			h.Logger.Warnf("failed to send search event: %v", err)
		}
	}

	h.Logger.Infof("searched products with query: %s", q)
	h.sendJSON(w, products, http.StatusOK)
}

func (h *CatalogHandler) searchProducts(ctx context.Context, query string) ([]typesProduct.Product, error) {
	docs, err := h.SearchService.Search(ctx, query)
	if err != nil {
		h.Logger.Warnf("full-text search failed, falling back to catalog search: %v", err)
		return h.CatalogRepo.Search(query)
	}

	products := make([]typesProduct.Product, 0, len(docs))
	for _, doc := range docs {
		product, err := h.CatalogRepo.GetByID(doc.ID)
		if err != nil {
			// Индекс может отставать от каталога
			h.Logger.Warnf("indexed product %s not found in catalog: %v", doc.ID, err)
			continue
		}
		products = append(products, *product)
	}

	return products, nil
}

func (h *CatalogHandler) sendJSON(w http.ResponseWriter, v interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.Logger.Warnw("error writing response", "err", err)
	}
}
