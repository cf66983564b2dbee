package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"go.uber.org/zap/zaptest"

	"lumina-main/internal/middleware"
	"lumina-main/internal/mocks"
	"lumina-main/internal/session"
	myErr "lumina-main/internal/types/errors"
	typesProduct "lumina-main/internal/types/product"
	searchDoc "lumina-main/internal/types/search"
)

// fakeSearchService подменяет полнотекстовый поиск
type fakeSearchService struct {
	docs      []searchDoc.SearchDoc
	returnErr error
}

func (f *fakeSearchService) Search(ctx context.Context, query string) ([]searchDoc.SearchDoc, error) {
	return f.docs, f.returnErr
}

func chair() *typesProduct.Product {
	return &typesProduct.Product{
		ID:       "1",
		Name:     "Ergonomic Office Chair",
		Price:    249.99,
		Category: "furniture",
	}
}

func TestCatalogHandler_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCatalogRepo := mocks.NewMockCatalogRepo(ctrl)
	mockProducer := mocks.NewMockEventProducer(ctrl)
	logger := zaptest.NewLogger(t).Sugar()
	handler := NewCatalogHandler(logger, mockCatalogRepo, &fakeSearchService{}, mockProducer)

	tests := []struct {
		name           string
		id             string
		mockBehavior   func()
		expectedStatus int
	}{
		{
			name: "success",
			id:   "1",
			mockBehavior: func() {
				mockCatalogRepo.EXPECT().GetByID("1").Return(chair(), nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "not found",
			id:   "missing",
			mockBehavior: func() {
				mockCatalogRepo.EXPECT().GetByID("missing").Return(nil, myErr.ErrProductNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "db error",
			id:   "1",
			mockBehavior: func() {
				mockCatalogRepo.EXPECT().GetByID("1").Return(nil, myErr.ErrDBInternal)
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockBehavior()
			req := httptest.NewRequest(http.MethodGet, "/products/"+tc.id, nil)
			req = mux.SetURLVars(req, map[string]string{"id": tc.id})
			w := httptest.NewRecorder()

			handler.GetByID(w, req)

			resp := w.Result()
			if resp.StatusCode != tc.expectedStatus {
				t.Errorf("expected %d, got %d", tc.expectedStatus, resp.StatusCode)
			}
		})
	}
}

func TestCatalogHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCatalogRepo := mocks.NewMockCatalogRepo(ctrl)
	mockProducer := mocks.NewMockEventProducer(ctrl)
	logger := zaptest.NewLogger(t).Sugar()
	handler := NewCatalogHandler(logger, mockCatalogRepo, &fakeSearchService{}, mockProducer)

	mockCatalogRepo.EXPECT().ListByCategory("furniture").Return([]typesProduct.Product{*chair()}, nil)

	req := httptest.NewRequest(http.MethodGet, "/products?category=furniture", nil)
	w := httptest.NewRecorder()

	handler.List(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var got []typesProduct.Product
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(got) != 1 || got[0].ID != "1" {
		t.Errorf("unexpected products: %v", got)
	}
}

func TestCatalogHandler_GetPopular_DefaultLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCatalogRepo := mocks.NewMockCatalogRepo(ctrl)
	mockProducer := mocks.NewMockEventProducer(ctrl)
	logger := zaptest.NewLogger(t).Sugar()
	handler := NewCatalogHandler(logger, mockCatalogRepo, &fakeSearchService{}, mockProducer)

	mockCatalogRepo.EXPECT().GetPopular(defaultPopularLimit).Return([]typesProduct.Product{*chair()}, nil)

	req := httptest.NewRequest(http.MethodGet, "/products/popular", nil)
	w := httptest.NewRecorder()

	handler.GetPopular(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
}

func TestCatalogHandler_Search_FullText(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCatalogRepo := mocks.NewMockCatalogRepo(ctrl)
	mockProducer := mocks.NewMockEventProducer(ctrl)
	logger := zaptest.NewLogger(t).Sugar()

	searchService := &fakeSearchService{
		docs: []searchDoc.SearchDoc{
			{ID: "1", Name: "Ergonomic Office Chair", Category: "furniture"},
		},
	}
	handler := NewCatalogHandler(logger, mockCatalogRepo, searchService, mockProducer)

	mockCatalogRepo.EXPECT().GetByID("1").Return(chair(), nil)
	mockProducer.EXPECT().SendEvent(gomock.Any(), gomock.Any()).Return(nil)

	req := httptest.NewRequest(http.MethodGet, "/products/search?q=chir", nil)
	ctx := middleware.ContextWithSession(req.Context(), &session.Session{ID: "s", ClientID: "client-1"})
	req = req.WithContext(ctx)
	w := httptest.NewRecorder()

	handler.Search(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var got []typesProduct.Product
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Ergonomic Office Chair" {
		t.Errorf("unexpected search results: %v", got)
	}
}

func TestCatalogHandler_Search_FallbackToCatalog(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCatalogRepo := mocks.NewMockCatalogRepo(ctrl)
	mockProducer := mocks.NewMockEventProducer(ctrl)
	logger := zaptest.NewLogger(t).Sugar()

	// ES недоступен — ищем по каталогу
	searchService := &fakeSearchService{returnErr: errors.New("connection refused")}
	handler := NewCatalogHandler(logger, mockCatalogRepo, searchService, mockProducer)

	mockCatalogRepo.EXPECT().Search("chair").Return([]typesProduct.Product{*chair()}, nil)

	// Анонимный запрос без сессии: событие не отправляется
	req := httptest.NewRequest(http.MethodGet, "/products/search?q=chair", nil)
	w := httptest.NewRecorder()

	handler.Search(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestCatalogHandler_Search_MissingQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCatalogRepo := mocks.NewMockCatalogRepo(ctrl)
	mockProducer := mocks.NewMockEventProducer(ctrl)
	logger := zaptest.NewLogger(t).Sugar()
	handler := NewCatalogHandler(logger, mockCatalogRepo, &fakeSearchService{}, mockProducer)

	req := httptest.NewRequest(http.MethodGet, "/products/search", nil)
	w := httptest.NewRecorder()

	handler.Search(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", resp.StatusCode)
	}
}
