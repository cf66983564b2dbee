package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/assert"
	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"go.uber.org/zap/zaptest"

	"lumina-main/internal/middleware"
	"lumina-main/internal/mocks"
	"lumina-main/internal/session"
	myErr "lumina-main/internal/types/errors"
	typesProduct "lumina-main/internal/types/product"
	"lumina-main/internal/wishlist"
)

const testClientID = "client-1"

func withSession(req *http.Request, clientID string) *http.Request {
	ctx := middleware.ContextWithSession(req.Context(), &session.Session{
		ID:       "sess-1",
		ClientID: clientID,
	})
	return req.WithContext(ctx)
}

func headphones() *typesProduct.Product {
	return &typesProduct.Product{
		ID:       "3",
		Name:     "Wireless Bluetooth Headphones",
		Price:    199.99,
		Category: "electronics",
	}
}

func TestWishlistHandler_AddToWishlist(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWishlistRepo := mocks.NewMockWishlistRepo(ctrl)
	mockCatalogRepo := mocks.NewMockCatalogRepo(ctrl)
	logger := zaptest.NewLogger(t).Sugar()
	handler := NewWishlistHandler(logger, mockWishlistRepo, mockCatalogRepo)

	product := headphones()

	tests := []struct {
		name           string
		productID      string
		mockBehavior   func()
		expectedStatus int
	}{
		{
			name:      "success",
			productID: "3",
			mockBehavior: func() {
				mockCatalogRepo.EXPECT().GetByID("3").Return(product, nil)
				mockWishlistRepo.EXPECT().
					AddItem(gomock.Any(), testClientID, *product).
					Return(&wishlist.Wishlist{Items: []typesProduct.Product{*product}}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:      "unknown product",
			productID: "missing",
			mockBehavior: func() {
				mockCatalogRepo.EXPECT().GetByID("missing").Return(nil, myErr.ErrProductNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:      "repo error",
			productID: "3",
			mockBehavior: func() {
				mockCatalogRepo.EXPECT().GetByID("3").Return(product, nil)
				mockWishlistRepo.EXPECT().
					AddItem(gomock.Any(), testClientID, *product).
					Return(nil, myErr.ErrStorageInternal)
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockBehavior()
			url := fmt.Sprintf("/wishlist/item/%s", tc.productID)
			req := httptest.NewRequest(http.MethodPost, url, nil)
			req = mux.SetURLVars(req, map[string]string{"productID": tc.productID})
			req = withSession(req, testClientID)
			w := httptest.NewRecorder()

			handler.AddToWishlist(w, req)

			resp := w.Result()
			assert.Equal(t, tc.expectedStatus, resp.StatusCode)
		})
	}
}

func TestWishlistHandler_Contains(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWishlistRepo := mocks.NewMockWishlistRepo(ctrl)
	mockCatalogRepo := mocks.NewMockCatalogRepo(ctrl)
	logger := zaptest.NewLogger(t).Sugar()
	handler := NewWishlistHandler(logger, mockWishlistRepo, mockCatalogRepo)

	mockWishlistRepo.EXPECT().Contains(gomock.Any(), testClientID, "3").Return(true, nil)

	req := httptest.NewRequest(http.MethodGet, "/wishlist/item/3", nil)
	req = mux.SetURLVars(req, map[string]string{"productID": "3"})
	req = withSession(req, testClientID)
	w := httptest.NewRecorder()

	handler.Contains(w, req)

	resp := w.Result()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var got map[string]bool
	err := json.NewDecoder(resp.Body).Decode(&got)
	assert.Equal(t, err, nil)
	assert.Equal(t, true, got["contains"])
}

func TestWishlistHandler_DeleteFromWishlist(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWishlistRepo := mocks.NewMockWishlistRepo(ctrl)
	mockCatalogRepo := mocks.NewMockCatalogRepo(ctrl)
	logger := zaptest.NewLogger(t).Sugar()
	handler := NewWishlistHandler(logger, mockWishlistRepo, mockCatalogRepo)

	mockWishlistRepo.EXPECT().
		RemoveItem(gomock.Any(), testClientID, "3").
		Return(&wishlist.Wishlist{}, nil)

	req := httptest.NewRequest(http.MethodDelete, "/wishlist/item/3", nil)
	req = mux.SetURLVars(req, map[string]string{"productID": "3"})
	req = withSession(req, testClientID)
	w := httptest.NewRecorder()

	handler.DeleteFromWishlist(w, req)

	resp := w.Result()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestWishlistHandler_GetWishlist_NoSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWishlistRepo := mocks.NewMockWishlistRepo(ctrl)
	mockCatalogRepo := mocks.NewMockCatalogRepo(ctrl)
	logger := zaptest.NewLogger(t).Sugar()
	handler := NewWishlistHandler(logger, mockWishlistRepo, mockCatalogRepo)

	req := httptest.NewRequest(http.MethodGet, "/wishlist", nil)
	w := httptest.NewRecorder()

	handler.GetWishlist(w, req)

	resp := w.Result()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
