package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"lumina-main/internal/catalog"
	"lumina-main/internal/contextutil"
	myErr "lumina-main/internal/types/errors"
	"lumina-main/internal/wishlist"
)

// WishlistHandler ручки для репозитория вишлиста
type WishlistHandler struct {
	Logger       *zap.SugaredLogger
	WishlistRepo wishlist.WishlistRepo
	CatalogRepo  catalog.CatalogRepo
}

func NewWishlistHandler(
	log *zap.SugaredLogger,
	wr wishlist.WishlistRepo,
	catr catalog.CatalogRepo,
) *WishlistHandler {
	return &WishlistHandler{
		Logger:       log,
		WishlistRepo: wr,
		CatalogRepo:  catr,
	}
}

// GetWishlist - GET /wishlist
func (h *WishlistHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	clientID, ok := contextutil.GetClientIDFromContext(r.Context())
	if !ok {
		myErr.SendErrorTo(w, myErr.ErrNoAuth, http.StatusUnauthorized, h.Logger)
		return
	}

	wl, err := h.WishlistRepo.GetByClientID(r.Context(), clientID)
	if err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	h.sendWishlist(w, wl, http.StatusOK)
}

// AddToWishlist - POST /wishlist/item/{productID}
// Вишлист ведет себя как множество: повторное добавление ничего не меняет
func (h *WishlistHandler) AddToWishlist(w http.ResponseWriter, r *http.Request) {
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

	wl, err := h.WishlistRepo.AddItem(r.Context(), clientID, *product)
	if err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	h.Logger.Infof("added product %s to client %s wishlist", productID, clientID)
	h.sendWishlist(w, wl, http.StatusCreated)
}

// DeleteFromWishlist - DELETE /wishlist/item/{productID}
func (h *WishlistHandler) DeleteFromWishlist(w http.ResponseWriter, r *http.Request) {
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

	wl, err := h.WishlistRepo.RemoveItem(r.Context(), clientID, productID)
	if err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	h.Logger.Infof("deleted product %s from client %s wishlist", productID, clientID)
	h.sendWishlist(w, wl, http.StatusOK)
}

// Contains - GET /wishlist/item/{productID}
// Отвечает {"contains": true/false}, сердечко на карточке товара
func (h *WishlistHandler) Contains(w http.ResponseWriter, r *http.Request) {
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

	contains, err := h.WishlistRepo.Contains(r.Context(), clientID, productID)
	if err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]bool{"contains": contains}); err != nil {
		h.Logger.Warnw("error writing response", "err", err)
	}
}

// ClearWishlist - DELETE /wishlist
func (h *WishlistHandler) ClearWishlist(w http.ResponseWriter, r *http.Request) {
	clientID, ok := contextutil.GetClientIDFromContext(r.Context())
	if !ok {
		myErr.SendErrorTo(w, myErr.ErrNoAuth, http.StatusUnauthorized, h.Logger)
		return
	}

	wl, err := h.WishlistRepo.Clear(r.Context(), clientID)
	if err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	h.Logger.Infof("cleared client %s wishlist", clientID)
	h.sendWishlist(w, wl, http.StatusOK)
}

func (h *WishlistHandler) sendWishlist(w http.ResponseWriter, wl *wishlist.Wishlist, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(wl); err != nil {
		h.Logger.Warnw("error writing response", "err", err)
	}
}
