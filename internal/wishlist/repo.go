package wishlist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	errorspkg "lumina-main/internal/types/errors"
	typesProduct "lumina-main/internal/types/product"
)

// StorageKeyPrefix - неймспейс документа вишлиста в клиентском хранилище
const StorageKeyPrefix = "lumina-wishlist"

// WishlistRepository хранит документ вишлиста в Redis,
// по документу {"items": [...]} на клиента
type WishlistRepository struct {
	RedisClient *redis.Client
	Logger      *zap.SugaredLogger
}

func NewWishlistRepository(redisClient *redis.Client, logger *zap.SugaredLogger) *WishlistRepository {
	return &WishlistRepository{
		RedisClient: redisClient,
		Logger:      logger,
	}
}

func (wr *WishlistRepository) GetByClientID(ctx context.Context, clientID string) (*Wishlist, error) {
	return wr.load(ctx, clientID)
}

func (wr *WishlistRepository) AddItem(
	ctx context.Context,
	clientID string,
	p typesProduct.Product,
) (*Wishlist, error) {
	w, err := wr.load(ctx, clientID)
	if err != nil {
		return nil, err
	}

	w.AddItem(p)
	wr.save(ctx, clientID, w)

	return w, nil
}

func (wr *WishlistRepository) RemoveItem(
	ctx context.Context,
	clientID string,
	productID string,
) (*Wishlist, error) {
	w, err := wr.load(ctx, clientID)
	if err != nil {
		return nil, err
	}

	w.RemoveItem(productID)
	wr.save(ctx, clientID, w)

	return w, nil
}

func (wr *WishlistRepository) Contains(
	ctx context.Context,
	clientID string,
	productID string,
) (bool, error) {
	w, err := wr.load(ctx, clientID)
	if err != nil {
		return false, err
	}

	return w.Contains(productID), nil
}

func (wr *WishlistRepository) Clear(ctx context.Context, clientID string) (*Wishlist, error) {
	w, err := wr.load(ctx, clientID)
	if err != nil {
		return nil, err
	}

	w.Clear()
	wr.save(ctx, clientID, w)

	return w, nil
}

func storageKey(clientID string) string {
	return fmt.Sprintf("%s:%s", StorageKeyPrefix, clientID)
}

func (wr *WishlistRepository) load(ctx context.Context, clientID string) (*Wishlist, error) {
	docJSON, err := wr.RedisClient.Get(ctx, storageKey(clientID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return &Wishlist{Items: []typesProduct.Product{}}, nil
		}

		wr.Logger.Errorw(
			"Failed to get wishlist document from storage",
			zap.Error(err),
			zap.String("clientID", clientID),
		)

		return nil, errorspkg.ErrStorageInternal
	}

	var w Wishlist
	if err = json.Unmarshal(docJSON, &w); err != nil {
		wr.Logger.Errorw(
			"Failed to decode wishlist document",
			zap.Error(err),
			zap.String("clientID", clientID),
		)

		return nil, errorspkg.ErrStorageInternal
	}
	if w.Items == nil {
		w.Items = []typesProduct.Product{}
	}

	return &w, nil
}

func (wr *WishlistRepository) save(ctx context.Context, clientID string, w *Wishlist) {
	docJSON, err := json.Marshal(w)
	if err != nil {
		wr.Logger.Warnw(
			"Failed to encode wishlist document",
			zap.Error(err),
			zap.String("clientID", clientID),
		)

		return
	}

	if err = wr.RedisClient.Set(ctx, storageKey(clientID), docJSON, 0).Err(); err != nil {
		wr.Logger.Warnw(
			"Failed to save wishlist document to storage",
			zap.Error(err),
			zap.String("clientID", clientID),
		)
	}
}
