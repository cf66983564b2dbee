package recently_viewed

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

// StorageKeyPrefix - неймспейс документа истории в клиентском хранилище
const StorageKeyPrefix = "lumina-recently-viewed"

// RecentlyViewedRepository хранит документ истории просмотров в Redis,
// по документу {"items": [...]} на клиента
type RecentlyViewedRepository struct {
	RedisClient *redis.Client
	Logger      *zap.SugaredLogger
}

func NewRecentlyViewedRepository(redisClient *redis.Client, logger *zap.SugaredLogger) *RecentlyViewedRepository {
	return &RecentlyViewedRepository{
		RedisClient: redisClient,
		Logger:      logger,
	}
}

func (rr *RecentlyViewedRepository) GetByClientID(ctx context.Context, clientID string) (*History, error) {
	return rr.load(ctx, clientID)
}

func (rr *RecentlyViewedRepository) RecordView(
	ctx context.Context,
	clientID string,
	p typesProduct.Product,
) (*History, error) {
	h, err := rr.load(ctx, clientID)
	if err != nil {
		return nil, err
	}

	h.RecordView(p)
	rr.save(ctx, clientID, h)

	return h, nil
}

func (rr *RecentlyViewedRepository) Clear(ctx context.Context, clientID string) (*History, error) {
	h, err := rr.load(ctx, clientID)
	if err != nil {
		return nil, err
	}

	h.Clear()
	rr.save(ctx, clientID, h)

	return h, nil
}

func storageKey(clientID string) string {
	return fmt.Sprintf("%s:%s", StorageKeyPrefix, clientID)
}

func (rr *RecentlyViewedRepository) load(ctx context.Context, clientID string) (*History, error) {
	docJSON, err := rr.RedisClient.Get(ctx, storageKey(clientID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return &History{Items: []typesProduct.Product{}}, nil
		}

		rr.Logger.Errorw(
			"Failed to get recently viewed document from storage",
			zap.Error(err),
			zap.String("clientID", clientID),
		)

		return nil, errorspkg.ErrStorageInternal
	}

	var h History
	if err = json.Unmarshal(docJSON, &h); err != nil {
		rr.Logger.Errorw(
			"Failed to decode recently viewed document",
			zap.Error(err),
			zap.String("clientID", clientID),
		)

		return nil, errorspkg.ErrStorageInternal
	}
	if h.Items == nil {
		h.Items = []typesProduct.Product{}
	}

	return &h, nil
}

func (rr *RecentlyViewedRepository) save(ctx context.Context, clientID string, h *History) {
	docJSON, err := json.Marshal(h)
	if err != nil {
		rr.Logger.Warnw(
			"Failed to encode recently viewed document",
			zap.Error(err),
			zap.String("clientID", clientID),
		)

		return
	}

	if err = rr.RedisClient.Set(ctx, storageKey(clientID), docJSON, 0).Err(); err != nil {
		rr.Logger.Warnw(
			"Failed to save recently viewed document to storage",
			zap.Error(err),
			zap.String("clientID", clientID),
		)
	}
}
