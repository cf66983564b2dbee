package cart

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

// StorageKeyPrefix - неймспейс документа корзины в клиентском хранилище
const StorageKeyPrefix = "lumina-cart"

// CartRepository хранит документ корзины в Redis: один JSON-документ
// {"items": [...]} на клиента. Читаем перед мутацией, пишем после
type CartRepository struct {
	RedisClient *redis.Client
	Logger      *zap.SugaredLogger
}

func NewCartRepository(redisClient *redis.Client, logger *zap.SugaredLogger) *CartRepository {
	return &CartRepository{
		RedisClient: redisClient,
		Logger:      logger,
	}
}

func (cr *CartRepository) GetByClientID(ctx context.Context, clientID string) (*Cart, error) {
	return cr.load(ctx, clientID)
}

func (cr *CartRepository) AddItem(
	ctx context.Context,
	clientID string,
	p typesProduct.Product,
) (*Cart, error) {
	c, err := cr.load(ctx, clientID)
	if err != nil {
		return nil, err
	}

	c.AddItem(p)
	cr.save(ctx, clientID, c)

	return c, nil
}

func (cr *CartRepository) RemoveItem(
	ctx context.Context,
	clientID string,
	productID string,
) (*Cart, error) {
	c, err := cr.load(ctx, clientID)
	if err != nil {
		return nil, err
	}

	c.RemoveItem(productID)
	cr.save(ctx, clientID, c)

	return c, nil
}

func (cr *CartRepository) UpdateQuantity(
	ctx context.Context,
	clientID string,
	productID string,
	quantity int,
) (*Cart, error) {
	c, err := cr.load(ctx, clientID)
	if err != nil {
		return nil, err
	}

	c.UpdateQuantity(productID, quantity)
	cr.save(ctx, clientID, c)

	return c, nil
}

func (cr *CartRepository) Clear(ctx context.Context, clientID string) (*Cart, error) {
	c, err := cr.load(ctx, clientID)
	if err != nil {
		return nil, err
	}

	c.Clear()
	cr.save(ctx, clientID, c)

	return c, nil
}

func storageKey(clientID string) string {
	return fmt.Sprintf("%s:%s", StorageKeyPrefix, clientID)
}

// load достает документ корзины клиента из Redis.
// Отсутствующий ключ - это новый клиент, отдаем пустую корзину
func (cr *CartRepository) load(ctx context.Context, clientID string) (*Cart, error) {
	docJSON, err := cr.RedisClient.Get(ctx, storageKey(clientID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return &Cart{Items: []CartLine{}}, nil
		}

		cr.Logger.Errorw(
			"Failed to get cart document from storage",
			zap.Error(err),
			zap.String("clientID", clientID),
		)

		return nil, errorspkg.ErrStorageInternal
	}

	var c Cart
	if err = json.Unmarshal(docJSON, &c); err != nil {
		cr.Logger.Errorw(
			"Failed to decode cart document",
			zap.Error(err),
			zap.String("clientID", clientID),
		)

		return nil, errorspkg.ErrStorageInternal
	}
	if c.Items == nil {
		c.Items = []CartLine{}
	}

	return &c, nil
}

// save пишет документ корзины в Redis. Отказ хранилища не должен ронять
// операцию и терять состояние в памяти, поэтому только ворнинг в лог
func (cr *CartRepository) save(ctx context.Context, clientID string, c *Cart) {
	docJSON, err := json.Marshal(c)
	if err != nil {
		cr.Logger.Warnw(
			"Failed to encode cart document",
			zap.Error(err),
			zap.String("clientID", clientID),
		)

		return
	}

	if err = cr.RedisClient.Set(ctx, storageKey(clientID), docJSON, 0).Err(); err != nil {
		cr.Logger.Warnw(
			"Failed to save cart document to storage",
			zap.Error(err),
			zap.String("clientID", clientID),
		)
	}
}
