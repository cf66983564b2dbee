package recently_viewed

import (
	"context"
	"fmt"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"

	typesProduct "lumina-main/internal/types/product"
)

func viewed(id string) typesProduct.Product {
	return typesProduct.Product{
		ID:   id,
		Name: "product " + id,
	}
}

func TestRecordView_NewestFirst(t *testing.T) {
	h := &History{}

	h.RecordView(viewed("1"))
	h.RecordView(viewed("2"))
	h.RecordView(viewed("3"))

	assert.Len(t, h.Items, 3)
	assert.Equal(t, "3", h.Items[0].ID)
	assert.Equal(t, "2", h.Items[1].ID)
	assert.Equal(t, "1", h.Items[2].ID)
}

func TestRecordView_ReViewMovesToFrontWithoutGrowth(t *testing.T) {
	h := &History{}

	h.RecordView(viewed("1"))
	h.RecordView(viewed("2"))
	h.RecordView(viewed("1"))

	assert.Len(t, h.Items, 2)
	assert.Equal(t, "1", h.Items[0].ID)
	assert.Equal(t, "2", h.Items[1].ID)
}

func TestRecordView_EleventhEvictsOldest(t *testing.T) {
	h := &History{}

	for i := 1; i <= MaxItems+1; i++ {
		h.RecordView(viewed(fmt.Sprintf("%d", i)))
	}

	assert.Len(t, h.Items, MaxItems)
	// Самый свежий первым, самый старый ("1") вытеснен
	assert.Equal(t, "11", h.Items[0].ID)
	assert.Equal(t, "2", h.Items[MaxItems-1].ID)
	for _, item := range h.Items {
		assert.NotEqual(t, "1", item.ID)
	}
}

func TestClearHistory(t *testing.T) {
	h := &History{}
	h.RecordView(viewed("1"))

	h.Clear()

	assert.Empty(t, h.Items)
}

func setupTestRepo(t *testing.T) *RecentlyViewedRepository {
	mr, err := miniredis.Run()
	assert.NoError(t, err)
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	logger := zaptest.NewLogger(t).Sugar()

	return NewRecentlyViewedRepository(rdb, logger)
}

func TestRepoRecordView_PersistsFullSnapshot(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	p := typesProduct.Product{
		ID:          "1",
		Name:        "Wireless Bluetooth Headphones",
		Price:       159.99,
		Category:    "electronics",
		Description: "Premium wireless headphones",
		Features:    []string{"Active noise cancellation"},
		ModelURL:    "/models/headphones.glb",
		Images:      []string{"headphones.jpeg"},
		Rating:      4.7,
		ReviewCount: 312,
		Stock:       40,
	}

	_, err := repo.RecordView(ctx, "client-1", p)
	assert.NoError(t, err)

	h, err := repo.GetByClientID(ctx, "client-1")
	assert.NoError(t, err)
	assert.Len(t, h.Items, 1)
	assert.Equal(t, p, h.Items[0])
}

func TestRepoClear(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	_, err := repo.RecordView(ctx, "client-1", viewed("1"))
	assert.NoError(t, err)

	h, err := repo.Clear(ctx, "client-1")
	assert.NoError(t, err)
	assert.Empty(t, h.Items)

	h, err = repo.GetByClientID(ctx, "client-1")
	assert.NoError(t, err)
	assert.Empty(t, h.Items)
}
