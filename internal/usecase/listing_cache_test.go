package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"SumoSearch-App/internal/domain/model"
	"SumoSearch-App/internal/usecase"
)

// countingRepository LoadAll の呼び出し回数を数えるリポジトリ
type countingRepository struct {
	mu    sync.Mutex
	calls int
	table *model.ListingTable
	err   error
}

func (r *countingRepository) LoadAll(ctx context.Context) (*model.ListingTable, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	return r.table, r.err
}

func (r *countingRepository) Calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

func TestListingCache_LoadsOnce(t *testing.T) {
	repo := &countingRepository{table: tokyoListings()}
	cache := usecase.NewListingCache(repo, zap.NewNop())

	assert.False(t, cache.Loaded())
	assert.Equal(t, 0, repo.Calls(), "最初の Get まで読み込まない")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			table, err := cache.Get(context.Background())
			assert.NoError(t, err)
			assert.Equal(t, 5, table.Len())
		}()
	}
	wg.Wait()

	first, _ := cache.Get(context.Background())
	second, _ := cache.Get(context.Background())
	assert.Same(t, first, second)
	assert.Equal(t, 1, repo.Calls())
	assert.True(t, cache.Loaded())
}

func TestListingCache_FailureIsCachedAsDataAccessError(t *testing.T) {
	repo := &countingRepository{err: errors.New("disk I/O error")}
	cache := usecase.NewListingCache(repo, zap.NewNop())

	_, err := cache.Get(context.Background())
	require.Error(t, err)

	var dae *model.DataAccessError
	require.True(t, errors.As(err, &dae))
	assert.Equal(t, "load", dae.Op)
	assert.ErrorContains(t, err, "disk I/O error")

	_, again := cache.Get(context.Background())
	assert.Equal(t, err, again)
	assert.Equal(t, 1, repo.Calls())
	assert.False(t, cache.Loaded())
}

func TestListingCache_KeepsDataAccessError(t *testing.T) {
	original := model.NewDataAccessError("query", errors.New("no such table: sumodb8_table"))
	cache := usecase.NewListingCache(&countingRepository{err: original}, zap.NewNop())

	_, err := cache.Get(context.Background())
	assert.Same(t, original, err)
}

func TestListingCache_CanceledFirstRequest(t *testing.T) {
	repo := &ctxRepository{}
	cache := usecase.NewListingCache(repo, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	table, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, table.Len())
}

// ctxRepository コンテキストがキャンセル済みなら失敗するリポジトリ
type ctxRepository struct{}

func (r *ctxRepository) LoadAll(ctx context.Context) (*model.ListingTable, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &model.ListingTable{Rows: []model.Listing{}}, nil
}
