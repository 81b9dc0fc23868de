package usecase

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"SumoSearch-App/internal/domain/model"
	"SumoSearch-App/internal/domain/repository"
)

// ListingCache はプロセス内で1度だけ読み込む物件テーブルのキャッシュ
// 最初の Get で読み込み、結果（失敗を含む）を以後そのまま返す。再取得・破棄の手段はない
type ListingCache struct {
	repo   repository.ListingsRepository
	logger *zap.Logger

	once  sync.Once
	done  atomic.Bool
	table *model.ListingTable
	err   error
}

// NewListingCache 新しいListingCacheを作成（読み込みは最初の Get まで行わない）
func NewListingCache(repo repository.ListingsRepository, logger *zap.Logger) *ListingCache {
	return &ListingCache{
		repo:   repo,
		logger: logger,
	}
}

// Get キャッシュ済みの物件テーブルを返す。未読み込みの場合はストアから読み込む
func (c *ListingCache) Get(ctx context.Context) (*model.ListingTable, error) {
	c.once.Do(func() {
		defer c.done.Store(true)

		c.logger.Info("📦 物件データ読み込み開始")

		// 最初のリクエストが中断されても読み込み結果は全リクエストで共有する
		table, err := c.repo.LoadAll(context.WithoutCancel(ctx))
		if err != nil {
			var dae *model.DataAccessError
			if !errors.As(err, &dae) {
				err = model.NewDataAccessError("load", err)
			}
			c.logger.Error("❌ 物件データの読み込みに失敗", zap.Error(err))
			c.err = err
			return
		}

		c.logger.Info("✅ 物件データ読み込み完了",
			zap.Int("rows", table.Len()),
			zap.Strings("columns", table.Columns),
		)
		c.table = table
	})
	return c.table, c.err
}

// Loaded 読み込みが成功済みかどうか（読み込みは始めない）
func (c *ListingCache) Loaded() bool {
	return c.done.Load() && c.err == nil
}
