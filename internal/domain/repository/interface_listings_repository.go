package repository

import (
	"context"

	"SumoSearch-App/internal/domain/model"
)

// ListingsRepository 物件テーブルの読み取り専用リポジトリ
type ListingsRepository interface {
	// LoadAll 設定されたテーブルの全行を読み込む
	LoadAll(ctx context.Context) (*model.ListingTable, error)
}
