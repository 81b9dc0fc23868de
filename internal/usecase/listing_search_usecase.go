package usecase

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"SumoSearch-App/internal/domain/helper"
	"SumoSearch-App/internal/domain/model"
	"SumoSearch-App/internal/domain/service"
)

type ListingSearchUseCase interface {
	// Search はキャッシュ済みの物件を条件で絞り込み、地図と表の表示内容を返す
	// 読み込みに失敗している場合もエラーは返さず、Error に表示用メッセージを入れて空の結果を返す
	Search(ctx context.Context, criteria model.FilterCriteria) *model.SearchResult

	// Options はサイドバーの選択肢を返す
	Options(ctx context.Context) *model.SearchOptions

	// DataLoaded は物件データの読み込みが成功済みかどうかを返す（読み込みは始めない）
	DataLoaded() bool
}

// listingSearchUseCaseImpl はListingSearchUseCaseの実装
type listingSearchUseCaseImpl struct {
	cache      *ListingCache
	mapService service.ListingMapService
	logger     *zap.Logger
}

// NewListingSearchUseCase は新しいListingSearchUseCaseインスタンスを作成
func NewListingSearchUseCase(cache *ListingCache, mapService service.ListingMapService, logger *zap.Logger) ListingSearchUseCase {
	return &listingSearchUseCaseImpl{
		cache:      cache,
		mapService: mapService,
		logger:     logger,
	}
}

func (u *listingSearchUseCaseImpl) Search(ctx context.Context, criteria model.FilterCriteria) *model.SearchResult {
	searchID := uuid.New().String()
	log := u.logger.With(zap.String("search_id", searchID))

	log.Info("🔍 物件検索開始",
		zap.Strings("areas", criteria.Areas),
		zap.Float64("cost_min", criteria.CostMin),
		zap.Float64("cost_max", criteria.CostMax),
	)

	result := &model.SearchResult{
		SearchID: searchID,
		Criteria: criteria,
		Columns:  []string{},
		Listings: []model.Listing{},
		Cells:    [][]any{},
	}

	table, err := u.cache.Get(ctx)
	if err != nil {
		log.Warn("⚠️ 物件データがないため空の結果を返します", zap.Error(err))
		result.Error = err.Error()
		result.Message = model.CountMessage(0)
		return result
	}

	filtered := helper.FilterByCriteria(table, criteria)
	result.Count = filtered.Len()
	result.Columns = filtered.Columns
	result.Listings = filtered.Rows
	result.Cells = filtered.Cells()
	result.Message = model.CountMessage(result.Count)

	if filtered.IsEmpty() {
		log.Info("📭 該当する物件なし")
		result.Notice = model.MessageNoMatches
		return result
	}

	viewport, ok := u.mapService.BuildViewport(filtered)
	if ok {
		result.Viewport = viewport
		result.Layer = u.mapService.Render(filtered, viewport)
	}

	log.Info("✅ 物件検索完了", zap.Int("count", result.Count))
	return result
}

func (u *listingSearchUseCaseImpl) Options(ctx context.Context) *model.SearchOptions {
	options := &model.SearchOptions{
		Title:        model.SidebarTitle,
		Descriptions: model.GetSidebarDescriptions(),
		Areas:        []string{},
		AreaLabel:    model.AreaSelectLabel,
		BudgetLabel:  model.BudgetSliderLabel,
		BudgetMin:    model.BudgetSliderMin,
		BudgetMax:    model.BudgetSliderMax,
		DefaultMin:   model.BudgetDefaultMin,
		DefaultMax:   model.BudgetDefaultMax,
		SearchLabel:  model.SearchButtonLabel,
	}

	table, err := u.cache.Get(ctx)
	if err != nil {
		options.Error = err.Error()
		return options
	}

	options.Areas = helper.AreaOptions(table)
	options.ListingsCount = table.Len()
	return options
}

func (u *listingSearchUseCaseImpl) DataLoaded() bool {
	return u.cache.Loaded()
}
