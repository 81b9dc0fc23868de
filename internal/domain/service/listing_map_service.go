package service

import (
	"SumoSearch-App/internal/domain/helper"
	"SumoSearch-App/internal/domain/model"
)

// ListingMapService は絞り込み結果から地図表示用のデータを組み立てる
type ListingMapService interface {
	// BuildViewport は地図の表示位置を計算する。0件の場合は false（空の地図）を返す
	BuildViewport(table *model.ListingTable) (*model.Viewport, bool)
	// Render は1行1ポイントのレイヤーを作成する。表示位置がない場合は nil を返す
	Render(table *model.ListingTable, viewport *model.Viewport) *model.MapLayer
}

type listingMapService struct{}

func NewListingMapService() ListingMapService {
	return &listingMapService{}
}

// BuildViewport 中心は緯度・経度の算術平均、ズームとピッチは固定値
func (s *listingMapService) BuildViewport(table *model.ListingTable) (*model.Viewport, bool) {
	if table.IsEmpty() {
		return nil, false
	}

	center, ok := helper.MeanCenter(table.Rows)
	if !ok {
		return nil, false
	}

	bound := helper.ListingsBound(table.Rows)

	return &model.Viewport{
		Latitude:  center.Lat,
		Longitude: center.Lng,
		Zoom:      model.MapZoom,
		Pitch:     model.MapPitch,
		Bounds:    [4]float64{bound.Min.Lon(), bound.Min.Lat(), bound.Max.Lon(), bound.Max.Lat()},
	}, true
}

// Render ScatterplotLayer 相当のレイヤー定義を作成
func (s *listingMapService) Render(table *model.ListingTable, viewport *model.Viewport) *model.MapLayer {
	if viewport == nil || table.IsEmpty() {
		return nil
	}

	return &model.MapLayer{
		Type:        model.LayerType,
		Data:        helper.ListingsToFeatureCollection(table.Rows),
		FillColor:   model.PointColor,
		Radius:      model.PointRadius,
		Pickable:    true,
		MapStyle:    model.MapStyle,
		PointsCount: table.Len(),
	}
}
