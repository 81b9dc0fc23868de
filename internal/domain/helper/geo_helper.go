package helper

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"SumoSearch-App/internal/domain/model"
)

// ListingToPoint 物件の位置を orb.Point に変換（orbは[経度, 緯度]の順）
func ListingToPoint(l *model.Listing) orb.Point {
	return orb.Point{l.Longitude, l.Latitude}
}

// ListingsToMultiPoint 物件一覧を orb.MultiPoint に変換
func ListingsToMultiPoint(listings []model.Listing) orb.MultiPoint {
	points := make(orb.MultiPoint, 0, len(listings))
	for i := range listings {
		points = append(points, ListingToPoint(&listings[i]))
	}
	return points
}

// MeanCenter 緯度・経度それぞれの算術平均を返す
// 物件が0件の場合は計算できないため false を返す
func MeanCenter(listings []model.Listing) (model.LatLng, bool) {
	if len(listings) == 0 {
		return model.LatLng{}, false
	}
	var sumLat, sumLng float64
	for _, l := range listings {
		sumLat += l.Latitude
		sumLng += l.Longitude
	}
	n := float64(len(listings))
	return model.LatLng{Lat: sumLat / n, Lng: sumLng / n}, true
}

// ListingsBound 物件一覧を囲む境界ボックスを作成
func ListingsBound(listings []model.Listing) orb.Bound {
	return ListingsToMultiPoint(listings).Bound()
}

// ListingsToFeatureCollection 1物件1ポイントの GeoJSON FeatureCollection を作成
// 各Featureのプロパティに表示用の列をすべて含める
func ListingsToFeatureCollection(listings []model.Listing) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for i := range listings {
		l := &listings[i]
		f := geojson.NewFeature(ListingToPoint(l))
		for k, v := range l.Extras {
			f.Properties[k] = v
		}
		f.Properties["area"] = l.Area
		f.Properties["cost"] = l.Cost
		f.Properties["lat"] = l.Latitude
		f.Properties["lon"] = l.Longitude
		fc.Append(f)
	}
	return fc
}
