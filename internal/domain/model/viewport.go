package model

// Viewport 地図の表示位置（中心座標・ズーム・ピッチ）
type Viewport struct {
	Latitude  float64    `json:"latitude"`
	Longitude float64    `json:"longitude"`
	Zoom      float64    `json:"zoom"`
	Pitch     float64    `json:"pitch"`
	Bounds    [4]float64 `json:"bounds"` // [minLng, minLat, maxLng, maxLat]
}

// Center 中心座標をLatLng型で返す
func (v *Viewport) Center() LatLng {
	return LatLng{Lat: v.Latitude, Lng: v.Longitude}
}

// MapLayer 1行1ポイントの地図レイヤー定義
type MapLayer struct {
	Type        string   `json:"type"`         // deck.gl のレイヤー種別
	Data        any      `json:"data"`         // GeoJSON FeatureCollection
	FillColor   [4]uint8 `json:"fill_color"`   // RGBA
	Radius      int      `json:"radius"`       // メートル
	Pickable    bool     `json:"pickable"`     // クリックで詳細表示
	MapStyle    string   `json:"map_style"`    // ベースマップ
	PointsCount int      `json:"points_count"` // ポイント数
}
