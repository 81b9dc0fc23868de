package model

// LatLng 緯度経度を表す基本的な型
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
