package model

import "strings"

// Listing 1件の賃貸物件レコード
type Listing struct {
	Area      string         `json:"area"`             // エリア名
	Cost      float64        `json:"cost"`             // 月額賃料（万円、予算フィルタと同じ単位）
	Latitude  float64        `json:"latitude"`         // 緯度
	Longitude float64        `json:"longitude"`        // 経度
	Extras    map[string]any `json:"extras,omitempty"` // 必須列以外の列（読み込み時の値のまま）
}

// ListingTable ストアから一括で読み込んだ物件の表
// 読み込み後は変更しない
type ListingTable struct {
	Columns []string       `json:"columns"` // ストア上の列順
	Fields  RequiredFields `json:"-"`       // 必須列がストア上でどの列名か
	Rows    []Listing      `json:"rows"`
}

// RequiredFields 必須列のストア上の列名
type RequiredFields struct {
	Area string
	Cost string
	Lat  string
	Lon  string
}

// DefaultRequiredFields 元のテーブルの列名
var DefaultRequiredFields = RequiredFields{Area: "Area", Cost: "cost", Lat: "lat", Lon: "lon"}

// Len 行数を返す
func (t *ListingTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// IsEmpty 行がないかどうか
func (t *ListingTable) IsEmpty() bool {
	return t.Len() == 0
}

// WithRows 同じスキーマで行だけ差し替えた表を返す
func (t *ListingTable) WithRows(rows []Listing) *ListingTable {
	if t == nil {
		return &ListingTable{Rows: rows}
	}
	return &ListingTable{Columns: t.Columns, Fields: t.Fields, Rows: rows}
}

// Cells 表示用に各行の値を Columns の順に並べる
func (t *ListingTable) Cells() [][]any {
	cells := make([][]any, 0, t.Len())
	if t.IsEmpty() {
		return cells
	}

	fields := t.Fields
	if fields == (RequiredFields{}) {
		fields = DefaultRequiredFields
	}

	for _, l := range t.Rows {
		row := make([]any, len(t.Columns))
		for i, c := range t.Columns {
			switch {
			case strings.EqualFold(c, fields.Area):
				row[i] = l.Area
			case strings.EqualFold(c, fields.Cost):
				row[i] = l.Cost
			case strings.EqualFold(c, fields.Lat):
				row[i] = l.Latitude
			case strings.EqualFold(c, fields.Lon):
				row[i] = l.Longitude
			default:
				row[i] = l.Extras[c]
			}
		}
		cells = append(cells, row)
	}
	return cells
}

// FilterCriteria サイドバーで選択された検索条件
type FilterCriteria struct {
	Areas   []string `json:"areas"`    // 空の場合はエリア指定なし
	CostMin float64  `json:"cost_min"` // 下限（含む）
	CostMax float64  `json:"cost_max"` // 上限（含む）
}
