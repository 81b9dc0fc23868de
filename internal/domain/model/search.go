package model

import "fmt"

// SearchResult 検索1回分の表示内容
type SearchResult struct {
	SearchID string         `json:"search_id"`
	Criteria FilterCriteria `json:"criteria"`
	Count    int            `json:"count"`
	Columns  []string       `json:"columns"`
	Listings []Listing      `json:"listings"`
	Cells    [][]any        `json:"cells"`    // 表の各行（Columns の順）
	Viewport *Viewport      `json:"viewport"` // nil の場合は空の地図
	Layer    *MapLayer      `json:"layer"`
	Message  string         `json:"message"`          // 件数表示
	Notice   string         `json:"notice,omitempty"` // 該当なしの案内
	Error    string         `json:"error,omitempty"`
}

// CountMessage 絞り込んだ結果の件数表示
func CountMessage(count int) string {
	return fmt.Sprintf("絞り込んだ結果の数: %d", count)
}

// SearchOptions サイドバーの選択肢
type SearchOptions struct {
	Title         string   `json:"title"`
	Descriptions  []string `json:"descriptions"`
	Areas         []string `json:"areas"`
	AreaLabel     string   `json:"area_label"`
	BudgetLabel   string   `json:"budget_label"`
	BudgetMin     float64  `json:"budget_min"`
	BudgetMax     float64  `json:"budget_max"`
	DefaultMin    float64  `json:"default_min"`
	DefaultMax    float64  `json:"default_max"`
	SearchLabel   string   `json:"search_label"`
	ListingsCount int      `json:"listings_count"`
	Error         string   `json:"error,omitempty"`
}
