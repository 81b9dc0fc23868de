package model

// MapConstants は地図表示で使用する固定値
const (
	MapZoom   = 11 // 区単位が収まる縮尺
	MapPitch  = 0  // 真上から見下ろす
	MapStyle  = "mapbox://styles/mapbox/dark-v10"
	LayerType = "ScatterplotLayer"

	PointRadius = 200 // 各ポイントの半径（メートル）
)

// PointColor 各ポイントの色 (RGBA)
var PointColor = [4]uint8{200, 30, 0, 160}

// BudgetConstants は予算スライダーの定数（単位: 万円）
const (
	BudgetSliderMin  = 15
	BudgetSliderMax  = 30
	BudgetDefaultMin = 17
	BudgetDefaultMax = 30
	BudgetUnitLabel  = "万"
)

// ページ上に表示する文言
const (
	SidebarTitle      = "Real Estate Search Tokyo"
	AreaSelectLabel   = "ご希望のエリア"
	BudgetSliderLabel = "ご予算（万）"
	SearchButtonLabel = "検索"

	MessageNoMatches = "該当する物件が見つかりませんでした。"
)

// SidebarDescriptions はサイドバーに表示する本サイトの説明
var SidebarDescriptions = []string{
	"ハイクラスペア向け賃貸情報サイトです",
	"物件は中央区、新宿区、渋谷区、千代田区にの絞られております。",
}

// GetSidebarDescriptions はサイドバーの説明文一覧を取得する
func GetSidebarDescriptions() []string {
	descriptions := make([]string, len(SidebarDescriptions))
	copy(descriptions, SidebarDescriptions)
	return descriptions
}

// DefaultFilterCriteria はスライダー初期値の検索条件を返す
func DefaultFilterCriteria() FilterCriteria {
	return FilterCriteria{
		Areas:   []string{},
		CostMin: BudgetDefaultMin,
		CostMax: BudgetDefaultMax,
	}
}
