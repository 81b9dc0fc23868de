package helper

import "SumoSearch-App/internal/domain/model"

// FilterListings はエリアと予算で物件を絞り込む
// selectedAreas が空の場合はエリアで絞り込まない。costMin > costMax の場合は常に空になる
// 元の並び順を保持する
func FilterListings(table *model.ListingTable, selectedAreas []string, costMin, costMax float64) *model.ListingTable {
	if table == nil {
		return &model.ListingTable{Rows: []model.Listing{}}
	}

	areaSet := make(map[string]struct{}, len(selectedAreas))
	for _, a := range selectedAreas {
		areaSet[a] = struct{}{}
	}

	filtered := make([]model.Listing, 0, len(table.Rows))
	for _, l := range table.Rows {
		if MatchesCriteria(&l, areaSet, costMin, costMax) {
			filtered = append(filtered, l)
		}
	}
	return table.WithRows(filtered)
}

// FilterByCriteria はFilterCriteriaで物件を絞り込む
func FilterByCriteria(table *model.ListingTable, criteria model.FilterCriteria) *model.ListingTable {
	return FilterListings(table, criteria.Areas, criteria.CostMin, criteria.CostMax)
}

// MatchesCriteria は1件の物件が条件を満たすかを判定する
// areaSet が空の場合はエリア条件を満たすものとする
func MatchesCriteria(l *model.Listing, areaSet map[string]struct{}, costMin, costMax float64) bool {
	if len(areaSet) > 0 {
		if _, ok := areaSet[l.Area]; !ok {
			return false
		}
	}
	return costMin <= l.Cost && l.Cost <= costMax
}

// AreaOptions は選択肢となるエリア名を初出順で重複なく返す
func AreaOptions(table *model.ListingTable) []string {
	areas := []string{}
	if table == nil {
		return areas
	}
	seen := make(map[string]struct{})
	for _, l := range table.Rows {
		if _, ok := seen[l.Area]; ok {
			continue
		}
		seen[l.Area] = struct{}{}
		areas = append(areas, l.Area)
	}
	return areas
}
