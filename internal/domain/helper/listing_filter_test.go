package helper_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SumoSearch-App/internal/domain/helper"
	"SumoSearch-App/internal/domain/model"
)

// tokyoListings 渋谷3件・中央2件のテスト用テーブル
func tokyoListings() *model.ListingTable {
	return &model.ListingTable{
		Columns: []string{"Area", "cost", "lat", "lon", "name"},
		Rows: []model.Listing{
			{Area: "Shibuya", Cost: 18, Latitude: 35.6580, Longitude: 139.7016, Extras: map[string]any{"name": "渋谷A"}},
			{Area: "Chuo", Cost: 16, Latitude: 35.6707, Longitude: 139.7720, Extras: map[string]any{"name": "中央A"}},
			{Area: "Shibuya", Cost: 22, Latitude: 35.6620, Longitude: 139.6980, Extras: map[string]any{"name": "渋谷B"}},
			{Area: "Chuo", Cost: 28, Latitude: 35.6654, Longitude: 139.7707, Extras: map[string]any{"name": "中央B"}},
			{Area: "Shibuya", Cost: 26, Latitude: 35.6550, Longitude: 139.7050, Extras: map[string]any{"name": "渋谷C"}},
		},
	}
}

func costs(table *model.ListingTable) []float64 {
	out := []float64{}
	for _, l := range table.Rows {
		out = append(out, l.Cost)
	}
	return out
}

func TestFilterListings_Scenarios(t *testing.T) {
	table := tokyoListings()

	t.Run("渋谷で17〜25万の物件", func(t *testing.T) {
		result := helper.FilterListings(table, []string{"Shibuya"}, 17, 25)
		assert.Equal(t, []float64{18, 22}, costs(result))
		assert.Equal(t, table.Columns, result.Columns)
	})

	t.Run("エリア指定なしで全件が範囲内", func(t *testing.T) {
		result := helper.FilterListings(table, []string{}, 15, 30)
		require.Equal(t, 5, result.Len())
		assert.Equal(t, table.Rows, result.Rows)
	})

	t.Run("存在しないエリア", func(t *testing.T) {
		result := helper.FilterListings(table, []string{"Minato"}, 15, 30)
		assert.True(t, result.IsEmpty())
	})

	t.Run("複数エリア", func(t *testing.T) {
		result := helper.FilterListings(table, []string{"Chuo", "Shibuya"}, 16, 22)
		assert.Equal(t, []float64{18, 16, 22}, costs(result))
	})

	t.Run("境界値は含む", func(t *testing.T) {
		result := helper.FilterListings(table, nil, 16, 16)
		assert.Equal(t, []float64{16}, costs(result))
	})

	t.Run("nilテーブル", func(t *testing.T) {
		result := helper.FilterListings(nil, nil, 0, 100)
		assert.NotNil(t, result)
		assert.True(t, result.IsEmpty())
	})
}

func TestFilterListings_InvertedBoundsAlwaysEmpty(t *testing.T) {
	table := tokyoListings()
	selections := [][]string{nil, {}, {"Shibuya"}, {"Chuo", "Shibuya"}, {"Minato"}}

	for _, areas := range selections {
		result := helper.FilterListings(table, areas, 25, 17)
		assert.True(t, result.IsEmpty(), "areas=%v", areas)
	}
}

func TestFilterListings_Properties(t *testing.T) {
	table := tokyoListings()

	criteria := []model.FilterCriteria{
		{Areas: nil, CostMin: 15, CostMax: 30},
		{Areas: []string{"Shibuya"}, CostMin: 17, CostMax: 25},
		{Areas: []string{"Chuo"}, CostMin: 20, CostMax: 30},
		{Areas: []string{"Chuo", "Shibuya"}, CostMin: 22, CostMax: 28},
		{Areas: []string{"Minato"}, CostMin: 0, CostMax: 100},
		{Areas: nil, CostMin: 30, CostMax: 15},
	}

	for _, c := range criteria {
		result := helper.FilterByCriteria(table, c)

		// 入力の部分列であり順序を保持している
		idx := 0
		for _, got := range result.Rows {
			for idx < len(table.Rows) && table.Rows[idx].Extras["name"] != got.Extras["name"] {
				idx++
			}
			require.Less(t, idx, len(table.Rows), "結果に入力にない行が含まれています: %v", got)
			idx++
		}

		// 結果の行は条件を満たし、除外された行は条件を満たさない
		areaSet := map[string]struct{}{}
		for _, a := range c.Areas {
			areaSet[a] = struct{}{}
		}
		kept := map[any]bool{}
		for _, l := range result.Rows {
			l := l
			assert.True(t, helper.MatchesCriteria(&l, areaSet, c.CostMin, c.CostMax))
			kept[l.Extras["name"]] = true
		}
		for _, l := range table.Rows {
			l := l
			if !kept[l.Extras["name"]] {
				assert.False(t, helper.MatchesCriteria(&l, areaSet, c.CostMin, c.CostMax))
			}
		}

		// 冪等
		again := helper.FilterByCriteria(result, c)
		assert.Equal(t, result.Rows, again.Rows)
	}
}

func TestAreaOptions(t *testing.T) {
	assert.Equal(t, []string{"Shibuya", "Chuo"}, helper.AreaOptions(tokyoListings()))
	assert.Equal(t, []string{}, helper.AreaOptions(nil))
	assert.Equal(t, []string{}, helper.AreaOptions(&model.ListingTable{}))
}
