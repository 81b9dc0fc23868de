package repository

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"SumoSearch-App/internal/config"
	"SumoSearch-App/internal/domain/model"
	"SumoSearch-App/internal/domain/repository"
	"SumoSearch-App/internal/infrastructure/database"
)

type SQLListingsRepository struct {
	client  *database.ListingStoreClient
	table   string
	columns requiredColumns
}

// requiredColumns 必須列の名前（大文字小文字は区別しない）
type requiredColumns struct {
	area string
	cost string
	lat  string
	lon  string
}

func NewSQLListingsRepository(client *database.ListingStoreClient, cfg config.StoreConfig) repository.ListingsRepository {
	return &SQLListingsRepository{
		client: client,
		table:  cfg.Table,
		columns: requiredColumns{
			area: cfg.AreaColumn,
			cost: cfg.CostColumn,
			lat:  cfg.LatColumn,
			lon:  cfg.LonColumn,
		},
	}
}

// LoadAll テーブルの全行を読み込む。必須列の欠落や数値でない値は行単位で飛ばさずエラーにする
func (r *SQLListingsRepository) LoadAll(ctx context.Context) (*model.ListingTable, error) {
	if r.client == nil {
		return nil, model.NewDataAccessError("connect", errors.New("ストアクライアントが初期化されていません"))
	}

	db, err := r.client.Connect(ctx)
	if err != nil {
		return nil, model.NewDataAccessError("connect", err)
	}

	query := fmt.Sprintf(`SELECT * FROM "%s"`, r.table)

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, model.NewDataAccessError("query", fmt.Errorf("物件データの取得失敗: %w", err))
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, model.NewDataAccessError("columns", err)
	}

	layout, err := r.resolveLayout(columns)
	if err != nil {
		return nil, model.NewDataAccessError("schema", err)
	}

	table := &model.ListingTable{
		Columns: columns,
		Fields: model.RequiredFields{
			Area: columns[layout.area],
			Cost: columns[layout.cost],
			Lat:  columns[layout.lat],
			Lon:  columns[layout.lon],
		},
		Rows: []model.Listing{},
	}
	for rows.Next() {
		values := make([]any, len(columns))
		dest := make([]any, len(columns))
		for i := range values {
			dest[i] = &values[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, model.NewDataAccessError("scan", fmt.Errorf("物件データスキャンエラー: %w", err))
		}

		listing, err := layout.toListing(columns, values)
		if err != nil {
			return nil, model.NewDataAccessError("scan", fmt.Errorf("%d行目: %w", len(table.Rows)+1, err))
		}
		table.Rows = append(table.Rows, *listing)
	}

	if err := rows.Err(); err != nil {
		return nil, model.NewDataAccessError("scan", fmt.Errorf("行イテレーション中のエラー: %w", err))
	}

	return table, nil
}

// columnLayout 結果セット上の必須列の位置
type columnLayout struct {
	area, cost, lat, lon int
}

func (r *SQLListingsRepository) resolveLayout(columns []string) (*columnLayout, error) {
	find := func(name string) (int, error) {
		for i, c := range columns {
			if strings.EqualFold(c, name) {
				return i, nil
			}
		}
		return -1, fmt.Errorf("必須列 %q がテーブル %s にありません", name, r.table)
	}

	var layout columnLayout
	var err error
	if layout.area, err = find(r.columns.area); err != nil {
		return nil, err
	}
	if layout.cost, err = find(r.columns.cost); err != nil {
		return nil, err
	}
	if layout.lat, err = find(r.columns.lat); err != nil {
		return nil, err
	}
	if layout.lon, err = find(r.columns.lon); err != nil {
		return nil, err
	}
	return &layout, nil
}

func (l *columnLayout) toListing(columns []string, values []any) (*model.Listing, error) {
	area, err := toText(values[l.area])
	if err != nil {
		return nil, fmt.Errorf("列 %s: %w", columns[l.area], err)
	}
	cost, err := toFloat(values[l.cost])
	if err != nil {
		return nil, fmt.Errorf("列 %s: %w", columns[l.cost], err)
	}
	lat, err := toFloat(values[l.lat])
	if err != nil {
		return nil, fmt.Errorf("列 %s: %w", columns[l.lat], err)
	}
	lon, err := toFloat(values[l.lon])
	if err != nil {
		return nil, fmt.Errorf("列 %s: %w", columns[l.lon], err)
	}

	listing := &model.Listing{
		Area:      area,
		Cost:      cost,
		Latitude:  lat,
		Longitude: lon,
	}

	for i, name := range columns {
		if i == l.area || i == l.cost || i == l.lat || i == l.lon {
			continue
		}
		if listing.Extras == nil {
			listing.Extras = make(map[string]any, len(columns)-4)
		}
		listing.Extras[name] = passthrough(values[i])
	}

	return listing, nil
}

func toText(v any) (string, error) {
	switch t := v.(type) {
	case nil:
		return "", errors.New("値がNULLです")
	case string:
		return t, nil
	case []byte:
		return string(t), nil
	case int64, float64, bool:
		return fmt.Sprint(t), nil
	default:
		return "", fmt.Errorf("文字列に変換できない型です: %T", v)
	}
}

func toFloat(v any) (float64, error) {
	var f float64
	switch t := v.(type) {
	case nil:
		return 0, errors.New("値がNULLです")
	case float64:
		f = t
	case float32:
		f = float64(t)
	case int64:
		f = float64(t)
	case int32:
		f = float64(t)
	case int:
		f = float64(t)
	case []byte:
		return parseNumeric(string(t))
	case string:
		return parseNumeric(t)
	default:
		return 0, fmt.Errorf("数値に変換できない型です: %T", v)
	}
	return finite(f, v)
}

// parseNumeric テキストで返る数値（PostgreSQLのnumeric型など）を解析する
func parseNumeric(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("数値ではありません: %q", s)
	}
	return finite(f, s)
}

// finite NaN と ±Inf は数値として扱わない
func finite(f float64, raw any) (float64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("数値ではありません: %v", raw)
	}
	return f, nil
}

// passthrough 追加列の値を表示用にそのまま保持する（[]byteのみ文字列化）
func passthrough(v any) any {
	switch t := v.(type) {
	case []byte:
		return string(t)
	case time.Time:
		return t.Format(time.RFC3339)
	default:
		return t
	}
}
