package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"SumoSearch-App/internal/config"
)

// ListingStoreClient 物件ストアへの読み取り専用接続
// 接続は最初の Connect で確立し、プロセス終了まで保持する
type ListingStoreClient struct {
	driver string
	dsn    string
	DB     *sql.DB
}

// NewListingStoreClient 新しいListingStoreClientを作成（この時点では接続しない）
func NewListingStoreClient(cfg config.StoreConfig) (*ListingStoreClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &ListingStoreClient{
		driver: cfg.Driver,
		dsn:    cfg.DSN,
	}, nil
}

// Connect 接続を確立して返す。確立済みの場合はそのまま返す
func (c *ListingStoreClient) Connect(ctx context.Context) (*sql.DB, error) {
	if c.DB != nil {
		return c.DB, nil
	}

	driverName, dsn, err := c.openArgs()
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("%s接続の初期化に失敗: %w", c.driver, err)
	}

	// 接続テスト
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%sへの接続に失敗: %w", c.driver, err)
	}

	c.DB = db
	return db, nil
}

// openArgs ドライバーごとの sql.Open 引数を組み立てる
func (c *ListingStoreClient) openArgs() (string, string, error) {
	switch c.driver {
	case config.DriverSQLite:
		path, _, _ := strings.Cut(c.dsn, "?")
		path = strings.TrimPrefix(path, "file:")
		// 存在しないファイルを開くと空のDBが作られてしまうため先に確認
		if path != ":memory:" {
			if _, err := os.Stat(path); err != nil {
				return "", "", fmt.Errorf("SQLiteファイルが見つかりません: %w", err)
			}
		}
		return "sqlite", withQueryOnly(c.dsn), nil
	case config.DriverPostgres:
		return "postgres", withReadOnlyTransactions(c.dsn), nil
	default:
		return "", "", fmt.Errorf("未対応のストアドライバー: %s", c.driver)
	}
}

// withQueryOnly SQLite接続を読み取り専用にする
func withQueryOnly(dsn string) string {
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=query_only(1)"
}

// withReadOnlyTransactions PostgreSQL接続のトランザクションを既定で読み取り専用にする
// URL形式とkey=value形式のどちらのDSNにも対応する
func withReadOnlyTransactions(dsn string) string {
	const param = "default_transaction_read_only=on"
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		return dsn + sep + param
	}
	return strings.TrimSpace(dsn + " " + param)
}

// Driver 使用中のドライバー名
func (c *ListingStoreClient) Driver() string {
	return c.driver
}

// Close データベース接続を閉じる
func (c *ListingStoreClient) Close() error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}

// HealthCheck データベース接続のヘルスチェック
func (c *ListingStoreClient) HealthCheck(ctx context.Context) error {
	if c.DB == nil {
		return fmt.Errorf("%sクライアントが接続されていません", c.driver)
	}
	return c.DB.PingContext(ctx)
}
