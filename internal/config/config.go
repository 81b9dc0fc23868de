package config

import (
	"fmt"
	"log"
	"regexp"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config 環境変数から読み込むアプリケーション設定
type Config struct {
	Port    string `env:"PORT" envDefault:"8080"`
	GinMode string `env:"GIN_MODE" envDefault:"release"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	Store StoreConfig

	BackgroundImagePath string `env:"BG_IMAGE_PATH" envDefault:"backimage.jpg"`
	MapboxToken         string `env:"MAPBOX_ACCESS_TOKEN"`
}

// StoreConfig 物件ストアの接続先とテーブル定義
type StoreConfig struct {
	Driver string `env:"STORE_DRIVER" envDefault:"sqlite"`
	DSN    string `env:"STORE_DSN" envDefault:"sumodb8.db"`
	Table  string `env:"LISTINGS_TABLE" envDefault:"sumodb8_table"`

	AreaColumn string `env:"AREA_COLUMN" envDefault:"Area"`
	CostColumn string `env:"COST_COLUMN" envDefault:"cost"`
	LatColumn  string `env:"LAT_COLUMN" envDefault:"lat"`
	LonColumn  string `env:"LON_COLUMN" envDefault:"lon"`
}

// Load .envファイルを読み込み、環境変数から設定を組み立てる
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}
	return Parse()
}

// Parse 現在の環境変数から設定を組み立てる
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("環境変数の解析に失敗: %w", err)
	}
	if err := cfg.Store.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate ストア設定の検証
func (s *StoreConfig) Validate() error {
	switch s.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("STORE_DRIVERは'%s'または'%s'を指定してください: %q", DriverSQLite, DriverPostgres, s.Driver)
	}
	if s.DSN == "" {
		return fmt.Errorf("STORE_DSN環境変数が設定されていません")
	}
	if s.Table == "" {
		return fmt.Errorf("LISTINGS_TABLE環境変数が設定されていません")
	}
	if !identifierPattern.MatchString(s.Table) {
		return fmt.Errorf("LISTINGS_TABLEに使用できない文字が含まれています: %q", s.Table)
	}
	return nil
}

// テーブル名はクエリに埋め込むため英数字とアンダースコアのみ許可
var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ストアドライバー
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)
