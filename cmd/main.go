package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"SumoSearch-App/internal/config"
	"SumoSearch-App/internal/domain/service"
	"SumoSearch-App/internal/handler"
	"SumoSearch-App/internal/infrastructure/assets"
	"SumoSearch-App/internal/infrastructure/database"
	"SumoSearch-App/internal/infrastructure/logger"
	"SumoSearch-App/internal/repository"
	"SumoSearch-App/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("設定の読み込みに失敗: %v", err)
	}

	zl, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("ロガーの初期化に失敗: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	gin.SetMode(cfg.GinMode)

	// 接続は最初の検索時に確立する
	storeClient, err := database.NewListingStoreClient(cfg.Store)
	if err != nil {
		zl.Fatal("ストアクライアント初期化失敗", zap.Error(err))
	}
	defer storeClient.Close()

	backgroundStyle, err := assets.BackgroundStyle(cfg.BackgroundImagePath)
	if err != nil {
		zl.Warn("⚠️ 背景画像なしで表示します", zap.String("path", cfg.BackgroundImagePath), zap.Error(err))
	}

	// Dependency injection
	listingsRepo := repository.NewSQLListingsRepository(storeClient, cfg.Store)
	listingCache := usecase.NewListingCache(listingsRepo, zl)
	mapService := service.NewListingMapService()
	searchUseCase := usecase.NewListingSearchUseCase(listingCache, mapService, zl)
	listingHandler := handler.NewListingHandler(searchUseCase, storeClient, handler.PageSettings{
		BackgroundStyle: backgroundStyle,
		MapboxToken:     cfg.MapboxToken,
	})

	router := handler.NewRouter(listingHandler, handler.RequestLogger(zl), gin.Recovery())

	addr := fmt.Sprintf(":%s", cfg.Port)
	zl.Info("🚀 SumoSearch-App server starting",
		zap.String("addr", addr),
		zap.String("driver", storeClient.Driver()),
		zap.String("table", cfg.Store.Table),
	)
	if err := router.Run(addr); err != nil {
		zl.Fatal("サーバー起動失敗", zap.Error(err))
	}
}
