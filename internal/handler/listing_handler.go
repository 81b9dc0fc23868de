package handler

import (
	"context"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"SumoSearch-App/internal/domain/model"
	"SumoSearch-App/internal/usecase"
)

// PageSettings 画面表示の設定
type PageSettings struct {
	BackgroundStyle template.CSS // 背景画像のCSS
	MapboxToken     string       // 空の場合はベースマップなしで描画
}

// StoreHealthChecker ストア接続の疎通確認
type StoreHealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// ListingHandler 物件検索画面とAPIのハンドラー
type ListingHandler struct {
	searchUseCase usecase.ListingSearchUseCase
	store         StoreHealthChecker
	page          PageSettings
}

// NewListingHandler ListingHandlerの新しいインスタンスを作成
func NewListingHandler(searchUseCase usecase.ListingSearchUseCase, store StoreHealthChecker, page PageSettings) *ListingHandler {
	return &ListingHandler{
		searchUseCase: searchUseCase,
		store:         store,
		page:          page,
	}
}

// SearchRequest POST /api/search のリクエスト
// cost_min / cost_max を省略した場合はスライダーの初期値を使う
type SearchRequest struct {
	Areas   []string `json:"areas"`
	CostMin *float64 `json:"cost_min"`
	CostMax *float64 `json:"cost_max"`
}

// ToCriteria リクエストを検索条件に変換
func (r *SearchRequest) ToCriteria() model.FilterCriteria {
	criteria := model.DefaultFilterCriteria()
	if r.Areas != nil {
		criteria.Areas = r.Areas
	}
	if r.CostMin != nil {
		criteria.CostMin = *r.CostMin
	}
	if r.CostMax != nil {
		criteria.CostMax = *r.CostMax
	}
	return criteria
}

// GetIndex GET / - 検索画面
func (h *ListingHandler) GetIndex(c *gin.Context) {
	options := h.searchUseCase.Options(c.Request.Context())

	c.HTML(http.StatusOK, "index.tmpl", gin.H{
		"Options":         options,
		"BackgroundStyle": h.page.BackgroundStyle,
		"MapboxToken":     h.page.MapboxToken,
		"MapStyle":        model.MapStyle,
		"Unit":            model.BudgetUnitLabel,
	})
}

// GetOptions GET /api/options - サイドバーの選択肢
func (h *ListingHandler) GetOptions(c *gin.Context) {
	c.JSON(http.StatusOK, h.searchUseCase.Options(c.Request.Context()))
}

// PostSearch POST /api/search - 条件で絞り込んだ物件と地図表示内容
func (h *ListingHandler) PostSearch(c *gin.Context) {
	var req SearchRequest

	// リクエストボディのバインド
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "リクエストの形式が正しくありません",
			"details": err.Error(),
		})
		return
	}

	// 読み込み失敗時も画面は空の結果で描画を続けるため200で返す
	result := h.searchUseCase.Search(c.Request.Context(), req.ToCriteria())
	c.JSON(http.StatusOK, result)
}

// GetHealth GET /api/health - ヘルスチェック
// 読み込み前は接続がないため、ストアの疎通確認は読み込み成功後のみ行う
func (h *ListingHandler) GetHealth(c *gin.Context) {
	loaded := h.searchUseCase.DataLoaded()
	response := gin.H{
		"status":          "healthy",
		"service":         "SumoSearch-App",
		"listings_loaded": loaded,
	}

	if loaded && h.store != nil {
		if err := h.store.HealthCheck(c.Request.Context()); err != nil {
			response["status"] = "unhealthy"
			response["store"] = "unreachable"
			response["details"] = err.Error()
			c.JSON(http.StatusServiceUnavailable, response)
			return
		}
		response["store"] = "ok"
	}

	c.JSON(http.StatusOK, response)
}
