package handler

import (
	"embed"
	"html/template"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// NewRouter 画面とAPIのルーティングを設定したginエンジンを作成
func NewRouter(listingHandler *ListingHandler, middlewares ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(middlewares...)

	tmpl := template.Must(template.New("").ParseFS(templateFS, "templates/*.tmpl"))
	r.SetHTMLTemplate(tmpl)

	r.GET("/", listingHandler.GetIndex)

	api := r.Group("/api")
	{
		api.GET("/health", listingHandler.GetHealth)
		api.GET("/options", listingHandler.GetOptions)
		api.POST("/search", listingHandler.PostSearch)
	}

	return r
}
