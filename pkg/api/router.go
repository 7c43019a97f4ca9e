package api

import (
	"page-search-go/pkg/api/handlers"
	"page-search-go/pkg/api/middleware"

	"github.com/gin-gonic/gin"
)

// NewRouter builds the stub backend serving the same routes as the real
// search service
func NewRouter(store *PageStore) *gin.Engine {
	router := gin.New()

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler())

	router.GET("/health", handlers.HealthCheck)

	router.GET("/indexed-pages", handlers.ListPages(store))
	router.POST("/indexed-pages", handlers.AddPage(store))
	router.POST("/delete-indexed-pages", handlers.DeletePage(store))
	router.POST("/summaries", handlers.Summarize(store))
	router.POST("/queries", handlers.Query(store))
	router.GET("/index-stats", handlers.Stats(store, StubEmbeddingDim))

	router.NoRoute(middleware.NotFound)

	return router
}
