package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/TodFrog/product-judge/internal/catalog"
	"github.com/TodFrog/product-judge/internal/judge"
	"github.com/TodFrog/product-judge/internal/middleware"
)

// New wires the full HTTP surface. The route table lives here so tests
// can spin up the exact server main runs.
func New(judgeHandler *judge.Handler, catalogHandler *catalog.Handler, corsConfig cors.Config) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(corsConfig))
	r.Use(middleware.RequestID())

	api := r.Group("/api")
	{
		api.GET("/health", judgeHandler.Health)

		api.POST("/judge", judgeHandler.Judge)
		api.POST("/judge/loadcell", judgeHandler.JudgeLoadCell)
		api.POST("/simulate", judgeHandler.Simulate)

		api.GET("/products", catalogHandler.List)
		api.GET("/products/:id", catalogHandler.Get)
	}

	return r
}
