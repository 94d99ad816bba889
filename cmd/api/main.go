package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/TodFrog/product-judge/internal/catalog"
	"github.com/TodFrog/product-judge/internal/config"
	"github.com/TodFrog/product-judge/internal/judge"
	"github.com/TodFrog/product-judge/internal/router"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	cfg := config.Load()
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// ───────────────────────── CATALOG ─────────────────────────
	var cat *catalog.Catalog
	if cfg.CatalogPath != "" {
		loaded, err := catalog.LoadFile(cfg.CatalogPath)
		if err != nil {
			log.Fatalf("[CATALOG] load failed: %v", err)
		}
		cat = loaded
		log.Printf("[CATALOG] %d products loaded from %s", cat.Count(), cfg.CatalogPath)
	} else {
		cat = catalog.Builtin()
		log.Printf("[CATALOG] %d builtin products loaded", cat.Count())
	}

	// ───────────────────────── ENGINE ─────────────────────────
	engine := judge.NewEngine(cat)

	// ───────────────────────── HANDLERS ─────────────────────────
	judgeHandler := judge.NewHandler(engine, cat)
	catalogHandler := catalog.NewHandler(cat)

	// ───────────────────────── ROUTER ─────────────────────────
	r := router.New(judgeHandler, catalogHandler, cfg.CORS())

	// ───────────────────────── START ─────────────────────────
	log.Printf("🚀 Product judgment service running at http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
