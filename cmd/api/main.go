package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/mmanuelaprado/pradoagenda-sub000/internal/config"
	dbpkg "github.com/mmanuelaprado/pradoagenda-sub000/internal/db"
	"github.com/mmanuelaprado/pradoagenda-sub000/internal/logger"
	"github.com/mmanuelaprado/pradoagenda-sub000/internal/middleware"
	"github.com/mmanuelaprado/pradoagenda-sub000/internal/routes"
)

func main() {

	_ = godotenv.Load()

	cfg := config.Load()

	log := logger.New(cfg.Env)
	defer log.Sync()

	db := dbpkg.NewDB(cfg)

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatal("REDIS_URL inválida", zap.Error(err))
		}
		rdb = redis.NewClient(opts)
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, rdb, cfg, log)

	log.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
