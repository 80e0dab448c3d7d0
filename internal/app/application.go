package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"landing-builder-backend/internal/agent"
	"landing-builder-backend/internal/ai"
	"landing-builder-backend/internal/blocks"
	"landing-builder-backend/internal/config"
	"landing-builder-backend/internal/handlers"
	"landing-builder-backend/internal/middleware"
	"landing-builder-backend/internal/service"
	"landing-builder-backend/internal/storage"
	"landing-builder-backend/pkg/logger"
)

type Application struct {
	cfg *config.Config

	store   storage.SessionStore
	gateway *ai.Gateway
	library *blocks.Library
	agent   *agent.Agent
	chat    *service.ChatService

	rateLimits *middleware.RateLimitManager

	router *gin.Engine
	server *http.Server
}

func New(ctx context.Context, cfg *config.Config) (*Application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	app := &Application{cfg: cfg}

	if err := app.initStorage(); err != nil {
		return nil, err
	}

	app.gateway = ai.NewGateway(ai.NewGeminiProvider(), cfg.GoogleAPIKey, cfg.Models)
	app.library = blocks.NewLibrary()
	app.agent = agent.New(app.gateway, app.library)
	app.chat = service.NewChatService(app.store, app.agent, cfg.MaxMessageLength)
	app.rateLimits = middleware.NewRateLimitManager(ctx)

	app.initRouter()

	app.server = &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        app.router,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   120 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	return app, nil
}

func (a *Application) Run() error {
	logger.Info("Server starting", map[string]interface{}{
		"port":        a.cfg.Port,
		"environment": a.cfg.Environment,
		"backend":     a.cfg.SessionBackend,
		"models":      a.cfg.Models,
	})

	return a.server.ListenAndServe()
}

func (a *Application) Shutdown(ctx context.Context) error {
	if a.server != nil {
		if err := a.server.Shutdown(ctx); err != nil {
			return err
		}
	}

	if a.rateLimits != nil {
		_ = a.rateLimits.Shutdown()
	}

	if a.store != nil {
		if err := a.store.Close(); err != nil {
			logger.Error("Failed to close session store", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	return nil
}

func (a *Application) Router() *gin.Engine {
	return a.router
}

func (a *Application) initStorage() error {
	switch a.cfg.SessionBackend {
	case "redis":
		logger.Info("Connecting to Redis", map[string]interface{}{"addr": a.cfg.RedisURL})
		store, err := storage.NewRedisStore(a.cfg.RedisURL, a.cfg.SessionTTL)
		if err != nil {
			return err
		}
		a.store = store
	case "postgres":
		logger.Info("Connecting to database", nil)
		db, err := gorm.Open(postgres.Open(a.cfg.DatabaseURL), &gorm.Config{
			Logger: logger.NewGormLogger(),
		})
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return fmt.Errorf("failed to get database instance: %w", err)
		}
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)

		store, err := storage.NewPostgresStore(db, a.cfg.SessionTTL)
		if err != nil {
			return err
		}
		a.store = store
	default:
		a.store = storage.NewMemoryStore(a.cfg.SessionTTL)
	}
	return nil
}

func (a *Application) initRouter() {
	if a.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logger.GinLogger())
	router.Use(middleware.RequestIDMiddleware())
	if a.cfg.EnableMetrics {
		router.Use(middleware.MetricsMiddleware())
	}
	router.Use(middleware.RateLimitMiddleware(a.cfg, a.rateLimits))

	router.Use(cors.New(cors.Config{
		AllowOrigins:     a.cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	chatHandler := handlers.NewChatHandler(a.chat, a.cfg)
	healthHandler := handlers.NewHealthHandler(a.gateway)

	router.GET("/health", healthHandler.Health)
	if a.cfg.EnableMetrics {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	api := router.Group("/api")
	{
		api.POST("/chat", chatHandler.Chat)
		api.GET("/session/:id", chatHandler.GetSession)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Route not found",
			"path":  c.Request.URL.Path,
		})
	})

	a.router = router
}
