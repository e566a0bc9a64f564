package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"loreforge/internal/cache"
	"loreforge/internal/config"
	"loreforge/internal/database"
	"loreforge/internal/handler"
	"loreforge/internal/middleware"
	"loreforge/internal/repository"
	"loreforge/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	db, err := database.Connect(cfg, logger)
	if err != nil {
		logger.Error("connect database", "error", err)
		os.Exit(1)
	}

	redisCache := cache.New(cfg.RedisAddr, cfg.RedisPassword, cfg.CacheTTL)

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		logger.Error("create upload dir", "error", err)
		os.Exit(1)
	}

	// repositories
	userRepo := repository.NewUserRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)
	characterRepo := repository.NewCharacterRepository(db)
	raceRepo := repository.NewRaceRepository(db)
	placeRepo := repository.NewPlaceRepository(db)
	storyRepo := repository.NewStoryRepository(db)
	devblogRepo := repository.NewDevblogRepository(db)
	roadmapRepo := repository.NewRoadmapRepository(db)
	faqRepo := repository.NewFAQRepository(db)
	mediaRepo := repository.NewMediaRepository(db)

	// services
	authService := service.NewAuthService(userRepo, refreshTokenRepo, cfg)
	characterService := service.NewCharacterService(characterRepo, raceRepo)
	raceService := service.NewRaceService(raceRepo)
	placeService := service.NewPlaceService(placeRepo)
	storyService := service.NewStoryService(storyRepo, redisCache)
	devblogService := service.NewDevblogService(devblogRepo, redisCache)
	roadmapService := service.NewRoadmapService(roadmapRepo)
	faqService := service.NewFAQService(faqRepo)
	mediaService := service.NewMediaService(mediaRepo)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(logger))
	r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	corsConfig.AllowCredentials = true
	corsConfig.MaxAge = 12 * time.Hour
	r.Use(cors.New(corsConfig))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.Static("/uploads", cfg.UploadDir)

	requireAuth := middleware.AuthMiddleware(authService)
	optionalAuth := middleware.OptionalAuth(authService)

	api := r.Group("/api")
	handler.NewAuthHandler(authService, cfg.AccessTokenTTL).RegisterRoutes(api.Group("/auth"))
	handler.NewCharacterHandler(characterService).RegisterRoutes(api.Group("/characters"), requireAuth)
	handler.NewRaceHandler(raceService).RegisterRoutes(api.Group("/races"), requireAuth)
	handler.NewPlaceHandler(placeService).RegisterRoutes(api.Group("/places"), requireAuth)
	handler.NewStoryHandler(storyService).RegisterRoutes(api.Group("/stories"), requireAuth, optionalAuth)
	handler.NewDevblogHandler(devblogService).RegisterRoutes(api.Group("/devblog"), requireAuth, optionalAuth)
	handler.NewRoadmapHandler(roadmapService).RegisterRoutes(api.Group("/roadmap"), requireAuth)
	handler.NewFAQHandler(faqService).RegisterRoutes(api.Group("/faq"), requireAuth)
	handler.NewMediaHandler(mediaService).RegisterRoutes(api.Group("/media"), requireAuth)
	handler.NewUploadHandler(cfg.UploadDir, cfg.UploadMaxSize).RegisterRoutes(api.Group("/upload"), requireAuth)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("server starting", "addr", addr, "env", cfg.GoEnv)
	if err := r.Run(addr); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

// requestLogger logs one structured line per request.
func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
			"client_ip", c.ClientIP(),
		)
	}
}
