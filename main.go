package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	apirest "github.com/fukimorihigh/server/api/rest"
	"github.com/fukimorihigh/server/audit"
	"github.com/fukimorihigh/server/cache"
	"github.com/fukimorihigh/server/config"
	dbadapter "github.com/fukimorihigh/server/db"
	"github.com/fukimorihigh/server/game/interaction"
	"github.com/fukimorihigh/server/game/memlog"
	"github.com/fukimorihigh/server/game/progression"
	"github.com/fukimorihigh/server/game/registry"
	"github.com/fukimorihigh/server/game/reputation"
	"github.com/fukimorihigh/server/game/session"
	"github.com/fukimorihigh/server/game/social"
	"github.com/fukimorihigh/server/game/world"
	mw "github.com/fukimorihigh/server/middleware"
	"github.com/fukimorihigh/server/model"
	"github.com/fukimorihigh/server/resource"
	"github.com/fukimorihigh/server/scheduler"
)

func main() {
	cfgPath := "config/config.yaml"
	if len(os.Args) > 1 {
		cfgPath = os.Args[1]
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// ---- Logger ----
	var logger *zap.Logger
	var logErr error
	if cfg.Server.Debug {
		logger, logErr = zap.NewDevelopment()
	} else {
		logger, logErr = zap.NewProduction()
	}
	if logErr != nil {
		log.Fatalf("logger: %v", logErr)
	}
	defer logger.Sync()

	if cfg.Server.AdminKey == "" {
		logger.Warn("server.admin_key is not set; admin endpoints are disabled")
	}

	// ---- Database ----
	db, err := dbadapter.Open(cfg.Database)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	if err := model.AutoMigrate(db); err != nil {
		log.Fatalf("db migrate: %v", err)
	}
	logger.Info("DB initialized")

	// ---- Audit ----
	auditSvc := audit.New(db, logger)
	defer auditSvc.Stop(nil)

	// ---- Cache ----
	c, err := cache.NewCache(cache.CacheConfig{
		RedisAddr:       cfg.Cache.RedisAddr,
		RedisPassword:   cfg.Cache.RedisPassword,
		RedisDB:         cfg.Cache.RedisDB,
		LocalGCInterval: cfg.Cache.LocalGCInterval,
	})
	if err != nil {
		log.Fatalf("cache: %v", err)
	}
	logger.Info("Cache initialized")

	// ---- Catalog ----
	catalog, err := resource.Load(cfg.Catalog.Dir)
	if err != nil {
		log.Fatalf("catalog: %v", err)
	}
	logger.Info("Catalog loaded",
		zap.Int("achievements", len(catalog.Achievements)),
		zap.Int("locations", len(catalog.Locations)),
		zap.Int("staff", len(catalog.Staff)))

	// ---- Scheduler ----
	sched := scheduler.New(logger)
	defer sched.Stop()

	// ---- Game Systems ----
	sessions := session.NewManager(c, logger)
	registrySvc := registry.NewService(db, logger, cfg.Game.RelationshipHistoryCap)
	memoriesSvc := memlog.NewService(db, logger, cfg.Game.MemoryCapacity)
	socialSvc := social.NewService(registrySvc, memoriesSvc, catalog, logger, cfg.Game)
	reputationSvc := reputation.NewService(db, c, catalog, logger)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	progressionSvc := progression.NewService(db, memoriesSvc, logger, cfg.Game, rng)
	worldSvc := world.NewService(db, registrySvc, memoriesSvc, catalog, logger, cfg.Game)
	interactionSvc := interaction.NewService(socialSvc, progressionSvc, reputationSvc, sessions, auditSvc, logger)

	// ---- Periodic Scheduler Tasks ----
	sched.Every("leaderboard_refresh", time.Duration(cfg.Game.LeaderboardRefreshS)*time.Second, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := reputationSvc.RefreshLeaderboard(ctx); err != nil {
			logger.Warn("leaderboard refresh failed", zap.Error(err))
		}
	})
	sched.Every("memory_compact", time.Duration(cfg.Game.MemoryCompactS)*time.Second, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := memoriesSvc.CompactAll(ctx); err != nil {
			logger.Warn("memory compact failed", zap.Error(err))
		}
	})

	// ---- Gin HTTP Server ----
	if !cfg.Server.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(mw.TraceID(), mw.Logger(logger), mw.Recovery(logger))
	r.Use(mw.RateLimit(rate.Limit(cfg.Security.RateLimitRPS), cfg.Security.RateLimitBurst))

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{"status": "ok"})
	})

	// ---- REST API routes ----
	authH := apirest.NewAuthHandler(db, c, sessions, cfg.Security)
	worldH := apirest.NewWorldHandler(db, worldSvc, sessions, reputationSvc)
	charH := apirest.NewCharacterHandler(db, registrySvc)
	interH := apirest.NewInteractionHandler(db, interactionSvc)
	socialH := apirest.NewSocialHandler(db, socialSvc, registrySvc)
	repH := apirest.NewReputationHandler(db, reputationSvc)
	progH := apirest.NewProgressionHandler(db, progressionSvc, sessions)
	memH := apirest.NewMemoryHandler(db, memoriesSvc)
	adminH := apirest.NewAdminHandler(db, reputationSvc, sessions, sched, logger)

	api := r.Group("/api")
	{
		authG := api.Group("/auth")
		authG.POST("/register", authH.Register)
		authG.POST("/login", authH.Login)
		authG.POST("/logout", mw.Auth(cfg.Security, c), authH.Logout)

		worldsG := api.Group("/worlds")
		worldsG.Use(mw.Auth(cfg.Security, c))
		worldsG.POST("", worldH.Create)
		worldsG.GET("", worldH.List)
		worldsG.GET("/status", worldH.Status)
		worldsG.POST("/reset", worldH.Reset)

		charsG := api.Group("/characters")
		charsG.Use(mw.Auth(cfg.Security, c))
		charsG.GET("", charH.List)
		charsG.POST("", charH.Create)
		charsG.GET("/:id", charH.Get)

		api.POST("/interactions", mw.Auth(cfg.Security, c), interH.Process)

		socialG := api.Group("/social")
		socialG.Use(mw.Auth(cfg.Security, c))
		socialG.GET("/context", socialH.Context)
		socialG.GET("/relationships", socialH.Relationship)

		repG := api.Group("/reputation")
		repG.Use(mw.Auth(cfg.Security, c))
		repG.GET("", repH.Status)
		repG.GET("/achievements", repH.Achievements)
		repG.GET("/reaction", repH.Reaction)

		progG := api.Group("/progression")
		progG.Use(mw.Auth(cfg.Security, c))
		progG.GET("", progH.Stats)
		progG.GET("/actions/:key", progH.CheckAction)
		progG.POST("/items", progH.AddItem)
		progG.DELETE("/items/:name", progH.RemoveItem)

		api.GET("/memories", mw.Auth(cfg.Security, c), memH.Query)

		adminG := api.Group("/admin")
		adminG.Use(mw.IPWhitelist(cfg.Security.AdminAllowedIPs))
		adminG.Use(apirest.AdminAuth(cfg.Server.AdminKey))
		adminG.GET("/metrics", adminH.Metrics)
		adminG.GET("/sessions", adminH.ListSessions)
		adminG.GET("/leaderboard", adminH.Leaderboard)
		adminG.POST("/achievements/:event_key", adminH.ForceAchievement)
	}

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.Info("Server listening", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		log.Fatalf("server: %v", err)
	}
}
