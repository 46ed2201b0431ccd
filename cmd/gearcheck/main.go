package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Acearia/gearcheck/internal/config"
	"github.com/Acearia/gearcheck/internal/gearcheck/handler"
	"github.com/Acearia/gearcheck/internal/gearcheck/repository"
	"github.com/Acearia/gearcheck/internal/gearcheck/service"
	"github.com/Acearia/gearcheck/internal/gearcheck/sse"
	"github.com/Acearia/gearcheck/internal/gearcheck/store"
	"github.com/Acearia/gearcheck/internal/middleware"
	"github.com/Acearia/gearcheck/internal/notify"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	// 加载 .env 文件
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	// 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 初始化日志
	zapLogger, err := initLogger(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("Starting gearcheck service",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
		zap.String("store_backend", cfg.Store.Backend),
	)

	// 初始化键值存储后端
	kv, err := initStore(cfg)
	if err != nil {
		zapLogger.Fatal("Failed to init store backend", zap.Error(err))
	}

	// 初始化SSE hub
	hub := sse.NewHub()

	// 初始化班组长通知
	var notifier *notify.WebhookNotifier
	if cfg.Notify.WebhookURL != "" {
		notifier = notify.NewWebhookNotifier(cfg.Notify.WebhookURL)
		zapLogger.Info("Leader webhook notifier initialized")
	}

	// 初始化依赖
	repos := repository.NewRepositories(kv, zapLogger)
	services := service.NewServices(repos, hub, notifier, zapLogger)
	handlers := handler.NewHandlers(services, repos, hub)

	// 设置Gin模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 创建路由
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(zapLogger))
	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	// 注册路由
	registerRoutes(router, handlers, cfg)

	// 创建HTTP服务器
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: 0, // Disable for SSE long-lived connections
	}

	// 启动服务器
	go func() {
		zapLogger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("Server exited")
}

func initLogger(cfg config.LogConfig) (*zap.Logger, error) {
	var zapCfg zap.Config

	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	switch cfg.Level {
	case "debug":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	}

	return zapCfg.Build()
}

// initStore 按配置选择存储后端，默认内存
func initStore(cfg *config.Config) (store.Store, error) {
	switch cfg.Store.Backend {
	case "redis":
		rdb := initRedis(cfg.Redis)
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		return store.NewRedisStore(rdb), nil
	case "postgres":
		db, err := initDatabase(cfg.Database)
		if err != nil {
			return nil, err
		}
		return store.NewGormStore(db)
	case "", "memory":
		return store.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store backend: %s", cfg.Store.Backend)
	}
}

func initDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	db, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return db, nil
}

func initRedis(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
}

func registerRoutes(r *gin.Engine, h *handler.Handlers, cfg *config.Config) {
	// 健康检查
	r.GET("/health/live", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/health/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// 版本信息
	r.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"version":    Version,
			"build_time": BuildTime,
		})
	})

	// 静态文件服务 - 前端 (hashed filenames → immutable cache)
	webDir := cfg.Server.WebDir
	r.Use(func(c *gin.Context) {
		if len(c.Request.URL.Path) > 8 && c.Request.URL.Path[:8] == "/assets/" {
			c.Header("Cache-Control", "public, max-age=31536000, immutable")
		}
		c.Next()
	})
	r.Static("/assets", webDir+"/assets")

	// SPA 路由回退 - 所有非 API 路由返回 index.html
	r.NoRoute(func(c *gin.Context) {
		// 如果是 API 请求，返回 404
		if len(c.Request.URL.Path) > 4 && c.Request.URL.Path[:5] == "/api/" {
			c.JSON(http.StatusNotFound, gin.H{"code": 40400, "message": "Not found"})
			return
		}
		indexData, err := os.ReadFile(webDir + "/index.html")
		if err != nil {
			c.String(http.StatusInternalServerError, "index.html not found")
			return
		}
		c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
		c.Header("Pragma", "no-cache")
		c.Header("Expires", "0")
		c.Data(http.StatusOK, "text/html; charset=utf-8", indexData)
	})

	// API v1
	v1 := r.Group("/api/v1")
	{
		// 点检向导
		wizard := v1.Group("/wizard")
		{
			wizard.GET("/steps/:step", h.Wizard.GetStep)
			wizard.POST("/steps/:step/next", h.Wizard.NextStep)
			wizard.POST("/steps/:step/back", h.Wizard.BackStep)
			wizard.POST("/submit", h.Wizard.Submit)
		}

		// 操作工目录
		operators := v1.Group("/operators")
		{
			operators.GET("", h.Catalog.ListOperators)
			operators.POST("", h.Catalog.CreateOperator)
			operators.PUT("/:id", h.Catalog.UpdateOperator)
			operators.DELETE("/:id", h.Catalog.DeleteOperator)
			operators.POST("/import", h.Catalog.BulkImportOperators)
			operators.POST("/import-xlsx", h.Catalog.ImportOperatorsXLSX)
			operators.POST("/reinitialize", h.Catalog.ReinitializeOperators)
		}

		// 设备目录
		equipment := v1.Group("/equipment")
		{
			equipment.GET("", h.Catalog.ListEquipment)
			equipment.POST("", h.Catalog.CreateEquipment)
			equipment.PUT("/:id", h.Catalog.UpdateEquipment)
			equipment.DELETE("/:id", h.Catalog.DeleteEquipment)
			equipment.POST("/reinitialize", h.Catalog.ReinitializeEquipment)
		}

		// 点检记录
		inspections := v1.Group("/inspections")
		{
			inspections.GET("", h.Inspection.ListInspections)
			inspections.GET("/archived", h.Inspection.ListArchived)
			inspections.POST("/archive", h.Inspection.ArchiveOld)
			inspections.GET("/:id", h.Inspection.GetInspection)
		}

		// 班组长目录（只读）
		v1.GET("/leaders", h.Leader.ListLeaders)

		// 数据库连接配置
		connection := v1.Group("/connection")
		{
			connection.GET("", h.Connection.GetConnection)
			connection.PUT("", h.Connection.SaveConnection)
			connection.GET("/status", h.Connection.ConnectionStatus)
		}

		// SSE 实时推送
		v1.GET("/events", h.SSE.Stream)
	}
}
