package app

import (
	"context"
	"course_insights_backend/internal/config"
	"course_insights_backend/internal/controller"
	"course_insights_backend/internal/insights"
	"course_insights_backend/internal/repository"
	"course_insights_backend/internal/service"
	"course_insights_backend/internal/util"
	"course_insights_backend/pkg/configwatcher"
	"course_insights_backend/pkg/database"
	"course_insights_backend/pkg/logger"
	"course_insights_backend/pkg/monitoring"
	"course_insights_backend/pkg/security"
	"course_insights_backend/pkg/tracing"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config     *config.Config
	ConfigPath string
	Router     *gin.Engine
	DB         *gorm.DB
	Redis      *redis.Client

	services        *services
	tracer          *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
}

type repositories struct {
	events *repository.EventRepository
	source repository.RecordSource
	cache  repository.RecordCache
}

type services struct {
	storage  *service.StorageService
	insights *service.InsightsService
}

type controllers struct {
	insights *controller.InsightsController
	health   *controller.HealthController
}

func OptionsFromConfig(cfg *config.InsightsConfig) insights.Options {
	return insights.Options{
		Precision:           cfg.Precision,
		SummaryPrecision:    cfg.SummaryPrecision,
		DifficultyPrecision: cfg.DifficultyPrecision,
	}
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(cfg *config.Config, storage *service.StorageService) (*repositories, error) {
	repos := &repositories{cache: repository.NopRecordCache{}}

	if a.DB != nil {
		repos.events = repository.NewEventRepository(a.DB)
	}
	if a.Redis != nil {
		repos.cache = repository.NewRedisRecordCache(a.Redis, cfg.Source.CacheTTL())
	}

	source, err := repository.NewRecordSource(&cfg.Source, repos.events, storage)
	if err != nil {
		return nil, err
	}
	repos.source = source
	return repos, nil
}

func (a *App) initServices(repos *repositories, storage *service.StorageService, cfg *config.Config) *services {
	s := &services{storage: storage}
	s.insights = service.NewInsightsService(repos.source, repos.cache, storage, OptionsFromConfig(&cfg.Insights))

	a.RegisterConfigCallback(func(newCfg *config.Config) {
		s.insights.UpdateOptions(OptionsFromConfig(&newCfg.Insights))
	})
	return s
}

func (a *App) initControllers(s *services) *controllers {
	return &controllers{
		insights: controller.NewInsightsController(s.insights),
		health:   controller.NewHealthController(a.DB, s.insights),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// startBackgroundTasks 定时刷新快照并监听配置变更
func (a *App) startBackgroundTasks(ctx context.Context) {
	go a.services.insights.Run(ctx, a.Config.Insights.RefreshInterval())

	if a.ConfigPath == "" {
		return
	}
	go func() {
		err := configwatcher.WatchConfig(ctx, filepath.Join(a.ConfigPath, "config.yaml"), func(cfg *config.Config) {
			for _, cb := range a.configCallbacks {
				cb(cfg)
			}
		})
		if err != nil {
			logger.Log.Warn("Config watcher disabled", zap.Error(err))
		}
	}()
}

func NewApp(cfg *config.Config, configPath string) *App {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	app := &App{
		Config:     cfg,
		ConfigPath: configPath,
	}

	if cfg.Source.Type == util.SourceDatabase || cfg.MigrateOnly {
		db, err := database.InitDB(&cfg.Database)
		if err != nil {
			logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		}
		app.DB = db
	}

	if cfg.Redis.Enabled {
		rdb, err := database.InitRedis(&cfg.Redis)
		if err != nil {
			// 缓存不可用时直接访问数据源
			logger.Log.Warn("Redis unavailable, record cache disabled", zap.Error(err))
		} else {
			app.Redis = rdb
		}
	}

	storage := service.NewStorageService(cfg)
	repos, err := app.initRepositories(cfg, storage)
	if err != nil {
		logger.Log.Fatal("Failed to initialize record source", zap.Error(err))
	}
	if repos.events != nil {
		if err := repos.events.Migrate(); err != nil {
			logger.Log.Fatal("Failed to migrate learning events", zap.Error(err))
		}
	}

	app.services = app.initServices(repos, storage, cfg)
	ctrls := app.initControllers(app.services)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(cfg.Tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracer = tp
	}

	// 监控初始化
	monitoring.Init()

	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, ctrls, cfg)

	if cfg.Storage.Type == util.StorageLocal {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

// Check 构建一次快照并输出摘要，用于部署前校验数据源
func (a *App) Check(ctx context.Context) error {
	snap, err := a.services.insights.Refresh(ctx, true)
	if err != nil {
		return err
	}
	info := snap.Info()
	logger.Log.Info("Check passed",
		zap.String("source", snap.Source),
		zap.Int("records", info.RecordCount),
		zap.Int("chapters", info.Chapters),
		zap.Int("learners", info.Learners),
		zap.Float64("avg_accuracy", snap.Course.AvgAccuracy),
	)
	return nil
}

func (a *App) Run() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if a.Config.Insights.RefreshOnStart {
		if _, err := a.services.insights.Refresh(ctx, false); err != nil {
			if errors.Is(err, util.ErrNoData) {
				logger.Log.Warn("No learning data yet, serving empty snapshot")
			} else {
				logger.Log.Error("Initial refresh failed", zap.Error(err))
			}
		}
	}
	a.startBackgroundTasks(ctx)

	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal("listen failed", zap.Error(err))
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}
	a.Close(shutdownCtx)

	logger.Log.Info("Server exiting")
}

// Close 释放外部连接
func (a *App) Close(ctx context.Context) {
	if a.tracer != nil {
		if err := a.tracer.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.Redis != nil {
		a.Redis.Close()
	}
	if a.DB != nil {
		if sqlDB, err := a.DB.DB(); err == nil {
			sqlDB.Close()
		}
	}
	logger.Sync()
}
