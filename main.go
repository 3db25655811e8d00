package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	sharedCore "github.com/Xushengqwer/go-common/core"
	sharedTracing "github.com/Xushengqwer/go-common/core/tracing"
	"github.com/google/uuid"
	"go.uber.org/zap"

	appConfig "github.com/Xushengqwer/blog_service/config"
	"github.com/Xushengqwer/blog_service/constant"
	"github.com/Xushengqwer/blog_service/controller"
	"github.com/Xushengqwer/blog_service/dependencies"
	_ "github.com/Xushengqwer/blog_service/docs"
	"github.com/Xushengqwer/blog_service/mq/consumer"
	"github.com/Xushengqwer/blog_service/mq/producer"
	"github.com/Xushengqwer/blog_service/repo/cache"
	"github.com/Xushengqwer/blog_service/repo/event"
	"github.com/Xushengqwer/blog_service/repo/mysql"
	"github.com/Xushengqwer/blog_service/router"
	"github.com/Xushengqwer/blog_service/service"
	"github.com/Xushengqwer/blog_service/tasks"
)

// @title           Blog Service API
// @version         1.0
// @description     博客服务，提供后台文章、标签管理以及前台首页、文章、分类与标签接口。
// @termsOfService  http://swagger.io/terms/

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8083
// @schemes http https
func main() {
	var configFile string
	flag.StringVar(&configFile, "config", "config/config.development.yaml", "Path to configuration file")
	flag.Parse()

	// 1. 加载配置
	var cfg appConfig.BlogConfig
	if err := sharedCore.LoadConfig(configFile, &cfg); err != nil {
		log.Fatalf("FATAL: 加载配置失败 (%s): %v", configFile, err)
	}
	if configBytes, err := json.MarshalIndent(cfg, "", "  "); err == nil {
		log.Printf("配置加载成功，最终生效的配置如下:\n%s\n", string(configBytes))
	}

	// 2. 初始化 Logger
	logger, loggerErr := sharedCore.NewZapLogger(cfg.ZapConfig)
	if loggerErr != nil {
		log.Fatalf("FATAL: 初始化 ZapLogger 失败: %v", loggerErr)
	}
	defer func() {
		if err := logger.Logger().Sync(); err != nil {
			log.Printf("WARN: ZapLogger Sync 失败: %v\n", err)
		}
	}()
	baseLogger := logger.Logger()
	logger.Info("Logger 初始化成功")

	// 3. 初始化 TracerProvider
	if cfg.TracerConfig.Enabled {
		tracerShutdown, err := sharedTracing.InitTracerProvider(constant.ServiceName, constant.ServiceVersion, cfg.TracerConfig)
		if err != nil {
			logger.Fatal("初始化 TracerProvider 失败", zap.Error(err))
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracerShutdown(ctx); err != nil {
				logger.Error("关闭 TracerProvider 失败", zap.Error(err))
			}
		}()
		logger.Info("分布式追踪已初始化")
	} else {
		logger.Info("分布式追踪已禁用")
	}

	// 4. 核心依赖
	db, err := dependencies.InitMySQL(&cfg, logger)
	if err != nil {
		logger.Fatal("初始化 MySQL 数据库失败", zap.Error(err))
	}

	// 只有 redis 缓存驱动需要 Redis
	var cacheStore cache.Store
	if cfg.CacheConfig.Enabled && cfg.CacheConfig.Driver != appConfig.CacheDriverMemory {
		rdb, err := dependencies.InitRedis(&cfg.RedisConfig, logger)
		if err != nil {
			logger.Fatal("初始化 Redis 失败", zap.Error(err))
		}
		defer func() { _ = rdb.Close() }()
		cacheStore, err = dependencies.InitCacheStore(&cfg.CacheConfig, rdb, logger)
		if err != nil {
			logger.Fatal("初始化缓存存储失败", zap.Error(err))
		}
	} else {
		cacheStore, err = dependencies.InitCacheStore(&cfg.CacheConfig, nil, logger)
		if err != nil {
			logger.Fatal("初始化缓存存储失败", zap.Error(err))
		}
	}
	repoCache := cache.New(cacheStore, cache.SettingsFromConfig(cfg.CacheConfig), baseLogger)

	cosStorage, err := dependencies.InitCOS(&cfg.COSConfig, baseLogger)
	if err != nil {
		logger.Fatal("初始化 COS 存储失败", zap.Error(err))
	}

	var kafkaProducer *producer.KafkaProducer
	if len(cfg.KafkaConfig.Brokers) > 0 {
		kafkaProducer = producer.NewKafkaProducer(cfg.KafkaConfig, baseLogger)
		logger.Info("Kafka 生产者已初始化")
	} else {
		logger.Warn("未配置 Kafka brokers，仓库变更事件只在本实例内分发")
	}

	// 5. 事件总线：本地版本号递增，必要时广播到其他实例
	origin := uuid.NewString()
	bus := event.NewBus(baseLogger)
	bus.Subscribe("cache-version-bump", event.VersionBumpListener(repoCache))
	var changePublisher *producer.ChangePublisher
	if kafkaProducer != nil {
		changePublisher = producer.NewChangePublisher(kafkaProducer, baseLogger)
		bus.Subscribe("kafka-change-publisher", changePublisher)
	}

	// 6. 仓库、服务、控制器
	repos, err := dependencies.InitRepositories(db, repoCache, bus, origin, baseLogger)
	if err != nil {
		logger.Fatal("装配仓库失败", zap.Error(err))
	}
	txManager := mysql.NewTxManager(db)

	postService := service.NewPostService(repos.Posts, txManager, cosStorage, baseLogger)
	postActionService := service.NewPostActionService(repos.Posts, txManager, cosStorage, baseLogger)
	tagService := service.NewTagService(repos.Tags, baseLogger)
	categoryService := service.NewCategoryService(repos.Categories)
	homeService := service.NewHomeService(repos.Posts, repos.Users, cosStorage)
	articleService := service.NewArticleService(repos.Posts, repos.Categories, repos.Tags, cosStorage, baseLogger)
	tagFrontService := service.NewTagFrontService(repos.Tags)

	postAdminController := controller.NewPostAdminController(postService, postActionService)
	taxonomyAdminController := controller.NewTaxonomyAdminController(tagService, categoryService)
	blogController := controller.NewBlogController(homeService, articleService, categoryService, tagFrontService)
	logger.Debug("Services 与 Controllers 初始化完成")

	// 7. Kafka 消费者：memory 驱动下接收其他实例的变更，递增本地版本号
	var changeConsumer *consumer.Consumer
	var consumerWg sync.WaitGroup
	consumerCtx, consumerCancel := context.WithCancel(context.Background())
	defer consumerCancel()

	if repoCache.Enabled() && cfg.CacheConfig.Driver == appConfig.CacheDriverMemory && len(cfg.KafkaConfig.Brokers) > 0 {
		// 每个实例需要收到全部变更，消费组按实例区分
		groupID := cfg.KafkaConfig.ConsumerGroupID
		if groupID == "" {
			groupID = constant.ServiceName
		}
		groupID = fmt.Sprintf("%s-%s", groupID, origin)

		handler := consumer.NewChangeHandler(repoCache, origin, baseLogger)
		changeConsumer, err = consumer.NewConsumer(&cfg.KafkaConfig, groupID, cfg.KafkaConfig.Topics.RepositoryChanged, handler, baseLogger)
		if err != nil {
			logger.Fatal("初始化仓库变更消费者失败", zap.Error(err))
		}
		consumerWg.Add(1)
		go func() {
			defer consumerWg.Done()
			changeConsumer.Start(consumerCtx)
		}()
		logger.Info("仓库变更消费者已启动", zap.String("groupID", groupID))
	}

	// 8. 定时任务
	var warmupTask *tasks.FeedWarmupTask
	if cfg.TaskConfig.FeedWarmupEnabled {
		warmupTask, err = tasks.NewFeedWarmupTask(homeService, cfg.TaskConfig.FeedWarmupSpec, baseLogger)
		if err != nil {
			logger.Fatal("初始化信息流预热任务失败", zap.Error(err))
		}
	}

	// 9. 路由与 HTTP 服务器
	ginRouter := router.SetupRouter(logger, &cfg, postAdminController, taxonomyAdminController, blogController)
	serverAddr := fmt.Sprintf(":%s", cfg.ServerConfig.Port)
	httpServer := &http.Server{
		Addr:    serverAddr,
		Handler: ginRouter,
	}
	go func() {
		logger.Info("HTTP 服务器开始监听", zap.String("address", serverAddr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP 服务器启动失败", zap.Error(err))
		}
	}()

	// 10. 优雅关停
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	receivedSignal := <-quit
	logger.Info("收到关停信号，开始优雅退出...", zap.String("signal", receivedSignal.String()))

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("关闭 HTTP 服务器失败", zap.Error(err))
	} else {
		logger.Info("HTTP 服务器已成功关闭")
	}

	if warmupTask != nil {
		select {
		case <-warmupTask.Stop().Done():
			logger.Info("信息流预热任务已停止")
		case <-shutdownCtx.Done():
			logger.Error("等待定时任务停止超时", zap.Error(shutdownCtx.Err()))
		}
	}

	consumerCancel()
	consumerWg.Wait()
	if changeConsumer != nil {
		if err := changeConsumer.Close(); err != nil {
			logger.Error("关闭 Kafka 消费者失败", zap.Error(err))
		}
	}

	// 先等待进行中的事件发送，再关闭生产者
	if changePublisher != nil {
		changePublisher.Wait()
	}
	if kafkaProducer != nil {
		if err := kafkaProducer.Close(); err != nil {
			logger.Error("关闭 Kafka 生产者失败", zap.Error(err))
		}
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	logger.Info("服务已成功关闭")
}
