package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/google/uuid"
	"go.uber.org/zap"

	appConfig "github.com/Xushengqwer/blog_service/config"
	"github.com/Xushengqwer/blog_service/dependencies"
	"github.com/Xushengqwer/blog_service/mq/producer"
	"github.com/Xushengqwer/blog_service/repo/cache"
	"github.com/Xushengqwer/blog_service/repo/event"
	"github.com/Xushengqwer/blog_service/repo/mysql"
	"github.com/Xushengqwer/blog_service/service"
)

func main() {
	var configFile string
	var opts SeedOptions
	flag.StringVar(&configFile, "config", "config/config.development.yaml", "配置文件路径")
	flag.IntVar(&opts.Users, "users", 5, "作者数量")
	flag.IntVar(&opts.Categories, "categories", 6, "分类数量")
	flag.IntVar(&opts.Tags, "tags", 12, "标签数量")
	flag.IntVar(&opts.Posts, "n", 50, "文章数量")
	flag.IntVar(&opts.Concurrency, "concurrency", 5, "并发创建文章的 goroutine 数")
	flag.Parse()

	absConfigFile, err := filepath.Abs(configFile)
	if err != nil {
		absConfigFile = configFile
	}
	if opts.Posts < 0 || opts.Users < 0 || opts.Categories < 0 || opts.Tags < 0 {
		fmt.Println("错误: 数量不能为负")
		os.Exit(1)
	}

	var cfg appConfig.BlogConfig
	if err := core.LoadConfig(absConfigFile, &cfg); err != nil {
		fmt.Printf("加载配置失败 (%s): %v\n", absConfigFile, err)
		os.Exit(1)
	}

	logger, loggerErr := core.NewZapLogger(cfg.ZapConfig)
	if loggerErr != nil {
		fmt.Printf("初始化 ZapLogger 失败: %v\n", loggerErr)
		os.Exit(1)
	}
	defer func() { _ = logger.Logger().Sync() }()
	baseLogger := logger.Logger()

	db, err := dependencies.InitMySQL(&cfg, logger)
	if err != nil {
		logger.Fatal("初始化 MySQL 失败 (Seeder)", zap.Error(err))
	}

	// 写入需要让服务实例的缓存失效：redis 驱动直接递增共享版本号，memory 驱动依赖 Kafka 广播
	var cacheStore cache.Store
	if cfg.CacheConfig.Enabled && cfg.CacheConfig.Driver != appConfig.CacheDriverMemory {
		rdb, err := dependencies.InitRedis(&cfg.RedisConfig, logger)
		if err != nil {
			logger.Fatal("初始化 Redis 失败 (Seeder)", zap.Error(err))
		}
		defer func() { _ = rdb.Close() }()
		if cacheStore, err = dependencies.InitCacheStore(&cfg.CacheConfig, rdb, logger); err != nil {
			logger.Fatal("初始化缓存存储失败 (Seeder)", zap.Error(err))
		}
	}
	repoCache := cache.New(cacheStore, cache.SettingsFromConfig(cfg.CacheConfig), baseLogger)

	origin := "seeder-" + uuid.NewString()
	bus := event.NewBus(baseLogger)
	bus.Subscribe("cache-version-bump", event.VersionBumpListener(repoCache))
	var changePublisher *producer.ChangePublisher
	var kafkaProducer *producer.KafkaProducer
	if len(cfg.KafkaConfig.Brokers) > 0 {
		kafkaProducer = producer.NewKafkaProducer(cfg.KafkaConfig, baseLogger)
		changePublisher = producer.NewChangePublisher(kafkaProducer, baseLogger)
		bus.Subscribe("kafka-change-publisher", changePublisher)
	}

	repos, err := dependencies.InitRepositories(db, repoCache, bus, origin, baseLogger)
	if err != nil {
		logger.Fatal("装配仓库失败 (Seeder)", zap.Error(err))
	}
	txManager := mysql.NewTxManager(db)
	// 不上传封面图，不需要 COS
	postService := service.NewPostService(repos.Posts, txManager, nil, baseLogger)
	tagService := service.NewTagService(repos.Tags, baseLogger)

	start := time.Now()
	result, err := Seed(context.Background(), repos, tagService, postService, baseLogger, opts)
	if err != nil {
		logger.Fatal("数据填充失败", zap.Error(err))
	}

	if changePublisher != nil {
		changePublisher.Wait()
		_ = kafkaProducer.Close()
	}
	logger.Info("数据填充完成",
		zap.Int("users", result.Users),
		zap.Int("categories", result.Categories),
		zap.Int("tags", result.Tags),
		zap.Int64("posts", result.Posts),
		zap.Int64("failed", result.Failed),
		zap.Duration("耗时", time.Since(start)),
	)
}
