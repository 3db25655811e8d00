package dependencies

import (
	"fmt"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"

	appConfig "github.com/Xushengqwer/blog_service/config"
	"github.com/Xushengqwer/blog_service/models/entities"
)

const mysqlRetryInterval = 2 * time.Second

// InitMySQL 初始化 MySQL 连接，配置了从库时启用读写分离，按需执行自动迁移。
func InitMySQL(cfg *appConfig.BlogConfig, logger *core.ZapLogger) (*gorm.DB, error) {
	mysqlCfg := cfg.MySQLConfig
	if mysqlCfg.Write.DSN == "" {
		return nil, fmt.Errorf("主数据库 DSN (mysql.write.dsn) 未配置")
	}

	gormConfig := &gorm.Config{Logger: core.NewGormLogger(logger, cfg.GormLogConfig)}
	db, err := openWithRetry(mysqlCfg, gormConfig, logger)
	if err != nil {
		return nil, err
	}

	if err := useReplicas(db, mysqlCfg, logger); err != nil {
		return nil, err
	}
	if err := applyPool(db, mysqlCfg, logger); err != nil {
		return nil, err
	}

	if !mysqlCfg.AutoMigrate {
		logger.Info("未开启自动迁移，跳过")
		return db, nil
	}
	// AutoMigrate 默认发送到主库 (Source)
	logger.Info("开始执行数据库自动迁移...")
	if err := entities.AutoMigrate(db); err != nil {
		logger.Error("数据库自动迁移失败", zap.Error(err))
		return nil, fmt.Errorf("数据库自动迁移失败: %w", err)
	}
	logger.Info("数据库自动迁移完成")
	return db, nil
}

// openWithRetry 连接主库并 Ping，失败时按固定间隔重试。
func openWithRetry(mysqlCfg appConfig.MySQLConfig, gormConfig *gorm.Config, logger *core.ZapLogger) (*gorm.DB, error) {
	maxRetries := mysqlCfg.ConnectRetries
	if maxRetries <= 0 {
		maxRetries = 5
	}

	logger.Info("开始连接主数据库...", zap.Int("maxRetries", maxRetries))
	var lastErr error
	for i := 0; i < maxRetries; i++ {
		db, err := gorm.Open(mysql.Open(mysqlCfg.Write.DSN), gormConfig)
		if err == nil {
			sqlDB, dbErr := db.DB()
			if dbErr == nil {
				if err = sqlDB.Ping(); err == nil {
					logger.Info("成功连接到主数据库")
					return db, nil
				}
			} else {
				err = dbErr
			}
		}
		lastErr = err
		logger.Warn("无法连接到主数据库，尝试重试", zap.Int("retry", i+1), zap.Int("maxRetries", maxRetries), zap.Error(err))
		if i < maxRetries-1 {
			time.Sleep(mysqlRetryInterval)
		}
	}
	logger.Error("无法连接到主数据库", zap.Error(lastErr))
	return nil, fmt.Errorf("无法连接到主数据库: %w", lastErr)
}

// useReplicas 只有配置了有效的从库时才注册 dbresolver，读请求轮询分配到从库。
func useReplicas(db *gorm.DB, mysqlCfg appConfig.MySQLConfig, logger *core.ZapLogger) error {
	replicas := make([]gorm.Dialector, 0, len(mysqlCfg.Read))
	for i, replica := range mysqlCfg.Read {
		if replica.DSN == "" {
			logger.Warn("发现空的从库 DSN 配置，已跳过", zap.Int("index", i))
			continue
		}
		replicas = append(replicas, mysql.Open(replica.DSN))
	}
	if len(replicas) == 0 {
		logger.Info("未配置有效的从数据库，不启用读写分离")
		return nil
	}

	err := db.Use(dbresolver.Register(dbresolver.Config{
		Sources:  []gorm.Dialector{mysql.Open(mysqlCfg.Write.DSN)},
		Replicas: replicas,
		Policy:   dbresolver.StrictRoundRobinPolicy(),
	}))
	if err != nil {
		logger.Error("配置 GORM 读写分离插件失败", zap.Error(err))
		return fmt.Errorf("配置 GORM 读写分离失败: %w", err)
	}
	logger.Info("成功配置 GORM 读写分离插件", zap.Int("从库数量", len(replicas)))
	return nil
}

// applyPool 以共享设置为基础，主库的独立设置覆盖共享设置。
func applyPool(db *gorm.DB, mysqlCfg appConfig.MySQLConfig, logger *core.ZapLogger) error {
	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("无法获取数据库对象以配置连接池", zap.Error(err))
		return fmt.Errorf("无法获取数据库对象: %w", err)
	}

	maxIdle := pick(mysqlCfg.Write.MaxIdleConns, mysqlCfg.SharedMaxIdleConns)
	maxOpen := pick(mysqlCfg.Write.MaxOpenConns, mysqlCfg.SharedMaxOpenConns)
	maxLife := pick(mysqlCfg.Write.ConnMaxLifetime, mysqlCfg.SharedConnMaxLifetime)
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetConnMaxLifetime(time.Duration(maxLife) * time.Second)

	logger.Info("配置数据库连接池",
		zap.Int("最大空闲连接数", maxIdle),
		zap.Int("最大打开连接数", maxOpen),
		zap.Int("连接最大生命周期(秒)", maxLife),
	)
	if err := sqlDB.Ping(); err != nil {
		logger.Error("配置连接池后 Ping 数据库失败", zap.Error(err))
		return fmt.Errorf("配置连接池后 Ping 失败: %w", err)
	}
	return nil
}

func pick(override *int, shared int) int {
	if override != nil {
		return *override
	}
	return shared
}
