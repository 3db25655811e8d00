package config

import "github.com/Xushengqwer/go-common/config"

// BlogConfig 是博客服务的顶层配置，由 core.LoadConfig 从 YAML 文件加载。
type BlogConfig struct {
	ZapConfig     config.ZapConfig     `mapstructure:"zapConfig" json:"zapConfig" yaml:"zapConfig"`
	GormLogConfig config.GormLogConfig `mapstructure:"gormLogConfig" json:"gormLogConfig" yaml:"gormLogConfig"`
	ServerConfig  config.ServerConfig  `mapstructure:"serverConfig" json:"serverConfig" yaml:"serverConfig"`
	TracerConfig  config.TracerConfig  `mapstructure:"tracerConfig" json:"tracerConfig" yaml:"tracerConfig"`
	MySQLConfig   MySQLConfig          `mapstructure:"mysqlConfig" json:"mysqlConfig" yaml:"mysqlConfig"`
	RedisConfig   RedisConfig          `mapstructure:"redisConfig" json:"redisConfig" yaml:"redisConfig"`
	CacheConfig   CacheConfig          `mapstructure:"cacheConfig" json:"cacheConfig" yaml:"cacheConfig"`
	KafkaConfig   KafkaConfig          `mapstructure:"kafkaConfig" json:"kafkaConfig" yaml:"kafkaConfig"`
	COSConfig     COSConfig            `mapstructure:"postImagesCosConfig" json:"postImagesCosConfig" yaml:"postImagesCosConfig"`
	TaskConfig    TaskConfig           `mapstructure:"taskConfig" json:"taskConfig" yaml:"taskConfig"`
}
