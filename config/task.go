package config

// TaskConfig 包含后台定时任务的配置。
type TaskConfig struct {
	// FeedWarmupEnabled 控制是否定时预热首页各信息流的缓存。
	FeedWarmupEnabled bool `mapstructure:"feedWarmupEnabled" json:"feedWarmupEnabled" yaml:"feedWarmupEnabled"`
	// FeedWarmupSpec 是 cron 表达式，为空时使用 constant.FeedWarmupCronSpec。
	FeedWarmupSpec string `mapstructure:"feedWarmupSpec" json:"feedWarmupSpec" yaml:"feedWarmupSpec"`
}
