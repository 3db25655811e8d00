package config

// COSConfig 是腾讯云对象存储的连接参数，用于存放文章封面图。
type COSConfig struct {
	SecretID   string `mapstructure:"secret_id" json:"-" yaml:"secret_id"`
	SecretKey  string `mapstructure:"secret_key" json:"-" yaml:"secret_key"`
	BucketName string `mapstructure:"bucket_name" json:"bucket_name" yaml:"bucket_name"`
	AppID      string `mapstructure:"app_id" json:"app_id" yaml:"app_id"`
	Region     string `mapstructure:"region" json:"region" yaml:"region"`
	// BaseURL 为空时按 https://{bucket}-{appid}.cos.{region}.myqcloud.com 拼接。
	BaseURL string `mapstructure:"base_url" json:"base_url" yaml:"base_url"`
}
