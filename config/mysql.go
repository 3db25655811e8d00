package config

// SourceConfig 代表一个数据库源（主库或从库）的配置
type SourceConfig struct {
	DSN string `mapstructure:"dsn" json:"-" yaml:"dsn"` // DSN 中含密码，打印配置时忽略
	// 独立的连接池设置，允许覆盖共享设置 (可选，指针用于区分是否设置)
	MaxIdleConns    *int `mapstructure:"max_idle_conns,omitempty" json:"max_idle_conns,omitempty" yaml:"max_idle_conns,omitempty"`
	MaxOpenConns    *int `mapstructure:"max_open_conns,omitempty" json:"max_open_conns,omitempty" yaml:"max_open_conns,omitempty"`
	ConnMaxLifetime *int `mapstructure:"conn_max_lifetime,omitempty" json:"conn_max_lifetime,omitempty" yaml:"conn_max_lifetime,omitempty"` // 秒
}

// MySQLConfig 包含主库和从库的配置
type MySQLConfig struct {
	Write SourceConfig   `mapstructure:"write" json:"write" yaml:"write"` // 主库配置
	Read  []SourceConfig `mapstructure:"read" json:"read" yaml:"read"`    // 从库列表，为空表示不启用读写分离

	// 共享/默认连接池设置 (如果 Write/Read 中未指定，则使用这些值)
	SharedMaxIdleConns    int `mapstructure:"max_idle_conns" json:"max_idle_conns" yaml:"max_idle_conns"`
	SharedMaxOpenConns    int `mapstructure:"max_open_conns" json:"max_open_conns" yaml:"max_open_conns"`
	SharedConnMaxLifetime int `mapstructure:"conn_max_lifetime" json:"conn_max_lifetime" yaml:"conn_max_lifetime"` // 秒

	// ConnectRetries 是启动时连接主库的重试次数，0 表示使用默认值 5
	ConnectRetries int `mapstructure:"connect_retries" json:"connect_retries" yaml:"connect_retries"`
	// AutoMigrate 为 true 时启动时执行 AutoMigrate
	AutoMigrate bool `mapstructure:"auto_migrate" json:"auto_migrate" yaml:"auto_migrate"`
}
