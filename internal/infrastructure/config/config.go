package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"

	sharedConfig "haitch/internal/shared/config"
)

type Config struct {
	Server    sharedConfig.ServerConfig    `mapstructure:"server"`
	Database  sharedConfig.DatabaseConfig  `mapstructure:"database"`
	Logger    sharedConfig.LoggerConfig    `mapstructure:"logger"`
	Auth      sharedConfig.AuthConfig      `mapstructure:"auth"`
	Redis     sharedConfig.RedisConfig     `mapstructure:"redis"`
	RateLimit sharedConfig.RateLimitConfig `mapstructure:"ratelimit"`
	Knowledge sharedConfig.KnowledgeConfig `mapstructure:"knowledge"`
	Upload    sharedConfig.UploadConfig    `mapstructure:"upload"`
	WeChat    sharedConfig.WeChatConfig    `mapstructure:"wechat"`
	Scheduler sharedConfig.SchedulerConfig `mapstructure:"scheduler"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load loads configuration from file and environment variables
func Load(env string) (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../configs")
	viper.AddConfigPath("../../configs")

	viper.SetEnvPrefix("HAITCH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Allow env parameter to override server mode if provided
	if env != "" && env != "default" {
		viper.Set("server.mode", env)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

func setDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.mode", "debug")
	viper.SetDefault("server.allowed_origins", []string{"*"})

	// Database defaults
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 3306)
	viper.SetDefault("database.username", "root")
	viper.SetDefault("database.password", "password")
	viper.SetDefault("database.database", "haitch_dev")
	viper.SetDefault("database.max_idle_conns", 10)
	viper.SetDefault("database.max_open_conns", 100)
	viper.SetDefault("database.conn_max_lifetime", 60)

	// Logger defaults
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.format", "console")
	viper.SetDefault("logger.output_path", "stdout")

	// Auth defaults
	viper.SetDefault("auth.password.bcrypt_cost", 12)
	viper.SetDefault("auth.jwt.secret", "change-me-in-production")
	viper.SetDefault("auth.jwt.access_exp_minutes", 1440)

	// Redis defaults
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	// Rate limit defaults
	viper.SetDefault("ratelimit.per_hour", 20)
	viper.SetDefault("ratelimit.per_day", 100)

	// Knowledge base defaults
	viper.SetDefault("knowledge.endpoint", "bailian.cn-beijing.aliyuncs.com")
	viper.SetDefault("knowledge.access_key_id", "")
	viper.SetDefault("knowledge.access_key_secret", "")
	viper.SetDefault("knowledge.workspace_id", "")
	viper.SetDefault("knowledge.category_id", "")
	viper.SetDefault("knowledge.index_id", "")
	viper.SetDefault("knowledge.app_id", "")
	viper.SetDefault("knowledge.api_key", "")

	// Upload defaults
	viper.SetDefault("upload.dir", "./uploads")
	viper.SetDefault("upload.max_size_mb", 600)

	// WeChat defaults
	viper.SetDefault("wechat.token", "")

	// Scheduler defaults
	viper.SetDefault("scheduler.interval_minutes", 1)
	viper.SetDefault("scheduler.uploads_per_sec", 5)
}
