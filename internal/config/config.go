package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/comunidades/feed-api/internal/logger"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	StoreDriverPostgREST = "postgrest"
	StoreDriverSQL       = "sql"
)

// Config 应用配置结构
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	Store    StoreConfig    `mapstructure:"store"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	CORS     CORSConfig     `mapstructure:"cors"`
	Feed     FeedConfig     `mapstructure:"feed"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port" validate:"required,numeric"`
	Mode string `mapstructure:"mode" validate:"oneof=debug release test"` // debug / release / test
}

// LogConfig 日志配置
type LogConfig struct {
	Dir        string `mapstructure:"dir"`
	Filename   string `mapstructure:"filename"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

// ToLoggerOptions 转换为 logger 配置
func (c LogConfig) ToLoggerOptions() logger.Options {
	return logger.Options{
		Dir:        c.Dir,
		Filename:   c.Filename,
		MaxSizeMB:  c.MaxSizeMB,
		MaxBackups: c.MaxBackups,
		MaxAgeDays: c.MaxAgeDays,
		Compress:   c.Compress,
	}
}

// StoreConfig 关系型存储配置
// postgrest: 通过 REST 网关访问托管数据库；sql: 通过 gorm 直连 database 配置
type StoreConfig struct {
	Driver         string `mapstructure:"driver" validate:"oneof=postgrest sql"`
	URL            string `mapstructure:"url" validate:"omitempty,url"`
	ServiceRoleKey string `mapstructure:"service_role_key"`
	AnonKey        string `mapstructure:"anon_key"`
	Schema         string `mapstructure:"schema"`
	TimeoutMS      int    `mapstructure:"timeout_ms" validate:"gte=0"`
}

// Credential 优先使用服务端密钥，缺失时回退到匿名密钥
func (c StoreConfig) Credential() string {
	if key := strings.TrimSpace(c.ServiceRoleKey); key != "" {
		return key
	}
	return strings.TrimSpace(c.AnonKey)
}

// DatabasePoolConfig 数据库连接池配置
type DatabasePoolConfig struct {
	MaxOpenConns           int `mapstructure:"max_open_conns"`
	MaxIdleConns           int `mapstructure:"max_idle_conns"`
	ConnMaxLifetimeSeconds int `mapstructure:"conn_max_lifetime_seconds"`
	ConnMaxIdleTimeSeconds int `mapstructure:"conn_max_idle_time_seconds"`
}

// DatabaseConfig 数据库配置（store.driver=sql 时使用）
type DatabaseConfig struct {
	Driver string             `mapstructure:"driver" validate:"oneof=sqlite postgres postgresql"`
	DSN    string             `mapstructure:"dsn"`
	Pool   DatabasePoolConfig `mapstructure:"pool"`
}

// RedisConfig Redis 配置
type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

// CORSConfig 跨域配置
type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

// FeedConfig 列表与缓存策略配置
type FeedConfig struct {
	DefaultPageSize              int `mapstructure:"default_page_size" validate:"gte=1,lte=100"`
	MaxPageSize                  int `mapstructure:"max_page_size" validate:"gte=1,lte=100"`
	CacheMaxAgeSeconds           int `mapstructure:"cache_max_age_seconds" validate:"gte=0"`
	PostCacheMaxAgeSeconds       int `mapstructure:"post_cache_max_age_seconds" validate:"gte=0"`
	ComunidadeCacheMaxAgeSeconds int `mapstructure:"comunidade_cache_max_age_seconds" validate:"gte=0"`
}

var (
	ErrStoreURLMissing        = errors.New("store url is required (store.url / SUPABASE_URL)")
	ErrStoreCredentialMissing = errors.New("store credential is required (SUPABASE_SERVICE_ROLE_KEY or SUPABASE_ANON_KEY)")
	ErrDatabaseDSNMissing     = errors.New("database dsn is required when store.driver=sql")
)

var validate = validator.New()

// Validate 启动前校验配置，缺少存储连接信息时直接失败
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if err := validate.Struct(c); err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) && len(vErrs) > 0 {
			first := vErrs[0]
			return fmt.Errorf("config field %s failed on rule %s", first.Namespace(), first.Tag())
		}
		return err
	}
	if c.Feed.DefaultPageSize > c.Feed.MaxPageSize {
		return fmt.Errorf("feed.default_page_size (%d) exceeds feed.max_page_size (%d)", c.Feed.DefaultPageSize, c.Feed.MaxPageSize)
	}
	switch c.Store.Driver {
	case StoreDriverPostgREST:
		if strings.TrimSpace(c.Store.URL) == "" {
			return ErrStoreURLMissing
		}
		if c.Store.Credential() == "" {
			return ErrStoreCredentialMissing
		}
	case StoreDriverSQL:
		if strings.TrimSpace(c.Database.DSN) == "" {
			return ErrDatabaseDSNMissing
		}
	}
	return nil
}

// Load 从 config.yml 加载配置
func Load() *Config {
	return load(viper.New())
}

func load(v *viper.Viper) *Config {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")     // 从当前目录查找
	v.AddConfigPath("./")    // 备用路径
	v.AddConfigPath("../")   // 如果从 cmd/server 运行
	v.AddConfigPath("./etc") // etc 文件夹

	setDefaults(v)

	// 环境变量支持
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	// 兼容原有托管数据库的环境变量
	_ = v.BindEnv("store.url", "STORE_URL", "SUPABASE_URL")
	_ = v.BindEnv("store.service_role_key", "STORE_SERVICE_ROLE_KEY", "SUPABASE_SERVICE_ROLE_KEY")
	_ = v.BindEnv("store.anon_key", "STORE_ANON_KEY", "SUPABASE_ANON_KEY")

	if err := v.ReadInConfig(); err != nil {
		logger.Warnw("config_file_read_failed",
			"error", err,
			"fallback", "env_or_defaults",
		)
	} else {
		logger.Infow("config_file_loaded", "file", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		logger.Errorw("config_unmarshal_failed", "error", err)
		panic(fmt.Errorf("config unmarshal failed: %w", err))
	}
	cfg.Store.Driver = strings.ToLower(strings.TrimSpace(cfg.Store.Driver))
	cfg.Database.Driver = strings.ToLower(strings.TrimSpace(cfg.Database.Driver))
	return &cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("log.dir", "")
	v.SetDefault("log.filename", "app.log")
	v.SetDefault("log.max_size_mb", 100)
	v.SetDefault("log.max_backups", 7)
	v.SetDefault("log.max_age_days", 30)
	v.SetDefault("log.compress", true)
	v.SetDefault("store.driver", StoreDriverPostgREST)
	v.SetDefault("store.url", "")
	v.SetDefault("store.service_role_key", "")
	v.SetDefault("store.anon_key", "")
	v.SetDefault("store.schema", "public")
	v.SetDefault("store.timeout_ms", 10000)
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "./db/feed.db")
	v.SetDefault("database.pool.max_open_conns", 1)
	v.SetDefault("database.pool.max_idle_conns", 1)
	v.SetDefault("database.pool.conn_max_lifetime_seconds", 0)
	v.SetDefault("database.pool.conn_max_idle_time_seconds", 0)
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "127.0.0.1")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.prefix", "feed")
	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("cors.allowed_methods", []string{"GET", "OPTIONS"})
	v.SetDefault("cors.allowed_headers", []string{"Content-Type", "Authorization"})
	v.SetDefault("cors.allow_credentials", false)
	v.SetDefault("cors.max_age", 0)
	v.SetDefault("feed.default_page_size", 10)
	v.SetDefault("feed.max_page_size", 100)
	v.SetDefault("feed.cache_max_age_seconds", 15)
	v.SetDefault("feed.post_cache_max_age_seconds", 10)
	v.SetDefault("feed.comunidade_cache_max_age_seconds", 30)
}
