package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Kafka      KafkaConfig      `mapstructure:"kafka"`
	Auth       AuthConfig       `mapstructure:"auth"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Engine     EngineConfig     `mapstructure:"engine"`
	Monitoring MonitoringConfig `mapstructure:"monitoring"`
	Security   SecurityConfig   `mapstructure:"security"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

type DatabaseConfig struct {
	URL            string        `mapstructure:"url"`
	MaxConnections int           `mapstructure:"max_connections"`
	MaxIdleTime    time.Duration `mapstructure:"max_idle_time"`
	MaxLifetime    time.Duration `mapstructure:"max_lifetime"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
}

type RedisConfig struct {
	Hot  RedisInstanceConfig `mapstructure:"hot"`
	Warm RedisInstanceConfig `mapstructure:"warm"`
}

type RedisInstanceConfig struct {
	URL        string        `mapstructure:"url"`
	MaxRetries int           `mapstructure:"max_retries"`
	PoolSize   int           `mapstructure:"pool_size"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

type KafkaConfig struct {
	Brokers []string `mapstructure:"brokers"`
	Topics  struct {
		WearEvents    string `mapstructure:"wear_events"`
		WearEventsDLQ string `mapstructure:"wear_events_dlq"`
	} `mapstructure:"topics"`
}

type AuthConfig struct {
	JWTSecret string          `mapstructure:"jwt_secret"`
	TokenTTL  time.Duration   `mapstructure:"token_ttl"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`

	// APIKeys maps an API key to its tier (free, premium). Keys live in
	// deployment config until a proper key store exists.
	APIKeys map[string]string `mapstructure:"api_keys"`
}

type RateLimitConfig struct {
	Default int           `mapstructure:"default"`
	Premium int           `mapstructure:"premium"`
	Window  time.Duration `mapstructure:"window"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// EngineConfig carries every tunable of the recommendation engine. The
// scoring weights are policy, not structure: they must sum to 1.0 and are
// surfaced here so deployments can calibrate them without a rebuild.
type EngineConfig struct {
	Weights        WeightConfig         `mapstructure:"weights"`
	Candidates     CandidateConfig      `mapstructure:"candidates"`
	Sustainability SustainabilityConfig `mapstructure:"sustainability"`
	DefaultLimit   int                  `mapstructure:"default_limit"`
	CacheTTL       time.Duration        `mapstructure:"cache_ttl"`
}

type WeightConfig struct {
	Color   float64 `mapstructure:"color"`
	Event   float64 `mapstructure:"event"`
	Weather float64 `mapstructure:"weather"`
	Usage   float64 `mapstructure:"usage"`
}

type CandidateConfig struct {
	ItemsPerSlot  int `mapstructure:"items_per_slot"`
	MaxCandidates int `mapstructure:"max_candidates"`
}

type SustainabilityConfig struct {
	UsageTarget       float64 `mapstructure:"usage_target"`
	RarelyWornBelow   int     `mapstructure:"rarely_worn_below"`
	MostWornListSize  int     `mapstructure:"most_worn_list_size"`
	RarelyWornListCap int     `mapstructure:"rarely_worn_list_cap"`
}

type MonitoringConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	MetricsPath string `mapstructure:"metrics_path"`
}

type SecurityConfig struct {
	CORS CORSConfig `mapstructure:"cors"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	AllowedMethods []string `mapstructure:"allowed_methods"`
	AllowedHeaders []string `mapstructure:"allowed_headers"`
}

func Load() (*Config, error) {
	viper.SetConfigName("app")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")

	setDefaults()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		// Config file is optional, continue with env vars and defaults
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults() {
	// Server defaults
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.mode", "development")

	// Database defaults
	viper.SetDefault("database.max_connections", 25)
	viper.SetDefault("database.max_idle_time", "15m")
	viper.SetDefault("database.max_lifetime", "1h")
	viper.SetDefault("database.connect_timeout", "10s")

	// Redis defaults
	viper.SetDefault("redis.hot.max_retries", 3)
	viper.SetDefault("redis.hot.pool_size", 10)
	viper.SetDefault("redis.hot.timeout", "5s")
	viper.SetDefault("redis.warm.max_retries", 3)
	viper.SetDefault("redis.warm.pool_size", 5)
	viper.SetDefault("redis.warm.timeout", "10s")

	// Kafka defaults
	viper.SetDefault("kafka.topics.wear_events", "wear-events")
	viper.SetDefault("kafka.topics.wear_events_dlq", "wear-events-dlq")

	// Auth defaults
	viper.SetDefault("auth.token_ttl", "24h")
	viper.SetDefault("auth.rate_limit.default", 1000)
	viper.SetDefault("auth.rate_limit.premium", 10000)
	viper.SetDefault("auth.rate_limit.window", "1h")

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "text")

	// Engine scoring weights. Documented policy: these sum to 1.0.
	viper.SetDefault("engine.weights.color", 0.4)
	viper.SetDefault("engine.weights.event", 0.25)
	viper.SetDefault("engine.weights.weather", 0.2)
	viper.SetDefault("engine.weights.usage", 0.15)

	// Candidate generation caps keep a single call bounded
	viper.SetDefault("engine.candidates.items_per_slot", 3)
	viper.SetDefault("engine.candidates.max_candidates", 50)

	// Sustainability scoring
	viper.SetDefault("engine.sustainability.usage_target", 10.0)
	viper.SetDefault("engine.sustainability.rarely_worn_below", 2)
	viper.SetDefault("engine.sustainability.most_worn_list_size", 5)
	viper.SetDefault("engine.sustainability.rarely_worn_list_cap", 10)

	viper.SetDefault("engine.default_limit", 5)
	viper.SetDefault("engine.cache_ttl", "15m")

	// Monitoring defaults
	viper.SetDefault("monitoring.enabled", true)
	viper.SetDefault("monitoring.metrics_path", "/metrics")

	// Security defaults
	viper.SetDefault("security.cors.allowed_origins", []string{"*"})
	viper.SetDefault("security.cors.allowed_methods", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})
	viper.SetDefault("security.cors.allowed_headers", []string{"*"})
}
