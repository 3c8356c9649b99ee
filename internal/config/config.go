package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	AppEnv   string         `mapstructure:"app_env"`
	Port     string         `mapstructure:"port"`
	Database DatabaseConfig `mapstructure:"db"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Kafka    KafkaConfig    `mapstructure:"kafka"`
	Auth     AuthConfig     `mapstructure:"jwt"`
	Upload   UploadConfig   `mapstructure:"upload"`
	Log      LogConfig      `mapstructure:"log"`
	Outbox   OutboxConfig   `mapstructure:"outbox"`
}

type DatabaseConfig struct {
	Host               string `mapstructure:"host"`
	Port               int    `mapstructure:"port"`
	User               string `mapstructure:"user"`
	Password           string `mapstructure:"password"`
	Name               string `mapstructure:"name"`
	SSLMode            string `mapstructure:"sslmode"`
	MaxOpenConns       int    `mapstructure:"max_open_conns"`
	MaxIdleConns       int    `mapstructure:"max_idle_conns"`
	ConnectTimeoutSec  int    `mapstructure:"connect_timeout"`
	StatementTimeoutMs int    `mapstructure:"statement_timeout_ms"`
	MaxRetries         uint64 `mapstructure:"max_retries"`
}

// DSN bounds every round trip: connect_timeout for dialing and
// statement_timeout for each statement, so a stuck query inside a
// transaction aborts the whole unit.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s connect_timeout=%d statement_timeout=%d",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode, c.ConnectTimeoutSec, c.StatementTimeoutMs,
	)
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type KafkaConfig struct {
	Broker string `mapstructure:"broker"`
}

type AuthConfig struct {
	Secret string `mapstructure:"secret"`
}

type UploadConfig struct {
	Dir           string `mapstructure:"dir"`
	PhotoDir      string `mapstructure:"photo_dir"`
	RatePerMinute int    `mapstructure:"rate_per_minute"`
	Burst         int    `mapstructure:"burst"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type OutboxConfig struct {
	PollInterval time.Duration `mapstructure:"poll_interval"`
	BatchSize    int           `mapstructure:"batch_size"`
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// Load reads an optional .env file and then the environment. Keys map to
// upper snake case variables: db.host -> DB_HOST.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv only resolves keys viper already knows about, so every
	// key needs a default before Unmarshal.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_env", "production")
	v.SetDefault("port", "3000")

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "")
	v.SetDefault("db.name", "coope")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open_conns", 25)
	v.SetDefault("db.max_idle_conns", 10)
	v.SetDefault("db.connect_timeout", 5)
	v.SetDefault("db.statement_timeout_ms", 15000)
	v.SetDefault("db.max_retries", 5)

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("kafka.broker", "localhost:9092")
	v.SetDefault("jwt.secret", "")
	v.SetDefault("upload.dir", "uploads/documentos")
	v.SetDefault("upload.photo_dir", "uploads/fotos")
	v.SetDefault("upload.rate_per_minute", 30)
	v.SetDefault("upload.burst", 5)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("outbox.poll_interval", "3s")
	v.SetDefault("outbox.batch_size", 50)
}

func (c *Config) validate() error {
	if c.Auth.Secret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.Database.MaxOpenConns <= 0 {
		return fmt.Errorf("DB_MAX_OPEN_CONNS must be positive")
	}
	return nil
}
