package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	DB        DBConfig
	Redis     RedisConfig
	Kafka     KafkaConfig
	JWT       JWTConfig
	S3        S3Config
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Env            string
	Port           string
	AllowedOrigins []string
}

func (a AppConfig) IsProduction() bool {
	return a.Env == "production"
}

type DBConfig struct {
	Host       string
	Port       string
	User       string
	Password   string
	Name       string
	SSLMode    string
	MaxRetries int
}

func (d DBConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode,
	)
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type KafkaConfig struct {
	Broker        string
	ConsumerGroup string
	PollInterval  time.Duration
	// OutboxRetention is how long published outbox rows are kept.
	OutboxRetention time.Duration
}

type JWTConfig struct {
	Secret     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

type S3Config struct {
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	PresignTTL      time.Duration
}

func (s S3Config) Enabled() bool {
	return s.Bucket != ""
}

type RateLimitConfig struct {
	LoginPerSecond float64
	LoginBurst     int
}

// Load reads .env when present, then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		App: AppConfig{
			Env:            v.GetString("app.env"),
			Port:           v.GetString("port"),
			AllowedOrigins: splitList(v.GetString("cors.allowed_origins")),
		},
		DB: DBConfig{
			Host:       v.GetString("db.host"),
			Port:       v.GetString("db.port"),
			User:       v.GetString("db.user"),
			Password:   v.GetString("db.password"),
			Name:       v.GetString("db.name"),
			SSLMode:    v.GetString("db.sslmode"),
			MaxRetries: v.GetInt("db.max_retries"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("redis.addr"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Kafka: KafkaConfig{
			Broker:          v.GetString("kafka.broker"),
			ConsumerGroup:   v.GetString("kafka.consumer_group"),
			PollInterval:    v.GetDuration("kafka.poll_interval"),
			OutboxRetention: v.GetDuration("kafka.outbox_retention"),
		},
		JWT: JWTConfig{
			Secret:     v.GetString("jwt.secret"),
			AccessTTL:  v.GetDuration("jwt.access_ttl"),
			RefreshTTL: v.GetDuration("jwt.refresh_ttl"),
		},
		S3: S3Config{
			Region:          v.GetString("s3.region"),
			Bucket:          v.GetString("s3.bucket"),
			AccessKeyID:     v.GetString("aws.access_key_id"),
			SecretAccessKey: v.GetString("aws.secret_access_key"),
			PresignTTL:      v.GetDuration("s3.presign_ttl"),
		},
		RateLimit: RateLimitConfig{
			LoginPerSecond: v.GetFloat64("ratelimit.login_per_second"),
			LoginBurst:     v.GetInt("ratelimit.login_burst"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "development")
	v.SetDefault("port", "3000")
	v.SetDefault("cors.allowed_origins", "http://localhost:5173")
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", "5432")
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.name", "certtrack")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_retries", 5)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("kafka.consumer_group", "certtrack-certificate-activity")
	v.SetDefault("kafka.poll_interval", 3*time.Second)
	v.SetDefault("kafka.outbox_retention", 72*time.Hour)
	v.SetDefault("jwt.access_ttl", 15*time.Minute)
	v.SetDefault("jwt.refresh_ttl", 7*24*time.Hour)
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.presign_ttl", 15*time.Minute)
	v.SetDefault("ratelimit.login_per_second", 0.2)
	v.SetDefault("ratelimit.login_burst", 5)
}

func (c *Config) validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.JWT.AccessTTL <= 0 || c.JWT.RefreshTTL <= 0 {
		return fmt.Errorf("JWT_ACCESS_TTL and JWT_REFRESH_TTL must be positive")
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
