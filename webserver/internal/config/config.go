package config

import (
	"strings"
	"time"

	pkgconfig "github.com/jaconsta/rag-gallery/pkg/config"
	"github.com/jaconsta/rag-gallery/pkg/storage"
)

type Config struct {
	Log      LogConfig            `mapstructure:"log"`
	Server   ServerConfig         `mapstructure:"server"`
	Storage  storage.BucketConfig `mapstructure:"storage"`
	Database DatabaseConfig       `mapstructure:"database"`
	Auth     AuthConfig           `mapstructure:"auth"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type ServerConfig struct {
	Host     string `mapstructure:"host"`
	GRPCPort int    `mapstructure:"grpc_port"`
	HTTPPort int    `mapstructure:"http_port"`
}

type DatabaseConfig struct {
	DSN      string `mapstructure:"dsn"`
	MaxConns int32  `mapstructure:"max_conns"`
}

type AuthConfig struct {
	SessionTTL time.Duration `mapstructure:"session_ttl"`
}

func Load() (*Config, error) {
	v, err := pkgconfig.Load("./config", "config")
	if err != nil {
		return nil, err
	}

	v.SetDefault("log.level", "info")
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.grpc_port", 9090)
	v.SetDefault("server.http_port", 8080)
	v.SetDefault("storage.region", "us-east-1")
	v.SetDefault("storage.use_path_style", true)
	v.SetDefault("storage.feeder_bucket", "feeder")
	v.SetDefault("storage.ragged_bucket", "ragged")
	v.SetDefault("database.max_conns", 5)
	v.SetDefault("auth.session_ttl", "120m")

	v.BindEnv("server.host", "SERVER_HOST")
	v.BindEnv("server.grpc_port", "GRPC_PORT")
	v.BindEnv("server.http_port", "HTTP_PORT")
	v.BindEnv("storage.endpoint", "MINIO_ENDPOINT")
	v.BindEnv("storage.access_key_id", "MINIO_ACCESS_KEY")
	v.BindEnv("storage.secret_access_key", "MINIO_SECRET_KEY")
	v.BindEnv("storage.public_url", "MINIO_PUBLIC_URL")
	v.BindEnv("storage.check_ssl", "MINIO_CHECK_SSL")
	v.BindEnv("storage.feeder_bucket", "MINIO_FEEDER_BUCKET")
	v.BindEnv("storage.ragged_bucket", "MINIO_RAGGED_BUCKET")
	v.BindEnv("database.dsn", "DATABASE_URL")
	v.BindEnv("auth.session_ttl", "AUTH_SESSION_TTL")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	// MINIO_CHECK_SSL=false turns certificate verification off.
	if checkSSL := v.GetString("storage.check_ssl"); checkSSL != "" {
		cfg.Storage.InsecureSkipTLS = strings.EqualFold(checkSSL, "false")
	}
	return &cfg, nil
}
