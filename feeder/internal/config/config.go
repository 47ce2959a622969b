package config

import (
	"strings"

	pkgconfig "github.com/jaconsta/rag-gallery/pkg/config"
	"github.com/jaconsta/rag-gallery/pkg/storage"
)

type Config struct {
	Log      LogConfig             `mapstructure:"log"`
	Kafka    KafkaConfig           `mapstructure:"kafka"`
	Storage  storage.BucketConfig  `mapstructure:"storage"`
	Database DatabaseConfig        `mapstructure:"database"`
	LLM      LLMConfig             `mapstructure:"llm"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type KafkaConfig struct {
	Brokers       string `mapstructure:"brokers"`
	Topic         string `mapstructure:"topic"`
	ConsumerGroup string `mapstructure:"consumer_group"`
}

type DatabaseConfig struct {
	DSN      string `mapstructure:"dsn"`
	MaxConns int32  `mapstructure:"max_conns"`
}

type LLMConfig struct {
	Backend string `mapstructure:"backend"` // "openai" or "ollama"
	OpenAI  struct {
		APIKey string `mapstructure:"api_key"`
		Model  string `mapstructure:"model"`
	} `mapstructure:"openai"`
	Ollama struct {
		BaseURL string `mapstructure:"base_url"`
		Model   string `mapstructure:"model"`
	} `mapstructure:"ollama"`
}

func Load() (*Config, error) {
	v, err := pkgconfig.Load("./config", "config")
	if err != nil {
		return nil, err
	}

	v.SetDefault("log.level", "info")
	v.SetDefault("kafka.brokers", "localhost:9092")
	v.SetDefault("kafka.topic", "minio-events")
	v.SetDefault("kafka.consumer_group", "feeder")
	v.SetDefault("storage.region", "us-east-1")
	v.SetDefault("storage.use_path_style", true)
	v.SetDefault("storage.feeder_bucket", "feeder")
	v.SetDefault("storage.ragged_bucket", "ragged")
	v.SetDefault("database.max_conns", 5)
	v.SetDefault("llm.backend", "ollama")
	v.SetDefault("llm.openai.model", "gpt-4o-mini")
	v.SetDefault("llm.ollama.base_url", "http://localhost:11434")
	v.SetDefault("llm.ollama.model", "llava")

	v.BindEnv("kafka.brokers", "KAFKA_BROKERS")
	v.BindEnv("kafka.topic", "KAFKA_TOPIC")
	v.BindEnv("kafka.consumer_group", "KAFKA_CONSUMER_GROUP")
	v.BindEnv("storage.endpoint", "MINIO_ENDPOINT")
	v.BindEnv("storage.access_key_id", "MINIO_ACCESS_KEY")
	v.BindEnv("storage.secret_access_key", "MINIO_SECRET_KEY")
	v.BindEnv("storage.public_url", "MINIO_PUBLIC_URL")
	v.BindEnv("storage.check_ssl", "MINIO_CHECK_SSL")
	v.BindEnv("storage.feeder_bucket", "MINIO_FEEDER_BUCKET")
	v.BindEnv("storage.ragged_bucket", "MINIO_RAGGED_BUCKET")
	v.BindEnv("database.dsn", "DATABASE_URL")
	v.BindEnv("llm.backend", "LLM_BACKEND")
	v.BindEnv("llm.openai.api_key", "OPENAI_API_KEY")
	v.BindEnv("llm.openai.model", "OPENAI_MODEL")
	v.BindEnv("llm.ollama.base_url", "OLLAMA_BASE_URL")
	v.BindEnv("llm.ollama.model", "OLLAMA_MODEL")

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
