package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string `env:"ENV" envDefault:"development" validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Postgres Postgres `validate:"required"`

	Kafka Kafka

	Web Web `validate:"required"`

	Telemetry Telemetry
}

type Http struct {
	Host string `env:"HOST" envDefault:"localhost" validate:"required,hostname|ip"`
	Port string `env:"PORT" envDefault:"8080" validate:"required,numeric"`
}

type CORS struct {
	AllowedOrigins []string `env:"ALLOWED_CORS_ORIGINS" envDefault:"http://localhost:3000" envSeparator:"," validate:"required,min=1,dive,url"`
}

type Postgres struct {
	Host     string `env:"POSTGRES_HOST" envDefault:"localhost" validate:"required,hostname|ip"`
	Port     int    `env:"POSTGRES_PORT" envDefault:"5432" validate:"required,gt=0,lte=65535"`
	DBName   string `env:"POSTGRES_DB" envDefault:"orders" validate:"required"`
	User     string `env:"POSTGRES_USER" validate:"required"`
	Password string `env:"POSTGRES_PASSWORD" validate:"required"`

	SSLMode string `env:"POSTGRES_SSL_MODE" envDefault:"disable" validate:"required,oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `env:"POSTGRES_MAX_OPEN_CONNS" envDefault:"25" validate:"gte=1"`
	MaxIdleConns    int           `env:"POSTGRES_MAX_IDLE_CONNS" envDefault:"25" validate:"gte=0"`
	ConnMaxLifetime time.Duration `env:"POSTGRES_CONN_MAX_LIFETIME" envDefault:"5m" validate:"gte=0"`
}

type Kafka struct {
	Enabled bool     `env:"KAFKA_ENABLED" envDefault:"false"`
	GroupID string   `env:"KAFKA_GROUP_ID" envDefault:"order-service" validate:"required_if=Enabled true"`
	Brokers []string `env:"KAFKA_BROKERS" envDefault:"localhost:9092" envSeparator:"," validate:"required_if=Enabled true,dive,hostname_port"`
	Topic   string   `env:"KAFKA_TOPIC" envDefault:"orders" validate:"required_if=Enabled true"`

	ReaderMaxWait time.Duration `env:"KAFKA_READER_MAX_WAIT" envDefault:"10ms" validate:"gte=0"`
	BatchTimeout  time.Duration `env:"KAFKA_BATCH_TIMEOUT" envDefault:"10ms" validate:"gte=0"`
}

type Web struct {
	// адрес API, к которому ходит веб-интерфейс
	APIBaseURL     string        `env:"WEB_API_BASE_URL" envDefault:"http://localhost:8080" validate:"required,url"`
	UserID         string        `env:"WEB_USER_ID" envDefault:"user123" validate:"required"`
	RequestTimeout time.Duration `env:"WEB_REQUEST_TIMEOUT" envDefault:"5s" validate:"gt=0"`
}

type Telemetry struct {
	Enabled     bool    `env:"OTEL_ENABLED" envDefault:"false"`
	Endpoint    string  `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:"localhost:4318" validate:"required_if=Enabled true"`
	ServiceName string  `env:"OTEL_SERVICE_NAME" envDefault:"microcart" validate:"required"`
	Insecure    bool    `env:"OTEL_EXPORTER_OTLP_INSECURE" envDefault:"true"`
	SampleRatio float64 `env:"OTEL_TRACES_SAMPLE_RATIO" envDefault:"1" validate:"gte=0,lte=1"`
}

func New() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}
