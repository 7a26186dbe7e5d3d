package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	App        App
	Log        Log
	HTTP       HTTP
	Probe      Probe
	Metrics    Metrics
	Dictionary Dictionary
	Postgres   Postgres
	Redis      Redis
	S3         S3
	Asynq      Asynq
}

type App struct {
	Name    string `env:"APP_NAME" envDefault:"pwstrength"`
	Version string `env:"APP_VERSION" envDefault:"dev"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
	// FieldMaxLen обрезает дампы запросов и ответов в логах
	FieldMaxLen int `env:"LOG_FIELD_MAX_LEN" envDefault:"2048"`
}

// SlogLevel возвращает уровень логирования, info при ошибке разбора.
func (l Log) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo
	}

	return level
}

type HTTP struct {
	ListenAddress   string        `env:"HTTP_LISTEN_ADDRESS" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"10s"`
	MaxBodyBytes    int64         `env:"HTTP_MAX_BODY_BYTES" envDefault:"16384"`
}

type Probe struct {
	ListenAddress string `env:"PROBE_LISTEN_ADDRESS" envDefault:":8081"`
}

type Metrics struct {
	ListenAddress string `env:"METRICS_LISTEN_ADDRESS" envDefault:":9090"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	if err := config.Dictionary.validate(); err != nil {
		return Config{}, fmt.Errorf("dictionary: %w", err)
	}

	return config, nil
}
