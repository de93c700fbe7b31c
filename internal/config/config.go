package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

const (
	DefaultPort             = 3030
	DefaultSeedFilePath     = "movies.json"
	DefaultRetryMaxAttempts = 3
	DefaultRateLimitBurst   = 20
)

// DefaultAllowedOrigins origin-ы, которым разрешены кросс-доменные запросы по умолчанию
var DefaultAllowedOrigins = OriginList{
	"http://localhost:8080",
	"http://localhost:1234",
	"https://movies.com",
}

// Config содержит настройки приложения
type Config struct {
	Port           int           `env:"PORT"`
	SeedFilePath   string        `env:"SEED_FILE_PATH"`
	AllowedOrigins OriginList    `env:"CORS_ALLOWED_ORIGINS"`
	LogLevel       zapcore.Level `env:"LOG_LEVEL"`
	Retry          RetryConfig
	RateLimit      RateLimitConfig
}

// RetryConfig настройки повторных попыток генерации идентификатора
type RetryConfig struct {
	MaxAttempts int `env:"RETRY_MAX_ATTEMPTS"`
}

// RateLimitConfig ограничение частоты запросов на один IP; RPS = 0 отключает ограничение
type RateLimitConfig struct {
	RPS   float64 `env:"RATE_LIMIT_RPS"`
	Burst int     `env:"RATE_LIMIT_BURST"`
}

// NewDefaultConfig создает конфигурацию со значениями по умолчанию
func NewDefaultConfig() *Config {
	origins := make(OriginList, len(DefaultAllowedOrigins))
	copy(origins, DefaultAllowedOrigins)

	return &Config{
		Port:           DefaultPort,
		SeedFilePath:   DefaultSeedFilePath,
		AllowedOrigins: origins,
		LogLevel:       zapcore.InfoLevel,
		Retry: RetryConfig{
			MaxAttempts: DefaultRetryMaxAttempts,
		},
		RateLimit: RateLimitConfig{
			Burst: DefaultRateLimitBurst,
		},
	}
}

// DotenvFile файл с переменными, который читается из рабочей директории, если существует
const DotenvFile = ".env"

// Load загружает конфигурацию. Порядок применения: значения по умолчанию, файл .env,
// флаги командной строки, переменные окружения. Каждый следующий источник перекрывает предыдущий.
func Load() (*Config, error) {
	dotenv, err := readDotenv(DotenvFile)
	if err != nil {
		return nil, err
	}

	return load(os.Args[1:], dotenv)
}

// readDotenv читает файл без изменения окружения процесса; отсутствие файла не ошибка
func readDotenv(path string) (map[string]string, error) {
	values, err := godotenv.Read(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return values, nil
}

func load(args []string, dotenv map[string]string) (*Config, error) {
	cfg := NewDefaultConfig()

	if len(dotenv) > 0 {
		if err := env.ParseWithOptions(cfg, env.Options{Environment: dotenv}); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", DotenvFile, err)
		}
	}

	fs := flag.NewFlagSet("movies", flag.ContinueOnError)
	fs.IntVar(&cfg.Port, "p", cfg.Port, "port to run HTTP server")
	fs.StringVar(&cfg.SeedFilePath, "f", cfg.SeedFilePath, "path to JSON file with initial movies")
	fs.Var(&cfg.AllowedOrigins, "o", "comma separated list of allowed CORS origins")
	fs.Var(&cfg.LogLevel, "l", "log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.Retry.MaxAttempts < 1 {
		return errors.New("retry max attempts must be positive")
	}
	if c.RateLimit.RPS < 0 {
		return errors.New("rate limit must not be negative")
	}
	if c.RateLimit.RPS > 0 && c.RateLimit.Burst < 1 {
		return errors.New("rate limit burst must be positive")
	}
	return nil
}

// Address возвращает адрес, на котором слушает HTTP сервер
func (c *Config) Address() string {
	return ":" + strconv.Itoa(c.Port)
}
