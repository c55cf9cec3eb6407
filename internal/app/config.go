package app

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/vladislavdragonenkov/business-service/internal/domain"
)

// StorageDriver выбирает backend хранилищ.
type StorageDriver string

const (
	// StorageDriverDatabase — PostgreSQL для заказов и MongoDB для товаров.
	StorageDriverDatabase StorageDriver = "database"
	// StorageDriverMemory — in-memory хранилища для локальной разработки.
	StorageDriverMemory StorageDriver = "memory"
)

// Config описывает настройки запуска приложения.
type Config struct {
	ServerHost  string
	ServerPort  int
	MetricsAddr string

	StorageDriver StorageDriver

	PostgresHost     string
	PostgresPort     int
	PostgresUser     string
	PostgresPassword string
	PostgresDatabase string
	PostgresMaxConns int

	MongoURI      string
	MongoDatabase string

	KafkaBrokers []string

	LogLevel string
}

// DefaultConfig возвращает настройки для локального запуска.
func DefaultConfig() Config {
	return Config{
		ServerHost:       "127.0.0.1",
		ServerPort:       8000,
		MetricsAddr:      ":9090",
		StorageDriver:    StorageDriverDatabase,
		PostgresHost:     "localhost",
		PostgresPort:     5432,
		PostgresUser:     "postgres",
		PostgresPassword: "postgres",
		PostgresDatabase: "business_service",
		PostgresMaxConns: 5,
		MongoURI:         "mongodb://localhost:27017",
		MongoDatabase:    "business_service",
		LogLevel:         "info",
	}
}

// LoadConfig собирает конфигурацию из переменных окружения поверх дефолтов.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	cfg.ServerHost = envString("SERVER_HOST", cfg.ServerHost)
	cfg.MetricsAddr = envString("METRICS_ADDR", cfg.MetricsAddr)
	cfg.PostgresHost = envString("POSTGRES_HOST", cfg.PostgresHost)
	cfg.PostgresUser = envString("POSTGRES_USER", cfg.PostgresUser)
	cfg.PostgresPassword = envString("POSTGRES_PASSWORD", cfg.PostgresPassword)
	cfg.PostgresDatabase = envString("POSTGRES_DB", cfg.PostgresDatabase)
	cfg.MongoURI = envString("MONGODB_URI", cfg.MongoURI)
	cfg.MongoDatabase = envString("MONGODB_DATABASE", cfg.MongoDatabase)
	cfg.LogLevel = envString("LOG_LEVEL", cfg.LogLevel)

	if v := os.Getenv("STORAGE_DRIVER"); v != "" {
		cfg.StorageDriver = StorageDriver(v)
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		cfg.KafkaBrokers = strings.Split(v, ",")
	}

	var err error
	if cfg.ServerPort, err = envInt("SERVER_PORT", cfg.ServerPort); err != nil {
		return Config{}, err
	}
	if cfg.PostgresPort, err = envInt("POSTGRES_PORT", cfg.PostgresPort); err != nil {
		return Config{}, err
	}
	if cfg.PostgresMaxConns, err = envInt("POSTGRES_MAX_CONNECTIONS", cfg.PostgresMaxConns); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// ServerAddr возвращает адрес API-сервера.
func (c Config) ServerAddr() string {
	return net.JoinHostPort(c.ServerHost, strconv.Itoa(c.ServerPort))
}

// PostgresDSN собирает строку подключения к PostgreSQL.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.PostgresUser, c.PostgresPassword, c.PostgresHost, c.PostgresPort, c.PostgresDatabase)
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not an integer", domain.ErrConfig, key, v)
	}
	return parsed, nil
}
