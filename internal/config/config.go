package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"

	"github.com/BurntSushi/toml"
)

// EnvConfigPath переменная окружения с путем к файлу конфигурации
const EnvConfigPath = "CONFIG_PATH"

// DefaultPath путь к конфигурации по умолчанию
const DefaultPath = "config.toml"

// Драйверы хранилищ
const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"

	LocalStoreDriverMemory = "memory"
	LocalStoreDriverFile   = "file"
	LocalStoreDriverRedis  = "redis"
)

var (
	// ErrReadConfig возвращается при ошибке чтения или разбора файла
	ErrReadConfig = errors.New("config: failed to read config")

	// ErrInvalidConfig возвращается при недопустимых значениях
	ErrInvalidConfig = errors.New("config: invalid config")
)

type Config struct {
	Server       ServerConfig       `toml:"server"`
	Database     DatabaseConfig     `toml:"database"`
	Storage      StorageConfig      `toml:"storage"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	RateLimit    RateLimitConfig    `toml:"ratelimit"`
	Catalog      CatalogConfig      `toml:"catalog"`
	Client       ClientConfig       `toml:"client"`
	LocalStore   LocalStoreConfig   `toml:"localstore"`
	Redis        RedisConfig        `toml:"redis"`
	Confirmation ConfirmationConfig `toml:"confirmation"`
}

// ServerConfig таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения в формате URL для lib/pq и golang-migrate
func (d DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:     d.DBName,
		RawQuery: url.Values{"sslmode": []string{d.SSLMode}}.Encode(),
	}
	return u.String()
}

// StorageConfig выбор хранилища ledger
type StorageConfig struct {
	Driver      string `toml:"driver"` // postgres | memory
	AutoMigrate bool   `toml:"auto_migrate"`
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// RateLimitConfig ограничение частоты изменяющих запросов с одного IP
type RateLimitConfig struct {
	Enabled    bool    `toml:"enabled"`
	RPS        float64 `toml:"rps"`
	Burst      int     `toml:"burst"`
	// TrustProxy брать IP клиента из X-Forwarded-For (только за своим прокси)
	TrustProxy bool    `toml:"trust_proxy"`
}

// CatalogConfig пустой File - встроенный справочник
type CatalogConfig struct {
	File string `toml:"file"`
}

// ClientConfig настройки HTTP-клиента ledger для консольного клиента
// UsersURL провайдер учетных записей для login по паролю (пусто - вход только по флагам)
type ClientConfig struct {
	BaseURL  string `toml:"base_url"`
	UsersURL string `toml:"users_url"`
	Timeout  int    `toml:"timeout"` // секунды
}

// LocalStoreConfig локальное состояние клиента (кеш доступности и профиль администратора)
type LocalStoreConfig struct {
	Driver string `toml:"driver"` // memory | file | redis
	Dir    string `toml:"dir"`
}

type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	Prefix   string `toml:"prefix"`
}

// ConfirmationConfig телефон получателя подтверждений в WhatsApp
type ConfirmationConfig struct {
	Phone string `toml:"phone"`
}

// Default конфигурация со значениями по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "reservations",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Storage: StorageConfig{Driver: StorageDriverPostgres, AutoMigrate: true},
		Logs:    LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Enabled:     true,
			ServiceName: "smc-reservation-service",
			Path:        "/metrics",
		},
		RateLimit:    RateLimitConfig{Enabled: true, RPS: 5, Burst: 10},
		Client:       ClientConfig{BaseURL: "http://localhost:8080", Timeout: 5},
		LocalStore:   LocalStoreConfig{Driver: LocalStoreDriverFile, Dir: ".bookingctl"},
		Redis:        RedisConfig{Addr: "localhost:6379", Prefix: "smc"},
		Confirmation: ConfirmationConfig{Phone: "5511999999999"},
	}
}

// Load читает TOML-файл поверх значений по умолчанию и валидирует результат
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// PathFromEnv возвращает путь из CONFIG_PATH или путь по умолчанию
func PathFromEnv() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	return DefaultPath
}

// Validate проверяет согласованность настроек
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port=%d", ErrInvalidConfig, c.Server.HTTPPort)
	}

	switch c.Storage.Driver {
	case StorageDriverPostgres:
		if c.Database.Host == "" || c.Database.DBName == "" {
			return fmt.Errorf("%w: database.host and database.dbname are required for postgres", ErrInvalidConfig)
		}
	case StorageDriverMemory:
	default:
		return fmt.Errorf("%w: storage.driver=%q", ErrInvalidConfig, c.Storage.Driver)
	}

	switch c.LocalStore.Driver {
	case LocalStoreDriverMemory:
	case LocalStoreDriverFile:
		if c.LocalStore.Dir == "" {
			return fmt.Errorf("%w: localstore.dir is required for file driver", ErrInvalidConfig)
		}
	case LocalStoreDriverRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("%w: redis.addr is required for redis driver", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: localstore.driver=%q", ErrInvalidConfig, c.LocalStore.Driver)
	}

	if c.RateLimit.Enabled && (c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("%w: ratelimit.rps and ratelimit.burst must be positive", ErrInvalidConfig)
	}
	if c.Client.Timeout <= 0 {
		return fmt.Errorf("%w: client.timeout must be positive", ErrInvalidConfig)
	}

	return nil
}
