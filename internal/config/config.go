package config

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// ErrInvalidConfig возвращается, когда конфигурация не проходит валидацию
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config корневая конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Backend   BackendConfig   `toml:"backend"`
	Cookies   CookiesConfig   `toml:"cookies"`
	Auth      AuthConfig      `toml:"auth"`
	Database  DatabaseConfig  `toml:"database"`
	Activity  ActivityConfig  `toml:"activity"`
	Redis     RedisConfig     `toml:"redis"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Logs      LogsConfig      `toml:"logs"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int    `toml:"http_port"`
	ReadTimeout     int    `toml:"read_timeout"`
	WriteTimeout    int    `toml:"write_timeout"`
	IdleTimeout     int    `toml:"idle_timeout"`
	ShutdownTimeout int    `toml:"shutdown_timeout"`
	StaticDir       string `toml:"static_dir"` // собранный фронтенд дашборда
}

// BackendConfig внешний REST бэкенд DriveTail
type BackendConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
	Origin  string `toml:"origin"`  // заголовок Origin для auth эндпоинтов
}

// CookiesConfig параметры cookie сессии
type CookiesConfig struct {
	Secure      bool   `toml:"secure"`
	SameSite    string `toml:"same_site"` // lax | strict | none
	MaxAgeHours int    `toml:"max_age_hours"`
}

// AuthConfig параметры гейта маршрутов
type AuthConfig struct {
	AdminRole     string `toml:"admin_role"`
	LoginPath     string `toml:"login_path"`
	DashboardPath string `toml:"dashboard_path"`
}

// DatabaseConfig PostgreSQL для журнала активности
type DatabaseConfig struct {
	Enabled         bool   `toml:"enabled"`
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

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// ActivityConfig журнал активности
type ActivityConfig struct {
	RetentionDays  int `toml:"retention_days"`  // 0 - хранить бессрочно
	MemoryCapacity int `toml:"memory_capacity"` // емкость журнала в памяти, если БД выключена
}

// Retention срок хранения записей журнала
func (a ActivityConfig) Retention() time.Duration {
	return time.Duration(a.RetentionDays) * 24 * time.Hour
}

// RedisConfig кэш сессий
type RedisConfig struct {
	Enabled         bool   `toml:"enabled"`
	Addr            string `toml:"addr"`
	Password        string `toml:"password"`
	DB              int    `toml:"db"`
	SessionTTLHours int    `toml:"session_ttl_hours"`
}

// RateLimitConfig ограничение попыток входа на IP
type RateLimitConfig struct {
	SignInPerMinute int `toml:"sign_in_per_minute"`
	SignInBurst     int `toml:"sign_in_burst"`
	// TrustProxyHeaders включать только за собственным reverse proxy
	TrustProxyHeaders bool `toml:"trust_proxy_headers"`
}

// MetricsConfig prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// LogsConfig логирование
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Default конфигурация по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    30,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
			StaticDir:       "./web",
		},
		Backend: BackendConfig{
			URL:     "http://localhost:3001",
			Timeout: 10,
		},
		Cookies: CookiesConfig{
			SameSite:    "lax",
			MaxAgeHours: 24,
		},
		Auth: AuthConfig{
			AdminRole:     "admin",
			LoginPath:     "/login",
			DashboardPath: "/dashboard",
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Activity: ActivityConfig{
			RetentionDays:  30,
			MemoryCapacity: 500,
		},
		Redis: RedisConfig{
			Addr:            "localhost:6379",
			SessionTTLHours: 24,
		},
		RateLimit: RateLimitConfig{
			SignInPerMinute: 10,
			SignInBurst:     5,
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "drivetail-dashboard",
		},
		Logs: LogsConfig{
			Level: "info",
		},
	}
}

// Load читает TOML файл поверх значений по умолчанию и применяет переменные окружения.
// Отсутствующий файл не ошибка: сервис может конфигурироваться только через окружение.
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", path, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("BACKEND_URL"); v != "" {
		c.Backend.URL = v
	}
	if v := os.Getenv("HTTP_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: HTTP_PORT=%q", ErrInvalidConfig, v)
		}
		c.Server.HTTPPort = port
	}
	if v := os.Getenv("DATABASE_HOST"); v != "" {
		c.Database.Host = v
	}
	if v := os.Getenv("DATABASE_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Redis.Addr = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logs.Level = v
	}
	if v := os.Getenv("COOKIE_SECURE"); v != "" {
		c.Cookies.Secure = v == "true"
	}
	return nil
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	u, err := url.Parse(c.Backend.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: backend.url must be an absolute URL, got %q", ErrInvalidConfig, c.Backend.URL)
	}
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port out of range: %d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Backend.Timeout <= 0 {
		return fmt.Errorf("%w: backend.timeout must be positive", ErrInvalidConfig)
	}
	if c.Cookies.MaxAgeHours <= 0 {
		return fmt.Errorf("%w: cookies.max_age_hours must be positive", ErrInvalidConfig)
	}
	if c.Auth.AdminRole == "" {
		return fmt.Errorf("%w: auth.admin_role is required", ErrInvalidConfig)
	}
	switch strings.ToLower(c.Cookies.SameSite) {
	case "lax", "strict", "none":
	default:
		return fmt.Errorf("%w: cookies.same_site must be lax|strict|none", ErrInvalidConfig)
	}
	return nil
}

// BackendURL базовый URL бэкенда без завершающего слэша
func (c *Config) BackendURL() string {
	return strings.TrimRight(c.Backend.URL, "/")
}

// SameSiteMode режим SameSite для cookie
func (c CookiesConfig) SameSiteMode() http.SameSite {
	switch strings.ToLower(c.SameSite) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

// MaxAge время жизни cookie
func (c CookiesConfig) MaxAge() time.Duration {
	return time.Duration(c.MaxAgeHours) * time.Hour
}
