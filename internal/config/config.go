package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Database      DatabaseConfig      `toml:"database"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	Channel       ChannelConfig       `toml:"channel"`
	Inventory     InventoryConfig     `toml:"inventory"`
	SettingsCache SettingsCacheConfig `toml:"settings_cache"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения к PostgreSQL
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// ChannelConfig настройки интеграции с внешним каналом бронирования
type ChannelConfig struct {
	// WebhookSecret общий секрет для проверки HMAC-SHA256 подписи уведомлений
	WebhookSecret string `toml:"webhook_secret"`
	// SignatureHeader имя заголовка с подписью
	SignatureHeader string `toml:"signature_header"`
}

// InventoryConfig настройки расчета доступности номеров
type InventoryConfig struct {
	// LowInventoryThreshold доля общей вместимости, ниже которой день считается LIMITED (0..1)
	LowInventoryThreshold float64 `toml:"low_inventory_threshold"`
}

// SettingsCacheConfig настройки кеша бизнес-настроек
type SettingsCacheConfig struct {
	TTLSeconds int `toml:"ttl_seconds"`
}

// Load загружает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	applyDefaults(cfg)

	if cfg.Database.Host == "" {
		return nil, fmt.Errorf("config: database.host is required")
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 15
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 15
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "smc-hotel-service"
	}
	if cfg.Channel.SignatureHeader == "" {
		cfg.Channel.SignatureHeader = "X-Channel-Signature"
	}
	if cfg.Inventory.LowInventoryThreshold == 0 {
		cfg.Inventory.LowInventoryThreshold = 0.20
	}
	if cfg.SettingsCache.TTLSeconds == 0 {
		cfg.SettingsCache.TTLSeconds = 300
	}
}
