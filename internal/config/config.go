// Package config загрузка конфигурации сервиса из TOML файла
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/DWS-ScheduleService/internal/domain"
	"github.com/m04kA/DWS-ScheduleService/pkg/types"
)

// Config конфигурация сервиса
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Database   DatabaseConfig   `toml:"database"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	PetService PetServiceConfig `toml:"petservice"`
	Engine     EngineConfig     `toml:"engine"`
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
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// PetServiceConfig настройки клиента PetService (карточки собак и владельцев)
type PetServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// EngineConfig бизнес-таблицы движка расписания
// Всё опционально: незаполненные значения берутся из domain.DefaultEngineConfig
type EngineConfig struct {
	TierWalks      map[string]int        `toml:"tier_walks"`
	Tariffs        map[string]TariffTOML `toml:"tariffs"`
	BlockWalkStart map[string]string     `toml:"block_walk_start"`
	MinCapacity    int                   `toml:"min_capacity"`
	MaxCapacity    int                   `toml:"max_capacity"`
	WeeklyCap      int                   `toml:"weekly_cap"`
}

// TariffTOML тариф одного типа прогулки в TOML файле
type TariffTOML struct {
	ServiceCategory string  `toml:"service_category"`
	UnitPrice       float64 `toml:"unit_price"`
	DurationMinutes int     `toml:"duration_minutes"`
	MaxCapacity     int     `toml:"max_capacity"`
}

// Load читает конфигурацию из TOML файла и применяет дефолты
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ToEngineConfig собирает domain.EngineConfig: дефолтные таблицы,
// поверх которых применяются значения из TOML
func (c EngineConfig) ToEngineConfig() (domain.EngineConfig, error) {
	engine := domain.DefaultEngineConfig()

	for rawTier, count := range c.TierWalks {
		tier := domain.RoutineTier(rawTier)
		if !tier.Valid() {
			return domain.EngineConfig{}, fmt.Errorf("config: unknown routine tier %q in [engine.tier_walks]", rawTier)
		}
		if count < 0 || count > domain.WeeklyAssignmentCap {
			return domain.EngineConfig{}, fmt.Errorf("config: tier %s walk count %d out of range [0, %d]",
				tier, count, domain.WeeklyAssignmentCap)
		}
		engine.TierWalks[tier] = count
	}

	for rawType, tariff := range c.Tariffs {
		walkType := domain.WalkType(rawType)
		if !walkType.Valid() {
			return domain.EngineConfig{}, fmt.Errorf("config: unknown walk type %q in [engine.tariffs]", rawType)
		}
		engine.Tariffs[walkType] = domain.WalkTariff{
			ServiceCategory: tariff.ServiceCategory,
			UnitPrice:       tariff.UnitPrice,
			DurationMinutes: tariff.DurationMinutes,
			MaxCapacity:     tariff.MaxCapacity,
		}
	}

	for rawBlock, rawTime := range c.BlockWalkStart {
		block := domain.Block(rawBlock)
		if !block.Valid() {
			return domain.EngineConfig{}, fmt.Errorf("config: unknown block %q in [engine.block_walk_start]", rawBlock)
		}
		start, err := types.NewTimeStringFromString(rawTime)
		if err != nil {
			return domain.EngineConfig{}, fmt.Errorf("config: invalid walk start time for block %s: %w", block, err)
		}
		engine.BlockWalkStart[block] = start
	}

	if c.MinCapacity > 0 {
		engine.MinCapacity = c.MinCapacity
	}
	if c.MaxCapacity > 0 {
		engine.MaxCapacity = c.MaxCapacity
	}
	if c.WeeklyCap > 0 {
		engine.WeeklyAssignmentCap = c.WeeklyCap
	}

	if engine.MinCapacity < 1 || engine.MaxCapacity < engine.MinCapacity {
		return domain.EngineConfig{}, fmt.Errorf("config: invalid capacity bounds [%d, %d]",
			engine.MinCapacity, engine.MaxCapacity)
	}

	return engine, nil
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
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 25
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 300
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Logs.Level == "" {
		cfg.Logs.Level = "info"
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "dws-schedule-service"
	}
	if cfg.PetService.Timeout == 0 {
		cfg.PetService.Timeout = 5
	}
}

func validate(cfg *Config) error {
	if cfg.Database.Host == "" {
		return fmt.Errorf("config: database.host is required")
	}
	if cfg.Database.DBName == "" {
		return fmt.Errorf("config: database.dbname is required")
	}
	if cfg.PetService.URL == "" {
		return fmt.Errorf("config: petservice.url is required")
	}
	return nil
}
