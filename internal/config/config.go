package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rocketscienceinc/tictactoe-bot/internal/apperror"
)

const (
	StatsStorageMemory = "memory"
	StatsStorageRedis  = "redis"

	LogFormatJSON = "json"
	LogFormatText = "text"
)

var (
	ErrMissingToken       = errors.New("discord token is empty")
	ErrInvalidIdleTimeout = errors.New("idle timeout must be positive")
)

type Config struct {
	LogLevel  string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFormat string  `yaml:"log-format" env:"LOG_FORMAT" env-default:"json"`
	HTTPPort  string  `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Discord   Discord `yaml:"discord"`
	Game      Game    `yaml:"game"`
	Redis     Redis   `yaml:"redis"`
}

type Discord struct {
	Token  string `yaml:"token" env:"DISCORD_TOKEN"`
	Prefix string `yaml:"prefix" env-default:"+"`
}

type Game struct {
	IdleTimeout     time.Duration `yaml:"idle-timeout" env-default:"60s"`
	StatsStorage    string        `yaml:"stats-storage" env:"STATS_STORAGE" env-default:"memory"`
	LeaderboardSize int           `yaml:"leaderboard-size" env-default:"10"`
}

type Redis struct {
	Host     string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port     string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env-default:"0"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load - reads path, environment overrides it, then validates.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

func (that *Config) Validate() error {
	if that.Discord.Token == "" {
		return ErrMissingToken
	}

	if that.Game.IdleTimeout <= 0 {
		return ErrInvalidIdleTimeout
	}

	switch that.Game.StatsStorage {
	case StatsStorageMemory, StatsStorageRedis:
	default:
		return fmt.Errorf("%w: %q", apperror.ErrUnknownStatsStorage, that.Game.StatsStorage)
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
