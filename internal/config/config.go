package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Bot     Bot
	Ratings Ratings
	Server  Server

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

type Bot struct {
	Token string `env:"BOT_TOKEN,required"`
}

type Ratings struct {
	BaseURL           string        `env:"RATINGS_BASE_URL" envDefault:"https://ratings.ranked-rtanks.online"`
	HTTPTimeout       time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`
	CacheTTL          time.Duration `env:"CACHE_TTL" envDefault:"60s"`
	SiteCheckInterval time.Duration `env:"SITE_CHECK_INTERVAL" envDefault:"5m"`
}

type Server struct {
	ProbeAddress   string `env:"PROBE_ADDRESS" envDefault:":8080"`
	MetricsAddress string `env:"METRICS_ADDRESS" envDefault:":9091"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	return config, nil
}
