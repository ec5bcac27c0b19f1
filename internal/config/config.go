package config

import (
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
)

type Environment string

const (
	EnvLocal      Environment = "local"
	EnvDev        Environment = "dev"
	EnvStage      Environment = "stage"
	EnvProduction Environment = "production"
)

type ConfigBasicClient struct {
	Username string
	Password string
}

type Config struct {
	App struct {
		Version  string      `env:"APP_VERSION" envDefault:"local"`
		Env      Environment `env:"APP_ENV" envDefault:"local"`
		Timezone string      `env:"APP_TIMEZONE" envDefault:"Asia/Manila"`
	}

	HTTP struct {
		Port string `env:"HTTP_SERVER_PORT" envDefault:"8080"`
		Host string `env:"HTTP_SERVER_HOST" envDefault:"localhost"`
	}

	Mongo struct {
		URI      string `env:"MONGODB_URI" envDefault:"mongodb://localhost:27017"`
		Database string `env:"MONGODB_DATABASE" envDefault:"fixmate"`
	}

	Auth struct {
		BasicClientsString string `env:"AUTH_BASIC_CLIENTS" envDefault:"marketplace_api:marketplace_api"`
		BasicClients       []ConfigBasicClient
	}

	RabbitMQ struct {
		Enabled  bool   `env:"RABBITMQ_ENABLED"`
		URL      string `env:"RABBITMQ_URL"`
		Exchange string `env:"RABBITMQ_EXCHANGE" envDefault:"fixmate.notifications"`
		Queue    string `env:"RABBITMQ_QUEUE" envDefault:"fixmate.notifications.appointment"`
	}

	Ai struct {
		PrimaryURL     string        `env:"AI_PRIMARY_URL"`
		PrimaryKey     string        `env:"AI_PRIMARY_KEY"`
		PrimaryModel   string        `env:"AI_PRIMARY_MODEL" envDefault:"llama-3.1-70b-versatile"`
		SecondaryURL   string        `env:"AI_SECONDARY_URL"`
		SecondaryKey   string        `env:"AI_SECONDARY_KEY"`
		SecondaryModel string        `env:"AI_SECONDARY_MODEL" envDefault:"gpt-4o-mini"`
		MinCallDelay   time.Duration `env:"AI_MIN_CALL_DELAY" envDefault:"2s"`
		MaxCalls       int           `env:"AI_MAX_CALLS_PER_WINDOW" envDefault:"10"`
		CooldownWindow time.Duration `env:"AI_COOLDOWN_WINDOW" envDefault:"10m"`
	}

	Geocoder struct {
		PrimaryURL   string `env:"GEOCODER_PRIMARY_URL" envDefault:"https://nominatim.openstreetmap.org"`
		SecondaryURL string `env:"GEOCODER_SECONDARY_URL" envDefault:"https://geocode.maps.co"`
		SecondaryKey string `env:"GEOCODER_SECONDARY_KEY"`
	}

	Rates struct {
		URL string `env:"EXCHANGE_RATE_URL" envDefault:"https://open.er-api.com/v6/latest/USD"`
		// Курс на случай недоступности внешнего API
		FallbackUSDRate float64 `env:"EXCHANGE_RATE_FALLBACK" envDefault:"56.5"`
		Currency        string  `env:"PRICING_CURRENCY" envDefault:"PHP"`
	}

	Uploader struct {
		URL string `env:"IMAGE_UPLOAD_URL" envDefault:"https://api.imgbb.com/1/upload"`
		Key string `env:"IMAGE_UPLOAD_KEY"`
	}

	Cache struct {
		Enabled       bool          `env:"CACHE_ENABLED" envDefault:"true"`
		EstimatesSize int           `env:"CACHE_ESTIMATES_SIZE" envDefault:"1000"`
		RateTTL       time.Duration `env:"CACHE_RATE_TTL" envDefault:"30m"`
	}

	Reminders struct {
		Enabled bool   `env:"REMINDERS_ENABLED" envDefault:"true"`
		Cron    string `env:"REMINDERS_CRON" envDefault:"0 8 * * *"`
	}
}

func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	// Приведение окружения к нижнему регистру для унификации
	cfg.App.Env = Environment(strings.ToLower(string(cfg.App.Env)))

	// Разбор пар логин:пароль для basic auth
	if cfg.Auth.BasicClients == nil {
		cfg.Auth.BasicClients = []ConfigBasicClient{}
	}
	clientPairs := strings.Split(cfg.Auth.BasicClientsString, ",")
	for _, pair := range clientPairs {
		parts := strings.Split(pair, ":")
		if len(parts) == 2 {
			cfg.Auth.BasicClients = append(cfg.Auth.BasicClients, ConfigBasicClient{
				Username: parts[0],
				Password: parts[1],
			})
		}
	}

	return cfg, nil
}

func (c *Config) IsLocal() bool {
	return c.App.Env == EnvLocal
}

func (c *Config) IsNotLocal() bool {
	return c.App.Env == EnvDev || c.App.Env == EnvStage || c.App.Env == EnvProduction
}
