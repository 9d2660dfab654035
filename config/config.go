package config

import (
	"errors"
	"log"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type HTTPConfig struct {
	Host        string        `yaml:"host" env:"HOST" env-default:""`
	Port        string        `yaml:"port" env:"PORT" env-default:"3000"`
	Timeout     time.Duration `yaml:"timeout" env:"HTTP_TIMEOUT" env-default:"5s"`
	CORSOrigins []string      `yaml:"cors_origins" env:"CORS_ORIGINS" env-separator:"," env-default:"*"`
}

func (c HTTPConfig) Address() string {
	return net.JoinHostPort(c.Host, c.Port)
}

type MetricsConfig struct {
	Disabled bool `yaml:"disabled" env:"METRICS_DISABLED"`
}

type Config struct {
	LogLevel  string        `yaml:"log_level" env:"LOG_LEVEL" env-default:"INFO"`
	HTTP      HTTPConfig    `yaml:"http"`
	SeedPath  string        `yaml:"seed_path" env:"SEED_PATH"`
	StaticDir string        `yaml:"static_dir" env:"STATIC_DIR"`
	Metrics   MetricsConfig `yaml:"metrics"`
}

func MustLoad(configPath string) Config {
	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("cannot load config: %s", err)
	}
	return cfg
}

// Load reads configPath, or only the environment when the path is empty or the file is absent.
// A .env file in the working directory is applied to the environment first.
func Load(configPath string) (Config, error) {
	var cfg Config

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return cfg, err
	}

	if configPath == "" {
		return cfg, cleanenv.ReadEnv(&cfg)
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		var pe *os.PathError
		if errors.As(err, &pe) {
			return cfg, cleanenv.ReadEnv(&cfg)
		}
		return cfg, err
	}
	return cfg, nil
}
