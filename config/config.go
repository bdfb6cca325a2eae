package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/sirupsen/logrus"
)

const (
	FrontendWindow   = "window"
	FrontendTerminal = "terminal"

	FormatText = "text"
	FormatJSON = "json"
)

var (
	ErrUnknownFrontend  = errors.New("unknown frontend")
	ErrUnknownLogLevel  = errors.New("unknown log level")
	ErrUnknownLogFormat = errors.New("unknown log format")
)

type Config struct {
	LogLevel    string `yaml:"log-level" env:"SNAKE_LOG_LEVEL" env-default:"info"`
	LogFormat   string `yaml:"log-format" env:"SNAKE_LOG_FORMAT" env-default:"text"`
	LogFile     string `yaml:"log-file" env:"SNAKE_LOG_FILE"`
	Frontend    string `yaml:"frontend" env:"SNAKE_FRONTEND" env-default:"window"`
	Seed        uint64 `yaml:"seed" env:"SNAKE_SEED" env-default:"0"`
	FoodOnSnake bool   `yaml:"food-on-snake" env:"SNAKE_FOOD_ON_SNAKE" env-default:"false"`
	WindowTitle string `yaml:"window-title" env:"SNAKE_WINDOW_TITLE" env-default:"Snake Game"`
}

// MustLoad - loads the config file at path, or the environment alone when
// the file does not exist.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("read config from environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("stat config file %s: %w", path, err)
	}

	if err = config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	switch that.Frontend {
	case FrontendWindow, FrontendTerminal:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFrontend, that.Frontend)
	}

	if _, err := logrus.ParseLevel(that.LogLevel); err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownLogLevel, that.LogLevel)
	}

	switch that.LogFormat {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownLogFormat, that.LogFormat)
	}

	return nil
}

// RandomSeed returns the configured seed, or a clock-derived one when unset.
func (that *Config) RandomSeed() uint64 {
	if that.Seed != 0 {
		return that.Seed
	}
	return uint64(time.Now().UnixNano())
}

// Usage describes the supported environment variables.
func Usage() string {
	text, err := cleanenv.GetDescription(&Config{}, nil)
	if err != nil {
		return ""
	}
	return text
}
