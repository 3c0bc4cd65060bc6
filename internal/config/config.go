package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel         string        `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFormat        string        `yaml:"log-format" env:"LOG_FORMAT" env-default:"json"`
	Color            string        `yaml:"color" env:"COLOR" env-default:"auto"`
	RandomSeed       uint64        `yaml:"random-seed" env:"RANDOM_SEED" env-default:"0"`
	ReplayFrameDelay time.Duration `yaml:"replay-frame-delay" env:"REPLAY_FRAME_DELAY" env-default:"1s"`
	Telemetry        Telemetry     `yaml:"telemetry"`
}

type Telemetry struct {
	Enabled bool `yaml:"enabled" env:"TELEMETRY_ENABLED" env-default:"false"`
}

// MustLoad - load all configurations from the config.yml file, or from the
// environment alone when the file does not exist.
func MustLoad(path string) *Config {
	config := &Config{}

	err := cleanenv.ReadConfig(path, config)
	if err == nil {
		return config
	}

	if !errors.Is(err, os.ErrNotExist) {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	if err = cleanenv.ReadEnv(config); err != nil {
		panic(fmt.Errorf("unable to load config from environment: %w", err))
	}

	return config
}
