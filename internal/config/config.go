package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFile  string  `yaml:"log-file" env:"LOG_FILE" env-default:"tictactoe.log"`
	Players  Players `yaml:"players"`
	Sound    Sound   `yaml:"sound"`
	Redis    Redis   `yaml:"redis"`
}

// Players holds optional names; when both are valid the name prompt is skipped.
type Players struct {
	One string `yaml:"one" env:"PLAYER_ONE"`
	Two string `yaml:"two" env:"PLAYER_TWO"`
}

type Sound struct {
	Muted bool `yaml:"muted" env:"SOUND_MUTED"`
}

// Redis configures the optional event mirror.
type Redis struct {
	Enabled       bool   `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host          string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port          string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	ChannelPrefix string `yaml:"channel-prefix" env:"REDIS_CHANNEL_PREFIX" env-default:"tictactoe:events"`
	BufferSize    int    `yaml:"buffer-size" env:"REDIS_BUFFER_SIZE" env-default:"64"`
}

// Load reads path and applies environment overrides.
// A missing file is not an error: defaults and environment are used instead.
func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
