package internal

import (
	"fmt"
	"os"
	"strings"

	"message-board/errors"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

var validate = validator.New()

type Config struct {
	BadgerFilepath string `env:"BADGER_FILEPATH" validate:"required_if=InMemory false"`
	InMemory       bool   `env:"BADGER_IN_MEMORY,default=false"`
	LogLevel       string `env:"LOG_LEVEL,default=INFO" validate:"oneof=DEBUG INFO WARN ERROR"`
}

// LoadConfig reads the configuration with ReadConfig and validates it.
func LoadConfig(files ...string) (Config, error) {
	config, err := ReadConfig(files...)
	if err != nil {
		return Config{}, err
	}
	return config, config.Validate()
}

// ReadConfig reads the given .env files (".env" when none is given), then the
// process environment. Missing .env files are ignored and variables already
// set in the environment win.
func ReadConfig(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("loading %s: %w", file, err)
		}
	}

	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	config.LogLevel = strings.ToUpper(config.LogLevel)
	return config, nil
}

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidConfig, err)
	}
	return nil
}
