package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/multierr"
)

type Config struct {
	App struct {
		Name string `mapstructure:"name"`
	} `mapstructure:"app"`

	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`

	PrivatBank struct {
		URL     string        `mapstructure:"url"`
		Timeout time.Duration `mapstructure:"timeout"`
	} `mapstructure:"privatbank"`

	Rates struct {
		Currencies []string `mapstructure:"currencies"`
	} `mapstructure:"rates"`

	Server struct {
		Port         string   `mapstructure:"port"`
		AllowOrigins []string `mapstructure:"allow_origins"`
	} `mapstructure:"server"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "privat-rates")
	v.SetDefault("log.level", "warn")
	v.SetDefault("privatbank.url", "https://api.privatbank.ua/p24api/exchange_rates")
	v.SetDefault("privatbank.timeout", 30*time.Second)
	v.SetDefault("rates.currencies", []string{"EUR", "USD"})
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.allow_origins", []string{"http://localhost:8080", "http://127.0.0.1:8080"})
}

// LoadConfig reads config.yaml from path or from the usual lookup dirs.
// A missing file is fine, defaults and env cover everything.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("../config")
		v.AddConfigPath("../../config")
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs error

	if _, err := url.ParseRequestURI(c.PrivatBank.URL); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("privatbank.url: %w", err))
	}
	if c.PrivatBank.Timeout < 0 {
		errs = multierr.Append(errs, fmt.Errorf("privatbank.timeout must not be negative, got %s", c.PrivatBank.Timeout))
	}
	if len(c.Rates.Currencies) == 0 {
		errs = multierr.Append(errs, errors.New("rates.currencies must not be empty"))
	}
	if c.Server.Port == "" {
		errs = multierr.Append(errs, errors.New("server.port must not be empty"))
	}
	if len(c.Server.AllowOrigins) == 0 {
		errs = multierr.Append(errs, errors.New("server.allow_origins must not be empty"))
	}

	return errs
}
