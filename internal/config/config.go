package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port         int           `yaml:"port" validate:"min=1,max=65535"`
		ReadTimeout  time.Duration `yaml:"readTimeout" validate:"gt=0"`
		WriteTimeout time.Duration `yaml:"writeTimeout" validate:"gt=0"`
		IdleTimeout  time.Duration `yaml:"idleTimeout" validate:"gt=0"`
	} `yaml:"server"`

	Analysis struct {
		// simulated processing time of the mock engine
		Delay time.Duration `yaml:"delay" validate:"gte=0"`
	} `yaml:"analysis"`

	Monitoring struct {
		Interval time.Duration `yaml:"interval" validate:"gte=0"`
	} `yaml:"monitoring"`

	RateLimit struct {
		Capacity   int `yaml:"capacity" validate:"min=1"`
		RefillRate int `yaml:"refillRate" validate:"min=1"`
	} `yaml:"rateLimit"`

	CORS struct {
		AllowedOrigins []string `yaml:"allowedOrigins" validate:"min=1,dive,required"`
	} `yaml:"cors"`

	Log struct {
		Level string `yaml:"level" validate:"oneof=debug info warn warning error DEBUG INFO WARN WARNING ERROR"`
	} `yaml:"log"`
}

// Default nilai bawaan, sama dengan durasi di dashboard aslinya
func Default() *Config {
	var cfg Config
	cfg.Server.Port = 8080
	cfg.Server.ReadTimeout = 15 * time.Second
	cfg.Server.WriteTimeout = 15 * time.Second
	cfg.Server.IdleTimeout = 60 * time.Second
	cfg.Analysis.Delay = 2 * time.Second
	cfg.Monitoring.Interval = time.Second
	cfg.RateLimit.Capacity = 20
	cfg.RateLimit.RefillRate = 5
	cfg.CORS.AllowedOrigins = []string{"*"}
	cfg.Log.Level = "info"
	return &cfg
}

// Load baca file config.yaml on top of Default and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault is Load, except a missing file yields Default.
func LoadOrDefault(path string) (*Config, bool, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return cfg, true, nil
}

var validate = validator.New()

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid config: %s failed %q", fe.Namespace(), fe.Tag())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}
