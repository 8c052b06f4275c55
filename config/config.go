package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the root run configuration.
type Config struct {
	Seed    int64     `yaml:"seed"`
	Target  string    `yaml:"target" validate:"required"`
	GA      GAConfig  `yaml:"ga"`
	Logging LogConfig `yaml:"logging"`
}

// GAConfig defines the evolutionary parameters.
type GAConfig struct {
	Population   int     `yaml:"population" validate:"gte=2,even"`
	Rounds       int     `yaml:"rounds" validate:"gte=0"`
	MutationRate float64 `yaml:"mutation_rate" validate:"gte=0,lte=1"`
	Workers      int     `yaml:"workers" validate:"gte=0"`
}

// LogConfig defines artifact output parameters.
type LogConfig struct {
	EveryGenSummary bool   `yaml:"every_gen_summary"`
	CSVPath         string `yaml:"csv_path"`
	JSONPath        string `yaml:"json_path"`
}

// Load reads a YAML config file, applies defaults, and validates.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	applyDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Seed == 0 {
		cfg.Seed = 1337
	}
	if cfg.GA.Population == 0 {
		cfg.GA.Population = 100
	}
	if cfg.GA.Rounds == 0 {
		cfg.GA.Rounds = 1000
	}
	if cfg.GA.MutationRate == 0 {
		cfg.GA.MutationRate = 0.01
	}
	if cfg.Logging.CSVPath == "" {
		cfg.Logging.CSVPath = "runs/run.csv"
	}
	if cfg.Logging.JSONPath == "" {
		cfg.Logging.JSONPath = "runs/run.jsonl"
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// reproduction consumes parent pairs, so the population must pair up
	if err := v.RegisterValidation("even", func(fl validator.FieldLevel) bool {
		return fl.Field().Int()%2 == 0
	}); err != nil {
		panic(fmt.Sprintf("config: registering validators: %v", err))
	}
	return v
}

// Validate checks the configuration against its struct tags.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
