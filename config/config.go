// Package config loads colortrade run configuration from a YAML file.
//
// Every field has a default, so a config file only needs to name what it changes:
//
//	rule: elementary
//	enum:
//	  workers: 4
//	  dedupe: lsm
//	build:
//	  workers: 4
//	  sort_by_key: true
//	stats:
//	  distances: true
//	output:
//	  format: json
package config

import (
	"os"
	"runtime"

	"github.com/2x3systems/colortrade/colortrade"
	"github.com/2x3systems/colortrade/libct"
	"github.com/2x3systems/colortrade/libct/metrics"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is a complete run configuration
type Config struct {
	Rule   string       `yaml:"rule" validate:"oneof=elementary connected total"`
	Enum   EnumConfig   `yaml:"enum"`
	Build  BuildConfig  `yaml:"build"`
	Stats  StatsConfig  `yaml:"stats"`
	Output OutputConfig `yaml:"output"`
}

type EnumConfig struct {
	Workers int    `yaml:"workers" validate:"min=0,max=256"`
	Dedupe  string `yaml:"dedupe" validate:"oneof=hash lsm"`
}

type BuildConfig struct {
	Workers   int  `yaml:"workers" validate:"min=0,max=256"`
	SortByKey bool `yaml:"sort_by_key"`
	Annotate  bool `yaml:"annotate"`
}

type StatsConfig struct {
	Distances bool `yaml:"distances"`
}

type OutputConfig struct {
	Format     string `yaml:"format" validate:"oneof=text json pb"`
	ShowAll    bool   `yaml:"show_all"`
	Edges      bool   `yaml:"edges"`
	MetricsOut string `yaml:"metrics_out"`
}

var validate = validator.New()

// Default returns the configuration used when no config file is given
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads, defaults and validates the config file at path
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	return Parse(data)
}

// Parse decodes, defaults and validates a YAML config document
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(colortrade.ErrBadConfig, err.Error())
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyDefaults fills in missing values with defaults
func (c *Config) applyDefaults() {
	if c.Rule == "" {
		c.Rule = colortrade.TradeElementary.String()
	}
	if c.Enum.Dedupe == "" {
		c.Enum.Dedupe = "hash"
	}
	if c.Enum.Workers == 0 {
		c.Enum.Workers = 1
	}
	if c.Build.Workers == 0 {
		c.Build.Workers = runtime.NumCPU()
		if c.Build.Workers > colortrade.MaxWorkers {
			c.Build.Workers = colortrade.MaxWorkers
		}
	}
	if c.Output.Format == "" {
		c.Output.Format = "text"
	}
}

// Validate reports the first invalid field, wrapping colortrade.ErrBadConfig
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return errors.Wrapf(colortrade.ErrBadConfig, "%s: failed %q (got %v)", fe.Namespace(), fe.Tag(), fe.Value())
		}
		return errors.Wrap(colortrade.ErrBadConfig, err.Error())
	}
	return nil
}

// RunOpts maps this config onto pipeline options
func (c *Config) RunOpts(reg *metrics.Registry) (libct.RunOpts, error) {
	rule, err := colortrade.ParseTradeRule(c.Rule)
	if err != nil {
		return libct.RunOpts{}, err
	}

	dedupe := colortrade.DedupeHash
	if c.Enum.Dedupe == "lsm" {
		dedupe = colortrade.DedupeLSM
	}

	return libct.RunOpts{
		Enum: colortrade.EnumOpts{
			Workers: c.Enum.Workers,
			Dedupe:  dedupe,
		},
		Build: colortrade.BuildOpts{
			Rule:      rule,
			Workers:   c.Build.Workers,
			SortByKey: c.Build.SortByKey,
			Annotate:  c.Build.Annotate,
		},
		Stats: colortrade.StatsOpts{
			Distances: c.Stats.Distances,
		},
		Metrics: reg,
	}, nil
}
