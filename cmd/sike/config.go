package main

import (
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/doubleodd/go-sike/sike"
)

const (
	paramsFlag   = "params"
	workersFlag  = "workers"
	logLevelFlag = "loglevel"
	configFlag   = "config"

	defaultParams   = "p434"
	defaultLogLevel = "info"
)

// Config holds the settings shared by all commands. Values come from the
// optional YAML file first; flags (or their environment variables)
// override them.
type Config struct {
	Params   string `yaml:"params"`
	Workers  int    `yaml:"workers"`
	LogLevel string `yaml:"loglevel"`
}

// loadConfig reads a YAML configuration file. An empty path yields the
// defaults.
func loadConfig(path string) (*Config, error) {
	cfg := &Config{
		Params:   defaultParams,
		LogLevel: defaultLogLevel,
	}
	if path == "" {
		return cfg, nil
	}
	expanded, err := expandPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(expanded)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read config file")
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "cannot parse config file %s", expanded)
	}
	return cfg, nil
}

// resolveConfig merges the configuration file named by --config with the
// flags explicitly set on the command line.
func resolveConfig(c *cli.Context) (*Config, error) {
	cfg, err := loadConfig(c.String(configFlag))
	if err != nil {
		return nil, err
	}
	if c.IsSet(paramsFlag) {
		cfg.Params = c.String(paramsFlag)
	}
	if c.IsSet(workersFlag) {
		cfg.Workers = c.Int(workersFlag)
	}
	if c.IsSet(logLevelFlag) {
		cfg.LogLevel = c.String(logLevelFlag)
	}
	if cfg.Workers < 0 {
		return nil, errors.Errorf("invalid worker count %d", cfg.Workers)
	}
	return cfg, nil
}

func (cfg *Config) params() (*sike.Params, error) {
	return sike.ParamsByName(cfg.Params)
}

func expandPath(path string) (string, error) {
	p, err := homedir.Expand(path)
	if err != nil {
		return "", errors.Wrapf(err, "cannot resolve path %s", path)
	}
	return p, nil
}
