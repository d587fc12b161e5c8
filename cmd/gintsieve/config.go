package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// fileSettings is the layout of a YAML config file.
type fileSettings struct {
	Method  string `yaml:"method"`
	Backend string `yaml:"backend"`
	Sort    *bool  `yaml:"sort"`
	Tracing struct {
		Adapter     string            `yaml:"adapter"`
		Destination string            `yaml:"destination"`
		Levels      map[string]string `yaml:"levels"`
	} `yaml:"tracing"`
}

func readFileSettings(name string) (*fileSettings, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	s := &fileSettings{}
	if err = yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", name, err)
	}
	return s, nil
}

// loadConfigFile merges the config file into opts. Flags set on the command
// line are left alone.
func (opts *options) loadConfigFile(flags *pflag.FlagSet) error {
	if opts.configFile == "" {
		return nil
	}
	s, err := readFileSettings(opts.configFile)
	if err != nil {
		return err
	}
	merge := func(flag string, dst *string, v string) {
		if v != "" && !flags.Changed(flag) {
			*dst = v
		}
	}
	merge("method", &opts.method, s.Method)
	merge("backend", &opts.backend, s.Backend)
	merge("tracing", &opts.tracing, s.Tracing.Adapter)
	merge("trace-dest", &opts.traceDest, s.Tracing.Destination)
	if s.Sort != nil && !flags.Changed("sort") {
		opts.sort = *s.Sort
	}
	if !flags.Changed("trace-level") {
		opts.traceLevels = s.Tracing.Levels
	}
	return nil
}

// traceConfig exposes the tracing settings as a schuko.Configuration.
func (opts *options) traceConfig() traceConfig {
	conf := traceConfig{
		"tracing.adapter": opts.tracing,
	}
	if opts.traceDest != "" {
		conf["tracing.destination"] = opts.traceDest
	}
	for _, key := range tracerKeys {
		conf["tracelevel."+key] = opts.traceLevel
	}
	for key, level := range opts.traceLevels {
		conf["tracelevel."+key] = level
	}
	conf.InitDefaults()
	return conf
}

// traceConfig is a flat key-value configuration, implementing
// schuko.Configuration.
type traceConfig map[string]string

var defaults = map[string]string{
	"tracing.adapter": "go",
	"tracelevel.root": "Error",
}

func (c traceConfig) InitDefaults() {
	for k, v := range defaults {
		if c[k] == "" {
			c[k] = v
		}
	}
}

func (c traceConfig) IsSet(key string) bool {
	_, ok := c[key]
	return ok
}

func (c traceConfig) GetString(key string) string { return c[key] }

func (c traceConfig) GetInt(key string) int {
	n, _ := strconv.Atoi(c[key])
	return n
}

func (c traceConfig) GetBool(key string) bool {
	b, _ := strconv.ParseBool(c[key])
	return b
}

func (c traceConfig) IsInteractive() bool { return false }
