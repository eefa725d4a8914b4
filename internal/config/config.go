package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/renesugar/gircheck/pkg/gircheck"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

type ExcludeConfig struct {
	Registered string `yaml:"registered,omitempty"`
	GTypes     string `yaml:"gtypes,omitempty"`
	Headers    string `yaml:"headers,omitempty"`
}

// ProjectConfig holds run defaults. Pointer fields distinguish "unset" from
// an explicit zero so layers can be merged.
type ProjectConfig struct {
	Output   string        `yaml:"output,omitempty"`
	FileList string        `yaml:"filelist,omitempty"`
	Exclude  ExcludeConfig `yaml:"exclude,omitempty"`
	Workers  *int          `yaml:"workers,omitempty"`
	Report   string        `yaml:"report,omitempty"`
	LogJSON  *bool         `yaml:"log_json,omitempty"`
	Verbose  *bool         `yaml:"verbose,omitempty"`
}

const ConfigFileName = "gircheck.yaml"

// EnvPrefix prefixes every environment variable read by FromEnv.
const EnvPrefix = "GIRCHECK_"

func Load(configPath string) (*ProjectConfig, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, fmt.Errorf("%w: %v", gircheck.ErrInvalidConfig, err)
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", gircheck.ErrInvalidConfig, configPath, err)
	}
	if cfg.Workers != nil && *cfg.Workers < 0 {
		return nil, fmt.Errorf("%w: %s: workers cannot be negative", gircheck.ErrInvalidConfig, configPath)
	}
	return &cfg, nil
}

// FromEnv reads GIRCHECK_* variables through lookup, usually os.LookupEnv.
func FromEnv(lookup func(string) (string, bool)) (*ProjectConfig, error) {
	cfg := &ProjectConfig{}
	str := func(name string, dst *string) {
		if v, ok := lookup(EnvPrefix + name); ok {
			*dst = v
		}
	}
	str("OUTPUT", &cfg.Output)
	str("FILELIST", &cfg.FileList)
	str("EXCLUDE_REGISTERED", &cfg.Exclude.Registered)
	str("EXCLUDE_GTYPES", &cfg.Exclude.GTypes)
	str("EXCLUDE_HEADERS", &cfg.Exclude.Headers)
	str("REPORT", &cfg.Report)

	if v, ok := lookup(EnvPrefix + "WORKERS"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: %sWORKERS=%q is not a non-negative integer", gircheck.ErrInvalidConfig, EnvPrefix, v)
		}
		cfg.Workers = &n
	}

	for name, dst := range map[string]**bool{"LOG_JSON": &cfg.LogJSON, "VERBOSE": &cfg.Verbose} {
		v, ok := lookup(EnvPrefix + name)
		if !ok || v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %s%s=%q is not a boolean", gircheck.ErrInvalidConfig, EnvPrefix, name, v)
		}
		*dst = &b
	}
	return cfg, nil
}

// Overlay returns a config in which every field set in over replaces the one
// in under. Either argument may be nil.
func Overlay(over, under *ProjectConfig) *ProjectConfig {
	out := &ProjectConfig{}
	if under != nil {
		*out = *under
	}
	if over == nil {
		return out
	}

	pick := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	pick(&out.Output, over.Output)
	pick(&out.FileList, over.FileList)
	pick(&out.Exclude.Registered, over.Exclude.Registered)
	pick(&out.Exclude.GTypes, over.Exclude.GTypes)
	pick(&out.Exclude.Headers, over.Exclude.Headers)
	pick(&out.Report, over.Report)
	if over.Workers != nil {
		out.Workers = over.Workers
	}
	if over.LogJSON != nil {
		out.LogJSON = over.LogJSON
	}
	if over.Verbose != nil {
		out.Verbose = over.Verbose
	}
	return out
}

// WorkerCount returns the configured worker count, or 0 when unset.
func (c *ProjectConfig) WorkerCount() int {
	if c == nil || c.Workers == nil {
		return 0
	}
	return *c.Workers
}

func (c *ProjectConfig) LogJSONEnabled() bool {
	return c != nil && c.LogJSON != nil && *c.LogJSON
}

func (c *ProjectConfig) VerboseEnabled() bool {
	return c != nil && c.Verbose != nil && *c.Verbose
}
