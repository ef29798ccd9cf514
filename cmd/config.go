package cmd

import (
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/etnz/expense"
	"github.com/etnz/expense/date"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	EnvDataDir = "RCD_DATA_DIR"
	EnvConfig  = "RCD_CONFIG"
	EnvStyle   = "RCD_STYLE"
	EnvVerbose = "RCD_VERBOSE"
)

const configFileName = "config.yaml"

// FileConfig is the content of the YAML configuration file.
type FileConfig struct {
	DataDir string `yaml:"data-dir"`
	Style   string `yaml:"style"`
	Verbose bool   `yaml:"verbose"`
}

// Settings are the resolved settings of one invocation.
type Settings struct {
	DataDir string
	Month   date.Month
	Style   string
	Verbose bool
}

// path returns the month file the invocation works on.
func (s Settings) path() string {
	return expense.MonthFile(s.DataDir, monthOrCurrent(s.Month))
}

// Overrides are the values given on the command line. Empty values and a nil Verbose are not set.
type Overrides struct {
	DataDir string
	Month   string
	Config  string
	Style   string
	Verbose *bool
}

// LoadFileConfig reads the YAML configuration at path. A missing file is an empty configuration.
func LoadFileConfig(path string) (FileConfig, error) {
	var cfg FileConfig
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Wrap(err, "reading config file")
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing config file %q", path)
	}
	return cfg, nil
}

// ResolveSettings merges, from highest to lowest priority, the command line, the
// environment, the configuration file and the defaults.
func ResolveSettings(o Overrides) (Settings, error) {
	defaultDir, err := expense.DefaultDataDir()
	if err != nil {
		return Settings{}, err
	}

	configPath := firstOf(o.Config, os.Getenv(EnvConfig), filepath.Join(defaultDir, configFileName))
	cfg, err := LoadFileConfig(configPath)
	if err != nil {
		return Settings{}, err
	}

	s := Settings{
		DataDir: firstOf(o.DataDir, os.Getenv(EnvDataDir), cfg.DataDir, defaultDir),
		Style:   firstOf(o.Style, os.Getenv(EnvStyle), cfg.Style, "auto"),
		Verbose: cfg.Verbose,
	}
	switch env := os.Getenv(EnvVerbose); {
	case o.Verbose != nil:
		s.Verbose = *o.Verbose
	case env != "":
		v, err := strconv.ParseBool(env)
		if err != nil {
			return Settings{}, errors.Wrapf(err, "invalid %s", EnvVerbose)
		}
		s.Verbose = v
	}
	if o.Month != "" {
		m, err := date.ParseMonth(o.Month)
		if err != nil {
			return Settings{}, err
		}
		s.Month = m
	}
	return s, nil
}

// firstOf returns the first non empty value.
func firstOf(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
