package aoc

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	configName = ".aoc"
	configType = "yaml"
	envPrefix  = "AOC"
)

// Config controls which puzzles Run runs and where inputs come from.
type Config struct {
	Day        int    `mapstructure:"day"` // -1 runs every registered day
	Part       string `mapstructure:"part"`
	OnlySample bool   `mapstructure:"sample"`
	SkipSample bool   `mapstructure:"skip_sample"`
	Debug      bool   `mapstructure:"debug"`

	// InputDir is where inputs are cached, as <year>/<day>.input.
	InputDir string `mapstructure:"input_dir"`
	// SessionFile holds the adventofcode.com session cookie.
	SessionFile string `mapstructure:"session_file"`
}

func (c *Config) Validate() error {
	if c.OnlySample && c.SkipSample {
		return errors.New("sample and skip_sample are mutually exclusive")
	}
	if c.Day == 0 || c.Day < -1 || c.Day > 25 {
		return fmt.Errorf("day %d out of range", c.Day)
	}
	return nil
}

// LoadConfig layers defaults, the config file, AOC_* environment
// variables and whatever flags were bound to v, in that order of
// precedence. If configPath is empty, .aoc.yaml is looked up in the
// working directory and $HOME; a missing file is not an error.
func LoadConfig(v *viper.Viper, configPath string) (*Config, error) {
	applyDefaults(v)

	v.SetConfigType(configType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

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
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

func applyDefaults(v *viper.Viper) {
	v.SetDefault("day", -1)
	v.SetDefault("part", "")
	v.SetDefault("sample", false)
	v.SetDefault("skip_sample", false)
	v.SetDefault("debug", false)
	v.SetDefault("input_dir", ".")
	home, _ := os.UserHomeDir()
	v.SetDefault("session_file", filepath.Join(home, "keys", "aoc.session"))
}
