package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Source    SourceConfig    `mapstructure:"source"`
	Generator GeneratorConfig `mapstructure:"generator"`
	Presets   string          `mapstructure:"presets"`
	LogLevel  string          `mapstructure:"log_level"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type SourceConfig struct {
	Kind       string `mapstructure:"kind"`
	DuckDBPath string `mapstructure:"duckdb_path"`
}

type GeneratorConfig struct {
	Seed    uint64 `mapstructure:"seed"`
	Months  int    `mapstructure:"months"`
	EndDate string `mapstructure:"end_date"`
}

// EndTime parses EndDate; an empty value yields the zero time.
func (g GeneratorConfig) EndTime() (time.Time, error) {
	if g.EndDate == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.DateOnly, g.EndDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid generator end_date %q: %w", g.EndDate, err)
	}
	return t, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("source.kind", "generator")
	v.SetDefault("source.duckdb_path", ":memory:")
	v.SetDefault("generator.seed", 0)
	v.SetDefault("generator.months", 12)
	v.SetDefault("generator.end_date", "")
	v.SetDefault("presets", "")
	v.SetDefault("log_level", "info")
}

// LoadConfig reads the YAML file at path (optional) on top of the defaults.
// Environment variables prefixed with FINSYNC_ override file values, and
// SERVER_HOST / SERVER_PORT are honoured for the listen address.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("finsync")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("server.host", "FINSYNC_SERVER_HOST", "SERVER_HOST")
	_ = v.BindEnv("server.port", "FINSYNC_SERVER_PORT", "SERVER_PORT")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []string

	switch c.Source.Kind {
	case "generator", "duckdb":
	default:
		errs = append(errs, fmt.Sprintf("unknown source kind %q", c.Source.Kind))
	}
	if c.Generator.Months < 1 || c.Generator.Months > 120 {
		errs = append(errs, fmt.Sprintf("generator months must be between 1 and 120, got %d", c.Generator.Months))
	}
	if _, err := c.Generator.EndTime(); err != nil {
		errs = append(errs, err.Error())
	}
	if c.Server.Port == "" {
		errs = append(errs, "server port is required")
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(errs, "; "))
	}
	return nil
}
