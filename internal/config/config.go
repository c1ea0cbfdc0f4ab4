// Package config loads the CLI configuration from defaults, an optional YAML
// file ($HOME/.agrocalc.yaml) and AGROCALC_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/aretw0/agrocalc/internal/logging"
	"github.com/aretw0/agrocalc/pkg/report"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. AGROCALC_HTTP_PORT.
const EnvPrefix = "AGROCALC"

// Config is the resolved configuration.
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	HTTP   HTTPConfig   `mapstructure:"http"`
	MCP    MCPConfig    `mapstructure:"mcp"`
	Report ReportConfig `mapstructure:"report"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

type HTTPConfig struct {
	Port    int  `mapstructure:"port"`
	Metrics bool `mapstructure:"metrics"`
}

type MCPConfig struct {
	Transport string `mapstructure:"transport"`
	Port      int    `mapstructure:"port"`
}

type ReportConfig struct {
	Format string `mapstructure:"format"`
}

// SetDefaults registers every key, which also makes AutomaticEnv see them
// during Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)
	v.SetDefault("http.port", 8080)
	v.SetDefault("http.metrics", true)
	v.SetDefault("mcp.transport", "stdio")
	v.SetDefault("mcp.port", 8081)
	v.SetDefault("report.format", string(report.FormatMarkdown))
}

// Init prepares v: defaults, environment binding and config file lookup.
// An empty file searches $HOME for .agrocalc.yaml.
func Init(v *viper.Viper, file string) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		return
	}
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}
	v.SetConfigType("yaml")
	v.SetConfigName(".agrocalc")
}

// Load reads the config file if any and decodes v. A missing default file is
// not an error; a missing explicit file is.
func Load(v *viper.Viper, file string) (*Config, error) {
	Init(v, file)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every field and reports all problems at once.
func (c *Config) Validate() error {
	var errs []error
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	if c.HTTP.Port < 1 || c.HTTP.Port > 65535 {
		errs = append(errs, fmt.Errorf("http.port out of range: %d", c.HTTP.Port))
	}
	if c.MCP.Port < 1 || c.MCP.Port > 65535 {
		errs = append(errs, fmt.Errorf("mcp.port out of range: %d", c.MCP.Port))
	}
	switch c.MCP.Transport {
	case "stdio", "sse":
	default:
		errs = append(errs, fmt.Errorf("mcp.transport must be stdio or sse, got %q", c.MCP.Transport))
	}
	if _, err := report.ParseFormat(c.Report.Format); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}
