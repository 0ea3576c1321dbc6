package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-logr/logr"
	"github.com/spf13/viper"

	"github.com/pthm/snowgrammar"
	"github.com/pthm/snowgrammar/pkg/dialect/postgres"
)

const (
	maxWalkDepth = 25

	// CaseSensitiveEnv is the environment variable the Snowflake driver
	// reads to decide column case sensitivity.
	CaseSensitiveEnv = "SNOWFLAKE_COLUMNS_CASE_SENSITIVE"
)

// Supported dialects.
const (
	DialectSnowflake = "snowflake"
	DialectPostgres  = "postgres"
)

// Config represents the snowgrammar configuration from snowgrammar.yaml.
type Config struct {
	Dialect string        `mapstructure:"dialect" json:"dialect"`
	Columns ColumnsConfig `mapstructure:"columns" json:"columns"`
	Tables  TablesConfig  `mapstructure:"tables" json:"tables"`
	Log     LogConfig     `mapstructure:"log" json:"log"`
}

// ColumnsConfig holds identifier quoting settings.
type ColumnsConfig struct {
	CaseSensitive bool `mapstructure:"case_sensitive" json:"case_sensitive"`
}

// TablesConfig holds table name settings.
type TablesConfig struct {
	Prefix string `mapstructure:"prefix" json:"prefix"`
	Schema string `mapstructure:"schema" json:"schema"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  int    `mapstructure:"level" json:"level"`
	Format string `mapstructure:"format" json:"format"`
}

// LoadConfig discovers and loads configuration with proper precedence:
// flags > env > config file > defaults.
//
// Returns the loaded config, the path to the config file (empty if none found),
// and any error encountered.
func LoadConfig(explicitConfigPath string) (*Config, string, error) {
	v := viper.New()

	// 1. Set defaults first (lowest precedence)
	setDefaults(v)

	// 2. Set up environment variable binding
	v.SetEnvPrefix("SNOWGRAMMAR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("columns.case_sensitive", CaseSensitiveEnv, "SNOWGRAMMAR_COLUMNS_CASE_SENSITIVE"); err != nil {
		return nil, "", fmt.Errorf("binding %s: %w", CaseSensitiveEnv, err)
	}

	// 3. Find and load config file
	configPath, err := findConfigFile(explicitConfigPath)
	if err != nil {
		return nil, "", err
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, configPath, fmt.Errorf("reading config file: %w", err)
		}
	}

	// 4. Unmarshal into Config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, configPath, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, configPath, err
	}

	return &cfg, configPath, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("dialect", DialectSnowflake)

	v.SetDefault("columns.case_sensitive", false)

	v.SetDefault("tables.prefix", "")
	v.SetDefault("tables.schema", "")

	v.SetDefault("log.level", 0)
	v.SetDefault("log.format", "text")
}

// findConfigFile finds the config file to use.
// If explicitPath is provided, it validates the file exists.
// Otherwise, it walks up from cwd looking for snowgrammar.yaml or snowgrammar.yml,
// stopping at a .git directory or after maxWalkDepth levels.
func findConfigFile(explicitPath string) (string, error) {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return "", fmt.Errorf("config file not found: %s", explicitPath)
		}
		return explicitPath, nil
	}

	// Auto-discovery: walk up to .git or maxWalkDepth
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting cwd: %w", err)
	}

	dir := cwd
	for i := 0; i < maxWalkDepth; i++ {
		for _, name := range []string{"snowgrammar.yaml", "snowgrammar.yml"} {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			}
		}

		// Check for repo boundary (.git file or directory)
		gitPath := filepath.Join(dir, ".git")
		if _, err := os.Stat(gitPath); err == nil {
			break
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", nil // No config found, use defaults
}

// Validate checks values that cannot be expressed through defaults.
func (c *Config) Validate() error {
	switch c.Dialect {
	case DialectSnowflake, DialectPostgres:
	default:
		return fmt.Errorf("unknown dialect %q (want %s or %s)", c.Dialect, DialectSnowflake, DialectPostgres)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q (want text or json)", c.Log.Format)
	}
	return nil
}

// Policy builds the Snowflake quoting policy from the configuration.
// The configuration is read once here; the policy never consults the
// environment again.
func (c *Config) Policy(log logr.Logger) *snowgrammar.Policy {
	return snowgrammar.NewPolicy(snowgrammar.Options{
		CaseSensitiveColumns: c.Columns.CaseSensitive,
		TablePrefix:          c.Tables.Prefix,
		Normalizer:           snowgrammar.SchemaQualifier{Schema: c.Tables.Schema},
		Logger:               log.WithName("policy"),
	})
}

// Quoter returns the Quoter for the configured dialect.
func (c *Config) Quoter(log logr.Logger) (snowgrammar.Quoter, error) {
	switch c.Dialect {
	case DialectSnowflake, "":
		return c.Policy(log), nil
	case DialectPostgres:
		return postgres.New(), nil
	default:
		return nil, fmt.Errorf("unknown dialect %q", c.Dialect)
	}
}
