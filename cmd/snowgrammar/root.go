package main

import (
	"os"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/pthm/snowgrammar"
	"github.com/pthm/snowgrammar/internal/cli"
)

var (
	// Global state set during PersistentPreRunE
	cfg        *cli.Config
	configPath string
	logger     = logr.Discard()

	// Persistent flags
	cfgFile       string
	dialect       string
	caseSensitive bool
	verbose       int
	quiet         bool
)

var rootCmd = &cobra.Command{
	Use:   "snowgrammar",
	Short: "Snowflake identifier and literal quoting",
	Long: `snowgrammar - Snowflake identifier and literal quoting

snowgrammar applies the Snowflake quoting policy used by the query and schema
grammar: unquoted uppercase identifiers by default, or quoted case-preserving
identifiers when SNOWFLAKE_COLUMNS_CASE_SENSITIVE is enabled.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip config loading for help/completion/version commands
		if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "version" {
			return nil
		}

		var err error
		cfg, configPath, err = cli.LoadConfig(cfgFile)
		if err != nil {
			return cli.ConfigError("loading configuration", err)
		}

		// Flags take precedence over env and config file
		if cmd.Flags().Changed("dialect") {
			cfg.Dialect = dialect
		}
		if cmd.Flags().Changed("case-sensitive") {
			cfg.Columns.CaseSensitive = caseSensitive
		}
		if verbose > cfg.Log.Level {
			cfg.Log.Level = verbose
		}
		if err := cfg.Validate(); err != nil {
			return cli.ConfigError("validating configuration", err)
		}

		if quiet {
			logger = logr.Discard()
		} else {
			logger = cli.NewLogger(os.Stderr, cfg.Log.Level, cfg.Log.Format).WithName("snowgrammar")
		}
		logger.V(1).Info("configuration loaded",
			"path", configPath,
			"dialect", cfg.Dialect,
			"caseSensitive", cfg.Columns.CaseSensitive,
		)
		return nil
	},
	SilenceUsage:  true, // Don't show usage on errors
	SilenceErrors: true, // We handle errors ourselves
}

// Command group IDs
const (
	groupQuoting = "quoting"
	groupUtility = "utility"
)

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: auto-discover snowgrammar.yaml)")
	rootCmd.PersistentFlags().StringVar(&dialect, "dialect", cli.DialectSnowflake, "SQL dialect (snowflake or postgres)")
	rootCmd.PersistentFlags().BoolVar(&caseSensitive, "case-sensitive", false, "quote identifiers and preserve their case (overrides "+cli.CaseSensitiveEnv+")")
	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "increase verbosity (can be repeated)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress log output")

	rootCmd.AddGroup(
		&cobra.Group{ID: groupQuoting, Title: "Quoting:"},
		&cobra.Group{ID: groupUtility, Title: "Utility:"},
	)

	quoteCmd.GroupID = groupQuoting
	renderCmd.GroupID = groupQuoting
	compareCmd.GroupID = groupQuoting
	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(compareCmd)

	configCmd.GroupID = groupUtility
	versionCmd.GroupID = groupUtility
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		cli.ExitWithError(err)
	}
}

// quoter returns the Quoter for the loaded configuration.
func quoter() (snowgrammar.Quoter, error) {
	q, err := cfg.Quoter(logger)
	if err != nil {
		return nil, cli.ConfigError("selecting dialect", err)
	}
	return q, nil
}

// quotingError classifies a quoting failure for the exit code.
func quotingError(msg string, err error) error {
	if snowgrammar.IsMalformedIdentifierErr(err) {
		return cli.MalformedError(msg, err)
	}
	return cli.GeneralError(msg, err)
}
