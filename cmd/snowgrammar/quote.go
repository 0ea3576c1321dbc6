package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pthm/snowgrammar"
	"github.com/pthm/snowgrammar/internal/cli"
)

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Quote identifiers and literals",
	Example: `  # Quote a column list (COL_A, COL_B)
  snowgrammar quote column col_a col_b

  # Preserve case by quoting ("userId")
  SNOWFLAKE_COLUMNS_CASE_SENSITIVE=true snowgrammar quote column userId

  # Quote a literal ('O''Brien')
  snowgrammar quote literal "O'Brien"`,
}

var quoteColumnCmd = &cobra.Command{
	Use:   "column NAME...",
	Short: "Quote a comma-separated column list",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		q, err := quoter()
		if err != nil {
			return err
		}
		out, err := q.IdentifierList(snowgrammar.Names(args...))
		if err != nil {
			return quotingError("quoting columns", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

var quoteTableCmd = &cobra.Command{
	Use:   "table NAME",
	Short: "Quote a table name, applying the configured prefix and schema",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		q, err := quoter()
		if err != nil {
			return err
		}
		out, err := q.Table(snowgrammar.Name(args[0]))
		if err != nil {
			return quotingError("quoting table", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

var quoteNameCmd = &cobra.Command{
	Use:   "name DOTTED.NAME...",
	Short: "Quote qualified names such as table.column",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		q, err := quoter()
		if err != nil {
			return err
		}
		for _, name := range args {
			out, err := q.QualifiedName(snowgrammar.Split(name))
			if err != nil {
				return quotingError("quoting name", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
		}
		return nil
	},
}

var quoteLiteralCmd = &cobra.Command{
	Use:   "literal VALUE...",
	Short: "Quote string literals",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		q, err := quoter()
		if err != nil {
			return err
		}
		for _, v := range args {
			fmt.Fprintln(cmd.OutOrStdout(), q.Literal(v))
		}
		return nil
	},
}

var quoteWrapTable bool

var quoteWrapCmd = &cobra.Command{
	Use:   "wrap VALUE...",
	Short: `Quote free-form builder input such as "users.id as uid" (snowflake only)`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Dialect != cli.DialectSnowflake {
			return cli.ConfigError("wrap", fmt.Errorf("not supported for dialect %q", cfg.Dialect))
		}
		p := cfg.Policy(logger)
		for _, v := range args {
			if quoteWrapTable {
				fmt.Fprintln(cmd.OutOrStdout(), p.WrapTable(v))
				continue
			}
			fmt.Fprintln(cmd.OutOrStdout(), p.Wrap(v))
		}
		return nil
	},
}

func init() {
	quoteWrapCmd.Flags().BoolVar(&quoteWrapTable, "table", false, "treat values as table references")

	quoteCmd.AddCommand(quoteColumnCmd)
	quoteCmd.AddCommand(quoteTableCmd)
	quoteCmd.AddCommand(quoteNameCmd)
	quoteCmd.AddCommand(quoteLiteralCmd)
	quoteCmd.AddCommand(quoteWrapCmd)
}
