package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/pthm/snowgrammar"
	"github.com/pthm/snowgrammar/pkg/dialect/postgres"
)

var (
	compareNameStyle  = lipgloss.NewStyle().Bold(true)
	compareLabelStyle = lipgloss.NewStyle().Faint(true).Width(12)
)

var compareCmd = &cobra.Command{
	Use:   "compare NAME...",
	Short: "Show how qualified names render in each dialect",
	Example: `  snowgrammar compare users.id "Mixed Case.col"`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dialects := []struct {
			name   string
			quoter snowgrammar.Quoter
		}{
			{name: "snowflake", quoter: cfg.Policy(logger)},
			{name: "postgres", quoter: postgres.New()},
		}

		out := cmd.OutOrStdout()
		for _, name := range args {
			fmt.Fprintln(out, compareNameStyle.Render(name))
			for _, d := range dialects {
				quoted, err := d.quoter.QualifiedName(snowgrammar.Split(name))
				if err != nil {
					return quotingError("quoting "+name, err)
				}
				fmt.Fprintln(out, "  "+compareLabelStyle.Render(d.name)+quoted)
			}
		}
		return nil
	},
}
