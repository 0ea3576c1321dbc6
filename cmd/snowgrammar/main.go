// Package main provides a CLI for quoting Snowflake identifiers and rendering
// SQL through the snowgrammar quoting policy.
//
// The CLI supports:
//   - quote: Quote column lists, tables, qualified names and literals
//   - render: Render statements described in a YAML document
//   - compare: Show how names render in the Snowflake and PostgreSQL dialects
//   - config show: Print the effective configuration
//
// Column case sensitivity follows SNOWFLAKE_COLUMNS_CASE_SENSITIVE, the
// columns.case_sensitive config key, or --case-sensitive, in increasing
// precedence.
//
// Usage:
//
//	snowgrammar [flags] <command>
package main

func main() {
	Execute()
}
