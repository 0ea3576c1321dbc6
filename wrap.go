package snowgrammar

import (
	"regexp"
	"strings"
)

var aliasPattern = regexp.MustCompile(`(?i)\s+as\s+`)

// splitAlias splits "expr as alias" on the first case-insensitive " as ".
func splitAlias(value string) (expr, alias string, ok bool) {
	parts := aliasPattern.Split(value, 2)
	if len(parts) != 2 {
		return value, "", false
	}
	return parts[0], parts[1], true
}

// Wrap quotes free-form column text the way a query builder receives it:
// "users.id" is a qualified name and "users.id as uid" adds an alias.
//
// The qualifier may be an alias introduced by WrapTable, so it is quoted
// with the Alias rule: prefixed but not normalized.
func (p *Policy) Wrap(value string) string {
	if expr, alias, ok := splitAlias(value); ok {
		return p.Wrap(expr) + " AS " + p.quote(alias)
	}
	segments := strings.Split(value, ".")
	if len(segments) == 1 {
		return p.quote(value)
	}
	parts := make([]string, len(segments))
	parts[0] = p.Alias(segments[0])
	for i, s := range segments[1:] {
		parts[i+1] = p.quote(s)
	}
	return strings.Join(parts, ".")
}

// WrapTable quotes free-form table text. An alias ("users as u") is quoted
// with the Alias rule, so Wrap("u.id") refers to it.
func (p *Policy) WrapTable(value string) string {
	if table, alias, ok := splitAlias(value); ok {
		return p.table(table) + " AS " + p.Alias(alias)
	}
	return p.table(value)
}
