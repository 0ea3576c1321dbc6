package snowgrammar

import (
	"fmt"
	"strings"

	"github.com/go-logr/logr"
)

// Options configures a Policy. The zero value is the Snowflake default:
// case-insensitive columns, no prefix, no table normalization.
type Options struct {
	// CaseSensitiveColumns selects quoted, case-preserving identifiers.
	// Mirrors SNOWFLAKE_COLUMNS_CASE_SENSITIVE.
	CaseSensitiveColumns bool

	// TablePrefix is prepended to the last segment of table-like names.
	TablePrefix string

	// Normalizer rewrites table names before quoting. Defaults to Passthrough.
	Normalizer TableNormalizer

	// Logger receives V(2) diagnostics. Defaults to logr.Discard().
	Logger logr.Logger
}

// Policy is the Snowflake quoting policy. It is immutable once constructed.
type Policy struct {
	caseSensitive bool
	tablePrefix   string
	normalizer    TableNormalizer
	log           logr.Logger
}

var _ Quoter = (*Policy)(nil)

// NewPolicy snapshots opts into a Policy.
func NewPolicy(opts Options) *Policy {
	normalizer := opts.Normalizer
	if normalizer == nil {
		normalizer = Passthrough
	}
	log := opts.Logger
	if log.GetSink() == nil {
		log = logr.Discard()
	}
	return &Policy{
		caseSensitive: opts.CaseSensitiveColumns,
		tablePrefix:   opts.TablePrefix,
		normalizer:    normalizer,
		log:           log,
	}
}

// CaseSensitive reports whether identifiers are emitted quoted.
func (p *Policy) CaseSensitive() bool {
	return p.caseSensitive
}

// TablePrefix returns the configured table prefix.
func (p *Policy) TablePrefix() string {
	return p.tablePrefix
}

// IdentifierList quotes each column and joins the results with ", ".
func (p *Policy) IdentifierList(columns []Identifier) (string, error) {
	parts := make([]string, len(columns))
	for i, c := range columns {
		s, err := p.Column(c)
		if err != nil {
			return "", fmt.Errorf("column %d: %w", i, err)
		}
		parts[i] = s
	}
	return strings.Join(parts, ", "), nil
}

// Table quotes a table-like identifier. Raw input is returned verbatim;
// anything else is normalized, prefixed and quoted segment by segment.
func (p *Policy) Table(table Identifier) (string, error) {
	text, raw, err := Resolve(table)
	if err != nil {
		return "", err
	}
	if raw {
		return text, nil
	}
	return p.table(text), nil
}

// QualifiedName quotes a dotted name. A single segment is a column; with
// more, segment 0 is quoted as a table and the rest as columns.
func (p *Policy) QualifiedName(segments []Identifier) (string, error) {
	switch len(segments) {
	case 0:
		return "", nil
	case 1:
		return p.Column(segments[0])
	}

	parts := make([]string, len(segments))
	for i, seg := range segments {
		var (
			s   string
			err error
		)
		if i == 0 {
			s, err = p.Table(seg)
		} else {
			s, err = p.Column(seg)
		}
		if err != nil {
			return "", fmt.Errorf("segment %d: %w", i, err)
		}
		parts[i] = s
	}
	return strings.Join(parts, "."), nil
}

// Column quotes a column-like identifier.
func (p *Policy) Column(column Identifier) (string, error) {
	text, raw, err := Resolve(column)
	if err != nil {
		return "", err
	}
	if raw {
		return text, nil
	}
	return p.quote(text), nil
}

// Literal wraps value in single quotes, doubling embedded single quotes.
func (p *Policy) Literal(value string) string {
	if value == Wildcard {
		return value
	}
	return "'" + strings.ReplaceAll(value, "'", "''") + "'"
}

// Alias quotes a table alias. An alias stands in for a table, so it carries
// the table prefix, but it names nothing in a schema and is never normalized.
func (p *Policy) Alias(name string) string {
	if name != "" {
		name = p.tablePrefix + name
	}
	return p.quote(name)
}

// table normalizes a table name and quotes each of its segments. The prefix
// lands on the last segment, which names the table itself.
func (p *Policy) table(name string) string {
	segments := strings.Split(p.normalizer.NormalizeTable(name), ".")
	last := len(segments) - 1
	for i, s := range segments {
		if i == last && s != "" {
			s = p.tablePrefix + s
		}
		segments[i] = p.quote(s)
	}
	return strings.Join(segments, ".")
}

// quote applies the column rule to a single segment.
func (p *Policy) quote(text string) string {
	if text == Wildcard {
		return text
	}
	if !p.caseSensitive {
		if strings.Contains(text, `"`) {
			p.log.V(2).Info("stripping double quotes from case-insensitive identifier", "identifier", text)
		}
		return strings.ToUpper(strings.ReplaceAll(text, `"`, ""))
	}
	return `"` + strings.ReplaceAll(text, `"`, `""`) + `"`
}
