// Package postgres provides a PostgreSQL Quoter.
//
// PostgreSQL folds unquoted identifiers to lowercase, so every identifier is
// always quoted and keeps its case. It shares the Identifier variants and the
// wildcard rule with the Snowflake policy, which makes it a drop-in
// replacement for comparing generated SQL across dialects.
package postgres

import (
	"fmt"
	"strings"

	pgx "github.com/jackc/pgx/v5"
	"github.com/lib/pq"

	"github.com/pthm/snowgrammar"
)

// Quoter quotes identifiers and literals for PostgreSQL.
type Quoter struct{}

var _ snowgrammar.Quoter = (*Quoter)(nil)

// New returns a PostgreSQL Quoter.
func New() *Quoter {
	return &Quoter{}
}

// Column quotes a column identifier with pq.QuoteIdentifier.
func (q *Quoter) Column(column snowgrammar.Identifier) (string, error) {
	text, raw, err := snowgrammar.Resolve(column)
	if err != nil {
		return "", err
	}
	if raw || text == snowgrammar.Wildcard {
		return text, nil
	}
	return pq.QuoteIdentifier(text), nil
}

// Table quotes a possibly schema-qualified table name, one quoted part per
// dotted segment.
func (q *Quoter) Table(table snowgrammar.Identifier) (string, error) {
	text, raw, err := snowgrammar.Resolve(table)
	if err != nil {
		return "", err
	}
	if raw {
		return text, nil
	}
	return pgx.Identifier(strings.Split(text, ".")).Sanitize(), nil
}

// QualifiedName quotes a dotted name. The first of several segments is
// quoted as a table, the rest as columns.
func (q *Quoter) QualifiedName(segments []snowgrammar.Identifier) (string, error) {
	switch len(segments) {
	case 0:
		return "", nil
	case 1:
		return q.Column(segments[0])
	}

	parts := make([]string, len(segments))
	for i, seg := range segments {
		var (
			s   string
			err error
		)
		if i == 0 {
			s, err = q.Table(seg)
		} else {
			s, err = q.Column(seg)
		}
		if err != nil {
			return "", fmt.Errorf("segment %d: %w", i, err)
		}
		parts[i] = s
	}
	return strings.Join(parts, "."), nil
}

// IdentifierList quotes each column and joins them with ", ".
func (q *Quoter) IdentifierList(columns []snowgrammar.Identifier) (string, error) {
	parts := make([]string, len(columns))
	for i, c := range columns {
		s, err := q.Column(c)
		if err != nil {
			return "", fmt.Errorf("column %d: %w", i, err)
		}
		parts[i] = s
	}
	return strings.Join(parts, ", "), nil
}

// Literal quotes a string with pq.QuoteLiteral. Values containing
// backslashes are emitted as escape strings (E'...').
func (q *Quoter) Literal(value string) string {
	return pq.QuoteLiteral(value)
}

// Alias quotes a table alias as a plain identifier.
func (q *Quoter) Alias(name string) string {
	return pq.QuoteIdentifier(name)
}
