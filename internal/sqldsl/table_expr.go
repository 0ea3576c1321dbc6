package sqldsl

import "github.com/pthm/snowgrammar"

// TableExpr is the interface for table expressions in FROM and JOIN clauses.
type TableExpr interface {
	// TableSQL returns the SQL for use in FROM/JOIN clauses.
	TableSQL(r *Renderer) string
	// TableAlias returns the alias if any (empty string if none).
	TableAlias() string
}

// TableRef references a table by identifier. Names are normalized and
// prefixed by the dialect; Raw identifiers are emitted as written.
type TableRef struct {
	Name  snowgrammar.Identifier
	Alias string
}

// TableSQL implements TableExpr.
func (t TableRef) TableSQL(r *Renderer) string {
	table := r.Table(t.Name)
	if t.Alias != "" {
		return table + " AS " + r.Alias(t.Alias)
	}
	return table
}

// TableAlias implements TableExpr.
func (t TableRef) TableAlias() string {
	return t.Alias
}

// Table creates a table reference.
func Table(name string) TableRef {
	return TableRef{Name: snowgrammar.Name(name)}
}

// TableAs creates a table reference with an alias.
func TableAs(name, alias string) TableRef {
	return TableRef{Name: snowgrammar.Name(name), Alias: alias}
}

// Subquery uses a SELECT as a table expression.
type Subquery struct {
	Query SelectStmt
	Alias string
}

// TableSQL implements TableExpr.
func (s Subquery) TableSQL(r *Renderer) string {
	return "(\n" + s.Query.SQL(r) + "\n) AS " + r.Alias(s.Alias)
}

// TableAlias implements TableExpr.
func (s Subquery) TableAlias() string {
	return s.Alias
}
