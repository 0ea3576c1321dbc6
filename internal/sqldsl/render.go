package sqldsl

import (
	"github.com/hashicorp/go-multierror"

	"github.com/pthm/snowgrammar"
)

// Expr is the interface that all SQL expression and statement types implement.
type Expr interface {
	SQL(r *Renderer) string
}

// Renderer binds a Quoter to a single rendering pass. Quoting failures are
// recorded rather than returned, so rendering always completes; Err reports
// every failure at the end.
type Renderer struct {
	quoter snowgrammar.Quoter
	errs   *multierror.Error
}

// NewRenderer creates a Renderer for q.
func NewRenderer(q snowgrammar.Quoter) *Renderer {
	return &Renderer{quoter: q}
}

// Render renders e with q and returns the SQL together with any quoting errors.
func Render(e Expr, q snowgrammar.Quoter) (string, error) {
	r := NewRenderer(q)
	sql := e.SQL(r)
	return sql, r.Err()
}

// Err returns the accumulated quoting errors, or nil.
func (r *Renderer) Err() error {
	return r.errs.ErrorOrNil()
}

func (r *Renderer) record(s string, err error) string {
	if err != nil {
		r.errs = multierror.Append(r.errs, err)
	}
	return s
}

// Column quotes a column identifier.
func (r *Renderer) Column(id snowgrammar.Identifier) string {
	return r.record(r.quoter.Column(id))
}

// Table quotes a table identifier.
func (r *Renderer) Table(id snowgrammar.Identifier) string {
	return r.record(r.quoter.Table(id))
}

// QualifiedName quotes a dotted name.
func (r *Renderer) QualifiedName(segments []snowgrammar.Identifier) string {
	return r.record(r.quoter.QualifiedName(segments))
}

// IdentifierList quotes a column list.
func (r *Renderer) IdentifierList(columns []snowgrammar.Identifier) string {
	return r.record(r.quoter.IdentifierList(columns))
}

// Alias quotes a table alias.
func (r *Renderer) Alias(name string) string {
	return r.quoter.Alias(name)
}

// Literal quotes a string literal.
func (r *Renderer) Literal(value string) string {
	return r.quoter.Literal(value)
}
