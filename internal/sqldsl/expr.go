package sqldsl

import (
	"strconv"
	"strings"

	"github.com/pthm/snowgrammar"
)

// Col represents a column reference, optionally qualified by a table alias
// (e.g., u.id). The qualifier is quoted with the dialect's alias rule, the
// same rule TableRef and Subquery use for their aliases.
type Col struct {
	Table  string
	Column string
}

// SQL renders the column reference.
func (c Col) SQL(r *Renderer) string {
	column := r.Column(snowgrammar.Name(c.Column))
	if c.Table == "" {
		return column
	}
	return r.Alias(c.Table) + "." + column
}

// Ident is a dotted name such as "schema.table.column". The first of several
// segments is quoted as a table.
type Ident string

// SQL renders the qualified name.
func (i Ident) SQL(r *Renderer) string {
	return r.QualifiedName(snowgrammar.Split(string(i)))
}

// Identifier wraps any snowgrammar.Identifier as a column expression.
type Identifier struct {
	ID snowgrammar.Identifier
}

// SQL renders the identifier as a column.
func (i Identifier) SQL(r *Renderer) string {
	return r.Column(i.ID)
}

// Star represents the * wildcard.
type Star struct{}

// SQL renders *.
func (Star) SQL(*Renderer) string {
	return snowgrammar.Wildcard
}

// Lit represents a literal string value (auto-quoted by the dialect).
type Lit string

// SQL renders the literal.
func (l Lit) SQL(r *Renderer) string {
	return r.Literal(string(l))
}

// Raw is an escape hatch for arbitrary SQL expressions.
type Raw string

// SQL renders the raw SQL as-is.
func (r Raw) SQL(*Renderer) string {
	return string(r)
}

// Int represents an integer literal.
type Int int

// SQL renders the integer.
func (i Int) SQL(*Renderer) string {
	return strconv.Itoa(int(i))
}

// Bool represents a boolean literal.
type Bool bool

// SQL renders the boolean.
func (b Bool) SQL(*Renderer) string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}

// Null represents SQL NULL.
type Null struct{}

// SQL renders NULL.
func (Null) SQL(*Renderer) string {
	return "NULL"
}

// Func represents a SQL function call. The name is emitted as written.
type Func struct {
	Name string
	Args []Expr
}

// SQL renders the function call.
func (f Func) SQL(r *Renderer) string {
	return f.Name + "(" + joinExprList(r, f.Args, ", ") + ")"
}

// Alias wraps an expression with an alias (expr AS alias).
type Alias struct {
	Expr Expr
	Name string
}

// SQL renders the aliased expression.
func (a Alias) SQL(r *Renderer) string {
	return a.Expr.SQL(r) + " AS " + r.Column(snowgrammar.Name(a.Name))
}

// Paren wraps an expression in parentheses.
type Paren struct {
	Expr Expr
}

// SQL renders the parenthesized expression.
func (p Paren) SQL(r *Renderer) string {
	return "(" + p.Expr.SQL(r) + ")"
}

// Concat represents SQL string concatenation (||).
type Concat struct {
	Parts []Expr
}

// SQL renders the concatenation.
func (c Concat) SQL(r *Renderer) string {
	if len(c.Parts) == 0 {
		return r.Literal("")
	}
	return joinExprList(r, c.Parts, " || ")
}

// SelectAs creates an aliased column expression (expr AS alias).
func SelectAs(expr Expr, alias string) Alias {
	return Alias{Expr: expr, Name: alias}
}

// Cols creates unqualified column references.
func Cols(names ...string) []Expr {
	exprs := make([]Expr, len(names))
	for i, n := range names {
		exprs[i] = Col{Column: n}
	}
	return exprs
}

// joinExprList renders expressions joined by sep.
func joinExprList(r *Renderer, exprs []Expr, sep string) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = e.SQL(r)
	}
	return strings.Join(parts, sep)
}
