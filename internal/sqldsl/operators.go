package sqldsl

import (
	"strings"
)

// Comparison operators

// Eq represents an equality comparison (=).
type Eq struct {
	Left  Expr
	Right Expr
}

func (e Eq) SQL(r *Renderer) string { return e.Left.SQL(r) + " = " + e.Right.SQL(r) }

// Ne represents a not-equal comparison (<>).
type Ne struct {
	Left  Expr
	Right Expr
}

func (n Ne) SQL(r *Renderer) string { return n.Left.SQL(r) + " <> " + n.Right.SQL(r) }

// Lt represents a less-than comparison (<).
type Lt struct {
	Left  Expr
	Right Expr
}

func (l Lt) SQL(r *Renderer) string { return l.Left.SQL(r) + " < " + l.Right.SQL(r) }

// Gt represents a greater-than comparison (>).
type Gt struct {
	Left  Expr
	Right Expr
}

func (g Gt) SQL(r *Renderer) string { return g.Left.SQL(r) + " > " + g.Right.SQL(r) }

// Lte represents a less-than-or-equal comparison (<=).
type Lte struct {
	Left  Expr
	Right Expr
}

func (l Lte) SQL(r *Renderer) string { return l.Left.SQL(r) + " <= " + l.Right.SQL(r) }

// Gte represents a greater-than-or-equal comparison (>=).
type Gte struct {
	Left  Expr
	Right Expr
}

func (g Gte) SQL(r *Renderer) string { return g.Left.SQL(r) + " >= " + g.Right.SQL(r) }

// quoteValues renders a slice of strings as quoted SQL literals.
func quoteValues(r *Renderer, values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = r.Literal(v)
	}
	return strings.Join(quoted, ", ")
}

// In represents an IN clause for string values.
type In struct {
	Expr   Expr
	Values []string
}

func (i In) SQL(r *Renderer) string {
	if len(i.Values) == 0 {
		return "FALSE"
	}
	return i.Expr.SQL(r) + " IN (" + quoteValues(r, i.Values) + ")"
}

// NotIn represents a NOT IN clause for string values.
type NotIn struct {
	Expr   Expr
	Values []string
}

func (n NotIn) SQL(r *Renderer) string {
	if len(n.Values) == 0 {
		return "TRUE"
	}
	return n.Expr.SQL(r) + " NOT IN (" + quoteValues(r, n.Values) + ")"
}

// Logical operators

// filterNilExprs removes nil expressions from the slice.
func filterNilExprs(exprs []Expr) []Expr {
	filtered := make([]Expr, 0, len(exprs))
	for _, e := range exprs {
		if e != nil {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// joinExprs renders expressions joined by a separator, wrapped in parentheses if more than one.
func joinExprs(r *Renderer, exprs []Expr, sep, emptyVal string) string {
	switch len(exprs) {
	case 0:
		return emptyVal
	case 1:
		return exprs[0].SQL(r)
	default:
		return "(" + joinExprList(r, exprs, sep) + ")"
	}
}

// AndExpr represents a logical AND of multiple expressions.
type AndExpr struct {
	Exprs []Expr
}

func (a AndExpr) SQL(r *Renderer) string { return joinExprs(r, a.Exprs, " AND ", "TRUE") }

// And creates an AND expression from multiple expressions.
func And(exprs ...Expr) AndExpr {
	return AndExpr{Exprs: filterNilExprs(exprs)}
}

// OrExpr represents a logical OR of multiple expressions.
type OrExpr struct {
	Exprs []Expr
}

func (o OrExpr) SQL(r *Renderer) string { return joinExprs(r, o.Exprs, " OR ", "FALSE") }

// Or creates an OR expression from multiple expressions.
func Or(exprs ...Expr) OrExpr {
	return OrExpr{Exprs: filterNilExprs(exprs)}
}

// NotExpr represents a logical NOT of an expression.
type NotExpr struct {
	Expr Expr
}

func (n NotExpr) SQL(r *Renderer) string { return "NOT (" + n.Expr.SQL(r) + ")" }

// Not creates a NOT expression.
func Not(expr Expr) NotExpr { return NotExpr{Expr: expr} }

// Exists represents an EXISTS subquery.
type Exists struct {
	Query Expr
}

func (e Exists) SQL(r *Renderer) string { return "EXISTS (\n" + e.Query.SQL(r) + "\n)" }

// IsNull represents IS NULL check.
type IsNull struct {
	Expr Expr
}

func (i IsNull) SQL(r *Renderer) string { return i.Expr.SQL(r) + " IS NULL" }

// IsNotNull represents IS NOT NULL check.
type IsNotNull struct {
	Expr Expr
}

func (i IsNotNull) SQL(r *Renderer) string { return i.Expr.SQL(r) + " IS NOT NULL" }
