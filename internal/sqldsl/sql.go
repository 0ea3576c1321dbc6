package sqldsl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pthm/snowgrammar"
)

// Optf returns formatted string if condition is true, empty string otherwise.
// Useful for optional SQL clauses.
func Optf(cond bool, format string, args ...any) string {
	if !cond {
		return ""
	}
	return fmt.Sprintf(format, args...)
}

// clauses joins non-empty clauses with newlines.
func clauses(parts ...string) string {
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "\n")
}

// JoinClause represents a SQL JOIN clause.
type JoinClause struct {
	Type  string // "INNER", "LEFT", etc.
	Table TableExpr
	On    Expr
}

// SQL renders the JOIN clause.
func (j JoinClause) SQL(r *Renderer) string {
	// Don't add "JOIN" if Type already contains it
	// (e.g., "CROSS JOIN LATERAL" should not become "CROSS JOIN LATERAL JOIN")
	joinKeyword := j.Type + " JOIN"
	if j.Type == "" {
		joinKeyword = "JOIN"
	} else if strings.Contains(j.Type, "JOIN") {
		joinKeyword = j.Type
	}

	tableSQL := j.Table.TableSQL(r)
	if strings.HasPrefix(j.Type, "CROSS") || j.On == nil {
		return joinKeyword + " " + tableSQL
	}
	return joinKeyword + " " + tableSQL + " ON " + j.On.SQL(r)
}

// OrderBy is a single ORDER BY term.
type OrderBy struct {
	Expr Expr
	Desc bool
}

// SQL renders the term.
func (o OrderBy) SQL(r *Renderer) string {
	return o.Expr.SQL(r) + Optf(o.Desc, " DESC")
}

// SelectStmt represents a SELECT query.
type SelectStmt struct {
	Distinct bool
	Columns  []Expr // empty selects *
	From     TableExpr
	Joins    []JoinClause
	Where    Expr
	OrderBy  []OrderBy
	Limit    int
}

// SQL renders the SELECT statement.
func (s SelectStmt) SQL(r *Renderer) string {
	return clauses(
		"SELECT "+Optf(s.Distinct, "DISTINCT ")+s.columnsSQL(r),
		s.fromSQL(r),
		s.joinsSQL(r),
		whereSQL(r, s.Where),
		s.orderBySQL(r),
		Optf(s.Limit > 0, "LIMIT %d", s.Limit),
	)
}

func (s SelectStmt) columnsSQL(r *Renderer) string {
	if len(s.Columns) == 0 {
		return snowgrammar.Wildcard
	}
	return joinExprList(r, s.Columns, ", ")
}

func (s SelectStmt) fromSQL(r *Renderer) string {
	if s.From == nil {
		return ""
	}
	return "FROM " + s.From.TableSQL(r)
}

func (s SelectStmt) joinsSQL(r *Renderer) string {
	parts := make([]string, len(s.Joins))
	for i, j := range s.Joins {
		parts[i] = j.SQL(r)
	}
	return strings.Join(parts, "\n")
}

func (s SelectStmt) orderBySQL(r *Renderer) string {
	if len(s.OrderBy) == 0 {
		return ""
	}
	parts := make([]string, len(s.OrderBy))
	for i, o := range s.OrderBy {
		parts[i] = o.SQL(r)
	}
	return "ORDER BY " + strings.Join(parts, ", ")
}

func whereSQL(r *Renderer, where Expr) string {
	if where == nil {
		return ""
	}
	return "WHERE " + where.SQL(r)
}

// InsertStmt represents INSERT INTO ... VALUES.
type InsertStmt struct {
	Table   snowgrammar.Identifier
	Columns []snowgrammar.Identifier
	Rows    [][]Expr
}

// SQL renders the INSERT statement.
func (s InsertStmt) SQL(r *Renderer) string {
	rows := make([]string, len(s.Rows))
	for i, row := range s.Rows {
		rows[i] = "(" + joinExprList(r, row, ", ") + ")"
	}
	head := "INSERT INTO " + r.Table(s.Table)
	if len(s.Columns) > 0 {
		head += " (" + r.IdentifierList(s.Columns) + ")"
	}
	return clauses(head, "VALUES "+strings.Join(rows, ", "))
}

// Assignment is a single SET term of an UPDATE.
type Assignment struct {
	Column snowgrammar.Identifier
	Value  Expr
}

// UpdateStmt represents UPDATE ... SET ... WHERE.
type UpdateStmt struct {
	Table snowgrammar.Identifier
	Set   []Assignment
	Where Expr
}

// SQL renders the UPDATE statement.
func (s UpdateStmt) SQL(r *Renderer) string {
	sets := make([]string, len(s.Set))
	for i, a := range s.Set {
		sets[i] = r.Column(a.Column) + " = " + a.Value.SQL(r)
	}
	return clauses(
		"UPDATE "+r.Table(s.Table),
		"SET "+strings.Join(sets, ", "),
		whereSQL(r, s.Where),
	)
}

// DeleteStmt represents DELETE FROM ... WHERE.
type DeleteStmt struct {
	Table snowgrammar.Identifier
	Where Expr
}

// SQL renders the DELETE statement.
func (s DeleteStmt) SQL(r *Renderer) string {
	return clauses("DELETE FROM "+r.Table(s.Table), whereSQL(r, s.Where))
}

// Values converts Go values to literal expressions: strings become Lit,
// integers Int, booleans Bool and nil Null. Expr values pass through.
func Values(values ...any) []Expr {
	exprs := make([]Expr, len(values))
	for i, v := range values {
		exprs[i] = valueExpr(v)
	}
	return exprs
}

func valueExpr(v any) Expr {
	switch val := v.(type) {
	case Expr:
		return val
	case snowgrammar.Raw:
		return Raw(val)
	case string:
		return Lit(val)
	case int:
		return Int(val)
	case int64:
		return Raw(strconv.FormatInt(val, 10))
	case float64:
		return Raw(strconv.FormatFloat(val, 'f', -1, 64))
	case bool:
		return Bool(val)
	case nil:
		return Null{}
	default:
		return Lit(fmt.Sprint(val))
	}
}
