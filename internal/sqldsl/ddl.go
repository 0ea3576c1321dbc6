package sqldsl

import (
	"strings"

	"github.com/pthm/snowgrammar"
)

// CreateTableStmt renders CREATE TABLE from column definitions.
type CreateTableStmt struct {
	Table       snowgrammar.Identifier
	Columns     []*snowgrammar.ColumnDefinition
	IfNotExists bool
}

// SQL renders the CREATE TABLE statement.
func (s CreateTableStmt) SQL(r *Renderer) string {
	cols := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		cols[i] = columnSQL(r, c)
	}
	return "CREATE TABLE " + Optf(s.IfNotExists, "IF NOT EXISTS ") + r.Table(s.Table) +
		" (" + strings.Join(cols, ", ") + ")"
}

// DropTableStmt renders DROP TABLE.
type DropTableStmt struct {
	Table    snowgrammar.Identifier
	IfExists bool
}

// SQL renders the DROP TABLE statement.
func (s DropTableStmt) SQL(r *Renderer) string {
	return "DROP TABLE " + Optf(s.IfExists, "IF EXISTS ") + r.Table(s.Table)
}

// AddColumnStmt renders ALTER TABLE ... ADD COLUMN.
type AddColumnStmt struct {
	Table  snowgrammar.Identifier
	Column *snowgrammar.ColumnDefinition
}

// SQL renders the ALTER TABLE statement.
func (s AddColumnStmt) SQL(r *Renderer) string {
	return "ALTER TABLE " + r.Table(s.Table) + " ADD COLUMN " + columnSQL(r, s.Column)
}

// columnSQL renders "NAME TYPE [NOT NULL] [DEFAULT value]".
func columnSQL(r *Renderer, c *snowgrammar.ColumnDefinition) string {
	parts := []string{r.Column(c)}
	if t := c.Type(); t != "" {
		parts = append(parts, t)
	}
	if !c.IsNullable() {
		parts = append(parts, "NOT NULL")
	}
	if v, ok := c.DefaultValue(); ok {
		parts = append(parts, "DEFAULT "+valueExpr(v).SQL(r))
	}
	return strings.Join(parts, " ")
}
