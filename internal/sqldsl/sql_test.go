package sqldsl

import (
	"strings"
	"testing"

	"github.com/pthm/snowgrammar"
)

func TestSelectStmt_SQL(t *testing.T) {
	tests := []struct {
		name   string
		stmt   SelectStmt
		quoter snowgrammar.Quoter
		want   string
	}{
		{
			name:   "wildcard",
			stmt:   SelectStmt{From: Table("users")},
			quoter: snowflake,
			want:   "SELECT *\nFROM USERS",
		},
		{
			name: "full statement",
			stmt: SelectStmt{
				Distinct: true,
				Columns:  []Expr{Col{Table: "u", Column: "id"}, SelectAs(Col{Table: "o", Column: "total"}, "order_total")},
				From:     TableAs("users", "u"),
				Joins: []JoinClause{{
					Type:  "LEFT",
					Table: TableAs("orders", "o"),
					On:    Eq{Left: Col{Table: "o", Column: "user_id"}, Right: Col{Table: "u", Column: "id"}},
				}},
				Where:   And(Eq{Left: Col{Table: "u", Column: "name"}, Right: Lit("O'Brien")}, Gt{Left: Col{Table: "o", Column: "total"}, Right: Int(0)}),
				OrderBy: []OrderBy{{Expr: Col{Table: "u", Column: "id"}, Desc: true}},
				Limit:   10,
			},
			quoter: snowflake,
			want: strings.Join([]string{
				"SELECT DISTINCT U.ID, O.TOTAL AS ORDER_TOTAL",
				"FROM USERS AS U",
				"LEFT JOIN ORDERS AS O ON O.USER_ID = U.ID",
				"WHERE (U.NAME = 'O''Brien' AND O.TOTAL > 0)",
				"ORDER BY U.ID DESC",
				"LIMIT 10",
			}, "\n"),
		},
		{
			name: "case sensitive",
			stmt: SelectStmt{
				Columns: Cols("userId", "*"),
				From:    TableAs("Users", "u"),
			},
			quoter: snowflakeCase,
			want:   "SELECT \"userId\", *\nFROM \"Users\" AS \"u\"",
		},
		{
			name: "postgres",
			stmt: SelectStmt{
				Columns: Cols("userId"),
				From:    Table("public.Users"),
				Where:   Eq{Left: Col{Column: "userId"}, Right: Lit("a")},
			},
			quoter: pg,
			want:   "SELECT \"userId\"\nFROM \"public\".\"Users\"\nWHERE \"userId\" = 'a'",
		},
		{
			name: "cross join and subquery",
			stmt: SelectStmt{
				From: Subquery{Query: SelectStmt{Columns: Cols("id"), From: Table("a")}, Alias: "s"},
				Joins: []JoinClause{
					{Type: "CROSS", Table: Table("b")},
					{Table: TableRef{Name: snowgrammar.Raw("TABLE(FLATTEN(input => s.tags)) f")}, On: Raw("TRUE")},
				},
			},
			quoter: snowflake,
			want:   "SELECT *\nFROM (\nSELECT ID\nFROM A\n) AS S\nCROSS JOIN B\nJOIN TABLE(FLATTEN(input => s.tags)) f ON TRUE",
		},
		{
			name:   "prefixed and schema-qualified table",
			stmt:   SelectStmt{Columns: []Expr{Ident("events.id")}, From: Table("events")},
			quoter: snowgrammar.NewPolicy(snowgrammar.Options{TablePrefix: "app_", Normalizer: snowgrammar.SchemaQualifier{Schema: "raw"}}),
			want:   "SELECT RAW.APP_EVENTS.ID\nFROM RAW.APP_EVENTS",
		},
		{
			name: "aliases with prefix and schema",
			stmt: SelectStmt{
				Columns: []Expr{Col{Table: "u", Column: "id"}, Col{Table: "o", Column: "total"}},
				From:    TableAs("users", "u"),
				Joins: []JoinClause{{
					Table: Subquery{Query: SelectStmt{Columns: Cols("user_id", "total"), From: Table("orders")}, Alias: "o"},
					On:    Eq{Left: Col{Table: "o", Column: "user_id"}, Right: Col{Table: "u", Column: "id"}},
				}},
				Where: Eq{Left: Col{Table: "u", Column: "email"}, Right: Lit("a")},
			},
			quoter: snowgrammar.NewPolicy(snowgrammar.Options{TablePrefix: "app_", Normalizer: snowgrammar.SchemaQualifier{Schema: "s"}}),
			want: strings.Join([]string{
				"SELECT APP_U.ID, APP_O.TOTAL",
				"FROM S.APP_USERS AS APP_U",
				"JOIN (",
				"SELECT USER_ID, TOTAL",
				"FROM S.APP_ORDERS",
				") AS APP_O ON APP_O.USER_ID = APP_U.ID",
				"WHERE APP_U.EMAIL = 'a'",
			}, "\n"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mustRender(t, tt.stmt, tt.quoter); got != tt.want {
				t.Errorf("SelectStmt.SQL() =\n%s\nwant:\n%s", got, tt.want)
			}
		})
	}
}

func TestDML_SQL(t *testing.T) {
	tests := []struct {
		name string
		stmt Expr
		want string
	}{
		{
			name: "insert",
			stmt: InsertStmt{
				Table:   snowgrammar.Name("users"),
				Columns: snowgrammar.Names("id", "name"),
				Rows:    [][]Expr{Values(1, "O'Brien"), Values(2, nil)},
			},
			want: "INSERT INTO USERS (ID, NAME)\nVALUES (1, 'O''Brien'), (2, NULL)",
		},
		{
			name: "insert without columns",
			stmt: InsertStmt{Table: snowgrammar.Name("flags"), Rows: [][]Expr{Values(true)}},
			want: "INSERT INTO FLAGS\nVALUES (TRUE)",
		},
		{
			name: "update",
			stmt: UpdateStmt{
				Table: snowgrammar.Name("users"),
				Set: []Assignment{
					{Column: snowgrammar.Name("name"), Value: Lit("x")},
					{Column: snowgrammar.Name("active"), Value: Bool(true)},
				},
				Where: Eq{Left: Col{Column: "id"}, Right: Int(1)},
			},
			want: "UPDATE USERS\nSET NAME = 'x', ACTIVE = TRUE\nWHERE ID = 1",
		},
		{
			name: "delete",
			stmt: DeleteStmt{Table: snowgrammar.Name("users"), Where: IsNotNull{Expr: Col{Column: "deleted_at"}}},
			want: "DELETE FROM USERS\nWHERE DELETED_AT IS NOT NULL",
		},
		{
			name: "delete all",
			stmt: DeleteStmt{Table: snowgrammar.Name("users")},
			want: "DELETE FROM USERS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mustRender(t, tt.stmt, snowflake); got != tt.want {
				t.Errorf("SQL() =\n%s\nwant:\n%s", got, tt.want)
			}
		})
	}
}

func TestOptf(t *testing.T) {
	if got := Optf(false, "LIMIT %d", 1); got != "" {
		t.Errorf("Optf(false) = %q, want empty", got)
	}
	if got := Optf(true, "LIMIT %d", 1); got != "LIMIT 1" {
		t.Errorf("Optf(true) = %q", got)
	}
}
