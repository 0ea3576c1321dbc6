package sqldsl

import (
	"testing"

	"github.com/pthm/snowgrammar"
	"github.com/pthm/snowgrammar/pkg/dialect/postgres"
)

var (
	snowflake     = snowgrammar.NewPolicy(snowgrammar.Options{})
	snowflakeCase = snowgrammar.NewPolicy(snowgrammar.Options{CaseSensitiveColumns: true})
	pg            = postgres.New()
)

func mustRender(t *testing.T, e Expr, q snowgrammar.Quoter) string {
	t.Helper()
	got, err := Render(e, q)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return got
}

func TestExpr_SQL(t *testing.T) {
	tests := []struct {
		name   string
		expr   Expr
		quoter snowgrammar.Quoter
		want   string
	}{
		{name: "column", expr: Col{Column: "id"}, quoter: snowflake, want: "ID"},
		{name: "alias qualified column", expr: Col{Table: "u", Column: "id"}, quoter: snowflake, want: "U.ID"},
		{name: "case sensitive column", expr: Col{Table: "u", Column: "userId"}, quoter: snowflakeCase, want: `"u"."userId"`},
		{name: "postgres column", expr: Col{Table: "u", Column: "userId"}, quoter: pg, want: `"u"."userId"`},
		{name: "alias qualifier carries prefix", expr: Col{Table: "u", Column: "id"}, quoter: snowgrammar.NewPolicy(snowgrammar.Options{TablePrefix: "app_", Normalizer: snowgrammar.SchemaQualifier{Schema: "s"}}), want: "APP_U.ID"},
		{name: "ident", expr: Ident("analytics.events.id"), quoter: snowflake, want: "ANALYTICS.EVENTS.ID"},
		{name: "identifier raw", expr: Identifier{ID: snowgrammar.Raw("$1")}, quoter: snowflake, want: "$1"},
		{name: "star", expr: Star{}, quoter: snowflake, want: "*"},
		{name: "literal", expr: Lit("O'Brien"), quoter: snowflake, want: "'O''Brien'"},
		{name: "postgres literal", expr: Lit("O'Brien"), quoter: pg, want: "'O''Brien'"},
		{name: "raw", expr: Raw("CURRENT_TIMESTAMP()"), quoter: snowflake, want: "CURRENT_TIMESTAMP()"},
		{name: "int", expr: Int(42), quoter: snowflake, want: "42"},
		{name: "bool", expr: Bool(false), quoter: snowflake, want: "FALSE"},
		{name: "null", expr: Null{}, quoter: snowflake, want: "NULL"},
		{name: "func", expr: Func{Name: "COALESCE", Args: []Expr{Col{Column: "nick"}, Lit("anon")}}, quoter: snowflake, want: "COALESCE(NICK, 'anon')"},
		{name: "alias", expr: SelectAs(Func{Name: "COUNT", Args: []Expr{Star{}}}, "total"), quoter: snowflake, want: "COUNT(*) AS TOTAL"},
		{name: "paren", expr: Paren{Expr: Int(1)}, quoter: snowflake, want: "(1)"},
		{name: "concat", expr: Concat{Parts: []Expr{Col{Column: "first"}, Lit(" "), Col{Column: "last"}}}, quoter: snowflake, want: "FIRST || ' ' || LAST"},
		{name: "empty concat", expr: Concat{}, quoter: snowflake, want: "''"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mustRender(t, tt.expr, tt.quoter); got != tt.want {
				t.Errorf("SQL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOperators_SQL(t *testing.T) {
	status := Col{Column: "status"}

	tests := []struct {
		name string
		expr Expr
		want string
	}{
		{name: "eq", expr: Eq{Left: status, Right: Lit("active")}, want: "STATUS = 'active'"},
		{name: "ne", expr: Ne{Left: status, Right: Lit("x")}, want: "STATUS <> 'x'"},
		{name: "lt", expr: Lt{Left: Col{Column: "age"}, Right: Int(18)}, want: "AGE < 18"},
		{name: "gt", expr: Gt{Left: Col{Column: "age"}, Right: Int(18)}, want: "AGE > 18"},
		{name: "lte", expr: Lte{Left: Col{Column: "age"}, Right: Int(18)}, want: "AGE <= 18"},
		{name: "gte", expr: Gte{Left: Col{Column: "age"}, Right: Int(18)}, want: "AGE >= 18"},
		{name: "in", expr: In{Expr: status, Values: []string{"a", "b'c"}}, want: "STATUS IN ('a', 'b''c')"},
		{name: "empty in", expr: In{Expr: status}, want: "FALSE"},
		{name: "not in", expr: NotIn{Expr: status, Values: []string{"a"}}, want: "STATUS NOT IN ('a')"},
		{name: "empty not in", expr: NotIn{Expr: status}, want: "TRUE"},
		{name: "and", expr: And(Eq{Left: status, Right: Lit("a")}, nil, IsNull{Expr: Col{Column: "deleted_at"}}), want: "(STATUS = 'a' AND DELETED_AT IS NULL)"},
		{name: "single and", expr: And(IsNotNull{Expr: status}), want: "STATUS IS NOT NULL"},
		{name: "empty and", expr: And(), want: "TRUE"},
		{name: "or", expr: Or(Bool(true), Bool(false)), want: "(TRUE OR FALSE)"},
		{name: "empty or", expr: Or(), want: "FALSE"},
		{name: "not", expr: Not(Eq{Left: status, Right: Lit("a")}), want: "NOT (STATUS = 'a')"},
		{
			name: "exists",
			expr: Exists{Query: SelectStmt{Columns: []Expr{Int(1)}, From: Table("orders")}},
			want: "EXISTS (\nSELECT 1\nFROM ORDERS\n)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mustRender(t, tt.expr, snowflake); got != tt.want {
				t.Errorf("SQL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValues(t *testing.T) {
	got := mustRender(t, Func{Name: "F", Args: Values("a", 1, int64(2), 1.5, true, nil, snowgrammar.Raw("NOW()"), Col{Column: "c"})}, snowflake)
	want := "F('a', 1, 2, 1.5, TRUE, NULL, NOW(), C)"
	if got != want {
		t.Errorf("Values() rendered %q, want %q", got, want)
	}
}

func TestCols(t *testing.T) {
	got := mustRender(t, Func{Name: "F", Args: Cols("a", "b")}, snowflake)
	if got != "F(A, B)" {
		t.Errorf("Cols() rendered %q", got)
	}
}
