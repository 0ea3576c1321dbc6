package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/pthm/snowgrammar"
	"github.com/pthm/snowgrammar/internal/cli"
	"github.com/pthm/snowgrammar/internal/sqldsl"
)

// renderDoc is the YAML document accepted by the render command.
type renderDoc struct {
	Statements []statementDoc `json:"statements"`
}

// statementDoc holds exactly one statement.
type statementDoc struct {
	Select      *selectDoc      `json:"select,omitempty"`
	Insert      *insertDoc      `json:"insert,omitempty"`
	Delete      *deleteDoc      `json:"delete,omitempty"`
	CreateTable *createTableDoc `json:"create_table,omitempty"`
	DropTable   *dropTableDoc   `json:"drop_table,omitempty"`
}

type selectDoc struct {
	Distinct bool              `json:"distinct"`
	Columns  []string          `json:"columns"`
	From     string            `json:"from"`
	Alias    string            `json:"alias"`
	Where    map[string]string `json:"where"`
	OrderBy  []string          `json:"order_by"` // "-name" sorts descending
	Limit    int               `json:"limit"`
}

type insertDoc struct {
	Table   string   `json:"table"`
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

type deleteDoc struct {
	Table string            `json:"table"`
	Where map[string]string `json:"where"`
}

type createTableDoc struct {
	Table       string           `json:"table"`
	IfNotExists bool             `json:"if_not_exists"`
	Columns     []map[string]any `json:"columns"`
}

type dropTableDoc struct {
	Table    string `json:"table"`
	IfExists bool   `json:"if_exists"`
}

var renderCmd = &cobra.Command{
	Use:   "render FILE",
	Short: "Render SQL statements described in a YAML document",
	Long: `Render SQL statements described in a YAML document ("-" reads stdin).

Each entry under "statements" holds one of select, insert, delete,
create_table or drop_table. Column definitions under create_table are
attribute maps with at least a name.`,
	Example: `  statements:
    - create_table:
        table: users
        if_not_exists: true
        columns:
          - {name: id, type: NUMBER}
          - {name: email, type: VARCHAR, nullable: true}
    - select:
        columns: [id, email]
        from: users
        where: {email: "o'brien@example.com"}
        order_by: [-id]
        limit: 10`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readInput(cmd.InOrStdin(), args[0])
		if err != nil {
			return cli.GeneralError("reading document", err)
		}

		var doc renderDoc
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return cli.GeneralError("parsing document", err)
		}

		stmts, err := buildStatements(doc)
		if err != nil {
			return cli.GeneralError("building statements", err)
		}

		q, err := quoter()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for i, stmt := range stmts {
			sql, err := sqldsl.Render(stmt, q)
			if err != nil {
				return quotingError(fmt.Sprintf("rendering statement %d", i), err)
			}
			fmt.Fprintln(out, sql+";")
		}
		logger.V(1).Info("rendered statements", "count", len(stmts))
		return nil
	},
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

// buildStatements converts the document into DSL statements.
func buildStatements(doc renderDoc) ([]sqldsl.Expr, error) {
	stmts := make([]sqldsl.Expr, 0, len(doc.Statements))
	for i, s := range doc.Statements {
		switch {
		case s.Select != nil:
			stmts = append(stmts, s.Select.statement())
		case s.Insert != nil:
			stmts = append(stmts, s.Insert.statement())
		case s.Delete != nil:
			stmts = append(stmts, sqldsl.DeleteStmt{
				Table: snowgrammar.Name(s.Delete.Table),
				Where: whereExpr(s.Delete.Where, identRef),
			})
		case s.CreateTable != nil:
			stmts = append(stmts, s.CreateTable.statement())
		case s.DropTable != nil:
			stmts = append(stmts, sqldsl.DropTableStmt{
				Table:    snowgrammar.Name(s.DropTable.Table),
				IfExists: s.DropTable.IfExists,
			})
		default:
			return nil, fmt.Errorf("statement %d: empty", i)
		}
	}
	return stmts, nil
}

func (d *selectDoc) statement() sqldsl.SelectStmt {
	stmt := sqldsl.SelectStmt{
		Distinct: d.Distinct,
		Where:    whereExpr(d.Where, d.ref),
		Limit:    d.Limit,
	}
	for _, c := range d.Columns {
		stmt.Columns = append(stmt.Columns, d.ref(c))
	}
	if d.From != "" {
		stmt.From = sqldsl.TableAs(d.From, d.Alias)
	}
	for _, o := range d.OrderBy {
		desc := strings.HasPrefix(o, "-")
		stmt.OrderBy = append(stmt.OrderBy, sqldsl.OrderBy{
			Expr: d.ref(strings.TrimPrefix(o, "-")),
			Desc: desc,
		})
	}
	return stmt
}

// ref resolves a column reference. "alias.column" refers to the FROM alias
// and is quoted with the alias rule; anything else is a qualified name.
func (d *selectDoc) ref(name string) sqldsl.Expr {
	if d.Alias != "" {
		if column, ok := strings.CutPrefix(name, d.Alias+"."); ok && !strings.Contains(column, ".") {
			return sqldsl.Col{Table: d.Alias, Column: column}
		}
	}
	return identRef(name)
}

func identRef(name string) sqldsl.Expr {
	return sqldsl.Ident(name)
}

func (d *insertDoc) statement() sqldsl.InsertStmt {
	stmt := sqldsl.InsertStmt{
		Table:   snowgrammar.Name(d.Table),
		Columns: snowgrammar.Names(d.Columns...),
	}
	for _, row := range d.Rows {
		stmt.Rows = append(stmt.Rows, sqldsl.Values(row...))
	}
	return stmt
}

func (d *createTableDoc) statement() sqldsl.CreateTableStmt {
	stmt := sqldsl.CreateTableStmt{
		Table:       snowgrammar.Name(d.Table),
		IfNotExists: d.IfNotExists,
	}
	for _, attrs := range d.Columns {
		stmt.Columns = append(stmt.Columns, &snowgrammar.ColumnDefinition{Attributes: attrs})
	}
	return stmt
}

// whereExpr turns column/value pairs into an AND of equalities, ordered by
// column name so output is stable. ref resolves each column.
func whereExpr(where map[string]string, ref func(string) sqldsl.Expr) sqldsl.Expr {
	if len(where) == 0 {
		return nil
	}
	keys := make([]string, 0, len(where))
	for k := range where {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	conds := make([]sqldsl.Expr, len(keys))
	for i, k := range keys {
		conds[i] = sqldsl.Eq{Left: ref(k), Right: sqldsl.Lit(where[k])}
	}
	return sqldsl.And(conds...)
}
