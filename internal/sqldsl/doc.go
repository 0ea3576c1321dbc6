// Package sqldsl provides a typed DSL for building SQL statements whose
// identifiers and literals are quoted by a pluggable dialect.
//
// # Overview
//
// Rather than concatenating SQL strings, callers compose typed building
// blocks. Every identifier and literal passes through a snowgrammar.Quoter
// at render time, so the same statement renders for Snowflake or PostgreSQL
// depending on the Quoter handed to Render.
//
// # Core Interface
//
// All DSL types implement Expr, whose SQL method renders through a Renderer.
// The Renderer wraps the Quoter and collects quoting errors so that a
// statement is rendered in one pass and checked once:
//
//	sql, err := sqldsl.Render(stmt, quoter)
//
// # Expression Types
//
//	Col{Table: "u", Column: "id"}     // alias-qualified column: U.ID
//	Ident("analytics.events.id")      // qualified name, table rules on the first segment
//	Lit("O'Brien")                    // string literal: 'O''Brien'
//	Int(42), Bool(true), Null{}       // constants
//	Raw("CURRENT_TIMESTAMP()")        // raw SQL (escape hatch)
//	Func{Name: "COUNT", Args: ...}    // function call
//
// Operators:
//
//	Eq{Left: col, Right: Lit("x")}    // col = 'x'
//	In{Expr: col, Values: []string}   // col IN ('a', 'b')
//	And(expr1, expr2), Or(...), Not() // boolean composition
//	Exists{Query: subquery}           // EXISTS (subquery)
//
// # Statement Types
//
//	SelectStmt{
//	    Columns: []Expr{Col{Column: "id"}},
//	    From:    TableAs("users", "u"),
//	    Where:   Eq{Left: Col{Table: "u", Column: "status"}, Right: Lit("active")},
//	    Limit:   100,
//	}
//
// InsertStmt, UpdateStmt and DeleteStmt cover DML. CreateTableStmt,
// DropTableStmt and AddColumnStmt render DDL from *snowgrammar.ColumnDefinition
// values.
package sqldsl
