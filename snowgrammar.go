// Package snowgrammar provides the Snowflake quoting policy used by a SQL
// query and schema builder.
//
// # Quoting Rules
//
// Snowflake folds unquoted identifiers to uppercase. The policy therefore has
// exactly two encodings for a column or table name, selected once when the
// Policy is constructed:
//
//   - case-insensitive (default): embedded double quotes are removed and the
//     name is uppercased, with no surrounding quotes.
//   - case-sensitive: embedded double quotes are doubled and the name is
//     wrapped in double quotes.
//
// Literal values are always wrapped in single quotes with embedded single
// quotes doubled. The wildcard "*" is never quoted or case-folded.
//
// # Identifiers
//
// Every quoting entry point takes an Identifier, a closed set of three
// variants resolved at the call boundary:
//
//	snowgrammar.Name("users")                  // plain name, quoted per policy
//	snowgrammar.Raw("CURRENT_TIMESTAMP()")     // emitted verbatim
//	snowgrammar.NewColumn("email", "VARCHAR")  // schema column definition
//
// # Basic Usage
//
//	p := snowgrammar.NewPolicy(snowgrammar.Options{})
//	p.Column(snowgrammar.Name("my col"))        // MY COL
//	p.Wrap("users.id as uid")                   // USERS.ID AS UID
//	p.Literal("O'Brien")                        // 'O''Brien'
//
// The policy is immutable and safe for concurrent use. Query builders depend
// on the Quoter interface rather than on *Policy so that other dialects, such
// as pkg/dialect/postgres, can be swapped in.
package snowgrammar

// Quoter renders identifiers and literals for one SQL dialect.
// *Policy implements it for Snowflake.
type Quoter interface {
	// Column quotes a column-like identifier.
	Column(column Identifier) (string, error)
	// Table quotes a table-like identifier.
	Table(table Identifier) (string, error)
	// QualifiedName quotes a dotted name. The first of several segments is
	// table-like, the remainder column-like.
	QualifiedName(segments []Identifier) (string, error)
	// IdentifierList quotes each column and joins them with ", ".
	IdentifierList(columns []Identifier) (string, error)
	// Literal quotes a string value.
	Literal(value string) string
	// Alias quotes a table alias. Column references qualified by an alias
	// must quote the qualifier the same way.
	Alias(name string) string
}
