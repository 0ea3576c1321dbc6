package snowgrammar

import "strings"

// TableNormalizer rewrites a table name before it is quoted. It runs once
// per Policy.Table call and never on column segments.
type TableNormalizer interface {
	NormalizeTable(name string) string
}

// NormalizerFunc adapts a function to TableNormalizer.
type NormalizerFunc func(name string) string

// NormalizeTable implements TableNormalizer.
func (f NormalizerFunc) NormalizeTable(name string) string {
	return f(name)
}

// Passthrough leaves table names untouched.
var Passthrough TableNormalizer = NormalizerFunc(func(name string) string { return name })

// SchemaQualifier prefixes unqualified table names with a schema.
// Names that already contain a "." and empty names are left alone, as is
// everything when Schema is empty.
type SchemaQualifier struct {
	Schema string
}

// NormalizeTable implements TableNormalizer.
func (s SchemaQualifier) NormalizeTable(name string) string {
	if s.Schema == "" || name == "" || strings.Contains(name, ".") {
		return name
	}
	return s.Schema + "." + name
}
