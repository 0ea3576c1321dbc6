package snowgrammar

import (
	"fmt"
	"strings"
)

// Wildcard selects every column. It passes through all quoting unchanged.
const Wildcard = "*"

// Identifier is a column, table or name segment handed to a Quoter.
// The set of implementations is closed: Name, Raw and *ColumnDefinition.
type Identifier interface {
	identifier()
}

// Name is a plain identifier such as "users" or "created_at".
type Name string

// Raw is a pre-formatted SQL fragment. The caller is responsible for its
// escaping; quoters emit it verbatim.
type Raw string

func (Name) identifier()              {}
func (Raw) identifier()               {}
func (*ColumnDefinition) identifier() {}

// Names converts plain strings to identifiers.
func Names(names ...string) []Identifier {
	ids := make([]Identifier, len(names))
	for i, n := range names {
		ids[i] = Name(n)
	}
	return ids
}

// Split splits a dotted name such as "schema.table.column" into segments.
func Split(name string) []Identifier {
	return Names(strings.Split(name, ".")...)
}

// Resolve returns the text the quoting rules apply to. raw is true when the
// text must be emitted without any transformation.
//
// A *ColumnDefinition without a usable name attribute yields an error
// wrapping ErrMalformedIdentifier.
func Resolve(id Identifier) (text string, raw bool, err error) {
	switch v := id.(type) {
	case Raw:
		return string(v), true, nil
	case Name:
		return string(v), false, nil
	case *ColumnDefinition:
		name, err := v.Name()
		if err != nil {
			return "", false, err
		}
		return name, false, nil
	case nil:
		return "", false, fmt.Errorf("%w: nil identifier", ErrMalformedIdentifier)
	default:
		return "", false, fmt.Errorf("%w: unsupported identifier %T", ErrMalformedIdentifier, id)
	}
}
