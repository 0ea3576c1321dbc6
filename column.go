package snowgrammar

import (
	"fmt"

	"github.com/spf13/cast"
)

// Well-known ColumnDefinition attribute keys.
const (
	AttrName     = "name"
	AttrType     = "type"
	AttrNullable = "nullable"
	AttrDefault  = "default"
)

// ColumnDefinition describes a column in a schema blueprint.
//
// Attributes are loosely typed, as they arrive from blueprint builders or
// decoded documents. Only the name attribute is required; it is what the
// quoting rules apply to when the definition is used as an Identifier.
type ColumnDefinition struct {
	Attributes map[string]any
}

// NewColumn creates a column definition with a name and SQL type.
func NewColumn(name, sqlType string) *ColumnDefinition {
	return &ColumnDefinition{Attributes: map[string]any{
		AttrName: name,
		AttrType: sqlType,
	}}
}

// Set stores an attribute and returns the definition for chaining.
func (c *ColumnDefinition) Set(key string, value any) *ColumnDefinition {
	if c.Attributes == nil {
		c.Attributes = make(map[string]any)
	}
	c.Attributes[key] = value
	return c
}

// Nullable marks the column as accepting NULL.
func (c *ColumnDefinition) Nullable() *ColumnDefinition {
	return c.Set(AttrNullable, true)
}

// Default sets the column default. Strings render as literals, Raw renders
// verbatim, numbers and booleans render as SQL constants.
func (c *ColumnDefinition) Default(value any) *ColumnDefinition {
	return c.Set(AttrDefault, value)
}

// Get returns an attribute and whether it was present.
func (c *ColumnDefinition) Get(key string) (any, bool) {
	if c == nil {
		return nil, false
	}
	v, ok := c.Attributes[key]
	return v, ok
}

// Name returns the name attribute.
func (c *ColumnDefinition) Name() (string, error) {
	if c == nil {
		return "", fmt.Errorf("%w: nil column definition", ErrMalformedIdentifier)
	}
	v, ok := c.Attributes[AttrName]
	if !ok || v == nil {
		return "", fmt.Errorf("%w: column definition has no %q attribute", ErrMalformedIdentifier, AttrName)
	}
	name, err := cast.ToStringE(v)
	if err != nil {
		return "", fmt.Errorf("%w: column %q attribute: %v", ErrMalformedIdentifier, AttrName, err)
	}
	return name, nil
}

// Type returns the SQL type, or "" when unset.
func (c *ColumnDefinition) Type() string {
	v, _ := c.Get(AttrType)
	return cast.ToString(v)
}

// IsNullable reports whether the column accepts NULL.
func (c *ColumnDefinition) IsNullable() bool {
	v, _ := c.Get(AttrNullable)
	return cast.ToBool(v)
}

// DefaultValue returns the column default and whether one is set.
func (c *ColumnDefinition) DefaultValue() (any, bool) {
	return c.Get(AttrDefault)
}
