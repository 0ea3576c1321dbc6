package snowgrammar

import "errors"

// Sentinel errors returned by quoters.
//
// Quoting is total over plain text: empty names, names containing quote
// characters and the wildcard are all valid. The only failure is a caller
// handing over a structured identifier that cannot be resolved to text.
var (
	// ErrMalformedIdentifier is returned when a structured identifier, such as
	// a *ColumnDefinition, lacks its name attribute. It signals a programming
	// error in the caller and is never recovered inside the policy.
	ErrMalformedIdentifier = errors.New("snowgrammar: malformed identifier")
)

// IsMalformedIdentifierErr returns true if err is or wraps ErrMalformedIdentifier.
func IsMalformedIdentifierErr(err error) bool {
	return errors.Is(err, ErrMalformedIdentifier)
}
