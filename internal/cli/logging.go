package cli

import (
	"fmt"
	"io"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
)

// NewLogger returns a logr.Logger writing to w. Messages above verbosity are
// dropped; format "json" emits one JSON object per line.
func NewLogger(w io.Writer, verbosity int, format string) logr.Logger {
	opts := funcr.Options{Verbosity: verbosity}
	if format == "json" {
		return funcr.NewJSON(func(obj string) {
			fmt.Fprintln(w, obj)
		}, opts)
	}
	return funcr.New(func(prefix, args string) {
		if prefix != "" {
			fmt.Fprintf(w, "%s: %s\n", prefix, args)
			return
		}
		fmt.Fprintln(w, args)
	}, opts)
}
