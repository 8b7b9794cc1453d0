package render

import (
	"encoding/json"
	"io"

	"github.com/fatih/color"
)

var (
	successStyle = color.New(color.FgGreen)
	failStyle    = color.New(color.FgRed)
	noticeStyle  = color.New(color.FgYellow)
	faintStyle   = color.New(color.Faint)
)

// Fail prints an inline failure message so calling flows can surface
// validation problems without a stack of usage output.
func Fail(out io.Writer, message string) {
	failStyle.Fprintf(out, "✗ %s\n", message)
}

// writeJSON emits an indented JSON document, the shared path for all
// --json output.
func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
