package output

import (
	"encoding/json"
	"io"
)

// JSONFormatter writes the result envelope as JSON. Amounts are decimal
// strings so no precision is lost.
type JSONFormatter struct {
	Indent string
}

// Format returns FormatJSON
func (f *JSONFormatter) Format() Format {
	return FormatJSON
}

// Render encodes the result
func (f *JSONFormatter) Render(w io.Writer, result *Result) error {
	enc := json.NewEncoder(w)
	if f.Indent != "" {
		enc.SetIndent("", f.Indent)
	}
	return enc.Encode(result)
}
