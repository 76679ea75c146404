// Package export renders the full record set into one of four
// interchangeable encodings with a fixed field projection.
package export

import (
	"errors"
	"fmt"
)

// Format selects an export encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatXML  Format = "xml"
	FormatCSV  Format = "csv"
	FormatTXT  Format = "txt"
)

// ErrNoData indicates the store holds zero records. Only the delimited
// and line-oriented formats raise it; JSON and XML render a degenerate
// empty document instead.
var ErrNoData = errors.New("no projects found")

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatJSON, FormatXML, FormatCSV, FormatTXT:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown export format %q", s)
}

// ContentType returns the MIME type served for the format.
func (f Format) ContentType() string {
	switch f {
	case FormatJSON:
		return "application/json"
	case FormatXML:
		return "application/xml"
	case FormatCSV:
		return "text/csv"
	default:
		return "text/plain"
	}
}

// Filename returns the attachment name for the format.
func (f Format) Filename() string {
	return "projects." + string(f)
}
