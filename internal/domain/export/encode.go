package export

import (
	"encoding/csv"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"

	"github.com/mgolik/eufunds/internal/domain/project"
)

// Encode writes the entire record set to w in the requested format.
// Exports never filter or paginate; callers apply any filtering before
// invoking Encode.
func Encode(w io.Writer, records []project.Project, format Format) error {
	switch format {
	case FormatJSON:
		return encodeJSON(w, records)
	case FormatXML:
		return encodeXML(w, records)
	case FormatCSV:
		return encodeCSV(w, records)
	case FormatTXT:
		return encodeTXT(w, records)
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
}

func encodeJSON(w io.Writer, records []project.Project) error {
	if records == nil {
		records = []project.Project{}
	}
	if err := json.NewEncoder(w).Encode(records); err != nil {
		return fmt.Errorf("encoding JSON export: %w", err)
	}
	return nil
}

type xmlDocument struct {
	XMLName  xml.Name          `xml:"projects"`
	Projects []project.Project `xml:"project"`
}

func encodeXML(w io.Writer, records []project.Project) error {
	data, err := xml.MarshalIndent(xmlDocument{Projects: records}, "", "    ")
	if err != nil {
		return fmt.Errorf("encoding XML export: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing XML export: %w", err)
	}
	return nil
}

func encodeCSV(w io.Writer, records []project.Project) error {
	if len(records) == 0 {
		return ErrNoData
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, rec := range records {
		if err := cw.Write(fieldValues(rec)); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing CSV export: %w", err)
	}
	return nil
}

func encodeTXT(w io.Writer, records []project.Project) error {
	if len(records) == 0 {
		return ErrNoData
	}
	for _, rec := range records {
		values := fieldValues(rec)
		for i, label := range txtLabels {
			if _, err := fmt.Fprintf(w, "%s: %s\n", label, values[i]); err != nil {
				return fmt.Errorf("writing TXT export: %w", err)
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return fmt.Errorf("writing TXT export: %w", err)
		}
	}
	return nil
}
