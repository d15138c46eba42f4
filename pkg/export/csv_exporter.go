package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// CSVExporter renders receipts as field,value rows.
type CSVExporter struct{}

// NewCSVExporter builds a CSV exporter.
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

// Render produces CSV encoded bytes for the receipt.
func (e *CSVExporter) Render(r Receipt) ([]byte, error) {
	if len(r.Fields) == 0 && len(r.Sections) == 0 {
		return nil, fmt.Errorf("csv requires at least one field")
	}
	buf := &bytes.Buffer{}
	writer := csv.NewWriter(buf)
	if err := writer.Write([]string{"field", "value"}); err != nil {
		return nil, fmt.Errorf("write csv headers: %w", err)
	}
	rows := make([]Field, 0, len(r.Fields)+len(r.Sections))
	rows = append(rows, r.Fields...)
	rows = append(rows, r.Sections...)
	for _, row := range rows {
		if err := writer.Write([]string{row.Label, row.Value}); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

func (e *CSVExporter) ContentType() string { return "text/csv" }

func (e *CSVExporter) Extension() string { return "csv" }
