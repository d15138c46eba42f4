package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReceipt() Receipt {
	return Receipt{
		Title: "Application Receipt",
		Fields: []Field{
			{Label: "Applicant", Value: "Ada Lovelace"},
			{Label: "Status", Value: "Pending Review"},
		},
		Sections: []Field{
			{Label: "Why do you want to participate?", Value: "To build, with commas, and \"quotes\"."},
		},
	}
}

func TestCSVExporterRender(t *testing.T) {
	out, err := NewCSVExporter().Render(sampleReceipt())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "field,value", lines[0])
	assert.Equal(t, "Applicant,Ada Lovelace", lines[1])
	assert.Contains(t, lines[3], `"To build, with commas, and ""quotes""."`)
}

func TestPDFExporterRender(t *testing.T) {
	out, err := NewPDFExporter().Render(sampleReceipt())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestExportersRejectEmptyReceipt(t *testing.T) {
	_, err := NewCSVExporter().Render(Receipt{Title: "empty"})
	assert.Error(t, err)
	_, err = NewPDFExporter().Render(Receipt{})
	assert.Error(t, err)
}
