package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() Report {
	return Report{
		Title: "Factory Operations Report",
		Sections: []Section{
			{
				Title: "Production Data",
				Data: Dataset{
					Headers: []string{"Work Order", "Produced Qty"},
					Rows: []map[string]string{
						{"Work Order": "WO-1001", "Produced Qty": "120"},
						{"Work Order": "WO-1002", "Produced Qty": "85"},
					},
				},
			},
			{
				Title: "Logistics Data",
				Data: Dataset{
					Headers: []string{"Module", "Status"},
					Rows: []map[string]string{
						{"Module": "Conveyor", "Status": "Pending"},
					},
				},
			},
		},
	}
}

func TestPDFExporterWritesDocument(t *testing.T) {
	var buf bytes.Buffer
	err := NewPDFExporter().Render(&buf, sampleReport())

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(buf.String(), "%PDF-"), "output should start with the PDF magic marker")
}

func TestPDFExporterRequiresSections(t *testing.T) {
	err := NewPDFExporter().Render(&bytes.Buffer{}, Report{Title: "empty"})
	assert.Error(t, err)
}

func TestCSVExporterLayout(t *testing.T) {
	var buf bytes.Buffer
	err := NewCSVExporter().Render(&buf, sampleReport())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 8)
	assert.Equal(t, "Production Data", strings.TrimSpace(lines[0]))
	assert.Equal(t, "Work Order,Produced Qty", strings.TrimSpace(lines[1]))
	assert.Equal(t, "WO-1001,120", strings.TrimSpace(lines[2]))
	assert.Equal(t, "WO-1002,85", strings.TrimSpace(lines[3]))
	assert.Equal(t, "", strings.TrimSpace(lines[4]))
	assert.Equal(t, "Logistics Data", strings.TrimSpace(lines[5]))
	assert.Equal(t, "Module,Status", strings.TrimSpace(lines[6]))
	assert.Equal(t, "Conveyor,Pending", strings.TrimSpace(lines[7]))
}

func TestCSVExporterRequiresHeaders(t *testing.T) {
	report := Report{Sections: []Section{{Title: "broken", Data: Dataset{}}}}
	err := NewCSVExporter().Render(&bytes.Buffer{}, report)
	assert.Error(t, err)
}
