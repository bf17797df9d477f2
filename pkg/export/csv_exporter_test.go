package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVRender(t *testing.T) {
	data := Dataset{
		Headers: []string{"Course", "Room"},
		Rows: []map[string]string{
			{"Course": "Giải tích", "Room": "B101"},
			{"Course": "Databases"},
		},
	}

	out, err := NewCSVExporter().Render(data)
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(out, utf8BOM))
	lines := strings.Split(strings.TrimSpace(string(out[len(utf8BOM):])), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Course,Room", lines[0])
	assert.Equal(t, "Giải tích,B101", lines[1])
	assert.Equal(t, "Databases,", lines[2], "missing cells render empty")
}

func TestCSVRenderRequiresHeaders(t *testing.T) {
	_, err := NewCSVExporter().Render(Dataset{})
	assert.Error(t, err)
}
