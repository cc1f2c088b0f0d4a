package output

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseFormat tests format name parsing.
func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "", want: FormatTable},
		{in: "table", want: FormatTable},
		{in: "JSON", want: FormatJSON},
		{in: " csv ", want: FormatCSV},
		{in: "Xml", want: FormatXML},
		{in: "yaml", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unsupported output format")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestIsStructuredFormat tests the structured format check.
func TestIsStructuredFormat(t *testing.T) {
	assert.False(t, IsStructuredFormat(FormatTable))
	assert.True(t, IsStructuredFormat(FormatCSV))
	assert.True(t, IsStructuredFormat(FormatJSON))
	assert.True(t, IsStructuredFormat(FormatXML))
}

// TestFormatter_WriteCSV tests CSV quoting.
func TestFormatter_WriteCSV(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(FormatCSV, &buf)
	assert.Equal(t, FormatCSV, f.Format())
	require.NoError(t, f.WriteCSV([]string{"ID", "TAGS"}, [][]string{{"A", "Tag1, Tag2"}}))
	assert.Equal(t, "ID,TAGS\nA,\"Tag1, Tag2\"\n", buf.String())
}

// TestFormatter_WriteJSON tests that HTML characters are not escaped.
func TestFormatter_WriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatJSON, &buf).WriteJSON(map[string]string{"dim1": "R&D <West>"}))
	assert.Equal(t, "{\"dim1\":\"R&D <West>\"}\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

// TestFormatter_WriteErrors tests that writer failures surface.
func TestFormatter_WriteErrors(t *testing.T) {
	f := NewFormatter(FormatCSV, failingWriter{})
	assert.Error(t, f.WriteCSV([]string{"A"}, [][]string{{"1"}}))
	assert.Error(t, f.WriteXML(struct{ Ch chan int }{}))
}
