package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat("json"))
	assert.Equal(t, FormatJSON, ParseFormat("JSON"))
	assert.Equal(t, FormatText, ParseFormat("text"))
	assert.Equal(t, FormatText, ParseFormat(""))
	assert.Equal(t, FormatText, ParseFormat("garbage"))
}

func TestTable_RenderText(t *testing.T) {
	table := NewTable(
		"Results",
		[]string{"File", "Lines"},
		[][]string{
			{"a.js", "10"},
			{"b.py", "20"},
		},
		[]string{"2 files", "30"},
		nil,
	)

	var buf bytes.Buffer
	require.NoError(t, table.RenderText(&buf, false))

	out := buf.String()
	assert.Contains(t, out, "Results")
	assert.Contains(t, out, "a.js")
	assert.Contains(t, out, "b.py")
	assert.Contains(t, out, "2 files")
}

func TestTable_RenderData(t *testing.T) {
	table := NewTable(
		"Results",
		[]string{"File", "Lines"},
		[][]string{{"a.js", "10"}},
		nil,
		nil,
	)

	data, ok := table.RenderData().([]map[string]string)
	require.True(t, ok)
	require.Len(t, data, 1)
	assert.Equal(t, "a.js", data[0]["File"])
	assert.Equal(t, "10", data[0]["Lines"])
}

func TestTable_RenderDataPrefersStructured(t *testing.T) {
	payload := map[string]int{"total": 3}
	table := NewTable("t", nil, nil, nil, payload)

	assert.Equal(t, any(payload), table.RenderData())
}

func TestFormatter_JSONOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	f, err := NewFormatter(FormatJSON, path, true)
	require.NoError(t, err)

	table := NewTable("t", []string{"K"}, [][]string{{"v"}}, nil, map[string]string{"k": "v"})
	require.NoError(t, f.Output(table))
	require.NoError(t, f.Close())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "v", decoded["k"])
}

func TestFormatter_TextOutputToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	f, err := NewFormatter(FormatText, path, true)
	require.NoError(t, err)

	table := NewTable("Report", []string{"Name"}, [][]string{{"thing"}}, nil, nil)
	require.NoError(t, f.Output(table))
	require.NoError(t, f.Close())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	out := string(raw)
	assert.Contains(t, out, "Report")
	assert.Contains(t, out, "thing")
	// file output is never colored
	assert.False(t, strings.Contains(out, "\x1b["), "ANSI escapes in file output")
}
