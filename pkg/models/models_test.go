package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceFile_Lines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"empty", "", 0},
		{"single line no newline", "hello", 1},
		{"single line with newline", "hello\n", 1},
		{"two lines", "a\nb", 2},
		{"two lines trailing newline", "a\nb\n", 2},
		{"blank lines count", "a\n\n\nb\n", 4},
		{"only newline", "\n", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := SourceFile{Name: "t", Content: tt.content}
			assert.Equal(t, tt.want, f.Lines())
		})
	}
}

func TestDefaultRuleConfig(t *testing.T) {
	cfg := DefaultRuleConfig()

	require.NotNil(t, cfg.ComplexityThreshold)
	assert.Equal(t, 10, *cfg.ComplexityThreshold)
	require.NotNil(t, cfg.MaxFunctionLength)
	assert.Equal(t, 50, *cfg.MaxFunctionLength)
	require.NotNil(t, cfg.EnableSecurityRules)
	assert.True(t, *cfg.EnableSecurityRules)
	require.NotNil(t, cfg.EnableDeadCodeDetection)
	assert.True(t, *cfg.EnableDeadCodeDetection)
}

func TestFinding_JSONOmitsEmptyOptionals(t *testing.T) {
	f := Finding{
		RuleID:   "parse-error",
		Severity: SeverityHigh,
		Message:  "bad",
		Location: Location{Line: 3, Column: 1},
	}

	raw, err := json.Marshal(f)
	require.NoError(t, err)

	assert.NotContains(t, string(raw), "suggestion")
	assert.NotContains(t, string(raw), "end_line")
	assert.Contains(t, string(raw), `"rule_id":"parse-error"`)
	assert.Contains(t, string(raw), `"severity":"high"`)
}

func TestAnalysisRequest_RoundTrip(t *testing.T) {
	lang := "typescript"
	req := AnalysisRequest{
		Files: []SourceFile{
			{Name: "a.ts", Content: "const x = 1;", Language: &lang},
			{Name: "b.js", Content: "var y;"},
		},
		Rules: DefaultRuleConfig(),
	}

	raw, err := json.Marshal(req)
	require.NoError(t, err)

	var got AnalysisRequest
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, req, got)
}

func TestHashContent(t *testing.T) {
	a := HashContent([]byte("function f() {}"))
	b := HashContent([]byte("function f() {}"))
	c := HashContent([]byte("function g() {}"))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, string(a), 64)
}
