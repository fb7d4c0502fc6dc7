// Package models defines the request and response types for the analysis engine.
package models

import (
	"encoding/hex"
	"strings"

	"github.com/zeebo/blake3"
)

// Severity classifies how serious a finding is.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// SourceFile is one unit of input to the engine. The caller owns it; the
// engine never mutates or retains it past the call.
type SourceFile struct {
	Name     string  `json:"name"`
	Content  string  `json:"content"`
	Language *string `json:"language,omitempty"`
}

// Lines returns the raw newline-delimited line count of the file content.
// No blank-line or comment filtering is applied; a trailing newline does
// not open a new line.
func (f SourceFile) Lines() int {
	if f.Content == "" {
		return 0
	}
	n := strings.Count(f.Content, "\n")
	if !strings.HasSuffix(f.Content, "\n") {
		n++
	}
	return n
}

// AnalysisRequest is a batch of files plus an optional rule configuration.
type AnalysisRequest struct {
	Files []SourceFile `json:"files"`
	Rules *RuleConfig  `json:"rules,omitempty"`
}

// RuleConfig carries the recognized rule options. Only complexity and
// structure extraction are wired into the engine; the remaining options are
// consumed by an external rule-engine collaborator.
type RuleConfig struct {
	ComplexityThreshold     *int  `json:"complexity_threshold,omitempty"`
	MaxFunctionLength       *int  `json:"max_function_length,omitempty"`
	EnableSecurityRules     *bool `json:"enable_security_rules,omitempty"`
	EnableDeadCodeDetection *bool `json:"enable_dead_code_detection,omitempty"`
}

// DefaultRuleConfig returns the standard rule thresholds.
func DefaultRuleConfig() *RuleConfig {
	complexity := 10
	maxLength := 50
	security := true
	deadCode := true
	return &RuleConfig{
		ComplexityThreshold:     &complexity,
		MaxFunctionLength:       &maxLength,
		EnableSecurityRules:     &security,
		EnableDeadCodeDetection: &deadCode,
	}
}

// Location points at a region of source text. Lines and columns are 1-based.
type Location struct {
	Line      uint32  `json:"line"`
	Column    uint32  `json:"column"`
	EndLine   *uint32 `json:"end_line,omitempty"`
	EndColumn *uint32 `json:"end_column,omitempty"`
}

// Finding is one reported rule violation.
type Finding struct {
	RuleID     string   `json:"rule_id"`
	Severity   Severity `json:"severity"`
	Message    string   `json:"message"`
	Location   Location `json:"location"`
	Suggestion *string  `json:"suggestion,omitempty"`
}

// FileMetrics holds per-file structural measurements.
type FileMetrics struct {
	LinesOfCode    uint32 `json:"lines_of_code"`
	FunctionsCount uint32 `json:"functions_count"`
	ClassesCount   uint32 `json:"classes_count"`
	// ComplexityScore is a file-level placeholder, distinct from the
	// per-function cyclomatic complexity reported by the parser layer.
	ComplexityScore float64 `json:"complexity_score"`
}

// FileAnalysisResult is the per-file output of a batch.
type FileAnalysisResult struct {
	FileName string      `json:"file_name"`
	Language string      `json:"language"`
	Findings []Finding   `json:"findings"`
	Metrics  FileMetrics `json:"metrics"`
}

// AnalysisSummary aggregates a whole batch.
type AnalysisSummary struct {
	TotalFiles         uint32            `json:"total_files"`
	TotalFindings      uint32            `json:"total_findings"`
	FindingsBySeverity map[string]uint32 `json:"findings_by_severity"`
	TotalLinesAnalyzed uint32            `json:"total_lines_analyzed"`
}

// AnalysisResponse is the ordered result list plus the batch summary.
type AnalysisResponse struct {
	Results         []FileAnalysisResult `json:"results"`
	Summary         AnalysisSummary      `json:"summary"`
	ExecutionTimeMS uint64               `json:"execution_time_ms"`
}

// ContentHash is a BLAKE3 digest of file content, hex encoded.
type ContentHash string

// HashContent computes the ContentHash for a blob of source text.
func HashContent(content []byte) ContentHash {
	sum := blake3.Sum256(content)
	return ContentHash(hex.EncodeToString(sum[:]))
}
