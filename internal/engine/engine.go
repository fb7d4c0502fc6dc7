// Package engine orchestrates batch analysis: validation, language
// resolution, parsing, metrics assembly, and summary aggregation.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/scrylabs/scry/pkg/config"
	"github.com/scrylabs/scry/pkg/models"
	"github.com/scrylabs/scry/pkg/parser"
)

// Engine runs analysis batches against a shared, read-only parser registry.
// An Engine holds no per-call state; concurrent Analyze calls are safe.
type Engine struct {
	registry *parser.Registry
	limits   config.LimitsConfig
	log      *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLimits overrides the batch limits.
func WithLimits(limits config.LimitsConfig) Option {
	return func(e *Engine) {
		e.limits = limits
	}
}

// New creates an Engine around an explicitly constructed registry. The
// registry is never reached through ambient globals, so tests can pass one
// covering a language subset.
func New(registry *parser.Registry, opts ...Option) *Engine {
	e := &Engine{
		registry: registry,
		limits:   config.DefaultConfig().Limits,
		log:      slog.With("component", "engine"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// resolvedFile pairs a file with its language and parser, fixed before any
// parsing starts.
type resolvedFile struct {
	file   models.SourceFile
	lang   parser.Language
	parser parser.Parser
}

// Analyze validates and analyzes a batch. Validation and language
// resolution run first and fail the whole batch fast; parse failures inside
// a resolvable file are absorbed and reported per file.
//
// Files are processed sequentially: per-file parse cost dominates batch
// latency and a grammar parse is not split across goroutines. Cancelling
// ctx cancels the whole batch, not an individual file.
func (e *Engine) Analyze(ctx context.Context, req models.AnalysisRequest) (*models.AnalysisResponse, error) {
	start := time.Now()

	if err := e.validate(req); err != nil {
		return nil, err
	}

	resolved, err := e.resolve(req.Files)
	if err != nil {
		return nil, err
	}

	e.log.Info("starting analysis", "files", len(resolved))

	results := make([]models.FileAnalysisResult, 0, len(resolved))
	var totalLines, totalFindings uint32
	bySeverity := make(map[string]uint32)

	for _, rf := range resolved {
		fileResult := e.analyzeFile(ctx, rf)

		totalLines += fileResult.Metrics.LinesOfCode
		totalFindings += uint32(len(fileResult.Findings))
		for _, finding := range fileResult.Findings {
			bySeverity[string(finding.Severity)]++
		}

		results = append(results, fileResult)
	}

	elapsed := time.Since(start)
	e.log.Info("analysis completed",
		"duration_ms", elapsed.Milliseconds(),
		"findings", totalFindings,
		"lines", totalLines)

	return &models.AnalysisResponse{
		Results: results,
		Summary: models.AnalysisSummary{
			TotalFiles:         uint32(len(results)),
			TotalFindings:      totalFindings,
			FindingsBySeverity: bySeverity,
			TotalLinesAnalyzed: totalLines,
		},
		ExecutionTimeMS: uint64(elapsed.Milliseconds()),
	}, nil
}

// validate applies the batch-level pre-checks. Nothing is parsed until the
// entire batch passes.
func (e *Engine) validate(req models.AnalysisRequest) error {
	if len(req.Files) == 0 {
		return &ValidationError{Message: "at least one file must be provided"}
	}
	if len(req.Files) > e.limits.MaxFiles {
		return &ValidationError{
			Message: fmt.Sprintf("too many files: %d (max: %d)", len(req.Files), e.limits.MaxFiles),
		}
	}
	for _, f := range req.Files {
		if f.Name == "" {
			return &ValidationError{Message: "file name cannot be empty"}
		}
		if len(f.Content) > e.limits.MaxFileSize {
			return &FileTooLargeError{
				Name:       f.Name,
				SizeBytes:  len(f.Content),
				LimitBytes: e.limits.MaxFileSize,
			}
		}
	}
	return nil
}

// resolve fixes every file's language and parser up front. A single
// unresolvable file aborts the batch with no partial results.
func (e *Engine) resolve(files []models.SourceFile) ([]resolvedFile, error) {
	resolved := make([]resolvedFile, 0, len(files))
	for _, f := range files {
		lang, err := e.resolveLanguage(f)
		if err != nil {
			return nil, err
		}
		psr, ok := e.registry.Get(lang)
		if !ok {
			return nil, &UnsupportedLanguageError{Language: string(lang)}
		}
		resolved = append(resolved, resolvedFile{file: f, lang: lang, parser: psr})
	}
	return resolved, nil
}

// resolveLanguage prefers the caller's explicit tag, then the extension
// table. Resolution is case-sensitive.
func (e *Engine) resolveLanguage(f models.SourceFile) (parser.Language, error) {
	if f.Language != nil {
		lang, ok := parser.FromTag(*f.Language)
		if !ok {
			return parser.LangUnknown, &UnsupportedLanguageError{Language: *f.Language}
		}
		return lang, nil
	}
	lang, ok := parser.FromFilename(f.Name)
	if !ok {
		return parser.LangUnknown, &UnsupportedLanguageError{Language: parser.Extension(f.Name)}
	}
	return lang, nil
}

// analyzeFile parses one file and assembles its metrics and findings. A
// parse failure is absorbed into the result so one malformed file cannot
// block the rest of the batch.
func (e *Engine) analyzeFile(ctx context.Context, rf resolvedFile) models.FileAnalysisResult {
	result := models.FileAnalysisResult{
		FileName: rf.file.Name,
		Language: string(rf.lang),
		Findings: make([]models.Finding, 0),
		Metrics: models.FileMetrics{
			LinesOfCode: uint32(rf.file.Lines()),
			// File-level placeholder, distinct from per-function
			// cyclomatic complexity.
			ComplexityScore: 1.0,
		},
	}

	e.log.Debug("analyzing file",
		"file", rf.file.Name,
		"language", rf.lang,
		"hash", models.HashContent([]byte(rf.file.Content)))

	parsed, err := rf.parser.Parse(ctx, []byte(rf.file.Content))
	if err != nil {
		e.log.Warn("parse failed", "file", rf.file.Name, "error", err)
		result.Findings = append(result.Findings, parseFailureFinding(err))
		return result
	}

	result.Metrics.FunctionsCount = uint32(len(parsed.Functions))
	result.Metrics.ClassesCount = uint32(len(parsed.Classes))
	result.Findings = append(result.Findings, placeholderFindings(rf.file)...)

	return result
}
