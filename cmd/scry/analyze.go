package main

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/scrylabs/scry/internal/engine"
	"github.com/scrylabs/scry/internal/fileproc"
	"github.com/scrylabs/scry/internal/output"
	"github.com/scrylabs/scry/internal/progress"
	"github.com/scrylabs/scry/internal/scanner"
	"github.com/scrylabs/scry/pkg/models"
	"github.com/scrylabs/scry/pkg/parser"
)

func analyzeCommand() *cli.Command {
	return &cli.Command{
		Name:      "analyze",
		Usage:     "Analyze source files and report metrics and findings",
		ArgsUsage: "[path ...]",
		Action:    runAnalyze,
	}
}

func runAnalyze(c *cli.Context) error {
	cfg := loadConfig(c)

	scan := scanner.New(cfg)
	var files []string
	for _, root := range getPaths(c) {
		found, err := scan.ScanDir(root)
		if err != nil {
			return fmt.Errorf("scanning %s: %w", root, err)
		}
		files = append(files, found...)
	}
	if len(files) == 0 {
		color.Yellow("No supported source files found")
		return nil
	}

	tracker := progress.NewBatch(len(files))
	sources, err := fileproc.LoadFiles(c.Context, files, tracker.FileLoaded)
	if err != nil {
		tracker.Fail(err)
		return err
	}
	tracker.Done()

	eng := engine.New(parser.NewRegistry(), engine.WithLimits(cfg.Limits))
	resp, err := eng.Analyze(c.Context, models.AnalysisRequest{Files: sources})
	if err != nil {
		return err
	}

	formatter, err := output.NewFormatter(
		output.ParseFormat(c.String("format")),
		c.String("output"),
		cfg.Output.Color,
	)
	if err != nil {
		return err
	}
	defer formatter.Close()

	return formatter.Output(analysisTable(resp))
}

// analysisTable lays out per-file results with a batch summary footer.
func analysisTable(resp *models.AnalysisResponse) *output.Table {
	rows := make([][]string, 0, len(resp.Results))
	for _, r := range resp.Results {
		rows = append(rows, []string{
			r.FileName,
			r.Language,
			fmt.Sprintf("%d", r.Metrics.LinesOfCode),
			fmt.Sprintf("%d", r.Metrics.FunctionsCount),
			fmt.Sprintf("%d", r.Metrics.ClassesCount),
			fmt.Sprintf("%d", len(r.Findings)),
		})
	}

	s := resp.Summary
	footer := []string{
		fmt.Sprintf("%d files", s.TotalFiles),
		"",
		fmt.Sprintf("%d lines", s.TotalLinesAnalyzed),
		"",
		"",
		fmt.Sprintf("%d findings %s", s.TotalFindings, severityBreakdown(s.FindingsBySeverity)),
	}

	return output.NewTable(
		fmt.Sprintf("Analysis Results (%dms)", resp.ExecutionTimeMS),
		[]string{"File", "Language", "Lines", "Functions", "Classes", "Findings"},
		rows,
		footer,
		resp,
	)
}

func severityBreakdown(bySeverity map[string]uint32) string {
	if len(bySeverity) == 0 {
		return ""
	}
	keys := make([]string, 0, len(bySeverity))
	for k := range bySeverity {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := "("
	for i, k := range keys {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%s: %d", k, bySeverity[k])
	}
	return out + ")"
}
