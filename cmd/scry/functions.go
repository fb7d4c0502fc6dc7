package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/scrylabs/scry/internal/output"
	"github.com/scrylabs/scry/internal/scanner"
	"github.com/scrylabs/scry/pkg/parser"
	"github.com/scrylabs/scry/pkg/stats"
)

func functionsCommand() *cli.Command {
	return &cli.Command{
		Name:      "functions",
		Usage:     "List every function with its cyclomatic complexity",
		ArgsUsage: "[path ...]",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "threshold",
				Aliases: []string{"t"},
				Value:   10,
				Usage:   "Highlight functions at or above this complexity",
			},
		},
		Action: runFunctions,
	}
}

type functionRow struct {
	File       string `json:"file"`
	Line       uint32 `json:"line"`
	Name       string `json:"name"`
	Complexity uint32 `json:"complexity"`
}

func runFunctions(c *cli.Context) error {
	cfg := loadConfig(c)
	threshold := uint32(c.Int("threshold"))
	if !c.IsSet("threshold") && cfg.Rules.ComplexityThreshold > 0 {
		threshold = uint32(cfg.Rules.ComplexityThreshold)
	}

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

	registry := parser.NewRegistry()
	var fns []functionRow
	for _, path := range files {
		lang, ok := parser.FromFilename(path)
		if !ok {
			continue
		}
		psr, ok := registry.Get(lang)
		if !ok {
			continue
		}
		content, err := os.ReadFile(path)
		if err != nil {
			slog.Warn("skipping unreadable file", "path", path, "error", err)
			continue
		}
		res, err := psr.Parse(c.Context, content)
		if err != nil {
			slog.Warn("skipping unparsable file", "path", path, "error", err)
			continue
		}
		for _, fn := range res.Functions {
			fns = append(fns, functionRow{
				File:       path,
				Line:       fn.Line,
				Name:       fn.Name,
				Complexity: fn.Complexity,
			})
		}
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

	return formatter.Output(functionsTable(fns, threshold, cfg.Output.Color))
}

func functionsTable(fns []functionRow, threshold uint32, colored bool) *output.Table {
	rows := make([][]string, 0, len(fns))
	complexities := make([]uint32, 0, len(fns))
	over := 0
	for _, fn := range fns {
		complexity := fmt.Sprintf("%d", fn.Complexity)
		if fn.Complexity >= threshold {
			over++
			if colored {
				complexity = color.RedString(complexity)
			}
		}
		rows = append(rows, []string{
			fmt.Sprintf("%s:%d", fn.File, fn.Line),
			fn.Name,
			complexity,
		})
		complexities = append(complexities, fn.Complexity)
	}

	d := stats.Describe(complexities)
	footer := []string{
		fmt.Sprintf("%d functions", d.Count),
		fmt.Sprintf("%d over threshold", over),
		fmt.Sprintf("mean %.1f p90 %.0f max %.0f", d.Mean, d.P90, d.Max),
	}

	return output.NewTable(
		"Function Complexity",
		[]string{"Location", "Function", "Complexity"},
		rows,
		footer,
		fns,
	)
}
