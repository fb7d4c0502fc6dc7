package engine

import (
	"errors"
	"strings"

	"github.com/scrylabs/scry/pkg/models"
	"github.com/scrylabs/scry/pkg/parser"
)

// parseFailureFinding reports an absorbed per-file parse failure as a
// finding so the batch can continue around it.
func parseFailureFinding(err error) models.Finding {
	line := uint32(1)
	message := err.Error()

	var parseErr *parser.ParseError
	if errors.As(err, &parseErr) {
		line = parseErr.Line
		message = parseErr.Message
	}

	return models.Finding{
		RuleID:   "parse-error",
		Severity: models.SeverityHigh,
		Message:  message,
		Location: models.Location{Line: line, Column: 1},
	}
}

// placeholderFindings is the single demonstration rule carried by the
// engine; the real rule set lives in an external collaborator.
func placeholderFindings(file models.SourceFile) []models.Finding {
	var findings []models.Finding

	if strings.Contains(file.Content, "function") && file.Lines() < 5 {
		suggestion := "Consider if this function adds value"
		findings = append(findings, models.Finding{
			RuleID:     "demo-simple-function",
			Severity:   models.SeverityLow,
			Message:    "Function appears to be very simple",
			Location:   models.Location{Line: 1, Column: 1},
			Suggestion: &suggestion,
		})
	}

	return findings
}
