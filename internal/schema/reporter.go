package schema

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
)

// Format specifies the output format for validation reports.
type Format string

const (
	// FormatText produces human-readable text output.
	FormatText Format = "text"
	// FormatJSONReport produces machine-readable JSON output.
	FormatJSONReport Format = "json"
)

// Reporter formats and writes validation results.
type Reporter struct {
	out    io.Writer
	format Format
}

// NewReporter creates a new Reporter.
func NewReporter(out io.Writer, format Format) *Reporter {
	return &Reporter{
		out:    out,
		format: format,
	}
}

// Report writes the validation outcome to the output. A nil verr means the
// input validated cleanly.
func (r *Reporter) Report(verr *Error) error {
	switch r.format {
	case FormatJSONReport:
		return r.reportJSON(verr)
	default:
		return r.reportText(verr)
	}
}

// reportJSON writes the outcome as JSON.
func (r *Reporter) reportJSON(verr *Error) error {
	payload := struct {
		Valid  bool    `json:"valid"`
		Issues []Issue `json:"issues,omitempty"`
	}{
		Valid: verr == nil,
	}
	if verr != nil {
		payload.Issues = verr.Issues
	}

	encoder := json.NewEncoder(r.out)
	encoder.SetIndent("", "  ")
	return errors.Wrap(encoder.Encode(payload), "encoding JSON report")
}

// reportText writes the outcome as human-readable text.
func (r *Reporter) reportText(verr *Error) error {
	if verr == nil || len(verr.Issues) == 0 {
		fmt.Fprintln(r.out, color.GreenString("✓ Validation passed"))
		return nil
	}

	fmt.Fprintf(r.out, "Validation failed: %s\n\n",
		color.RedString("%d issue(s)", len(verr.Issues)))

	for _, issue := range verr.Issues {
		r.printIssue(issue)
	}
	fmt.Fprintln(r.out)

	return nil
}

func (r *Reporter) printIssue(i Issue) {
	var sb strings.Builder
	sb.WriteString("  • ")

	if len(i.Path) > 0 {
		sb.WriteString(color.RedString(strings.Join(i.Path, ".")))
		sb.WriteString(": ")
	}
	sb.WriteString(i.Message)

	fmt.Fprintln(r.out, sb.String())
}
