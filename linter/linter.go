// Package linter runs the external masmlint executable and translates its JSON
// report into protocol diagnostics.
package linter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"

	"github.com/masm-tools/masmtool/masm"
	"github.com/masm-tools/masmtool/util"
)

const DefaultPath = "masmlint.exe"

const source = "masmlint"

type Position struct {
	Line      int `json:"line"`
	Character int `json:"character"`
}

type Span struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

type Label struct {
	Span    Span   `json:"span"`
	Message string `json:"message"`
}

// Report is one element of the array masmlint prints with --json.
type Report struct {
	Severity        string  `json:"severity"`
	Message         string  `json:"message"`
	PrimaryLabel    Label   `json:"primaryLabel"`
	SecondaryLabels []Label `json:"secondaryLabels"`
	NoteMessage     string  `json:"note_message,omitempty"`
}

func (s Span) textRange() masm.TextRange {
	return masm.TextRange{
		Start: masm.TextPosition{Line: s.Start.Line, Char: s.Start.Character},
		End:   masm.TextPosition{Line: s.End.Line, Char: s.End.Character},
	}
}

func severity(s string) masm.DiagnosticSeverity {
	switch s {
	case "Error":
		return masm.Error
	case "Warning":
		return masm.Warning
	}
	return masm.Information
}

// Translate converts linter reports into diagnostics for the document at uri.
// Every secondary label becomes a diagnostic of its own with the given
// severity, emitted before its primary and cross-linked with it.
func Translate(uri string, reports []Report, secondary masm.DiagnosticSeverity) []masm.Diagnostic {
	diagnostics := make([]masm.Diagnostic, 0, len(reports))
	for _, r := range reports {
		primary := masm.Diagnostic{
			Severity:           severity(r.Severity),
			Range:              r.PrimaryLabel.Span.textRange(),
			Message:            r.Message,
			RelatedInformation: []masm.DiagnosticRelatedInformation{},
		}
		if r.PrimaryLabel.Message != "" {
			primary.Message += "\n" + r.PrimaryLabel.Message
		}
		if r.NoteMessage != "" {
			primary.Message += "\nnote: " + r.NoteMessage
		}

		for _, label := range r.SecondaryLabels {
			related := masm.Diagnostic{
				Severity: secondary,
				Range:    label.Span.textRange(),
				Message:  label.Message,
				Source:   source,
				RelatedInformation: []masm.DiagnosticRelatedInformation{{
					Location: masm.Location{URI: uri, Range: primary.Range},
					Message:  "Original error",
				}},
			}
			diagnostics = append(diagnostics, related)

			primary.RelatedInformation = append(primary.RelatedInformation, masm.DiagnosticRelatedInformation{
				Location: masm.Location{URI: uri, Range: related.Range},
				Message:  label.Message,
			})
		}

		diagnostics = append(diagnostics, primary)
	}
	return diagnostics
}

type Linter struct {
	Path string
}

func New(path string) *Linter {
	if path == "" {
		path = DefaultPath
	}
	return &Linter{Path: path}
}

// Run feeds text to "<Path> --json --stdin <filePath>" and decodes the report.
func (l *Linter) Run(ctx context.Context, filePath, text string) ([]Report, error) {
	cmd := exec.CommandContext(ctx, l.Path, "--json", "--stdin", filePath)
	cmd.Stdin = strings.NewReader(text)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("executing linter %s: %w", l.Path, err)
	}

	reports := []Report{}
	if err := json.Unmarshal(stdout.Bytes(), &reports); err != nil {
		util.LogF("linter stdout: %s", stdout.String())
		util.LogF("linter stderr: %s", stderr.String())
		return nil, fmt.Errorf("parsing linter output: %w", err)
	}
	return reports, nil
}

// Lint runs the linter and translates its report. A failing linter is logged
// and yields no diagnostics rather than an error.
func (l *Linter) Lint(ctx context.Context, uri, filePath, text string, secondary masm.DiagnosticSeverity) []masm.Diagnostic {
	reports, err := l.Run(ctx, filePath, text)
	if err != nil {
		util.Warn("%v", err)
		return []masm.Diagnostic{}
	}
	return Translate(uri, reports, secondary)
}

// CountErrors returns how many diagnostics have error severity.
func CountErrors(diagnostics []masm.Diagnostic) int {
	n := 0
	for _, d := range diagnostics {
		if d.Severity == masm.Error {
			n++
		}
	}
	return n
}
