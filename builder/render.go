package builder

import (
	"fmt"
	"regexp"
	"runtime"
	"strings"
)

// Dialect selects the script language a Plan is rendered to.
type Dialect int

const (
	Batch Dialect = iota // cmd.exe .bat
	Shell                // POSIX sh
)

func DefaultDialect() Dialect {
	if runtime.GOOS == "windows" {
		return Batch
	}
	return Shell
}

func ParseDialect(s string) (Dialect, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return DefaultDialect(), nil
	case "bat", "batch", "cmd":
		return Batch, nil
	case "sh", "shell":
		return Shell, nil
	}
	return 0, fmt.Errorf("unknown script dialect %q", s)
}

func (d Dialect) Ext() string {
	if d == Batch {
		return ".bat"
	}
	return ".sh"
}

const (
	assemblerErrorMessage = "Assembler error -- code"
	linkerErrorMessage    = "Linker error -- code"
	successMessage        = "Build completed successfully!"
)

// Render produces the script text for the plan. The script runs every step in
// order, stops at the first failing tool and exits with that tool's status.
func (p *Plan) Render(d Dialect) string {
	if d == Batch {
		return p.renderBatch()
	}
	return p.renderShell()
}

var batchSafe = regexp.MustCompile(`^[A-Za-z0-9_@+=:,./\\-]+$`)

func batchQuote(arg string) string {
	arg = strings.ReplaceAll(arg, "%", "%%")
	if batchSafe.MatchString(arg) {
		return arg
	}
	return `"` + strings.ReplaceAll(arg, `"`, `""`) + `"`
}

var batchEchoEscaper = strings.NewReplacer("%", "%%", "^", "^^", "&", "^&", "|", "^|", "<", "^<", ">", "^>", "(", "^(", ")", "^)")

func batchCommand(argv []string) string {
	quoted := make([]string, len(argv))
	for i, a := range argv {
		quoted[i] = batchQuote(a)
	}
	// the tool itself is always quoted, mirroring how cmd.exe expects paths with spaces
	if !strings.HasPrefix(quoted[0], `"`) {
		quoted[0] = `"` + quoted[0] + `"`
	}
	return strings.Join(quoted, " ")
}

func (p *Plan) renderBatch() string {
	var b strings.Builder
	line := func(format string, args ...interface{}) {
		fmt.Fprintf(&b, format, args...)
		b.WriteString("\r\n")
	}

	line("@echo off")
	line("setlocal")
	line("")

	for _, s := range p.Steps {
		if s.Phase == PhaseLink {
			line("cd /d %s", batchQuote(s.Dir))
			line("echo.")
			line("echo Linking to output %s", batchEchoEscaper.Replace(p.Output))
			line("%s", batchCommand(s.Argv))
			line("if errorlevel 1 goto errlink")
			line("")
			continue
		}
		line("cd /d %s", batchQuote(s.Dir))
		line("%s", batchCommand(s.Argv))
		line("if errorlevel 1 goto errasm")
		line("")
	}

	line("echo %s", successMessage)
	line("goto TheEnd")
	line("")
	line(":errlink")
	line("echo %s %%errorlevel%%", linkerErrorMessage)
	line("goto TheEnd")
	line("")
	line(":errasm")
	line("echo %s %%errorlevel%%", assemblerErrorMessage)
	line("goto TheEnd")
	line("")
	line(":TheEnd")
	line("exit /B %%errorlevel%%")
	return b.String()
}

var shellSafe = regexp.MustCompile(`^[A-Za-z0-9_@%+=:,./-]+$`)

func shellQuote(arg string) string {
	if shellSafe.MatchString(arg) {
		return arg
	}
	return "'" + strings.ReplaceAll(arg, "'", `'\''`) + "'"
}

func shellCommand(argv []string) string {
	quoted := make([]string, len(argv))
	for i, a := range argv {
		quoted[i] = shellQuote(a)
	}
	return strings.Join(quoted, " ")
}

func (p *Plan) renderShell() string {
	var b strings.Builder
	line := func(format string, args ...interface{}) {
		fmt.Fprintf(&b, format, args...)
		b.WriteString("\n")
	}

	line("#!/bin/sh")
	line("")
	line("errasm() {")
	line("\techo \"%s $1\"", assemblerErrorMessage)
	line("\texit \"$1\"")
	line("}")
	line("")
	line("errlink() {")
	line("\techo \"%s $1\"", linkerErrorMessage)
	line("\texit \"$1\"")
	line("}")
	line("")

	for _, s := range p.Steps {
		if s.Phase == PhaseLink {
			line("cd %s || exit $?", shellQuote(s.Dir))
			line("echo")
			line("echo %s", shellQuote("Linking to output "+p.Output))
			line("%s || errlink $?", shellCommand(s.Argv))
			line("")
			continue
		}
		line("cd %s || exit $?", shellQuote(s.Dir))
		line("%s || errasm $?", shellCommand(s.Argv))
		line("")
	}

	line("echo %s", shellQuote(successMessage))
	line("exit 0")
	return b.String()
}
