package builder

import (
	"errors"
	"fmt"
	"strings"
)

// TaskType is the "type" of build tasks in tasks.json.
const TaskType = "masmbuild"

// DefaultTaskLabel is the label run and debug look for.
const DefaultTaskLabel = "Build"

// TaskDefinition is one masmbuild entry of tasks.json.
type TaskDefinition struct {
	Type         string   `json:"type"`
	Label        string   `json:"label"`
	Files        []string `json:"files"`  // templates, compiled and linked in this order
	Output       string   `json:"output"` // template
	CompilerArgs []string `json:"compilerArgs,omitempty"`
	LinkerArgs   []string `json:"linkerArgs,omitempty"`
}

func DefaultTaskDefinition() TaskDefinition {
	return TaskDefinition{
		Type:         TaskType,
		Label:        DefaultTaskLabel,
		Files:        []string{"${file}"},
		Output:       "${fileDirname}/${fileBasenameNoExtension}.exe",
		CompilerArgs: []string{"/c", "/coff", "/Zi", "/Fl", "/W3"},
		LinkerArgs:   []string{"/SUBSYSTEM:CONSOLE", "/DEBUG", "/MACHINE:X86"},
	}
}

// ToolConfig holds the toolchain settings. It is read fresh for every build.
type ToolConfig struct {
	CompilerPath string
	LinkerPath   string
	IncludePaths []string
	LibPaths     []string
}

func DefaultToolConfig() ToolConfig {
	return ToolConfig{
		CompilerPath: "ml.exe",
		LinkerPath:   "link.exe",
	}
}

// ValidationError reports a malformed task definition. Nothing has been
// substituted or written when it is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("MASM build task: %q %s", e.Field, e.Reason)
}

// ToolFailure is a nonzero exit status of the assembler or linker, as
// propagated by the build script.
type ToolFailure struct {
	Code int
}

func (e *ToolFailure) Error() string {
	return fmt.Sprintf("build failed with exit code %d", e.Code)
}

var ErrNoWorkspace = errors.New("no workspace folder open")

func (d TaskDefinition) Validate() error {
	if len(d.Files) == 0 {
		return &ValidationError{Field: "files", Reason: "must be a non-empty array"}
	}
	if strings.TrimSpace(d.Output) == "" {
		return &ValidationError{Field: "output", Reason: "must be a valid string"}
	}
	return nil
}
