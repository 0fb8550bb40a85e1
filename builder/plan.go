package builder

import (
	"path/filepath"
	"strings"

	"github.com/masm-tools/masmtool/variables"
)

type Phase int

const (
	PhaseAssemble Phase = iota
	PhaseLink
)

func (p Phase) String() string {
	if p == PhaseLink {
		return "link"
	}
	return "assemble"
}

// Step is a single tool invocation. Argv[0] is the tool itself; arguments are
// kept unquoted and only escaped when a script is rendered.
type Step struct {
	Phase Phase
	Dir   string // working directory for the invocation
	Argv  []string
}

// Plan is the structured form of a build: one assemble step per source file
// in input order, then a single link step run from the workspace root.
type Plan struct {
	Workspace string
	Sources   []string
	Objects   []string
	Output    string
	Steps     []Step
}

// ObjectPath derives the object file of a source: same directory, same
// basename, extension replaced by .obj.
func ObjectPath(source string) string {
	ext := filepath.Ext(source)
	return strings.TrimSuffix(source, ext) + ".obj"
}

func fullPath(root, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}

func fullPaths(root string, ps []string) []string {
	res := make([]string, len(ps))
	for i, p := range ps {
		res[i] = fullPath(root, p)
	}
	return res
}

// toolPath resolves a tool relative to the workspace. A bare command name
// such as "ml.exe" is left alone so it is looked up on PATH.
func toolPath(root, p string) string {
	if !strings.ContainsAny(p, `/\`) {
		return p
	}
	return fullPath(root, p)
}

func hasFlag(args []string, flag string) bool {
	for _, a := range args {
		if strings.EqualFold(a, flag) || strings.EqualFold(a, "-"+flag[1:]) {
			return true
		}
	}
	return false
}

// ResolveOutput expands the output template of def the same way Synthesize
// does, without validating anything else.
func ResolveOutput(def TaskDefinition, ctx variables.Context) string {
	return fullPath(ctx.WorkspaceFolder, variables.Substitute(def.Output, ctx))
}

// Synthesize validates def and turns it into a Plan. Templates in Files and
// Output are expanded with ctx and made absolute against the workspace root.
func Synthesize(def TaskDefinition, tools ToolConfig, ctx variables.Context) (*Plan, error) {
	if err := def.Validate(); err != nil {
		return nil, err
	}
	root := ctx.WorkspaceFolder
	if root == "" {
		return nil, ErrNoWorkspace
	}

	compiler := toolPath(root, tools.CompilerPath)
	linker := toolPath(root, tools.LinkerPath)
	includePaths := fullPaths(root, tools.IncludePaths)
	libPaths := fullPaths(root, tools.LibPaths)

	sources := make([]string, len(def.Files))
	for i, f := range def.Files {
		sources[i] = fullPath(root, variables.Substitute(f, ctx))
	}
	output := ResolveOutput(def, ctx)

	includeFlags := make([]string, 0, 2*len(includePaths))
	for _, dir := range includePaths {
		includeFlags = append(includeFlags, "/I", dir)
	}
	libFlags := make([]string, 0, len(libPaths))
	for _, dir := range libPaths {
		libFlags = append(libFlags, "/LIBPATH:"+dir)
	}

	plan := &Plan{
		Workspace: root,
		Sources:   sources,
		Objects:   make([]string, len(sources)),
		Output:    output,
	}

	for i, src := range sources {
		argv := []string{compiler}
		if !hasFlag(def.CompilerArgs, "/c") {
			argv = append(argv, "/c")
		}
		argv = append(argv, includeFlags...)
		argv = append(argv, def.CompilerArgs...)
		argv = append(argv, src)
		plan.Steps = append(plan.Steps, Step{Phase: PhaseAssemble, Dir: filepath.Dir(src), Argv: argv})
		plan.Objects[i] = ObjectPath(src)
	}

	argv := []string{linker}
	argv = append(argv, plan.Objects...)
	argv = append(argv, libFlags...)
	argv = append(argv, "/OUT:"+output)
	argv = append(argv, def.LinkerArgs...)
	plan.Steps = append(plan.Steps, Step{Phase: PhaseLink, Dir: root, Argv: argv})

	return plan, nil
}
