// Package builder turns a masmbuild task definition into a compile-and-link
// plan, renders it as a batch or sh script and runs it.
package builder

import (
	"io"

	"github.com/masm-tools/masmtool/variables"
)

type BuildOptions struct {
	Dialect Dialect
	// Native runs the plan's argv lists directly instead of through a script.
	Native   bool
	Executor *Executor
	Stdout   io.Writer
	Stderr   io.Writer
}

// Build synthesizes, starts and waits for a build. A nonzero exit of the
// build is returned as *ToolFailure together with the code.
func Build(def TaskDefinition, tools ToolConfig, ctx variables.Context, opts BuildOptions) (int, error) {
	plan, err := Synthesize(def, tools, ctx)
	if err != nil {
		return SpawnFailedCode, err
	}

	ex := opts.Executor
	if ex == nil {
		ex = NewExecutor(opts.Stdout, opts.Stderr)
	}

	var code int
	if opts.Native {
		code = ex.StartPlan(plan).Wait()
	} else {
		script, err := WriteScript(plan, opts.Dialect)
		if err != nil {
			return SpawnFailedCode, err
		}
		code = ex.StartScript(script).Wait()
		script.Remove()
	}

	if code != 0 {
		return code, &ToolFailure{Code: code}
	}
	return 0, nil
}
