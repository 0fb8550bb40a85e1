package runner

import (
	"os/exec"
	"path/filepath"

	"github.com/masm-tools/masmtool/util"
)

// DebugConfiguration is the launch configuration handed to the debugger. It
// is also what `masmtool debug --print-config` writes for editors.
type DebugConfiguration struct {
	Type    string `json:"type"`
	Request string `json:"request"`
	Name    string `json:"name"`
	Program string `json:"program"`
}

func NewDebugConfiguration(program string) DebugConfiguration {
	return DebugConfiguration{
		Type:    "masmdbg",
		Request: "launch",
		Name:    "Debug MASM Program",
		Program: program,
	}
}

// ConsoleLauncher runs programs in a console window of their own and starts
// the debugger as a detached process.
type ConsoleLauncher struct{}

func (ConsoleLauncher) Run(program string) error {
	util.LogF("running %s", program)
	cmd := consoleCommand(program)
	cmd.Dir = filepath.Dir(program)
	return runConsole(cmd, program)
}

func (ConsoleLauncher) Debug(debuggerPath string, cfg DebugConfiguration) error {
	util.LogF("debugging %s with %s", cfg.Program, debuggerPath)
	cmd := exec.Command(debuggerPath, cfg.Program)
	cmd.Dir = filepath.Dir(cfg.Program)
	if err := cmd.Start(); err != nil {
		return &ProcessSpawnError{Path: debuggerPath, Err: err}
	}
	go func() {
		if err := cmd.Wait(); err != nil {
			util.LogF("debugger exited: %v", err)
		}
	}()
	return nil
}
