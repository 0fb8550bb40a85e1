//go:build windows

package runner

import (
	"fmt"
	"os/exec"
	"syscall"
)

// consoleCommand opens a new cmd window that runs program, reports its exit
// code and waits for a key press before closing.
func consoleCommand(program string) *exec.Cmd {
	cmd := exec.Command("cmd.exe")
	cmd.SysProcAttr = &syscall.SysProcAttr{
		CmdLine: fmt.Sprintf(`cmd.exe /C start "" cmd.exe /V:ON /C ""%s" & echo. & echo. & echo ------------------ & echo (program exited with code: !ERRORLEVEL!) & <nul set /p=Press any key to close this window . . . & pause >nul"`, program),
	}
	return cmd
}

// start returns as soon as the window is open.
func runConsole(cmd *exec.Cmd, program string) error {
	if err := cmd.Run(); err != nil {
		return &ProcessSpawnError{Path: program, Err: err}
	}
	return nil
}
