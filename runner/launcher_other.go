//go:build !windows

package runner

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// Without a console to open, the program runs attached to the current
// terminal.
func consoleCommand(program string) *exec.Cmd {
	cmd := exec.Command(program)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd
}

func runConsole(cmd *exec.Cmd, program string) error {
	err := cmd.Run()
	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return &ProcessSpawnError{Path: program, Err: err}
	}
	fmt.Fprintf(os.Stdout, "\n------------------\n(program exited with code: %d)\n", cmd.ProcessState.ExitCode())
	return nil
}
