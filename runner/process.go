package runner

import (
	"errors"
	"os/exec"
	"regexp"
	"runtime"
	"strings"

	"github.com/masm-tools/masmtool/util"
)

// commLen is the longest process name the kernel keeps for pgrep -x.
const commLen = 15

// IsProcessRunning reports whether a process with the given executable name
// is running. Any failure to ask the system counts as "not running".
func IsProcessRunning(executableName string) bool {
	if runtime.GOOS == "windows" {
		out, err := exec.Command("tasklist", "/NH", "/FI", "IMAGENAME eq "+executableName).Output()
		if err != nil {
			util.LogF("error checking tasklist: %v", err)
			return false
		}
		return strings.Contains(strings.ToLower(string(out)), strings.ToLower(executableName))
	}

	err := exec.Command("pgrep", pgrepArgs(executableName)...).Run()
	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		util.LogF("error checking running processes: %v", err)
	}
	return err == nil
}

// pgrepArgs matches the exact name when it fits the truncated process name,
// and the executable at the start of the full command line otherwise, either
// run directly or through an interpreter.
func pgrepArgs(executableName string) []string {
	if len(executableName) <= commLen {
		return []string{"-x", executableName}
	}
	return []string{"-f", `(^|[ /])` + regexp.QuoteMeta(executableName) + `( |$)`}
}
