package runner_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/masm-tools/masmtool/builder"
	"github.com/masm-tools/masmtool/config"
	"github.com/masm-tools/masmtool/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLauncher struct {
	runs     []string
	debugger string
	debugs   []runner.DebugConfiguration
}

func (f *fakeLauncher) Run(program string) error {
	f.runs = append(f.runs, program)
	return nil
}

func (f *fakeLauncher) Debug(debuggerPath string, cfg runner.DebugConfiguration) error {
	f.debugger = debuggerPath
	f.debugs = append(f.debugs, cfg)
	return nil
}

type workspace struct {
	root    string
	file    string
	toolLog string
}

// newWorkspace creates a workspace holding main.asm and stub ml/link tools
// that log their invocations. extra is merged into .vscode/settings.json.
func newWorkspace(t *testing.T, asmExit int, extra map[string]interface{}) workspace {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub toolchain uses /bin/sh")
	}
	root := t.TempDir()
	bin := filepath.Join(root, "bin")
	require.NoError(t, os.MkdirAll(bin, 0755))
	logPath := filepath.Join(root, "tools.log")

	ml := fmt.Sprintf("#!/bin/sh\nfor last; do :; done\necho \"ml $last\" >> '%s'\nexit %d\n", logPath, asmExit)
	link := fmt.Sprintf("#!/bin/sh\necho \"link $*\" >> '%s'\nexit 0\n", logPath)
	require.NoError(t, os.WriteFile(filepath.Join(bin, "ml"), []byte(ml), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(bin, "link"), []byte(link), 0755))

	settings := map[string]interface{}{
		"masm.compilerPath":                   "bin/ml",
		"masm.linkerPath":                     "bin/link",
		"masmLanguageServer.enableDiagnostics": false,
	}
	for k, v := range extra {
		settings[k] = v
	}
	b, err := json.Marshal(settings)
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".vscode"), 0755))
	require.NoError(t, os.WriteFile(config.SettingsPath(root), b, 0644))

	file := filepath.Join(root, "main.asm")
	require.NoError(t, os.WriteFile(file, []byte(".CODE\nmain PROC\n  ret\nmain ENDP\nEND\n"), 0644))

	return workspace{root: root, file: file, toolLog: logPath}
}

func (w workspace) toolCalls(t *testing.T) []string {
	b, err := os.ReadFile(w.toolLog)
	if os.IsNotExist(err) {
		return nil
	}
	require.NoError(t, err)
	return strings.Split(strings.TrimSpace(string(b)), "\n")
}

func newSession(w workspace, cachePath string) (*runner.Session, *fakeLauncher, *bytes.Buffer) {
	launcher := &fakeLauncher{}
	out := &bytes.Buffer{}
	s := runner.NewSession(w.root)
	s.CachePath = cachePath
	s.Dialect = builder.Shell
	s.Stdout = out
	s.Stderr = out
	s.Launcher = launcher
	s.ProcessRunning = func(string) bool { return false }
	s.Start()
	return s, launcher, out
}

func TestRunBuildsOnceThenReusesExecutable(t *testing.T) {
	w := newWorkspace(t, 0, nil)
	s, launcher, out := newSession(w, "")
	defer s.Stop()

	require.NoError(t, s.Run(context.Background(), w.file), out.String())
	assert.FileExists(t, config.TasksPath(w.root))
	calls := w.toolCalls(t)
	require.Len(t, calls, 2, out.String())
	assert.Equal(t, "ml "+w.file, calls[0])
	assert.True(t, strings.HasPrefix(calls[1], "link "+filepath.Join(w.root, "main.obj")), calls[1])

	require.NoError(t, s.Run(context.Background(), w.file))
	assert.Len(t, w.toolCalls(t), 2)
	assert.Contains(t, out.String(), "No changes detected. Using existing executable.")

	exe := filepath.Join(w.root, "main.exe")
	assert.Equal(t, []string{exe, exe}, launcher.runs)
}

func TestRebuildCacheSurvivesRestart(t *testing.T) {
	w := newWorkspace(t, 0, nil)
	cachePath := filepath.Join(t.TempDir(), "cache", "lastmodified.json")

	s, _, _ := newSession(w, cachePath)
	require.NoError(t, s.Run(context.Background(), w.file))
	require.NoError(t, s.Stop())
	assert.FileExists(t, cachePath)

	s, launcher, out := newSession(w, cachePath)
	defer s.Stop()
	require.NoError(t, s.Run(context.Background(), w.file))
	assert.Len(t, w.toolCalls(t), 2)
	assert.Contains(t, out.String(), "No changes detected.")
	assert.Len(t, launcher.runs, 1)
}

func TestCorruptCacheStartsEmpty(t *testing.T) {
	w := newWorkspace(t, 0, nil)
	cachePath := filepath.Join(t.TempDir(), "lastmodified.json")
	require.NoError(t, os.WriteFile(cachePath, []byte("{nope"), 0644))

	s, _, _ := newSession(w, cachePath)
	defer s.Stop()
	require.NoError(t, s.Run(context.Background(), w.file))
	assert.Len(t, w.toolCalls(t), 2)
}

func TestBuildFailureBlocksLaunchAndRetries(t *testing.T) {
	w := newWorkspace(t, 2, nil)
	s, launcher, out := newSession(w, "")
	defer s.Stop()

	err := s.Run(context.Background(), w.file)
	var failure *builder.ToolFailure
	require.True(t, errors.As(err, &failure), "got %v", err)
	assert.Equal(t, 2, failure.Code)
	assert.Contains(t, out.String(), "Assembler error -- code 2")
	assert.Empty(t, launcher.runs)

	// a failed build is not cached, so the next attempt builds again
	err = s.Run(context.Background(), w.file)
	require.True(t, errors.As(err, &failure))
	assert.Len(t, w.toolCalls(t), 2)
}

func TestLintErrorsBlockAfterBuild(t *testing.T) {
	lintDir := t.TempDir()
	report := `[{"severity":"Error","message":"bad operand","primaryLabel":{"span":{"start":{"line":2,"character":2},"end":{"line":2,"character":5}},"message":""},"secondaryLabels":[]}]`
	lint := filepath.Join(lintDir, "masmlint")
	require.NoError(t, os.WriteFile(lint, []byte("#!/bin/sh\ncat > /dev/null\necho '"+report+"'\n"), 0755))

	w := newWorkspace(t, 0, map[string]interface{}{
		"masmLanguageServer.enableDiagnostics": true,
		"masm.lintPath":                        lint,
	})
	s, launcher, _ := newSession(w, "")
	defer s.Stop()

	err := s.Debug(context.Background(), w.file)
	var lintErr *runner.LintError
	require.True(t, errors.As(err, &lintErr), "got %v", err)
	assert.Equal(t, 1, lintErr.Count)
	assert.Contains(t, err.Error(), "cannot debug")

	// the build still ran
	assert.Len(t, w.toolCalls(t), 2)
	assert.Empty(t, launcher.debugs)
}

func TestDebugStartsConfiguredDebugger(t *testing.T) {
	w := newWorkspace(t, 0, map[string]interface{}{"masm.debuggerPath": "/opt/masmdbg"})
	s, launcher, _ := newSession(w, "")
	defer s.Stop()

	require.NoError(t, s.Debug(context.Background(), w.file))
	assert.Equal(t, "/opt/masmdbg", launcher.debugger)
	require.Len(t, launcher.debugs, 1)
	assert.Equal(t, runner.NewDebugConfiguration(filepath.Join(w.root, "main.exe")), launcher.debugs[0])
	assert.Equal(t, "launch", launcher.debugs[0].Request)
}

func TestRefusesWhileProgramRunning(t *testing.T) {
	w := newWorkspace(t, 0, nil)
	s, launcher, _ := newSession(w, "")
	defer s.Stop()
	var asked string
	s.ProcessRunning = func(name string) bool {
		asked = name
		return true
	}

	err := s.Run(context.Background(), w.file)
	var running *runner.AlreadyRunningError
	require.True(t, errors.As(err, &running), "got %v", err)
	assert.Equal(t, "main.exe", asked)
	assert.Empty(t, w.toolCalls(t))
	assert.Empty(t, launcher.runs)
}

func TestRejectsBadInput(t *testing.T) {
	w := newWorkspace(t, 0, nil)
	s, _, _ := newSession(w, "")
	defer s.Stop()

	assert.ErrorIs(t, s.Run(context.Background(), ""), runner.ErrNoActiveFile)
	assert.ErrorIs(t, s.Run(context.Background(), filepath.Join(w.root, "notes.txt")), runner.ErrNotMasmFile)

	s.Root = ""
	assert.ErrorIs(t, s.Run(context.Background(), w.file), builder.ErrNoWorkspace)
}

func TestIsMasmFile(t *testing.T) {
	assert.True(t, runner.IsMasmFile("a.asm"))
	assert.True(t, runner.IsMasmFile("macros.INC"))
	assert.False(t, runner.IsMasmFile("a.s"))
	assert.False(t, runner.IsMasmFile("asm"))
}

func TestProcessSpawnErrorUnwraps(t *testing.T) {
	err := &runner.ProcessSpawnError{Path: "x.exe", Err: os.ErrNotExist}
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "x.exe")
}

func TestConsoleLauncherReportsMissingDebugger(t *testing.T) {
	err := runner.ConsoleLauncher{}.Debug(filepath.Join(t.TempDir(), "no-such-debugger"), runner.NewDebugConfiguration("main.exe"))
	var spawn *runner.ProcessSpawnError
	require.True(t, errors.As(err, &spawn), "got %v", err)
}
