// Package runner implements the run and debug commands: build the active
// file's workspace when it changed, then start the program or the debugger.
package runner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/masm-tools/masmtool/builder"
	"github.com/masm-tools/masmtool/config"
	"github.com/masm-tools/masmtool/linter"
	"github.com/masm-tools/masmtool/util"
	"github.com/masm-tools/masmtool/variables"
)

const (
	actionRun   = "run"
	actionDebug = "debug"
)

// Launcher starts a built program. The console launcher is used unless a
// session is given another one.
type Launcher interface {
	Run(program string) error
	Debug(debuggerPath string, cfg DebugConfiguration) error
}

// Session carries the state shared by consecutive run and debug commands in
// one workspace. Start must be called before use and Stop when done.
type Session struct {
	Root string

	// CachePath is where modification times are persisted between sessions.
	// Empty keeps the cache in memory only.
	CachePath string

	Dialect builder.Dialect
	Native  bool
	Stdout  io.Writer
	Stderr  io.Writer

	Launcher       Launcher
	ProcessRunning func(executableName string) bool

	mu           sync.Mutex
	lastModified map[string]int64
	started      bool
}

func NewSession(root string) *Session {
	s := &Session{
		Root:           root,
		Dialect:        builder.DefaultDialect(),
		Stdout:         os.Stdout,
		Stderr:         os.Stderr,
		Launcher:       ConsoleLauncher{},
		ProcessRunning: IsProcessRunning,
	}
	if dir, err := os.UserCacheDir(); err == nil {
		s.CachePath = filepath.Join(dir, "masmtool", "lastmodified.json")
	}
	return s
}

// Start loads the rebuild cache. A missing or unreadable cache starts empty.
func (s *Session) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastModified = map[string]int64{}
	s.started = true
	if s.CachePath == "" {
		return
	}
	b, err := os.ReadFile(s.CachePath)
	if err != nil {
		if !os.IsNotExist(err) {
			util.LogF("reading build cache: %v", err)
		}
		return
	}
	if err := json.Unmarshal(b, &s.lastModified); err != nil {
		util.Warn("ignoring corrupt build cache %s: %v", s.CachePath, err)
		s.lastModified = map[string]int64{}
	}
}

// Stop persists the rebuild cache.
func (s *Session) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return nil
	}
	s.started = false
	if s.CachePath == "" {
		return nil
	}
	b, err := json.MarshalIndent(s.lastModified, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.CachePath), 0755); err != nil {
		return fmt.Errorf("saving build cache: %w", err)
	}
	if err := os.WriteFile(s.CachePath, b, 0644); err != nil {
		return fmt.Errorf("saving build cache: %w", err)
	}
	return nil
}

// IsMasmFile reports whether path names an assembly source or include file.
func IsMasmFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".asm", ".inc":
		return true
	}
	return false
}

func modTime(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.ModTime().UnixNano(), nil
}

func (s *Session) unchanged(file string, mtime int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	last, ok := s.lastModified[file]
	return ok && last == mtime
}

func (s *Session) record(file string, mtime int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastModified == nil {
		s.lastModified = map[string]int64{}
	}
	s.lastModified[file] = mtime
}

func (s *Session) forget(file string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.lastModified, file)
}

// Run builds the workspace of file when needed and runs the output program.
func (s *Session) Run(ctx context.Context, file string) error {
	program, _, err := s.prepare(ctx, file, actionRun)
	if err != nil {
		return err
	}
	return s.Launcher.Run(program)
}

// Debug builds the workspace of file when needed and starts the debugger on
// the output program.
func (s *Session) Debug(ctx context.Context, file string) error {
	program, settings, err := s.prepare(ctx, file, actionDebug)
	if err != nil {
		return err
	}
	return s.Launcher.Debug(settings.DebuggerPath(), NewDebugConfiguration(program))
}

// prepare runs everything run and debug share and returns the program to
// start.
func (s *Session) prepare(ctx context.Context, file, action string) (string, *config.Settings, error) {
	if file == "" {
		return "", nil, ErrNoActiveFile
	}
	if !IsMasmFile(file) {
		return "", nil, ErrNotMasmFile
	}
	if s.Root == "" {
		return "", nil, builder.ErrNoWorkspace
	}
	file, err := filepath.Abs(file)
	if err != nil {
		return "", nil, err
	}

	created, err := config.EnsureTasksFile(s.Root)
	if err != nil {
		return "", nil, err
	}
	if created {
		fmt.Fprintf(s.Stdout, "Created %s\n", config.TasksPath(s.Root))
	}
	settings, err := config.Load(s.Root)
	if err != nil {
		return "", nil, err
	}
	def, err := config.FindBuildTask(s.Root, builder.DefaultTaskLabel)
	if err != nil {
		return "", nil, err
	}

	vctx := variables.NewContext(s.Root, file)
	program := builder.ResolveOutput(def, vctx)
	if s.ProcessRunning != nil && s.ProcessRunning(filepath.Base(program)) {
		return "", nil, &AlreadyRunningError{Name: filepath.Base(program)}
	}

	lintErrors := 0
	if settings.LanguageServer().EnableDiagnostics {
		lintErrors = s.lint(ctx, settings, file)
	}

	mtime, err := modTime(file)
	if err != nil {
		return "", nil, err
	}

	var buildErr error
	if s.unchanged(file, mtime) {
		fmt.Fprintln(s.Stdout, "No changes detected. Using existing executable.")
	} else {
		_, buildErr = builder.Build(def, settings.Tools(), vctx, builder.BuildOptions{
			Dialect: s.Dialect,
			Native:  s.Native,
			Stdout:  s.Stdout,
			Stderr:  s.Stderr,
		})
		var failure *builder.ToolFailure
		if buildErr != nil && !errors.As(buildErr, &failure) {
			return "", nil, buildErr
		}
		if buildErr == nil {
			s.record(file, mtime)
		} else {
			s.forget(file)
		}
	}

	if lintErrors > 0 {
		return "", nil, &LintError{Action: action, Count: lintErrors}
	}
	if buildErr != nil {
		return "", nil, buildErr
	}
	return program, settings, nil
}

func (s *Session) lint(ctx context.Context, settings *config.Settings, file string) int {
	text, err := os.ReadFile(file)
	if err != nil {
		util.Warn("reading %s for linting: %v", file, err)
		return 0
	}
	ls := settings.LanguageServer()
	diagnostics := linter.New(settings.LintPath()).Lint(ctx, "file://"+filepath.ToSlash(file), file, string(text), ls.SecondarySeverity())
	return linter.CountErrors(diagnostics)
}
