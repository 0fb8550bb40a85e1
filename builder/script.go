package builder

import (
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/masm-tools/masmtool/util"
)

// Script is a rendered plan persisted to a uniquely named temporary file.
// Whoever starts it owns removing it once the process has ended.
type Script struct {
	Path    string
	Dialect Dialect
}

// WriteScript renders the plan and writes it to the system temp directory.
func WriteScript(p *Plan, d Dialect) (*Script, error) {
	pattern := fmt.Sprintf("masmbuild_%d_*%s", time.Now().UnixMilli(), d.Ext())
	f, err := os.CreateTemp("", pattern)
	if err != nil {
		return nil, fmt.Errorf("creating build script: %w", err)
	}
	if _, err := f.WriteString(p.Render(d)); err != nil {
		f.Close()
		os.Remove(f.Name())
		return nil, fmt.Errorf("writing build script: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return nil, fmt.Errorf("writing build script: %w", err)
	}
	util.LogF("wrote build script %s", f.Name())
	return &Script{Path: f.Name(), Dialect: d}, nil
}

// Remove deletes the script file. Failures are logged and otherwise ignored.
func (s *Script) Remove() {
	if err := os.Remove(s.Path); err != nil {
		util.Warn("failed to delete temp build script %s: %v", s.Path, err)
	}
}

func (s *Script) command() *exec.Cmd {
	if s.Dialect == Batch {
		return exec.Command("cmd.exe", "/C", s.Path)
	}
	return exec.Command("/bin/sh", s.Path)
}
