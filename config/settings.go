// Package config reads the workspace's .vscode/settings.json and tasks.json.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/masm-tools/masmtool/builder"
	"github.com/masm-tools/masmtool/masm"
	"github.com/tailscale/hujson"
)

const (
	settingsDir  = ".vscode"
	settingsFile = "settings.json"

	DefaultDebuggerPath = "masmdbg.exe"
	DefaultLintPath     = "masmlint.exe"
)

// LanguageServerSettings is the "masmLanguageServer" section.
type LanguageServerSettings struct {
	EnableDiagnostics      bool   `json:"enableDiagnostics"`
	SecondaryLabelSeverity string `json:"secondaryLabelSeverity"` // "information" or "hint"
}

func DefaultLanguageServerSettings() LanguageServerSettings {
	return LanguageServerSettings{
		EnableDiagnostics:      true,
		SecondaryLabelSeverity: "information",
	}
}

func (s LanguageServerSettings) SecondarySeverity() masm.DiagnosticSeverity {
	if s.SecondaryLabelSeverity == "hint" {
		return masm.Hint
	}
	return masm.Information
}

// Settings is a parsed settings.json. Keys may be written flat
// ("masm.compilerPath") or nested ({"masm": {"compilerPath": ...}}).
type Settings struct {
	path   string
	src    []byte // file as read, comments included
	values map[string]json.RawMessage
	dirty  []patchOp
}

func SettingsPath(root string) string {
	return filepath.Join(root, settingsDir, settingsFile)
}

// Load reads the settings of the workspace at root. A missing file yields
// empty settings, so every getter returns its default.
func Load(root string) (*Settings, error) {
	s := &Settings{path: SettingsPath(root), values: map[string]json.RawMessage{}}
	b, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}
	if len(strings.TrimSpace(string(b))) == 0 {
		return s, nil
	}
	std, err := hujson.Standardize(append([]byte(nil), b...))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", s.path, err)
	}
	if err := json.Unmarshal(std, &s.values); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", s.path, err)
	}
	s.src = b
	return s, nil
}

func (s *Settings) raw(key string) (json.RawMessage, bool) {
	if v, ok := s.values[key]; ok {
		return v, true
	}
	section, name, ok := strings.Cut(key, ".")
	if !ok {
		return nil, false
	}
	nested := map[string]json.RawMessage{}
	if err := json.Unmarshal(s.values[section], &nested); err != nil {
		return nil, false
	}
	v, ok := nested[name]
	return v, ok
}

func (s *Settings) get(key string, out interface{}) bool {
	v, ok := s.raw(key)
	if !ok {
		return false
	}
	return json.Unmarshal(v, out) == nil
}

func (s *Settings) String(key, def string) string {
	var v string
	if !s.get(key, &v) || v == "" {
		return def
	}
	return v
}

func (s *Settings) Strings(key string) []string {
	var v []string
	if !s.get(key, &v) {
		return []string{}
	}
	return v
}

func (s *Settings) Bool(key string, def bool) bool {
	var v bool
	if !s.get(key, &v) {
		return def
	}
	return v
}

// Set stores key, nested under its section when the file already uses that
// form. Call Save to write the file.
func (s *Settings) Set(key string, value interface{}) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	op, nested := s.patchFor(key, b)
	s.dirty = append(s.dirty, op)
	if nested == nil {
		s.values[key] = b
		return nil
	}
	section, name, _ := strings.Cut(key, ".")
	nested[name] = b
	s.values[section], err = json.Marshal(nested)
	return err
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

type patchOp struct {
	Op    string          `json:"op"`
	Path  string          `json:"path"`
	Value json.RawMessage `json:"value"`
}

// patchFor builds the operation that stores value under key: in the nested
// section object when the file already has one (which is then returned), as
// a flat dotted key otherwise.
func (s *Settings) patchFor(key string, value json.RawMessage) (patchOp, map[string]json.RawMessage) {
	flat := "/" + pointerEscaper.Replace(key)
	if _, ok := s.values[key]; ok {
		return patchOp{Op: "replace", Path: flat, Value: value}, nil
	}
	section, name, ok := strings.Cut(key, ".")
	if !ok {
		return patchOp{Op: "add", Path: flat, Value: value}, nil
	}
	nested := map[string]json.RawMessage{}
	if json.Unmarshal(s.values[section], &nested) != nil || nested == nil {
		return patchOp{Op: "add", Path: flat, Value: value}, nil
	}
	op := "add"
	if _, ok := nested[name]; ok {
		op = "replace"
	}
	return patchOp{Op: op, Path: "/" + pointerEscaper.Replace(section) + "/" + pointerEscaper.Replace(name), Value: value}, nested
}

// Save writes the settings back. An existing file is patched in place so the
// user's comments and layout survive.
func (s *Settings) Save() error {
	var b []byte
	if len(s.src) == 0 {
		out, err := json.MarshalIndent(s.values, "", "    ")
		if err != nil {
			return err
		}
		b = append(out, '\n')
	} else {
		v, err := hujson.Parse(s.src)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", s.path, err)
		}
		patch, err := json.Marshal(s.dirty)
		if err != nil {
			return err
		}
		if err := v.Patch(patch); err != nil {
			return fmt.Errorf("updating %s: %w", s.path, err)
		}
		b = v.Pack()
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(s.path, b, 0644); err != nil {
		return err
	}
	s.src = b
	s.dirty = nil
	return nil
}

func (s *Settings) Tools() builder.ToolConfig {
	def := builder.DefaultToolConfig()
	return builder.ToolConfig{
		CompilerPath: s.String("masm.compilerPath", def.CompilerPath),
		LinkerPath:   s.String("masm.linkerPath", def.LinkerPath),
		IncludePaths: s.Strings("masm.includePaths"),
		LibPaths:     s.Strings("masm.libPaths"),
	}
}

func (s *Settings) DebuggerPath() string {
	return s.String("masm.debuggerPath", DefaultDebuggerPath)
}

func (s *Settings) LintPath() string {
	return s.String("masm.lintPath", DefaultLintPath)
}

func (s *Settings) LanguageServer() LanguageServerSettings {
	def := DefaultLanguageServerSettings()
	return LanguageServerSettings{
		EnableDiagnostics:      s.Bool("masmLanguageServer.enableDiagnostics", def.EnableDiagnostics),
		SecondaryLabelSeverity: s.String("masmLanguageServer.secondaryLabelSeverity", def.SecondaryLabelSeverity),
	}
}

// ToggleDiagnostics flips masmLanguageServer.enableDiagnostics in the
// workspace settings and returns the new value.
func ToggleDiagnostics(root string) (bool, error) {
	s, err := Load(root)
	if err != nil {
		return false, err
	}
	enabled := !s.LanguageServer().EnableDiagnostics
	if err := s.Set("masmLanguageServer.enableDiagnostics", enabled); err != nil {
		return false, err
	}
	if err := s.Save(); err != nil {
		return false, fmt.Errorf("failed to toggle MASM diagnostics: %w", err)
	}
	return enabled, nil
}
