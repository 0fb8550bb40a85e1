// Package variables expands the ${name} placeholders used in task files,
// e.g. ${file} or ${workspaceFolder}, from a snapshot of the current editor state.
package variables

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Context is a read-only snapshot of everything a placeholder can resolve to.
// Zero values mean "unavailable" and resolve to the empty string.
type Context struct {
	UserHome        string
	ExecPath        string
	WorkspaceFolder string // first workspace root
	File            string // absolute path of the active file
	Line            int    // 0-based cursor line, only meaningful when HasCursor is set
	HasCursor       bool
	SelectedText    string
	PathSeparator   string
}

// NewContext harvests the host values (home directory, executable path,
// separator) and records the given workspace root and active file.
func NewContext(workspaceFolder, file string) Context {
	home, _ := os.UserHomeDir()
	exe, _ := os.Executable()
	return Context{
		UserHome:        home,
		ExecPath:        exe,
		WorkspaceFolder: workspaceFolder,
		File:            file,
		PathSeparator:   string(filepath.Separator),
	}
}

type substitution struct {
	token string
	value string
}

// substitutions returns the token/value pairs in the order they are applied.
func (c Context) substitutions() []substitution {
	var fileDirname, fileBasename, fileExtname, fileBasenameNoExtension string
	var fileWorkspaceFolder, relativeFile, relativeFileDirname string
	var lineNumber, selectedText string

	if c.File != "" {
		fileDirname = filepath.Dir(c.File)
		fileBasename = filepath.Base(c.File)
		fileExtname = filepath.Ext(c.File)
		fileBasenameNoExtension = strings.TrimSuffix(fileBasename, fileExtname)

		if c.WorkspaceFolder != "" {
			fileWorkspaceFolder = c.WorkspaceFolder
			if strings.HasPrefix(c.File, c.WorkspaceFolder) {
				if rel, err := filepath.Rel(c.WorkspaceFolder, c.File); err == nil {
					relativeFile = rel
					relativeFileDirname = filepath.Dir(rel)
				}
			}
		}

		if c.HasCursor {
			lineNumber = strconv.Itoa(c.Line + 1)
		}
		selectedText = c.SelectedText
	}

	workspaceFolderBasename := ""
	if c.WorkspaceFolder != "" {
		workspaceFolderBasename = filepath.Base(c.WorkspaceFolder)
	}

	return []substitution{
		{"${userHome}", c.UserHome},
		{"${execPath}", c.ExecPath},
		{"${workspaceFolder}", c.WorkspaceFolder},
		{"${workspaceFolderBasename}", workspaceFolderBasename},
		{"${file}", c.File},
		{"${fileWorkspaceFolder}", fileWorkspaceFolder},
		{"${fileDirname}", fileDirname},
		{"${fileBasename}", fileBasename},
		{"${fileExtname}", fileExtname},
		{"${fileBasenameNoExtension}", fileBasenameNoExtension},
		{"${relativeFile}", relativeFile},
		{"${relativeFileDirname}", relativeFileDirname},
		{"${lineNumber}", lineNumber},
		{"${selectedText}", selectedText},
		{"${pathSeparator}", c.PathSeparator},
	}
}

// Substitute replaces every recognised placeholder in template. Tokens are
// matched literally and applied one after another in a fixed order, so a
// resolved value that contains a later token verbatim is expanded again.
func Substitute(template string, ctx Context) string {
	output := template
	for _, s := range ctx.substitutions() {
		output = strings.ReplaceAll(output, s.token, s.value)
	}
	return output
}

// Tokens lists the recognised placeholders in application order.
func Tokens() []string {
	subs := Context{}.substitutions()
	tokens := make([]string, len(subs))
	for i, s := range subs {
		tokens[i] = s.token
	}
	return tokens
}
