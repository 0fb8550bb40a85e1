package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/masm-tools/masmtool/builder"
	"github.com/masm-tools/masmtool/util"
	"github.com/tailscale/hujson"
)

const tasksFile = "tasks.json"

type TasksFile struct {
	Version string            `json:"version"`
	Tasks   []json.RawMessage `json:"tasks"`
}

func TasksPath(root string) string {
	return filepath.Join(root, settingsDir, tasksFile)
}

// LoadTasks returns the masmbuild tasks of the workspace, in file order.
// Tasks of other types are skipped.
func LoadTasks(root string) ([]builder.TaskDefinition, error) {
	path := TasksPath(root)
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	std, err := hujson.Standardize(append([]byte(nil), b...))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	file := TasksFile{}
	if err := json.Unmarshal(std, &file); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	defs := []builder.TaskDefinition{}
	for i, raw := range file.Tasks {
		def := builder.TaskDefinition{}
		if err := json.Unmarshal(raw, &def); err != nil {
			return nil, fmt.Errorf("parsing task %d of %s: %w", i, path, err)
		}
		if def.Type == builder.TaskType {
			defs = append(defs, def)
		}
	}
	return defs, nil
}

// ErrTaskNotFound is returned for a label that names no masmbuild task.
var ErrTaskNotFound = errors.New("masmbuild task not found")

// FindBuildTask returns the masmbuild task with the given label. Only the
// default label falls back to the default definition when the workspace does
// not define it.
func FindBuildTask(root, label string) (builder.TaskDefinition, error) {
	defs, err := LoadTasks(root)
	if err != nil && !os.IsNotExist(err) {
		return builder.TaskDefinition{}, err
	}
	for _, def := range defs {
		if def.Label == label {
			return def, nil
		}
	}
	if label == builder.DefaultTaskLabel {
		return builder.DefaultTaskDefinition(), nil
	}
	return builder.TaskDefinition{}, fmt.Errorf("%w: no task labelled %q in %s", ErrTaskNotFound, label, TasksPath(root))
}

// EnsureTasksFile creates .vscode/tasks.json with the default build task if
// it does not exist yet. It reports whether the file was created.
func EnsureTasksFile(root string) (bool, error) {
	if root == "" {
		return false, builder.ErrNoWorkspace
	}
	path := TasksPath(root)
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}

	def, err := json.Marshal(builder.DefaultTaskDefinition())
	if err != nil {
		return false, err
	}
	b, err := json.MarshalIndent(TasksFile{Version: "2.0.0", Tasks: []json.RawMessage{def}}, "", "  ")
	if err != nil {
		return false, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, err
	}
	if err := os.WriteFile(path, b, 0644); err != nil {
		return false, err
	}
	util.LogF("created default tasks.json at %s", path)
	return true, nil
}
