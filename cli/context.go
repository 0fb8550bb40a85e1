package cli

import (
	"path/filepath"

	"github.com/masm-tools/masmtool/variables"
	"github.com/spf13/cobra"
)

var (
	fileFlag      string
	lineFlag      int
	selectionFlag string
)

// addContextFlags registers the flags describing the editor state that
// templates are expanded against.
func addContextFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&fileFlag, "file", "f", "", "Active file")
	cmd.Flags().IntVarP(&lineFlag, "line", "l", 0, "1-based cursor line, 0 for no cursor")
	cmd.Flags().StringVar(&selectionFlag, "selection", "", "Selected text")
}

func variableContext() (variables.Context, error) {
	root, err := workspaceRoot()
	if err != nil {
		return variables.Context{}, err
	}
	file := fileFlag
	if file != "" {
		if file, err = filepath.Abs(file); err != nil {
			return variables.Context{}, err
		}
	}

	ctx := variables.NewContext(root, file)
	if lineFlag > 0 {
		ctx.HasCursor = true
		ctx.Line = lineFlag - 1
	}
	ctx.SelectedText = selectionFlag
	return ctx, nil
}
