package cli

import (
	"fmt"

	"github.com/masm-tools/masmtool/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .vscode/tasks.json with the default build task",
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	root, err := workspaceRoot()
	if err != nil {
		return err
	}
	created, err := config.EnsureTasksFile(root)
	if err != nil {
		return fmt.Errorf("failed to create tasks.json: %w", err)
	}
	if created {
		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", config.TasksPath(root))
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "%s already exists\n", config.TasksPath(root))
	}
	return nil
}
