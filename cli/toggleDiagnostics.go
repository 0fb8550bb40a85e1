package cli

import (
	"fmt"

	"github.com/masm-tools/masmtool/config"
	"github.com/spf13/cobra"
)

var toggleDiagnosticsCmd = &cobra.Command{
	Use:   "toggle-diagnostics",
	Short: "Enable or disable masmlint diagnostics for the workspace",
	Args:  cobra.NoArgs,
	RunE:  runToggleDiagnostics,
}

func init() {
	rootCmd.AddCommand(toggleDiagnosticsCmd)
}

func runToggleDiagnostics(cmd *cobra.Command, args []string) error {
	root, err := workspaceRoot()
	if err != nil {
		return err
	}
	enabled, err := config.ToggleDiagnostics(root)
	if err != nil {
		return err
	}
	state := "disabled"
	if enabled {
		state = "enabled"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "MASM diagnostics %s\n", state)
	return nil
}
