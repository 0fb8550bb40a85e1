package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/masm-tools/masmtool/builder"
	"github.com/masm-tools/masmtool/config"
	"github.com/masm-tools/masmtool/runner"
	"github.com/masm-tools/masmtool/variables"
	"github.com/spf13/cobra"
)

var printConfigFlag bool

var debugCmd = &cobra.Command{
	Use:   "debug <file.asm>",
	Short: "Build if needed and start the debugger",
	Long: `Debug builds the workspace's Build task when the file changed since the
last successful build and starts masm.debuggerPath on the executable.`,
	Args: cobra.ExactArgs(1),
	RunE: runDebug,
}

func init() {
	debugCmd.Flags().BoolVar(&nativeFlag, "native", false, "Run the tools directly instead of through a script")
	debugCmd.Flags().BoolVar(&printConfigFlag, "print-config", false, "Print the debug launch configuration without building")
	rootCmd.AddCommand(debugCmd)
}

func runDebug(cmd *cobra.Command, args []string) error {
	if printConfigFlag {
		return printDebugConfiguration(cmd, args[0])
	}
	return withSession(cmd, func(s *runner.Session) error {
		return s.Debug(context.Background(), args[0])
	})
}

func printDebugConfiguration(cmd *cobra.Command, file string) error {
	root, err := workspaceRoot()
	if err != nil {
		return err
	}
	file, err = filepath.Abs(file)
	if err != nil {
		return err
	}
	def, err := config.FindBuildTask(root, builder.DefaultTaskLabel)
	if err != nil {
		return err
	}
	program := builder.ResolveOutput(def, variables.NewContext(root, file))

	b, err := json.MarshalIndent(runner.NewDebugConfiguration(program), "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return nil
}
