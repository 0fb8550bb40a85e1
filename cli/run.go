package cli

import (
	"context"

	"github.com/masm-tools/masmtool/runner"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <file.asm>",
	Short: "Build if needed and run the program",
	Long: `Run builds the workspace's Build task when the file changed since the
last successful build and runs the resulting executable in its own console.`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().BoolVar(&nativeFlag, "native", false, "Run the tools directly instead of through a script")
	rootCmd.AddCommand(runCmd)
}

// withSession runs fn inside a started session for the current workspace.
func withSession(cmd *cobra.Command, fn func(s *runner.Session) error) error {
	root, err := workspaceRoot()
	if err != nil {
		return err
	}
	s := runner.NewSession(root)
	s.Native = nativeFlag
	s.Stdout = cmd.OutOrStdout()
	s.Stderr = cmd.ErrOrStderr()

	s.Start()
	fnErr := fn(s)
	if err := s.Stop(); err != nil && fnErr == nil {
		return err
	}
	return fnErr
}

func runRun(cmd *cobra.Command, args []string) error {
	return withSession(cmd, func(s *runner.Session) error {
		return s.Run(context.Background(), args[0])
	})
}
