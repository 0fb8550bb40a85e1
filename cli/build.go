package cli

import (
	"github.com/masm-tools/masmtool/builder"
	"github.com/spf13/cobra"
)

var nativeFlag bool

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Assemble and link a masmbuild task",
	Long: `Build synthesizes the build script of a masmbuild task, runs it and waits
for it to finish. The exit status of the failing tool is reported.`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

func init() {
	addContextFlags(buildCmd)
	addTaskFlags(buildCmd)
	buildCmd.Flags().BoolVar(&nativeFlag, "native", false, "Run the tools directly instead of through a script")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	dialect, err := builder.ParseDialect(dialectFlag)
	if err != nil {
		return err
	}
	def, tools, ctx, err := loadTask()
	if err != nil {
		return err
	}
	_, err = builder.Build(def, tools, ctx, builder.BuildOptions{
		Dialect: dialect,
		Native:  nativeFlag,
		Stdout:  cmd.OutOrStdout(),
		Stderr:  cmd.ErrOrStderr(),
	})
	return err
}
