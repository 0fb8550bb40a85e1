package cli

import (
	"fmt"

	"github.com/masm-tools/masmtool/builder"
	"github.com/masm-tools/masmtool/config"
	"github.com/masm-tools/masmtool/variables"
	"github.com/spf13/cobra"
)

var (
	taskFlag        string
	dialectFlag     string
	writeScriptFlag bool
)

var scriptCmd = &cobra.Command{
	Use:   "script",
	Short: "Print the build script for a masmbuild task",
	Long: `Script synthesizes the build script of a masmbuild task from tasks.json
(the default Build task when none matches) and prints it, or writes it to a
temporary file with --write.`,
	Args: cobra.NoArgs,
	RunE: runScript,
}

func addTaskFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&taskFlag, "task", "t", builder.DefaultTaskLabel, "Label of the masmbuild task")
	cmd.Flags().StringVar(&dialectFlag, "dialect", "auto", "Script dialect: auto, batch or sh")
}

func init() {
	addContextFlags(scriptCmd)
	addTaskFlags(scriptCmd)
	scriptCmd.Flags().BoolVar(&writeScriptFlag, "write", false, "Write the script to a temporary file and print its path")
	rootCmd.AddCommand(scriptCmd)
}

// loadTask resolves everything a build needs from the flags and the
// workspace settings.
func loadTask() (builder.TaskDefinition, builder.ToolConfig, variables.Context, error) {
	ctx, err := variableContext()
	if err != nil {
		return builder.TaskDefinition{}, builder.ToolConfig{}, ctx, err
	}
	settings, err := config.Load(ctx.WorkspaceFolder)
	if err != nil {
		return builder.TaskDefinition{}, builder.ToolConfig{}, ctx, err
	}
	def, err := config.FindBuildTask(ctx.WorkspaceFolder, taskFlag)
	if err != nil {
		return builder.TaskDefinition{}, builder.ToolConfig{}, ctx, err
	}
	return def, settings.Tools(), ctx, nil
}

func runScript(cmd *cobra.Command, args []string) error {
	dialect, err := builder.ParseDialect(dialectFlag)
	if err != nil {
		return err
	}
	def, tools, ctx, err := loadTask()
	if err != nil {
		return err
	}
	plan, err := builder.Synthesize(def, tools, ctx)
	if err != nil {
		return err
	}

	if !writeScriptFlag {
		fmt.Fprint(cmd.OutOrStdout(), plan.Render(dialect))
		return nil
	}
	script, err := builder.WriteScript(plan, dialect)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), script.Path)
	return nil
}
