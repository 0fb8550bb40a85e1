package cli

import (
	"fmt"

	"github.com/masm-tools/masmtool/variables"
	"github.com/spf13/cobra"
)

var listTokensFlag bool

var substituteCmd = &cobra.Command{
	Use:   "substitute [template...]",
	Short: "Expand ${...} editor variables",
	Long: `Substitute prints each template with the editor variables it contains
replaced by values taken from the workspace, the active file and the cursor.`,
	RunE: runSubstitute,
}

func init() {
	addContextFlags(substituteCmd)
	substituteCmd.Flags().BoolVar(&listTokensFlag, "list", false, "List the supported variables instead")
	rootCmd.AddCommand(substituteCmd)
}

func runSubstitute(cmd *cobra.Command, args []string) error {
	if listTokensFlag {
		for _, token := range variables.Tokens() {
			fmt.Fprintln(cmd.OutOrStdout(), token)
		}
		return nil
	}

	ctx, err := variableContext()
	if err != nil {
		return err
	}
	for _, template := range args {
		fmt.Fprintln(cmd.OutOrStdout(), variables.Substitute(template, ctx))
	}
	return nil
}
