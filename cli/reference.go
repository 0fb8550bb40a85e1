package cli

import (
	"fmt"

	"github.com/masm-tools/masmtool/masm"
	"github.com/spf13/cobra"
)

var referenceLimit int

var referenceCmd = &cobra.Command{
	Use:   "reference <word>",
	Short: "Look up a MASM instruction, register, directive, operator or type",
	Long: `Reference prints the same documentation the language server shows on
hover. Unknown words list the closest matching names instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runReference,
}

func init() {
	referenceCmd.Flags().IntVarP(&referenceLimit, "limit", "n", 5, "Number of suggestions for unknown words")
	rootCmd.AddCommand(referenceCmd)
}

func runReference(cmd *cobra.Command, args []string) error {
	word := args[0]
	if e, ok := masm.Lookup(word); ok {
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n%s\n", e.Name, e.Detail, e.Documentation)
		return nil
	}

	matches := masm.Search(word, referenceLimit)
	if len(matches) == 0 {
		return fmt.Errorf("unknown MASM keyword %q", word)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "unknown MASM keyword %q, did you mean:\n", word)
	for _, e := range matches {
		fmt.Fprintf(cmd.OutOrStdout(), "  %-12s %s\n", e.Name, e.Detail)
	}
	return nil
}
