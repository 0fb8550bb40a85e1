// Package cli wires the masmtool subcommands together.
package cli

import (
	"log"
	"os"
	"path/filepath"

	"github.com/masm-tools/masmtool/util"
	"github.com/spf13/cobra"
)

var (
	workspaceFlag   string
	verboseFlag     bool
	logEndpointFlag string
)

var rootCmd = &cobra.Command{
	Use:   "masmtool",
	Short: "masmtool builds, runs and lints MASM projects",
	Long: `masmtool is the command line and language server companion for MASM
workspaces: it expands editor variables, turns masmbuild tasks into build
scripts, runs or debugs the result and serves completion, hover and
masmlint diagnostics over the language server protocol.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verboseFlag {
			util.LoggingEnabled = true
		}
		util.LogEndpoint = logEndpointFlag
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&workspaceFlag, "workspace", "w", "", "Workspace folder (defaults to the current directory)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable debug logging to stderr")
	rootCmd.PersistentFlags().StringVar(&logEndpointFlag, "log-endpoint", "", "Also POST every log message to this URL")
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		log.Fatal(err)
	}
}

func workspaceRoot() (string, error) {
	if workspaceFlag != "" {
		return filepath.Abs(workspaceFlag)
	}
	return os.Getwd()
}
