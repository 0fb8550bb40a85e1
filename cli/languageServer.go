package cli

import (
	"github.com/masm-tools/masmtool/config"
	"github.com/masm-tools/masmtool/languageServer"
	"github.com/masm-tools/masmtool/util"
	"github.com/spf13/cobra"
)

var (
	tcpAddrFlag string
	wsAddrFlag  string
	lsDebugFlag bool
	lintFlag    string
)

var languageServerCmd = &cobra.Command{
	Use:   "languageServer",
	Short: "Serve the MASM language server",
	Long: `languageServer speaks the language server protocol on stdin and stdout.
With --tcp or --ws it listens instead so an editor can attach remotely.`,
	Args: cobra.NoArgs,
	RunE: runLanguageServer,
}

func init() {
	languageServerCmd.Flags().StringVar(&tcpAddrFlag, "tcp", "", "Listen for TCP clients on this address")
	languageServerCmd.Flags().StringVar(&wsAddrFlag, "ws", "", "Listen for websocket clients on this address (path /lsp)")
	languageServerCmd.Flags().BoolVar(&lsDebugFlag, "debug", false, "Enable debug logging")
	languageServerCmd.Flags().StringVar(&lintFlag, "lint", "", "Path of the masmlint executable")
	rootCmd.AddCommand(languageServerCmd)
}

func runLanguageServer(cmd *cobra.Command, args []string) error {
	if lsDebugFlag {
		util.LoggingEnabled = true
	}

	lintPath := lintFlag
	if lintPath == "" {
		if root, err := workspaceRoot(); err == nil {
			if settings, err := config.Load(root); err == nil {
				lintPath = settings.LintPath()
			}
		}
	}

	switch {
	case tcpAddrFlag != "":
		return languageServer.ListenAndServeTCP(tcpAddrFlag, lintPath)
	case wsAddrFlag != "":
		return languageServer.ListenAndServeWebsocket(wsAddrFlag, lintPath)
	}
	languageServer.ListenAndServe(lintPath)
	return nil
}
