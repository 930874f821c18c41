package cli

import (
	"github.com/spf13/cobra"

	"github.com/devctl/devctl/pkg/logger"
)

func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "devctl",
		Short:         "Devcontainer environment bootstrap tool",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logLevel, logJSON, err := logger.GetLoggerConfig(cmd)
			if err != nil {
				logLevel, logJSON = "info", false
			}
			logger.SetupLogger(logLevel, logJSON)
		},
	}

	root.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().Bool("log-json", false, "Log in JSON format")

	root.AddCommand(
		InitCmd(),
		PostStartCmd(),
	)

	return root
}
