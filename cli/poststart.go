package cli

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/devctl/devctl/internal/gitx"
	"github.com/devctl/devctl/internal/shell"
	"github.com/devctl/devctl/pkg/logger"
)

// PostStartCmd creates the post-start command, run inside the container
// after it starts.
func PostStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "post-start",
		Short: "Configure the shell environment inside the container",
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := logger.FromContext(cmd.Context())

			home, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("failed to resolve home directory: %w", err)
			}
			workDir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to resolve working directory: %w", err)
			}
			gitRoot, _ := gitx.RepoRoot(workDir)

			log.Info("configuring shell environment")
			cfg := shell.New(afero.NewOsFs(), home, gitRoot, shell.ExecRunner{})
			if err := cfg.Apply(cmd.Context()); err != nil {
				return err
			}
			log.Info("shell environment configured")
			return nil
		},
	}
}
