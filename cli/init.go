package cli

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/devctl/devctl/internal/setup"
	"github.com/devctl/devctl/pkg/config"
)

// InitCmd creates the init command, run on the host before the container
// starts.
func InitCmd() *cobra.Command {
	var suffix string

	cmd := &cobra.Command{
		Use:   "init <devcontainer-dir>",
		Short: "Validate the host and generate the devcontainer environment",
		Long: `Validate the host system, validate and merge the layered YAML
configuration under <devcontainer-dir>/docker, scaffold missing override
files, and generate the .env file consumed by docker compose.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.LoadSettings()
			if err != nil {
				return err
			}
			orch := setup.New(afero.NewOsFs(), settings, setup.CurrentHostContext(settings))
			return orch.Execute(cmd.Context(), setup.Options{
				Dir:    args[0],
				Suffix: suffix,
			})
		},
	}

	cmd.Flags().StringVar(&suffix, "suffix", "", "Service name suffix")
	return cmd
}
