package main

import (
	"github.com/alimgiray/coolpeople/internal/services"
	"github.com/alimgiray/coolpeople/pkg/config"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coolpeople <repo> <token> <usersPerRow> [templatePath]",
		Short: "Render the stargazers of a repository into README.md",
		Long: `coolpeople lists everyone who starred <repo> (owner/name), renders them
as an HTML table with <usersPerRow> avatars per row, and writes README.md from
the template (TEMPLATE.md by default), replacing the content between
<!--START_SECTION:cool-people--> and <!--END_SECTION:cool-people-->.`,
		Args:          cobra.RangeArgs(3, 4),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Validate everything before touching the network
			cfg, err := config.Load(args)
			if err != nil {
				return err
			}

			stargazerService, err := services.NewStargazerService(cfg.GitHub)
			if err != nil {
				return err
			}

			return services.NewReadmeService(stargazerService).Generate(cmd.Context(), cfg.Run)
		},
	}

	// Stop flag parsing at the first positional so "-1" reaches config validation
	cmd.Flags().SetInterspersed(false)

	cmd.AddCommand(newVersionCmd())
	return cmd
}
