package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/soonpage/internal/infra/domainsource"
	"github.com/aalvaropc/soonpage/internal/usecase"
)

func validateCmd() *cobra.Command {
	var flags configFlags

	c := &cobra.Command{
		Use:   "validate",
		Short: "Check configuration and domain source (writes nothing)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(flags)
			if err != nil {
				return err
			}

			domains, err := usecase.NewValidateConfig(domainsource.Loader{}).Execute(cmd.Context(), ws.cfg)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "OK (%d domain(s))\n", len(domains))
			return nil
		},
	}

	flags.bindWorkspace(c)
	flags.bindSource(c)
	flags.bindPage(c)
	return c
}
