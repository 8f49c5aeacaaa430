package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/soonpage/internal/domain"
	"github.com/aalvaropc/soonpage/internal/infra/domainsource"
	"github.com/aalvaropc/soonpage/internal/usecase"
)

func classifyCmd() *cobra.Command {
	var flags configFlags
	var format string

	c := &cobra.Command{
		Use:   "classify [domains...]",
		Short: "Show category, name and title for domains without writing anything",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}

			ws, err := loadWorkspace(flags)
			if err != nil {
				return err
			}

			cfg := ws.cfg
			if len(args) > 0 {
				cfg.Source = domain.SourceConfig{
					Kind:    domain.SourceList,
					Domains: strings.Join(args, "\n"),
				}
			}

			plans, err := usecase.NewClassifyDomains(domainsource.Loader{}).Execute(cfg)
			if err != nil {
				return err
			}
			return printPlans(cmd.OutOrStdout(), plans, format)
		},
	}

	flags.bindWorkspace(c)
	flags.bindSource(c)
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}
