package cli

import (
	"github.com/spf13/cobra"

	"github.com/aalvaropc/soonpage/internal/infra/domainsource"
	"github.com/aalvaropc/soonpage/internal/infra/htmlrender"
	"github.com/aalvaropc/soonpage/internal/infra/logger"
	"github.com/aalvaropc/soonpage/internal/infra/runstore"
	"github.com/aalvaropc/soonpage/internal/infra/sitewriter"
	"github.com/aalvaropc/soonpage/internal/ports"
	"github.com/aalvaropc/soonpage/internal/usecase"
)

func generateCmd() *cobra.Command {
	var flags configFlags
	var jobs int
	var noSave bool
	var format string

	c := &cobra.Command{
		Use:   "generate",
		Short: "Render index.html and thanks.html for every configured domain",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}

			ws, err := loadWorkspace(flags)
			if err != nil {
				return err
			}

			renderer, err := htmlrender.New(ws.cfg)
			if err != nil {
				return err
			}

			var store ports.ManifestStore
			if !noSave {
				store = runstore.NewJSONStore(ws.root, ws.cfg, runstore.WithIndex(true))
			}

			uc := usecase.NewGenerateSites(
				domainsource.Loader{},
				renderer,
				sitewriter.New(ws.cfg.Paths.OutputDir),
				store,
				usecase.WithJobs(jobs),
				usecase.WithLogger(logger.L()),
			)

			run, runID, err := uc.Execute(cmd.Context(), ws.cfg)
			if err != nil {
				// Sites may already be on disk when only the manifest failed.
				if len(run.Sites) > 0 {
					_ = printRun(cmd.OutOrStdout(), run, runID, format)
				}
				return err
			}

			return printRun(cmd.OutOrStdout(), run, runID, format)
		},
	}

	flags.bindWorkspace(c)
	flags.bindSource(c)
	flags.bindPage(c)
	c.Flags().IntVarP(&jobs, "jobs", "j", 1, "Number of sites written in parallel")
	c.Flags().BoolVar(&noSave, "no-save", false, "Do not save a run manifest under runs/")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}
