package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/soonpage/internal/infra/logger"
	"github.com/aalvaropc/soonpage/internal/infra/workspacefinder"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		if hint := userMessage(err); hint != "" {
			fmt.Fprintln(os.Stderr, defaultTheme().Hint.Render("hint: "+hint))
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool
	var cleanup func() error

	cmd := &cobra.Command{
		Use:          "soonpage",
		Short:        "soonpage — static coming-soon pages for many domains",
		SilenceUsage: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			logRoot := logRootFor(c)

			// Logging is best-effort: a read-only workspace still generates.
			cleanup, _ = logger.Setup(logger.Config{
				Root:  logRoot,
				Debug: debug,
			})
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if cleanup != nil {
				_ = cleanup()
				cleanup = nil
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .soonpage/logs/soonpage.log")

	cmd.AddCommand(
		generateCmd(),
		classifyCmd(),
		validateCmd(),
		initCmd(),
		versionCmd(),
	)
	return cmd
}

// logRootFor picks where .soonpage/logs lives: the command's workspace or
// init path when given, else the detected workspace, else the working dir.
func logRootFor(c *cobra.Command) string {
	for _, name := range []string{"workspace", "path"} {
		if f := c.Flags().Lookup(name); f != nil && f.Changed && f.Value.String() != "" {
			if abs, err := filepath.Abs(f.Value.String()); err == nil {
				return abs
			}
		}
	}

	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	wd, _ = filepath.Abs(wd)

	if root, found, ferr := workspacefinder.NewFinder().Locate(wd); ferr == nil && found {
		return root
	}
	return wd
}
