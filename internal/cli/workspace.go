package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/soonpage/internal/domain"
	"github.com/aalvaropc/soonpage/internal/infra/config"
	"github.com/aalvaropc/soonpage/internal/infra/workspacefinder"
)

type workspaceCtx struct {
	root string
	// hasFile reports whether soonpage.yaml was found and applied.
	hasFile bool
	cfg     domain.Config
}

// configFlags are the per-command overrides layered on top of
// defaults < soonpage.yaml < .env < environment.
type configFlags struct {
	workspace   string
	source      string
	domain      string
	domains     string
	file        string
	analyticsID string
	footerOwner string
	outDir      string
}

func (f *configFlags) bindWorkspace(c *cobra.Command) {
	c.Flags().StringVarP(&f.workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
}

func (f *configFlags) bindSource(c *cobra.Command) {
	c.Flags().StringVar(&f.source, "source", "", "Domain source: single|list|file (default: first configured of file, list, single)")
	c.Flags().StringVar(&f.domain, "domain", "", "Single domain (overrides DOMAIN)")
	c.Flags().StringVar(&f.domains, "domains", "", "Newline or comma separated domains (overrides DOMAINS)")
	c.Flags().StringVarP(&f.file, "file", "f", "", "Domains file, one per line (overrides DOMAINS_FILE)")
}

func (f *configFlags) bindPage(c *cobra.Command) {
	c.Flags().StringVar(&f.analyticsID, "analytics-id", "", "GA4 measurement ID (overrides GA4_MEASUREMENT_ID)")
	c.Flags().StringVar(&f.footerOwner, "footer-owner", "", "Footer owner name (overrides FOOTER_OWNER)")
	c.Flags().StringVarP(&f.outDir, "out", "o", "", "Output directory (overrides SOONPAGE_OUTPUT_DIR)")
}

func (f *configFlags) apply(cfg domain.Config) (domain.Config, error) {
	if v := strings.TrimSpace(f.analyticsID); v != "" {
		cfg.AnalyticsID = v
	}
	if v := strings.TrimSpace(f.footerOwner); v != "" {
		cfg.FooterOwner = v
	}
	if v := strings.TrimSpace(f.outDir); v != "" {
		cfg.Paths.OutputDir = v
	}
	kind, err := domain.ParseSourceKind(f.source)
	if err != nil {
		return domain.Config{}, err
	}
	cfg.OverlaySource(
		kind,
		strings.TrimSpace(f.domain),
		strings.ReplaceAll(strings.TrimSpace(f.domains), ",", "\n"),
		strings.TrimSpace(f.file),
	)
	return cfg, nil
}

// loadWorkspace builds the one Config used by a command. A workspace is
// optional: without soonpage.yaml the current directory acts as root.
func loadWorkspace(flags configFlags) (*workspaceCtx, error) {
	root, err := resolveWorkspaceRoot(flags.workspace)
	if err != nil {
		return nil, err
	}

	cfg := domain.DefaultConfig()
	hasFile := fileExists(filepath.Join(root, config.FileName))
	if hasFile {
		cfg, err = config.LoadWorkspace(root, cfg)
		if err != nil {
			return nil, err
		}
	}

	if err := config.LoadDotEnv(filepath.Join(root, ".env")); err != nil {
		return nil, err
	}

	cfg, err = config.ApplyEnv(cfg, os.LookupEnv)
	if err != nil {
		return nil, err
	}

	cfg, err = flags.apply(cfg)
	if err != nil {
		return nil, err
	}

	cfg.Paths.OutputDir = underRoot(root, cfg.Paths.OutputDir)

	return &workspaceCtx{root: root, hasFile: hasFile, cfg: cfg}, nil
}

func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	wd, _ = filepath.Abs(wd)

	root, found, err := workspacefinder.NewFinder().Locate(wd)
	if err != nil {
		return "", err
	}
	if !found {
		return wd, nil
	}
	return root, nil
}

func underRoot(root, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
