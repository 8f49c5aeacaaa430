package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/aalvaropc/soonpage/internal/domain"
	"github.com/aalvaropc/soonpage/internal/ports"
)

// GenerateSites validates configuration, loads and plans every domain,
// renders all pages in memory and only then writes them out. Nothing is
// written when any step before the write phase fails.
type GenerateSites struct {
	loader   ports.DomainLoader
	renderer ports.PageRenderer
	writer   ports.SiteWriter
	store    ports.ManifestStore

	jobs int
	now  func() time.Time
	log  *zap.Logger
}

type GenerateOption func(*GenerateSites)

// WithJobs bounds how many sites are written concurrently.
func WithJobs(n int) GenerateOption {
	return func(uc *GenerateSites) {
		if n > 0 {
			uc.jobs = n
		}
	}
}

func WithNow(now func() time.Time) GenerateOption {
	return func(uc *GenerateSites) { uc.now = now }
}

func WithLogger(l *zap.Logger) GenerateOption {
	return func(uc *GenerateSites) {
		if l != nil {
			uc.log = l
		}
	}
}

// NewGenerateSites wires the use case. A nil store disables manifests.
func NewGenerateSites(loader ports.DomainLoader, renderer ports.PageRenderer, writer ports.SiteWriter, store ports.ManifestStore, opts ...GenerateOption) *GenerateSites {
	uc := &GenerateSites{
		loader:   loader,
		renderer: renderer,
		writer:   writer,
		store:    store,
		jobs:     1,
		now:      time.Now,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute returns the run (with StartedAt set even on failure) and the
// manifest ID when one was saved.
func (uc *GenerateSites) Execute(ctx context.Context, cfg domain.Config) (domain.GenerationRun, string, error) {
	run := domain.GenerationRun{
		OutputDir: cfg.Paths.OutputDir,
		StartedAt: uc.now(),
	}

	if err := cfg.Validate(); err != nil {
		run.EndedAt = uc.now()
		return run, "", err
	}

	kind, domains, err := uc.loader.LoadDomains(cfg)
	if err != nil {
		run.EndedAt = uc.now()
		return run, "", err
	}
	run.Source = kind

	uc.log.Info("generation started",
		zap.String("source", string(kind)),
		zap.Int("domains", len(domains)),
		zap.Int("jobs", uc.jobs),
	)

	plans, err := PlanSites(cfg, domains)
	if err != nil {
		run.EndedAt = uc.now()
		return run, "", err
	}

	sites := make([]domain.RenderedSite, 0, len(plans))
	for _, p := range plans {
		site, err := uc.renderer.Render(p)
		if err != nil {
			run.EndedAt = uc.now()
			return run, "", err
		}
		sites = append(sites, site)
	}

	results, err := uc.writeAll(ctx, sites)
	run.EndedAt = uc.now()
	if err != nil {
		uc.log.Error("generation failed", zap.Error(err))
		return run, "", err
	}
	run.Sites = results

	uc.log.Info("generation finished",
		zap.Int("sites", len(results)),
		zap.Duration("took", run.EndedAt.Sub(run.StartedAt)),
	)

	if uc.store == nil {
		return run, "", nil
	}

	id, err := uc.store.SaveRun(run)
	if err != nil {
		uc.log.Error("manifest save failed", zap.Error(err))
		return run, "", err
	}
	run.ID = id
	return run, id, nil
}

// writeAll writes sites with at most uc.jobs in flight. Results keep the
// order of sites.
func (uc *GenerateSites) writeAll(ctx context.Context, sites []domain.RenderedSite) ([]domain.SiteResult, error) {
	results := make([]domain.SiteResult, len(sites))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.jobs)

	for i, site := range sites {
		if gctx.Err() != nil {
			break
		}
		i, site := i, site
		g.Go(func() error {
			res, err := uc.writer.WriteSite(gctx, site)
			if err != nil {
				return err
			}
			uc.log.Debug("site written",
				zap.String("domain", site.Plan.Domain.String()),
				zap.String("category", string(site.Plan.Category)),
				zap.String("dir", res.Dir),
			)
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
