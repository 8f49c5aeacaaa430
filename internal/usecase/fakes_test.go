package usecase

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/aalvaropc/soonpage/internal/domain"
)

// --- fakes shared by unit tests ---

type fakeLoader struct {
	kind    domain.SourceKind
	domains []domain.Domain
	err     error
	calls   int
}

func (f *fakeLoader) LoadDomains(_ domain.Config) (domain.SourceKind, []domain.Domain, error) {
	f.calls++
	return f.kind, f.domains, f.err
}

type fakeRenderer struct {
	err   error
	calls int
}

func (f *fakeRenderer) Render(plan domain.SitePlan) (domain.RenderedSite, error) {
	f.calls++
	if f.err != nil {
		return domain.RenderedSite{}, f.err
	}
	return domain.RenderedSite{
		Plan: plan,
		Pages: []domain.Page{
			{Name: domain.PageIndex, Content: []byte(plan.Title)},
			{Name: domain.PageThanks, Content: []byte("thanks")},
		},
	}, nil
}

// recordingWriter records written domains and the peak number of concurrent writes.
type recordingWriter struct {
	delay  time.Duration
	failOn domain.Domain

	mu       sync.Mutex
	written  []domain.Domain
	inFlight atomic.Int32
	peak     atomic.Int32
}

func (w *recordingWriter) WriteSite(ctx context.Context, site domain.RenderedSite) (domain.SiteResult, error) {
	n := w.inFlight.Add(1)
	defer w.inFlight.Add(-1)
	for {
		p := w.peak.Load()
		if n <= p || w.peak.CompareAndSwap(p, n) {
			break
		}
	}

	if w.delay > 0 {
		select {
		case <-time.After(w.delay):
		case <-ctx.Done():
			return domain.SiteResult{}, ctx.Err()
		}
	}

	if site.Plan.Domain == w.failOn {
		return domain.SiteResult{}, errors.New("disk full")
	}

	w.mu.Lock()
	w.written = append(w.written, site.Plan.Domain)
	w.mu.Unlock()

	files := make([]string, 0, len(site.Pages))
	for _, p := range site.Pages {
		files = append(files, string(site.Plan.Domain)+"/"+p.Name)
	}
	return domain.SiteResult{Plan: site.Plan, Dir: string(site.Plan.Domain), Files: files}, nil
}

func (w *recordingWriter) count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.written)
}

type fakeStore struct {
	saved bool
	last  domain.GenerationRun
	err   error
}

func (s *fakeStore) SaveRun(run domain.GenerationRun) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.saved = true
	s.last = run
	return "run-123", nil
}

type fakeInitializer struct {
	spec  domain.WorkspaceSpec
	force bool
	err   error
}

func (f *fakeInitializer) Init(spec domain.WorkspaceSpec, force bool) error {
	f.spec = spec
	f.force = force
	return f.err
}

func validConfig() domain.Config {
	cfg := domain.DefaultConfig()
	cfg.AnalyticsID = "G-TEST123"
	cfg.Source.Domains = "placeholder"
	return cfg
}
