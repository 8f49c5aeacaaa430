package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aalvaropc/soonpage/internal/domain"
)

func fixedNow() func() time.Time {
	t0 := time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)
	return func() time.Time { return t0 }
}

func TestGenerateSites_MissingAnalyticsIDWritesNothing(t *testing.T) {
	cfg := validConfig()
	cfg.AnalyticsID = ""

	loader := &fakeLoader{kind: domain.SourceList, domains: []domain.Domain{"a.com"}}
	r := &fakeRenderer{}
	w := &recordingWriter{}
	store := &fakeStore{}

	_, id, err := NewGenerateSites(loader, r, w, store).Execute(context.Background(), cfg)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.KindMissingConfig) {
		t.Fatalf("expected missing configuration, got %v", err)
	}
	if !errors.Is(err, domain.ErrMissingConfiguration) {
		t.Fatalf("expected ErrMissingConfiguration, got %v", err)
	}
	if id != "" || store.saved {
		t.Fatalf("expected no manifest")
	}
	if loader.calls != 0 || r.calls != 0 || w.count() != 0 {
		t.Fatalf("expected no loading, rendering or writing (loader=%d render=%d write=%d)", loader.calls, r.calls, w.count())
	}
}

func TestGenerateSites_EmptyDomainSetWritesNothing(t *testing.T) {
	loader := &fakeLoader{err: domain.EmptyDomainSet("test.load", "list")}
	w := &recordingWriter{}

	_, _, err := NewGenerateSites(loader, &fakeRenderer{}, w, nil).Execute(context.Background(), validConfig())
	if !domain.IsKind(err, domain.KindEmptyDomainSet) {
		t.Fatalf("expected empty domain set, got %v", err)
	}
	if w.count() != 0 {
		t.Fatalf("expected no writes, got %d", w.count())
	}
}

func TestGenerateSites_RenderFailureWritesNothing(t *testing.T) {
	loader := &fakeLoader{kind: domain.SourceList, domains: []domain.Domain{"a.com", "b.com"}}
	w := &recordingWriter{}

	_, _, err := NewGenerateSites(loader, &fakeRenderer{err: errors.New("boom")}, w, nil).
		Execute(context.Background(), validConfig())
	if err == nil {
		t.Fatalf("expected error")
	}
	if w.count() != 0 {
		t.Fatalf("expected no writes, got %d", w.count())
	}
}

func TestGenerateSites_WritesAllAndSavesManifest(t *testing.T) {
	loader := &fakeLoader{
		kind:    domain.SourceFile,
		domains: []domain.Domain{"cybertoolsuite.com", "randomnewproject.io"},
	}
	w := &recordingWriter{}
	store := &fakeStore{}

	run, id, err := NewGenerateSites(loader, &fakeRenderer{}, w, store, WithNow(fixedNow())).
		Execute(context.Background(), validConfig())
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if id != "run-123" || run.ID != "run-123" {
		t.Fatalf("expected run id run-123, got id=%q run.ID=%q", id, run.ID)
	}
	if !store.saved {
		t.Fatalf("expected manifest saved")
	}
	if run.Source != domain.SourceFile {
		t.Fatalf("expected source file, got %q", run.Source)
	}
	if run.StartedAt.IsZero() || run.EndedAt.IsZero() {
		t.Fatalf("expected timestamps set")
	}
	if len(run.Sites) != 2 {
		t.Fatalf("expected 2 sites, got %d", len(run.Sites))
	}
	if run.Sites[0].Plan.Category != domain.CategoryTools {
		t.Fatalf("expected tools category, got %q", run.Sites[0].Plan.Category)
	}
	if run.Sites[1].Plan.Category != domain.CategoryGeneric {
		t.Fatalf("expected generic category, got %q", run.Sites[1].Plan.Category)
	}
	if len(store.last.Sites) != 2 {
		t.Fatalf("expected manifest with 2 sites, got %d", len(store.last.Sites))
	}
}

func TestGenerateSites_NilStoreSkipsManifest(t *testing.T) {
	loader := &fakeLoader{kind: domain.SourceSingle, domains: []domain.Domain{"a.com"}}

	run, id, err := NewGenerateSites(loader, &fakeRenderer{}, &recordingWriter{}, nil).
		Execute(context.Background(), validConfig())
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if id != "" || run.ID != "" {
		t.Fatalf("expected no run id, got %q", id)
	}
	if len(run.Sites) != 1 {
		t.Fatalf("expected 1 site, got %d", len(run.Sites))
	}
}

func TestGenerateSites_ParallelWritesKeepOrderAndLimit(t *testing.T) {
	domains := []domain.Domain{"a.com", "b.com", "c.com", "d.com", "e.com", "f.com"}
	loader := &fakeLoader{kind: domain.SourceList, domains: domains}
	w := &recordingWriter{delay: 10 * time.Millisecond}

	run, _, err := NewGenerateSites(loader, &fakeRenderer{}, w, nil, WithJobs(2)).
		Execute(context.Background(), validConfig())
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if got := w.peak.Load(); got > 2 {
		t.Fatalf("expected at most 2 concurrent writes, got %d", got)
	}
	for i, s := range run.Sites {
		if s.Plan.Domain != domains[i] {
			t.Fatalf("site %d: expected %q, got %q", i, domains[i], s.Plan.Domain)
		}
	}
}

func TestGenerateSites_WriteFailureSkipsManifest(t *testing.T) {
	loader := &fakeLoader{kind: domain.SourceList, domains: []domain.Domain{"a.com", "b.com"}}
	store := &fakeStore{}

	run, _, err := NewGenerateSites(loader, &fakeRenderer{}, &recordingWriter{failOn: "b.com"}, store).
		Execute(context.Background(), validConfig())
	if err == nil {
		t.Fatalf("expected error")
	}
	if store.saved {
		t.Fatalf("expected no manifest after failed write")
	}
	if run.EndedAt.IsZero() {
		t.Fatalf("expected EndedAt set")
	}
}

func TestGenerateSites_ManifestErrorReturned(t *testing.T) {
	loader := &fakeLoader{kind: domain.SourceList, domains: []domain.Domain{"a.com"}}
	store := &fakeStore{err: errors.New("read-only")}

	run, _, err := NewGenerateSites(loader, &fakeRenderer{}, &recordingWriter{}, store).
		Execute(context.Background(), validConfig())
	if err == nil {
		t.Fatalf("expected error")
	}
	if len(run.Sites) != 1 {
		t.Fatalf("expected written sites kept in run, got %d", len(run.Sites))
	}
}

func TestGenerateSites_StopsOnContextCancel(t *testing.T) {
	loader := &fakeLoader{kind: domain.SourceList, domains: []domain.Domain{"a.com", "b.com"}}
	w := &recordingWriter{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := NewGenerateSites(loader, &fakeRenderer{}, w, nil).Execute(ctx, validConfig())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if w.count() != 0 {
		t.Fatalf("expected no writes, got %d", w.count())
	}
}
