package runstore

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aalvaropc/soonpage/internal/domain"
)

func fixedIDs(ids ...string) func() string {
	i := 0
	return func() string {
		id := ids[i%len(ids)]
		i++
		return id
	}
}

func sampleRun(start time.Time, domains ...domain.Domain) domain.GenerationRun {
	run := domain.GenerationRun{
		Source:    domain.SourceList,
		OutputDir: "output",
		StartedAt: start,
		EndedAt:   start.Add(2 * time.Second),
	}
	for _, d := range domains {
		run.Sites = append(run.Sites, domain.SiteResult{
			Plan:  domain.SitePlan{Domain: d, Category: domain.Classify(d)},
			Dir:   filepath.Join("output", string(d)),
			Files: []string{"index.html", "thanks.html"},
		})
	}
	return run
}

func TestSaveRun_CreatesJSONFile(t *testing.T) {
	tmp := t.TempDir()
	store := NewJSONStore(tmp, domain.DefaultConfig(), WithIDs(fixedIDs("run-1")))

	start := time.Date(2026, 2, 3, 10, 11, 12, 0, time.UTC)
	id, err := store.SaveRun(sampleRun(start, "cybertoolsuite.com"))
	if err != nil {
		t.Fatalf("SaveRun error: %v", err)
	}
	if id != "run-1" {
		t.Fatalf("expected generated id, got %q", id)
	}

	wantFile := filepath.Join(tmp, "runs", "20260203T101112Z_cybertoolsuite-com.json")
	b, err := os.ReadFile(wantFile)
	if err != nil {
		t.Fatalf("expected file at %s: %v", wantFile, err)
	}

	var decoded domain.GenerationRun
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.ID != "run-1" {
		t.Fatalf("expected id persisted, got %q", decoded.ID)
	}
	if len(decoded.Sites) != 1 || decoded.Sites[0].Plan.Category != domain.CategoryTools {
		t.Fatalf("unexpected sites: %+v", decoded.Sites)
	}
}

func TestSaveRun_KeepsExistingID(t *testing.T) {
	store := NewJSONStore(t.TempDir(), domain.DefaultConfig(), WithIDs(fixedIDs("unused")))

	run := sampleRun(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), "a.com")
	run.ID = "given"

	id, err := store.SaveRun(run)
	if err != nil {
		t.Fatalf("SaveRun error: %v", err)
	}
	if id != "given" {
		t.Fatalf("expected given id, got %q", id)
	}
}

func TestSaveRun_MultiSiteNamedAfterSource(t *testing.T) {
	tmp := t.TempDir()
	cfg := domain.DefaultConfig()
	cfg.Paths.RunsDir = "history"
	store := NewJSONStore(tmp, cfg)

	start := time.Date(2026, 2, 3, 10, 11, 12, 0, time.UTC)
	if _, err := store.SaveRun(sampleRun(start, "a.com", "b.com")); err != nil {
		t.Fatalf("SaveRun error: %v", err)
	}

	want := filepath.Join(tmp, "history", "20260203T101112Z_list.json")
	if _, err := os.Stat(want); err != nil {
		t.Fatalf("expected file at %s: %v", want, err)
	}
}

func TestSaveRun_UsesUniqueFilenameOnCollision(t *testing.T) {
	tmp := t.TempDir()
	store := NewJSONStore(tmp, domain.DefaultConfig(), WithIDs(fixedIDs("id-1", "id-2")))

	start := time.Date(2026, 2, 3, 10, 11, 12, 0, time.UTC)
	run := sampleRun(start, "a.com")

	id1, err := store.SaveRun(run)
	if err != nil {
		t.Fatalf("SaveRun #1 error: %v", err)
	}
	id2, err := store.SaveRun(run)
	if err != nil {
		t.Fatalf("SaveRun #2 error: %v", err)
	}
	if id1 == id2 {
		t.Fatalf("expected unique ids, got %q", id1)
	}

	for _, name := range []string{"20260203T101112Z_a-com.json", "20260203T101112Z_a-com_2.json"} {
		if _, err := os.Stat(filepath.Join(tmp, "runs", name)); err != nil {
			t.Fatalf("expected %s, stat err=%v", name, err)
		}
	}
}

func TestSaveRun_AppendsIndex(t *testing.T) {
	tmp := t.TempDir()
	store := NewJSONStore(tmp, domain.DefaultConfig(), WithIndex(true), WithIDs(fixedIDs("id-1", "id-2")))

	start := time.Date(2026, 2, 3, 10, 11, 12, 0, time.UTC)
	for i := 0; i < 2; i++ {
		if _, err := store.SaveRun(sampleRun(start, "a.com", "b.com")); err != nil {
			t.Fatalf("SaveRun error: %v", err)
		}
	}

	f, err := os.Open(filepath.Join(tmp, "runs", "index.jsonl"))
	if err != nil {
		t.Fatalf("open index: %v", err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if len(lines) != 2 {
		t.Fatalf("expected 2 index lines, got %d", len(lines))
	}
	if !strings.Contains(lines[1], `"id":"id-2"`) || !strings.Contains(lines[1], `"sites":2`) {
		t.Fatalf("unexpected index line %s", lines[1])
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"cybertoolsuite.com": "cybertoolsuite-com",
		"  Ankh-Morpork.ORG ": "ankh-morpork-org",
		"--weird__name--":     "weird-name",
		"":                    "",
	}
	for in, want := range cases {
		if got := slugify(in); got != want {
			t.Errorf("slugify(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSaveRun_AbsoluteRunsDir(t *testing.T) {
	root := t.TempDir()
	abs := filepath.Join(t.TempDir(), "manifests")

	cfg := domain.DefaultConfig()
	cfg.Paths.RunsDir = abs

	if _, err := NewJSONStore(root, cfg, WithIDs(fixedIDs("id-1"))).SaveRun(domain.GenerationRun{Source: domain.SourceList}); err != nil {
		t.Fatalf("SaveRun error: %v", err)
	}

	entries, err := os.ReadDir(abs)
	if err != nil {
		t.Fatalf("read runs dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 manifest in %s, got %d", abs, len(entries))
	}
	if _, err := os.Stat(filepath.Join(root, "runs")); !os.IsNotExist(err) {
		t.Fatalf("expected nothing under root/runs, stat err=%v", err)
	}
}
