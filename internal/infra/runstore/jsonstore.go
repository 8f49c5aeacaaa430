package runstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aalvaropc/soonpage/internal/domain"
	"github.com/aalvaropc/soonpage/internal/ports"
)

const defaultRunsDir = "runs"

// JSONStore writes one JSON manifest per generation run.
type JSONStore struct {
	rootDir     string
	runsDirName string
	writeIndex  bool
	now         func() time.Time
	newID       func() string
}

type Option func(*JSONStore)

// WithIndex enables a simple JSONL index: runs/index.jsonl
func WithIndex(enabled bool) Option {
	return func(s *JSONStore) { s.writeIndex = enabled }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *JSONStore) { s.now = now }
}

// WithIDs overrides run ID generation.
func WithIDs(gen func() string) Option {
	return func(s *JSONStore) { s.newID = gen }
}

func NewJSONStore(root string, cfg domain.Config, opts ...Option) *JSONStore {
	runsDir := cfg.Paths.RunsDir
	if strings.TrimSpace(runsDir) == "" {
		runsDir = defaultRunsDir
	}

	s := &JSONStore{
		rootDir:     root,
		runsDirName: runsDir,
		writeIndex:  false,
		now:         time.Now,
		newID:       uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.ManifestStore = (*JSONStore)(nil)

// SaveRun persists run and returns its ID, assigning one when run.ID is empty.
func (s *JSONStore) SaveRun(run domain.GenerationRun) (string, error) {
	dir := s.runsDirName
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(s.rootDir, dir)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "runstore.mkdir",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	toSave := run
	if toSave.ID == "" {
		toSave.ID = s.newID()
	}
	if toSave.StartedAt.IsZero() {
		toSave.StartedAt = s.now()
	}
	ts := toSave.StartedAt.UTC()

	slug := slugify(runLabel(toSave))
	if slug == "" {
		slug = "run"
	}

	base := fmt.Sprintf("%s_%s", ts.Format("20060102T150405Z"), slug)
	filename := uniqueFilename(dir, base)
	path := filepath.Join(dir, filename)

	b, err := json.MarshalIndent(toSave, "", "  ")
	if err != nil {
		return "", &domain.OpError{
			Op:   "runstore.marshal",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	// Atomic-ish write: tmp then rename.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return "", &domain.OpError{
			Op:   "runstore.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", &domain.OpError{
			Op:   "runstore.rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	if s.writeIndex {
		_ = s.appendIndex(dir, filename, toSave)
	}

	return toSave.ID, nil
}

func (s *JSONStore) appendIndex(dir, filename string, run domain.GenerationRun) error {
	type idx struct {
		ID        string    `json:"id"`
		File      string    `json:"file"`
		Source    string    `json:"source"`
		Sites     int       `json:"sites"`
		OutputDir string    `json:"output_dir"`
		StartedAt time.Time `json:"started_at"`
	}
	line, err := json.Marshal(idx{
		ID:        run.ID,
		File:      filename,
		Source:    string(run.Source),
		Sites:     len(run.Sites),
		OutputDir: run.OutputDir,
		StartedAt: run.StartedAt,
	})
	if err != nil {
		return err
	}

	indexPath := filepath.Join(dir, "index.jsonl")
	f, err := os.OpenFile(indexPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, _ = f.Write(append(line, '\n'))
	return nil
}

// runLabel names a run after its only domain, or after its source kind.
func runLabel(run domain.GenerationRun) string {
	if len(run.Sites) == 1 {
		return string(run.Sites[0].Plan.Domain)
	}
	if run.Source != "" {
		return string(run.Source)
	}
	return ""
}

func uniqueFilename(dir, base string) string {
	name := base + ".json"
	for i := 2; ; i++ {
		if _, err := os.Stat(filepath.Join(dir, name)); os.IsNotExist(err) {
			return name
		}
		name = fmt.Sprintf("%s_%d.json", base, i)
	}
}

// slugify produces a safe filename component.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
			lastDash = false
		case r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			// any other char -> dash
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}
