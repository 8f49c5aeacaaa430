package sitewriter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/soonpage/internal/domain"
	"github.com/aalvaropc/soonpage/internal/ports"
)

// Writer writes each site into <outDir>/<domain>/.
type Writer struct {
	outDir string
}

func New(outDir string) *Writer {
	return &Writer{outDir: filepath.Clean(outDir)}
}

var _ ports.SiteWriter = (*Writer)(nil)

func (w *Writer) WriteSite(ctx context.Context, site domain.RenderedSite) (domain.SiteResult, error) {
	name := string(site.Plan.Domain)
	if !safeDirName(name) {
		return domain.SiteResult{}, &domain.OpError{
			Op:   "sitewriter.write",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("domain %q cannot be used as a directory name: %w", name, domain.ErrInvalidConfig),
		}
	}

	dir := filepath.Join(w.outDir, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return domain.SiteResult{}, &domain.OpError{
			Op:   "sitewriter.mkdir",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	res := domain.SiteResult{
		Plan:  site.Plan,
		Dir:   dir,
		Files: make([]string, 0, len(site.Pages)),
	}
	for _, p := range site.Pages {
		if err := ctx.Err(); err != nil {
			return domain.SiteResult{}, err
		}
		path := filepath.Join(dir, p.Name)
		if err := writeFileAtomic(path, p.Content); err != nil {
			return domain.SiteResult{}, err
		}
		res.Files = append(res.Files, path)
	}
	return res, nil
}

// writeFileAtomic writes to a temp file and renames it into place.
func writeFileAtomic(path string, b []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return &domain.OpError{
			Op:   "sitewriter.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return &domain.OpError{
			Op:   "sitewriter.rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}
	return nil
}

func safeDirName(s string) bool {
	if s == "" || s == "." || s == ".." {
		return false
	}
	return !strings.ContainsAny(s, `/\`)
}
