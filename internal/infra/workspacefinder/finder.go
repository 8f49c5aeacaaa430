package workspacefinder

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/aalvaropc/soonpage/internal/domain"
	"github.com/aalvaropc/soonpage/internal/infra/config"
	"github.com/aalvaropc/soonpage/internal/ports"
)

// Finder locates a soonpage workspace root by searching for soonpage.yaml upward.
type Finder struct {
	ConfigFile string // defaults to "soonpage.yaml"
}

func NewFinder() *Finder {
	return &Finder{ConfigFile: config.FileName}
}

var _ ports.WorkspaceLocator = (*Finder)(nil)

func (f *Finder) FindRoot(startDir string) (string, error) {
	const op = "workspacefinder.findroot"

	if startDir == "" {
		return "", &domain.OpError{
			Op:   op,
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("startDir is empty"),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{Op: op, Kind: domain.KindExecution, Err: err}
	}

	// A file path starts the search from its directory.
	if info, statErr := os.Stat(abs); statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	for cur := filepath.Clean(abs); ; {
		if _, err := os.Stat(filepath.Join(cur, f.ConfigFile)); err == nil {
			return cur, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			return "", &domain.OpError{Op: op, Kind: domain.KindNotFound, Err: domain.ErrNotFound}
		}
		cur = parent
	}
}

// Locate is FindRoot for callers where a workspace is optional: a missing
// soonpage.yaml is reported as found=false rather than an error.
func (f *Finder) Locate(startDir string) (root string, found bool, err error) {
	root, err = f.FindRoot(startDir)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return root, true, nil
}
