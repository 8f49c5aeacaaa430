package cli

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/soonpage/internal/domain"
)

// userMessage turns a command error into a short next step, or "" when
// there is nothing useful to add to the error itself.
func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if !errors.As(err, &oe) {
		return ""
	}

	switch oe.Kind {
	case domain.KindMissingConfig:
		return "set it in the environment, .env or soonpage.yaml (see `soonpage init`)"
	case domain.KindEmptyDomainSet:
		return "the domain source contains no usable entries"
	case domain.KindNotFound:
		if strings.TrimSpace(oe.Path) != "" {
			return filepath.Base(oe.Path) + " not found"
		}
		return "not found"
	case domain.KindInvalidConfig:
		if strings.TrimSpace(oe.Path) != "" {
			return "check " + filepath.Base(oe.Path)
		}
		return ""
	default:
		return "see .soonpage/logs/soonpage.log (run with --debug for more)"
	}
}
