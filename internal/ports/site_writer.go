package ports

import (
	"context"

	"github.com/aalvaropc/soonpage/internal/domain"
)

// SiteWriter persists rendered pages to a per-domain location.
type SiteWriter interface {
	WriteSite(ctx context.Context, site domain.RenderedSite) (domain.SiteResult, error)
}
