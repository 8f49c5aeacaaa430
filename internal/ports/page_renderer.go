package ports

import "github.com/aalvaropc/soonpage/internal/domain"

// PageRenderer turns a site plan into static documents.
type PageRenderer interface {
	Render(plan domain.SitePlan) (domain.RenderedSite, error)
}
