package usecase

import (
	"fmt"

	apptemplate "github.com/aalvaropc/soonpage/internal/app/template"
	"github.com/aalvaropc/soonpage/internal/domain"
)

// PlanSite classifies d, selects its copy and fills the title.
func PlanSite(cfg domain.Config, d domain.Domain) (domain.SitePlan, error) {
	category := domain.Classify(d)
	pack := domain.SelectCopy(category)
	name := cfg.NameFor(d)

	title, err := apptemplate.Title(pack, name)
	if err != nil {
		return domain.SitePlan{}, fmt.Errorf("domain %q: %w", d, err)
	}

	return domain.SitePlan{
		Domain:      d,
		Category:    category,
		DisplayName: name,
		Title:       title,
		Description: pack.Description,
		Keywords:    pack.Keywords,
	}, nil
}

// PlanSites plans every domain, preserving input order.
func PlanSites(cfg domain.Config, domains []domain.Domain) ([]domain.SitePlan, error) {
	out := make([]domain.SitePlan, 0, len(domains))
	for _, d := range domains {
		p, err := PlanSite(cfg, d)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
