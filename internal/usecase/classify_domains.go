package usecase

import (
	"github.com/aalvaropc/soonpage/internal/domain"
	"github.com/aalvaropc/soonpage/internal/ports"
)

// ClassifyDomains loads the configured domains and plans them without
// rendering or writing anything.
type ClassifyDomains struct {
	loader ports.DomainLoader
}

func NewClassifyDomains(loader ports.DomainLoader) *ClassifyDomains {
	return &ClassifyDomains{loader: loader}
}

func (uc *ClassifyDomains) Execute(cfg domain.Config) ([]domain.SitePlan, error) {
	_, domains, err := uc.loader.LoadDomains(cfg)
	if err != nil {
		return nil, err
	}
	return PlanSites(cfg, domains)
}
