package usecase

import (
	"context"

	"github.com/aalvaropc/soonpage/internal/domain"
	"github.com/aalvaropc/soonpage/internal/ports"
)

type ValidateConfig struct {
	loader ports.DomainLoader
}

func NewValidateConfig(loader ports.DomainLoader) *ValidateConfig {
	return &ValidateConfig{loader: loader}
}

// Execute runs every check generation performs before writing, without
// rendering or touching the output directory. It returns the loaded domains.
func (uc *ValidateConfig) Execute(ctx context.Context, cfg domain.Config) ([]domain.Domain, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	_, domains, err := uc.loader.LoadDomains(cfg)
	if err != nil {
		return nil, err
	}

	if _, err := PlanSites(cfg, domains); err != nil {
		return nil, err
	}
	return domains, nil
}
