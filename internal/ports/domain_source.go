package ports

import "github.com/aalvaropc/soonpage/internal/domain"

// DomainSource yields raw, un-normalized domain entries for one source variant.
type DomainSource interface {
	Kind() domain.SourceKind
	RawDomains() ([]string, error)
}

// DomainLoader turns configuration into the normalized, deduplicated domain set.
type DomainLoader interface {
	LoadDomains(cfg domain.Config) (domain.SourceKind, []domain.Domain, error)
}
