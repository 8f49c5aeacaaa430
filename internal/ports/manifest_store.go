package ports

import "github.com/aalvaropc/soonpage/internal/domain"

// ManifestStore records generation runs.
type ManifestStore interface {
	SaveRun(run domain.GenerationRun) (id string, err error)
}
