package ports

import "github.com/aalvaropc/soonpage/internal/domain"

type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}
