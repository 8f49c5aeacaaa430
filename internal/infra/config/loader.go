package config

import (
	"os"
	"path/filepath"

	"github.com/aalvaropc/soonpage/internal/domain"
	"gopkg.in/yaml.v3"
)

// FileName is the workspace marker and settings file.
const FileName = "soonpage.yaml"

// LoadWorkspace loads soonpage.yaml from the workspace root and applies it on
// top of base.
func LoadWorkspace(root string, base domain.Config) (domain.Config, error) {
	path := filepath.Join(root, FileName)
	b, err := os.ReadFile(path)
	if err != nil {
		return base, &domain.OpError{
			Op:   "config.load_workspace",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var dto YAMLWorkspace
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return base, &domain.OpError{
			Op:   "config.load_workspace",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return MapWorkspace(path, root, base, dto.Soonpage)
}
