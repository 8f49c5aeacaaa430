package config

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aalvaropc/soonpage/internal/domain"
)

// MapWorkspace applies the parsed workspace file on top of base. Relative
// file paths are resolved against root.
func MapWorkspace(path, root string, base domain.Config, y YAMLSettings) (domain.Config, error) {
	cfg := cloneConfig(base)

	if v := strings.TrimSpace(y.AnalyticsID); v != "" {
		cfg.AnalyticsID = v
	}
	if v := strings.TrimSpace(y.FooterOwner); v != "" {
		cfg.FooterOwner = v
	}

	kind, err := domain.ParseSourceKind(y.Source)
	if err != nil {
		return domain.Config{}, invalidField(path, "source", err.Error())
	}
	if kind != "" {
		cfg.Source.Kind = kind
	}
	if v := strings.TrimSpace(y.Domain); v != "" {
		cfg.Source.Domain = v
	}
	if len(y.Domains) > 0 {
		cfg.Source.Domains = strings.Join(y.Domains, "\n")
	}
	if v := strings.TrimSpace(y.DomainsFile); v != "" {
		cfg.Source.File = resolvePath(root, v)
	}

	if v := strings.TrimSpace(y.Paths.OutputDir); v != "" {
		cfg.Paths.OutputDir = v
	}
	if v := strings.TrimSpace(y.Paths.RunsDir); v != "" {
		cfg.Paths.RunsDir = v
	}

	keys := make([]string, 0, len(y.DisplayNames))
	for raw := range y.DisplayNames {
		keys = append(keys, raw)
	}
	sort.Strings(keys)

	seen := make(map[domain.Domain]string, len(keys))
	for _, raw := range keys {
		name := y.DisplayNames[raw]
		d := domain.Normalize(raw)
		if d == "" {
			return domain.Config{}, invalidField(path, "display_names", fmt.Sprintf("empty domain key %q", raw))
		}
		if prev, dup := seen[d]; dup {
			return domain.Config{}, invalidField(path, "display_names", fmt.Sprintf("keys %q and %q both name %s", prev, raw, d))
		}
		seen[d] = raw
		if strings.TrimSpace(name) == "" {
			return domain.Config{}, invalidField(path, fmt.Sprintf("display_names[%s]", d), "name is required")
		}
		cfg.DisplayNames[d] = strings.TrimSpace(name)
	}

	return cfg, nil
}

func cloneConfig(in domain.Config) domain.Config {
	out := in
	out.DisplayNames = make(map[domain.Domain]string, len(in.DisplayNames))
	for k, v := range in.DisplayNames {
		out.DisplayNames[k] = v
	}
	return out
}

func resolvePath(root, p string) string {
	if filepath.IsAbs(p) || root == "" {
		return filepath.Clean(p)
	}
	return filepath.Join(root, p)
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
