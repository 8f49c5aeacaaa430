package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/aalvaropc/soonpage/internal/domain"
)

// Environment variable names.
const (
	EnvDomain      = "DOMAIN"
	EnvDomains     = "DOMAINS"
	EnvDomainsFile = "DOMAINS_FILE"
	EnvAnalyticsID = "GA4_MEASUREMENT_ID"
	EnvFooterOwner = "FOOTER_OWNER"
	EnvOutputDir   = "SOONPAGE_OUTPUT_DIR"
	EnvSource      = "SOONPAGE_SOURCE"
)

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// LoadDotEnv loads .env files into the process environment. Variables that
// are already set are not overridden and missing files are ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return &domain.OpError{
				Op:   "config.dotenv",
				Kind: domain.KindInvalidConfig,
				Path: p,
				Err:  err,
			}
		}
	}
	return nil
}

// ApplyEnv overlays environment variables on cfg. Empty values are ignored.
func ApplyEnv(cfg domain.Config, lookup LookupFunc) (domain.Config, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	out := cloneConfig(cfg)

	get := func(key string) string {
		v, ok := lookup(key)
		if !ok {
			return ""
		}
		return strings.TrimSpace(v)
	}

	if v := get(EnvAnalyticsID); v != "" {
		out.AnalyticsID = v
	}
	if v := get(EnvFooterOwner); v != "" {
		out.FooterOwner = v
	}
	if v := get(EnvOutputDir); v != "" {
		out.Paths.OutputDir = v
	}
	kind, err := domain.ParseSourceKind(get(EnvSource))
	if err != nil {
		return domain.Config{}, err
	}
	out.OverlaySource(kind, get(EnvDomain), get(EnvDomains), get(EnvDomainsFile))

	return out, nil
}
