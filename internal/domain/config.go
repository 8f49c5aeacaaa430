package domain

import (
	"fmt"
	"strings"
)

// SourceKind selects where the raw domain list comes from.
type SourceKind string

const (
	SourceSingle SourceKind = "single" // one domain in a single value
	SourceList   SourceKind = "list"   // newline-delimited value
	SourceFile   SourceKind = "file"   // text file, one domain per line
)

// ParseSourceKind accepts the CLI/env spelling of a source kind. Empty input
// yields "" (auto-detect).
func ParseSourceKind(s string) (SourceKind, error) {
	switch k := SourceKind(strings.ToLower(strings.TrimSpace(s))); k {
	case "", SourceSingle, SourceList, SourceFile:
		return k, nil
	default:
		return "", &OpError{
			Op:   "config.source",
			Kind: KindInvalidConfig,
			Err:  fmt.Errorf("unsupported source %q (expected single|list|file): %w", s, ErrInvalidConfig),
		}
	}
}

// Config is built once at process entry and passed explicitly to use cases.
// Treat it as read-only after construction.
type Config struct {
	AnalyticsID string
	FooterOwner string

	Source SourceConfig
	Paths  PathsConfig

	// DisplayNames overrides derived names for run-together domains.
	DisplayNames map[Domain]string
}

type SourceConfig struct {
	// Kind forces a variant; empty means auto-detect (file > list > single).
	Kind    SourceKind
	Domain  string
	Domains string
	File    string
}

type PathsConfig struct {
	OutputDir string
	RunsDir   string
}

// DefaultConfig provides sane defaults if soonpage.yaml and the environment
// are partially missing.
func DefaultConfig() Config {
	return Config{
		FooterOwner: "Madita",
		Paths: PathsConfig{
			OutputDir: "output",
			RunsDir:   "runs",
		},
		DisplayNames: map[Domain]string{},
	}
}

// ResolveSource picks the source variant that will feed the loader.
func (c Config) ResolveSource() (SourceKind, error) {
	s := c.Source
	if s.Kind != "" {
		if strings.TrimSpace(s.value(s.Kind)) == "" {
			return "", MissingConfig("config.source", s.Kind.param())
		}
		return s.Kind, nil
	}

	for _, k := range []SourceKind{SourceFile, SourceList, SourceSingle} {
		if strings.TrimSpace(s.value(k)) != "" {
			return k, nil
		}
	}
	return "", MissingConfig("config.source", "DOMAIN, DOMAINS or DOMAINS_FILE")
}

// OverlaySource applies one configuration layer's source settings. An
// explicit kind selects that variant. Otherwise any value the layer sets
// selects its own variant (file > list > single within the layer), so a
// later layer's DOMAIN beats an earlier layer's forced file source.
// Empty values leave the previous layer untouched.
func (c *Config) OverlaySource(kind SourceKind, single, list, file string) {
	var implied SourceKind
	if single != "" {
		c.Source.Domain = single
		implied = SourceSingle
	}
	if list != "" {
		c.Source.Domains = list
		implied = SourceList
	}
	if file != "" {
		c.Source.File = file
		implied = SourceFile
	}

	switch {
	case kind != "":
		c.Source.Kind = kind
	case implied != "":
		c.Source.Kind = implied
	}
}

// SourceValue returns the raw configured value for a source kind.
func (c Config) SourceValue(k SourceKind) string {
	return c.Source.value(k)
}

// Validate checks the parameters generation cannot run without.
func (c Config) Validate() error {
	if strings.TrimSpace(c.AnalyticsID) == "" {
		return MissingConfig("config.validate", "GA4_MEASUREMENT_ID")
	}
	if strings.TrimSpace(c.FooterOwner) == "" {
		return MissingConfig("config.validate", "FOOTER_OWNER")
	}
	if _, err := c.ResolveSource(); err != nil {
		return err
	}
	return nil
}

// NameFor returns the configured display name for d, or derives one.
func (c Config) NameFor(d Domain) string {
	if n, ok := c.DisplayNames[d]; ok && strings.TrimSpace(n) != "" {
		return n
	}
	return DisplayName(d)
}

func (s SourceConfig) value(k SourceKind) string {
	switch k {
	case SourceSingle:
		return s.Domain
	case SourceList:
		return s.Domains
	case SourceFile:
		return s.File
	default:
		return ""
	}
}

func (k SourceKind) param() string {
	switch k {
	case SourceSingle:
		return "DOMAIN"
	case SourceList:
		return "DOMAINS"
	case SourceFile:
		return "DOMAINS_FILE"
	default:
		return string(k)
	}
}

// WorkspaceSpec describes where `soonpage init` scaffolds a workspace.
type WorkspaceSpec struct {
	Root string
}
