// Package domainsource reads raw domain entries from one of the supported
// source variants. Normalization and deduplication happen in the domain
// package; sources only split their input into entries.
package domainsource

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/aalvaropc/soonpage/internal/domain"
	"github.com/aalvaropc/soonpage/internal/ports"
)

// Single yields exactly one entry.
type Single struct {
	Value string
}

// List yields one entry per line of a newline-delimited value.
type List struct {
	Value string
}

// File yields one entry per line of a text file. Blank lines and lines
// starting with '#' are skipped.
type File struct {
	Path string
}

var (
	_ ports.DomainSource = Single{}
	_ ports.DomainSource = List{}
	_ ports.DomainSource = File{}
)

func (Single) Kind() domain.SourceKind { return domain.SourceSingle }
func (List) Kind() domain.SourceKind   { return domain.SourceList }
func (File) Kind() domain.SourceKind   { return domain.SourceFile }

func (s Single) RawDomains() ([]string, error) {
	if strings.TrimSpace(s.Value) == "" {
		return nil, domain.MissingConfig("domainsource.single", "DOMAIN")
	}
	return []string{s.Value}, nil
}

func (s List) RawDomains() ([]string, error) {
	if strings.TrimSpace(s.Value) == "" {
		return nil, domain.MissingConfig("domainsource.list", "DOMAINS")
	}
	return splitLines([]byte(s.Value), false)
}

func (s File) RawDomains() ([]string, error) {
	if strings.TrimSpace(s.Path) == "" {
		return nil, domain.MissingConfig("domainsource.file", "DOMAINS_FILE")
	}
	b, err := os.ReadFile(s.Path)
	if err != nil {
		kind := domain.KindExecution
		if errors.Is(err, fs.ErrNotExist) {
			kind = domain.KindNotFound
		}
		return nil, &domain.OpError{
			Op:   "domainsource.file",
			Kind: kind,
			Path: s.Path,
			Err:  err,
		}
	}
	lines, err := splitLines(b, true)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "domainsource.file",
			Kind: domain.KindExecution,
			Path: s.Path,
			Err:  err,
		}
	}
	return lines, nil
}

// FromConfig builds the source selected by cfg.
func FromConfig(cfg domain.Config) (ports.DomainSource, error) {
	kind, err := cfg.ResolveSource()
	if err != nil {
		return nil, err
	}
	switch kind {
	case domain.SourceSingle:
		return Single{Value: cfg.SourceValue(kind)}, nil
	case domain.SourceList:
		return List{Value: cfg.SourceValue(kind)}, nil
	case domain.SourceFile:
		return File{Path: cfg.SourceValue(kind)}, nil
	default:
		return nil, &domain.OpError{
			Op:   "domainsource.from_config",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("unsupported source %q: %w", kind, domain.ErrInvalidConfig),
		}
	}
}

// Load reads src and returns normalized, deduplicated domains. A source that
// yields nothing usable is an EmptyDomainSet error.
func Load(src ports.DomainSource) ([]domain.Domain, error) {
	raw, err := src.RawDomains()
	if err != nil {
		return nil, err
	}
	out := domain.NormalizeAll(raw)
	if len(out) == 0 {
		return nil, domain.EmptyDomainSet("domainsource.load", string(src.Kind()))
	}
	return out, nil
}

func splitLines(b []byte, skipComments bool) ([]string, error) {
	sc := bufio.NewScanner(bytes.NewReader(b))
	var out []string
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if skipComments && strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return out, sc.Err()
}

// Loader resolves the configured source and loads it.
type Loader struct{}

var _ ports.DomainLoader = Loader{}

func (Loader) LoadDomains(cfg domain.Config) (domain.SourceKind, []domain.Domain, error) {
	src, err := FromConfig(cfg)
	if err != nil {
		return "", nil, err
	}
	out, err := Load(src)
	if err != nil {
		return "", nil, err
	}
	return src.Kind(), out, nil
}
