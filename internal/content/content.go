// Package content loads the static site catalog: business identity, service
// catalog, locations, FAQs, testimonials and stats.
package content

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"circles-of-care-site/internal/domain"
	"circles-of-care-site/pkg/validation"

	"gopkg.in/yaml.v3"
)

//go:embed site.yaml
var embeddedSite []byte

const defaultServicesPath = "services"

// Option adjusts the catalog after parsing and before validation.
type Option func(*domain.Site)

// WithSiteURL replaces the identity url, e.g. for staging deployments.
func WithSiteURL(url string) Option {
	return func(s *domain.Site) {
		if url = strings.TrimRight(strings.TrimSpace(url), "/"); url != "" {
			s.Identity.URL = url
		}
	}
}

// Load parses the catalog compiled into the binary.
func Load(opts ...Option) (*domain.Site, error) {
	return Parse(embeddedSite, "embedded site.yaml", opts...)
}

// LoadFile parses a catalog from disk.
func LoadFile(path string, opts ...Option) (*domain.Site, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("content: read %s: %w", path, err)
	}
	return Parse(data, path, opts...)
}

// Parse decodes and validates a catalog document. Unknown keys are rejected
// so typos in the catalog fail start-up instead of silently dropping data.
func Parse(data []byte, source string, opts ...Option) (*domain.Site, error) {
	var site domain.Site
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&site); err != nil {
		return nil, fmt.Errorf("content: parse %s: %w", source, err)
	}

	for _, opt := range opts {
		opt(&site)
	}
	normalise(&site)

	v := validation.New(nil)
	if err := v.Struct(&site); err != nil {
		return nil, fmt.Errorf("content: invalid %s: %s", source, strings.Join(validation.FormatValidationErrors(err), "; "))
	}
	return &site, nil
}

func normalise(s *domain.Site) {
	s.Identity.URL = strings.TrimRight(s.Identity.URL, "/")
	s.Identity.ServicesPath = strings.Trim(s.Identity.ServicesPath, "/")
	if s.Identity.ServicesPath == "" {
		s.Identity.ServicesPath = defaultServicesPath
	}
	for i := range s.Services {
		if s.Services[i].ShortTitle == "" {
			s.Services[i].ShortTitle = s.Services[i].Title
		}
	}
}
