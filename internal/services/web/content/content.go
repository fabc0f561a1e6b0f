// Package content is the read-only registry of agency services and
// industries. Both tables are embedded YAML, loaded and validated once.
package content

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"regexp"
	"strings"

	"github.com/risemars/site/internal/platform/icons"
	"github.com/yuin/goldmark"
	"gopkg.in/yaml.v3"
)

const (
	servicesFile   = "services.yaml"
	industriesFile = "industries.yaml"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// ErrInvalidTable is wrapped by every load-time validation failure.
var ErrInvalidTable = errors.New("invalid content table")

// ServiceEntry is one offered service.
type ServiceEntry struct {
	Slug             string
	Name             string
	ShortDescription string
	IconRef          string
	ImageURL         string
	// BodyText is the Markdown source of the long description.
	BodyText string
	// BodyHTML is BodyText rendered once at load time.
	BodyHTML string
}

// IndustryEntry is one industry vertical.
type IndustryEntry struct {
	Slug     string
	Name     string
	ImageURL string
	BodyText string
	BodyHTML string
}

// EntrySlug implements Entry.
func (e ServiceEntry) EntrySlug() string { return e.Slug }

// EntrySlug implements Entry.
func (e IndustryEntry) EntrySlug() string { return e.Slug }

// Registry holds both content tables in canonical order.
type Registry struct {
	services   []ServiceEntry
	industries []IndustryEntry
}

//go:embed data/*.yaml
var embeddedData embed.FS

var defaultRegistry = mustLoadEmbedded()

// Default returns the process-wide registry built from the embedded tables.
func Default() *Registry {
	return defaultRegistry
}

// ListServices returns every service in display order.
func (r *Registry) ListServices() []ServiceEntry {
	if r == nil {
		return nil
	}
	out := make([]ServiceEntry, len(r.services))
	copy(out, r.services)
	return out
}

// ListIndustries returns every industry in display order.
func (r *Registry) ListIndustries() []IndustryEntry {
	if r == nil {
		return nil
	}
	out := make([]IndustryEntry, len(r.industries))
	copy(out, r.industries)
	return out
}

// Service looks up a service by slug.
func (r *Registry) Service(slug string) (ServiceEntry, bool) {
	if r == nil {
		return ServiceEntry{}, false
	}
	return FindBySlug(r.services, slug)
}

// Industry looks up an industry by slug.
func (r *Registry) Industry(slug string) (IndustryEntry, bool) {
	if r == nil {
		return IndustryEntry{}, false
	}
	return FindBySlug(r.industries, slug)
}

type serviceRecord struct {
	Slug        string `yaml:"slug"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
	Image       string `yaml:"image"`
	Body        string `yaml:"body"`
}

type industryRecord struct {
	Slug  string `yaml:"slug"`
	Name  string `yaml:"name"`
	Image string `yaml:"image"`
	Body  string `yaml:"body"`
}

// Load reads services.yaml and industries.yaml from fsys.
func Load(fsys fs.FS) (*Registry, error) {
	var services struct {
		Services []serviceRecord `yaml:"services"`
	}
	if err := decodeFile(fsys, servicesFile, &services); err != nil {
		return nil, err
	}
	var industries struct {
		Industries []industryRecord `yaml:"industries"`
	}
	if err := decodeFile(fsys, industriesFile, &industries); err != nil {
		return nil, err
	}

	md := goldmark.New()
	reg := &Registry{
		services:   make([]ServiceEntry, 0, len(services.Services)),
		industries: make([]IndustryEntry, 0, len(industries.Industries)),
	}
	seen := map[string]struct{}{}
	for i, rec := range services.Services {
		if err := validateRecord(servicesFile, i, rec.Slug, rec.Name, rec.Body, seen); err != nil {
			return nil, err
		}
		if strings.TrimSpace(rec.Description) == "" {
			return nil, fmt.Errorf("%w: %s[%d] %q: description is required", ErrInvalidTable, servicesFile, i, rec.Slug)
		}
		if !icons.Has(rec.Icon) {
			return nil, fmt.Errorf("%w: %s[%d] %q: unknown icon %q", ErrInvalidTable, servicesFile, i, rec.Slug, rec.Icon)
		}
		html, err := renderBody(md, rec.Body)
		if err != nil {
			return nil, fmt.Errorf("render %s %q: %w", servicesFile, rec.Slug, err)
		}
		reg.services = append(reg.services, ServiceEntry{
			Slug:             rec.Slug,
			Name:             strings.TrimSpace(rec.Name),
			ShortDescription: strings.TrimSpace(rec.Description),
			IconRef:          rec.Icon,
			ImageURL:         strings.TrimSpace(rec.Image),
			BodyText:         rec.Body,
			BodyHTML:         html,
		})
	}

	seen = map[string]struct{}{}
	for i, rec := range industries.Industries {
		if err := validateRecord(industriesFile, i, rec.Slug, rec.Name, rec.Body, seen); err != nil {
			return nil, err
		}
		html, err := renderBody(md, rec.Body)
		if err != nil {
			return nil, fmt.Errorf("render %s %q: %w", industriesFile, rec.Slug, err)
		}
		reg.industries = append(reg.industries, IndustryEntry{
			Slug:     rec.Slug,
			Name:     strings.TrimSpace(rec.Name),
			ImageURL: strings.TrimSpace(rec.Image),
			BodyText: rec.Body,
			BodyHTML: html,
		})
	}

	if len(reg.services) == 0 {
		return nil, fmt.Errorf("%w: %s has no entries", ErrInvalidTable, servicesFile)
	}
	if len(reg.industries) == 0 {
		return nil, fmt.Errorf("%w: %s has no entries", ErrInvalidTable, industriesFile)
	}
	return reg, nil
}

func decodeFile(fsys fs.FS, name string, target any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(target); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

func validateRecord(file string, index int, slug, name, body string, seen map[string]struct{}) error {
	if !slugPattern.MatchString(slug) {
		return fmt.Errorf("%w: %s[%d]: slug %q is not url-safe", ErrInvalidTable, file, index, slug)
	}
	if _, dup := seen[slug]; dup {
		return fmt.Errorf("%w: %s[%d]: duplicate slug %q", ErrInvalidTable, file, index, slug)
	}
	seen[slug] = struct{}{}
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: %s[%d] %q: name is required", ErrInvalidTable, file, index, slug)
	}
	if strings.TrimSpace(body) == "" {
		return fmt.Errorf("%w: %s[%d] %q: body is required", ErrInvalidTable, file, index, slug)
	}
	return nil
}

// Raw HTML in the source is dropped; goldmark only emits it with html.WithUnsafe.
func renderBody(md goldmark.Markdown, source string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func mustLoadEmbedded() *Registry {
	sub, err := fs.Sub(embeddedData, "data")
	if err != nil {
		panic(err)
	}
	reg, err := Load(sub)
	if err != nil {
		panic(err)
	}
	return reg
}
