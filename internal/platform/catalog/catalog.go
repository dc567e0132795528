// Package catalog builds the template set registered at startup, either the
// built-in templates or a YAML catalog file.
package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jsamuelsen11/page-template-admin/internal/domain/template"
)

// Builtin returns the default template set: a general internal page and a
// unique home page.
func Builtin() []template.Template {
	return []template.Template{
		{
			Key:     "internalpage",
			Title:   "Internal Page",
			Path:    "pages/internal.html",
			Regions: []template.Region{{Key: "main", Title: "Main Content"}},
		},
		{
			Key:     "homepage",
			Title:   "Home Page",
			Path:    "pages/home_page.html",
			Regions: []template.Region{{Key: "home_main", Title: "Main Content"}},
			Unique:  true,
		},
	}
}

type catalogFile struct {
	Templates []templateFile `yaml:"templates"`
}

type templateFile struct {
	Key            string       `yaml:"key"`
	Title          string       `yaml:"title"`
	Path           string       `yaml:"path"`
	PreviewImage   string       `yaml:"preview_image,omitempty"`
	Unique         bool         `yaml:"unique,omitempty"`
	FirstLevelOnly bool         `yaml:"first_level_only,omitempty"`
	NoChildren     bool         `yaml:"no_children,omitempty"`
	Regions        []regionFile `yaml:"regions"`
}

type regionFile struct {
	Key   string `yaml:"key"`
	Title string `yaml:"title"`
}

// Parse decodes a YAML catalog. Unknown fields are rejected so a misspelt
// flag does not silently register a template without its constraint.
func Parse(r io.Reader, source string) ([]template.Template, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc catalogFile
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("catalog: %s is empty", source)
		}
		return nil, fmt.Errorf("catalog: parse %s: %w", source, err)
	}
	if len(doc.Templates) == 0 {
		return nil, fmt.Errorf("catalog: %s defines no templates", source)
	}

	out := make([]template.Template, 0, len(doc.Templates))
	for _, raw := range doc.Templates {
		t := template.Template{
			Key:            strings.TrimSpace(raw.Key),
			Title:          strings.TrimSpace(raw.Title),
			Path:           strings.TrimSpace(raw.Path),
			PreviewImage:   strings.TrimSpace(raw.PreviewImage),
			Unique:         raw.Unique,
			FirstLevelOnly: raw.FirstLevelOnly,
			NoChildren:     raw.NoChildren,
			Regions:        make([]template.Region, 0, len(raw.Regions)),
		}
		for _, r := range raw.Regions {
			t.Regions = append(t.Regions, template.Region{Key: strings.TrimSpace(r.Key), Title: strings.TrimSpace(r.Title)})
		}
		out = append(out, t)
	}
	return out, nil
}

// Encode writes templates in the catalog file layout; Parse reads the
// output back unchanged.
func Encode(w io.Writer, templates []template.Template) error {
	doc := catalogFile{Templates: make([]templateFile, 0, len(templates))}
	for _, t := range templates {
		raw := templateFile{
			Key:            t.Key,
			Title:          t.Title,
			Path:           t.Path,
			PreviewImage:   t.PreviewImage,
			Unique:         t.Unique,
			FirstLevelOnly: t.FirstLevelOnly,
			NoChildren:     t.NoChildren,
			Regions:        make([]regionFile, 0, len(t.Regions)),
		}
		for _, r := range t.Regions {
			raw.Regions = append(raw.Regions, regionFile{Key: r.Key, Title: r.Title})
		}
		doc.Templates = append(doc.Templates, raw)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("catalog: encode: %w", err)
	}
	return enc.Close()
}

// LoadFile reads and parses the catalog at path.
func LoadFile(path string) ([]template.Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	return Parse(bytes.NewReader(data), path)
}

// NewRegistry returns a registry holding the catalog at path, or the
// built-in templates when path is empty.
func NewRegistry(path string) (*template.Registry, error) {
	templates := Builtin()
	if path != "" {
		loaded, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		templates = loaded
	}

	reg := template.NewRegistry()
	if err := reg.Register(templates...); err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	return reg, nil
}
