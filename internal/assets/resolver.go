package assets

import (
	"errors"
	"sort"
)

// Resolver combines a user template directory with the embedded
// templates. When a custom directory is configured it is tried first,
// falling back to embedded when the template is not found there.
type Resolver struct {
	custom   TemplateLoader // nil if no custom directory configured
	embedded TemplateLoader
}

// NewResolver creates a Resolver.
// If customDir is empty, only embedded templates are used.
// Returns error if customDir is set but not a valid directory.
func NewResolver(customDir string) (*Resolver, error) {
	resolver := &Resolver{
		embedded: NewEmbeddedLoader(),
	}

	if customDir != "" {
		fsLoader, err := NewFilesystemLoader(customDir)
		if err != nil {
			return nil, err
		}
		resolver.custom = fsLoader
	}

	return resolver, nil
}

// LoadTemplate loads a template, trying the custom directory first if
// one is configured. Falls back to embedded only for "not found"
// errors, never for validation or I/O errors.
func (r *Resolver) LoadTemplate(name string) (string, error) {
	if r.custom == nil {
		return r.embedded.LoadTemplate(name)
	}

	content, err := r.custom.LoadTemplate(name)
	if err == nil {
		return content, nil
	}
	if !errors.Is(err, ErrTemplateNotFound) {
		return "", err
	}

	return r.embedded.LoadTemplate(name)
}

// Names returns the union of custom and embedded template names, sorted.
func (r *Resolver) Names() []string {
	names := r.embedded.Names()
	if r.custom == nil {
		return names
	}

	seen := make(map[string]bool, len(names))
	for _, name := range names {
		seen[name] = true
	}
	for _, name := range r.custom.Names() {
		if !seen[name] {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Compile-time interface check.
var _ TemplateLoader = (*Resolver)(nil)
