// Package assets provides LaTeX templates from embedded or filesystem sources.
package assets

// TemplateLoader defines the contract for loading LaTeX templates.
// Implementations may load from embedded assets or the filesystem.
type TemplateLoader interface {
	// LoadTemplate loads a LaTeX template by name (without the .tex.tmpl
	// extension). Returns ErrTemplateNotFound if the template doesn't
	// exist and ErrInvalidAssetName if the name contains invalid
	// characters.
	LoadTemplate(name string) (string, error)

	// Names returns the available template names, sorted.
	Names() []string
}
