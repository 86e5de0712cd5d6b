package cv2pdf

import (
	"context"
	"fmt"
	"strings"
	"text/template"
)

// Template delimiters. LaTeX source is full of braces, so the default
// {{ }} would collide with constructs like \textbf{}{}.
const (
	delimLeft  = "<<"
	delimRight = ">>"
)

// templateRenderer defines the contract for rendering escaped document
// data into LaTeX source.
type templateRenderer interface {
	Render(ctx context.Context, tmpl string, data any) (string, error)
}

// texRenderer renders LaTeX templates via text/template.
type texRenderer struct {
	funcs template.FuncMap
}

// newTexRenderer creates a texRenderer with the standard helper funcs.
func newTexRenderer() *texRenderer {
	return &texRenderer{
		funcs: template.FuncMap{
			"join": joinValues,
		},
	}
}

// Render parses tmpl and executes it against data. Templates guard
// optional fields with if-actions; an absent key is not an error.
func (r *texRenderer) Render(ctx context.Context, tmpl string, data any) (string, error) {
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	t, err := template.New("resume").
		Delims(delimLeft, delimRight).
		Funcs(r.funcs).
		Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateParse, err)
	}

	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}

	return b.String(), nil
}

// joinValues joins a sequence of values with sep. Accepts []any (the
// shape YAML decoding produces) and []string.
func joinValues(v any, sep string) string {
	switch items := v.(type) {
	case []string:
		return strings.Join(items, sep)
	case []any:
		parts := make([]string, len(items))
		for i, item := range items {
			parts[i] = fmt.Sprint(item)
		}
		return strings.Join(parts, sep)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// Compile-time interface check.
var _ templateRenderer = (*texRenderer)(nil)
