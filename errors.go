package cv2pdf

import "errors"

// Sentinel errors for library operations.
var (
	ErrNoData         = errors.New("document data cannot be nil")
	ErrEmptyTemplate  = errors.New("template content cannot be empty")
	ErrTemplateParse  = errors.New("template parse failed")
	ErrTemplateRender = errors.New("template rendering failed")
	ErrCompileFailed  = errors.New("LaTeX compilation failed")

	// Engine validation errors.
	ErrInvalidEngine = errors.New("invalid LaTeX engine")
)
