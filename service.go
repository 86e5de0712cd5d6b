package cv2pdf

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alnah/go-cv2pdf/internal/fileutil"
)

// filePermissions is used for the rendered .tex source.
const filePermissions = 0o644 // rw-r--r--: owner read+write, others read

// Service orchestrates the data-to-PDF pipeline.
type Service struct {
	cfg      serviceConfig
	renderer templateRenderer
	compiler texCompiler
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithEngine).
func New(opts ...Option) *Service {
	s := &Service{
		cfg:      serviceConfig{engine: EnginePDFLaTeX},
		renderer: newTexRenderer(),
	}

	for _, opt := range opts {
		opt(s)
	}

	// Create compiler if not injected (e.g., by tests)
	if s.compiler == nil {
		s.compiler = newLatexCompiler(s.cfg.engine)
	}

	return s
}

// Render escapes input.Data and executes the template, returning the
// LaTeX source. The escaping pass runs exactly once per call; callers
// must pass raw data, never data that has already been escaped.
func (s *Service) Render(ctx context.Context, input Input) (string, error) {
	if err := validateInput(input); err != nil {
		return "", err
	}

	escaped := Escape(input.Data)

	texSource, err := s.renderer.Render(ctx, input.Template, escaped)
	if err != nil {
		return "", fmt.Errorf("rendering template: %w", err)
	}

	return texSource, nil
}

// Generate runs the full pipeline: render, write the .tex source, and
// compile it to PDF unless input.TexOnly is set. The context is used
// for cancellation of the engine run.
func (s *Service) Generate(ctx context.Context, input Input) (*Result, error) {
	texSource, err := s.Render(ctx, input)
	if err != nil {
		return nil, err
	}

	outDir := input.OutDir
	if outDir == "" {
		outDir = "output"
	}
	jobName := input.JobName
	if jobName == "" {
		jobName = DefaultJobName
	}

	if err := fileutil.EnsureDir(outDir); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	texPath := filepath.Join(outDir, jobName+".tex")
	if err := os.WriteFile(texPath, []byte(texSource), filePermissions); err != nil {
		return nil, fmt.Errorf("writing tex file: %w", err)
	}

	result := &Result{TexPath: texPath}
	if input.TexOnly {
		return result, nil
	}

	if err := s.compiler.Compile(ctx, texPath, outDir); err != nil {
		return nil, err
	}

	result.PDFPath = filepath.Join(outDir, jobName+".pdf")
	return result, nil
}

// validateInput checks that required fields are present.
func validateInput(input Input) error {
	if input.Data == nil {
		return ErrNoData
	}
	if input.Template == "" {
		return ErrEmptyTemplate
	}
	return nil
}
