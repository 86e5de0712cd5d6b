package cv2pdf

import (
	"fmt"
	"strings"
)

// LaTeX engine constants.
const (
	EnginePDFLaTeX = "pdflatex"
	EngineXeLaTeX  = "xelatex"
	EngineLuaLaTeX = "lualatex"
)

// DefaultJobName is used when Input.JobName is empty. The engine derives
// the artifact file names from it (resume.tex, resume.pdf).
const DefaultJobName = "resume"

// ValidateEngine checks that engine names a supported LaTeX engine
// (case-insensitive). An empty string is valid and means the default.
func ValidateEngine(engine string) error {
	switch strings.ToLower(engine) {
	case "", EnginePDFLaTeX, EngineXeLaTeX, EngineLuaLaTeX:
		return nil
	}
	return fmt.Errorf("%w: %q (must be pdflatex, xelatex, or lualatex)", ErrInvalidEngine, engine)
}

// Input contains generation parameters.
type Input struct {
	Data     any    // Decoded document data (required)
	Template string // LaTeX template source (required)
	OutDir   string // Output directory (default "output")
	JobName  string // Base name for artifacts (default "resume")
	TexOnly  bool   // Write the .tex source but skip compilation
}

// Result holds the paths of generated artifacts.
type Result struct {
	TexPath string
	PDFPath string // Empty when Input.TexOnly is set
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	engine string
}

// WithEngine selects the LaTeX engine used for compilation.
// Panics on an unknown engine name (programmer error).
func WithEngine(engine string) Option {
	if err := ValidateEngine(engine); err != nil {
		panic("cv2pdf: " + err.Error())
	}
	return func(s *Service) {
		s.cfg.engine = strings.ToLower(engine)
	}
}
