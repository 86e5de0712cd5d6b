package main

import (
	"context"
	"io"
	"os"
	"os/exec"

	cv2pdf "github.com/alnah/go-cv2pdf"
	"github.com/alnah/go-cv2pdf/internal/assets"
)

// Generator is the interface for the generation service.
type Generator interface {
	Generate(ctx context.Context, input cv2pdf.Input) (*cv2pdf.Result, error)
}

// Compile-time interface implementation check.
var _ Generator = (*cv2pdf.Service)(nil)

// Environment holds injectable dependencies for testability.
// Includes I/O, template loading, service construction, and binary lookup.
type Environment struct {
	Stdout       io.Writer
	Stderr       io.Writer
	Templates    assets.TemplateLoader
	NewGenerator func(engine string) Generator
	LookPath     func(file string) (string, error)
}

// DefaultEnv returns the production environment with embedded templates.
func DefaultEnv() *Environment {
	return &Environment{
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		Templates: assets.NewEmbeddedLoader(),
		NewGenerator: func(engine string) Generator {
			return cv2pdf.New(cv2pdf.WithEngine(engine))
		},
		LookPath: exec.LookPath,
	}
}
