package main

import (
	"errors"
	"os"

	cv2pdf "github.com/alnah/go-cv2pdf"
	"github.com/alnah/go-cv2pdf/internal/assets"
	"github.com/alnah/go-cv2pdf/internal/config"
)

// Exit codes for the cv2pdf CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, 3=I/O.
// A LaTeX engine failure maps to the general code, matching the
// documented behavior of exiting 1 after printing the engine output.
const (
	ExitSuccess = 0 // Successful generation
	ExitGeneral = 1 // General/unexpected error, including engine failure
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrReadData) ||
		errors.Is(err, ErrReadTemplate) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, cv2pdf.ErrNoData) ||
		errors.Is(err, cv2pdf.ErrEmptyTemplate) ||
		errors.Is(err, cv2pdf.ErrInvalidEngine) ||
		errors.Is(err, cv2pdf.ErrTemplateParse) ||
		errors.Is(err, cv2pdf.ErrTemplateRender) ||
		errors.Is(err, assets.ErrTemplateNotFound) ||
		errors.Is(err, assets.ErrInvalidAssetName) ||
		errors.Is(err, assets.ErrInvalidBasePath) {
		return ExitUsage
	}

	return ExitGeneral
}
