package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	cv2pdf "github.com/alnah/go-cv2pdf"
	"github.com/alnah/go-cv2pdf/internal/assets"
	"github.com/alnah/go-cv2pdf/internal/config"
	"github.com/alnah/go-cv2pdf/internal/fileutil"
	"github.com/alnah/go-cv2pdf/internal/yamlutil"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput      = errors.New("no data file specified")
	ErrReadData     = errors.New("failed to read data file")
	ErrReadTemplate = errors.New("failed to read template file")
)

// defaultTemplate is used when neither flag nor config names one.
const defaultTemplate = "classic"

// runGenerateCmd parses flags, runs generation, and maps the outcome to
// an exit code. A LaTeX engine failure prints both captured streams.
func runGenerateCmd(ctx context.Context, args []string, env *Environment) int {
	flags, positional, err := parseGenerateFlags(args)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}

	if err := runGenerate(ctx, positional, flags, env); err != nil {
		reportError(env, err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// reportError prints err to stderr. Engine failures get both captured
// output streams; LaTeX writes most diagnostics to stdout.
func reportError(env *Environment, err error) {
	var compileErr *cv2pdf.CompileError
	if errors.As(err, &compileErr) {
		fmt.Fprintln(env.Stderr, "LaTeX compilation failed:")
		fmt.Fprintln(env.Stderr)
		if compileErr.Stdout != "" {
			fmt.Fprintln(env.Stderr, compileErr.Stdout)
		}
		if compileErr.Stderr != "" {
			fmt.Fprintln(env.Stderr, compileErr.Stderr)
		}
		return
	}
	fmt.Fprintln(env.Stderr, err)
}

// runGenerate orchestrates the generation pipeline.
func runGenerate(ctx context.Context, positionalArgs []string, flags *generateFlags, env *Environment) error {
	// Load configuration
	cfg := config.DefaultConfig()
	var err error
	if flags.config != "" {
		cfg, err = config.LoadConfig(flags.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// Merge CLI flags into config (CLI wins)
	mergeFlags(flags, cfg)

	if err := cv2pdf.ValidateEngine(cfg.LaTeX.Engine); err != nil {
		return err
	}

	// Resolve and load the data file
	dataPath := cfg.Input.Data
	if len(positionalArgs) > 0 {
		dataPath = positionalArgs[0]
	}
	if dataPath == "" {
		return ErrNoInput
	}

	raw, err := os.ReadFile(dataPath) // #nosec G304 -- data path is user-provided
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrReadData, dataPath, err)
	}

	var doc any
	if err := yamlutil.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parsing %s: %w", dataPath, err)
	}

	// Resolve the template: a path loads from disk, a name from the loader
	loader, err := templateLoader(cfg.Input.TemplateDir, env)
	if err != nil {
		return err
	}
	tmplContent, err := loadTemplate(cfg.Input.Template, loader)
	if err != nil {
		return err
	}

	if flags.verbose {
		fmt.Fprintf(env.Stderr, "Data: %s\nEngine: %s\n", dataPath, engineName(cfg.LaTeX.Engine))
	}

	gen := env.NewGenerator(cfg.LaTeX.Engine)
	result, err := gen.Generate(ctx, cv2pdf.Input{
		Data:     doc,
		Template: tmplContent,
		OutDir:   cfg.Output.Dir,
		JobName:  cfg.Output.JobName,
		TexOnly:  cfg.LaTeX.TexOnly,
	})
	if err != nil {
		return err
	}

	if !flags.quiet {
		if result.PDFPath != "" {
			fmt.Fprintf(env.Stdout, "Wrote %s\n", result.PDFPath)
		} else {
			fmt.Fprintf(env.Stdout, "Wrote %s\n", result.TexPath)
		}
	}
	return nil
}

// templateLoader returns the loader for named templates. A configured
// user directory is tried before the built-ins, so user templates can
// shadow embedded names.
func templateLoader(templateDir string, env *Environment) (assets.TemplateLoader, error) {
	if templateDir == "" {
		return env.Templates, nil
	}
	return assets.NewResolver(templateDir)
}

// loadTemplate resolves name to LaTeX template content.
// A path-shaped name loads straight from disk; anything else goes
// through the loader.
func loadTemplate(name string, loader assets.TemplateLoader) (string, error) {
	if name == "" {
		name = defaultTemplate
	}

	if fileutil.IsFilePath(name) {
		content, err := os.ReadFile(name) // #nosec G304 -- template path is user-provided
		if err != nil {
			return "", fmt.Errorf("%w: %s: %v", ErrReadTemplate, name, err)
		}
		return string(content), nil
	}

	return loader.LoadTemplate(name)
}

// engineName returns the effective engine for display.
func engineName(engine string) string {
	if engine == "" {
		return cv2pdf.EnginePDFLaTeX
	}
	return engine
}
