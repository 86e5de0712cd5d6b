package main

import (
	"os"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-cv2pdf/internal/config"
)

// generateFlags holds all flags for the generate command.
type generateFlags struct {
	config      string
	output      string
	jobName     string
	template    string
	templateDir string
	engine      string
	texOnly     bool
	quiet       bool
	verbose     bool
}

// parseGenerateFlags parses generate command flags and returns positional args.
func parseGenerateFlags(args []string) (*generateFlags, []string, error) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	f := &generateFlags{}

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.output, "output", "o", "", "output directory (default: output)")
	fs.StringVarP(&f.template, "template", "t", "", "template name or file path (default: classic)")
	fs.StringVar(&f.templateDir, "template-dir", "", "user template directory, tried before built-ins")
	fs.StringVar(&f.engine, "engine", "", "LaTeX engine: pdflatex, xelatex, lualatex")
	fs.StringVar(&f.jobName, "jobname", "", "base name for output artifacts (default: resume)")
	fs.BoolVar(&f.texOnly, "tex-only", false, "write the .tex source, skip compilation")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show pipeline progress")

	fs.Usage = func() { printGenerateUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// mergeFlags overlays CLI flags onto the config (CLI wins).
func mergeFlags(f *generateFlags, cfg *config.Config) {
	if f.output != "" {
		cfg.Output.Dir = f.output
	}
	if f.jobName != "" {
		cfg.Output.JobName = f.jobName
	}
	if f.template != "" {
		cfg.Input.Template = f.template
	}
	if f.templateDir != "" {
		cfg.Input.TemplateDir = f.templateDir
	}
	if f.engine != "" {
		cfg.LaTeX.Engine = f.engine
	}
	if f.texOnly {
		cfg.LaTeX.TexOnly = true
	}
}
