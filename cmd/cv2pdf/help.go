package main

import (
	"fmt"
	"io"
	"strings"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cv2pdf <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  generate   Generate a PDF résumé from a YAML data file")
	fmt.Fprintln(w, "  doctor     Check LaTeX engine availability")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'cv2pdf help <command>' for details on a specific command.")
}

// printGenerateUsage prints usage for the generate command.
func printGenerateUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cv2pdf generate <data.yaml> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate a typeset PDF from structured résumé data.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  data.yaml    Résumé data file (optional if config has input.data)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <dir>      Output directory (default: output)")
	fmt.Fprintln(w, "  -t, --template <s>      Template name or file path (default: classic)")
	fmt.Fprintln(w, "      --template-dir <d>  User template directory, tried before built-ins")
	fmt.Fprintln(w, "  -c, --config <name>     Config file name or path")
	fmt.Fprintln(w, "      --engine <s>        LaTeX engine: pdflatex, xelatex, lualatex")
	fmt.Fprintln(w, "      --jobname <s>       Base name for output artifacts (default: resume)")
	fmt.Fprintln(w, "      --tex-only          Write the .tex source, skip compilation")
	fmt.Fprintln(w, "  -q, --quiet             Only show errors")
	fmt.Fprintln(w, "  -v, --verbose           Show pipeline progress")
}

// printDoctorUsage prints usage for the doctor command.
func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cv2pdf doctor [--json]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check that a LaTeX engine is installed and usable.")
}

// runHelp shows help for a specific command, or general usage.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "generate":
		printGenerateUsage(env.Stdout)
		if env.Templates != nil {
			fmt.Fprintf(env.Stdout, "\nBuilt-in templates: %s\n", strings.Join(env.Templates.Names(), ", "))
		}
	case "doctor":
		printDoctorUsage(env.Stdout)
	default:
		printUsage(env.Stdout)
	}
}
