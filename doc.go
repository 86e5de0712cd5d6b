// Package cv2pdf typesets structured résumé data (YAML) into PDF via LaTeX.
//
// # Quick Start
//
// Create a service, render and compile:
//
//	svc := cv2pdf.New()
//
//	result, err := svc.Generate(ctx, cv2pdf.Input{
//	    Data:     data,          // decoded YAML document
//	    Template: texTemplate,   // LaTeX template source
//	    OutDir:   "output",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.PDFPath)
//
// The result contains the paths of both artifacts: the rendered .tex
// source and the compiled PDF. Use Input.TexOnly to skip compilation.
//
// # Pipeline
//
// Generation follows these stages:
//
//  1. LaTeX escaping of all string leaves in the data (Escape)
//  2. Template rendering via text/template with << >> delimiters
//  3. PDF compilation via an external LaTeX engine (pdflatex by default)
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc := cv2pdf.New(
//	    cv2pdf.WithEngine(cv2pdf.EngineXeLaTeX),
//	)
//
// # Engine Requirements
//
// Compilation requires a LaTeX distribution providing the selected
// engine binary (pdflatex, xelatex, or lualatex) on PATH. The engine is
// invoked non-interactively; on failure its captured stdout and stderr
// are available on the returned *CompileError.
package cv2pdf
