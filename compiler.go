package cv2pdf

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
)

// CommandRunner abstracts command execution to enable testing without
// real subprocesses.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (stdout string, stderr string, err error)
}

// ExecRunner implements CommandRunner using os/exec.
type ExecRunner struct{}

func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// CompileError reports a failed LaTeX engine run. It carries the
// engine's captured output streams so callers can surface the full
// diagnostics; LaTeX writes most errors to stdout, not stderr.
type CompileError struct {
	Engine string
	Stdout string
	Stderr string
	cause  error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Engine, ErrCompileFailed)
}

// Unwrap exposes both the sentinel and the underlying runner error, so
// errors.Is matches ErrCompileFailed as well as causes like
// context.Canceled or exec.ErrNotFound.
func (e *CompileError) Unwrap() []error {
	if e.cause == nil {
		return []error{ErrCompileFailed}
	}
	return []error{ErrCompileFailed, e.cause}
}

// texCompiler defines the contract for compiling a .tex file to PDF.
type texCompiler interface {
	Compile(ctx context.Context, texPath, outDir string) error
}

// latexCompiler compiles LaTeX by invoking an engine binary.
type latexCompiler struct {
	engine string
	runner CommandRunner
}

// newLatexCompiler creates a latexCompiler with a real command runner.
func newLatexCompiler(engine string) *latexCompiler {
	if engine == "" {
		engine = EnginePDFLaTeX
	}
	return &latexCompiler{engine: engine, runner: &ExecRunner{}}
}

// Compile runs the engine once, non-interactively, writing artifacts to
// outDir. A non-zero exit returns *CompileError with both captured
// streams. There is no retry: the run either produces a PDF or fails.
func (c *latexCompiler) Compile(ctx context.Context, texPath, outDir string) error {
	stdout, stderr, err := c.runner.Run(ctx, c.engine,
		"-interaction=nonstopmode",
		"-output-directory="+outDir,
		texPath,
	)
	if err != nil {
		return &CompileError{
			Engine: c.engine,
			Stdout: stdout,
			Stderr: stderr,
			cause:  err,
		}
	}
	return nil
}

// Compile-time interface checks.
var (
	_ CommandRunner = (*ExecRunner)(nil)
	_ texCompiler   = (*latexCompiler)(nil)
)
