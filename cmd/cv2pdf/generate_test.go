package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	cv2pdf "github.com/alnah/go-cv2pdf"
	"github.com/alnah/go-cv2pdf/internal/assets"
)

// fakeGenerator records inputs and returns scripted results.
type fakeGenerator struct {
	gotInput cv2pdf.Input
	result   *cv2pdf.Result
	err      error
}

func (f *fakeGenerator) Generate(_ context.Context, input cv2pdf.Input) (*cv2pdf.Result, error) {
	f.gotInput = input
	if f.err != nil {
		return nil, f.err
	}
	if f.result != nil {
		return f.result, nil
	}
	return &cv2pdf.Result{TexPath: "output/resume.tex", PDFPath: "output/resume.pdf"}, nil
}

// testEnv returns an Environment with buffered output and a fake generator.
func testEnv(gen *fakeGenerator) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	env := &Environment{
		Stdout:    &stdout,
		Stderr:    &stderr,
		Templates: assets.NewEmbeddedLoader(),
		NewGenerator: func(string) Generator {
			return gen
		},
		LookPath: func(string) (string, error) { return "", errors.New("not found") },
	}
	return env, &stdout, &stderr
}

func writeDataFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "resume.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const testData = `name: Jane Doe
title: Platform Engineer
skills:
  - Go
  - LaTeX
`

// ---------------------------------------------------------------------------
// TestRunGenerateCmd - End-to-end CLI flow with fake generator
// ---------------------------------------------------------------------------

func TestRunGenerateCmdSuccess(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{}
	env, stdout, _ := testEnv(gen)
	dataPath := writeDataFile(t, testData)

	code := runGenerateCmd(context.Background(), []string{dataPath}, env)
	if code != ExitSuccess {
		t.Fatalf("exit code = %d, want %d", code, ExitSuccess)
	}

	if !strings.Contains(stdout.String(), "output/resume.pdf") {
		t.Errorf("stdout = %q, want path of written PDF", stdout.String())
	}

	// Data decoded and handed to the service
	doc, ok := gen.gotInput.Data.(map[string]any)
	if !ok {
		t.Fatalf("Data = %T, want map[string]any", gen.gotInput.Data)
	}
	if doc["name"] != "Jane Doe" {
		t.Errorf("data name = %v, want Jane Doe", doc["name"])
	}
	if !strings.Contains(gen.gotInput.Template, `\documentclass`) {
		t.Error("template content not loaded from embedded assets")
	}
}

func TestRunGenerateCmdFlags(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{}
	env, _, _ := testEnv(gen)
	dataPath := writeDataFile(t, testData)

	code := runGenerateCmd(context.Background(), []string{
		"-o", "build", "--jobname", "cv", "--tex-only", "-t", "compact", dataPath,
	}, env)
	if code != ExitSuccess {
		t.Fatalf("exit code = %d, want %d", code, ExitSuccess)
	}

	if gen.gotInput.OutDir != "build" {
		t.Errorf("OutDir = %q, want build", gen.gotInput.OutDir)
	}
	if gen.gotInput.JobName != "cv" {
		t.Errorf("JobName = %q, want cv", gen.gotInput.JobName)
	}
	if !gen.gotInput.TexOnly {
		t.Error("TexOnly = false, want true")
	}
}

func TestRunGenerateCmdCompileFailure(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{
		err: &cv2pdf.CompileError{
			Engine: "pdflatex",
			Stdout: "! Undefined control sequence.",
			Stderr: "pdflatex: fatal",
		},
	}
	env, _, stderr := testEnv(gen)
	dataPath := writeDataFile(t, testData)

	code := runGenerateCmd(context.Background(), []string{dataPath}, env)
	if code != ExitGeneral {
		t.Fatalf("exit code = %d, want %d", code, ExitGeneral)
	}

	out := stderr.String()
	if !strings.Contains(out, "! Undefined control sequence.") {
		t.Errorf("stderr missing engine stdout:\n%s", out)
	}
	if !strings.Contains(out, "pdflatex: fatal") {
		t.Errorf("stderr missing engine stderr:\n%s", out)
	}
}

func TestRunGenerateCmdErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     func(t *testing.T) []string
		wantCode int
	}{
		{
			name:     "no input",
			args:     func(t *testing.T) []string { return nil },
			wantCode: ExitIO,
		},
		{
			name: "missing data file",
			args: func(t *testing.T) []string {
				return []string{filepath.Join(t.TempDir(), "nope.yaml")}
			},
			wantCode: ExitIO,
		},
		{
			name: "unknown flag",
			args: func(t *testing.T) []string {
				return []string{"--bogus"}
			},
			wantCode: ExitUsage,
		},
		{
			name: "invalid engine",
			args: func(t *testing.T) []string {
				return []string{"--engine", "groff", writeDataFile(t, testData)}
			},
			wantCode: ExitUsage,
		},
		{
			name: "unknown template name",
			args: func(t *testing.T) []string {
				return []string{"-t", "baroque", writeDataFile(t, testData)}
			},
			wantCode: ExitUsage,
		},
		{
			name: "missing config",
			args: func(t *testing.T) []string {
				return []string{"-c", filepath.Join(t.TempDir(), "cfg.yaml"), writeDataFile(t, testData)}
			},
			wantCode: ExitUsage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			env, _, _ := testEnv(&fakeGenerator{})
			code := runGenerateCmd(context.Background(), tt.args(t), env)
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d", code, tt.wantCode)
			}
		})
	}
}

func TestLoadTemplateFromPath(t *testing.T) {
	t.Parallel()

	content := `\documentclass{article}\begin{document}<< .name >>\end{document}`
	path := filepath.Join(t.TempDir(), "mine.tex.tmpl")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	env, _, _ := testEnv(&fakeGenerator{})
	got, err := loadTemplate(path, env.Templates)
	if err != nil {
		t.Fatalf("loadTemplate() unexpected error: %v", err)
	}
	if got != content {
		t.Errorf("loadTemplate() = %q, want file content", got)
	}

	if _, err := loadTemplate(filepath.Join(t.TempDir(), "nope.tmpl"), env.Templates); !errors.Is(err, ErrReadTemplate) {
		t.Errorf("loadTemplate(missing path) error = %v, want ErrReadTemplate", err)
	}
}

func TestRunGenerateCmdTemplateDir(t *testing.T) {
	t.Parallel()

	writeCustom := func(t *testing.T, name, content string) string {
		t.Helper()
		dir := t.TempDir()
		path := filepath.Join(dir, name+".tex.tmpl")
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		return dir
	}

	t.Run("custom shadows built-in", func(t *testing.T) {
		t.Parallel()
		custom := `\documentclass{scrartcl}\begin{document}<< .name >>\end{document}`
		dir := writeCustom(t, "classic", custom)

		gen := &fakeGenerator{}
		env, _, _ := testEnv(gen)
		dataPath := writeDataFile(t, testData)

		code := runGenerateCmd(context.Background(), []string{
			"--template-dir", dir, "-t", "classic", dataPath,
		}, env)
		if code != ExitSuccess {
			t.Fatalf("exit code = %d, want %d", code, ExitSuccess)
		}
		if gen.gotInput.Template != custom {
			t.Errorf("Template = %q, want content from template directory", gen.gotInput.Template)
		}
	})

	t.Run("falls back to built-in", func(t *testing.T) {
		t.Parallel()
		dir := writeCustom(t, "mine", `\documentclass{article}`)

		gen := &fakeGenerator{}
		env, _, _ := testEnv(gen)
		dataPath := writeDataFile(t, testData)

		code := runGenerateCmd(context.Background(), []string{
			"--template-dir", dir, "-t", "classic", dataPath,
		}, env)
		if code != ExitSuccess {
			t.Fatalf("exit code = %d, want %d", code, ExitSuccess)
		}
		if !strings.Contains(gen.gotInput.Template, `\documentclass`) {
			t.Error("built-in template not loaded when name absent from directory")
		}
		if gen.gotInput.Template == `\documentclass{article}` {
			t.Error("loaded directory template instead of the built-in")
		}
	})

	t.Run("invalid directory", func(t *testing.T) {
		t.Parallel()
		env, _, _ := testEnv(&fakeGenerator{})
		dataPath := writeDataFile(t, testData)

		code := runGenerateCmd(context.Background(), []string{
			"--template-dir", filepath.Join(t.TempDir(), "nope"), dataPath,
		}, env)
		if code != ExitUsage {
			t.Errorf("exit code = %d, want %d", code, ExitUsage)
		}
	})
}
