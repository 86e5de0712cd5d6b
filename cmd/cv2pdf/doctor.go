package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status  string       `json:"status"` // "ready", "errors"
	Engines []engineInfo `json:"engines"`
	System  systemInfo   `json:"system"`
	Errors  []string     `json:"errors,omitempty"`
}

// engineInfo holds LaTeX engine detection results.
type engineInfo struct {
	Name  string `json:"name"`
	Found bool   `json:"found"`
	Path  string `json:"path,omitempty"`
}

// systemInfo holds system check results.
type systemInfo struct {
	OS           string `json:"os"`
	Arch         string `json:"arch"`
	TempWritable bool   `json:"temp_writable"`
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = at least one engine available, 1 = errors found.
func runDoctorCmd(args []string, env *Environment) int {
	jsonOutput := false
	for _, arg := range args {
		if arg == "--json" {
			jsonOutput = true
		}
	}

	result := runDoctor(env)

	if jsonOutput {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == "errors" {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor(env *Environment) *doctorResult {
	result := &doctorResult{
		Status: "ready",
		System: systemInfo{
			OS:           runtime.GOOS,
			Arch:         runtime.GOARCH,
			TempWritable: tempWritable(),
		},
	}

	anyFound := false
	for _, name := range []string{"pdflatex", "xelatex", "lualatex"} {
		info := engineInfo{Name: name}
		if path, err := env.LookPath(name); err == nil {
			info.Found = true
			info.Path = path
			anyFound = true
		}
		result.Engines = append(result.Engines, info)
	}

	if !anyFound {
		result.Errors = append(result.Errors, "no LaTeX engine found on PATH (install TeX Live or MiKTeX)")
	}
	if !result.System.TempWritable {
		result.Errors = append(result.Errors, "temp directory is not writable")
	}
	if len(result.Errors) > 0 {
		result.Status = "errors"
	}

	return result
}

// tempWritable checks that the temp directory accepts new files.
func tempWritable() bool {
	f, err := os.CreateTemp("", "cv2pdf-doctor-*")
	if err != nil {
		return false
	}
	name := f.Name()
	_ = f.Close()
	_ = os.Remove(name)
	return true
}

// printDoctorResult writes a human-readable report.
func printDoctorResult(w io.Writer, result *doctorResult) {
	fmt.Fprintf(w, "Status: %s\n\n", result.Status)

	fmt.Fprintln(w, "LaTeX engines:")
	for _, engine := range result.Engines {
		if engine.Found {
			fmt.Fprintf(w, "  %-10s %s\n", engine.Name, engine.Path)
		} else {
			fmt.Fprintf(w, "  %-10s not found\n", engine.Name)
		}
	}

	fmt.Fprintf(w, "\nSystem: %s/%s, temp writable: %v\n", result.System.OS, result.System.Arch, result.System.TempWritable)

	if len(result.Errors) > 0 {
		fmt.Fprintln(w)
		for _, e := range result.Errors {
			fmt.Fprintf(w, "Error: %s\n", e)
		}
	}
}
