package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Configure GOMAXPROCS for container environments.
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	ctx, stop := notifyContext(context.Background())
	defer stop()

	os.Exit(run(ctx, os.Args, DefaultEnv()))
}

// run dispatches the top-level command and returns the process exit code.
func run(ctx context.Context, args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	switch args[1] {
	case "generate":
		return runGenerateCmd(ctx, args[2:], env)
	case "doctor":
		return runDoctorCmd(args[2:], env)
	case "version":
		fmt.Fprintln(env.Stdout, Version)
		return ExitSuccess
	case "help", "--help", "-h":
		runHelp(args[2:], env)
		return ExitSuccess
	default:
		// Bare invocation: treat everything as generate arguments, so
		// `cv2pdf data/resume.yaml` works without the subcommand.
		return runGenerateCmd(ctx, args[1:], env)
	}
}
