package bootstrap

import (
	"fmt"
	"io"
)

// Bootstrap drives the launch sequence end to end. Every step runs
// synchronously and a failed step aborts the remainder.
type Bootstrap struct {
	Layout Layout
	Config Config
	Runner CommandRunner
	Prober RevisionProber

	// Stdout receives progress lines, Stderr the single fatal diagnostic.
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes probe, install gate, conditional install, and launch, in that
// order, and returns the process exit status: 0 on success, the entry
// script's own status when it exits non-zero, and 1 for any launcher-level
// failure.
func (b *Bootstrap) Run(args []string) int {
	version, err := ProbeInterpreter(b.Runner, b.Config.Interpreter)
	if err != nil {
		fmt.Fprintf(b.Stderr, "error: %v\n", err)
		return 1
	}
	fmt.Fprintf(b.Stdout, "interpreter found: %s\n", version)

	if err := b.Layout.EnsureTempDir(); err != nil {
		fmt.Fprintf(b.Stderr, "error: %v\n", err)
		return 1
	}

	markers := b.Layout.Markers()
	decision := DecideInstall(markers, b.Prober)
	if decision.Install {
		fmt.Fprintf(b.Stdout, "installing requirements (%s)...\n", decision.Reason)
		output, err := InstallDependencies(b.Runner, b.Config.Installer, b.Layout.ManifestPath)
		if err != nil {
			if output != "" {
				fmt.Fprintln(b.Stdout, output)
			}
			fmt.Fprintf(b.Stderr, "error: failed to install requirements: %v\n", err)
			return 1
		}
		if output != "" {
			fmt.Fprintln(b.Stdout, output)
		}
		b.recordInstall(markers, decision.Revision)
	} else {
		fmt.Fprintf(b.Stdout, "requirements already installed, skipping installation (%s)\n", decision.Reason)
	}

	return b.launch(args)
}

// recordInstall persists both markers after a successful install. The writes
// are best-effort and sequential: a failure is reported but does not abort
// the launch, and the next run simply re-evaluates whatever persisted.
func (b *Bootstrap) recordInstall(markers Markers, revision string) {
	if err := markers.MarkInstalled(); err != nil {
		fmt.Fprintf(b.Stderr, "warning: %v\n", err)
	}
	if revision == "" {
		// First run skips the gate's probe; fetch the revision now. A probe
		// failure leaves the marker empty, matching a tree with no history.
		if current, err := b.Prober.CurrentRevision(); err == nil {
			revision = current
		}
	}
	if err := markers.RecordRevision(revision); err != nil {
		fmt.Fprintf(b.Stderr, "warning: %v\n", err)
	}
}

// launch runs the entry script with the forwarded arguments attached to the
// launcher's stdio and passes the child's exit status through.
func (b *Bootstrap) launch(args []string) int {
	argv := make([]string, 0, 2+len(args))
	argv = append(argv, b.Config.Interpreter, b.Layout.EntryPath)
	argv = append(argv, args...)

	fmt.Fprintf(b.Stdout, "launching %s\n", b.Layout.EntryPath)
	code, err := b.Runner.RunInteractive(argv)
	if err != nil {
		fmt.Fprintf(b.Stderr, "error: failed to launch entry script: %v\n", err)
		return 1
	}
	if code != 0 {
		fmt.Fprintf(b.Stderr, "error: entry script exited with status %d\n", code)
		return code
	}
	return 0
}
