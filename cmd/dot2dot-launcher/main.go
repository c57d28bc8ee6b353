package main

import (
	"fmt"
	"os"
	"path/filepath"

	"dot2dot/launcher-go/pkg/bootstrap"
)

// main forwards every argument to the entry script untouched; the launcher
// defines no flags of its own.
func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	exeDir, err := bootstrap.ExecutableDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	cfg, err := bootstrap.LoadConfig(filepath.Join(exeDir, bootstrap.ConfigFileName))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	b := &bootstrap.Bootstrap{
		Layout: bootstrap.ResolveLayout(exeDir, cfg),
		Config: cfg,
		Runner: bootstrap.SystemRunner{},
		Prober: bootstrap.GitProber{Dir: exeDir},
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	return b.Run(args)
}
