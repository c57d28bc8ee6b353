package bootstrap

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// CommandResult captures the outcome of a finished subprocess.
type CommandResult struct {
	ExitCode int
	Output   string
}

// CommandRunner spawns subprocesses from argument vectors. Run captures
// combined output; RunInteractive leaves the child attached to the launcher's
// stdio and reports only the exit status. Both block until the child exits.
// A returned error means the process could not be spawned; a non-zero exit
// status is not an error.
type CommandRunner interface {
	Run(argv []string) (CommandResult, error)
	RunInteractive(argv []string) (int, error)
}

// SystemRunner executes commands on the host via os/exec. Argument vectors
// are passed to the spawn primitive directly; no shell is involved.
type SystemRunner struct{}

func (SystemRunner) Run(argv []string) (CommandResult, error) {
	if len(argv) == 0 {
		return CommandResult{}, errors.New("empty command")
	}
	cmd := exec.Command(argv[0], argv[1:]...)
	output, err := cmd.CombinedOutput()
	result := CommandResult{Output: strings.TrimSpace(string(output))}
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return CommandResult{}, fmt.Errorf("spawn %s: %w", argv[0], err)
		}
		result.ExitCode = exitErr.ExitCode()
	}
	return result, nil
}

func (SystemRunner) RunInteractive(argv []string) (int, error) {
	if len(argv) == 0 {
		return 0, errors.New("empty command")
	}
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return 0, fmt.Errorf("spawn %s: %w", argv[0], err)
		}
		return exitErr.ExitCode(), nil
	}
	return 0, nil
}
