package bootstrap

import "fmt"

// ProbeInterpreter checks that the interpreter can be spawned by running its
// version query and returns the captured output. Only a spawn failure is an
// error; the exit status of the version query itself is not inspected.
func ProbeInterpreter(runner CommandRunner, interpreter string) (string, error) {
	result, err := runner.Run([]string{interpreter, "--version"})
	if err != nil {
		return "", fmt.Errorf("interpreter %q is not installed or not on PATH: %w", interpreter, err)
	}
	return result.Output, nil
}
