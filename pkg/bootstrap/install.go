package bootstrap

import "fmt"

// InstallDependencies runs the package installer against the manifest and
// returns the captured output. A non-zero installer exit is an error; the
// caller must not write markers in that case so the next run retries.
func InstallDependencies(runner CommandRunner, installer, manifestPath string) (string, error) {
	result, err := runner.Run([]string{installer, "install", "-r", manifestPath})
	if err != nil {
		return "", fmt.Errorf("run installer: %w", err)
	}
	if result.ExitCode != 0 {
		return result.Output, fmt.Errorf("%s install -r %s exited with status %d", installer, manifestPath, result.ExitCode)
	}
	return result.Output, nil
}
