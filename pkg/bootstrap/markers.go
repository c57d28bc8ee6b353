package bootstrap

import (
	"fmt"
	"os"
	"strings"
)

// Markers is the pair of files that remember prior launch outcomes across
// runs: a sentinel whose existence means requirements were installed at least
// once, and the revision recorded at the time of the last install.
type Markers struct {
	InstalledPath string
	RevisionPath  string
}

// Installed reports whether the install sentinel exists.
func (m Markers) Installed() bool {
	info, err := os.Stat(m.InstalledPath)
	return err == nil && !info.IsDir()
}

// RecordedRevision returns the revision stored by the last successful
// install. The second result is false when no revision was recorded.
func (m Markers) RecordedRevision() (string, bool) {
	data, err := os.ReadFile(m.RevisionPath)
	if err != nil {
		return "", false
	}
	return strings.TrimSpace(string(data)), true
}

// MarkInstalled creates the install sentinel. The content is irrelevant;
// only existence is checked on later runs.
func (m Markers) MarkInstalled() error {
	if err := os.WriteFile(m.InstalledPath, []byte("installed\n"), 0o644); err != nil {
		return fmt.Errorf("write install marker %s: %w", m.InstalledPath, err)
	}
	return nil
}

// RecordRevision overwrites the revision marker with a single trimmed line.
func (m Markers) RecordRevision(revision string) error {
	line := strings.TrimSpace(revision) + "\n"
	if err := os.WriteFile(m.RevisionPath, []byte(line), 0o644); err != nil {
		return fmt.Errorf("write revision marker %s: %w", m.RevisionPath, err)
	}
	return nil
}
