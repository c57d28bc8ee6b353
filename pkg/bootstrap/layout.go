package bootstrap

import (
	"fmt"
	"os"
	"path/filepath"
)

// Layout holds every filesystem path the launcher touches, all resolved
// against the executable's directory so the launcher behaves the same no
// matter where it is invoked from.
type Layout struct {
	ExeDir        string
	TempDir       string
	ManifestPath  string
	EntryPath     string
	InstalledPath string
	RevisionPath  string
}

const (
	installedMarkerName = ".installed"
	revisionMarkerName  = ".git_last_commit"
)

// ExecutableDir reports the directory containing the running executable.
func ExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	return filepath.Dir(exe), nil
}

// ResolveLayout derives the launcher's paths from the executable directory
// and the configuration. Relative config paths are taken relative to exeDir;
// absolute ones are used as-is.
func ResolveLayout(exeDir string, cfg Config) Layout {
	tempDir := resolveAgainst(exeDir, cfg.TempDir)
	return Layout{
		ExeDir:        exeDir,
		TempDir:       tempDir,
		ManifestPath:  resolveAgainst(exeDir, cfg.Manifest),
		EntryPath:     resolveAgainst(exeDir, cfg.Entry),
		InstalledPath: filepath.Join(tempDir, installedMarkerName),
		RevisionPath:  filepath.Join(tempDir, revisionMarkerName),
	}
}

// EnsureTempDir creates the marker directory if it does not exist yet.
func (l Layout) EnsureTempDir() error {
	if err := os.MkdirAll(l.TempDir, 0o755); err != nil {
		return fmt.Errorf("create temp directory %s: %w", l.TempDir, err)
	}
	return nil
}

// Markers returns the persisted marker pair for this layout.
func (l Layout) Markers() Markers {
	return Markers{InstalledPath: l.InstalledPath, RevisionPath: l.RevisionPath}
}

func resolveAgainst(base, path string) string {
	path = filepath.FromSlash(path)
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(base, path)
}
