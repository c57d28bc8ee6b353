package bootstrap

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func tempMarkers(t *testing.T) Markers {
	t.Helper()
	dir := t.TempDir()
	return Markers{
		InstalledPath: filepath.Join(dir, installedMarkerName),
		RevisionPath:  filepath.Join(dir, revisionMarkerName),
	}
}

func TestDecideInstallFirstRun(t *testing.T) {
	markers := tempMarkers(t)
	// The sentinel's absence alone forces an install, even when no revision
	// information exists.
	decision := DecideInstall(markers, fakeProber{err: ErrNoRevision})
	if !decision.Install {
		t.Fatalf("expected install on first run, got %#v", decision)
	}
}

func TestDecideInstallNoRecordedRevision(t *testing.T) {
	markers := tempMarkers(t)
	if err := markers.MarkInstalled(); err != nil {
		t.Fatalf("MarkInstalled: %v", err)
	}
	decision := DecideInstall(markers, fakeProber{revision: "abc123"})
	if !decision.Install {
		t.Fatalf("expected install with no recorded revision, got %#v", decision)
	}
	if decision.Revision != "abc123" {
		t.Fatalf("decision revision = %q, want abc123", decision.Revision)
	}
}

func TestDecideInstallRevisionUnchanged(t *testing.T) {
	markers := tempMarkers(t)
	if err := markers.MarkInstalled(); err != nil {
		t.Fatalf("MarkInstalled: %v", err)
	}
	// Surrounding whitespace in the marker must not defeat the comparison.
	if err := os.WriteFile(markers.RevisionPath, []byte("  abc123\n\n"), 0o644); err != nil {
		t.Fatalf("write revision marker: %v", err)
	}
	decision := DecideInstall(markers, fakeProber{revision: "abc123"})
	if decision.Install {
		t.Fatalf("expected skip for unchanged revision, got %#v", decision)
	}
}

func TestDecideInstallRevisionChanged(t *testing.T) {
	markers := tempMarkers(t)
	if err := markers.MarkInstalled(); err != nil {
		t.Fatalf("MarkInstalled: %v", err)
	}
	if err := markers.RecordRevision("abc123"); err != nil {
		t.Fatalf("RecordRevision: %v", err)
	}
	decision := DecideInstall(markers, fakeProber{revision: "def456"})
	if !decision.Install {
		t.Fatalf("expected install for changed revision, got %#v", decision)
	}
	if decision.Revision != "def456" {
		t.Fatalf("decision revision = %q, want def456", decision.Revision)
	}
}

func TestDecideInstallProbeFailureAssumesCurrent(t *testing.T) {
	markers := tempMarkers(t)
	if err := markers.MarkInstalled(); err != nil {
		t.Fatalf("MarkInstalled: %v", err)
	}
	if err := markers.RecordRevision("abc123"); err != nil {
		t.Fatalf("RecordRevision: %v", err)
	}
	decision := DecideInstall(markers, fakeProber{err: errors.New("git unavailable")})
	if decision.Install {
		t.Fatalf("expected skip when revision probe fails, got %#v", decision)
	}
}
