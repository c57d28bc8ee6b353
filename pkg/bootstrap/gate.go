package bootstrap

import "fmt"

// InstallDecision is the install gate's verdict plus the context needed to
// report it and to record markers afterwards.
type InstallDecision struct {
	Install bool
	Reason  string

	// Revision is the current revision identifier when the probe succeeded,
	// empty otherwise.
	Revision string
}

// DecideInstall evaluates the install gate. The decision depends only on the
// install sentinel, the recorded revision, and the revision probe outcome:
//
//   - sentinel absent: install (first run)
//   - revision unobtainable: skip (cannot judge staleness, assume current)
//   - no revision recorded: install
//   - recorded differs from current after trimming: install
//
// A failing probe is deliberately non-fatal; a launcher shipped without
// repository metadata keeps working with whatever was installed last.
func DecideInstall(markers Markers, prober RevisionProber) InstallDecision {
	if !markers.Installed() {
		return InstallDecision{Install: true, Reason: "first run"}
	}

	current, err := prober.CurrentRevision()
	if err != nil {
		return InstallDecision{Install: false, Reason: "no revision information; assuming requirements are current"}
	}

	recorded, ok := markers.RecordedRevision()
	if !ok {
		return InstallDecision{Install: true, Reason: "no recorded revision", Revision: current}
	}
	if recorded != current {
		return InstallDecision{
			Install:  true,
			Reason:   fmt.Sprintf("revision changed (%s -> %s)", shortRevision(recorded), shortRevision(current)),
			Revision: current,
		}
	}
	return InstallDecision{Install: false, Reason: "revision unchanged", Revision: current}
}

func shortRevision(revision string) string {
	if revision == "" {
		return "none"
	}
	if len(revision) > 12 {
		return revision[:12]
	}
	return revision
}
