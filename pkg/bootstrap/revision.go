package bootstrap

import (
	"errors"
	"fmt"
	"strings"

	git "github.com/go-git/go-git/v5"
)

// ErrNoRevision reports that no revision identifier could be determined,
// typically because the launcher runs outside a git checkout (a packaged
// release). The install gate treats this as "assume up to date".
var ErrNoRevision = errors.New("no revision information available")

// RevisionProber obtains the current revision identifier of the source tree.
type RevisionProber interface {
	CurrentRevision() (string, error)
}

// GitProber reads HEAD from the repository enclosing Dir, searching parent
// directories the way the git CLI does.
type GitProber struct {
	Dir string
}

func (p GitProber) CurrentRevision() (string, error) {
	repo, err := git.PlainOpenWithOptions(p.Dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("%w: open repository at %s: %v", ErrNoRevision, p.Dir, err)
	}
	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("%w: resolve HEAD: %v", ErrNoRevision, err)
	}
	revision := strings.TrimSpace(head.Hash().String())
	if revision == "" {
		return "", fmt.Errorf("%w: empty HEAD hash", ErrNoRevision)
	}
	return revision, nil
}
