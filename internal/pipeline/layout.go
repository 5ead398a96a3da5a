package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/backmassage/texorg/internal/logging"
	"github.com/backmassage/texorg/internal/prompt"
	"github.com/backmassage/texorg/internal/texname"
)

// Confirmer answers yes/no questions before destructive steps.
// *prompt.Prompter implements it.
type Confirmer interface {
	Confirm(question string, def prompt.Default) bool
}

// Layout owns the output folder tree of one run: the output root and one
// folder per part type. Part folders are created the first time a part
// type is seen. A folder left over from an earlier run is deleted only
// after confirmation; when the user declines, it is kept and new files are
// written into it.
type Layout struct {
	root    string
	confirm Confirmer
	log     *logging.Logger
	dryRun  bool
	created map[texname.PartType]bool
}

// NewLayout creates a Layout rooted at root. With dryRun set, nothing on
// disk is deleted or created.
func NewLayout(root string, confirm Confirmer, log *logging.Logger, dryRun bool) *Layout {
	return &Layout{
		root:    root,
		confirm: confirm,
		log:     log,
		dryRun:  dryRun,
		created: make(map[texname.PartType]bool),
	}
}

// Root returns the output root path.
func (l *Layout) Root() string { return l.root }

// Prepare readies the output root.
func (l *Layout) Prepare() error {
	return l.prepareDir(l.root)
}

// EnsurePartDir returns the folder for part, preparing it on first use.
func (l *Layout) EnsurePartDir(part texname.PartType) (string, error) {
	dir := filepath.Join(l.root, string(part))
	if l.created[part] {
		return dir, nil
	}
	if err := l.prepareDir(dir); err != nil {
		return "", err
	}
	l.created[part] = true
	return dir, nil
}

// prepareDir offers to delete an existing dir, then creates it.
func (l *Layout) prepareDir(dir string) error {
	name := filepath.Base(dir)
	fi, err := os.Stat(dir)
	switch {
	case err == nil && !fi.IsDir():
		return fmt.Errorf("output path %q exists and is not a folder", dir)
	case err == nil:
		if l.dryRun {
			l.log.Info("[DRY] Existing output folder %q would be replaced", name)
			return nil
		}
		q := fmt.Sprintf("Delete existing output folder %q?", name)
		if l.confirm.Confirm(q, prompt.DefaultYes) {
			if err := os.RemoveAll(dir); err != nil {
				return fmt.Errorf("delete output folder: %w", err)
			}
			l.log.Debug("Deleted %q", dir)
		} else {
			l.log.Info("Keeping existing folder %q", name)
		}
	case !os.IsNotExist(err):
		return fmt.Errorf("stat output folder: %w", err)
	}
	if l.dryRun {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output folder: %w", err)
	}
	return nil
}
