// Package check validates the source folder before the batch starts and
// asks for it interactively when it was not given on the command line.
package check

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/backmassage/texorg/internal/config"
)

// Sentinel errors returned by ValidateSource and ResolveSource.
var (
	ErrSourceMissing  = errors.New("no source folder given")
	ErrSourceNotFound = errors.New("source folder does not exist")
	ErrSourceNotDir   = errors.New("source path is not a folder")
)

// LineReader reads one answer from the user.
type LineReader interface {
	Line(label string) (string, error)
}

// ResolveSource returns the absolute source folder. When cfg.SourceDir is
// empty the user is asked for it. The result is stored back in cfg.
func ResolveSource(cfg *config.Config, in LineReader) (string, error) {
	if cfg.SourceDir == "" && in != nil {
		answer, err := in.Line("Enter the path to the folder containing your images:")
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrSourceMissing, err)
		}
		cfg.SourceDir = config.NormalizeDirArg(answer)
	}
	if cfg.SourceDir == "" {
		return "", ErrSourceMissing
	}
	if err := ValidateSource(cfg.SourceDir); err != nil {
		return "", err
	}
	abs, err := filepath.Abs(cfg.SourceDir)
	if err != nil {
		return "", err
	}
	cfg.SourceDir = abs
	return abs, nil
}

// ValidateSource checks that path exists and is a directory.
func ValidateSource(path string) error {
	fi, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %q", ErrSourceNotFound, path)
		}
		return fmt.Errorf("stat source: %w", err)
	}
	if !fi.IsDir() {
		return fmt.Errorf("%w: %q", ErrSourceNotDir, path)
	}
	return nil
}
