// Package config holds runtime configuration: defaults, CLI flag binding,
// config file and environment loading, and validation.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Verbosity levels selected by repeating -v.
const (
	VerbosityWarn  = 0 // Warnings and errors only (default).
	VerbosityInfo  = 1 // -v
	VerbosityDebug = 2 // -vv
)

// DefaultSubfolder names the output folder when neither --subfolder nor an
// .fbx file provides one.
const DefaultSubfolder = "output"

// Config holds all runtime settings. It is populated by [DefaultConfig],
// then by the config file and environment, then by command-line flags,
// before being passed (by pointer) to packages that need it.
type Config struct {
	// Paths.
	SourceDir string // Positional arg; prompted for when empty.
	Subfolder string // Output folder name inside SourceDir. Empty: derived.

	// Behavior flags.
	KeepNames   bool // Keep original filenames instead of normalizing.
	Move        bool // Move instead of copy.
	AssumeYes   bool // Answer yes to every confirmation prompt.
	DryRun      bool // Decode and report only; touch nothing.
	PauseOnExit bool // Wait for Enter before exiting.

	// Display and logging.
	Verbosity  int       // Default: 0 (warnings only).
	ColorMode  ColorMode // Default: "auto".
	LogFile    string    // Optional rotating log file.
	ReportFile string    // Optional YAML run report.

	// Utility.
	ConfigFile string // Explicit config file; default search path otherwise.
	ShowCodes  bool   // Print the lookup tables and exit.
}

// DefaultConfig returns a Config with all defaults. Used as the base before
// [Binding.Finish] applies the config file, environment, and flags.
func DefaultConfig() Config {
	return Config{
		KeepNames:   false,
		Move:        false,
		AssumeYes:   false,
		DryRun:      false,
		PauseOnExit: false,
		Verbosity:   VerbosityWarn,
		ColorMode:   ColorAuto,
	}
}

// NormalizeDirArg cleans a directory argument the way it arrives from a
// shell or a drag-and-drop: surrounding whitespace and double quotes are
// removed, then trailing separators. The filesystem root is returned
// unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	path = strings.TrimSpace(strings.Trim(strings.TrimSpace(path), `"`))
	if path == "/" || path == string(filepath.Separator) {
		return path
	}
	return strings.TrimRight(path, "/"+string(filepath.Separator))
}

// Validate checks enum fields and the output folder name.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", c.ColorMode)
	}

	if c.Verbosity < 0 {
		return errors.New("verbosity must not be negative")
	}
	if c.Verbosity > VerbosityDebug {
		c.Verbosity = VerbosityDebug
	}

	if c.Subfolder != "" && !IsPlainFolderName(c.Subfolder) {
		return fmt.Errorf("invalid subfolder %q (must be a plain folder name)", c.Subfolder)
	}
	return nil
}

// IsPlainFolderName reports whether name can be joined to a folder without
// leaving it: non-empty, not "." or "..", and free of path separators.
func IsPlainFolderName(name string) bool {
	return name != "" && name != "." && name != ".." &&
		!strings.ContainsAny(name, `/\`)
}
