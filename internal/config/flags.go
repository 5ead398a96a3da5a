package config

// This file binds command-line flags and merges them with the config file
// and environment. Flags are grouped into behavior, display, and utility.
// Negated flags (--no-color) are applied last so they win over everything.

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Binding ties a flag set to the Config it fills. Create it with
// [BindFlags] before parsing and call [Binding.Finish] after.
type Binding struct {
	fs      *pflag.FlagSet
	cfg     *Config
	negated negatedFlags
}

// negatedFlags holds boolean flags that are applied after parsing.
type negatedFlags struct {
	forceColor bool
	noColor    bool
}

// BindFlags registers every texorg flag on fs, writing into cfg.
func BindFlags(fs *pflag.FlagSet, cfg *Config) *Binding {
	b := &Binding{fs: fs, cfg: cfg}
	defineBehaviorFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, &b.negated)
	defineUtilityFlags(fs, cfg)
	return b
}

// defineBehaviorFlags registers keepnames, move, yes, subfolder, dry-run, pause.
func defineBehaviorFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.BoolVarP(&cfg.KeepNames, KeyKeepNames, "k", cfg.KeepNames, "Don't rename files after reorganizing")
	fs.BoolVarP(&cfg.Move, KeyMove, "m", cfg.Move, "Move files instead of copying (breaks texture paths in the .fbx)")
	fs.BoolVarP(&cfg.AssumeYes, KeyYes, "y", cfg.AssumeYes, "Answer yes to all prompts (may delete old output folders)")
	fs.StringVarP(&cfg.Subfolder, KeySubfolder, "s", cfg.Subfolder, "Name of the output folder (default: .fbx name or \"output\")")
	fs.BoolVarP(&cfg.DryRun, KeyDryRun, "n", cfg.DryRun, "Show what would be done without touching any file")
	fs.BoolVar(&cfg.PauseOnExit, KeyPause, cfg.PauseOnExit, "Wait for Enter before exiting")
}

// defineDisplayFlags registers verbose, color, log, report.
func defineDisplayFlags(fs *pflag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.CountVarP(&cfg.Verbosity, KeyVerbose, "v", "Logging verbosity (-v info, -vv debug)")
	fs.BoolVar(&n.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&n.noColor, "no-color", false, "Disable colored logs")
	fs.StringVarP(&cfg.LogFile, KeyLog, "l", cfg.LogFile, "Append logs to file (rotated)")
	fs.StringVar(&cfg.ReportFile, KeyReport, cfg.ReportFile, "Write a YAML report of the run to file")
}

// defineUtilityFlags registers config and codes.
func defineUtilityFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.ConfigFile, "config", cfg.ConfigFile, "Config file (default: <user config dir>/texorg/config.yaml)")
	fs.BoolVar(&cfg.ShowCodes, "codes", false, "Print the part and image code tables and exit")
}

// Finish completes configuration after the flag set was parsed: it merges
// the config file and environment, applies negated flags, and takes the
// source directory from the positional args.
func (b *Binding) Finish(args []string) error {
	if err := Load(b.cfg, b.fs); err != nil {
		return err
	}
	applyNegatedFlags(b.cfg, &b.negated)
	return parsePositionalArgs(args, b.cfg)
}

// applyNegatedFlags copies negated and override flag values into cfg.
func applyNegatedFlags(cfg *Config, n *negatedFlags) {
	if n.noColor {
		cfg.ColorMode = ColorNever
	} else if n.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// parsePositionalArgs sets SourceDir from the optional positional arg.
func parsePositionalArgs(args []string, cfg *Config) error {
	switch len(args) {
	case 0:
		return nil
	case 1:
		cfg.SourceDir = NormalizeDirArg(args[0])
		return nil
	default:
		return fmt.Errorf("expected at most one path, got %d", len(args))
	}
}
