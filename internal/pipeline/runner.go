package pipeline

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/backmassage/texorg/internal/config"
	"github.com/backmassage/texorg/internal/display"
	"github.com/backmassage/texorg/internal/logging"
	"github.com/backmassage/texorg/internal/texname"
)

// Reasons a file is skipped. Neither aborts the batch.
var (
	ErrUnrecognizedFilename = errors.New("unrecognized filename")
	ErrUnsupportedExtension = errors.New("unsupported file type")
)

// Run is the top-level batch entry point. It lists cfg.SourceDir, prepares
// the output root, processes each file in name order, and returns aggregate
// stats. The returned error is set only when the batch could not start
// (listing or output root failure); per-file failures are counted in
// RunStats.Failed. Cancelling ctx stops the batch between files.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger, confirm Confirmer) (RunStats, error) {
	var stats RunStats

	files, err := Discover(cfg.SourceDir)
	if err != nil {
		return stats, fmt.Errorf("list source folder: %w", err)
	}
	stats.Total = len(files)
	stats.Images = countKind(files, KindImage)
	stats.Meshes = countKind(files, KindMesh)

	root := filepath.Join(cfg.SourceDir, OutputFolderName(cfg.Subfolder, files))
	stats.OutputDir = root

	logBatchHeader(cfg, log, &stats)

	layout := NewLayout(root, confirm, log, cfg.DryRun)
	if err := layout.Prepare(); err != nil {
		return stats, err
	}
	tracker := texname.NewCollisionTracker()

	for _, f := range files {
		if ctx.Err() != nil {
			log.Warn("Interrupted")
			break
		}
		stats.record(processFile(cfg, log, f, layout, tracker, &stats))
	}

	logSummary(cfg, log, &stats)
	return stats, nil
}

// processFile handles one source file: classify, decode, place, transfer.
func processFile(
	cfg *config.Config,
	log *logging.Logger,
	f SourceFile,
	layout *Layout,
	tracker *texname.CollisionTracker,
	stats *RunStats,
) FileOutcome {
	out := FileOutcome{Source: f.Path}

	switch f.Kind {
	case KindMesh:
		out.Outcome = OutcomeMesh
		return out
	case KindOther:
		out.Outcome = OutcomeUnsupported
		out.Err = fmt.Errorf("%w: %q", ErrUnsupportedExtension, f.Ext)
		log.Warn("Ignoring unsupported file type %q (%q)", f.Ext, f.Name)
		return out
	}

	log.Debug("Processing %q...", f.Name)
	result, rule, err := decodeImage(f.Name)
	if err != nil {
		out.Outcome = OutcomeUnrecognized
		out.Err = err
		log.Warn("Unknown file %q, ignoring...", f.Name)
		return out
	}
	out.Result = result
	log.Debug("Part: %s (%s name)", result.Title(), rule)

	if _, err := layout.EnsurePartDir(result.PartType); err != nil {
		out.Outcome = OutcomeFailed
		out.Err = err
		log.Error("Cannot prepare folder for %s: %v", result.PartType, err)
		return out
	}
	name := result.OutputName(f.Name, cfg.KeepNames)
	dest := texname.OutputPath(layout.Root(), result, f.Name, cfg.KeepNames)
	out.Dest = dest

	if prev, replaced := tracker.Claim(f.Path, dest); replaced {
		stats.Collisions++
		log.Debug("%q overwrites the output of %q", f.Name, filepath.Base(prev))
	}

	if cfg.DryRun {
		out.Outcome = OutcomePlanned
		out.Bytes = f.Size
		log.Info("[DRY] %s -> %s", f.Name, filepath.Join(string(result.PartType), name))
		return out
	}

	n, err := Transfer(f.Path, dest, cfg.Move)
	if err != nil {
		out.Outcome = OutcomeFailed
		out.Err = err
		log.Error("Cannot write %q: %v", f.Name, err)
		return out
	}
	out.Bytes = n
	out.Outcome = OutcomeCopied
	if cfg.Move {
		out.Outcome = OutcomeMoved
	}
	log.Debug("Output to %q", filepath.Join(string(result.PartType), name))
	return out
}

// decodeImage decodes an image file name or reports it as unrecognized.
// The grammar name is returned for logging.
func decodeImage(name string) (texname.Result, string, error) {
	r, rule := texname.DecodeRule(name)
	if !r.OK() {
		return r, rule, fmt.Errorf("%w: %q", ErrUnrecognizedFilename, name)
	}
	return r, rule, nil
}

// --- Logging helpers ---

func logBatchHeader(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	log.Print("Processing %q...", cfg.SourceDir)
	log.Info("Found %d file(s): %d image(s), %d .fbx file(s)", stats.Total, stats.Images, stats.Meshes)
	log.Info("Output: %s", stats.OutputDir)
	mode := "copy"
	if cfg.Move {
		mode = "move"
	}
	names := "normalized"
	if cfg.KeepNames {
		names = "original"
	}
	log.Info("Mode: %s, names: %s", mode, names)
	if cfg.DryRun {
		log.Warn("DRY RUN: no files will be written")
	}
}

func logSummary(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	verb := "copied"
	switch {
	case cfg.DryRun:
		verb = "planned"
	case cfg.Move:
		verb = "moved"
	}
	log.Info("%d %s, %d skipped (%d unknown, %d unsupported, %d .fbx), %d failed",
		stats.Processed, verb, stats.Skipped(), stats.Unrecognized, stats.Unsupported, stats.Meshes, stats.Failed)
	if stats.Collisions > 0 {
		log.Debug("%d output name(s) written more than once", stats.Collisions)
	}
	if stats.Processed > 0 {
		log.Info("Transferred: %s", display.FormatBytes(stats.Bytes))
	}
	log.Success("Done! Processed %d files.", stats.Processed)
}
