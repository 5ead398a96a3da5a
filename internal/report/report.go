// Package report writes the optional YAML record of a run: the options it
// ran with, the totals, and the decision taken for every source file.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/backmassage/texorg/internal/config"
	"github.com/backmassage/texorg/internal/pipeline"
)

// Report is the document written by --report.
type Report struct {
	RunID    string    `yaml:"run_id"`
	Version  string    `yaml:"version,omitempty"`
	Started  time.Time `yaml:"started"`
	Finished time.Time `yaml:"finished"`
	Source   string    `yaml:"source"`
	Output   string    `yaml:"output"`
	Options  Options   `yaml:"options"`
	Summary  Summary   `yaml:"summary"`
	Files    []Entry   `yaml:"files"`
}

// Options mirrors the settings that change what a run does.
type Options struct {
	KeepNames bool `yaml:"keep_names"`
	Move      bool `yaml:"move"`
	DryRun    bool `yaml:"dry_run"`
	AssumeYes bool `yaml:"assume_yes"`
}

// Summary holds the run totals.
type Summary struct {
	Total        int   `yaml:"total"`
	Images       int   `yaml:"images"`
	Processed    int   `yaml:"processed"`
	Skipped      int   `yaml:"skipped"`
	Unrecognized int   `yaml:"unrecognized"`
	Unsupported  int   `yaml:"unsupported"`
	Meshes       int   `yaml:"meshes"`
	Failed       int   `yaml:"failed"`
	Collisions   int   `yaml:"collisions"`
	Bytes        int64 `yaml:"bytes"`
}

// Entry is one source file.
type Entry struct {
	Source    string `yaml:"source"`
	Outcome   string `yaml:"outcome"`
	Dest      string `yaml:"dest,omitempty"`
	PartType  string `yaml:"part_type,omitempty"`
	Subtype   string `yaml:"subtype,omitempty"`
	ImageType string `yaml:"image_type,omitempty"`
	Bytes     int64  `yaml:"bytes,omitempty"`
	Error     string `yaml:"error,omitempty"`
}

// New starts a report for a run beginning now.
func New(version string) *Report {
	return &Report{
		RunID:   uuid.NewString(),
		Version: version,
		Started: time.Now().UTC().Truncate(time.Second),
	}
}

// Fill copies cfg and stats into the report and stamps the finish time.
// Paths under the source folder are stored relative to it.
func (r *Report) Fill(cfg *config.Config, stats *pipeline.RunStats) {
	r.Finished = time.Now().UTC().Truncate(time.Second)
	r.Source = cfg.SourceDir
	r.Output = stats.OutputDir
	r.Options = Options{
		KeepNames: cfg.KeepNames,
		Move:      cfg.Move,
		DryRun:    cfg.DryRun,
		AssumeYes: cfg.AssumeYes,
	}
	r.Summary = Summary{
		Total:        stats.Total,
		Images:       stats.Images,
		Processed:    stats.Processed,
		Skipped:      stats.Skipped(),
		Unrecognized: stats.Unrecognized,
		Unsupported:  stats.Unsupported,
		Meshes:       stats.Meshes,
		Failed:       stats.Failed,
		Collisions:   stats.Collisions,
		Bytes:        stats.Bytes,
	}
	r.Files = make([]Entry, 0, len(stats.Files))
	for _, f := range stats.Files {
		e := Entry{
			Source:    relTo(cfg.SourceDir, f.Source),
			Outcome:   string(f.Outcome),
			PartType:  string(f.Result.PartType),
			Subtype:   f.Result.Subtype,
			ImageType: string(f.Result.ImageType),
			Bytes:     f.Bytes,
		}
		if f.Dest != "" {
			e.Dest = relTo(cfg.SourceDir, f.Dest)
		}
		if f.Err != nil {
			e.Error = f.Err.Error()
		}
		r.Files = append(r.Files, e)
	}
}

// Write marshals the report to path, creating parent folders as needed.
func (r *Report) Write(path string) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create report directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func relTo(base, path string) string {
	if rel, err := filepath.Rel(base, path); err == nil && filepath.IsLocal(rel) {
		return filepath.ToSlash(rel)
	}
	return path
}
