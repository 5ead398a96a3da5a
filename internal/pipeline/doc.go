// Package pipeline runs one organizing batch: it lists the source folder,
// classifies and decodes every file, lays out the output folders, copies or
// moves the recognized images, and summarizes the result.
//
// Files:
//   - discover.go: flat, sorted listing and extension classification
//   - layout.go:   output root and lazily created part folders
//   - transfer.go: copy, or move with a copy+remove fallback
//   - runner.go:   Run, per-file processing, batch header and summary
//   - stats.go:    RunStats and per-file outcomes
package pipeline
