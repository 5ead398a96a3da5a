package pipeline

import "github.com/backmassage/texorg/internal/texname"

// Outcome says what happened to one source file.
type Outcome string

const (
	OutcomeCopied       Outcome = "copied"
	OutcomeMoved        Outcome = "moved"
	OutcomePlanned      Outcome = "planned" // dry run
	OutcomeMesh         Outcome = "mesh"
	OutcomeUnrecognized Outcome = "unrecognized"
	OutcomeUnsupported  Outcome = "unsupported"
	OutcomeFailed       Outcome = "failed"
)

// FileOutcome records the decision taken for one source file.
type FileOutcome struct {
	Source  string
	Dest    string // Empty unless the file was (or would be) written.
	Result  texname.Result
	Outcome Outcome
	Err     error
	Bytes   int64
}

// RunStats tracks aggregate counters and byte totals across a batch run.
type RunStats struct {
	Total        int // Regular files listed.
	Images       int
	Meshes       int
	Processed    int // Images copied or moved (or planned, in a dry run).
	Unrecognized int
	Unsupported  int
	Failed       int
	Collisions   int // Outputs written more than once; the last one wins.
	Bytes        int64
	OutputDir    string
	Files        []FileOutcome
}

// Skipped returns the number of files left untouched on purpose.
func (s *RunStats) Skipped() int {
	return s.Unrecognized + s.Unsupported + s.Meshes
}

func (s *RunStats) record(o FileOutcome) {
	s.Files = append(s.Files, o)
	switch o.Outcome {
	case OutcomeCopied, OutcomeMoved, OutcomePlanned:
		s.Processed++
		s.Bytes += o.Bytes
	case OutcomeUnrecognized:
		s.Unrecognized++
	case OutcomeUnsupported:
		s.Unsupported++
	case OutcomeFailed:
		s.Failed++
	}
}
