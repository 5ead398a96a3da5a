package texname

// CollisionTracker records which input produced each output path during a
// run. Colliding inputs are not renamed: the later write replaces the
// earlier one, and the tracker only reports that it happened. It is meant
// for sequential use within a single run.
type CollisionTracker struct {
	owners map[string]string // output path -> input that last wrote it
}

// NewCollisionTracker creates a ready-to-use tracker.
func NewCollisionTracker() *CollisionTracker {
	return &CollisionTracker{owners: make(map[string]string)}
}

// Claim registers input as the writer of output. If a different input
// already claimed output, that input is returned with replaced set.
func (ct *CollisionTracker) Claim(input, output string) (previous string, replaced bool) {
	prev, exists := ct.owners[output]
	ct.owners[output] = input
	if exists && prev != input {
		return prev, true
	}
	return "", false
}

// Len returns the number of distinct output paths claimed so far.
func (ct *CollisionTracker) Len() int {
	return len(ct.owners)
}
