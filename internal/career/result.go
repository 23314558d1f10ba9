package career

import "fmt"

// BuildResult tracks counts and errors from a pool build.
type BuildResult struct {
	Candidates int // players that passed the eligibility phases
	Resumed    int // candidates already present in the checkpoint
	Added      int
	Discarded  int // candidates without enough data
	Errors     []string
}

// AddErrorf records a formatted error message.
func (r *BuildResult) AddErrorf(format string, args ...interface{}) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// Summary returns a human-readable summary of the build.
func (r *BuildResult) Summary() string {
	return fmt.Sprintf("candidates=%d resumed=%d added=%d discarded=%d errors=%d",
		r.Candidates, r.Resumed, r.Added, r.Discarded, len(r.Errors))
}

// UpdateResult tracks counts and errors from an incremental update.
type UpdateResult struct {
	Updated        int // existing players that gained a season
	AlreadyPresent int // existing players that already had the season
	Added          int // new players inserted
	Skipped        int // new candidates without enough career data
	Errors         []string
}

// AddErrorf records a formatted error message.
func (r *UpdateResult) AddErrorf(format string, args ...interface{}) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// Changed reports whether the update modified the pool.
func (r *UpdateResult) Changed() bool {
	return r.Updated > 0 || r.Added > 0
}

// Summary returns a human-readable summary of the update.
func (r *UpdateResult) Summary() string {
	return fmt.Sprintf("updated=%d already_present=%d added=%d skipped=%d errors=%d",
		r.Updated, r.AlreadyPresent, r.Added, r.Skipped, len(r.Errors))
}
