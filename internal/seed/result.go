// Package seed publishes career pools into Postgres.
package seed

import "fmt"

// SeedResult tracks counts and errors from a publish operation.
type SeedResult struct {
	PlayersUpserted int
	SeasonsUpserted int
	Errors          []string
}

// Add merges another SeedResult into this one.
func (r *SeedResult) Add(other SeedResult) {
	r.PlayersUpserted += other.PlayersUpserted
	r.SeasonsUpserted += other.SeasonsUpserted
	r.Errors = append(r.Errors, other.Errors...)
}

// AddErrorf records a formatted error message.
func (r *SeedResult) AddErrorf(format string, args ...interface{}) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// Summary returns a human-readable summary of the publish operation.
func (r *SeedResult) Summary() string {
	return fmt.Sprintf("players=%d seasons=%d errors=%d",
		r.PlayersUpserted, r.SeasonsUpserted, len(r.Errors))
}
