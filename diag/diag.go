// Package diag provides the injected diagnostic sink used throughout
// the hydration core for soft-failure reporting (spec.md section 7):
// stale registry nodes, unknown phase ids, chemistry non-convergence,
// and PRNG sanity-check fallbacks all log through a Sink instead of
// panicking or returning an error that would abort the hydration
// cycle.
package diag

import "github.com/cpmech/gosl/io"

// Sink receives diagnostic messages. Implementations must be safe to
// call from the single hydration goroutine; the core never calls Sink
// concurrently, so no synchronization is required of implementations.
type Sink interface {
	Warn(format string, args ...interface{})
	Info(format string, args ...interface{})
}

// Default is a Sink backed by gosl/io's colored console writers,
// matching the teacher's io.Pf/io.PfYel usage for progress and warning
// messages.
type Default struct{}

func (Default) Warn(format string, args ...interface{}) { io.PfYel("[warn] "+format+"\n", args...) }
func (Default) Info(format string, args ...interface{}) { io.Pf("[info] "+format+"\n", args...) }

// Discard silently drops every message; useful in tests that assert on
// behavior rather than on log output.
type Discard struct{}

func (Discard) Warn(format string, args ...interface{}) {}
func (Discard) Info(format string, args ...interface{}) {}

// Recording accumulates messages in memory for tests that need to
// assert a particular soft failure was reported.
type Recording struct {
	Warnings []string
	Infos    []string
}

func (r *Recording) Warn(format string, args ...interface{}) {
	r.Warnings = append(r.Warnings, sprintf(format, args...))
}

func (r *Recording) Info(format string, args ...interface{}) {
	r.Infos = append(r.Infos, sprintf(format, args...))
}

func sprintf(format string, args ...interface{}) string {
	return io.Sf(format, args...)
}
