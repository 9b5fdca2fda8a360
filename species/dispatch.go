package species

import (
	"github.com/jwbullard/VCCTL-sub005/catalog"
	"github.com/jwbullard/VCCTL-sub005/simctx"
)

// MoveFunc is the canonical per-cycle state-machine contract every
// diffusing species implements (spec.md section 4.F): given the
// voxel's current position, whether this is the final forced-
// precipitation step, and (for species with a nucleation pool) the
// scheduler-computed nucleation probability, it mutates the lattice
// and reports an action code.
type MoveFunc func(ctx *simctx.Context, x, y, z int, final bool, pnuc float64) int

// Dispatch maps each diffusing phase id to its move routine, the table
// the hydration scheduler (Component G) looks up on every registry
// node, mirroring the teacher's mdl/gen allocator-by-name map.
var Dispatch = map[catalog.PhaseID]MoveFunc{
	catalog.DIFFGYP:   MoveGyp,
	catalog.DIFFHEM:   MoveHem,
	catalog.DIFFANH:   MoveAnh,
	catalog.DIFFCACL2: MoveCacl2,
	catalog.DIFFCAS2:  MoveCas2,
	catalog.DIFFAS:    MoveAs,
	catalog.DIFFCACO3: MoveCaco3,
	catalog.DIFFETTR:  MoveEttr,
	catalog.DIFFC3A:   MoveC3a,
	catalog.DIFFC4A:   MoveC4a,
	catalog.DIFFCSH:   MoveCsh,
	catalog.DIFFSO4:   MoveSo4,
	catalog.DIFFCH:    MoveCh,
	catalog.DIFFFH3:   MoveFh3,
	catalog.ABSGYP:    MoveAbsgyp,
}

// Lookup returns the move routine for id, or nil if id is not a
// diffusing species the dispatch table knows about (spec.md section 7,
// "unknown phase id in dispatch" — the scheduler logs and continues).
func Lookup(id catalog.PhaseID) MoveFunc {
	return Dispatch[id]
}
