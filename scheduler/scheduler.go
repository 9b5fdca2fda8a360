// Package scheduler implements the hydration cycle driver (spec.md
// section 4.G): per-cycle nucleation-probability computation followed
// by a bounded, in-order traversal of the diffusing-species registry,
// dispatching each live node to its species.Move* routine and applying
// the position update the routine's action code reports.
package scheduler

import (
	"math"

	"github.com/jwbullard/VCCTL-sub005/catalog"
	"github.com/jwbullard/VCCTL-sub005/neighborhood"
	"github.com/jwbullard/VCCTL-sub005/registry"
	"github.com/jwbullard/VCCTL-sub005/simctx"
	"github.com/jwbullard/VCCTL-sub005/species"
)

// NucleationProbs holds the per-cycle saturation probabilities spec.md
// section 4.G computes before the registry walk, one per nucleating
// pool.
type NucleationProbs struct {
	CH, C3AH6, FH3, Gyp float64
}

// saturation implements p_X = X_cap * (1 - exp(-count/X_scale)); a
// zero or negative scale reports zero rather than dividing by zero (a
// pool with no configured scale never nucleates spontaneously).
func saturation(count int, cap_, scale float64) float64 {
	if scale <= 0 {
		return 0
	}
	return cap_ * (1 - math.Exp(-float64(count)/scale))
}

// ComputeNucleationProbs reads ctx.Lattice.Count for the four
// nucleating pools (gypsum's pool is DIFFANH+DIFFHEM+DIFFSO4, pooled
// per spec.md section 4.G) and returns the saturation probabilities
// the registry walk will pass into each dispatched move routine.
func ComputeNucleationProbs(ctx *simctx.Context) NucleationProbs {
	r := ctx.Rates
	gypPool := ctx.Lattice.Count(catalog.DIFFANH) +
		ctx.Lattice.Count(catalog.DIFFHEM) +
		ctx.Lattice.Count(catalog.DIFFSO4)
	return NucleationProbs{
		CH:    saturation(int(ctx.Lattice.Count(catalog.DIFFCH)), r.CHCap, r.CHScale),
		C3AH6: saturation(int(ctx.Lattice.Count(catalog.DIFFC3A)), r.C3AH6Cap, r.C3AH6Scale),
		FH3:   saturation(int(ctx.Lattice.Count(catalog.DIFFFH3)), r.FH3Cap, r.FH3Scale),
		Gyp:   saturation(int(gypPool), r.GypCap, r.GypScale),
	}
}

// pnucFor returns the nucleation probability the dispatched move
// routine for id should see; species outside the four pooled families
// have no spontaneous nucleation channel and always see 0 (their
// Move* routines only nucleate unconditionally on the final cycle).
func pnucFor(id catalog.PhaseID, p NucleationProbs) float64 {
	switch id {
	case catalog.DIFFCH:
		return p.CH
	case catalog.DIFFC3A:
		return p.C3AH6
	case catalog.DIFFFH3:
		return p.FH3
	case catalog.DIFFANH, catalog.DIFFHEM, catalog.DIFFSO4:
		return p.Gyp
	default:
		return 0
	}
}

// RunCycle executes one hydration cycle: computes the cycle's
// nucleation probabilities, then walks the registry in FIFO order,
// dispatching each live node to its move routine and applying the
// resulting action code. final marks the last diffusion iteration of
// the last hydration cycle (spec.md section 4.G): every dispatched
// routine nucleates unconditionally and the walk stops once every node
// present at the start of the cycle has been visited once.
//
// Returns the number of nodes visited (bounded by ctx.Config.Stepmax
// and the registry's size at call time).
func RunCycle(ctx *simctx.Context, final bool) int {
	probs := ComputeNucleationProbs(ctx)
	stepmax := ctx.Config.Stepmax
	visited := 0

	ctx.Registry.ForEachUntil(func(ref registry.Ref, node registry.Node) bool {
		if stepmax > 0 && visited >= stepmax {
			return false
		}
		visited++

		if ctx.Lattice.At(node.X, node.Y, node.Z) != node.ID {
			// Another reaction already clobbered this voxel this cycle.
			ctx.Registry.Remove(ref)
			return true
		}

		move := species.Lookup(node.ID)
		if move == nil {
			ctx.Diag.Warn("scheduler: no move routine for phase %v, dropping node", node.ID)
			ctx.Registry.Remove(ref)
			return true
		}

		action := move(ctx, node.X, node.Y, node.Z, final, pnucFor(node.ID, probs))
		switch {
		case action == species.ActionReacted:
			ctx.Registry.Remove(ref)
		case action >= 1 && action <= 6:
			nx, ny, nz := neighborhood.Step(ctx.Lattice, node.X, node.Y, node.Z, action)
			ctx.Registry.Update(ref, func(n *registry.Node) {
				n.X, n.Y, n.Z = nx, ny, nz
			})
		case action == species.ActionStayed:
			// position unchanged, node remains registered
		default:
			ctx.Diag.Warn("scheduler: move routine for phase %v returned unknown action %d", node.ID, action)
		}
		return true
	})

	return visited
}

// RunCycles runs n hydration cycles in sequence, marking the last
// diffusion iteration of the last cycle final per spec.md section
// 4.G, and advancing ctx.Cyccnt as each completes.
func RunCycles(ctx *simctx.Context, n int) {
	for i := 0; i < n; i++ {
		final := i == n-1
		RunCycle(ctx, final)
		ctx.Cyccnt++
	}
}
