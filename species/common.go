// Package species implements the per-diffusing-species move routines
// (spec.md section 4.F): one state machine per phase in catalog's
// diffusing partition, each encoding a fixed stoichiometry table of
// pairwise reactions against its dispatch table of neighbor
// identities. dispatch.go maps catalog.PhaseID to the matching
// routine, mirroring the teacher's mdl/gen factory-map pattern
// (map[string]func() Model, here map[catalog.PhaseID]MoveFunc).
package species

import (
	"github.com/jwbullard/VCCTL-sub005/catalog"
	"github.com/jwbullard/VCCTL-sub005/neighborhood"
	"github.com/jwbullard/VCCTL-sub005/placement"
	"github.com/jwbullard/VCCTL-sub005/simctx"
)

// Action codes a move routine returns to the scheduler.
const (
	ActionReacted = 0 // the diffusing voxel was consumed
	ActionStayed  = 7 // no reaction fired and the neighbor was not porosity
	// 1..6 (neighborhood's direction codes) mean the voxel diffused that way.
)

// Placer is an ext* routine from the placement package, reduced to the
// shape acicularChain needs.
type Placer func(ctx *simctx.Context, x, y, z int) placement.Result

// solidAnalog names the solid phase a diffusing species reverts to
// when the final cycle forces unconditional precipitation and no
// reaction fires. Not all diffusing species appear in spec.md's
// stoichiometry table with an explicit revert target; this mapping is
// the generalization spec.md section 4.F describes ("revert the voxel
// to its corresponding solid form").
var solidAnalog = map[catalog.PhaseID]catalog.PhaseID{
	catalog.DIFFCSH:   catalog.CSH,
	catalog.DIFFCH:    catalog.CH,
	catalog.DIFFFH3:   catalog.FH3,
	catalog.DIFFETTR:  catalog.ETTR,
	catalog.DIFFGYP:   catalog.GYPSUM,
	catalog.DIFFC3A:   catalog.C3A,
	catalog.DIFFC4A:   catalog.C4AF,
	catalog.DIFFHEM:   catalog.HEMIHYD,
	catalog.DIFFANH:   catalog.ANHYDRITE,
	catalog.DIFFCAS2:  catalog.CAS2,
	catalog.DIFFAS:    catalog.ASG,
	catalog.DIFFCACL2: catalog.CACL2,
	catalog.DIFFCACO3: catalog.CACO3,
	catalog.DIFFSO4:   catalog.GYPSUM,
	catalog.ABSGYP:    catalog.GYPSUM,
}

// pickNeighbor performs the single random neighbor pick every move
// routine makes before dispatching on its identity. Unlike placement's
// localAttempt, this is one draw, not a multi-attempt search.
func pickNeighbor(ctx *simctx.Context, x, y, z int) (nx, ny, nz, direction int) {
	nx, ny, nz, direction, _ = neighborhood.MoveOne(ctx.Lattice, x, y, z, 0, ctx.Rng)
	return
}

// diffuseOrStay implements step 5 of the canonical move routine: if the
// neighbor is saturated porosity, the diffusing voxel moves there
// (the old cell adopts the neighbor's porosity kind, the neighbor
// becomes the diffusing species); otherwise the voxel stays put.
func diffuseOrStay(ctx *simctx.Context, x, y, z, nx, ny, nz, direction int, id catalog.PhaseID) int {
	neighborPhase := ctx.Lattice.At(nx, ny, nz)
	if !catalog.IsSaturatedPorosity(neighborPhase) {
		return ActionStayed
	}
	ctx.Lattice.Set(x, y, z, neighborPhase)
	ctx.Lattice.Set(nx, ny, nz, id)
	return direction
}

// nucleate applies step 1: on the final cycle, or when pnuc clears a
// uniform draw, the voxel solidifies into product unconditionally and
// reports true. pnuc of 0 (species with no nucleation pool) only fires
// on the final cycle.
func nucleate(ctx *simctx.Context, x, y, z int, final bool, pnuc float64, product catalog.PhaseID) bool {
	if final || (pnuc > 0 && pnuc >= ctx.Rng.Float64()) {
		ctx.Lattice.Set(x, y, z, product)
		return true
	}
	return false
}

// acicularChain places nexp extra pixels via placer, threading each
// call's output coordinate into the next so placement grows outward
// from the previous pixel (spec.md section 4.F's acicular bias), then
// rolls one final pixel with probability remainder.
func acicularChain(ctx *simctx.Context, x, y, z, nexp int, remainder float64, placer Placer) {
	cx, cy, cz := x, y, z
	for i := 0; i < nexp; i++ {
		r := placer(ctx, cx, cy, cz)
		if r.Placed {
			cx, cy, cz = r.X, r.Y, r.Z
		}
	}
	if remainder > 0 && ctx.Rng.Float64() < remainder {
		placer(ctx, cx, cy, cz)
	}
}

// sideProduct is an optional Bernoulli-gated side pixel accompanying a
// primary reaction (the CH/FH3 side-product columns of spec.md's
// stoichiometry table).
type sideProduct struct {
	prob  float64
	place Placer
}

// fireReaction implements the body of one stoichiometry-table row: a
// Bernoulli accept roll, the deterministic product pixel at the
// reacting voxel, the acicular nexp+remainder extras, and any side
// products. Reports whether the reaction fired.
func fireReaction(ctx *simctx.Context, x, y, z int, firstAccept float64, product catalog.PhaseID, nexp int, remainder float64, placer Placer, sides ...sideProduct) bool {
	if ctx.Rng.Float64() >= firstAccept {
		return false
	}
	ctx.Lattice.Set(x, y, z, product)
	acicularChain(ctx, x, y, z, nexp, remainder, placer)
	for _, s := range sides {
		if s.prob > 0 && ctx.Rng.Float64() < s.prob {
			s.place(ctx, x, y, z)
		}
	}
	return true
}

func extEttrPrimary(ctx *simctx.Context, x, y, z int) placement.Result {
	return placement.ExtEttr(ctx, x, y, z, placement.EttrPrimary)
}

func extEttrC4AF(ctx *simctx.Context, x, y, z int) placement.Result {
	return placement.ExtEttr(ctx, x, y, z, placement.EttrC4AF)
}

func extCHPlacer(ctx *simctx.Context, x, y, z int) placement.Result  { return placement.ExtCH(ctx, x, y, z) }
func extFH3Placer(ctx *simctx.Context, x, y, z int) placement.Result { return placement.ExtFH3(ctx, x, y, z) }
func extFriedelPlacer(ctx *simctx.Context, x, y, z int) placement.Result {
	return placement.ExtFriedel(ctx, x, y, z)
}
func extStratPlacer(ctx *simctx.Context, x, y, z int) placement.Result {
	return placement.ExtStrat(ctx, x, y, z)
}
func extAfmPlacer(ctx *simctx.Context, x, y, z int) placement.Result {
	return placement.ExtAfm(ctx, x, y, z)
}
func extC3ah6Placer(ctx *simctx.Context, x, y, z int) placement.Result {
	return placement.ExtC3AH6(ctx, x, y, z)
}
func extCshPlacer(ctx *simctx.Context, x, y, z int) placement.Result {
	return placement.ExtCSH(ctx, x, y, z)
}
func extPozzPlacer(ctx *simctx.Context, x, y, z int) placement.Result {
	return placement.ExtPozz(ctx, x, y, z)
}
func extGypsPlacer(ctx *simctx.Context, x, y, z int) placement.Result {
	return placement.ExtGyps(ctx, x, y, z)
}
