package species

import (
	"github.com/jwbullard/VCCTL-sub005/catalog"
	"github.com/jwbullard/VCCTL-sub005/simctx"
)

// MoveC4a implements DIFFC4A, the iron-substituted counterpart of
// DIFFC3A (spec.md section 4.F: "same as DIFFC3A but products are
// iron-rich ETTRC4AF variants"). Branches producing ettringite use the
// iron-rich analog ETTRC4AF; the remaining product phases (FRIEDEL,
// STRAT, AFM, C3AH6) have no distinct iron-substituted phase id in the
// catalogue and are shared with DIFFC3A's targets.
func MoveC4a(ctx *simctx.Context, x, y, z int, final bool, pnuc float64) int {
	if nucleate(ctx, x, y, z, final, pnuc, catalog.C3AH6) {
		if ctx.Rng.Float64() < 0.69 {
			extC3ah6Placer(ctx, x, y, z)
		}
		return ActionReacted
	}

	nx, ny, nz, direction := pickNeighbor(ctx, x, y, z)
	neighbor := ctx.Lattice.At(nx, ny, nz)
	switch neighbor {
	case catalog.DIFFGYP:
		if ctx.Rng.Float64() < ctx.Rates.C3AGYP && fireReaction(ctx, x, y, z, 0.40, catalog.ETTRC4AF, 2, 0.30, extEttrC4AF) {
			return ActionReacted
		}
	case catalog.DIFFHEM:
		if ctx.Rng.Float64() < ctx.Rates.C3AGYP && fireReaction(ctx, x, y, z, 0.5583, catalog.ETTRC4AF, 3, 0.6053, extEttrC4AF) {
			return ActionReacted
		}
	case catalog.DIFFANH:
		if ctx.Rng.Float64() < ctx.Rates.C3AGYP && fireReaction(ctx, x, y, z, 0.569, catalog.ETTRC4AF, 3, 0.6935, extEttrC4AF) {
			return ActionReacted
		}
	case catalog.DIFFCACL2:
		if fireReaction(ctx, x, y, z, 0.5793, catalog.FRIEDEL, 2, 0.3295, extFriedelPlacer) {
			return ActionReacted
		}
	case catalog.DIFFCAS2:
		if fireReaction(ctx, x, y, z, 0.886, catalog.STRAT, 3, 0.286, extStratPlacer) {
			return ActionReacted
		}
	case catalog.DIFFETTR:
		if ctx.Rng.Float64() < ctx.Rates.C3AETTR && fireReaction(ctx, x, y, z, 0.2424, catalog.AFM, 0, 0.04699, extAfmPlacer) {
			return ActionReacted
		}
	case catalog.ETTRC4AF:
		if ctx.Config.SolubleOverride(catalog.ETTRC4AF) && ctx.Rng.Float64() < ctx.Rates.C3AETTR &&
			fireReaction(ctx, x, y, z, 0.2424, catalog.AFM, 0, 0.04699, extAfmPlacer) {
			return ActionReacted
		}
	case catalog.C3AH6:
		if ctx.Rng.Float64() < ctx.Rates.C3AH6GROW {
			ctx.Lattice.Set(x, y, z, catalog.C3AH6)
			if ctx.Rng.Float64() < 0.69 {
				extC3ah6Placer(ctx, x, y, z)
			}
			return ActionReacted
		}
	}
	// final is unreachable here: nucleate above already returns
	// unconditionally true (and C3AH6) whenever final is set.
	return diffuseOrStay(ctx, x, y, z, nx, ny, nz, direction, catalog.DIFFC4A)
}
