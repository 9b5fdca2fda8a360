package species

import (
	"github.com/jwbullard/VCCTL-sub005/catalog"
	"github.com/jwbullard/VCCTL-sub005/simctx"
)

// MoveC3a implements DIFFC3A: the busiest diffusing species, reacting
// with every sulfate source to form ettringite, with calcium chloride
// to form Friedel's salt, with calcium aluminosilicate glass to form
// stratlingite, with dissolved or soluble-solid ettringite to form
// AFM, and nucleating (spontaneously or by growing against existing
// C3AH6) into the hydrogarnet phase.
func MoveC3a(ctx *simctx.Context, x, y, z int, final bool, pnuc float64) int {
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
		if ctx.Rng.Float64() < ctx.Rates.C3AGYP && fireReaction(ctx, x, y, z, 0.40, catalog.ETTR, 2, 0.30, extEttrPrimary) {
			return ActionReacted
		}
	case catalog.DIFFHEM:
		if ctx.Rng.Float64() < ctx.Rates.C3AGYP && fireReaction(ctx, x, y, z, 0.5583, catalog.ETTR, 3, 0.6053, extEttrPrimary) {
			return ActionReacted
		}
	case catalog.DIFFANH:
		if ctx.Rng.Float64() < ctx.Rates.C3AGYP && fireReaction(ctx, x, y, z, 0.569, catalog.ETTR, 3, 0.6935, extEttrPrimary) {
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
	case catalog.ETTR:
		if ctx.Config.SolubleOverride(catalog.ETTR) && ctx.Rng.Float64() < ctx.Rates.C3AETTR &&
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
	return diffuseOrStay(ctx, x, y, z, nx, ny, nz, direction, catalog.DIFFC3A)
}
