package species

import (
	"github.com/jwbullard/VCCTL-sub005/catalog"
	"github.com/jwbullard/VCCTL-sub005/simctx"
)

// MoveEttr implements DIFFETTR (dissolved ettringite) reacting with
// aluminate to form AFM, with ferrite to form AFM plus CH/FH3 side
// products, or re-solidifying against existing solid ettringite.
func MoveEttr(ctx *simctx.Context, x, y, z int, final bool, pnuc float64) int {
	nx, ny, nz, direction := pickNeighbor(ctx, x, y, z)
	switch ctx.Lattice.At(nx, ny, nz) {
	case catalog.C3A, catalog.OC3A, catalog.DIFFC3A:
		if fireReaction(ctx, x, y, z, 0.2424, catalog.AFM, 0, 0.04699, extAfmPlacer) {
			return ActionReacted
		}
	case catalog.C4AF:
		if ctx.Rng.Float64() < 0.278 {
			ctx.Lattice.Set(x, y, z, catalog.AFM)
			if ctx.Rng.Float64() < 0.3241 {
				extCHPlacer(ctx, x, y, z)
			}
			if ctx.Rng.Float64() < 0.4313 {
				extFH3Placer(ctx, x, y, z)
			}
			return ActionReacted
		}
	case catalog.ETTR:
		if ctx.Config.SolubleOverride(catalog.ETTR) && ctx.Rng.Float64() < ctx.Rates.ETTRGROW {
			ctx.Lattice.Set(x, y, z, catalog.ETTR)
			return ActionReacted
		}
	}
	if final {
		ctx.Lattice.Set(x, y, z, solidAnalog[catalog.DIFFETTR])
		return ActionReacted
	}
	return diffuseOrStay(ctx, x, y, z, nx, ny, nz, direction, catalog.DIFFETTR)
}
