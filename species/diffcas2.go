package species

import (
	"github.com/jwbullard/VCCTL-sub005/catalog"
	"github.com/jwbullard/VCCTL-sub005/simctx"
)

// MoveCas2 implements DIFFCAS2 (dissolved calcium aluminosilicate
// glass) reacting with aluminate/ferrite phases to form stratlingite.
func MoveCas2(ctx *simctx.Context, x, y, z int, final bool, pnuc float64) int {
	nx, ny, nz, direction := pickNeighbor(ctx, x, y, z)
	switch ctx.Lattice.At(nx, ny, nz) {
	case catalog.C3A, catalog.OC3A, catalog.DIFFC3A, catalog.DIFFC4A:
		if fireReaction(ctx, x, y, z, 0.886, catalog.STRAT, 3, 0.286, extStratPlacer) {
			return ActionReacted
		}
	case catalog.C4AF:
		sides := []sideProduct{{0.329, extCHPlacer}, {0.6938, extFH3Placer}}
		if fireReaction(ctx, x, y, z, 0.786, catalog.STRAT, 2, 0.37, extStratPlacer, sides...) {
			return ActionReacted
		}
	}
	if final {
		ctx.Lattice.Set(x, y, z, solidAnalog[catalog.DIFFCAS2])
		return ActionReacted
	}
	return diffuseOrStay(ctx, x, y, z, nx, ny, nz, direction, catalog.DIFFCAS2)
}
