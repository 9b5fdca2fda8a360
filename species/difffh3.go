package species

import (
	"github.com/jwbullard/VCCTL-sub005/catalog"
	"github.com/jwbullard/VCCTL-sub005/simctx"
)

// MoveFh3 implements DIFFFH3 (dissolved hydrous iron oxide):
// unconditional growth on contact with existing FH3, and spontaneous
// nucleation from the FH3 pool's saturation probability.
func MoveFh3(ctx *simctx.Context, x, y, z int, final bool, pnuc float64) int {
	if nucleate(ctx, x, y, z, final, pnuc, catalog.FH3) {
		return ActionReacted
	}

	nx, ny, nz, direction := pickNeighbor(ctx, x, y, z)
	if ctx.Lattice.At(nx, ny, nz) == catalog.FH3 {
		ctx.Lattice.Set(x, y, z, catalog.FH3)
		return ActionReacted
	}

	if final {
		ctx.Lattice.Set(x, y, z, solidAnalog[catalog.DIFFFH3])
		return ActionReacted
	}
	return diffuseOrStay(ctx, x, y, z, nx, ny, nz, direction, catalog.DIFFFH3)
}
