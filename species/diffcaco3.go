package species

import (
	"github.com/jwbullard/VCCTL-sub005/catalog"
	"github.com/jwbullard/VCCTL-sub005/simctx"
)

// MoveCaco3 implements DIFFCACO3 (dissolved calcium carbonate) reacting
// with AFM to form a mix of carboaluminate (AFMC) and ettringite.
func MoveCaco3(ctx *simctx.Context, x, y, z int, final bool, pnuc float64) int {
	nx, ny, nz, direction := pickNeighbor(ctx, x, y, z)
	if ctx.Lattice.At(nx, ny, nz) == catalog.AFM {
		if ctx.Rng.Float64() < 0.078658 {
			product := catalog.AFMC
			if ctx.Rng.Float64() >= 0.479 {
				product = catalog.ETTR
			}
			ctx.Lattice.Set(x, y, z, product)
			if ctx.Rng.Float64() < 0.26194 {
				extEttrPrimary(ctx, x, y, z)
			}
			return ActionReacted
		}
	}
	if final {
		ctx.Lattice.Set(x, y, z, solidAnalog[catalog.DIFFCACO3])
		return ActionReacted
	}
	return diffuseOrStay(ctx, x, y, z, nx, ny, nz, direction, catalog.DIFFCACO3)
}
