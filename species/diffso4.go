package species

import (
	"github.com/jwbullard/VCCTL-sub005/catalog"
	"github.com/jwbullard/VCCTL-sub005/simctx"
)

// MoveSo4 implements DIFFSO4 (dissolved sulfate, pooled from gypsum,
// hemihydrate, and anhydrite dissolution): reacting with dissolved CH
// to precipitate gypsum on both voxels, or nucleating spontaneously
// from the gypsum pool's saturation probability.
func MoveSo4(ctx *simctx.Context, x, y, z int, final bool, pnuc float64) int {
	if nucleate(ctx, x, y, z, final, pnuc, catalog.GYPSUMS) {
		if ctx.Rng.Float64() < 0.29 {
			extGypsPlacer(ctx, x, y, z)
		}
		return ActionReacted
	}

	nx, ny, nz, direction := pickNeighbor(ctx, x, y, z)
	if ctx.Lattice.At(nx, ny, nz) == catalog.DIFFCH {
		ctx.Lattice.Set(x, y, z, catalog.GYPSUMS)
		ctx.Lattice.Set(nx, ny, nz, catalog.GYPSUMS)
		acicularChain(ctx, x, y, z, 1, 0.2435, extGypsPlacer)
		return ActionReacted
	}

	// final is unreachable here: nucleate above already returns
	// unconditionally true (and GYPSUMS) whenever final is set.
	return diffuseOrStay(ctx, x, y, z, nx, ny, nz, direction, catalog.DIFFSO4)
}
