package species

import (
	"github.com/jwbullard/VCCTL-sub005/catalog"
	"github.com/jwbullard/VCCTL-sub005/simctx"
)

// MoveCacl2 implements DIFFCACL2 (dissolved calcium chloride) reacting
// with aluminate or ferrite to form Friedel's salt.
//
// Preserved quirk (spec.md section 9, Open Questions): the C4AF branch
// calls extfh3 unconditionally once, then rolls a second, independent
// Bernoulli(0.3522) call to extfh3. The reference source's comments
// suggest the unconditional call overshoots stoichiometry, but it is
// preserved bit-for-bit rather than "fixed".
func MoveCacl2(ctx *simctx.Context, x, y, z int, final bool, pnuc float64) int {
	nx, ny, nz, direction := pickNeighbor(ctx, x, y, z)
	switch ctx.Lattice.At(nx, ny, nz) {
	case catalog.C3A, catalog.OC3A, catalog.DIFFC3A:
		if fireReaction(ctx, x, y, z, 0.5793, catalog.FRIEDEL, 2, 0.3295, extFriedelPlacer) {
			return ActionReacted
		}
	case catalog.C4AF:
		if ctx.Rng.Float64() < 0.4033 {
			ctx.Lattice.Set(x, y, z, catalog.FRIEDEL)
			acicularChain(ctx, x, y, z, 1, 0.3176, extFriedelPlacer)
			if ctx.Rng.Float64() < 0.6412 {
				extCHPlacer(ctx, x, y, z)
			}
			extFH3Placer(ctx, x, y, z) // unconditional, per the preserved quirk
			if ctx.Rng.Float64() < 0.3522 {
				extFH3Placer(ctx, x, y, z)
			}
			return ActionReacted
		}
	}
	if final {
		ctx.Lattice.Set(x, y, z, solidAnalog[catalog.DIFFCACL2])
		return ActionReacted
	}
	return diffuseOrStay(ctx, x, y, z, nx, ny, nz, direction, catalog.DIFFCACL2)
}
