package species

import (
	"github.com/jwbullard/VCCTL-sub005/catalog"
	"github.com/jwbullard/VCCTL-sub005/simctx"
)

// MoveGyp implements DIFFGYP: dissolved gypsum reacting with aluminate
// (C3A/OC3A/DIFFC3A), iron-aluminate (DIFFC4A), or ferrite (C4AF) to
// form ettringite or its iron-rich analog. DIFFGYP has no nucleation
// pool of its own.
func MoveGyp(ctx *simctx.Context, x, y, z int, final bool, pnuc float64) int {
	nx, ny, nz, direction := pickNeighbor(ctx, x, y, z)
	switch ctx.Lattice.At(nx, ny, nz) {
	case catalog.C3A, catalog.OC3A, catalog.DIFFC3A:
		if fireReaction(ctx, x, y, z, 0.40, catalog.ETTR, 2, 0.30, extEttrPrimary) {
			return ActionReacted
		}
	case catalog.DIFFC4A:
		if fireReaction(ctx, x, y, z, 0.40, catalog.ETTRC4AF, 2, 0.30, extEttrC4AF) {
			return ActionReacted
		}
	case catalog.C4AF:
		sides := []sideProduct{{0.2584, extCHPlacer}, {0.5453, extFH3Placer}}
		if fireReaction(ctx, x, y, z, 0.575, catalog.ETTRC4AF, 2, 0.30, extEttrC4AF, sides...) {
			return ActionReacted
		}
	}
	if final {
		ctx.Lattice.Set(x, y, z, solidAnalog[catalog.DIFFGYP])
		return ActionReacted
	}
	return diffuseOrStay(ctx, x, y, z, nx, ny, nz, direction, catalog.DIFFGYP)
}
