package species

import (
	"github.com/jwbullard/VCCTL-sub005/catalog"
	"github.com/jwbullard/VCCTL-sub005/simctx"
)

// MoveAnh implements DIFFANH (dissolved anhydrite).
//
// Preserved quirk (spec.md section 9, Open Questions): the reference
// source's moveanh checks the C3A-family branch and the C4AF branch as
// two independent `if`s rather than an `if`/`else if`, so nothing stops
// both from firing against the same neighbor read. Since a single
// neighbor voxel can only ever report one phase id, the two branches
// are mutually exclusive in practice here exactly as they were in the
// source — but the structure (no early return between them) is kept
// rather than collapsing it into a switch, per the instruction to
// preserve the ambiguity rather than "fix" it.
func MoveAnh(ctx *simctx.Context, x, y, z int, final bool, pnuc float64) int {
	nx, ny, nz, direction := pickNeighbor(ctx, x, y, z)
	neighbor := ctx.Lattice.At(nx, ny, nz)
	fired := false

	if neighbor == catalog.C3A || neighbor == catalog.OC3A || neighbor == catalog.DIFFC3A {
		if fireReaction(ctx, x, y, z, 0.569, catalog.ETTR, 3, 0.6935, extEttrPrimary) {
			fired = true
		}
	}
	if neighbor == catalog.C4AF {
		sides := []sideProduct{{0.2584, extCHPlacer}, {0.5453, extFH3Placer}}
		if fireReaction(ctx, x, y, z, 0.8174, catalog.ETTRC4AF, 3, 0.6935, extEttrC4AF, sides...) {
			fired = true
		}
	}
	if fired {
		return ActionReacted
	}
	if final {
		ctx.Lattice.Set(x, y, z, solidAnalog[catalog.DIFFANH])
		return ActionReacted
	}
	return diffuseOrStay(ctx, x, y, z, nx, ny, nz, direction, catalog.DIFFANH)
}
