package species

import (
	"github.com/jwbullard/VCCTL-sub005/catalog"
	"github.com/jwbullard/VCCTL-sub005/simctx"
)

// MoveHem implements DIFFHEM (dissolved hemihydrate).
//
// spec.md's Open Questions flag that the source's moveanh sometimes
// falls through from the C3A branch into the C4AF branch with no
// "else if", letting both fire on the same voxel; that quirk belongs
// to MoveAnh (DIFFANH), not this routine — MoveHem's branches are
// mutually exclusive, matching the reference source.
func MoveHem(ctx *simctx.Context, x, y, z int, final bool, pnuc float64) int {
	nx, ny, nz, direction := pickNeighbor(ctx, x, y, z)
	switch ctx.Lattice.At(nx, ny, nz) {
	case catalog.C3A, catalog.OC3A, catalog.DIFFC3A:
		if fireReaction(ctx, x, y, z, 0.5583, catalog.ETTR, 3, 0.6053, extEttrPrimary) {
			return ActionReacted
		}
	case catalog.C4AF:
		sides := []sideProduct{{0.2584, extCHPlacer}, {0.5453, extFH3Placer}}
		if fireReaction(ctx, x, y, z, 0.802, catalog.ETTRC4AF, 3, 0.6053, extEttrC4AF, sides...) {
			return ActionReacted
		}
	}
	if final {
		ctx.Lattice.Set(x, y, z, solidAnalog[catalog.DIFFHEM])
		return ActionReacted
	}
	return diffuseOrStay(ctx, x, y, z, nx, ny, nz, direction, catalog.DIFFHEM)
}
