package species

import (
	"github.com/jwbullard/VCCTL-sub005/catalog"
	"github.com/jwbullard/VCCTL-sub005/simctx"
)

// MoveAs implements DIFFAS (dissolved amorphous silica) reacting with
// calcium hydroxide to form stratlingite.
//
// Preserved quirk (spec.md section 9, Open Questions): the reference
// source's comments describe a "factor of 0.32" remainder but the code
// itself uses 0.326; the code is authoritative, so 0.326 is what this
// routine uses — not the commented 0.32.
func MoveAs(ctx *simctx.Context, x, y, z int, final bool, pnuc float64) int {
	nx, ny, nz, direction := pickNeighbor(ctx, x, y, z)
	switch ctx.Lattice.At(nx, ny, nz) {
	case catalog.CH, catalog.DIFFCH:
		if fireReaction(ctx, x, y, z, 0.7538, catalog.STRAT, 2, 0.326, extStratPlacer) {
			return ActionReacted
		}
	}
	if final {
		ctx.Lattice.Set(x, y, z, solidAnalog[catalog.DIFFAS])
		return ActionReacted
	}
	return diffuseOrStay(ctx, x, y, z, nx, ny, nz, direction, catalog.DIFFAS)
}
