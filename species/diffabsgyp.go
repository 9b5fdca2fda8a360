package species

import (
	"github.com/jwbullard/VCCTL-sub005/catalog"
	"github.com/jwbullard/VCCTL-sub005/simctx"
)

// MoveAbsgyp implements ABSGYP, the surface-absorbed gypsum tracer
// species. spec.md's stoichiometry table (section 4.F) does not give
// it a reaction row — AGRATE and Gypabsprob (section 6) govern its
// absorption kinetics upstream, in the dissolution driver external to
// this package — so here it only diffuses and, on the final cycle,
// reverts to solid gypsum like the other sulfate-source species.
func MoveAbsgyp(ctx *simctx.Context, x, y, z int, final bool, pnuc float64) int {
	nx, ny, nz, direction := pickNeighbor(ctx, x, y, z)
	if final {
		ctx.Lattice.Set(x, y, z, solidAnalog[catalog.ABSGYP])
		return ActionReacted
	}
	return diffuseOrStay(ctx, x, y, z, nx, ny, nz, direction, catalog.ABSGYP)
}
