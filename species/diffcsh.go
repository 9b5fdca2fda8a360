package species

import (
	"github.com/jwbullard/VCCTL-sub005/catalog"
	"github.com/jwbullard/VCCTL-sub005/config"
	"github.com/jwbullard/VCCTL-sub005/simctx"
)

// admissibleFaces returns the two CSH plate orientations compatible
// with continuing a needle growing in the given axis-aligned
// direction: the two orientations whose normal is NOT the movement
// axis, so growth along an axis extends a plate lying within that
// axis's plane rather than crossing into a perpendicular one.
func admissibleFaces(direction int) (a, b uint8) {
	switch direction {
	case 1, 2: // x-axis
		return 2, 3
	case 3, 4: // y-axis
		return 1, 3
	default: // z-axis
		return 1, 2
	}
}

// setNewFace records the plate orientation of a freshly placed CSH
// pixel: a uniformly sampled face under PLATE geometry, or 0 (random)
// otherwise.
func setNewFace(ctx *simctx.Context, x, y, z int) {
	if ctx.Config.Cshgeom != config.Plate {
		ctx.Lattice.SetFace(x, y, z, 0)
		return
	}
	ctx.Lattice.SetFace(x, y, z, uint8(ctx.Rng.IntN(3)+1))
}

// precipitateCsh converts (x,y,z) into solid CSH, stamping its age and
// plate orientation.
func precipitateCsh(ctx *simctx.Context, x, y, z int) {
	ctx.Lattice.Set(x, y, z, catalog.CSH)
	ctx.Lattice.SetCshAge(x, y, z, int32(ctx.Cyccnt))
	setNewFace(ctx, x, y, z)
}

// MoveCsh implements DIFFCSH: growth against existing CSH scaled by
// the Molarvcsh[Cyccnt]/Molarvcsh[cycorig] ratio (with PLATE-geometry
// face compatibility gating the collision), pozzolanic conversion
// against silica fume, and plain conversion against the other gel
// phases and CH.
func MoveCsh(ctx *simctx.Context, x, y, z int, final bool, pnuc float64) int {
	nx, ny, nz, direction := pickNeighbor(ctx, x, y, z)
	neighbor := ctx.Lattice.At(nx, ny, nz)

	switch neighbor {
	case catalog.CSH:
		compatible := ctx.Config.Cshgeom != config.Plate
		if !compatible {
			existing := ctx.Lattice.Face(nx, ny, nz)
			a, b := admissibleFaces(direction)
			compatible = existing == 0 || existing == a || existing == b
		}
		if compatible {
			cycOrig := int(ctx.Lattice.CshAge(nx, ny, nz))
			if cycOrig < 0 {
				cycOrig = ctx.Cyccnt
			}
			ratio := ctx.Config.MolarVolumeCSH(ctx.Cyccnt) / ctx.Config.MolarVolumeCSH(cycOrig)
			precipitateCsh(ctx, x, y, z)
			if ratio > 1 && ctx.Rng.Float64() < ratio-1 {
				extCshPlacer(ctx, x, y, z)
			}
			return ActionReacted
		}
	case catalog.SFUME:
		ctx.Lattice.Set(x, y, z, catalog.POZZCSH)
		consumed := ctx.Rng.Float64() < 0.136
		remainder := 0.46
		if consumed {
			ctx.Lattice.Set(nx, ny, nz, catalog.POZZCSH)
			remainder = 0.46 - 0.136
		}
		if ctx.Rng.Float64() < remainder {
			extPozzPlacer(ctx, x, y, z)
		}
		return ActionReacted
	case catalog.SLAGCSH, catalog.POZZCSH, catalog.CH:
		precipitateCsh(ctx, x, y, z)
		return ActionReacted
	}

	if final {
		precipitateCsh(ctx, x, y, z)
		return ActionReacted
	}
	return diffuseOrStay(ctx, x, y, z, nx, ny, nz, direction, catalog.DIFFCSH)
}
