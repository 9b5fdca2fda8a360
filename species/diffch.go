package species

import (
	"github.com/jwbullard/VCCTL-sub005/catalog"
	"github.com/jwbullard/VCCTL-sub005/simctx"
)

// MoveCh implements DIFFCH (dissolved calcium hydroxide): spontaneous
// nucleation from the CH pool's saturation probability, growth against
// existing CH, growth on aggregate surfaces when Chflag is set,
// pozzolanic conversion against silica fume or amorphous silica, and
// reaction with dissolved amorphous silica to form stratlingite.
func MoveCh(ctx *simctx.Context, x, y, z int, final bool, pnuc float64) int {
	if nucleate(ctx, x, y, z, final, pnuc, catalog.CH) {
		return ActionReacted
	}

	nx, ny, nz, direction := pickNeighbor(ctx, x, y, z)
	switch ctx.Lattice.At(nx, ny, nz) {
	case catalog.CH:
		if ctx.Rng.Float64() < ctx.Rates.CHGROW {
			ctx.Lattice.Set(x, y, z, catalog.CH)
			return ActionReacted
		}
	case catalog.INERTAGG, catalog.CACO3:
		if ctx.Config.Chflag && ctx.Rng.Float64() < ctx.Rates.CHGROWAGG {
			ctx.Lattice.Set(x, y, z, catalog.CH)
			return ActionReacted
		}
	case catalog.SFUME:
		if ctx.Rng.Float64() < ctx.Rates.PHfactorSfume*ctx.Rates.Psfume {
			ctx.Lattice.Set(x, y, z, catalog.POZZCSH)
			acicularChain(ctx, x, y, z, 1, 0.05466, extPozzPlacer)
			return ActionReacted
		}
	case catalog.AMSIL:
		if ctx.Rng.Float64() < ctx.Rates.PHfactorAmsil*ctx.Rates.Pamsil {
			ctx.Lattice.Set(x, y, z, catalog.POZZCSH)
			acicularChain(ctx, x, y, z, 1, 0.05466, extPozzPlacer)
			return ActionReacted
		}
	case catalog.DIFFAS:
		ctx.Lattice.Set(x, y, z, catalog.STRAT)
		acicularChain(ctx, x, y, z, 1, 0.5035, extStratPlacer)
		return ActionReacted
	}

	if final {
		ctx.Lattice.Set(x, y, z, solidAnalog[catalog.DIFFCH])
		return ActionReacted
	}
	return diffuseOrStay(ctx, x, y, z, nx, ny, nz, direction, catalog.DIFFCH)
}
