package placement

import (
	"testing"

	"github.com/jwbullard/VCCTL-sub005/catalog"
	"github.com/jwbullard/VCCTL-sub005/config"
	"github.com/jwbullard/VCCTL-sub005/lattice"
	"github.com/jwbullard/VCCTL-sub005/simctx"
)

func newTestContext(x, y, z int, seed uint64) *simctx.Context {
	l := lattice.New(x, y, z, 1.0, catalog.POROSITY)
	cfg := config.Default()
	cfg.Seed = seed
	return simctx.New(l, cfg)
}

func TestExtCHPlacesLocally(t *testing.T) {
	ctx := newTestContext(5, 5, 5, 1)
	r := ExtCH(ctx, 2, 2, 2)
	if !r.Placed {
		t.Fatal("expected local placement to succeed: origin is surrounded by porosity")
	}
	if ctx.Lattice.At(r.X, r.Y, r.Z) != catalog.CH {
		t.Fatalf("expected CH at placed coordinate, got %v", ctx.Lattice.At(r.X, r.Y, r.Z))
	}
}

func TestExtFH3NonLocalFallback(t *testing.T) {
	ctx := newTestContext(4, 4, 4, 7)
	// Fill every voxel with FH3 except the origin and one distant
	// porosity voxel, forcing the local phase to exhaust and the
	// non-local fallback to pick one of the two porosity voxels, both of
	// which touch FH3.
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			for z := 0; z < 4; z++ {
				ctx.Lattice.Set(x, y, z, catalog.FH3)
			}
		}
	}
	ctx.Lattice.Set(0, 0, 0, catalog.POROSITY)
	ctx.Lattice.Set(3, 3, 3, catalog.POROSITY)
	r := ExtFH3(ctx, 0, 0, 0)
	if !r.Placed {
		t.Fatal("expected non-local fallback to place FH3 somewhere")
	}
	if ctx.Lattice.At(r.X, r.Y, r.Z) != catalog.FH3 {
		t.Fatalf("expected FH3 at placed coordinate, got %v", ctx.Lattice.At(r.X, r.Y, r.Z))
	}
}

func TestExtEttrForbidsSilicateNeighbor(t *testing.T) {
	ctx := newTestContext(3, 3, 3, 3)
	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			for z := 0; z < 3; z++ {
				ctx.Lattice.Set(x, y, z, catalog.C3S)
			}
		}
	}
	ctx.Lattice.Set(1, 1, 1, catalog.POROSITY)
	r := ExtEttr(ctx, 1, 1, 1, EttrPrimary)
	if r.Placed {
		t.Fatal("expected silicate exclusion to forbid the only candidate voxel")
	}
}

func TestExtEttrC4AFVariantUsesIronRichProduct(t *testing.T) {
	ctx := newTestContext(3, 3, 3, 5)
	r := ExtEttr(ctx, 1, 1, 1, EttrC4AF)
	if !r.Placed {
		t.Fatal("expected local placement to succeed")
	}
	if ctx.Lattice.At(r.X, r.Y, r.Z) != catalog.ETTRC4AF {
		t.Fatalf("expected ETTRC4AF, got %v", ctx.Lattice.At(r.X, r.Y, r.Z))
	}
}

func TestLocalAttemptStopsAfterAllSixDirectionsTried(t *testing.T) {
	ctx := newTestContext(3, 3, 3, 11)
	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			for z := 0; z < 3; z++ {
				ctx.Lattice.Set(x, y, z, catalog.CH)
			}
		}
	}
	r := localAttempt(ctx, 1, 1, 1, catalog.CH, localAttemptsBulk)
	if r.Placed {
		t.Fatal("no porosity neighbors exist; local attempt must fail")
	}
	if ctx.Rng.Calls() >= localAttemptsBulk {
		t.Fatalf("expected the search to stop once all six directions were tried, used %d draws", ctx.Rng.Calls())
	}
}
