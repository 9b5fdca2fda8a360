package scheduler

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/num"

	"github.com/jwbullard/VCCTL-sub005/catalog"
	"github.com/jwbullard/VCCTL-sub005/config"
	"github.com/jwbullard/VCCTL-sub005/lattice"
	"github.com/jwbullard/VCCTL-sub005/registry"
	"github.com/jwbullard/VCCTL-sub005/simctx"
)

func newTestContext(n int, seed uint64, cfg *config.Config) *simctx.Context {
	l := lattice.New(n, n, n, 1.0, catalog.POROSITY)
	if cfg == nil {
		cfg = config.Default()
	}
	cfg.Seed = seed
	return simctx.New(l, cfg)
}

func TestSaturationIsZeroAtZeroCount(t *testing.T) {
	if p := saturation(0, 0.9, 1000); p != 0 {
		t.Fatalf("expected 0 at zero count, got %v", p)
	}
}

func TestSaturationApproachesCapAsCountGrows(t *testing.T) {
	small := saturation(10, 0.9, 1000)
	large := saturation(100000, 0.9, 1000)
	if !(small < large) {
		t.Fatalf("expected saturation to grow with count: small=%v large=%v", small, large)
	}
	if large >= 0.9 {
		t.Fatalf("saturation must stay strictly below cap, got %v", large)
	}
	if large <= 0.89 {
		t.Fatalf("expected saturation to be nearly saturated at a huge count, got %v", large)
	}
}

func TestSaturationHandlesZeroScale(t *testing.T) {
	if p := saturation(500, 0.9, 0); p != 0 {
		t.Fatalf("expected 0 with zero scale (no division by zero), got %v", p)
	}
}

// saturationCurve is saturation's formula restated over a continuous
// count so its derivative can be probed by central differences;
// saturation itself takes an integer voxel count and cannot be
// perturbed by the small steps num.DerivCen needs.
func saturationCurve(count, cap_, scale float64) float64 {
	return cap_ * (1 - math.Exp(-count/scale))
}

func TestSaturationDerivativeMatchesCentralDifference(t *testing.T) {
	cap_, scale := 0.9, 1000.0
	tol := 1e-6
	verb := false
	for _, count := range []float64{10, 250, 1000, 5000} {
		ana := (cap_ / scale) * math.Exp(-count/scale)
		dnum := num.DerivCen(func(x float64, args ...interface{}) (res float64) {
			return saturationCurve(x, cap_, scale)
		}, count)
		chk.AnaNum(t, "dSaturation/dCount", tol, ana, dnum, verb)
	}
}

func TestComputeNucleationProbsPoolsGypsumSources(t *testing.T) {
	ctx := newTestContext(3, 1, nil)
	ctx.Lattice.Set(0, 0, 0, catalog.DIFFANH)
	ctx.Lattice.Set(0, 0, 1, catalog.DIFFHEM)
	ctx.Lattice.Set(0, 0, 2, catalog.DIFFSO4)
	probs := ComputeNucleationProbs(ctx)
	expected := saturation(3, ctx.Rates.GypCap, ctx.Rates.GypScale)
	if probs.Gyp != expected {
		t.Fatalf("expected pooled gypsum probability %v, got %v", expected, probs.Gyp)
	}
}

func TestPnucForRoutesOnlyPooledSpecies(t *testing.T) {
	probs := NucleationProbs{CH: 0.1, C3AH6: 0.2, FH3: 0.3, Gyp: 0.4}
	if pnucFor(catalog.DIFFCH, probs) != 0.1 {
		t.Fatal("DIFFCH should see the CH pool probability")
	}
	if pnucFor(catalog.DIFFSO4, probs) != 0.4 {
		t.Fatal("DIFFSO4 should see the pooled gypsum probability")
	}
	if pnucFor(catalog.DIFFCSH, probs) != 0 {
		t.Fatal("DIFFCSH has no nucleation pool and must see 0")
	}
}

func TestRunCycleRemovesStaleNodes(t *testing.T) {
	ctx := newTestContext(3, 2, nil)
	ctx.Lattice.Set(1, 1, 1, catalog.DIFFFH3)
	ref := ctx.Registry.Append(registry.Node{X: 1, Y: 1, Z: 1, ID: catalog.DIFFFH3})
	// Another reaction clobbers the voxel before the scheduler visits it.
	ctx.Lattice.Set(1, 1, 1, catalog.CSH)

	visited := RunCycle(ctx, false)
	if visited != 1 {
		t.Fatalf("expected exactly one node visited, got %d", visited)
	}
	if _, ok := ctx.Registry.Get(ref); ok {
		t.Fatal("expected the stale node to be unlinked")
	}
}

func TestRunCycleConsumesReactedNode(t *testing.T) {
	ctx := newTestContext(3, 3, nil)
	ctx.Lattice.Set(1, 1, 1, catalog.DIFFFH3)
	ref := ctx.Registry.Append(registry.Node{X: 1, Y: 1, Z: 1, ID: catalog.DIFFFH3})

	RunCycle(ctx, true) // final cycle forces unconditional precipitation
	if _, ok := ctx.Registry.Get(ref); ok {
		t.Fatal("expected the reacted node to be removed from the registry")
	}
	if ctx.Lattice.At(1, 1, 1) != catalog.FH3 {
		t.Fatalf("expected voxel to have precipitated to solid FH3, got %v", ctx.Lattice.At(1, 1, 1))
	}
}

func TestRunCycleHonorsStepmax(t *testing.T) {
	cfg := config.Default()
	cfg.Stepmax = 1
	ctx := newTestContext(4, 4, cfg)
	ctx.Lattice.Set(0, 0, 0, catalog.DIFFFH3)
	ctx.Lattice.Set(1, 1, 1, catalog.DIFFFH3)
	ctx.Registry.Append(registry.Node{X: 0, Y: 0, Z: 0, ID: catalog.DIFFFH3})
	ctx.Registry.Append(registry.Node{X: 1, Y: 1, Z: 1, ID: catalog.DIFFFH3})
	// Surround the first node with solid FH3 so its one visit always
	// reacts and unlinks it; a node that only diffused would keep its
	// entry.
	for _, p := range [][3]int{{1, 0, 0}, {3, 0, 0}, {0, 1, 0}, {0, 3, 0}, {0, 0, 1}, {0, 0, 3}} {
		ctx.Lattice.Set(p[0], p[1], p[2], catalog.FH3)
	}

	visited := RunCycle(ctx, false)
	if visited != 1 {
		t.Fatalf("expected Stepmax to cap visits at 1, got %d", visited)
	}
	if ctx.Registry.Len() != 1 {
		t.Fatalf("expected exactly one node to remain unvisited, got %d remaining", ctx.Registry.Len())
	}
}

func TestRunCyclesAdvancesCyccntAndFinalizesLastCycle(t *testing.T) {
	cfg := config.Default()
	cfg.Stepmax = 100
	ctx := newTestContext(3, 5, cfg)
	ctx.Lattice.Set(1, 1, 1, catalog.DIFFFH3)
	ctx.Registry.Append(registry.Node{X: 1, Y: 1, Z: 1, ID: catalog.DIFFFH3})

	RunCycles(ctx, 3)
	if ctx.Cyccnt != 3 {
		t.Fatalf("expected Cyccnt to advance by 3, got %d", ctx.Cyccnt)
	}
	if ctx.Registry.Len() != 0 || ctx.Lattice.Count(catalog.DIFFFH3) != 0 {
		t.Fatalf("expected the final cycle to precipitate every diffusing voxel, %d nodes remain", ctx.Registry.Len())
	}
}
