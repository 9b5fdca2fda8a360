package simctx

import (
	"testing"

	"github.com/jwbullard/VCCTL-sub005/catalog"
	"github.com/jwbullard/VCCTL-sub005/config"
	"github.com/jwbullard/VCCTL-sub005/lattice"
)

func TestNewWiresDefaults(t *testing.T) {
	l := lattice.New(4, 4, 4, 1.0, catalog.POROSITY)
	c := New(l, nil)
	if c.Lattice != l {
		t.Fatal("expected Context to hold the given lattice")
	}
	if c.Registry == nil || c.Rng == nil || c.Rates == nil || c.Diag == nil {
		t.Fatal("expected New to wire registry, rng, rates, diag")
	}
	if c.RunID.String() == "" {
		t.Fatal("expected a non-empty run id")
	}
}

func TestNewHonorsGivenConfig(t *testing.T) {
	l := lattice.New(2, 2, 2, 1.0, catalog.POROSITY)
	cfg := config.Default()
	cfg.Seed = 99
	cfg.Crackcycle = 5
	c := New(l, cfg)
	if c.Config != cfg {
		t.Fatal("expected Context to retain the given config")
	}
	if c.Crackcycle != 5 {
		t.Fatalf("expected crackcycle 5, got %d", c.Crackcycle)
	}
}

func TestPastCrackCycle(t *testing.T) {
	l := lattice.New(2, 2, 2, 1.0, catalog.POROSITY)
	cfg := config.Default()
	cfg.Crackcycle = 10
	c := New(l, cfg)
	c.Cyccnt = 5
	if c.PastCrackCycle() {
		t.Fatal("expected cycle 5 to not be past crackcycle 10")
	}
	c.Cyccnt = 11
	if !c.PastCrackCycle() {
		t.Fatal("expected cycle 11 to be past crackcycle 10")
	}
}
