// Package simctx ties the lattice, phase catalogue, configuration,
// PRNG, and diffusing-species registry together into one explicit
// context object, replacing the reference implementation's file-scope
// globals (spec.md section 9, Design Notes: "Global mutable state").
// Every move routine and scheduler operation takes a *Context instead
// of reaching for package-level state.
package simctx

import (
	"github.com/google/uuid"
	"github.com/jwbullard/VCCTL-sub005/config"
	"github.com/jwbullard/VCCTL-sub005/diag"
	"github.com/jwbullard/VCCTL-sub005/lattice"
	"github.com/jwbullard/VCCTL-sub005/registry"
	"github.com/jwbullard/VCCTL-sub005/rng"
)

// IonState holds the pore-solution ion bookkeeping read and written by
// the chemistry solver (spec.md section 4.H): released alkali totals,
// cement and pozzolan masses, and the running syngenite precipitate
// count that persists across cycles.
type IonState struct {
	CementGrams   float64
	PozzolanGrams float64

	RsK, RsNa   float64 // total releasable K, Na (mol/g cement)
	TotK, TotNa float64 // cumulative released K, Na so far (mol/g cement)

	KperSyn         float64 // mol K consumed per mol syngenite precipitated
	MolesSynPrecip  float64 // running syngenite precipitate, mol/L pore solution
	EttringiteSolub bool    // true once ettringite has become soluble for this run

	// SynPrecipitatedLastCall tracks whether the most recently completed
	// chemistry.Solve call precipitated syngenite, the condition
	// spec.md section 4.H step 4 requires be false before a dissolution
	// event is allowed to fire.
	SynPrecipitatedLastCall bool
}

// Context is the explicit simulation state a hydration run operates
// on: the lattice, the active registry of diffusing voxels, the PRNG,
// resolved rate constants, and the chemistry ion state.
type Context struct {
	RunID uuid.UUID

	Lattice  *lattice.Lattice
	Registry *registry.Registry
	Rng      *rng.Stream
	Config   *config.Config
	Rates    *config.Rates
	Diag     diag.Sink

	Cyccnt     int
	Crackcycle int

	Ions IonState
}

// New builds a Context from a lattice and configuration, wiring a
// fresh registry, a seeded PRNG, resolved rate constants, and the
// default diagnostic sink.
func New(l *lattice.Lattice, cfg *config.Config) *Context {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Context{
		RunID:      uuid.New(),
		Lattice:    l,
		Registry:   registry.New(),
		Rng:        rng.New(cfg.Seed),
		Config:     cfg,
		Rates:      config.NewRates(cfg),
		Diag:       diag.Default{},
		Crackcycle: cfg.Crackcycle,
	}
}

// PastCrackCycle reports whether the current cycle is strictly past
// the configured crack cycle, the gate neighborhood.GetPorenv uses to
// decide whether cracked porosity can form.
func (c *Context) PastCrackCycle() bool {
	return c.Cyccnt > c.Crackcycle
}
