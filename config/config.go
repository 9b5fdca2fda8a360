// Package config implements the simulation configuration surface
// described in spec.md section 6: the options an external caller
// supplies once at startup (seed, voxel resolution, CSH geometry mode,
// per-phase solubility, CSH molar volume by cycle, growth/threshold
// reaction parameters) before handing the lattice to the hydration
// core.
package config

import (
	"encoding/json"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/jwbullard/VCCTL-sub005/catalog"
)

// CshGeom selects whether precipitated CSH picks a plate orientation.
type CshGeom string

const (
	Random CshGeom = "RANDOM"
	Plate  CshGeom = "PLATE"
)

// Config holds every recognized startup option from spec.md section 6.
type Config struct {
	Seed       uint64  `json:"seed" toml:"seed"`
	Res        float64 `json:"res" toml:"res"`
	Cshgeom    CshGeom `json:"cshgeom" toml:"cshgeom"`
	Chflag     bool    `json:"chflag" toml:"chflag"`
	Crackcycle int     `json:"crackcycle" toml:"crackcycle"`
	Stepmax    int     `json:"stepmax" toml:"stepmax"`

	CSHPorosity     float64 `json:"csh_porosity" toml:"csh_porosity"`
	POZZCSHPorosity float64 `json:"pozzcsh_porosity" toml:"pozzcsh_porosity"`
	SLAGCSHPorosity float64 `json:"slagcsh_porosity" toml:"slagcsh_porosity"`

	TempCur    float64 `json:"temp_cur" toml:"temp_cur"`
	AlphaCur   float64 `json:"alpha_cur" toml:"alpha_cur"`
	AlphaFaCur float64 `json:"alpha_fa_cur" toml:"alpha_fa_cur"`

	// Soluble maps phase name -> runtime solubility override. Phases
	// absent from this map fall back to catalog.Info.DefaultSoluble.
	Soluble map[string]bool `json:"soluble" toml:"soluble"`

	// Molarvcsh[c] is the CSH molar volume (cm^3/mol) at cycle c; the
	// last entry is held constant for cycles beyond len(Molarvcsh).
	Molarvcsh []float64 `json:"molarvcsh" toml:"molarvcsh"`

	// Reaction growth probabilities, acceptance thresholds, and
	// nucleation cap/scale constants — named parameters that NewRates
	// reads into Rates by name lookup in a fun.Prms list, matching the
	// teacher's mdl/*.Init parameter-binding idiom.
	Params map[string]float64 `json:"params" toml:"params"`
}

// Default returns a Config with the documented defaults for the
// porosity fractions (spec.md section 6) and an empty parameter set;
// callers overlay their own values by setting fields or by loading a file.
func Default() *Config {
	return &Config{
		Res:             1.0,
		Cshgeom:         Random,
		Stepmax:         6,
		CSHPorosity:     0.38,
		POZZCSHPorosity: 0.2,
		SLAGCSHPorosity: 0.2,
		Soluble:         map[string]bool{},
		Params:          map[string]float64{},
	}
}

// LoadJSON reads a Config from JSON.
func LoadJSON(r io.Reader) (*Config, error) {
	c := Default()
	if err := json.NewDecoder(r).Decode(c); err != nil {
		return nil, chk.Err("config: invalid JSON: %v", err)
	}
	return c, nil
}

// LoadTOML reads a Config from TOML, the format spatialmodel-inmap
// uses for its own run configuration.
func LoadTOML(r io.Reader) (*Config, error) {
	c := Default()
	if _, err := toml.DecodeReader(r, c); err != nil {
		return nil, chk.Err("config: invalid TOML: %v", err)
	}
	return c, nil
}

// SolubleOverride resolves the runtime solubility of id, falling back
// to the catalog default when id is not named in c.Soluble.
func (c *Config) SolubleOverride(id catalog.PhaseID) bool {
	info, err := catalog.Lookup(id)
	if err != nil {
		return false
	}
	if v, ok := c.Soluble[info.Name]; ok {
		return v
	}
	return info.DefaultSoluble
}

// MolarVolumeCSH returns the CSH molar volume at the given cycle,
// holding the last tabulated value constant beyond the table's range.
func (c *Config) MolarVolumeCSH(cycle int) float64 {
	if len(c.Molarvcsh) == 0 {
		return 108.0 // catalog.CSH's static molar volume, as a sane fallback
	}
	if cycle < 0 {
		cycle = 0
	}
	if cycle >= len(c.Molarvcsh) {
		return c.Molarvcsh[len(c.Molarvcsh)-1]
	}
	return c.Molarvcsh[cycle]
}

// ToParams converts c.Params into a fun.Prms list, the shape the
// teacher's material models accept for Init.
func (c *Config) ToParams() fun.Prms {
	prms := make(fun.Prms, 0, len(c.Params))
	for name, v := range c.Params {
		prms = append(prms, &fun.Prm{N: name, V: v})
	}
	return prms
}
