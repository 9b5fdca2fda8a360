// Package catalog defines the fixed phase catalogue shared by every
// voxel in the hydration lattice: phase identities, densities, molar
// volumes, and the porosity/solid/diffusing partition that the rest of
// the core dispatches on.
package catalog

import (
	"fmt"

	"github.com/cpmech/gosl/chk"
)

// PhaseID is the single numeric namespace spanning porosity kinds,
// clinker/mineral solids, hydration-product solids, and diffusing
// species. Count vectors, edgecnt, and the species dispatch table all
// key on PhaseID.
type PhaseID int

// Porosity kinds.
const (
	POROSITY PhaseID = iota
	CRACKP
	EMPTYP
)

// Clinker and mineral solid phases.
const (
	C3S PhaseID = iota + 100
	C2S
	C3A
	OC3A
	C4AF
	K2SO4
	NA2SO4
	GYPSUM
	HEMIHYD
	ANHYDRITE
	CACL2
	CAS2
	ASG
	SFUME
	AMSIL
	SLAG
	CACO3
	INERTAGG
)

// Hydration-product solid phases.
const (
	CSH PhaseID = iota + 200
	POZZCSH
	SLAGCSH
	CH
	FH3
	ETTR
	ETTRC4AF
	AFM
	AFMC
	C3AH6
	GYPSUMS
	STRAT
	FRIEDEL
)

// Diffusing species phases.
const (
	DIFFCSH PhaseID = iota + 300
	DIFFCH
	DIFFFH3
	DIFFETTR
	DIFFGYP
	DIFFC3A
	DIFFC4A
	DIFFHEM
	DIFFANH
	DIFFCAS2
	DIFFAS
	DIFFCACL2
	DIFFCACO3
	DIFFSO4
	ABSGYP
)

// Kind classifies a phase into one of the four disjoint partitions
// described in spec.md section 3.
type Kind int

const (
	KindPorosity Kind = iota
	KindClinker
	KindProduct
	KindDiffusing
)

// Info holds the static properties of one phase.
type Info struct {
	ID              PhaseID
	Name            string
	SpecificGravity float64 // dimensionless, relative to water
	MolarVolume     float64 // cm^3/mol
	Kind            Kind
	DefaultSoluble  bool // baseline value for the runtime Soluble[] flag
}

func (k Kind) IsDiffusing() bool { return k == KindDiffusing }
func (k Kind) IsPorosity() bool  { return k == KindPorosity }

var table = map[PhaseID]Info{
	POROSITY: {POROSITY, "POROSITY", 1.0, 18.02, KindPorosity, false},
	CRACKP:   {CRACKP, "CRACKP", 1.0, 18.02, KindPorosity, false},
	EMPTYP:   {EMPTYP, "EMPTYP", 0.0, 0.0, KindPorosity, false},

	C3S:       {C3S, "C3S", 3.21, 71.129, KindClinker, true},
	C2S:       {C2S, "C2S", 3.28, 52.513, KindClinker, true},
	C3A:       {C3A, "C3A", 3.038, 89.14, KindClinker, true},
	OC3A:      {OC3A, "OC3A", 3.038, 89.14, KindClinker, true},
	C4AF:      {C4AF, "C4AF", 3.73, 130.29, KindClinker, true},
	K2SO4:     {K2SO4, "K2SO4", 2.66, 65.33, KindClinker, true},
	NA2SO4:    {NA2SO4, "NA2SO4", 2.68, 53.0, KindClinker, true},
	GYPSUM:    {GYPSUM, "GYPSUM", 2.32, 74.21, KindClinker, true},
	HEMIHYD:   {HEMIHYD, "HEMIHYD", 2.74, 52.973, KindClinker, true},
	ANHYDRITE: {ANHYDRITE, "ANHYDRITE", 2.61, 45.305, KindClinker, true},
	CACL2:     {CACL2, "CACL2", 2.15, 51.62, KindClinker, true},
	CAS2:      {CAS2, "CAS2", 3.08, 69.9, KindClinker, true},
	ASG:       {ASG, "ASG", 2.74, 53.0, KindClinker, true},
	SFUME:     {SFUME, "SFUME", 2.2, 27.3, KindClinker, true},
	AMSIL:     {AMSIL, "AMSIL", 2.2, 27.3, KindClinker, true},
	SLAG:      {SLAG, "SLAG", 2.91, 52.0, KindClinker, true},
	CACO3:     {CACO3, "CACO3", 2.71, 36.93, KindClinker, false},
	INERTAGG:  {INERTAGG, "INERTAGG", 2.65, 0.0, KindClinker, false},

	CSH:      {CSH, "CSH", 2.11, 108.0, KindProduct, false},
	POZZCSH:  {POZZCSH, "POZZCSH", 2.11, 108.0, KindProduct, false},
	SLAGCSH:  {SLAGCSH, "SLAGCSH", 2.11, 108.0, KindProduct, false},
	CH:       {CH, "CH", 2.24, 33.1, KindProduct, true},
	FH3:      {FH3, "FH3", 3.0, 69.803, KindProduct, true},
	ETTR:     {ETTR, "ETTR", 1.75, 735.01, KindProduct, true},
	ETTRC4AF: {ETTRC4AF, "ETTRC4AF", 1.75, 735.01, KindProduct, true},
	AFM:      {AFM, "AFM", 1.99, 309.82, KindProduct, true},
	AFMC:     {AFMC, "AFMC", 2.17, 261.91, KindProduct, true},
	C3AH6:    {C3AH6, "C3AH6", 2.52, 150.12, KindProduct, true},
	GYPSUMS:  {GYPSUMS, "GYPSUMS", 2.32, 74.21, KindProduct, true},
	STRAT:    {STRAT, "STRAT", 1.94, 216.26, KindProduct, true},
	FRIEDEL:  {FRIEDEL, "FRIEDEL", 1.88, 296.58, KindProduct, true},

	DIFFCSH:   {DIFFCSH, "DIFFCSH", 0.0, 0.0, KindDiffusing, false},
	DIFFCH:    {DIFFCH, "DIFFCH", 0.0, 0.0, KindDiffusing, false},
	DIFFFH3:   {DIFFFH3, "DIFFFH3", 0.0, 0.0, KindDiffusing, false},
	DIFFETTR:  {DIFFETTR, "DIFFETTR", 0.0, 0.0, KindDiffusing, false},
	DIFFGYP:   {DIFFGYP, "DIFFGYP", 0.0, 0.0, KindDiffusing, false},
	DIFFC3A:   {DIFFC3A, "DIFFC3A", 0.0, 0.0, KindDiffusing, false},
	DIFFC4A:   {DIFFC4A, "DIFFC4A", 0.0, 0.0, KindDiffusing, false},
	DIFFHEM:   {DIFFHEM, "DIFFHEM", 0.0, 0.0, KindDiffusing, false},
	DIFFANH:   {DIFFANH, "DIFFANH", 0.0, 0.0, KindDiffusing, false},
	DIFFCAS2:  {DIFFCAS2, "DIFFCAS2", 0.0, 0.0, KindDiffusing, false},
	DIFFAS:    {DIFFAS, "DIFFAS", 0.0, 0.0, KindDiffusing, false},
	DIFFCACL2: {DIFFCACL2, "DIFFCACL2", 0.0, 0.0, KindDiffusing, false},
	DIFFCACO3: {DIFFCACO3, "DIFFCACO3", 0.0, 0.0, KindDiffusing, false},
	DIFFSO4:   {DIFFSO4, "DIFFSO4", 0.0, 0.0, KindDiffusing, false},
	ABSGYP:    {ABSGYP, "ABSGYP", 0.0, 0.0, KindDiffusing, false},
}

// Lookup returns the static Info for id, or an error if id is not part
// of the catalogue.
func Lookup(id PhaseID) (Info, error) {
	info, ok := table[id]
	if !ok {
		return Info{}, chk.Err("catalog: unknown phase id %d", id)
	}
	return info, nil
}

// MustLookup panics if id is not in the catalogue; reserved for
// contexts (e.g. static dispatch-table construction) where an unknown
// id is a programming error, not an input error.
func MustLookup(id PhaseID) Info {
	info, err := Lookup(id)
	if err != nil {
		panic(err)
	}
	return info
}

// IsDiffusing reports whether id names a diffusing (mobile) species.
func IsDiffusing(id PhaseID) bool {
	info, ok := table[id]
	return ok && info.Kind == KindDiffusing
}

// IsPorosity reports whether id is one of POROSITY, CRACKP, or EMPTYP.
func IsPorosity(id PhaseID) bool {
	info, ok := table[id]
	return ok && info.Kind == KindPorosity
}

// IsSaturatedPorosity reports whether id is a saturated porosity kind
// (POROSITY or CRACKP) — the kind that diffusing species may occupy.
func IsSaturatedPorosity(id PhaseID) bool {
	return id == POROSITY || id == CRACKP
}

// ByName resolves a catalogue entry by its canonical name (case
// sensitive, matching the constant names), for config and image-file
// loaders that address phases by name rather than numeric id.
func ByName(name string) (PhaseID, bool) {
	for id, info := range table {
		if info.Name == name {
			return id, true
		}
	}
	return 0, false
}

// All returns every phase id in the catalogue, sorted by id, for
// iteration in Count-vector bookkeeping and test fixtures.
func All() []PhaseID {
	ids := make([]PhaseID, 0, len(table))
	for id := range table {
		ids = append(ids, id)
	}
	// simple insertion sort: the catalogue is small and static, so
	// pulling in sort.Slice for this is not warranted.
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j-1] > ids[j]; j-- {
			ids[j-1], ids[j] = ids[j], ids[j-1]
		}
	}
	return ids
}

func (id PhaseID) String() string {
	if info, ok := table[id]; ok {
		return info.Name
	}
	return fmt.Sprintf("PhaseID(%d)", int(id))
}
