package chemistry

// Ion identifies one of the five species the pore-solution solver
// tracks (spec.md section 4.H).
type Ion int

const (
	IonCa Ion = iota
	IonOH
	IonK
	IonNa
	IonSO4
)

// ionProps holds the per-ion constants the activity-coefficient and
// conductivity formulas need: valence, the Debye-Huckel extended-law
// ion-size parameter (angstrom, Kielland 1937 table), and the limiting
// equivalent conductance (S*cm^2/mol, standard aqueous reference
// values) spec.md section 4.H's conductivity sum uses.
type ionProps struct {
	z       float64
	aSize   float64
	lambda0 float64
}

var props = map[Ion]ionProps{
	IonCa:  {z: 2, aSize: 6.0, lambda0: 59.5},
	IonOH:  {z: 1, aSize: 3.5, lambda0: 198.0},
	IonK:   {z: 1, aSize: 3.0, lambda0: 73.5},
	IonNa:  {z: 1, aSize: 4.0, lambda0: 50.1},
	IonSO4: {z: 2, aSize: 4.0, lambda0: 80.0},
}

// Constants bundles the solubility products, Debye-Huckel reference
// constants, and the Onsager conductivity-falloff constant spec.md
// section 4.H leaves as externally-supplied reaction/activity
// parameters (it pins the formulas, not every numeric constant they
// use). Defaults are documented literature values for the cement pore
// solution system; callers needing calibration overrides can replace
// this struct wholesale.
type Constants struct {
	KspCH0        float64 // mol^3/L^3, CH solubility product before T adjustment
	KspGypsum     float64 // mol^2/L^2
	KspSyngenite  float64 // mol^4/L^4, spec.md gives this directly (~1e-7)
	DebyeHuckelA0 float64 // reference A(T) at T=295K
	DebyeHuckelB0 float64 // reference B(T) at T=295K
	OnsagerG      float64 // conductivity falloff constant
}

// DefaultConstants returns the literature-grounded defaults used when
// a run does not override them.
func DefaultConstants() Constants {
	return Constants{
		KspCH0:        5.02e-6,
		KspGypsum:     3.14e-5,
		KspSyngenite:  1.0e-7,
		DebyeHuckelA0: 0.4918,
		DebyeHuckelB0: 0.3248,
		OnsagerG:      0.5,
	}
}

// kspCH returns the temperature-adjusted CH solubility product, per
// spec.md section 4.H's (1.534385 - 0.02057*T_C) correction factor.
func (c Constants) kspCH(tempC float64) float64 {
	return c.KspCH0 * (1.534385 - 0.02057*tempC)
}
