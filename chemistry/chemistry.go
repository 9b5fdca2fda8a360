// Package chemistry implements the pore-solution equilibrium solver
// (spec.md section 4.H): pore volume, alkali release, Debye-Huckel
// activity coefficients, a quartic Ca2+/OH-/SO4^2- charge-balance
// solve via Laguerre root-finding, syngenite precipitation/dissolution
// bookkeeping, and the derived pH/conductivity outputs.
package chemistry

import (
	"math"

	"github.com/cpmech/gosl/la"
	"gonum.org/v1/gonum/floats"

	"github.com/jwbullard/VCCTL-sub005/simctx"
)

const maxIStrengthIters = 10000

// Inputs collects the per-call state spec.md section 4.H lists as
// solver inputs beyond what lives on simctx.Context.Ions.
type Inputs struct {
	PorosityCount, CSHCount, PozzCSHCount, SlagCSHCount int
	TimeHours                                           float64 // elapsed time since mixing, drives the 90%->100% release ramp over the first hour
}

// Result is the solver's per-call output: the converged ion
// concentrations and activity coefficients, derived pH and
// conductivity, and the updated syngenite precipitate amount.
type Result struct {
	PoreVolumeLPerG   float64
	Conc              map[Ion]float64 // mol/L
	Gamma             map[Ion]float64
	IonicStrength     float64
	PH                float64
	ConductivitySPerM float64
	MolesSynPrecip    float64
	Converged         bool
	Iterations        int
}

// Solve runs one full pore-solution equilibrium calculation for the
// given lattice-derived counts and ctx.Ions state, mutating
// ctx.Ions.MolesSynPrecip in place per the syngenite step (spec.md
// section 4.H step 4) and returning the converged result.
//
// Preserved quirk (spec.md section 9, Open Questions): a syngenite
// precipitation or dissolution event re-enters the ionic-strength loop
// from scratch rather than resuming it — the re-entry's convergence
// check starts fresh (iteration count and previous-I both reset), it
// does not carry over the state of the loop that triggered it. Only
// one syngenite event is permitted per call to Solve, so this resets
// the inner loop at most once.
func Solve(ctx *simctx.Context, in Inputs, constants Constants) Result {
	poreVolume := poreVolumeLitersPerGram(in, ctx.Config.Res, ctx.Ions.CementGrams)

	kTotal, naTotal := releasedAlkalis(ctx.Ions, in.TimeHours)
	kTotal -= ctx.Ions.KperSyn * ctx.Ions.MolesSynPrecip

	conc := la.NewVector(5)
	conc[int(IonK)] = safeConc(kTotal, poreVolume)
	conc[int(IonNa)] = safeConc(naTotal, poreVolume)
	conc[int(IonCa)] = 1e-4
	conc[int(IonOH)] = 1e-3
	conc[int(IonSO4)] = 0

	gamma := map[Ion]float64{IonCa: 1, IonOH: 1, IonK: 1, IonNa: 1, IonSO4: 1}
	tempC := ctx.Config.TempCur
	tempK := tempC + 273.15

	converged, iter := runIonicStrengthLoop(ctx, conc, &gamma, constants, tempC, tempK)
	if !converged {
		ctx.Diag.Warn("chemistry: ionic-strength loop failed to converge after %d iterations, returning last values", maxIStrengthIters)
	}

	if applySyngeniteStep(ctx, conc, gamma, constants) {
		converged, iter = runIonicStrengthLoop(ctx, conc, &gamma, constants, tempC, tempK)
		if !converged {
			ctx.Diag.Warn("chemistry: post-syngenite ionic-strength loop failed to converge after %d iterations, returning last values", maxIStrengthIters)
		}
	}

	I := ionicStrength(conc)
	if I < 1 {
		I = 1
	}
	oh := conc[int(IonOH)]
	if oh < 1e-7 {
		oh = 1e-7
	}
	ph := 14 + math.Log10(oh*gamma[IonOH])
	conductivity := bulkConductivity(conc, I, constants)

	return Result{
		PoreVolumeLPerG: poreVolume,
		Conc: map[Ion]float64{
			IonCa: conc[int(IonCa)], IonOH: conc[int(IonOH)], IonK: conc[int(IonK)],
			IonNa: conc[int(IonNa)], IonSO4: conc[int(IonSO4)],
		},
		Gamma:             gamma,
		IonicStrength:     I,
		PH:                ph,
		ConductivitySPerM: conductivity,
		MolesSynPrecip:    ctx.Ions.MolesSynPrecip,
		Converged:         converged,
		Iterations:        iter,
	}
}

// runIonicStrengthLoop implements spec.md section 4.H step 3's
// fixed-point iteration: recompute ionic strength, temperature-adjusted
// Debye-Huckel constants and activity coefficients, then resolve the
// charge-balance system, until I changes by less than 10% between
// iterations or maxIStrengthIters is exhausted. Always starts from
// iteration 0 and a zero previous-I, even when called again after a
// syngenite event.
func runIonicStrengthLoop(ctx *simctx.Context, conc la.Vector, gamma *map[Ion]float64, constants Constants, tempC, tempK float64) (converged bool, iterations int) {
	prevI := 0.0
	iter := 0
	for ; iter < maxIStrengthIters; iter++ {
		I := ionicStrength(conc)
		if I < 1 {
			I = 1
		}
		A, B := debyeHuckelConstants(constants, tempK)
		*gamma = activityCoefficients(A, B, I)

		if ctx.Ions.EttringiteSolub {
			solveSoluble(conc, *gamma, constants, tempC)
		} else {
			solveInsoluble(conc, *gamma, constants, tempC)
		}

		if iter > 0 && math.Abs(I-prevI)/I < 0.10 {
			return true, iter + 1
		}
		prevI = I
	}
	return false, iter
}

func safeConc(totalMol, poreVolume float64) float64 {
	if poreVolume <= 0 {
		return 0
	}
	c := totalMol / poreVolume
	if c < 0 {
		return 0
	}
	return c
}

// poreVolumeLitersPerGram implements spec.md section 4.H step 1.
func poreVolumeLitersPerGram(in Inputs, res, gramsCement float64) float64 {
	if gramsCement <= 0 {
		return 0
	}
	n := float64(in.PorosityCount) + 0.38*float64(in.CSHCount) + 0.2*float64(in.PozzCSHCount) + 0.2*float64(in.SlagCSHCount)
	voxelLiters := math.Pow(res*1e-5, 3)
	return n * voxelLiters / gramsCement
}

// releasedAlkalis implements spec.md section 4.H step 2's time-ramped
// release: 90% of Rs*+Tot*-derived totals at t=0, ramping linearly to
// 100% at t=1h, then holding at 100%.
func releasedAlkalis(ions simctx.IonState, timeHours float64) (k, na float64) {
	frac := 0.90
	switch {
	case timeHours >= 1:
		frac = 1.0
	case timeHours > 0:
		frac = 0.90 + 0.10*timeHours
	}
	k = frac * (ions.RsK + ions.TotK)
	na = frac * (ions.RsNa + ions.TotNa)
	return
}

func ionicStrength(conc la.Vector) float64 {
	terms := make([]float64, 0, len(props))
	for ion, p := range props {
		terms = append(terms, p.z*p.z*conc[int(ion)])
	}
	return floats.Sum(terms) * 1000
}

// debyeHuckelConstants implements spec.md section 4.H step 3's
// temperature-adjusted A(T), B(T).
func debyeHuckelConstants(c Constants, tempK float64) (A, B float64) {
	A = c.DebyeHuckelA0 * math.Pow(295.0/tempK, 1.5)
	B = c.DebyeHuckelB0 * math.Sqrt(295.0/tempK)
	return
}

// activityCoefficients implements spec.md section 4.H step 3's
// extended Debye-Huckel law for Ca2+, OH-, K+, SO4^2-; Na+ shares OH-'s
// monovalent form using its own ion-size parameter for completeness
// even though spec.md's formula list only names the four ions the
// charge-balance equation needs directly.
func activityCoefficients(A, B, I float64) map[Ion]float64 {
	out := make(map[Ion]float64, len(props))
	sqrtI := math.Sqrt(I)
	for ion, p := range props {
		lnGamma := (-A*p.z*p.z*sqrtI)/(1+p.aSize*B*sqrtI) + (0.2-4.17e-5*I)*A*p.z*p.z*I/math.Sqrt(1000)
		out[ion] = math.Exp(lnGamma)
	}
	return out
}

// solveInsoluble implements spec.md section 4.H step 3's insoluble-
// ettringite branch: build and solve the quartic for [Ca2+], then
// back-substitute [OH-] and [SO4^2-].
func solveInsoluble(conc la.Vector, gamma map[Ion]float64, constants Constants, tempC float64) {
	kspCH := constants.kspCH(tempC)
	kspGyp := constants.KspGypsum

	A := -kspCH / (gamma[IonCa] * gamma[IonOH] * gamma[IonOH])
	B := conc[int(IonK)] + conc[int(IonNa)]
	C := -2 * kspGyp / (gamma[IonCa] * gamma[IonSO4])
	if C == 0 {
		return
	}

	c4 := C
	c3 := 4.0
	c2 := B*B/C + 4
	c1 := (A + 2*B*C) / C
	c0 := 1.0

	candidates := quarticRealPositiveRoots(c0, c1, c2, c3, c4)
	if len(candidates) == 0 {
		return
	}

	best := candidates[0]
	bestImbalance := math.Inf(1)
	for _, ca := range candidates {
		oh := B + 2*ca
		if oh <= 0 {
			continue
		}
		so4 := -A / (ca * oh * oh)
		imbalance := math.Abs(conc[int(IonK)] + conc[int(IonNa)] + 2*ca - oh - 2*so4)
		if imbalance < bestImbalance {
			bestImbalance = imbalance
			best = ca
		}
	}
	conc[int(IonCa)] = best
	conc[int(IonOH)] = B + 2*best
	if conc[int(IonOH)] > 0 {
		conc[int(IonSO4)] = -A / (best * conc[int(IonOH)] * conc[int(IonOH)])
	}
}

// solveSoluble implements spec.md section 4.H step 3's soluble-
// ettringite branch.
func solveSoluble(conc la.Vector, gamma map[Ion]float64, constants Constants, tempC float64) {
	conc[int(IonSO4)] = 0
	conc[int(IonOH)] = conc[int(IonK)] + conc[int(IonNa)] + 2*conc[int(IonCa)]
	if conc[int(IonOH)] <= 0 {
		return
	}
	kspCH := constants.kspCH(tempC)
	conc[int(IonCa)] = kspCH / (gamma[IonCa] * gamma[IonOH] * gamma[IonOH] * conc[int(IonOH)] * conc[int(IonOH)])
}

// applySyngeniteStep implements spec.md section 4.H step 4: at most one
// precipitation or dissolution event per call, after the ionic-strength
// loop has converged. Reports whether an event fired, which is exactly
// when Solve must re-enter the ionic-strength loop from scratch.
func applySyngeniteStep(ctx *simctx.Context, conc la.Vector, gamma map[Ion]float64, constants Constants) bool {
	k, ca, so4 := conc[int(IonK)], conc[int(IonCa)], conc[int(IonSO4)]
	q := k * k * gamma[IonK] * gamma[IonK] * ca * gamma[IonCa] * so4 * so4 * gamma[IonSO4] * gamma[IonSO4]

	if q > constants.KspSyngenite {
		delta := math.Min(0.0001, k)
		if delta <= 0 {
			return false
		}
		conc[int(IonK)] -= delta
		if ctx.Ions.KperSyn > 0 {
			ctx.Ions.MolesSynPrecip += delta / ctx.Ions.KperSyn
		}
		ctx.Ions.SynPrecipitatedLastCall = true
		return true
	}

	if q < constants.KspSyngenite && !ctx.Ions.SynPrecipitatedLastCall && ctx.Ions.MolesSynPrecip > 0 {
		delta := math.Min(0.001, ctx.Ions.MolesSynPrecip*ctx.Ions.KperSyn)
		conc[int(IonK)] += delta
		if ctx.Ions.KperSyn > 0 {
			ctx.Ions.MolesSynPrecip -= delta / ctx.Ions.KperSyn
		}
		if ctx.Ions.MolesSynPrecip < 0 {
			ctx.Ions.MolesSynPrecip = 0
		}
		ctx.Ions.SynPrecipitatedLastCall = false
		return true
	}

	ctx.Ions.SynPrecipitatedLastCall = false
	return false
}

// bulkConductivity implements spec.md section 4.H step 5.
func bulkConductivity(conc la.Vector, I float64, constants Constants) float64 {
	sqrtI := math.Sqrt(I)
	terms := make([]float64, 0, len(props))
	for ion, p := range props {
		terms = append(terms, math.Abs(p.z)*conc[int(ion)]*p.lambda0/(1+constants.OnsagerG*sqrtI))
	}
	return floats.Sum(terms) * 0.1
}
