package chemistry

import (
	"math"
	"math/cmplx"
)

// Package-local polynomial root-finder. spec.md section 4.H calls for
// a Laguerre-iteration solver ("zroots") over a quartic charge-balance
// polynomial; no library in the example pack (gosl/num, gosl/fun,
// gosl/la, gonum) exposes a general complex-polynomial root finder, so
// this is a deliberate, documented standard-library routine rather
// than a gap filled by guesswork (see DESIGN.md).

const (
	laguerrePerRootIters = 100
	laguerreEps          = 2e-6
)

// laguerre polishes one root of the polynomial with coefficients coeffs
// (coeffs[i] is the coefficient of x^i, lowest degree first) starting
// from x0, for at most laguerrePerRootIters iterations or until the
// step falls below laguerreEps relative to |x|.
func laguerre(coeffs []complex128, x0 complex128) complex128 {
	n := len(coeffs) - 1
	x := x0
	for iter := 0; iter < laguerrePerRootIters; iter++ {
		b := coeffs[n]
		d := complex(0, 0)
		f := complex(0, 0)
		for j := n - 1; j >= 0; j-- {
			f = x*f + d
			d = x*d + b
			b = x*b + coeffs[j]
		}
		if cmplx.Abs(b) < laguerreEps {
			return x
		}
		g := d / b
		h := g*g - 2*f/b
		nc := complex(float64(n), 0)
		sq := cmplx.Sqrt((nc - 1) * (nc*h - g*g))
		denomA := g + sq
		denomB := g - sq
		denom := denomA
		if cmplx.Abs(denomB) > cmplx.Abs(denomA) {
			denom = denomB
		}
		if cmplx.Abs(denom) == 0 {
			return x
		}
		dx := nc / denom
		x -= dx
		if cmplx.Abs(dx) < laguerreEps*cmplx.Abs(x) {
			return x
		}
	}
	return x
}

// deflate divides coeffs (lowest degree first) by (x - root) and
// returns the quotient's coefficients.
func deflate(coeffs []complex128, root complex128) []complex128 {
	n := len(coeffs) - 1
	out := make([]complex128, n)
	rem := coeffs[n]
	for i := n - 1; i >= 0; i-- {
		out[i] = rem
		rem = coeffs[i] + rem*root
	}
	return out
}

// polyRoots returns all n roots (n = len(coeffs)-1) of the polynomial
// with coefficients coeffs (lowest degree first, coeffs[n] != 0),
// found by repeated Laguerre polishing and deflation — the zroots
// algorithm spec.md section 4.H names.
func polyRoots(coeffs []complex128) []complex128 {
	work := append([]complex128(nil), coeffs...)
	roots := make([]complex128, 0, len(coeffs)-1)
	for len(work) > 2 {
		r := laguerre(work, complex(0, 0))
		// Polish once more against the original, undeflated polynomial
		// to counter drift accumulated across deflation steps.
		r = laguerre(coeffs, r)
		roots = append(roots, r)
		work = deflate(work, r)
	}
	if len(work) == 2 {
		roots = append(roots, -work[0]/work[1])
	}
	return roots
}

// quarticRealPositiveRoots solves c4*x^4 + c3*x^3 + c2*x^2 + c1*x + c0
// = 0 and returns the real roots whose imaginary part is negligible
// and whose real part is positive, per spec.md section 4.H's "reject
// negative or complex roots."
func quarticRealPositiveRoots(c0, c1, c2, c3, c4 float64) []float64 {
	coeffs := []complex128{
		complex(c0, 0), complex(c1, 0), complex(c2, 0), complex(c3, 0), complex(c4, 0),
	}
	var out []float64
	for _, r := range polyRoots(coeffs) {
		if math.Abs(imag(r)) > 1e-6*(1+cmplx.Abs(r)) {
			continue
		}
		if real(r) <= 0 {
			continue
		}
		out = append(out, real(r))
	}
	return out
}
