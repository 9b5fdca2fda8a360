// Package neighborhood implements the lattice-walk primitives shared
// by every reaction and placement routine (spec.md section 4.D):
// single-step periodic moves with the prime-sieve direction tracker,
// 26-neighbor phase counting, and the porosity-type majority vote.
package neighborhood

import (
	"github.com/jwbullard/VCCTL-sub005/catalog"
	"github.com/jwbullard/VCCTL-sub005/lattice"
	"github.com/jwbullard/VCCTL-sub005/rng"
)

// NoPhase is the sentinel passed to Edgecnt for an unused ph2/ph3
// argument (spec.md describes a 3-phase exclusion set; callers that
// only need one or two phases pass NoPhase for the rest).
const NoPhase = catalog.PhaseID(-1)

// AllTriedProduct is the product of the first six primes (2*3*5*7*11*13);
// once a caller's running product equals this, every one of the six
// axis-aligned directions has been tried at least once.
const AllTriedProduct = 2 * 3 * 5 * 7 * 11 * 13

// directionPrimes maps direction 1..6 to its prime encoding, in the
// fixed order +x, -x, +y, -y, +z, -z.
var directionPrimes = [7]int{0, 2, 3, 5, 7, 11, 13}

// deltas gives the (dx,dy,dz) step for each direction 1..6, same order
// as directionPrimes.
var deltas = [7][3]int{
	{0, 0, 0},
	{1, 0, 0}, {-1, 0, 0},
	{0, 1, 0}, {0, -1, 0},
	{0, 0, 1}, {0, 0, -1},
}

// MoveOne picks one of the six axis-aligned neighbors of (x,y,z)
// uniformly at random, applies periodic wrap, and returns the
// neighbor's coordinates, the 1..6 direction chosen, and the prime
// encoding that direction. If sumold is already divisible by that
// direction's prime (the direction has been tried before in this
// caller's accumulating product), prime is returned as 1 instead of
// the direction's real prime — the neighbor coordinates and direction
// are still valid and returned, but the caller should not multiply
// sumold by 1 since that direction contributes no new information to
// the "all six tried" sentinel.
func MoveOne(l *lattice.Lattice, x, y, z, sumold int, r *rng.Stream) (nx, ny, nz, direction, prime int) {
	direction = r.IntN(6) + 1
	d := deltas[direction]
	nx = lattice.Wrap(x+d[0], l.X)
	ny = lattice.Wrap(y+d[1], l.Y)
	nz = lattice.Wrap(z+d[2], l.Z)
	p := directionPrimes[direction]
	if sumold%p == 0 {
		return nx, ny, nz, direction, 1
	}
	return nx, ny, nz, direction, p
}

// DirectionPrime returns the prime encoding for a 1..6 direction index,
// for callers (e.g. acicular-growth bias) that need to re-derive it
// without calling MoveOne.
func DirectionPrime(direction int) int {
	if direction < 1 || direction > 6 {
		return 0
	}
	return directionPrimes[direction]
}

// Step returns the coordinate one voxel away from (x,y,z) in the given
// 1..6 direction, periodically wrapped.
func Step(l *lattice.Lattice, x, y, z, direction int) (nx, ny, nz int) {
	d := deltas[direction]
	return lattice.Wrap(x+d[0], l.X), lattice.Wrap(y+d[1], l.Y), lattice.Wrap(z+d[2], l.Z)
}

// Edgecnt counts the neighbors in the 3x3x3 box centered on (x,y,z)
// (excluding the center, 26 candidates, periodic wrap) whose phase is
// NOT any of ph1, ph2, ph3. Pass NoPhase for unused exclusion slots.
func Edgecnt(l *lattice.Lattice, x, y, z int, ph1, ph2, ph3 catalog.PhaseID) int {
	count := 0
	for dz := -1; dz <= 1; dz++ {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 && dz == 0 {
					continue
				}
				ph := l.At(x+dx, y+dy, z+dz)
				if ph != ph1 && ph != ph2 && ph != ph3 {
					count++
				}
			}
		}
	}
	return count
}

// HasNeighbor reports whether at least one of the 26 neighbors of
// (x,y,z) has phase in phases. This is the common "is a neighbor of
// the required kind present" query built on top of Edgecnt: a neighbor
// of the wanted kind exists iff excluding every *other* phase still
// leaves Edgecnt < 26. For a small fixed phase list it is simpler and
// clearer to just scan directly, which is what this does.
func HasNeighbor(l *lattice.Lattice, x, y, z int, phases ...catalog.PhaseID) bool {
	for dz := -1; dz <= 1; dz++ {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 && dz == 0 {
					continue
				}
				ph := l.At(x+dx, y+dy, z+dz)
				for _, want := range phases {
					if ph == want {
						return true
					}
				}
			}
		}
	}
	return false
}

// CountNeighbors returns how many of the 26 neighbors of (x,y,z) have
// phase in phases.
func CountNeighbors(l *lattice.Lattice, x, y, z int, phases ...catalog.PhaseID) int {
	n := 0
	for dz := -1; dz <= 1; dz++ {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 && dz == 0 {
					continue
				}
				ph := l.At(x+dx, y+dy, z+dz)
				for _, want := range phases {
					if ph == want {
						n++
						break
					}
				}
			}
		}
	}
	return n
}

// GetPorenv returns the majority porosity kind (POROSITY or CRACKP)
// among the 26 neighbors of (x,y,z), with ties going to POROSITY. If
// the current cycle has not yet passed crackcycle, POROSITY is
// returned unconditionally without inspecting neighbors (spec.md
// section 4.D).
func GetPorenv(l *lattice.Lattice, x, y, z int, cyccnt, crackcycle int) catalog.PhaseID {
	if cyccnt <= crackcycle {
		return catalog.POROSITY
	}
	porosity, crack := 0, 0
	for dz := -1; dz <= 1; dz++ {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 && dz == 0 {
					continue
				}
				switch l.At(x+dx, y+dy, z+dz) {
				case catalog.POROSITY:
					porosity++
				case catalog.CRACKP:
					crack++
				}
			}
		}
	}
	if crack > porosity {
		return catalog.CRACKP
	}
	return catalog.POROSITY
}
