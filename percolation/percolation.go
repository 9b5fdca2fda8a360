// Package percolation implements the connectivity and set detectors
// (spec.md section 4.I): burn3d's generic two-phase through-path flood
// fill along a chosen principal axis, and burnset's clinker/hydration-
// bridge connectivity check with its particle-label propagation rule.
package percolation

import (
	"github.com/jwbullard/VCCTL-sub005/catalog"
	"github.com/jwbullard/VCCTL-sub005/lattice"
	"github.com/jwbullard/VCCTL-sub005/neighborhood"
	"github.com/jwbullard/VCCTL-sub005/simctx"
)

// Axis names the principal direction a flood must span both faces of;
// the two axes orthogonal to it are periodic, this one is not.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// SetThreshold is the through-fraction burnset compares against
// (spec.md section 4.I): strictly exceeding this, the phase is
// considered a percolated set.
const SetThreshold = 0.985

func axisSize(l *lattice.Lattice, axis Axis) int {
	switch axis {
	case AxisX:
		return l.X
	case AxisY:
		return l.Y
	default:
		return l.Z
	}
}

func alongCoord(axis Axis, x, y, z int) int {
	switch axis {
	case AxisX:
		return x
	case AxisY:
		return y
	default:
		return z
	}
}

// step moves (x,y,z) one voxel in the given 0..5 direction (-x,+x,-y,
// +y,-z,+z). The two axes orthogonal to axis wrap periodically; a move
// that would leave the lattice along axis reports ok=false rather than
// wrapping — that boundary is the through-path probe burn3d/burnset
// test against.
func step(l *lattice.Lattice, axis Axis, x, y, z, direction int) (nx, ny, nz int, ok bool) {
	dx, dy, dz := 0, 0, 0
	switch direction {
	case 0:
		dx = -1
	case 1:
		dx = 1
	case 2:
		dy = -1
	case 3:
		dy = 1
	case 4:
		dz = -1
	case 5:
		dz = 1
	}
	nx, ny, nz = x+dx, y+dy, z+dz
	switch axis {
	case AxisX:
		if nx < 0 || nx >= l.X {
			return 0, 0, 0, false
		}
		ny, nz = lattice.Wrap(ny, l.Y), lattice.Wrap(nz, l.Z)
	case AxisY:
		if ny < 0 || ny >= l.Y {
			return 0, 0, 0, false
		}
		nx, nz = lattice.Wrap(nx, l.X), lattice.Wrap(nz, l.Z)
	default:
		if nz < 0 || nz >= l.Z {
			return 0, 0, 0, false
		}
		nx, ny = lattice.Wrap(nx, l.X), lattice.Wrap(ny, l.Y)
	}
	return nx, ny, nz, true
}

// Member reports whether a phase id belongs to the set a flood is
// allowed to traverse.
type Member func(id catalog.PhaseID) bool

// NeighborRule reports whether propagation from a burnable "from" voxel
// to a burnable "to" voxel is permitted. burn3d's rule is always true;
// burnset's rule additionally gates clinker-to-clinker steps on shared
// particle labels.
type NeighborRule func(l *lattice.Lattice, fromX, fromY, fromZ, toX, toY, toZ int) bool

func alwaysAllowed(*lattice.Lattice, int, int, int, int, int, int) bool { return true }

// Result is what a flood call reports: the through-path voxel count
// and its fraction of every voxel on the lattice matching member.
type Result struct {
	NThrough int
	Fraction float64
}

// flood implements spec.md section 4.I's shared burn3d/burnset
// skeleton: seed a two-queue BFS from every member voxel on the lo
// face (along=0), expand through member voxels the rule permits
// reaching, and count toward NThrough only the voxels of components
// that also touch the hi face (along=size-1). A single generic
// implementation stands in for what the reference keeps as a
// coordinate-transformed shadow of the lattice per axis — the `step`
// helper above plays that role without ever copying Mic.
func flood(l *lattice.Lattice, axis Axis, member Member, rule NeighborRule) Result {
	size := axisSize(l, axis)
	n := l.TotalVoxels()
	visited := make([]bool, n)
	idx := func(x, y, z int) int { return x + y*l.X + z*l.X*l.Y }

	eligible := 0
	for _, id := range catalog.All() {
		if member(id) {
			eligible += int(l.Count(id))
		}
	}

	nthrough := 0
	var front, next []int

	for x := 0; x < l.X; x++ {
		for y := 0; y < l.Y; y++ {
			for z := 0; z < l.Z; z++ {
				if alongCoord(axis, x, y, z) != 0 {
					continue
				}
				i := idx(x, y, z)
				if visited[i] || !member(l.At(x, y, z)) {
					continue
				}

				visited[i] = true
				componentSize := 1
				touchesHi := size == 1
				front = append(front[:0], i)

				for len(front) > 0 {
					next = next[:0]
					for _, ci := range front {
						cx, cy, cz := ci%l.X, (ci/l.X)%l.Y, ci/(l.X*l.Y)
						for d := 0; d < 6; d++ {
							nx, ny, nz, ok := step(l, axis, cx, cy, cz, d)
							if !ok {
								continue
							}
							ni := idx(nx, ny, nz)
							if visited[ni] || !member(l.At(nx, ny, nz)) {
								continue
							}
							if !rule(l, cx, cy, cz, nx, ny, nz) {
								continue
							}
							visited[ni] = true
							componentSize++
							if alongCoord(axis, nx, ny, nz) == size-1 {
								touchesHi = true
							}
							next = append(next, ni)
						}
					}
					front, next = next, front
				}

				if touchesHi {
					nthrough += componentSize
				}
			}
		}
	}

	fraction := 0.0
	if eligible > 0 {
		fraction = float64(nthrough) / float64(eligible)
	}
	return Result{NThrough: nthrough, Fraction: fraction}
}

// Burn3D implements spec.md section 4.I's burn3d(ph1, ph2, axis): the
// through-path count and fraction for voxels whose phase is ph1 or
// ph2. Pass neighborhood.NoPhase for ph2 to probe a single phase.
func Burn3D(ctx *simctx.Context, ph1, ph2 catalog.PhaseID, axis Axis) Result {
	member := func(id catalog.PhaseID) bool {
		return id == ph1 || (ph2 != neighborhood.NoPhase && id == ph2)
	}
	return flood(ctx.Lattice, axis, member, alwaysAllowed)
}

var clinkerSet = map[catalog.PhaseID]bool{
	catalog.C3S: true, catalog.C2S: true, catalog.C3A: true, catalog.OC3A: true,
	catalog.C4AF: true, catalog.SLAG: true, catalog.SFUME: true, catalog.AMSIL: true,
	catalog.ASG: true, catalog.CAS2: true, catalog.K2SO4: true, catalog.NA2SO4: true,
}

var bridgeSet = map[catalog.PhaseID]bool{
	catalog.CSH: true, catalog.POZZCSH: true, catalog.SLAGCSH: true,
	catalog.ETTR: true, catalog.ETTRC4AF: true, catalog.C3AH6: true,
}

func isClinker(id catalog.PhaseID) bool { return clinkerSet[id] }
func isBridge(id catalog.PhaseID) bool  { return bridgeSet[id] }
func isBurnable(id catalog.PhaseID) bool { return isClinker(id) || isBridge(id) }

// clinkerBridgeRule implements spec.md section 4.I's burnset
// propagation rule: clinker-to-clinker steps require the same nonzero
// Micpart label; every other burnable-to-burnable step (clinker<->
// bridge, bridge<->bridge) is unconditional.
func clinkerBridgeRule(l *lattice.Lattice, fromX, fromY, fromZ, toX, toY, toZ int) bool {
	fromID := l.At(fromX, fromY, fromZ)
	toID := l.At(toX, toY, toZ)
	if isClinker(fromID) && isClinker(toID) {
		label := l.Particle(fromX, fromY, fromZ)
		return label != 0 && label == l.Particle(toX, toY, toZ)
	}
	return true
}

// BurnSetResult is BurnSet's output: the underlying through-path
// result plus the percolation verdict against SetThreshold.
type BurnSetResult struct {
	Result
	Percolated bool
}

// BurnSet implements spec.md section 4.I's burnset(axis): connectivity
// of the reactive clinker/pozzolan phases and solid hydration bridges,
// gated by same-particle-label propagation across clinker-clinker
// boundaries, reporting whether the through-fraction exceeds
// SetThreshold.
func BurnSet(ctx *simctx.Context, axis Axis) BurnSetResult {
	r := flood(ctx.Lattice, axis, isBurnable, clinkerBridgeRule)
	return BurnSetResult{Result: r, Percolated: r.Fraction > SetThreshold}
}
