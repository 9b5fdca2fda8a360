// Package lattice implements the 3D periodic voxel grid (spec.md
// section 3, Component A): the phase lattice itself plus its four
// parallel lattices (Faces, Cshage, Micpart, Micorig), and the
// population vector Count kept as a hard invariant on every mutation.
package lattice

import (
	"github.com/cpmech/gosl/chk"
	"github.com/jwbullard/VCCTL-sub005/catalog"
)

// Lattice is a 3D periodic voxel grid plus its parallel arrays and
// population vector. All index access wraps periodically in x, y, and
// z. The zero value is not usable; build one with New.
type Lattice struct {
	X, Y, Z int     // Xsyssize, Ysyssize, Zsyssize
	Res     float64 // micrometers per voxel

	mic     []catalog.PhaseID // phase id per voxel
	faces   []uint8           // CSH plate orientation: 0=random, 1|2|3=yz|xz|xy
	cshage  []int32           // cycle at which voxel first became CSH, -1 if never
	micpart []int32           // original clinker particle label, 0 if none
	micorig []catalog.PhaseID // snapshot of Mic at simulation start

	count map[catalog.PhaseID]uint64
}

// New allocates a Lattice of the given dimensions, every voxel
// initialized to fill.
func New(x, y, z int, res float64, fill catalog.PhaseID) *Lattice {
	if x <= 0 || y <= 0 || z <= 0 {
		panic("lattice: dimensions must be positive")
	}
	n := x * y * z
	l := &Lattice{
		X: x, Y: y, Z: z, Res: res,
		mic:     make([]catalog.PhaseID, n),
		faces:   make([]uint8, n),
		cshage:  make([]int32, n),
		micpart: make([]int32, n),
		micorig: make([]catalog.PhaseID, n),
		count:   make(map[catalog.PhaseID]uint64),
	}
	for i := range l.mic {
		l.mic[i] = fill
		l.cshage[i] = -1
	}
	l.count[fill] = uint64(n)
	return l
}

// Wrap folds a coordinate into [0, n) under periodic boundary
// conditions. Unlike Go's %, this never returns a negative result.
func Wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

func (l *Lattice) index(x, y, z int) int {
	x = Wrap(x, l.X)
	y = Wrap(y, l.Y)
	z = Wrap(z, l.Z)
	return x + y*l.X + z*l.X*l.Y
}

// At returns the phase id at (x, y, z), with periodic wrap applied to
// each coordinate.
func (l *Lattice) At(x, y, z int) catalog.PhaseID {
	return l.mic[l.index(x, y, z)]
}

// Set writes the phase id at (x, y, z), periodically wrapped, and
// atomically updates Count: the old phase's count is decremented and
// the new phase's count is incremented. This is the only way voxel
// phase should ever be mutated — Component A's hard invariant (Count[p]
// equals the number of voxels of phase p) depends on every write going
// through Set.
func (l *Lattice) Set(x, y, z int, id catalog.PhaseID) {
	i := l.index(x, y, z)
	old := l.mic[i]
	if old == id {
		return
	}
	l.mic[i] = id
	l.count[old]--
	if l.count[old] == 0 {
		delete(l.count, old)
	}
	l.count[id]++
}

// Count returns the current voxel count for phase id.
func (l *Lattice) Count(id catalog.PhaseID) uint64 {
	return l.count[id]
}

// TotalVoxels returns X*Y*Z.
func (l *Lattice) TotalVoxels() int { return l.X * l.Y * l.Z }

// CheckCountInvariant verifies that the sum of Count equals the total
// voxel count and that every entry is individually consistent with a
// fresh scan of Mic. It is O(n) and intended for tests and
// debug-build assertions, not the hot path.
func (l *Lattice) CheckCountInvariant() error {
	fresh := make(map[catalog.PhaseID]uint64, len(l.count))
	for _, id := range l.mic {
		fresh[id]++
	}
	if len(fresh) != len(l.count) {
		return chk.Err("lattice: Count has %d distinct phases, scan found %d", len(l.count), len(fresh))
	}
	var sum uint64
	for id, n := range fresh {
		sum += n
		if l.count[id] != n {
			return chk.Err("lattice: Count[%v]=%d but scan found %d", id, l.count[id], n)
		}
	}
	if int(sum) != l.TotalVoxels() {
		return chk.Err("lattice: Count sums to %d, want %d", sum, l.TotalVoxels())
	}
	return nil
}

// Face returns the CSH plate orientation at (x, y, z): 0 (random) or
// 1, 2, 3 (yz, xz, xy plate face).
func (l *Lattice) Face(x, y, z int) uint8 { return l.faces[l.index(x, y, z)] }

// SetFace sets the CSH plate orientation at (x, y, z).
func (l *Lattice) SetFace(x, y, z int, f uint8) { l.faces[l.index(x, y, z)] = f }

// CshAge returns the cycle at which the voxel at (x, y, z) first
// became CSH, or -1 if it never has been.
func (l *Lattice) CshAge(x, y, z int) int32 { return l.cshage[l.index(x, y, z)] }

// SetCshAge records the cycle at which the voxel at (x, y, z) became
// CSH.
func (l *Lattice) SetCshAge(x, y, z int, cycle int32) { l.cshage[l.index(x, y, z)] = cycle }

// Particle returns the original-clinker-particle label at (x, y, z);
// 0 means the voxel was never part of a clinker particle.
func (l *Lattice) Particle(x, y, z int) int32 { return l.micpart[l.index(x, y, z)] }

// SetParticle sets the original-clinker-particle label at (x, y, z).
func (l *Lattice) SetParticle(x, y, z int, label int32) { l.micpart[l.index(x, y, z)] = label }

// Orig returns the simulation-start snapshot phase id at (x, y, z).
func (l *Lattice) Orig(x, y, z int) catalog.PhaseID { return l.micorig[l.index(x, y, z)] }

// SnapshotOrig copies the current Mic into Micorig. Called once, at
// the start of a simulation, before any dissolution has occurred.
func (l *Lattice) SnapshotOrig() {
	copy(l.micorig, l.mic)
}
