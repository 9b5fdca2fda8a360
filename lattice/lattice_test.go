package lattice

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jwbullard/VCCTL-sub005/catalog"
)

func TestNewFillsAndCounts(t *testing.T) {
	l := New(3, 3, 3, 1.0, catalog.POROSITY)
	if l.Count(catalog.POROSITY) != 27 {
		t.Fatalf("expected 27 POROSITY voxels, got %d", l.Count(catalog.POROSITY))
	}
	if err := l.CheckCountInvariant(); err != nil {
		t.Fatal(err)
	}
}

func TestSetUpdatesCount(t *testing.T) {
	l := New(2, 2, 2, 1.0, catalog.POROSITY)
	l.Set(0, 0, 0, catalog.C3S)
	if l.Count(catalog.POROSITY) != 7 {
		t.Errorf("expected 7 POROSITY voxels, got %d", l.Count(catalog.POROSITY))
	}
	if l.Count(catalog.C3S) != 1 {
		t.Errorf("expected 1 C3S voxel, got %d", l.Count(catalog.C3S))
	}
	if err := l.CheckCountInvariant(); err != nil {
		t.Fatal(err)
	}
}

func TestSetSamePhaseIsNoOp(t *testing.T) {
	l := New(2, 2, 2, 1.0, catalog.POROSITY)
	before := l.Count(catalog.POROSITY)
	l.Set(1, 1, 1, catalog.POROSITY)
	if l.Count(catalog.POROSITY) != before {
		t.Error("setting a voxel to its current phase should not change Count")
	}
}

func TestPeriodicWrapAllFaces(t *testing.T) {
	l := New(5, 5, 5, 1.0, catalog.POROSITY)
	l.Set(0, 0, 0, catalog.C3S)
	cases := [][3]int{
		{-5, 0, 0}, {5, 0, 0},
		{0, -5, 0}, {0, 5, 0},
		{0, 0, -5}, {0, 0, 5},
	}
	for _, c := range cases {
		if l.At(c[0], c[1], c[2]) != catalog.C3S {
			t.Errorf("expected wrapped coordinate %v to read C3S", c)
		}
	}
}

func TestWrapNeverNegative(t *testing.T) {
	for _, v := range []int{-1, -10, -100, 0, 3, 10} {
		w := Wrap(v, 7)
		if w < 0 || w >= 7 {
			t.Fatalf("Wrap(%d, 7) = %d out of range", v, w)
		}
	}
}

func TestImageRoundTrip(t *testing.T) {
	l := New(4, 3, 2, 0.5, catalog.POROSITY)
	l.Set(1, 1, 1, catalog.C3S)
	l.Set(2, 0, 1, catalog.GYPSUM)

	var buf1 bytes.Buffer
	if err := WriteImage(&buf1, l); err != nil {
		t.Fatal(err)
	}

	l2, err := ReadImage(strings.NewReader(buf1.String()))
	if err != nil {
		t.Fatal(err)
	}

	var buf2 bytes.Buffer
	if err := WriteImage(&buf2, l2); err != nil {
		t.Fatal(err)
	}

	if buf1.String() != buf2.String() {
		t.Fatal("round-trip write/read/write did not produce identical output")
	}
	if l2.At(1, 1, 1) != catalog.C3S || l2.At(2, 0, 1) != catalog.GYPSUM {
		t.Fatal("round-trip lost voxel data")
	}
}

func TestReadLegacyImgsizestring(t *testing.T) {
	src := "IMGSIZESTRING 2\n" + strings.Repeat("0\n", 8)
	l, err := ReadImage(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if l.X != 2 || l.Y != 2 || l.Z != 2 || l.Res != 1.0 {
		t.Fatalf("unexpected legacy shape: %d %d %d %g", l.X, l.Y, l.Z, l.Res)
	}
}

func TestReadImageRejectsBadHeader(t *testing.T) {
	if _, err := ReadImage(strings.NewReader("NOTATOKEN 3\n")); err == nil {
		t.Fatal("expected error for unrecognized header token")
	}
}

func TestFacesCshAgeParticleOrig(t *testing.T) {
	l := New(2, 2, 2, 1.0, catalog.POROSITY)
	l.SetFace(0, 0, 0, 2)
	l.SetCshAge(0, 0, 0, 5)
	l.SetParticle(1, 0, 0, 3)
	if l.Face(0, 0, 0) != 2 {
		t.Error("Face not persisted")
	}
	if l.CshAge(0, 0, 0) != 5 {
		t.Error("CshAge not persisted")
	}
	if l.Particle(1, 0, 0) != 3 {
		t.Error("Particle not persisted")
	}
	if l.Orig(0, 0, 0) != catalog.POROSITY {
		t.Error("Orig should reflect the state at SnapshotOrig time")
	}
}
