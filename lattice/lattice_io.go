package lattice

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/jwbullard/VCCTL-sub005/catalog"
)

// legacyVersion is the version assumed when a lattice image has no
// VERSIONSTRING header token (spec.md section 6).
const legacyVersion = 2.0

// idConversionTables maps (version -> old phase id -> current PhaseID)
// for versions whose on-disk numbering differs from the catalogue's
// current numbering. Versions not present here are assumed to already
// use current numbering (identity mapping).
var idConversionTables = map[float64]map[int]catalog.PhaseID{}

// RegisterIDConversion installs a conversion table for image files
// written with the given format version. This is the extension point
// external image producers use when a new on-disk numbering is
// introduced; the core ships no legacy tables of its own since the
// concrete legacy ids are a property of specific historical image
// files, not of this engine's phase catalogue.
func RegisterIDConversion(version float64, table map[int]catalog.PhaseID) {
	idConversionTables[version] = table
}

func convertID(raw int, version float64) catalog.PhaseID {
	if table, ok := idConversionTables[version]; ok {
		if id, ok := table[raw]; ok {
			return id
		}
	}
	return catalog.PhaseID(raw)
}

// ReadImage parses an ASCII lattice image: a whitespace-separated
// header followed by a row-major (z-outer, y-middle, x-inner) raster
// of small integers. Recognized header tokens are VERSIONSTRING
// <float>; XSIZESTRING <int> YSIZESTRING <int> ZSIZESTRING <int>
// <float-resolution>; or the legacy IMGSIZESTRING <int> (cubic shape,
// resolution 1.0, version assumed 2.0 if VERSIONSTRING was absent).
func ReadImage(r io.Reader) (*Lattice, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	sc.Split(bufio.ScanWords)

	next := func() (string, bool) {
		if sc.Scan() {
			return sc.Text(), true
		}
		return "", false
	}

	version := legacyVersion
	var xsize, ysize, zsize int
	haveShape := false
	res := 1.0

	for {
		tok, ok := next()
		if !ok {
			return nil, chk.Err("lattice: image header ended before shape was specified")
		}
		switch strings.ToUpper(tok) {
		case "VERSIONSTRING":
			v, vok := next()
			if !vok {
				return nil, chk.Err("lattice: VERSIONSTRING missing value")
			}
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, chk.Err("lattice: bad VERSIONSTRING value %q: %v", v, err)
			}
			version = f
		case "XSIZESTRING":
			xv, _ := next()
			x, err := strconv.Atoi(xv)
			if err != nil {
				return nil, chk.Err("lattice: bad XSIZESTRING value %q: %v", xv, err)
			}
			ytag, _ := next()
			if strings.ToUpper(ytag) != "YSIZESTRING" {
				return nil, chk.Err("lattice: expected YSIZESTRING after XSIZESTRING, got %q", ytag)
			}
			yv, _ := next()
			y, err := strconv.Atoi(yv)
			if err != nil {
				return nil, chk.Err("lattice: bad YSIZESTRING value %q: %v", yv, err)
			}
			ztag, _ := next()
			if strings.ToUpper(ztag) != "ZSIZESTRING" {
				return nil, chk.Err("lattice: expected ZSIZESTRING after YSIZESTRING, got %q", ztag)
			}
			zv, _ := next()
			z, err := strconv.Atoi(zv)
			if err != nil {
				return nil, chk.Err("lattice: bad ZSIZESTRING value %q: %v", zv, err)
			}
			rv, _ := next()
			rf, err := strconv.ParseFloat(rv, 64)
			if err != nil {
				return nil, chk.Err("lattice: bad resolution value %q: %v", rv, err)
			}
			xsize, ysize, zsize, res = x, y, z, rf
			haveShape = true
		case "IMGSIZESTRING":
			sv, _ := next()
			s, err := strconv.Atoi(sv)
			if err != nil {
				return nil, chk.Err("lattice: bad IMGSIZESTRING value %q: %v", sv, err)
			}
			xsize, ysize, zsize, res = s, s, s, 1.0
			haveShape = true
		default:
			return nil, chk.Err("lattice: unrecognized header token %q", tok)
		}
		if haveShape {
			break
		}
	}
	l := New(xsize, ysize, zsize, res, catalog.POROSITY)
	for z := 0; z < zsize; z++ {
		for y := 0; y < ysize; y++ {
			for x := 0; x < xsize; x++ {
				tok, ok := next()
				if !ok {
					return nil, chk.Err("lattice: raster ended early at x=%d y=%d z=%d", x, y, z)
				}
				raw, err := strconv.Atoi(tok)
				if err != nil {
					return nil, chk.Err("lattice: bad voxel value %q at x=%d y=%d z=%d: %v", tok, x, y, z, err)
				}
				l.Set(x, y, z, convertID(raw, version))
			}
		}
	}
	l.SnapshotOrig()
	return l, nil
}

// WriteImage serializes the lattice in the current (v-2.0-compatible,
// non-legacy) header format: VERSIONSTRING followed by XSIZESTRING/
// YSIZESTRING/ZSIZESTRING and resolution, then the row-major raster.
// Writing, reading back with ReadImage, and writing again yields
// bit-identical output (spec.md section 8 round-trip property),
// provided no RegisterIDConversion table remaps the ids written here.
func WriteImage(w io.Writer, l *Lattice) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "VERSIONSTRING %g\n", legacyVersion)
	fmt.Fprintf(bw, "XSIZESTRING %d\nYSIZESTRING %d\nZSIZESTRING %d %g\n", l.X, l.Y, l.Z, l.Res)
	for z := 0; z < l.Z; z++ {
		for y := 0; y < l.Y; y++ {
			for x := 0; x < l.X; x++ {
				fmt.Fprintf(bw, "%d\n", int(l.At(x, y, z)))
			}
		}
	}
	return bw.Flush()
}
