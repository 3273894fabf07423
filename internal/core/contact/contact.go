// Package contact finds residue pairs whose representative atoms lie within
// a distance cutoff.
package contact

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/dhana56/protein-contact-networks/internal/core/model"
)

// Distance is the Euclidean distance sqrt(Σ (a.k - b.k)²).
func Distance(a, b r3.Vec) float64 {
	return math.Sqrt(r3.Norm2(r3.Sub(a, b)))
}

// Admit reports whether two sites are in contact under p.
// ResidueNoDiff excludes exactly one index gap; it is not a minimum separation.
func Admit(a, b model.ResidueSite, p model.Params) bool {
	if a.ResidueNumber == b.ResidueNumber {
		return false
	}
	if absInt(a.ResidueNumber-b.ResidueNumber) == p.ResidueNoDiff {
		return false
	}
	return Distance(a.Coord, b.Coord) <= p.Cutoff
}

// Detect evaluates every ordered pair of sites, including each site with
// itself, and returns the admitted pairs in discovery order. Each contact
// appears once per direction.
func Detect(sites []model.ResidueSite, p model.Params) []model.RawPair {
	var out []model.RawPair
	for i := range sites {
		out = detectRow(out, sites, i, p)
	}
	return out
}

func detectRow(out []model.RawPair, sites []model.ResidueSite, i int, p model.Params) []model.RawPair {
	si := sites[i]
	for _, sj := range sites {
		if Admit(si, sj, p) {
			out = append(out, model.RawPair{I: si.ResidueNumber, J: sj.ResidueNumber})
		}
	}
	return out
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
