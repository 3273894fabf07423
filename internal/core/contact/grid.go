package contact

import (
	"math"

	"github.com/dhana56/protein-contact-networks/internal/core/model"
)

// maxCellsPerAxis bounds the grid; wider boxes fall back to Detect.
const maxCellsPerAxis = 1 << 20

// cellReach is how many cells on each side of a site are searched. Two cells
// keep a pair at exactly the cutoff visible even when rounding in the cell
// key puts the sites one cell further apart.
const cellReach = 2

type cellKey [3]int

// DetectIndexed buckets sites into a uniform grid with cells as wide as the
// cutoff and checks each unordered pair of nearby sites once. It returns one
// raw pair per contact, so its output differs from Detect in multiplicity
// and order but canonicalizes to the same edge table.
func DetectIndexed(sites []model.ResidueSite, p model.Params) []model.RawPair {
	if len(sites) == 0 {
		return nil
	}
	if !(p.Cutoff > 0) {
		return Detect(sites, p)
	}

	lo := sites[0].Coord
	hi := sites[0].Coord
	for _, s := range sites[1:] {
		lo.X, hi.X = math.Min(lo.X, s.Coord.X), math.Max(hi.X, s.Coord.X)
		lo.Y, hi.Y = math.Min(lo.Y, s.Coord.Y), math.Max(hi.Y, s.Coord.Y)
		lo.Z, hi.Z = math.Min(lo.Z, s.Coord.Z), math.Max(hi.Z, s.Coord.Z)
	}
	span := math.Max(hi.X-lo.X, math.Max(hi.Y-lo.Y, hi.Z-lo.Z))
	if span/p.Cutoff > maxCellsPerAxis {
		return Detect(sites, p)
	}

	key := func(s model.ResidueSite) cellKey {
		return cellKey{
			int(math.Floor((s.Coord.X - lo.X) / p.Cutoff)),
			int(math.Floor((s.Coord.Y - lo.Y) / p.Cutoff)),
			int(math.Floor((s.Coord.Z - lo.Z) / p.Cutoff)),
		}
	}

	keys := make([]cellKey, len(sites))
	cells := make(map[cellKey][]int)
	for i, s := range sites {
		k := key(s)
		keys[i] = k
		cells[k] = append(cells[k], i)
	}

	var out []model.RawPair
	for i, si := range sites {
		k := keys[i]
		for dx := -cellReach; dx <= cellReach; dx++ {
			for dy := -cellReach; dy <= cellReach; dy++ {
				for dz := -cellReach; dz <= cellReach; dz++ {
					for _, j := range cells[cellKey{k[0] + dx, k[1] + dy, k[2] + dz}] {
						if j <= i {
							continue
						}
						if Admit(si, sites[j], p) {
							out = append(out, model.RawPair{I: si.ResidueNumber, J: sites[j].ResidueNumber})
						}
					}
				}
			}
		}
	}
	return out
}
