// Package canon turns raw contacts into the final edge table.
package canon

import "github.com/dhana56/protein-contact-networks/internal/core/model"

// Canonicalize puts every pair smaller residue first, drops duplicates, and
// sorts by first then second residue number.
func Canonicalize(raw []model.RawPair) model.EdgeTable {
	set := model.NewPairSet[int]()
	for _, r := range raw {
		set.Add(r.I, r.J)
	}
	return model.EdgeTable(set.Sorted())
}
