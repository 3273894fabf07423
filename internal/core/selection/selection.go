// Package selection reduces an atom table to one representative site per residue.
package selection

import (
	"strings"

	"github.com/dhana56/protein-contact-networks/internal/core/model"
)

// excludedAltLocs are alternate conformations that never contribute a site.
// Blank and "A" are the primary conformation.
var excludedAltLocs = map[string]bool{
	"B": true,
	"C": true,
}

// Select keeps the atoms of chain named atomName, drops alternate
// conformations B and C, and returns one site per remaining row in table order.
// The chain is compared case-insensitively; the atom name must match exactly.
// An empty result is the empty selection condition, not an error.
func Select(atoms []model.AtomRecord, chain, atomName string) []model.ResidueSite {
	want := strings.ToUpper(chain)

	var sites []model.ResidueSite
	for _, a := range atoms {
		if strings.ToUpper(a.ChainID) != want {
			continue
		}
		if a.AtomName != atomName {
			continue
		}
		if excludedAltLocs[a.AltLoc] {
			continue
		}
		sites = append(sites, model.NewResidueSite(a))
	}
	return sites
}
