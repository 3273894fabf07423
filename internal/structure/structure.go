// Package structure acquires protein structures and reads their ATOM records.
package structure

import (
	"context"
	"errors"

	"github.com/dhana56/protein-contact-networks/internal/core/model"
)

var (
	// ErrNotFound means the identifier names neither a readable file nor a known entry.
	ErrNotFound = errors.New("structure not found")
	// ErrUnavailable means the structure exists in principle but could not be retrieved.
	ErrUnavailable = errors.New("structure unavailable")
	// ErrMalformed means the structure was read but its atom table is unusable.
	ErrMalformed = errors.New("malformed structure")
)

// Structure is the atom table of one entry. Only the first model is kept.
type Structure struct {
	ID             string
	Classification string
	Atoms          []model.AtomRecord // ATOM records
	HetAtoms       []model.AtomRecord // HETATM records, never used for contacts
}

// Chains returns the chain identifiers of the ATOM records in order of appearance.
func (s *Structure) Chains() []string {
	seen := make(map[string]bool)
	var chains []string
	for _, a := range s.Atoms {
		if !seen[a.ChainID] {
			seen[a.ChainID] = true
			chains = append(chains, a.ChainID)
		}
	}
	return chains
}

type Provider interface {
	Fetch(ctx context.Context, id string) (*Structure, error)
}
