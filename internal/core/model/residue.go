package model

import "gonum.org/v1/gonum/spatial/r3"

// ResidueSite is the representative position of one residue.
type ResidueSite struct {
	ResidueNumber int    `json:"residue_number"`
	Coord         r3.Vec `json:"coord"`
}

func NewResidueSite(a AtomRecord) ResidueSite {
	return ResidueSite{
		ResidueNumber: a.ResidueNumber,
		Coord:         r3.Vec{X: a.X, Y: a.Y, Z: a.Z},
	}
}
