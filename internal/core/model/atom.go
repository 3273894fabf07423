package model

// AtomRecord is one ATOM row of a structure file.
// The core reads ChainID, ResidueNumber, AtomName, AltLoc and the coordinates;
// the remaining columns are carried for callers that want them.
type AtomRecord struct {
	Serial        int     `json:"serial"`
	AtomName      string  `json:"atom_name"`
	AltLoc        string  `json:"alt_loc"`
	ResidueName   string  `json:"residue_name"`
	ChainID       string  `json:"chain_id"`
	ResidueNumber int     `json:"residue_number"`
	InsertionCode string  `json:"insertion_code,omitempty"`
	X             float64 `json:"x"`
	Y             float64 `json:"y"`
	Z             float64 `json:"z"`
	Occupancy     float64 `json:"occupancy"`
	BFactor       float64 `json:"b_factor"`
	Element       string  `json:"element,omitempty"`
}
