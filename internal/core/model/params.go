package model

import (
	"errors"
	"fmt"
	"math"
)

const (
	DefaultCutoff        = 7.00
	DefaultAtomName      = "CA"
	DefaultResidueNoDiff = 0
)

// Params controls selection and contact detection.
type Params struct {
	Cutoff        float64 `json:"cutoff" toml:"cutoff"`
	AtomName      string  `json:"atom" toml:"atom"`
	ResidueNoDiff int     `json:"residue_no_diff" toml:"residue_no_diff"`
}

func DefaultParams() Params {
	return Params{
		Cutoff:        DefaultCutoff,
		AtomName:      DefaultAtomName,
		ResidueNoDiff: DefaultResidueNoDiff,
	}
}

func (p Params) Validate() error {
	if math.IsNaN(p.Cutoff) || math.IsInf(p.Cutoff, 0) || p.Cutoff < 0 {
		return fmt.Errorf("cutoff must be a finite non-negative distance, got %v", p.Cutoff)
	}
	if p.AtomName == "" {
		return errors.New("atom name must not be empty")
	}
	if p.ResidueNoDiff < 0 {
		return fmt.Errorf("residue_no_diff must be >= 0, got %d", p.ResidueNoDiff)
	}
	return nil
}
