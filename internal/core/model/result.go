package model

import (
	"fmt"
	"time"
)

type ResultKind string

const (
	KindSuccess            ResultKind = "success"
	KindAcquisitionFailure ResultKind = "acquisition_failure"
	KindEmptySelection     ResultKind = "empty_selection"
	KindMalformedInput     ResultKind = "malformed_input"
	KindOutputFailure      ResultKind = "output_failure"
)

// Request is one pipeline invocation.
type Request struct {
	StructureID string `json:"structure_id"`
	Chain       string `json:"chain"`
	Params      Params `json:"params"`
}

// Result is the outcome of one invocation. Edges is set only when Kind is KindSuccess.
type Result struct {
	UUID        string     `json:"uuid"`
	StructureID string     `json:"structure_id"`
	Chain       string     `json:"chain"`
	Kind        ResultKind `json:"kind"`
	Edges       EdgeTable  `json:"edges"`
	Residues    int        `json:"residues"`
	Message     string     `json:"message,omitempty"`
	OutputPath  string     `json:"output_path,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	Err         error      `json:"-"`
}

func (r Result) OK() bool {
	return r.Kind == KindSuccess
}

// Diagnostic returns the user facing message for the result.
func (r Result) Diagnostic() string {
	switch r.Kind {
	case KindSuccess:
		if r.OutputPath != "" {
			return fmt.Sprintf("%d contacts for %s chain %s saved to %s", len(r.Edges), r.StructureID, r.Chain, r.OutputPath)
		}
		return fmt.Sprintf("%d contacts for %s chain %s", len(r.Edges), r.StructureID, r.Chain)
	case KindEmptySelection:
		return fmt.Sprintf("no selectable atoms in chain '%s' of %s: check that the chain id is available", r.Chain, r.StructureID)
	case KindAcquisitionFailure:
		return fmt.Sprintf("structure '%s' could not be acquired (%v): check the PDB id at https://www.rcsb.org/", r.StructureID, r.Err)
	case KindMalformedInput:
		return fmt.Sprintf("structure '%s' is malformed: %v", r.StructureID, r.Err)
	case KindOutputFailure:
		return fmt.Sprintf("network for %s chain %s could not be saved: %v", r.StructureID, r.Chain, r.Err)
	}
	return r.Message
}

// Network is a successful result ready to be persisted as a graph.
type Network struct {
	UUID        string    `json:"uuid"`
	StructureID string    `json:"structure_id"`
	Chain       string    `json:"chain"`
	Params      Params    `json:"params"`
	Edges       EdgeTable `json:"edges"`
	CreatedAt   time.Time `json:"created_at"`
}
