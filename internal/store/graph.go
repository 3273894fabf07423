package store

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/dhana56/protein-contact-networks/internal/core/model"
	"github.com/dhana56/protein-contact-networks/internal/driver"
)

var ErrNetworkNotFound = errors.New("network not found")

// GraphStore persists contact networks as :Network, :Residue and CONTACT
// elements in a Bolt graph database.
type GraphStore struct {
	Driver driver.GraphDriver
}

func NewGraphStore(d driver.GraphDriver) *GraphStore {
	return &GraphStore{Driver: d}
}

func (s *GraphStore) Save(ctx context.Context, n model.Network) error {
	params := map[string]interface{}{
		"uuid":            n.UUID,
		"structure_id":    n.StructureID,
		"chain":           n.Chain,
		"cutoff":          n.Params.Cutoff,
		"atom":            n.Params.AtomName,
		"residue_no_diff": n.Params.ResidueNoDiff,
		"edge_count":      len(n.Edges),
		"created_at":      n.CreatedAt,
	}
	if _, err := s.Driver.ExecuteQuery(ctx, driver.SaveNetworkQuery, params); err != nil {
		return fmt.Errorf("failed to save network %s: %w", n.UUID, err)
	}

	if len(n.Edges) == 0 {
		return nil
	}

	residues := make([]interface{}, 0, len(n.Edges))
	for _, r := range n.Edges.Nodes() {
		residues = append(residues, r)
	}
	if _, err := s.Driver.ExecuteQuery(ctx, driver.SaveResiduesQuery, map[string]interface{}{
		"uuid":     n.UUID,
		"residues": residues,
	}); err != nil {
		return s.abandon(ctx, n.UUID, fmt.Errorf("failed to save residues of network %s: %w", n.UUID, err))
	}

	edges := make([]interface{}, len(n.Edges))
	for i, e := range n.Edges {
		edges[i] = []interface{}{e.A, e.B}
	}
	if _, err := s.Driver.ExecuteQuery(ctx, driver.SaveContactsQuery, map[string]interface{}{
		"uuid":  n.UUID,
		"edges": edges,
	}); err != nil {
		return s.abandon(ctx, n.UUID, fmt.Errorf("failed to save contacts of network %s: %w", n.UUID, err))
	}

	return nil
}

// abandon removes a partially written network so it can never be read back
// as complete, and returns cause.
func (s *GraphStore) abandon(ctx context.Context, networkUUID string, cause error) error {
	if err := s.Delete(ctx, networkUUID); err != nil {
		log.Printf("Warning: partial network %s left in store: %v", networkUUID, err)
	}
	return cause
}

// Edges reads the contacts of a stored network back in canonical order.
func (s *GraphStore) Edges(ctx context.Context, networkUUID string) (model.EdgeTable, error) {
	params := map[string]interface{}{"uuid": networkUUID}

	found, err := s.Driver.ExecuteQuery(ctx, driver.GetNetworkQuery, params)
	if err != nil {
		return nil, fmt.Errorf("failed to look up network %s: %w", networkUUID, err)
	}
	if len(found.Records) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNetworkNotFound, networkUUID)
	}

	res, err := s.Driver.ExecuteQuery(ctx, driver.GetContactsQuery, params)
	if err != nil {
		return nil, fmt.Errorf("failed to read contacts of network %s: %w", networkUUID, err)
	}

	set := model.NewPairSet[int]()
	for _, rec := range res.Records {
		a, err := residueNumber(rec, "a")
		if err != nil {
			return nil, err
		}
		b, err := residueNumber(rec, "b")
		if err != nil {
			return nil, err
		}
		set.Add(a, b)
	}

	return model.EdgeTable(set.Sorted()), nil
}

func (s *GraphStore) Delete(ctx context.Context, networkUUID string) error {
	_, err := s.Driver.ExecuteQuery(ctx, driver.DeleteNetworkQuery, map[string]interface{}{"uuid": networkUUID})
	if err != nil {
		return fmt.Errorf("failed to delete network %s: %w", networkUUID, err)
	}
	return nil
}

func residueNumber(rec *neo4j.Record, key string) (int, error) {
	v, ok := rec.Get(key)
	if !ok {
		return 0, fmt.Errorf("contact record has no '%s'", key)
	}
	switch n := v.(type) {
	case int64:
		return int(n), nil
	case int:
		return n, nil
	}
	return 0, fmt.Errorf("contact record '%s' is %T, not an integer", key, v)
}
