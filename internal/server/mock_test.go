package server

import (
	"context"
	"fmt"
	"sync"

	"github.com/dhana56/protein-contact-networks/internal/core/model"
	"github.com/dhana56/protein-contact-networks/internal/store"
)

type MockStore struct {
	mu       sync.Mutex
	Networks map[string]model.Network
	Err      error
}

func (m *MockStore) Save(ctx context.Context, n model.Network) error {
	if m.Err != nil {
		return m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Networks == nil {
		m.Networks = make(map[string]model.Network)
	}
	m.Networks[n.UUID] = n
	return nil
}

func (m *MockStore) Edges(ctx context.Context, networkUUID string) (model.EdgeTable, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	n, ok := m.Networks[networkUUID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", store.ErrNetworkNotFound, networkUUID)
	}
	return n.Edges, nil
}
