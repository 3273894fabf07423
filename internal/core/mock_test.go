package core

import (
	"context"
	"fmt"
	"sync"

	"github.com/dhana56/protein-contact-networks/internal/core/model"
	"github.com/dhana56/protein-contact-networks/internal/structure"
)

type MockProvider struct {
	Structures map[string]*structure.Structure
	Errs       map[string]error
}

func (m *MockProvider) Fetch(ctx context.Context, id string) (*structure.Structure, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", structure.ErrUnavailable, err)
	}
	if err, ok := m.Errs[id]; ok {
		return nil, err
	}
	if st, ok := m.Structures[id]; ok {
		return st, nil
	}
	return nil, fmt.Errorf("%w: %s", structure.ErrNotFound, id)
}

type MockSink struct {
	mu      sync.Mutex
	Written map[string]model.EdgeTable
	Err     error
}

func (m *MockSink) Write(ctx context.Context, name string, table model.EdgeTable) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Written == nil {
		m.Written = make(map[string]model.EdgeTable)
	}
	m.Written[name] = table
	return "out/" + name + ".csv", nil
}

type MockStore struct {
	mu    sync.Mutex
	Saved []model.Network
	Err   error
}

func (m *MockStore) Save(ctx context.Context, n model.Network) error {
	if m.Err != nil {
		return m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Saved = append(m.Saved, n)
	return nil
}
