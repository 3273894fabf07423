package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhana56/protein-contact-networks/internal/core/model"
)

func atom(chain string, res int, name, alt string, x float64) model.AtomRecord {
	return model.AtomRecord{ChainID: chain, ResidueNumber: res, AtomName: name, AltLoc: alt, X: x}
}

func TestSelect_ChainIsolation(t *testing.T) {
	atoms := []model.AtomRecord{
		atom("A", 1, "CA", "", 0),
		atom("B", 2, "CA", "", 1),
		atom("A", 3, "CA", "", 2),
		atom("B", 4, "CA", "", 3),
	}

	sites := Select(atoms, "A", "CA")
	require.Len(t, sites, 2)
	assert.Equal(t, 1, sites[0].ResidueNumber)
	assert.Equal(t, 3, sites[1].ResidueNumber)
}

func TestSelect_ChainCaseInsensitive(t *testing.T) {
	atoms := []model.AtomRecord{atom("A", 1, "CA", "", 0)}

	assert.Len(t, Select(atoms, "a", "CA"), 1)
	assert.Len(t, Select([]model.AtomRecord{atom("a", 1, "CA", "", 0)}, "A", "CA"), 1)
}

func TestSelect_AtomNameExact(t *testing.T) {
	atoms := []model.AtomRecord{
		atom("A", 1, "N", "", 0),
		atom("A", 1, "CA", "", 1),
		atom("A", 1, "C", "", 2),
		atom("A", 1, "CB", "", 3),
		atom("A", 2, "ca", "", 4),
	}

	sites := Select(atoms, "A", "CA")
	require.Len(t, sites, 1)
	assert.Equal(t, 1.0, sites[0].Coord.X)

	sites = Select(atoms, "A", "CB")
	require.Len(t, sites, 1)
	assert.Equal(t, 3.0, sites[0].Coord.X)
}

func TestSelect_AltLocFiltering(t *testing.T) {
	atoms := []model.AtomRecord{
		atom("A", 1, "CA", "A", 1),
		atom("A", 1, "CA", "B", 2),
		atom("A", 2, "CA", "", 3),
		atom("A", 3, "CA", "A", 4),
		atom("A", 3, "CA", "B", 5),
		atom("A", 3, "CA", "C", 6),
	}

	sites := Select(atoms, "A", "CA")
	require.Len(t, sites, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{sites[0].ResidueNumber, sites[1].ResidueNumber, sites[2].ResidueNumber})
	assert.Equal(t, 1.0, sites[0].Coord.X)
	assert.Equal(t, 4.0, sites[2].Coord.X)
}

func TestSelect_PreservesRowOrder(t *testing.T) {
	atoms := []model.AtomRecord{
		atom("A", 9, "CA", "", 0),
		atom("A", 2, "CA", "", 0),
		atom("A", 5, "CA", "", 0),
	}

	sites := Select(atoms, "A", "CA")
	require.Len(t, sites, 3)
	assert.Equal(t, 9, sites[0].ResidueNumber)
	assert.Equal(t, 2, sites[1].ResidueNumber)
	assert.Equal(t, 5, sites[2].ResidueNumber)
}

func TestSelect_Empty(t *testing.T) {
	atoms := []model.AtomRecord{atom("A", 1, "CA", "", 0)}

	assert.Empty(t, Select(atoms, "Z", "CA"))
	assert.Empty(t, Select(atoms, "A", "P"))
	assert.Empty(t, Select(nil, "A", "CA"))
}
