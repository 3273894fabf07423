package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dhana56/protein-contact-networks/internal/core/model"
)

func TestDegree(t *testing.T) {
	edges := model.EdgeTable{{A: 1, B: 2}, {A: 1, B: 4}, {A: 2, B: 3}, {A: 2, B: 4}, {A: 3, B: 4}}

	assert.Equal(t, map[int]int{1: 2, 2: 3, 3: 2, 4: 3}, Degree(edges))
}

func TestComponents(t *testing.T) {
	edges := table([2]int{7, 9}, [2]int{1, 2}, [2]int{2, 3}, [2]int{9, 8})

	assert.Equal(t, [][]int{{1, 2, 3}, {7, 8, 9}}, Components(edges))
	assert.Nil(t, Components(nil))
}

func TestSummarize(t *testing.T) {
	edges := table([2]int{1, 2}, [2]int{2, 3}, [2]int{10, 11})

	s := Summarize(edges)

	assert.Equal(t, 5, s.Nodes)
	assert.Equal(t, 3, s.Edges)
	assert.Equal(t, 2, s.MaxDegree)
	assert.Len(t, s.Components, 2)
	assert.Len(t, s.Communities, 2)
}
