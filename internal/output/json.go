package output

import (
	"context"
	"encoding/json"

	"github.com/dhana56/protein-contact-networks/internal/core/model"
)

// JSONSink writes "<Dir>/<name>.json" as {"edges": [[a, b], ...]}.
type JSONSink struct {
	Dir string
}

type jsonTable struct {
	Edges model.EdgeTable `json:"edges"`
}

func (s *JSONSink) Write(ctx context.Context, name string, table model.EdgeTable) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	f, path, err := create(s.Dir, name+".json")
	if err != nil {
		return "", err
	}
	defer f.Close()

	if table == nil {
		table = model.EdgeTable{}
	}
	enc := json.NewEncoder(f)
	if err := enc.Encode(jsonTable{Edges: table}); err != nil {
		return "", err
	}
	return path, f.Close()
}
