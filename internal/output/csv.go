package output

import (
	"context"
	"encoding/csv"
	"strconv"

	"github.com/dhana56/protein-contact-networks/internal/core/model"
)

// CSVSink writes "<Dir>/<name>.csv" with a row index column and the
// header ",Node1,Node2".
type CSVSink struct {
	Dir string
}

func (s *CSVSink) Write(ctx context.Context, name string, table model.EdgeTable) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	f, path, err := create(s.Dir, name+".csv")
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteCSV(csv.NewWriter(f), table); err != nil {
		return "", err
	}
	return path, f.Close()
}

// WriteCSV writes table to w and flushes it.
func WriteCSV(w *csv.Writer, table model.EdgeTable) error {
	if err := w.Write([]string{"", "Node1", "Node2"}); err != nil {
		return err
	}
	for i, e := range table {
		row := []string{strconv.Itoa(i), strconv.Itoa(e.A), strconv.Itoa(e.B)}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
