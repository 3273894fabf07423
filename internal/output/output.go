// Package output writes edge tables to files.
package output

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhana56/protein-contact-networks/internal/core/model"
)

// Sink stores an edge table under a base name and returns where it went.
type Sink interface {
	Write(ctx context.Context, name string, table model.EdgeTable) (string, error)
}

// BaseName derives the output name for a structure and chain,
// e.g. "data/1abc.pdb.gz" and "a" give "1abc_A".
func BaseName(structureID, chain string) string {
	name := filepath.Base(strings.TrimSpace(structureID))
	for _, ext := range []string{".gz", ".pdb", ".ent"} {
		name = strings.TrimSuffix(name, ext)
	}
	if chain = strings.ToUpper(strings.TrimSpace(chain)); chain != "" {
		name += "_" + chain
	}
	return name
}

// New returns the sink for format ("csv" or "json") writing into dir.
func New(format, dir string) (Sink, error) {
	switch strings.ToLower(format) {
	case "", "csv":
		return &CSVSink{Dir: dir}, nil
	case "json":
		return &JSONSink{Dir: dir}, nil
	}
	return nil, fmt.Errorf("unsupported output format %q", format)
}

func create(dir, file string) (*os.File, string, error) {
	if dir == "" {
		return nil, "", fmt.Errorf("output directory not set")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, "", fmt.Errorf("failed to create output directory '%s': %w", dir, err)
	}
	path := filepath.Join(dir, file)
	f, err := os.Create(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create '%s': %w", path, err)
	}
	return f, path, nil
}
