package contact

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/dhana56/protein-contact-networks/internal/core/model"
)

// DetectParallel splits the rows of the pair matrix into contiguous blocks,
// one per worker, and concatenates the blocks in row order. The output is
// identical to Detect. workers <= 0 means one per CPU.
func DetectParallel(ctx context.Context, sites []model.ResidueSite, p model.Params, workers int) ([]model.RawPair, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(sites) {
		workers = len(sites)
	}
	if workers <= 1 {
		return Detect(sites, p), ctx.Err()
	}

	blocks := make([][]model.RawPair, workers)
	size := (len(sites) + workers - 1) / workers

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		start := w * size
		end := min(start+size, len(sites))
		if start >= end {
			continue
		}
		g.Go(func() error {
			var block []model.RawPair
			for i := start; i < end; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				block = detectRow(block, sites, i, p)
			}
			blocks[w] = block
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, b := range blocks {
		total += len(b)
	}
	out := make([]model.RawPair, 0, total)
	for _, b := range blocks {
		out = append(out, b...)
	}
	return out, nil
}
