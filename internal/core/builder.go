package core

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/dhana56/protein-contact-networks/internal/core/canon"
	"github.com/dhana56/protein-contact-networks/internal/core/contact"
	"github.com/dhana56/protein-contact-networks/internal/core/model"
	"github.com/dhana56/protein-contact-networks/internal/core/selection"
	"github.com/dhana56/protein-contact-networks/internal/output"
	"github.com/dhana56/protein-contact-networks/internal/structure"
)

// NetworkStore persists successful networks.
type NetworkStore interface {
	Save(ctx context.Context, n model.Network) error
}

// Run selects the residue sites of chain, detects contacts and returns the
// canonical edge table together with the number of selected sites. Zero sites
// is the empty selection; the table is then empty too.
func Run(ctx context.Context, atoms []model.AtomRecord, chain string, p model.Params, s contact.Strategy, workers int) (model.EdgeTable, int, error) {
	sites := selection.Select(atoms, chain, p.AtomName)
	if len(sites) == 0 {
		return nil, 0, nil
	}

	raw, err := s.Detect(ctx, sites, p, workers)
	if err != nil {
		return nil, len(sites), err
	}

	return canon.Canonicalize(raw), len(sites), nil
}

// Builder runs requests end to end: acquire, build, write, persist.
// Sink and Store are optional.
type Builder struct {
	Provider structure.Provider
	Sink     output.Sink
	Store    NetworkStore
	Strategy contact.Strategy
	Workers  int

	// Logger receives failure diagnostics; nil keeps the builder quiet.
	Logger *log.Logger

	UUIDGenerator func() string
}

func NewBuilder(provider structure.Provider, sink output.Sink, store NetworkStore, strategy contact.Strategy, workers int) *Builder {
	return &Builder{
		Provider:      provider,
		Sink:          sink,
		Store:         store,
		Strategy:      strategy,
		Workers:       workers,
		Logger:        log.Default(),
		UUIDGenerator: func() string { return uuid.New().String() },
	}
}

func (b *Builder) newUUID() string {
	if b.UUIDGenerator != nil {
		return b.UUIDGenerator()
	}
	return uuid.New().String()
}

// Build runs one request. Every failure is reported through the result kind.
func (b *Builder) Build(ctx context.Context, req model.Request) model.Result {
	return b.build(ctx, req, output.BaseName(req.StructureID, req.Chain))
}

func (b *Builder) build(ctx context.Context, req model.Request, name string) model.Result {
	res := model.Result{
		UUID:        b.newUUID(),
		StructureID: strings.TrimSpace(req.StructureID),
		Chain:       strings.ToUpper(strings.TrimSpace(req.Chain)),
		CreatedAt:   time.Now().UTC(),
	}

	if err := req.Params.Validate(); err != nil {
		return b.fail(res, model.KindMalformedInput, fmt.Errorf("invalid parameters: %w", err))
	}

	st, err := b.Provider.Fetch(ctx, res.StructureID)
	if err != nil {
		return b.fail(res, classify(err), err)
	}

	edges, n, err := Run(ctx, st.Atoms, res.Chain, req.Params, b.Strategy, b.Workers)
	if err != nil {
		return b.fail(res, model.KindAcquisitionFailure, fmt.Errorf("contact detection interrupted: %w", err))
	}
	res.Residues = n
	if n == 0 {
		res.Kind = model.KindEmptySelection
		res.Message = res.Diagnostic()
		b.logf("%s", res.Message)
		return res
	}
	res.Edges = edges

	if b.Sink != nil {
		path, err := b.Sink.Write(ctx, name, edges)
		if err != nil {
			return b.fail(res, model.KindOutputFailure, err)
		}
		res.OutputPath = path
	}

	if b.Store != nil {
		network := model.Network{
			UUID:        res.UUID,
			StructureID: res.StructureID,
			Chain:       res.Chain,
			Params:      req.Params,
			Edges:       edges,
			CreatedAt:   res.CreatedAt,
		}
		if err := b.Store.Save(ctx, network); err != nil {
			return b.fail(res, model.KindOutputFailure, err)
		}
	}

	res.Kind = model.KindSuccess
	res.Message = res.Diagnostic()
	return res
}

// BuildBatch runs reqs with at most concurrency builds in flight. Results are
// in request order and a failing request never affects the others. Requests
// sharing an output name get numbered suffixes so no table overwrites another.
func (b *Builder) BuildBatch(ctx context.Context, reqs []model.Request, concurrency int) []model.Result {
	results := make([]model.Result, len(reqs))
	names := batchNames(reqs)

	g := new(errgroup.Group)
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}
	for i, req := range reqs {
		g.Go(func() error {
			results[i] = b.build(ctx, req, names[i])
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func (b *Builder) fail(res model.Result, kind model.ResultKind, err error) model.Result {
	res.Kind = kind
	res.Err = err
	res.Edges = nil
	res.Message = res.Diagnostic()
	b.logf("Build %s failed: %s", res.UUID, res.Message)
	return res
}

func (b *Builder) logf(format string, args ...interface{}) {
	if b.Logger != nil {
		b.Logger.Printf(format, args...)
	}
}

// batchNames gives the first request with a given output name the plain name
// and later ones "<name>_2", "<name>_3", ... skipping names already taken.
func batchNames(reqs []model.Request) []string {
	names := make([]string, len(reqs))
	taken := make(map[string]bool, len(reqs))
	for i, req := range reqs {
		base := output.BaseName(req.StructureID, req.Chain)
		name := base
		for n := 2; taken[name]; n++ {
			name = fmt.Sprintf("%s_%d", base, n)
		}
		taken[name] = true
		names[i] = name
	}
	return names
}

func classify(err error) model.ResultKind {
	if errors.Is(err, structure.ErrMalformed) {
		return model.KindMalformedInput
	}
	return model.KindAcquisitionFailure
}
