package server

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/dhana56/protein-contact-networks/internal/config"
	"github.com/dhana56/protein-contact-networks/internal/core"
	"github.com/dhana56/protein-contact-networks/internal/core/contact"
	"github.com/dhana56/protein-contact-networks/internal/core/model"
	"github.com/dhana56/protein-contact-networks/internal/driver"
	"github.com/dhana56/protein-contact-networks/internal/store"
	"github.com/dhana56/protein-contact-networks/internal/structure"
)

// NetworkStore is the graph store used for persisted networks.
type NetworkStore interface {
	core.NetworkStore
	Edges(ctx context.Context, networkUUID string) (model.EdgeTable, error)
}

type Server struct {
	Builder          *core.Builder
	Store            NetworkStore // nil when no graph database is configured
	Defaults         model.Params
	BatchConcurrency int

	driver driver.GraphDriver
}

// New wires a server around an existing builder. The builder's own Sink and
// Store are ignored; persistence is decided per request.
func New(b *core.Builder, s NetworkStore, defaults model.Params, batchConcurrency int) *Server {
	return &Server{
		Builder:          b,
		Store:            s,
		Defaults:         defaults,
		BatchConcurrency: batchConcurrency,
	}
}

// NewServer builds the server from configuration. A Memgraph connection is
// opened only when [memgraph] uri is set.
func NewServer(ctx context.Context, cfg *config.Config) (*Server, error) {
	strategy, err := contact.ParseStrategy(cfg.Network.Strategy)
	if err != nil {
		return nil, err
	}

	loader := structure.NewLoader(cfg.RCSB.BaseURL, cfg.Timeout(), cfg.RCSB.CacheDir)
	// Clients name PDB ids; server-side paths are never opened on their behalf.
	loader.AccessionsOnly = true
	b := core.NewBuilder(loader, nil, nil, strategy, cfg.Network.Workers)
	srv := New(b, nil, cfg.Params(), cfg.Concurrency.Batch)

	if cfg.Memgraph.URI == "" {
		log.Println("No Memgraph URI configured, persistence disabled")
		return srv, nil
	}

	d, err := driver.NewMemgraphDriver(ctx, cfg.Memgraph.URI, cfg.Memgraph.User, cfg.Memgraph.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Memgraph: %w", err)
	}
	if err := d.BuildIndices(ctx); err != nil {
		_ = d.Close(ctx)
		return nil, err
	}

	srv.driver = d
	srv.Store = store.NewGraphStore(d)
	return srv, nil
}

func (s *Server) Close(ctx context.Context) error {
	if s.driver == nil {
		return nil
	}
	return s.driver.Close(ctx)
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.GET("/healthz", s.Health)
	r.POST("/networks", s.CreateNetwork)
	r.POST("/networks/batch", s.CreateNetworks)
	r.GET("/networks/:uuid/edges", s.GetEdges)

	return r
}
