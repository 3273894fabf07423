package server

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dhana56/protein-contact-networks/internal/analysis"
	"github.com/dhana56/protein-contact-networks/internal/core"
	"github.com/dhana56/protein-contact-networks/internal/core/model"
	"github.com/dhana56/protein-contact-networks/internal/store"
)

type NetworkRequest struct {
	StructureID   string   `json:"structure_id" binding:"required"`
	Chain         string   `json:"chain" binding:"required"`
	Cutoff        *float64 `json:"cutoff"`
	Atom          *string  `json:"atom"`
	ResidueNoDiff *int     `json:"residue_no_diff"`
	Persist       bool     `json:"persist"`
	Analyze       bool     `json:"analyze"`
}

// BatchRequest applies Persist and Analyze to every entry; the per entry
// flags are ignored.
type BatchRequest struct {
	Requests []NetworkRequest `json:"requests" binding:"required,min=1,dive"`
	Persist  bool             `json:"persist"`
	Analyze  bool             `json:"analyze"`
}

type NetworkResponse struct {
	model.Result
	Analysis *analysis.Summary `json:"analysis,omitempty"`
}

func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "persistence": s.Store != nil})
}

func (s *Server) CreateNetwork(c *gin.Context) {
	var req NetworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	mr, err := s.toRequest(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	b, ok := s.builder(c, req.Persist)
	if !ok {
		return
	}

	res := b.Build(c.Request.Context(), mr)
	c.JSON(statusFor(res.Kind), respond(res, req.Analyze))
}

func (s *Server) CreateNetworks(c *gin.Context) {
	var req BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	reqs := make([]model.Request, len(req.Requests))
	for i, r := range req.Requests {
		mr, err := s.toRequest(r)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "index": i})
			return
		}
		reqs[i] = mr
	}

	b, ok := s.builder(c, req.Persist)
	if !ok {
		return
	}

	results := b.BuildBatch(c.Request.Context(), reqs, s.BatchConcurrency)
	out := make([]NetworkResponse, len(results))
	for i, res := range results {
		out[i] = respond(res, req.Analyze)
	}

	c.JSON(http.StatusOK, gin.H{"results": out})
}

func (s *Server) GetEdges(c *gin.Context) {
	if s.Store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Persistence is not configured"})
		return
	}

	id := c.Param("uuid")
	edges, err := s.Store.Edges(c.Request.Context(), id)
	if errors.Is(err, store.ErrNetworkNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		log.Printf("Failed to read network %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read network"})
		return
	}

	body := gin.H{"uuid": id, "edges": edges}
	if c.Query("analyze") == "true" {
		body["analysis"] = analysis.Summarize(edges)
	}
	c.JSON(http.StatusOK, body)
}

func (s *Server) toRequest(req NetworkRequest) (model.Request, error) {
	p := s.Defaults
	if req.Cutoff != nil {
		p.Cutoff = *req.Cutoff
	}
	if req.Atom != nil {
		p.AtomName = *req.Atom
	}
	if req.ResidueNoDiff != nil {
		p.ResidueNoDiff = *req.ResidueNoDiff
	}
	if err := p.Validate(); err != nil {
		return model.Request{}, err
	}
	return model.Request{StructureID: req.StructureID, Chain: req.Chain, Params: p}, nil
}

// builder returns a copy of the server's builder that persists only when asked.
func (s *Server) builder(c *gin.Context, persist bool) (*core.Builder, bool) {
	b := *s.Builder
	b.Sink = nil
	b.Store = nil
	if persist {
		if s.Store == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Persistence is not configured"})
			return nil, false
		}
		b.Store = s.Store
	}
	return &b, true
}

func respond(res model.Result, analyze bool) NetworkResponse {
	out := NetworkResponse{Result: res}
	if analyze && res.OK() {
		summary := analysis.Summarize(res.Edges)
		out.Analysis = &summary
	}
	return out
}

func statusFor(kind model.ResultKind) int {
	switch kind {
	case model.KindSuccess, model.KindEmptySelection:
		return http.StatusOK
	case model.KindAcquisitionFailure:
		return http.StatusNotFound
	case model.KindMalformedInput:
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
