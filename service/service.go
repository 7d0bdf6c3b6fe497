// Package service exposes the MST engine over HTTP: submit a graph document
// and get its spanning tree back, or ask for a freshly generated maze,
// solved and rendered. The engine underneath is the same in-process cluster
// the CLI drives; each request spins its own rank group.
package service

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/mstkit/cluster"
	"github.com/katalvlaran/mstkit/core"
	"github.com/katalvlaran/mstkit/graphio"
	"github.com/katalvlaran/mstkit/maze"
	"github.com/katalvlaran/mstkit/mst"
)

// ErrBadRanks indicates a rank count outside [1, maxRanks].
var ErrBadRanks = errors.New("service: rank count out of range")

// maxRanks bounds per-request cluster sizes; requests are independent, so a
// runaway rank count only hurts the node serving it.
const maxRanks = 64

// Service is the HTTP façade. Construct with New, then Run (blocking) or
// mount Engine into an existing server.
type Service struct {
	addr   string
	engine *gin.Engine
}

// Options configures the service.
type Options struct {
	// Addr is the listen address, host:port.
	Addr string

	// Quiet switches gin to release mode and leaves out the request logger.
	Quiet bool
}

// DefaultOptions serves on :8080 with request logging on.
func DefaultOptions() Options {
	return Options{Addr: ":8080"}
}

// New builds the service and its routes.
func New(opts Options) *Service {
	var engine *gin.Engine
	if opts.Quiet {
		gin.SetMode(gin.ReleaseMode)
		engine = gin.New()
		engine.Use(gin.Recovery())
	} else {
		engine = gin.Default()
	}
	s := &Service{
		addr:   opts.Addr,
		engine: engine,
	}
	s.routes()

	return s
}

// Engine exposes the underlying gin engine, mainly for tests and embedding.
func (s *Service) Engine() *gin.Engine { return s.engine }

// Run serves until the listener fails. Blocking.
func (s *Service) Run() error {
	return s.engine.Run(s.addr)
}

// solveRequest is the POST /api/v1/solve payload: a graph document plus the
// kernel selector and rank count.
type solveRequest struct {
	Algorithm int                   `json:"algorithm" yaml:"algorithm"`
	Ranks     int                   `json:"ranks" yaml:"ranks"`
	Graph     graphio.GraphDocument `json:"graph" yaml:"graph"`
}

func (s *Service) routes() {
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := s.engine.Group("/api/v1")

	// Solve a submitted graph document.
	api.POST("/solve", func(c *gin.Context) {
		var req solveRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

			return
		}
		if req.Ranks == 0 {
			req.Ranks = 1
		}

		doc, status, err := s.solve(req)
		if err != nil {
			c.JSON(status, gin.H{"error": err.Error()})

			return
		}
		c.JSON(http.StatusOK, doc)
	})

	// Generate a maze, solve it, render it.
	api.GET("/maze", func(c *gin.Context) {
		rows := intQuery(c, "rows", 2)
		cols := intQuery(c, "cols", 3)
		seed := intQuery(c, "seed", 1)
		algoNum := intQuery(c, "algorithm", int(mst.Kruskal))

		algo, err := mst.ParseAlgorithm(algoNum)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

			return
		}
		g, err := maze.Generate(rows, cols, maze.WithSeed(int64(seed)))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

			return
		}
		res, err := runCluster(g, algo, 1)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})

			return
		}
		rendered, err := maze.Render(rows, cols, res.SpanningEdges())
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})

			return
		}
		c.String(http.StatusOK, rendered)
	})
}

// solve validates the request, runs the cluster, and wraps the result.
// The int return is the HTTP status to use on error.
func (s *Service) solve(req solveRequest) (graphio.ResultDocument, int, error) {
	if req.Ranks < 1 || req.Ranks > maxRanks {
		return graphio.ResultDocument{}, http.StatusBadRequest,
			fmt.Errorf("%w: %d", ErrBadRanks, req.Ranks)
	}
	algo, err := mst.ParseAlgorithm(req.Algorithm)
	if err != nil {
		return graphio.ResultDocument{}, http.StatusBadRequest, err
	}
	g, err := req.Graph.ToGraph()
	if err != nil {
		return graphio.ResultDocument{}, http.StatusBadRequest, err
	}

	res, err := runCluster(g, algo, req.Ranks)
	if err != nil {
		return graphio.ResultDocument{}, http.StatusUnprocessableEntity, err
	}

	return graphio.FromResult(res, req.Ranks), 0, nil
}

// runCluster executes one kernel over a fresh rank group and returns rank
// 0's result.
func runCluster(g *core.WeightedGraph, algo mst.Algorithm, ranks int) (*mst.Result, error) {
	var res *mst.Result
	err := cluster.Run(ranks, func(c *cluster.Cluster) error {
		var local *core.WeightedGraph
		if c.Root() {
			local = g
		}
		r, err := mst.Compute(c, local, algo)
		if err != nil {
			return err
		}
		if c.Root() {
			res = r
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

// intQuery reads an integer query parameter with a default.
func intQuery(c *gin.Context, key string, def int) int {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}

	return n
}
