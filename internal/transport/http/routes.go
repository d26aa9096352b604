// Package http is the Gin-based HTTP collaborator wrapped around the core
// graph engine, following the teacher's internal/transport/http/routes.go
// shape: a package-level config pointer set by RegisterRoutes, one handler
// function per route, gin.H for response bodies.
package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"sudoku-graph/internal/core"
	"sudoku-graph/internal/metrics"
	"sudoku-graph/internal/puzzlebank"
	"sudoku-graph/internal/sudoku/graph"
	"sudoku-graph/pkg/config"
	"sudoku-graph/pkg/constants"
)

var (
	cfg      *config.Config
	observer *metrics.Observer
)

// RegisterRoutes wires every route onto r, mirroring the teacher's
// RegisterRoutes(r, cfg) entrypoint.
func RegisterRoutes(r *gin.Engine, c *config.Config, obs *metrics.Observer) {
	cfg = c
	observer = obs

	r.GET("/health", healthHandler)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.POST("/solve", solveHandler)
		api.GET("/bank/:magnitude", bankHandler)
	}
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": constants.APIVersion,
	})
}

// SolveRequest is the body for POST /api/solve.
type SolveRequest struct {
	Magnitude int   `json:"magnitude" binding:"required"`
	Values    []int `json:"values" binding:"required"`
}

func solveHandler(c *gin.Context) {
	var req SolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := graph.NewPuzzle(req.Magnitude, req.Values)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	registry := graph.NewTechniqueRegistry()
	driver := graph.NewDriverFromRegistry(registry, observer)

	result, err := driver.Run(context.Background(), p)
	if err != nil && result.Status == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, core.SolveResult{
		Status:    result.Status,
		Rendered:  p.String(),
		Grid:      renderGrid(p),
		StepCount: result.StepCount,
		Steps:     projectSteps(result.Steps),
	})
}

func renderGrid(p *graph.Puzzle) core.Grid {
	side := p.Side
	values := make([]int, side*side)
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			z := p.Value(x, y)
			if z >= 0 {
				values[y*side+x] = z + 1
			}
		}
	}
	return core.Grid{Magnitude: p.Magnitude, Values: values}
}

func projectSteps(steps []*graph.EventNode) []core.EventStep {
	out := make([]core.EventStep, 0, len(steps))
	for _, s := range steps {
		out = append(out, projectEvent(s))
	}
	return out
}

func projectEvent(n *graph.EventNode) core.EventStep {
	children := make([]core.EventStep, 0, len(n.Children))
	for _, c := range n.Children {
		children = append(children, projectEvent(c))
	}
	return core.EventStep{
		Label:     n.Label,
		Falsified: n.FalsifiedCount(),
		DeepFalse: n.DeepFalse(),
		Children:  children,
	}
}

func bankHandler(c *gin.Context) {
	magnitudeParam := c.Param("magnitude")
	magnitude := 0
	if _, err := parseMagnitude(magnitudeParam, &magnitude); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid magnitude"})
		return
	}

	bank := puzzlebank.Global()
	if bank == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "puzzle bank not loaded"})
		return
	}

	puzzle, ok := bank.Random(magnitude)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no banked puzzle for this magnitude"})
		return
	}

	c.JSON(http.StatusOK, puzzle)
}

func parseMagnitude(s string, out *int) (int, error) {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, graph.ErrMalformedInput
		}
		n = n*10 + int(r-'0')
	}
	*out = n
	return n, nil
}
