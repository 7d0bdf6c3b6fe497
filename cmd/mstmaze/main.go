// Command mstmaze generates grid mazes, solves their minimum spanning tree
// with one of four kernels over an in-process rank cluster, and optionally
// renders the solution as ASCII art.
//
// Usage:
//
//	mstmaze [-a N] [-c N] [-r N] [-f PATH] [-p N] [-n] [-m] [-v]
//
//	-a N     algorithm: 0 kruskal (default), 1 prim-fibonacci, 2 prim-binary, 3 boruvka
//	-c N     maze columns (default 3)
//	-r N     maze rows (default 2)
//	-f PATH  graph file (default maze.csv)
//	-p N     cluster rank count (default 1)
//	-n       write a new random maze file before solving
//	-m       print the MST as a maze after solving
//	-v       print the graph and MST edge lists
//	-h       this help
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/katalvlaran/mstkit/cluster"
	"github.com/katalvlaran/mstkit/core"
	"github.com/katalvlaran/mstkit/graphio"
	"github.com/katalvlaran/mstkit/maze"
	"github.com/katalvlaran/mstkit/mst"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run parses the flags, drives the cluster, and maps any failure to exit 1.
func run(args []string) int {
	fs := flag.NewFlagSet("mstmaze", flag.ContinueOnError)
	var (
		algoNum   = fs.Int("a", int(mst.Kruskal), "algorithm: 0 kruskal, 1 prim-fibonacci, 2 prim-binary, 3 boruvka")
		columns   = fs.Int("c", 3, "maze columns")
		rows      = fs.Int("r", 2, "maze rows")
		path      = fs.String("f", "maze.csv", "graph file path")
		ranks     = fs.Int("p", 1, "cluster rank count")
		newMaze   = fs.Bool("n", false, "write a new random maze file before solving")
		printMaze = fs.Bool("m", false, "print the MST as a maze after solving")
		verbose   = fs.Bool("v", false, "print the graph and MST edge lists")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}

		return 1
	}

	algo, err := mst.ParseAlgorithm(*algoNum)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)

		return 1
	}

	cfg := mst.Config{
		Algorithm: algo,
		Rows:      *rows,
		Columns:   *columns,
		GraphPath: *path,
		NewMaze:   *newMaze,
		PrintMaze: *printMaze,
		Verbose:   *verbose,
	}

	if err = cluster.Run(*ranks, func(c *cluster.Cluster) error {
		return solve(c, cfg)
	}); err != nil {
		fmt.Fprintln(os.Stderr, err)

		return 1
	}

	return 0
}

// solve is the per-rank body: broadcast the configuration, load the graph on
// rank 0, dispatch the kernel everywhere, report on rank 0.
func solve(c *cluster.Cluster, cfg mst.Config) error {
	cfg, err := mst.BroadcastConfig(c, cfg)
	if err != nil {
		return err
	}

	var g *core.WeightedGraph
	if c.Root() {
		if cfg.NewMaze {
			fresh, genErr := maze.Generate(cfg.Rows, cfg.Columns)
			if genErr != nil {
				return genErr
			}
			if genErr = graphio.WriteFile(cfg.GraphPath, fresh); genErr != nil {
				return genErr
			}
		}
		if g, err = graphio.ReadFile(cfg.GraphPath); err != nil {
			return err
		}
		if cfg.Verbose {
			fmt.Printf("graph: %d vertices, %d edges\n", g.VertexCount(), g.EdgeCount())
			for _, e := range g.Edges() {
				fmt.Printf("  %d %d %d\n", e.From, e.To, e.Weight)
			}
		}
	}

	res, err := mst.Compute(c, g, cfg.Algorithm)
	if err != nil {
		return err
	}
	if !c.Root() {
		return nil
	}

	fmt.Printf("%s: MST weight %d (%d edges, %d ranks)\n",
		res.Algorithm, res.TotalWeight, len(res.SpanningEdges()), c.Size())
	if cfg.Verbose {
		for _, e := range res.Rows {
			fmt.Printf("  %d %d %d\n", e.From, e.To, e.Weight)
		}
	}
	if cfg.PrintMaze {
		rendered, renderErr := maze.Render(cfg.Rows, cfg.Columns, res.SpanningEdges())
		if renderErr != nil {
			return renderErr
		}
		fmt.Print(rendered)
	}

	return nil
}
