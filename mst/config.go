package mst

import (
	"fmt"

	"github.com/katalvlaran/mstkit/cluster"
)

// Config is the run configuration parsed on rank 0 and broadcast to every
// rank before the kernels dispatch. GraphPath is deliberately excluded from
// the broadcast: the graph file is read on rank 0 only, so the path never
// needs to leave it.
type Config struct {
	// Algorithm selects the kernel.
	Algorithm Algorithm

	// Rows and Columns size the generated grid maze.
	Rows, Columns int

	// GraphPath locates the graph file. Rank-0 local.
	GraphPath string

	// NewMaze asks for a fresh maze file before solving.
	NewMaze bool

	// PrintMaze renders the MST as an ASCII maze after solving.
	PrintMaze bool

	// Verbose prints the graph and MST edge lists.
	Verbose bool
}

// configWords is the fixed word count of the broadcast frame.
const configWords = 6

// DefaultConfig mirrors the CLI defaults: Kruskal over maze.csv, a 2×3 grid.
func DefaultConfig() Config {
	return Config{
		Algorithm: Kruskal,
		Rows:      2,
		Columns:   3,
		GraphPath: "maze.csv",
	}
}

// marshalWords packs the broadcastable fields into a fixed-format frame of
// configWords int32 words: algorithm, rows, columns, then the three flags as
// 0/1. Never the native struct layout.
func (cfg Config) marshalWords() []int32 {
	flag := func(b bool) int32 {
		if b {
			return 1
		}

		return 0
	}

	return []int32{
		int32(cfg.Algorithm),
		int32(cfg.Rows),
		int32(cfg.Columns),
		flag(cfg.NewMaze),
		flag(cfg.PrintMaze),
		flag(cfg.Verbose),
	}
}

// unmarshalWords is the inverse of marshalWords. GraphPath stays empty on
// non-root ranks.
func unmarshalWords(frame []int32) (Config, error) {
	if len(frame) != configWords {
		return Config{}, fmt.Errorf("config frame has %d words, want %d: %w",
			len(frame), configWords, ErrBadConfigFrame)
	}

	return Config{
		Algorithm: Algorithm(frame[0]),
		Rows:      int(frame[1]),
		Columns:   int(frame[2]),
		NewMaze:   frame[3] != 0,
		PrintMaze: frame[4] != 0,
		Verbose:   frame[5] != 0,
	}, nil
}

// BroadcastConfig distributes rank 0's configuration to every rank. Rank 0
// passes the parsed Config and gets it back verbatim (GraphPath included);
// the other ranks pass anything and receive the broadcast fields.
func BroadcastConfig(c *cluster.Cluster, cfg Config) (Config, error) {
	frame, err := c.Broadcast(0, cfg.marshalWords())
	if err != nil {
		return Config{}, err
	}
	if c.Root() {
		return cfg, nil
	}

	return unmarshalWords(frame)
}
