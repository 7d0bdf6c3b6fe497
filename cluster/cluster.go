package cluster

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for cluster operations.
var (
	// ErrBadSize indicates a non-positive rank count.
	ErrBadSize = errors.New("cluster: rank count must be positive")

	// ErrRankRange indicates a peer rank outside [0, Size).
	ErrRankRange = errors.New("cluster: peer rank out of range")

	// ErrSelfMessage indicates a rank addressing itself point-to-point.
	ErrSelfMessage = errors.New("cluster: rank cannot message itself")
)

// Cluster is one rank's handle on the messaging environment: its identity,
// the cluster size, and the shared channel mesh.
type Cluster struct {
	rank  int
	size  int
	links [][]chan []int32 // links[src][dst], unbuffered
}

// Rank returns this handle's rank in [0, Size).
func (c *Cluster) Rank() int { return c.rank }

// Size returns the number of ranks in the cluster.
func (c *Cluster) Size() int { return c.size }

// Root reports whether this handle is rank 0.
func (c *Cluster) Root() bool { return c.rank == 0 }

// Run launches size ranks, each executing body with its own Cluster handle,
// and joins them. The returned error aggregates every rank's failure via
// errors.Join; nil means all ranks completed.
//
// Returns ErrBadSize when size < 1.
func Run(size int, body func(*Cluster) error) error {
	if size < 1 {
		return fmt.Errorf("cluster.Run(size=%d): %w", size, ErrBadSize)
	}

	// Private mesh: one unbuffered channel per ordered (src, dst) pair.
	links := make([][]chan []int32, size)
	for src := range links {
		links[src] = make([]chan []int32, size)
		for dst := range links[src] {
			if src != dst {
				links[src][dst] = make(chan []int32)
			}
		}
	}

	errs := make([]error, size)
	var wg sync.WaitGroup
	wg.Add(size)
	for r := 0; r < size; r++ {
		go func(rank int) {
			defer wg.Done()
			errs[rank] = body(&Cluster{rank: rank, size: size, links: links})
		}(r)
	}
	wg.Wait()

	return errors.Join(errs...)
}

// Send delivers a copy of data to dst, blocking until dst posts the matching
// Recv. Complexity: O(len(data)) for the copy.
func (c *Cluster) Send(dst int, data []int32) error {
	if dst < 0 || dst >= c.size {
		return fmt.Errorf("Send(dst=%d): %w", dst, ErrRankRange)
	}
	if dst == c.rank {
		return fmt.Errorf("Send(dst=%d): %w", dst, ErrSelfMessage)
	}

	frame := make([]int32, len(data))
	copy(frame, data)
	c.links[c.rank][dst] <- frame

	return nil
}

// Recv blocks until src sends a frame and returns it. The frame is owned by
// the receiver.
func (c *Cluster) Recv(src int) ([]int32, error) {
	if src < 0 || src >= c.size {
		return nil, fmt.Errorf("Recv(src=%d): %w", src, ErrRankRange)
	}
	if src == c.rank {
		return nil, fmt.Errorf("Recv(src=%d): %w", src, ErrSelfMessage)
	}

	return <-c.links[src][c.rank], nil
}
