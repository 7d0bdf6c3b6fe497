package cluster

import "fmt"

// Broadcast distributes root's frame to every rank. On root it returns data
// unchanged after fanning it out; elsewhere it returns the received frame.
// All ranks must call Broadcast with the same root.
// Complexity: O(P·n) sends on root, one receive elsewhere.
func (c *Cluster) Broadcast(root int, data []int32) ([]int32, error) {
	if root < 0 || root >= c.size {
		return nil, fmt.Errorf("Broadcast(root=%d): %w", root, ErrRankRange)
	}
	if c.size == 1 {
		return data, nil
	}

	if c.rank == root {
		for dst := 0; dst < c.size; dst++ {
			if dst == root {
				continue
			}
			if err := c.Send(dst, data); err != nil {
				return nil, err
			}
		}

		return data, nil
	}

	return c.Recv(root)
}

// BroadcastInt broadcasts a single integer from root. Convenience wrapper
// over a one-word frame, used for edge and vertex counts.
func (c *Cluster) BroadcastInt(root, v int) (int, error) {
	frame, err := c.Broadcast(root, []int32{int32(v)})
	if err != nil {
		return 0, err
	}

	return int(frame[0]), nil
}

// Scatter splits a root-resident buffer between the ranks: rank r receives
// counts[r] words starting at offset counts[0]+…+counts[r−1]. Every rank
// must pass identical counts (derived deterministically from broadcast
// totals); only root's data is consulted. Returns this rank's chunk.
//
// Root keeps its own chunk as a sub-slice without copying; remote chunks are
// copied on send as usual.
func (c *Cluster) Scatter(root int, data []int32, counts []int) ([]int32, error) {
	if root < 0 || root >= c.size {
		return nil, fmt.Errorf("Scatter(root=%d): %w", root, ErrRankRange)
	}
	if len(counts) != c.size {
		return nil, fmt.Errorf("Scatter(counts=%d ranks, size=%d): %w", len(counts), c.size, ErrRankRange)
	}

	if c.rank != root {
		return c.Recv(root)
	}

	var own []int32
	offset := 0
	for r := 0; r < c.size; r++ {
		chunk := data[offset : offset+counts[r]]
		if r == root {
			own = chunk
		} else if err := c.Send(r, chunk); err != nil {
			return nil, err
		}
		offset += counts[r]
	}

	return own, nil
}

// Reduce folds per-rank buffers down to rank 0 with the recursive-doubling
// pattern. At step s ∈ {1,2,4,…} < P, a rank divisible by 2s receives its
// neighbor's buffer from rank+s (when that rank exists) and combines it into
// its own; a rank congruent to s modulo 2s sends its buffer to rank−s and is
// thereafter idle. After ⌈log2 P⌉ rounds rank 0 holds the full reduction.
//
// combine must be associative-compatible with the caller's tie-break; it
// receives (mine, theirs) and returns the merged buffer, which may alias
// either argument. Ranks other than 0 return nil once idle.
func (c *Cluster) Reduce(data []int32, combine func(mine, theirs []int32) []int32) ([]int32, error) {
	for s := 1; s < c.size; s *= 2 {
		switch {
		case c.rank%(2*s) == 0:
			if c.rank+s < c.size {
				theirs, err := c.Recv(c.rank + s)
				if err != nil {
					return nil, err
				}
				data = combine(data, theirs)
			}
		case c.rank%s == 0:
			if err := c.Send(c.rank-s, data); err != nil {
				return nil, err
			}

			return nil, nil
		}
	}

	if c.rank != 0 {
		return nil, nil
	}

	return data, nil
}
