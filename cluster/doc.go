// Package cluster provides the bulk-synchronous message-passing substrate the
// parallel MST kernels run on: P ranks executing the same body in
// single-program-multiple-data style, each with private memory, exchanging
// int32 frames over a private channel mesh.
//
// # Model
//
// Run launches one goroutine per rank and hands each a Cluster handle
// carrying its rank and the cluster size — the scoped acquisition of the
// process-wide messaging environment. Point-to-point Send/Recv are
// synchronous and matched: a send blocks until the addressed rank posts the
// matching receive, so every collective call is a potential suspension
// point. There are no tags beyond the (source, destination) pair and no
// nonblocking variants.
//
// Collectives are built from the point-to-point layer with a caller-chosen
// root: Broadcast fans a frame out, Scatter hands each rank its slice of a
// root-resident buffer, and Reduce runs the recursive-doubling pattern — at
// step s the ranks divisible by 2s receive and combine from rank+s, the
// ranks congruent to s send to rank−s and fall idle — completing in
// ⌈log2 P⌉ rounds with the result on rank 0.
//
// # Failure semantics
//
// Errors are not propagated across rank boundaries. A body that fails before
// its first matched communication simply returns; Run joins all ranks and
// returns the combined error. A rank that bails between matched operations
// can leave peers blocked — callers keep collective schedules identical
// across ranks, which is the same reliable-transport contract the kernels
// are written against.
//
// Frames are copied on send: each rank's memory stays private, and a sender
// may reuse its buffer immediately.
package cluster
