package fibheap_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/mstkit/binheap"
	"github.com/katalvlaran/mstkit/fibheap"
)

// The two Prim frontiers share a workload profile: seed every vertex, then a
// long stream of decrease-keys with occasional pops. These benchmarks run
// that profile on both heaps for a side-by-side read.

const benchVertices = 4096

func benchWeights() []int32 {
	r := rand.New(rand.NewSource(17))
	ws := make([]int32, benchVertices)
	for i := range ws {
		ws[i] = int32(r.Intn(1_000_000) + 1)
	}

	return ws
}

// BenchmarkFibHeap_DecreaseDrain measures push-all, decrease-half, drain.
func BenchmarkFibHeap_DecreaseDrain(b *testing.B) {
	ws := benchWeights()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h, _ := fibheap.New(benchVertices)
		for v := int32(0); v < benchVertices; v++ {
			h.Push(v, -1, ws[v])
		}
		for v := int32(0); v < benchVertices; v += 2 {
			h.DecreaseKey(v, -1, ws[v]/2)
		}
		for h.Len() > 0 {
			h.Pop()
		}
	}
}

// BenchmarkBinHeap_DecreaseDrain is the same profile on the binary heap.
func BenchmarkBinHeap_DecreaseDrain(b *testing.B) {
	ws := benchWeights()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h, _ := binheap.New(benchVertices)
		for v := int32(0); v < benchVertices; v++ {
			h.Push(v, -1, ws[v])
		}
		for v := int32(0); v < benchVertices; v += 2 {
			h.DecreaseKey(v, -1, ws[v]/2)
		}
		for h.Len() > 0 {
			h.Pop()
		}
	}
}
