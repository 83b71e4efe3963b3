package coloring_test

import (
	"math/rand/v2"
	"testing"

	"github.com/specband/specband/pkg/coloring"
	"github.com/specband/specband/pkg/graph"
	"github.com/specband/specband/pkg/netgen"
)

func benchGraph(b *testing.B) *graph.Graph {
	b.Helper()
	rng := rand.New(rand.NewPCG(42, 42))
	g, err := netgen.RandomGeometric(500, 120, 1000, 1000, rng)
	if err != nil {
		b.Fatal(err)
	}
	return g
}

func BenchmarkGreedy(b *testing.B) {
	g := benchGraph(b)
	b.ResetTimer()
	for range b.N {
		coloring.Greedy(g)
	}
}

func BenchmarkWelshPowell(b *testing.B) {
	g := benchGraph(b)
	b.ResetTimer()
	for range b.N {
		coloring.WelshPowell(g)
	}
}

func BenchmarkDSATUR(b *testing.B) {
	g := benchGraph(b)
	b.ResetTimer()
	for range b.N {
		coloring.DSATUR(g)
	}
}
