package core_test

import (
	"fmt"

	"github.com/izanahmed/graphing-exponents/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	// 1) Create an empty directed multigraph:
	g := core.NewGraph()

	// 2) Add edges (auto-adds vertices A, B, C):
	g.AddEdge("A", "B", 4)
	g.AddEdge("A", "C", 1)
	g.AddEdge("C", "B", 1)

	// 3) Inspect vertices and edges:
	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Edge A→B exists?", g.HasEdge("A", "B"))
	fmt.Println("Edge B→A exists?", g.HasEdge("B", "A"))

	// Output:
	// Vertices: [A B C]
	// Edge A→B exists? true
	// Edge B→A exists? false
}

// ExampleGraph_Neighbors shows that parallel edges keep their insertion order.
func ExampleGraph_Neighbors() {
	g := core.NewGraph()
	g.AddEdge("X", "Y", 2.5)
	g.AddEdge("X", "Y", 0.5)

	nbs, _ := g.Neighbors("X")
	for _, e := range nbs {
		fmt.Printf("%s %s→%s %g\n", e.ID, e.From, e.To, e.Weight)
	}

	// Output:
	// e1 X→Y 2.5
	// e2 X→Y 0.5
}
