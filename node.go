package apvd

// NodeID indexes into Component.Nodes, the same arena+index pattern
// DtNodePool uses for detour's weighted-graph nodes (spec §9, "Cyclic
// graph ownership").
type NodeID int

// Node is an intersection point of two or more shapes (spec §3.4).
type Node struct {
	ID    NodeID
	P     Point
	Coord map[int]float64 // shape index -> boundary coordinate at this node
	Edges []EdgeID        // incident edges, filled once during construction
}

// Multiplicity returns how many shapes meet at this node.
func (n *Node) Multiplicity() int { return len(n.Coord) }
