package graph

import (
	"context"
	"fmt"
)

// ============================================================================
// Graph Projection
// ============================================================================

// canonicalEdgeID builds a deterministic id for an unordered user pair by
// sorting the two ids lexicographically and joining them.
func canonicalEdgeID(a, b string) string {
	if a < b {
		return a + "_" + b
	}
	return b + "_" + a
}

// Project converts the full user set into a deduplicated node/edge view for
// the frontend. Pure function: no store access, no mutation of its input.
//
// Every friendship appears as exactly one edge. The symmetry invariant means
// each pair would otherwise show up twice (once from each endpoint), so
// edges are keyed by canonical id in a seen set; the same set also collapses
// a transiently one-sided link in storage to a single edge. Edge order is
// insertion order over the outer user iteration, which is deterministic
// because ListUsers orders by creation time.
func Project(users []User) *GraphData {
	data := &GraphData{
		Nodes: make([]Node, 0, len(users)),
		Edges: []Edge{},
	}

	seen := make(map[string]bool)

	for _, u := range users {
		data.Nodes = append(data.Nodes, Node{
			ID: u.ID,
			Data: NodeData{
				ID:         u.ID,
				Username:   u.Username,
				Age:        u.Age,
				Popularity: u.PopularityScore,
				Hobbies:    u.Hobbies,
				Label:      fmt.Sprintf("%s (%d)", u.Username, u.Age),
			},
		})

		for _, friendID := range u.Friends {
			key := canonicalEdgeID(u.ID, friendID)
			if seen[key] {
				continue
			}
			seen[key] = true
			data.Edges = append(data.Edges, Edge{
				ID:     key,
				Source: u.ID,
				Target: friendID,
			})
		}
	}

	return data
}

// ProjectGraph loads the current user set and projects it. The projection is
// always rebuilt from store state; nothing is cached across calls.
func (r *Repository) ProjectGraph(ctx context.Context) (*GraphData, error) {
	users, err := r.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	return Project(users), nil
}
