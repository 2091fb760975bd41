package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalEdgeID_SortsEndpoints(t *testing.T) {
	assert.Equal(t, "a_b", canonicalEdgeID("a", "b"))
	assert.Equal(t, "a_b", canonicalEdgeID("b", "a"))
	assert.Equal(t, "1_2", canonicalEdgeID("2", "1"))
}

func TestProject_SymmetricLinkYieldsOneEdge(t *testing.T) {
	users := []User{
		{ID: "a", Username: "alice", Age: 30, Friends: []string{"b"}},
		{ID: "b", Username: "bob", Age: 27, Friends: []string{"a"}},
	}

	data := Project(users)

	assert.Len(t, data.Edges, 1)
	assert.Equal(t, "a_b", data.Edges[0].ID)
	assert.Equal(t, "a", data.Edges[0].Source)
	assert.Equal(t, "b", data.Edges[0].Target)
}

func TestProject_DedupIndependentOfIterationOrder(t *testing.T) {
	forward := Project([]User{
		{ID: "a", Friends: []string{"b"}},
		{ID: "b", Friends: []string{"a"}},
	})
	reverse := Project([]User{
		{ID: "b", Friends: []string{"a"}},
		{ID: "a", Friends: []string{"b"}},
	})

	assert.Len(t, forward.Edges, 1)
	assert.Len(t, reverse.Edges, 1)
	assert.Equal(t, forward.Edges[0].ID, reverse.Edges[0].ID)
}

func TestProject_OneSidedLinkStillSingleEdge(t *testing.T) {
	// A transiently asymmetric store must not produce duplicates either
	users := []User{
		{ID: "a", Friends: []string{"b"}},
		{ID: "b", Friends: []string{}},
	}

	data := Project(users)

	assert.Len(t, data.Edges, 1)
	assert.Equal(t, "a_b", data.Edges[0].ID)
}

func TestProject_NodeCompleteness(t *testing.T) {
	users := []User{
		{ID: "a", Username: "alice", Age: 30, Hobbies: []string{"chess"}, PopularityScore: 1.5},
		{ID: "b", Username: "bob", Age: 27},
		{ID: "c", Username: "carol", Age: 34},
	}

	data := Project(users)

	assert.Len(t, data.Nodes, len(users))
	seen := map[string]bool{}
	for i, n := range data.Nodes {
		assert.Equal(t, users[i].ID, n.ID)
		assert.Equal(t, users[i].ID, n.Data.ID)
		assert.False(t, seen[n.ID], "duplicate node id %s", n.ID)
		seen[n.ID] = true
	}

	assert.Equal(t, "alice (30)", data.Nodes[0].Data.Label)
	assert.Equal(t, 1.5, data.Nodes[0].Data.Popularity)
	assert.Equal(t, []string{"chess"}, data.Nodes[0].Data.Hobbies)
}

func TestProject_EdgeOrderFollowsOuterIteration(t *testing.T) {
	users := []User{
		{ID: "c", Friends: []string{"a"}},
		{ID: "a", Friends: []string{"c", "b"}},
		{ID: "b", Friends: []string{"a"}},
	}

	data := Project(users)

	// c_a is met first through c, a_b through a; canonical ids sort the
	// endpoints but the list keeps first-encounter order
	assert.Equal(t, []string{"a_c", "a_b"}, []string{data.Edges[0].ID, data.Edges[1].ID})
}

func TestProject_Empty(t *testing.T) {
	data := Project(nil)

	assert.NotNil(t, data.Nodes)
	assert.NotNil(t, data.Edges)
	assert.Empty(t, data.Nodes)
	assert.Empty(t, data.Edges)
}
