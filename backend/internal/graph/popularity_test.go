package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPopularityScore_NoFriends(t *testing.T) {
	assert.Equal(t, 0.0, popularityScore([]string{"chess", "hiking"}, nil))
	assert.Equal(t, 0.0, popularityScore(nil, nil))
}

func TestPopularityScore_SingleSharedHobby(t *testing.T) {
	// A has {x,y}, its one friend has {x,z}: 1 friend + 1 shared * 0.5
	score := popularityScore([]string{"x", "y"}, [][]string{{"x", "z"}})
	assert.Equal(t, 1.5, score)
}

func TestPopularityScore_FriendWithoutOverlap(t *testing.T) {
	score := popularityScore([]string{"x"}, [][]string{{"y", "z"}})
	assert.Equal(t, 1.0, score)
}

func TestPopularityScore_SharedHobbySumsAcrossFriends(t *testing.T) {
	// The same hobby shared with two different friends counts twice:
	// 2 friends + 2 overlaps * 0.5
	score := popularityScore([]string{"x"}, [][]string{{"x"}, {"x"}})
	assert.Equal(t, 3.0, score)
}

func TestPopularityScore_RepeatedHobbyInFriendList(t *testing.T) {
	// Overlap is counted per occurrence on the friend's side
	score := popularityScore([]string{"x"}, [][]string{{"x", "x"}})
	assert.Equal(t, 2.0, score)
}

func TestPopularityScore_FriendCountIgnoresHobbies(t *testing.T) {
	score := popularityScore(nil, [][]string{{}, {}, {}})
	assert.Equal(t, 3.0, score)
}
