package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyVoteToggleTransitions(t *testing.T) {
	r := &Review{}

	// none -> liked
	r.ApplyVoteToggle("u1", VoteLike)
	assert.Equal(t, []string{"u1"}, r.LikedBy)
	assert.Empty(t, r.DislikedBy)
	assert.Equal(t, 1, r.LikeCount)

	// liked -> disliked moves the user across in one transition
	r.ApplyVoteToggle("u1", VoteDislike)
	assert.Empty(t, r.LikedBy)
	assert.Equal(t, []string{"u1"}, r.DislikedBy)
	assert.Equal(t, 0, r.LikeCount)
	assert.Equal(t, 1, r.DislikeCount)

	// disliked -> none
	r.ApplyVoteToggle("u1", VoteDislike)
	assert.Empty(t, r.DislikedBy)
	assert.Equal(t, 0, r.DislikeCount)
}

func TestApplyVoteToggleIsPerUser(t *testing.T) {
	r := &Review{}
	r.ApplyVoteToggle("a", VoteLike)
	r.ApplyVoteToggle("b", VoteLike)
	r.ApplyVoteToggle("c", VoteDislike)
	r.ApplyVoteToggle("a", VoteLike) // a retracts

	assert.ElementsMatch(t, []string{"b"}, r.LikedBy)
	assert.ElementsMatch(t, []string{"c"}, r.DislikedBy)
	assert.Equal(t, 1, r.LikeCount)
	assert.Equal(t, 1, r.DislikeCount)
}

func TestSyncVoteCounts(t *testing.T) {
	r := &Review{
		LikedBy:      []string{"a", "b", "c"},
		DislikedBy:   []string{"d"},
		LikeCount:    99,
		DislikeCount: 99,
	}
	r.SyncVoteCounts()
	assert.Equal(t, 3, r.LikeCount)
	assert.Equal(t, 1, r.DislikeCount)
}
