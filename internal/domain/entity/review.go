package entity

import (
	"time"
)

type Review struct {
	ID        string   `json:"id" firestore:"id"`
	Content   string   `json:"content" firestore:"content"`
	UserID    string   `json:"user" firestore:"userId"`
	ProductID string   `json:"product" firestore:"productId"`
	Images    []string `json:"images" firestore:"images"`

	// LikeCount and DislikeCount are derived from the vote sets below and
	// kept equal to their lengths after every vote mutation.
	LikeCount    int      `json:"likeCount" firestore:"likeCount"`
	DislikeCount int      `json:"dislikeCount" firestore:"dislikeCount"`
	LikedBy      []string `json:"likedBy" firestore:"likedBy"`
	DislikedBy   []string `json:"dislikedBy" firestore:"dislikedBy"`

	ReplyIDs []string `json:"replies" firestore:"replies"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// VoteKind selects which of the two vote sets a toggle operates on.
type VoteKind int

const (
	VoteLike VoteKind = iota
	VoteDislike
)

// VoteResult is the user-visible outcome of a toggle: the updated counts
// and membership sets of the review.
type VoteResult struct {
	LikeCount    int      `json:"likeCount"`
	DislikeCount int      `json:"dislikeCount"`
	LikedBy      []string `json:"likedBy"`
	DislikedBy   []string `json:"dislikedBy"`
}

// ApplyVoteToggle runs the per-user vote state machine on the review:
// toggling the kind the user already holds retracts it; toggling the other
// kind moves the user across in one transition. Counts are resynchronized
// from the sets afterwards. The caller is responsible for persisting the
// review atomically.
func (r *Review) ApplyVoteToggle(userID string, kind VoteKind) {
	switch kind {
	case VoteLike:
		if containsID(r.LikedBy, userID) {
			r.LikedBy = removeID(r.LikedBy, userID)
		} else {
			r.DislikedBy = removeID(r.DislikedBy, userID)
			r.LikedBy = append(r.LikedBy, userID)
		}
	case VoteDislike:
		if containsID(r.DislikedBy, userID) {
			r.DislikedBy = removeID(r.DislikedBy, userID)
		} else {
			r.LikedBy = removeID(r.LikedBy, userID)
			r.DislikedBy = append(r.DislikedBy, userID)
		}
	}
	r.SyncVoteCounts()
}

// SyncVoteCounts re-derives the denormalized counters from the vote sets.
func (r *Review) SyncVoteCounts() {
	r.LikeCount = len(r.LikedBy)
	r.DislikeCount = len(r.DislikedBy)
}

// VoteResult snapshots the review's current vote state.
func (r *Review) VoteResult() *VoteResult {
	return &VoteResult{
		LikeCount:    r.LikeCount,
		DislikeCount: r.DislikeCount,
		LikedBy:      r.LikedBy,
		DislikedBy:   r.DislikedBy,
	}
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func removeID(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
