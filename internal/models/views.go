package models

// CommentView is a comment with its author embedded
type CommentView struct {
	Comment
	Author UserCompact `json:"author"`
}

// PostView is a post enriched with author, comments and the like set.
// LikeCount is derived from Likes at assembly time and never persisted, so it
// cannot drift from the edge set.
type PostView struct {
	Post
	Author    UserCompact   `json:"author"`
	Comments  []CommentView `json:"comments"`
	Likes     []uint        `json:"likes"` // ids of users who liked the post
	LikeCount int           `json:"like_count"`
}

// IsLikedBy reports whether the given user is in the like set
func (v *PostView) IsLikedBy(userID uint) bool {
	for _, id := range v.Likes {
		if id == userID {
			return true
		}
	}
	return false
}

// UserView is a user profile with authored posts and both follow edge sets
type UserView struct {
	User
	Posts          []PostView `json:"posts"`
	Followers      []uint     `json:"followers"` // ids of users following this user
	Following      []uint     `json:"following"` // ids this user follows
	FollowerCount  int        `json:"follower_count"`
	FollowingCount int        `json:"following_count"`
}

// IsFollowedBy reports whether the given user follows this user
func (v *UserView) IsFollowedBy(userID uint) bool {
	for _, id := range v.Followers {
		if id == userID {
			return true
		}
	}
	return false
}
