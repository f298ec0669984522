package service

import (
	"context"

	"github.com/novafeed/backend/internal/apperr"
	"github.com/novafeed/backend/internal/repositories"
)

// ToggleResult is the outcome of one relation flip. ExistsAfter is usually
// the negation of ExistedBefore; under a lost insert race both are true,
// which callers read as "the edge exists".
type ToggleResult struct {
	ExistedBefore bool
	ExistsAfter   bool
}

// ToggleService is the toggle engine: it validates the pair, resolves both
// endpoints and delegates the flip to the store's atomic toggle. It never
// touches a denormalized counter.
type ToggleService struct {
	userRepository   repositories.UserRepository
	postRepository   repositories.PostRepository
	likeRepository   repositories.LikeRepository
	followRepository repositories.FollowRepository
}

// NewToggleService creates a new ToggleService
func NewToggleService(
	userRepo repositories.UserRepository,
	postRepo repositories.PostRepository,
	likeRepo repositories.LikeRepository,
	followRepo repositories.FollowRepository,
) *ToggleService {
	return &ToggleService{
		userRepository:   userRepo,
		postRepository:   postRepo,
		likeRepository:   likeRepo,
		followRepository: followRepo,
	}
}

// ToggleLike flips the like edge for (userID, postID)
func (s *ToggleService) ToggleLike(ctx context.Context, userID, postID uint) (ToggleResult, error) {
	if userID == 0 || postID == 0 {
		return ToggleResult{}, apperr.Validationf("user_id and post_id are required")
	}

	exists, err := s.userRepository.UserExists(ctx, userID)
	if err != nil {
		return ToggleResult{}, apperr.Storagef(err, "checking user %d", userID)
	}
	if !exists {
		return ToggleResult{}, apperr.NotFoundf("user %d not found", userID)
	}

	exists, err = s.postRepository.PostExists(ctx, postID)
	if err != nil {
		return ToggleResult{}, apperr.Storagef(err, "checking post %d", postID)
	}
	if !exists {
		return ToggleResult{}, apperr.NotFoundf("post %d not found", postID)
	}

	before, after, err := s.likeRepository.ToggleLike(ctx, userID, postID)
	if err != nil {
		return ToggleResult{}, apperr.Storagef(err, "toggling like (%d, %d)", userID, postID)
	}
	return ToggleResult{ExistedBefore: before, ExistsAfter: after}, nil
}

// ToggleFollow flips the follow edge for (followerID, followingID).
// Self-follow is permitted; the store invariant only cares about the pair.
func (s *ToggleService) ToggleFollow(ctx context.Context, followerID, followingID uint) (ToggleResult, error) {
	if followerID == 0 || followingID == 0 {
		return ToggleResult{}, apperr.Validationf("follower_id and following_id are required")
	}

	for _, id := range []uint{followerID, followingID} {
		exists, err := s.userRepository.UserExists(ctx, id)
		if err != nil {
			return ToggleResult{}, apperr.Storagef(err, "checking user %d", id)
		}
		if !exists {
			return ToggleResult{}, apperr.NotFoundf("user %d not found", id)
		}
	}

	before, after, err := s.followRepository.ToggleFollow(ctx, followerID, followingID)
	if err != nil {
		return ToggleResult{}, apperr.Storagef(err, "toggling follow (%d, %d)", followerID, followingID)
	}
	return ToggleResult{ExistedBefore: before, ExistsAfter: after}, nil
}
