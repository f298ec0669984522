package service

import (
	"context"
	"errors"

	"github.com/novafeed/backend/internal/apperr"
	"github.com/novafeed/backend/internal/models"
	"github.com/novafeed/backend/internal/repositories"
	"gorm.io/gorm"
)

// FeedService is the aggregation reader. It assembles composite views from
// the raw entity and edge sets at read time; counts and flags are derived
// from what was just loaded, never cached.
type FeedService struct {
	userRepository    repositories.UserRepository
	postRepository    repositories.PostRepository
	commentRepository repositories.CommentRepository
	likeRepository    repositories.LikeRepository
	followRepository  repositories.FollowRepository
}

// NewFeedService creates a new FeedService
func NewFeedService(
	userRepo repositories.UserRepository,
	postRepo repositories.PostRepository,
	commentRepo repositories.CommentRepository,
	likeRepo repositories.LikeRepository,
	followRepo repositories.FollowRepository,
) *FeedService {
	return &FeedService{
		userRepository:    userRepo,
		postRepository:    postRepo,
		commentRepository: commentRepo,
		likeRepository:    likeRepo,
		followRepository:  followRepo,
	}
}

// GetFeed returns all posts as enriched views, newest first
func (s *FeedService) GetFeed(ctx context.Context) ([]models.PostView, error) {
	posts, err := s.postRepository.GetAllPosts(ctx)
	if err != nil {
		return nil, apperr.Storagef(err, "loading posts")
	}
	return s.buildPostViews(ctx, posts)
}

// GetPost returns the enriched view of a single post
func (s *FeedService) GetPost(ctx context.Context, postID uint) (*models.PostView, error) {
	post, err := s.postRepository.GetPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("post %d not found", postID)
		}
		return nil, apperr.Storagef(err, "loading post %d", postID)
	}
	views, err := s.buildPostViews(ctx, []models.Post{*post})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// GetUserProfile returns the profile view: user fields, authored posts newest
// first, and both follow edge sets with their derived counts.
func (s *FeedService) GetUserProfile(ctx context.Context, userID uint) (*models.UserView, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("user %d not found", userID)
		}
		return nil, apperr.Storagef(err, "loading user %d", userID)
	}

	posts, err := s.postRepository.GetPostsByAuthorID(ctx, userID)
	if err != nil {
		return nil, apperr.Storagef(err, "loading posts of user %d", userID)
	}
	views, err := s.buildPostViews(ctx, posts)
	if err != nil {
		return nil, err
	}

	followers, err := s.followRepository.GetFollowerIDs(ctx, userID)
	if err != nil {
		return nil, apperr.Storagef(err, "loading followers of user %d", userID)
	}
	following, err := s.followRepository.GetFollowingIDs(ctx, userID)
	if err != nil {
		return nil, apperr.Storagef(err, "loading following of user %d", userID)
	}

	return &models.UserView{
		User:           *user,
		Posts:          views,
		Followers:      followers,
		Following:      following,
		FollowerCount:  len(followers),
		FollowingCount: len(following),
	}, nil
}

// buildPostViews enriches posts with authors, comments (oldest first) and
// like sets. Everything is batched: one comments query, one likes query, one
// users query covering post and comment authors.
func (s *FeedService) buildPostViews(ctx context.Context, posts []models.Post) ([]models.PostView, error) {
	if len(posts) == 0 {
		return []models.PostView{}, nil
	}

	postIDs := make([]uint, len(posts))
	for i, p := range posts {
		postIDs[i] = p.ID
	}

	comments, err := s.commentRepository.GetCommentsByPostIDs(ctx, postIDs)
	if err != nil {
		return nil, apperr.Storagef(err, "loading comments")
	}
	likes, err := s.likeRepository.GetLikesByPostIDs(ctx, postIDs)
	if err != nil {
		return nil, apperr.Storagef(err, "loading likes")
	}

	authorIDSet := make(map[uint]bool)
	for _, p := range posts {
		authorIDSet[p.AuthorID] = true
	}
	for _, c := range comments {
		authorIDSet[c.AuthorID] = true
	}
	authorIDs := make([]uint, 0, len(authorIDSet))
	for id := range authorIDSet {
		authorIDs = append(authorIDs, id)
	}
	users, err := s.userRepository.GetUsersByIDs(ctx, authorIDs)
	if err != nil {
		return nil, apperr.Storagef(err, "loading authors")
	}
	userMap := make(map[uint]models.UserCompact, len(users))
	for i := range users {
		userMap[users[i].ID] = users[i].ToCompact()
	}

	commentMap := make(map[uint][]models.CommentView)
	for _, c := range comments {
		commentMap[c.PostID] = append(commentMap[c.PostID], models.CommentView{
			Comment: c,
			Author:  userMap[c.AuthorID],
		})
	}
	likeMap := make(map[uint][]uint)
	for _, l := range likes {
		likeMap[l.PostID] = append(likeMap[l.PostID], l.UserID)
	}

	views := make([]models.PostView, len(posts))
	for i, p := range posts {
		postComments := commentMap[p.ID]
		if postComments == nil {
			postComments = []models.CommentView{}
		}
		postLikes := likeMap[p.ID]
		if postLikes == nil {
			postLikes = []uint{}
		}
		views[i] = models.PostView{
			Post:      p,
			Author:    userMap[p.AuthorID],
			Comments:  postComments,
			Likes:     postLikes,
			LikeCount: len(postLikes),
		}
	}
	return views, nil
}
