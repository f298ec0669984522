package service

import (
	"context"
	"errors"
	"strings"

	"github.com/novafeed/backend/internal/apperr"
	"github.com/novafeed/backend/internal/models"
	"github.com/novafeed/backend/internal/repositories"
	"gorm.io/gorm"
)

// ContentService owns the create and delete operations on posts and
// comments. Creates are immutable afterwards; deletion of a post cascades to
// its comments and likes inside the store's transaction.
type ContentService struct {
	userRepository    repositories.UserRepository
	postRepository    repositories.PostRepository
	commentRepository repositories.CommentRepository
}

// NewContentService creates a new ContentService
func NewContentService(
	userRepo repositories.UserRepository,
	postRepo repositories.PostRepository,
	commentRepo repositories.CommentRepository,
) *ContentService {
	return &ContentService{
		userRepository:    userRepo,
		postRepository:    postRepo,
		commentRepository: commentRepo,
	}
}

// CreatePost creates a post. An unknown author is reported as a validation
// failure, matching the boundary contract for this operation.
func (s *ContentService) CreatePost(ctx context.Context, authorID uint, content string, image *string) (*models.Post, error) {
	if strings.TrimSpace(content) == "" {
		return nil, apperr.Validationf("content is required")
	}
	if authorID == 0 {
		return nil, apperr.Validationf("author_id is required")
	}
	exists, err := s.userRepository.UserExists(ctx, authorID)
	if err != nil {
		return nil, apperr.Storagef(err, "checking user %d", authorID)
	}
	if !exists {
		return nil, apperr.Validationf("author %d unknown", authorID)
	}

	post := &models.Post{
		AuthorID: authorID,
		Content:  content,
		Image:    image,
	}
	if err := s.postRepository.CreatePost(ctx, post); err != nil {
		return nil, apperr.Storagef(err, "creating post")
	}
	return post, nil
}

// CreateComment creates a comment on an existing post
func (s *ContentService) CreateComment(ctx context.Context, authorID, postID uint, content string) (*models.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, apperr.Validationf("content is required")
	}
	if authorID == 0 || postID == 0 {
		return nil, apperr.Validationf("author_id and post_id are required")
	}

	exists, err := s.userRepository.UserExists(ctx, authorID)
	if err != nil {
		return nil, apperr.Storagef(err, "checking user %d", authorID)
	}
	if !exists {
		return nil, apperr.NotFoundf("user %d not found", authorID)
	}
	exists, err = s.postRepository.PostExists(ctx, postID)
	if err != nil {
		return nil, apperr.Storagef(err, "checking post %d", postID)
	}
	if !exists {
		return nil, apperr.NotFoundf("post %d not found", postID)
	}

	comment := &models.Comment{
		AuthorID: authorID,
		PostID:   postID,
		Content:  content,
	}
	if err := s.commentRepository.CreateComment(ctx, comment); err != nil {
		return nil, apperr.Storagef(err, "creating comment")
	}
	return comment, nil
}

// GetPostAuthorID resolves the author of a post, for the boundary's
// ownership check before deletion
func (s *ContentService) GetPostAuthorID(ctx context.Context, postID uint) (uint, error) {
	post, err := s.postRepository.GetPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apperr.NotFoundf("post %d not found", postID)
		}
		return 0, apperr.Storagef(err, "loading post %d", postID)
	}
	return post.AuthorID, nil
}

// DeletePost removes a post with its comments and likes as one atomic unit
func (s *ContentService) DeletePost(ctx context.Context, postID uint) error {
	if postID == 0 {
		return apperr.Validationf("post_id is required")
	}
	if err := s.postRepository.DeletePost(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFoundf("post %d not found", postID)
		}
		return apperr.Storagef(err, "deleting post %d", postID)
	}
	return nil
}
