package repositories

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/novafeed/backend/internal/models"
	"gorm.io/gorm"
)

type likeKey struct{ userID, postID uint }

type followKey struct{ followerID, followingID uint }

// MemoryStore implements every repository interface over mutex-guarded maps.
// It backs the service and handler tests and doubles as the reference model
// for the same-pair toggle semantics: the single mutex makes each flip
// atomic, exactly what the Postgres implementations get from their
// transaction plus the composite primary key.
type MemoryStore struct {
	mu            sync.Mutex
	nextUserID    uint
	nextPostID    uint
	nextCommentID uint
	users         map[uint]models.User
	posts         map[uint]models.Post
	comments      map[uint]models.Comment
	likes         map[likeKey]models.Like
	follows       map[followKey]models.Follow
}

// NewMemoryStore initializes an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:    make(map[uint]models.User),
		posts:    make(map[uint]models.Post),
		comments: make(map[uint]models.Comment),
		likes:    make(map[likeKey]models.Like),
		follows:  make(map[followKey]models.Follow),
	}
}

// --- UserRepository ---

func (s *MemoryStore) CreateUser(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextUserID++
	user.ID = s.nextUserID
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	s.users[user.ID] = *user
	return nil
}

func (s *MemoryStore) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &user, nil
}

func (s *MemoryStore) GetUsersByIDs(ctx context.Context, ids []uint) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var users []models.User
	for _, id := range ids {
		if user, ok := s.users[id]; ok {
			users = append(users, user)
		}
	}
	return users, nil
}

func (s *MemoryStore) GetUsers(ctx context.Context) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	users := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (s *MemoryStore) UserExists(ctx context.Context, id uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.users[id]
	return ok, nil
}

// --- PostRepository ---

func (s *MemoryStore) CreatePost(ctx context.Context, post *models.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextPostID++
	post.ID = s.nextPostID
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now()
	}
	s.posts[post.ID] = *post
	return nil
}

func (s *MemoryStore) GetPostByID(ctx context.Context, id uint) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	post, ok := s.posts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &post, nil
}

func (s *MemoryStore) GetAllPosts(ctx context.Context) ([]models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	posts := make([]models.Post, 0, len(s.posts))
	for _, p := range s.posts {
		posts = append(posts, p)
	}
	sortPostsNewestFirst(posts)
	return posts, nil
}

func (s *MemoryStore) GetPostsByAuthorID(ctx context.Context, authorID uint) ([]models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var posts []models.Post
	for _, p := range s.posts {
		if p.AuthorID == authorID {
			posts = append(posts, p)
		}
	}
	sortPostsNewestFirst(posts)
	return posts, nil
}

// DeletePost removes the post with its comments and likes under one lock
// hold, so no reader ever observes a partial cascade.
func (s *MemoryStore) DeletePost(ctx context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.posts[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	for cid, c := range s.comments {
		if c.PostID == id {
			delete(s.comments, cid)
		}
	}
	for key := range s.likes {
		if key.postID == id {
			delete(s.likes, key)
		}
	}
	delete(s.posts, id)
	return nil
}

func (s *MemoryStore) PostExists(ctx context.Context, id uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.posts[id]
	return ok, nil
}

// --- CommentRepository ---

func (s *MemoryStore) CreateComment(ctx context.Context, comment *models.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextCommentID++
	comment.ID = s.nextCommentID
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now()
	}
	s.comments[comment.ID] = *comment
	return nil
}

func (s *MemoryStore) GetCommentsByPostID(ctx context.Context, postID uint) ([]models.Comment, error) {
	return s.GetCommentsByPostIDs(ctx, []uint{postID})
}

func (s *MemoryStore) GetCommentsByPostIDs(ctx context.Context, postIDs []uint) ([]models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	wanted := make(map[uint]bool, len(postIDs))
	for _, id := range postIDs {
		wanted[id] = true
	}
	var comments []models.Comment
	for _, c := range s.comments {
		if wanted[c.PostID] {
			comments = append(comments, c)
		}
	}
	sort.Slice(comments, func(i, j int) bool {
		if !comments[i].CreatedAt.Equal(comments[j].CreatedAt) {
			return comments[i].CreatedAt.Before(comments[j].CreatedAt)
		}
		return comments[i].ID < comments[j].ID
	})
	return comments, nil
}

// --- LikeRepository ---

func (s *MemoryStore) ToggleLike(ctx context.Context, userID, postID uint) (existedBefore, existsAfter bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := likeKey{userID, postID}
	if _, ok := s.likes[key]; ok {
		delete(s.likes, key)
		return true, false, nil
	}
	s.likes[key] = models.Like{UserID: userID, PostID: postID, CreatedAt: time.Now()}
	return false, true, nil
}

func (s *MemoryStore) GetLikerIDsByPostID(ctx context.Context, postID uint) ([]uint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var ids []uint
	for key := range s.likes {
		if key.postID == postID {
			ids = append(ids, key.userID)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (s *MemoryStore) GetLikesByPostIDs(ctx context.Context, postIDs []uint) ([]models.Like, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	wanted := make(map[uint]bool, len(postIDs))
	for _, id := range postIDs {
		wanted[id] = true
	}
	var likes []models.Like
	for key, l := range s.likes {
		if wanted[key.postID] {
			likes = append(likes, l)
		}
	}
	return likes, nil
}

func (s *MemoryStore) GetLikesCountByPostID(ctx context.Context, postID uint) (int64, error) {
	ids, _ := s.GetLikerIDsByPostID(ctx, postID)
	return int64(len(ids)), nil
}

func (s *MemoryStore) HasUserLikedPost(ctx context.Context, userID, postID uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.likes[likeKey{userID, postID}]
	return ok, nil
}

// --- FollowRepository ---

func (s *MemoryStore) ToggleFollow(ctx context.Context, followerID, followingID uint) (existedBefore, existsAfter bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := followKey{followerID, followingID}
	if _, ok := s.follows[key]; ok {
		delete(s.follows, key)
		return true, false, nil
	}
	s.follows[key] = models.Follow{FollowerID: followerID, FollowingID: followingID, CreatedAt: time.Now()}
	return false, true, nil
}

func (s *MemoryStore) IsFollowing(ctx context.Context, followerID, followingID uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.follows[followKey{followerID, followingID}]
	return ok, nil
}

func (s *MemoryStore) GetFollowerIDs(ctx context.Context, userID uint) ([]uint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var ids []uint
	for key := range s.follows {
		if key.followingID == userID {
			ids = append(ids, key.followerID)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (s *MemoryStore) GetFollowingIDs(ctx context.Context, userID uint) ([]uint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var ids []uint
	for key := range s.follows {
		if key.followerID == userID {
			ids = append(ids, key.followingID)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (s *MemoryStore) GetFollowersCount(ctx context.Context, userID uint) (int64, error) {
	ids, _ := s.GetFollowerIDs(ctx, userID)
	return int64(len(ids)), nil
}

func (s *MemoryStore) GetFollowingCount(ctx context.Context, userID uint) (int64, error) {
	ids, _ := s.GetFollowingIDs(ctx, userID)
	return int64(len(ids)), nil
}

// LikeRowCount reports the number of stored like edges for a pair. Test
// helper for the uniqueness property; always 0 or 1 by construction.
func (s *MemoryStore) LikeRowCount(userID, postID uint) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.likes[likeKey{userID, postID}]; ok {
		return 1
	}
	return 0
}

func sortPostsNewestFirst(posts []models.Post) {
	sort.Slice(posts, func(i, j int) bool {
		if !posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].CreatedAt.After(posts[j].CreatedAt)
		}
		return posts[i].ID > posts[j].ID
	})
}
