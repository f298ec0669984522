package repositories

import (
	"context"

	"github.com/novafeed/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LikeRepository defines the interface for like data operations
type LikeRepository interface {
	// ToggleLike atomically flips the (userID, postID) edge and reports the
	// state before and after the flip.
	ToggleLike(ctx context.Context, userID, postID uint) (existedBefore, existsAfter bool, err error)
	GetLikerIDsByPostID(ctx context.Context, postID uint) ([]uint, error)
	GetLikesByPostIDs(ctx context.Context, postIDs []uint) ([]models.Like, error)
	GetLikesCountByPostID(ctx context.Context, postID uint) (int64, error)
	HasUserLikedPost(ctx context.Context, userID, postID uint) (bool, error)
}

// PostgresLikeRepository implements LikeRepository for PostgreSQL
type PostgresLikeRepository struct {
	db *gorm.DB
}

// NewPostgresLikeRepository creates a new PostgresLikeRepository
func NewPostgresLikeRepository(db *gorm.DB) *PostgresLikeRepository {
	return &PostgresLikeRepository{db: db}
}

// ToggleLike deletes the edge if present, otherwise inserts it. The whole
// flip runs in one transaction and the insert carries ON CONFLICT DO NOTHING,
// so the composite primary key rules out a double insert under concurrent
// toggles; a lost insert race means the edge exists and is reported as such.
func (r *PostgresLikeRepository) ToggleLike(ctx context.Context, userID, postID uint) (existedBefore, existsAfter bool, err error) {
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND post_id = ?", userID, postID).Delete(&models.Like{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			existedBefore, existsAfter = true, false
			return nil
		}
		res = tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&models.Like{UserID: userID, PostID: postID})
		if res.Error != nil {
			return res.Error
		}
		// RowsAffected == 0 here means a concurrent toggle won the insert.
		existedBefore, existsAfter = res.RowsAffected == 0, true
		return nil
	})
	if err != nil {
		return false, false, err
	}
	return existedBefore, existsAfter, nil
}

// GetLikerIDsByPostID retrieves the ids of all users who liked a post
func (r *PostgresLikeRepository) GetLikerIDsByPostID(ctx context.Context, postID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).Model(&models.Like{}).Where("post_id = ?", postID).Pluck("user_id", &ids).Error
	return ids, err
}

// GetLikesByPostIDs retrieves all like edges for the given posts
func (r *PostgresLikeRepository) GetLikesByPostIDs(ctx context.Context, postIDs []uint) ([]models.Like, error) {
	if len(postIDs) == 0 {
		return nil, nil
	}
	var likes []models.Like
	if err := r.db.WithContext(ctx).Where("post_id IN ?", postIDs).Find(&likes).Error; err != nil {
		return nil, err
	}
	return likes, nil
}

// GetLikesCountByPostID counts the like edges of a post. Counts are always
// computed from the edge set, never read from a stored counter.
func (r *PostgresLikeRepository) GetLikesCountByPostID(ctx context.Context, postID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Like{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// HasUserLikedPost checks if a user has liked a specific post
func (r *PostgresLikeRepository) HasUserLikedPost(ctx context.Context, userID, postID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Like{}).Where("user_id = ? AND post_id = ?", userID, postID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
