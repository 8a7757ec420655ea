package repository

import (
	"errors"

	"github.com/typoteka/typoteka/app/models"
	"gorm.io/gorm"
)

// commentRepository implements the CommentRepository interface
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new comment repository instance
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// Create creates a new comment in the database
func (r *commentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// Delete removes a comment scoped by its parent article. Returns
// whether a row was removed.
func (r *commentRepository) Delete(articleID, id uint) (bool, error) {
	res := r.db.Where("article_id = ?", articleID).Delete(&models.Comment{}, id)
	return res.RowsAffected > 0, res.Error
}

// GetOne retrieves a single comment scoped by its parent article,
// (nil, nil) when absent.
func (r *commentRepository) GetOne(articleID, id uint) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.Where("article_id = ?", articleID).First(&comment, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// GetByArticle returns all comments of one article, newest first.
func (r *commentRepository) GetByArticle(articleID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Preload("User").
		Where("article_id = ?", articleID).
		Order("created_at DESC").
		Find(&comments).Error
	return comments, err
}

// GetRecent returns the newest comments across all articles.
func (r *commentRepository) GetRecent(limit int) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Preload("User").
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&comments).Error
	return comments, err
}
