package repository

import (
	"errors"

	"github.com/typoteka/typoteka/app/models"
	"gorm.io/gorm"
)

// articleRepository implements the ArticleRepository interface
type articleRepository struct {
	db *gorm.DB
}

// NewArticleRepository creates a new article repository instance
func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

// Create inserts the article and links it to the given categories in a
// single transaction. An article must carry at least one category.
func (r *articleRepository) Create(article *models.Article, categoryIDs []uint) error {
	if len(categoryIDs) == 0 {
		return errors.New("article requires at least one category")
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(article).Error; err != nil {
			return err
		}
		return tx.Model(article).Association("Categories").Append(categoryRefs(categoryIDs))
	})
}

// Update updates article columns by primary key. When categoryIDs is
// non-nil the category association is replaced as well. Returns whether
// a row matched.
func (r *articleRepository) Update(id uint, article *models.Article, categoryIDs []uint) (bool, error) {
	var affected int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Article{}).Where("id = ?", id).
			Select("title", "announce", "full_text", "picture").
			Updates(article)
		if res.Error != nil {
			return res.Error
		}
		affected = res.RowsAffected
		if affected == 0 || categoryIDs == nil {
			return nil
		}
		target := &models.Article{ID: id}
		return tx.Model(target).Association("Categories").Replace(categoryRefs(categoryIDs))
	})
	return affected > 0, err
}

// Delete removes an article by primary key together with its join rows
// and comments (cascade is declared in the schema). Returns whether a
// row was removed.
func (r *articleRepository) Delete(id uint) (bool, error) {
	res := r.db.Delete(&models.Article{}, id)
	return res.RowsAffected > 0, res.Error
}

// GetByID fetches one article with categories always included and
// comments only when requested. Returns (nil, nil) when no row matches.
func (r *articleRepository) GetByID(id uint, needComments bool) (*models.Article, error) {
	query := r.db.Preload("Categories")
	if needComments {
		query = query.
			Preload("Comments", func(db *gorm.DB) *gorm.DB {
				return db.Order("comments.created_at DESC")
			}).
			Preload("Comments.User")
	}

	var article models.Article
	err := query.First(&article, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if article.Comments == nil {
		article.Comments = []models.Comment{}
	}
	return &article, nil
}

// GetAll returns the minimal article projection, newest first, with
// comments eager-loaded on request.
func (r *articleRepository) GetAll(needComments bool) ([]models.Article, error) {
	query := r.db.Select("id", "created_at", "announce").Order("created_at DESC")
	if needComments {
		query = query.Preload("Comments")
	}

	var articles []models.Article
	err := query.Find(&articles).Error
	return articles, err
}

// GetHot ranks articles by descending comment count. Articles without
// comments never appear; ties break on ascending id.
func (r *articleRepository) GetHot(limit int) ([]ArticleWithCommentCount, error) {
	var articles []ArticleWithCommentCount
	err := r.db.Model(&models.Article{}).
		Select("articles.id", "articles.title", "articles.announce", "COUNT(comments.id) AS comments_count").
		Joins("INNER JOIN comments ON comments.article_id = articles.id").
		Group("articles.id").
		Order("comments_count DESC, articles.id ASC").
		Limit(limit).
		Scan(&articles).Error
	return articles, err
}

// GetPage returns one page of the feed ordered by creation date
// descending, plus the total article count. The count is taken from the
// articles table alone, so join fan-out from categories or comments
// cannot inflate it.
func (r *articleRepository) GetPage(limit, offset int) (*ArticlePage, error) {
	var count int64
	if err := r.db.Model(&models.Article{}).Distinct("id").Count(&count).Error; err != nil {
		return nil, err
	}

	var articles []models.Article
	err := r.db.
		Select("id", "title", "announce", "picture", "created_at").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "article_id")
		}).
		Preload("Categories", func(db *gorm.DB) *gorm.DB {
			return db.Select("categories.id", "categories.name")
		}).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&articles).Error
	if err != nil {
		return nil, err
	}

	return &ArticlePage{Count: count, Articles: articles}, nil
}

// Exists reports whether an article row with the given id is present.
func (r *articleRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Article{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func categoryRefs(ids []uint) []models.Category {
	refs := make([]models.Category, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, models.Category{ID: id})
	}
	return refs
}
