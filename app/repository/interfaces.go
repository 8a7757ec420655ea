package repository

import (
	"github.com/typoteka/typoteka/app/models"
	"gorm.io/gorm"
)

// Read methods return (nil, nil) when no row matches; mutation methods
// return false with a nil error in that case. Callers must treat "no
// rows affected" as not-found, never as success.

// ArticleRepository defines the interface for article-related database operations
type ArticleRepository interface {
	Create(article *models.Article, categoryIDs []uint) error
	Update(id uint, article *models.Article, categoryIDs []uint) (bool, error)
	Delete(id uint) (bool, error)
	GetByID(id uint, needComments bool) (*models.Article, error)
	GetAll(needComments bool) ([]models.Article, error)
	GetHot(limit int) ([]ArticleWithCommentCount, error)
	GetPage(limit, offset int) (*ArticlePage, error)
	Exists(id uint) (bool, error)
}

// CategoryRepository defines the interface for category-related database operations
type CategoryRepository interface {
	Create(category *models.Category) error
	Update(id uint, category *models.Category) (bool, error)
	Delete(id uint) (bool, error)
	GetByID(id uint) (*models.Category, error)
	GetAll() ([]models.Category, error)
	GetAllWithCount() ([]models.CategoryWithCount, error)
}

// CommentRepository defines the interface for comment-related database operations
type CommentRepository interface {
	Create(comment *models.Comment) error
	Delete(articleID, id uint) (bool, error)
	GetOne(articleID, id uint) (*models.Comment, error)
	GetByArticle(articleID uint) ([]models.Comment, error)
	GetRecent(limit int) ([]models.Comment, error)
}

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	EmailTaken(email string) (bool, error)
}

// ArticleWithCommentCount is the projection returned by the hot-articles
// ranking query.
type ArticleWithCommentCount struct {
	ID            uint   `json:"id"`
	Title         string `json:"title"`
	Announce      string `json:"announce"`
	CommentsCount int64  `json:"commentsCount"`
}

// ArticlePage is one page of the article feed together with the total
// number of articles before pagination.
type ArticlePage struct {
	Count    int64            `json:"count"`
	Articles []models.Article `json:"articles"`
}

// Repositories struct holds all repository instances
type Repositories struct {
	Article  ArticleRepository
	Category CategoryRepository
	Comment  CommentRepository
	User     UserRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Article:  NewArticleRepository(db),
		Category: NewCategoryRepository(db),
		Comment:  NewCommentRepository(db),
		User:     NewUserRepository(db),
	}
}
