package repository

import (
	"errors"

	"github.com/typoteka/typoteka/app/models"
	"gorm.io/gorm"
)

// categoryRepository implements the CategoryRepository interface
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository instance
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

// Create creates a new category in the database
func (r *categoryRepository) Create(category *models.Category) error {
	return r.db.Create(category).Error
}

// Update updates category columns by primary key. Returns whether a row matched.
func (r *categoryRepository) Update(id uint, category *models.Category) (bool, error) {
	res := r.db.Model(&models.Category{}).Where("id = ?", id).
		Select("name").
		Updates(category)
	return res.RowsAffected > 0, res.Error
}

// Delete removes a category by primary key. Returns whether a row was removed.
func (r *categoryRepository) Delete(id uint) (bool, error) {
	res := r.db.Delete(&models.Category{}, id)
	return res.RowsAffected > 0, res.Error
}

// GetByID retrieves a category by its ID, (nil, nil) when absent.
func (r *categoryRepository) GetByID(id uint) (*models.Category, error) {
	var category models.Category
	err := r.db.First(&category, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// GetAll returns every category, newest first.
func (r *categoryRepository) GetAll() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Order("created_at DESC").Find(&categories).Error
	return categories, err
}

// GetAllWithCount returns categories joined against the article
// association with a per-category article count. The inner join keeps
// only categories that are linked to at least one article. Rows are
// ordered by count descending, then ascending id.
func (r *categoryRepository) GetAllWithCount() ([]models.CategoryWithCount, error) {
	var categories []models.CategoryWithCount
	err := r.db.Model(&models.Category{}).
		Select("categories.id", "categories.name", "COUNT(articles_categories.article_id) AS count").
		Joins("INNER JOIN articles_categories ON articles_categories.category_id = categories.id").
		Group("categories.id").
		Order("count DESC, categories.id ASC").
		Scan(&categories).Error
	return categories, err
}
