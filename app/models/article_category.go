package models

// ArticleCategory is the join row behind the Article<->Category
// many-to-many association. Association data is owned by the article
// and category write paths; calling code never touches this table
// directly.
type ArticleCategory struct {
	ArticleID  uint `gorm:"primaryKey" json:"articleId"`
	CategoryID uint `gorm:"primaryKey" json:"categoryId"`
}

func (ArticleCategory) TableName() string {
	return "articles_categories"
}
