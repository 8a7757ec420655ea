package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Article represents a publication on the platform
type Article struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	Title      string     `gorm:"type:varchar(250)" json:"title" validate:"required,min=30,max=250"`
	Announce   string     `gorm:"type:text" json:"announce" validate:"required,min=30,max=250"`
	FullText   string     `gorm:"type:text" json:"fullText" validate:"max=1000"`
	Picture    string     `gorm:"type:varchar(255)" json:"picture" validate:"max=255"`
	Categories []Category `gorm:"many2many:articles_categories;constraint:OnDelete:CASCADE" json:"categories,omitempty"`
	Comments   []Comment  `gorm:"foreignKey:ArticleID;constraint:OnDelete:CASCADE" json:"comments,omitempty"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}

// TableName specifies the table name for the Article model
func (Article) TableName() string {
	return "articles"
}

func (a *Article) Validate() error {
	v := validator.New()

	return v.Struct(a)
}
