package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(100);uniqueIndex" json:"name" validate:"required,min=5,max=30"`
	Articles  []Article `gorm:"many2many:articles_categories;constraint:OnDelete:CASCADE" json:"articles,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Category) TableName() string {
	return "categories"
}

func (c *Category) Validate() error {
	v := validator.New()

	return v.Struct(c)
}

// CategoryWithCount is the read model for the category list with
// per-category article counts. It is never persisted.
type CategoryWithCount struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Count int64  `json:"count"`
}
