package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Text      string    `gorm:"type:text" json:"text" validate:"required,min=20"`
	ArticleID uint      `gorm:"index" json:"articleId"`
	UserID    uint      `gorm:"index" json:"userId"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Comment) TableName() string {
	return "comments"
}

func (c *Comment) Validate() error {
	v := validator.New()

	return v.Struct(c)
}
