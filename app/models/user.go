package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	FirstName      string    `gorm:"type:varchar(150)" json:"firstName" validate:"required,alphaunicode,max=150"`
	LastName       string    `gorm:"type:varchar(150)" json:"lastName" validate:"required,alphaunicode,max=150"`
	Email          string    `gorm:"uniqueIndex;type:varchar(200)" json:"email" validate:"required,email,min=5,max=200"`
	PasswordHash   string    `gorm:"type:text" json:"-" validate:"required"`
	AvatarFullsize string    `gorm:"type:varchar(255);default:null" json:"avatarFullsize" validate:"max=255"`
	AvatarSmall    string    `gorm:"type:varchar(255);default:null" json:"avatarSmall" validate:"max=255"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) Validate() error {
	v := validator.New()

	return v.Struct(u)
}

// CreateUser builds a validated user with a hashed password.
func CreateUser(firstName, lastName, email, password string) (*User, error) {
	pw, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	u := &User{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: pw,
	}

	err = u.Validate()
	if err != nil {
		return nil, err
	}

	return u, nil
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	return string(bytes), err
}

// CheckPasswordHash compares the given password with the stored hash.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))

	return err == nil
}

// CheckPassword verifies if the provided password matches the user's stored password
func (u *User) CheckPassword(password string) bool {
	return CheckPasswordHash(password, u.PasswordHash)
}
