package users_models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID             uuid.UUID `json:"id"            gorm:"column:id"`
	Name           string    `json:"name"          gorm:"column:name"`
	Email          string    `json:"email"         gorm:"column:email"`
	EmailVerified  bool      `json:"emailVerified" gorm:"column:email_verified"`
	Image          *string   `json:"image"         gorm:"column:image"`
	HashedPassword *string   `json:"-"             gorm:"column:hashed_password"`
	CreatedAt      time.Time `json:"createdAt"     gorm:"column:created_at"`
	UpdatedAt      time.Time `json:"updatedAt"     gorm:"column:updated_at"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) HasPassword() bool {
	return u.HashedPassword != nil && *u.HashedPassword != ""
}
