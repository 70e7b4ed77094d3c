package users_models

import (
	"time"

	"github.com/google/uuid"
)

// Session is a server-side login record. The token column stores the signed
// JWT handed to the client; deleting the row revokes the token regardless of
// its signature validity.
type Session struct {
	ID        uuid.UUID `json:"id"        gorm:"column:id"`
	UserID    uuid.UUID `json:"userId"    gorm:"column:user_id"`
	Token     string    `json:"-"         gorm:"column:token"`
	ExpiresAt time.Time `json:"expiresAt" gorm:"column:expires_at"`
	IPAddress *string   `json:"ipAddress" gorm:"column:ip_address"`
	UserAgent *string   `json:"userAgent" gorm:"column:user_agent"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"column:updated_at"`
}

func (Session) TableName() string {
	return "sessions"
}

func (s *Session) IsExpired() bool {
	return time.Now().UTC().After(s.ExpiresAt)
}
