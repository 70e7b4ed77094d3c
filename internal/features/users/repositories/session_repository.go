package users_repositories

import (
	"time"

	users_models "workhub/internal/features/users/models"
	"workhub/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SessionRepository struct{}

func (r *SessionRepository) CreateSession(session *users_models.Session) error {
	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now().UTC()
	}
	if session.UpdatedAt.IsZero() {
		session.UpdatedAt = session.CreatedAt
	}

	return storage.GetDb().Create(session).Error
}

func (r *SessionRepository) GetSessionByToken(token string) (*users_models.Session, error) {
	var session users_models.Session

	if err := storage.GetDb().Where("token = ?", token).First(&session).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &session, nil
}

func (r *SessionRepository) DeleteSessionByToken(token string) error {
	return storage.GetDb().
		Where("token = ?", token).
		Delete(&users_models.Session{}).Error
}

func (r *SessionRepository) DeleteExpiredSessions() error {
	return storage.GetDb().
		Where("expires_at < ?", time.Now().UTC()).
		Delete(&users_models.Session{}).Error
}
