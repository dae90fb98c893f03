package model

import (
	"time"

	"github.com/google/uuid"

	"kda/internal/domain/entity"
)

// SessionModel mirrors the 'sessions' table. Rows are never deleted;
// logout and salvage flip Valid to false instead.
type SessionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Username  string    `gorm:"type:varchar(100);not null;index"`
	Valid     bool      `gorm:"not null;default:true"`
	UserAgent string    `gorm:"type:varchar(512)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SessionModel) TableName() string {
	return "sessions"
}

// ToEntity converts the persistence model into its domain entity.
func (m *SessionModel) ToEntity() *entity.Session {
	return &entity.Session{
		ID:        m.ID,
		Username:  m.Username,
		Valid:     m.Valid,
		UserAgent: m.UserAgent,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
