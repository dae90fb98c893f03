package postgres

import (
	"context"

	"kda/internal/domain/entity"
	"kda/internal/domain/repository"
	"kda/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// sessionRepository implements the domain.SessionRepository interface using GORM.
type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

// Create persists a fresh valid session for the username.
func (repo *sessionRepository) Create(ctx context.Context, username string, userAgent string) (*entity.Session, error) {
	sessionM := &model.SessionModel{
		ID:        uuid.New(),
		Username:  username,
		Valid:     true,
		UserAgent: userAgent,
	}

	if err := repo.db.WithContext(ctx).Create(sessionM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to create session")
	}

	return sessionM.ToEntity(), nil
}

// FindValid retrieves the session only while its Valid flag is still true.
// Invalid and absent sessions are indistinguishable to callers.
func (repo *sessionRepository) FindValid(ctx context.Context, id uuid.UUID) (*entity.Session, error) {
	var sessionM model.SessionModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND valid = ?", id, true).
		First(&sessionM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find session")
	}

	return sessionM.ToEntity(), nil
}

// Invalidate flips the session's Valid flag to false. The guard on the
// current flag makes repeated logouts of the same session fail.
func (repo *sessionRepository) Invalidate(ctx context.Context, id uuid.UUID) (*entity.Session, error) {
	var sessionM model.SessionModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND valid = ?", id, true).
		First(&sessionM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find session for invalidation")
	}

	err = repo.db.WithContext(ctx).
		Model(&sessionM).
		Update("valid", false).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to invalidate session")
	}

	sessionM.Valid = false

	return sessionM.ToEntity(), nil
}
