package postgres

import (
	"context"

	"kda/internal/domain/entity"
	"kda/internal/domain/repository"
	"kda/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// Create persists a new user entity together with its role links.
// GORM's Create with associations inserts into users and user_roles together.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := model.UserModelFromEntity(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrUserAlreadyExists
		}

		return errors.Wrap(err, "failed to create user")
	}

	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// FindByUsername retrieves a single user by username, preloading role links.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("Roles").
		Where("username = ?", username).
		First(&userM).Error

	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}
		// Otherwise, return the original database error.
		return nil, errors.Wrap(err, "failed to find user by username")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return userM.ToEntity(), nil
}

// CountByUsername returns how many accounts carry the username.
func (repo *userRepository) CountByUsername(ctx context.Context, username string) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("username = ?", username).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count users by username")
	}

	return count, nil
}

// CountByEmail returns how many accounts carry the email address.
func (repo *userRepository) CountByEmail(ctx context.Context, email string) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("email = ?", email).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count users by email")
	}

	return count, nil
}
