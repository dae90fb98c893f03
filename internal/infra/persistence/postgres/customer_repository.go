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

// customerRepository implements the domain.CustomerRepository interface using GORM.
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository is the constructor for customerRepository.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

// Create persists a new customer.
func (repo *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	customerM := model.CustomerModelFromEntity(customer)
	if customerM.ID == uuid.Nil {
		customerM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(customerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrCustomerCodeTaken
		}

		return errors.Wrap(err, "failed to create customer")
	}

	customer.ID = customerM.ID
	customer.CreatedAt = customerM.CreatedAt
	customer.UpdatedAt = customerM.UpdatedAt

	return nil
}

// FindByID retrieves a single customer by its ID.
func (repo *customerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	var customerM model.CustomerModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&customerM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer")
	}

	return customerM.ToEntity(), nil
}

// List returns one page of customers ordered newest first, plus the total count.
func (repo *customerRepository) List(ctx context.Context, offset, limit int) ([]*entity.Customer, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).Model(&model.CustomerModel{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count customers")
	}

	var customerMs []model.CustomerModel
	err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&customerMs).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list customers")
	}

	customers := make([]*entity.Customer, 0, len(customerMs))
	for i := range customerMs {
		customers = append(customers, customerMs[i].ToEntity())
	}

	return customers, total, nil
}

// Update persists changes to an existing customer.
func (repo *customerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("id = ?", customer.ID).
		Updates(map[string]any{
			"code":    customer.Code,
			"name":    customer.Name,
			"address": customer.Address,
			"phone":   customer.Phone,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrCustomerCodeTaken
		}

		return errors.Wrap(result.Error, "failed to update customer")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCustomerNotFound
	}

	return nil
}

// Delete removes a customer row.
func (repo *customerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.CustomerModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete customer")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCustomerNotFound
	}

	return nil
}
