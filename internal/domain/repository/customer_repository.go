package repository

import (
	"context"

	"github.com/google/uuid"

	"kda/internal/domain/entity"
	"kda/internal/errors"
)

// Predefined customer repository errors
var (
	// ErrCustomerNotFound is returned when a customer cannot be found
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrCustomerCodeTaken is returned when the customer code collides
	ErrCustomerCodeTaken = errors.New("customer code already exists")
)

// CustomerRepository handles persistence of customer records.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	// List returns one page of customers ordered by creation time,
	// newest first, together with the total row count.
	List(ctx context.Context, offset, limit int) ([]*entity.Customer, int64, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
}
