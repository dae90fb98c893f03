package usecase

import (
	"context"

	"github.com/google/uuid"

	"kda/internal/domain/entity"
)

// CreateCustomerInput defines the data required to create a customer.
type CreateCustomerInput struct {
	Code    string
	Name    string
	Address string
	Phone   string
}

// UpdateCustomerInput defines the data for updating an existing customer.
type UpdateCustomerInput struct {
	ID      uuid.UUID
	Code    string
	Name    string
	Address string
	Phone   string
}

// ListCustomersInput carries the pagination parameters.
type ListCustomersInput struct {
	Page     int
	PageSize int
}

// ListCustomersOutput returns one page plus the paging envelope fields.
type ListCustomersOutput struct {
	Customers []*entity.Customer
	Total     int64
	Page      int
	PageSize  int
}

// CustomerUsecase defines the interface for customer-related business operations.
type CustomerUsecase interface {
	Create(ctx context.Context, input CreateCustomerInput) (*entity.Customer, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	List(ctx context.Context, input ListCustomersInput) (*ListCustomersOutput, error)
	Update(ctx context.Context, input UpdateCustomerInput) (*entity.Customer, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
