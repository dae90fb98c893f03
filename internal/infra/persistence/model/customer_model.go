package model

import (
	"time"

	"github.com/google/uuid"

	"kda/internal/domain/entity"
)

// CustomerModel mirrors the 'customers' table.
type CustomerModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Code      string    `gorm:"type:varchar(50);unique;not null"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Address   string    `gorm:"type:text"`
	Phone     string    `gorm:"type:varchar(50)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}

// ToEntity converts the persistence model into its domain entity.
func (m *CustomerModel) ToEntity() *entity.Customer {
	return &entity.Customer{
		ID:        m.ID,
		Code:      m.Code,
		Name:      m.Name,
		Address:   m.Address,
		Phone:     m.Phone,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// CustomerModelFromEntity converts a domain customer into its persistence model.
func CustomerModelFromEntity(customer *entity.Customer) *CustomerModel {
	return &CustomerModel{
		ID:      customer.ID,
		Code:    customer.Code,
		Name:    customer.Name,
		Address: customer.Address,
		Phone:   customer.Phone,
	}
}
