package entity

import (
	"time"

	"github.com/google/uuid"
)

// Customer is a business relation record. Customers are referenced by
// contracts and invoices elsewhere in the system; here they carry only
// the identifying fields.
type Customer struct {
	ID        uuid.UUID // Unique identifier.
	Code      string    // Unique short business code, e.g. "CUST-0001".
	Name      string
	Address   string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
