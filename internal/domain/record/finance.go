package record

import (
	"time"

	"github.com/shopledger/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Income records money received, optionally tied to a customer and the
// employee who handled it.
type Income struct {
	shared.WorkspaceEntity
	IncomeDate    *time.Time
	CustomerID    *int64
	Amount        decimal.Decimal
	Discount      decimal.Decimal
	EmployeeID    *int64
	PaymentMethod PaymentMethod
	Note          string
}

// Remittance records money paid out to a supplier, optionally tied to the
// employee who handled it.
type Remittance struct {
	shared.WorkspaceEntity
	RemittanceDate *time.Time
	SupplierID     *int64
	Amount         decimal.Decimal
	EmployeeID     *int64
	PaymentMethod  PaymentMethod
	Note           string
}
