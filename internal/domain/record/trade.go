package record

import (
	"time"

	"github.com/shopledger/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Purchase records stock bought in. Quantity may be negative to represent a
// purchase reversal. Products are referenced by name so a purchase survives
// the product being renamed or deleted.
type Purchase struct {
	shared.WorkspaceEntity
	ProductName        string
	Quantity           decimal.Decimal
	PurchaseDate       *time.Time
	SupplierID         *int64
	TotalPurchasePrice *decimal.Decimal
	Note               string
}

// Sale records stock sold to a customer.
type Sale struct {
	shared.WorkspaceEntity
	ProductName    string
	Quantity       decimal.Decimal
	SaleDate       *time.Time
	CustomerID     *int64
	TotalSalePrice *decimal.Decimal
	Note           string
}

// Return records goods a customer sent back.
type Return struct {
	shared.WorkspaceEntity
	ProductName      string
	Quantity         decimal.Decimal
	ReturnDate       *time.Time
	CustomerID       *int64
	TotalReturnPrice *decimal.Decimal
	Note             string
}
