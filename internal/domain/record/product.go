package record

import (
	"strings"

	"github.com/shopledger/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Product is a stocked item. It optionally references a supplier within the
// same workspace; purchases reference products by name rather than id.
type Product struct {
	shared.WorkspaceEntity
	Name        string
	Description string
	Stock       decimal.Decimal
	Unit        ProductUnit
	SupplierID  *int64
	Version     int
}

// NewProduct creates a product scoped to a workspace
func NewProduct(workspaceID, userID int64, name, description string, stock decimal.Decimal, unit ProductUnit, supplierID *int64) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Product name cannot be empty")
	}
	if stock.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Stock cannot be negative")
	}
	return &Product{
		WorkspaceEntity: shared.WorkspaceEntity{WorkspaceID: workspaceID, UserID: userID},
		Name:            name,
		Description:     description,
		Stock:           stock,
		Unit:            NormalizeUnit(string(unit)),
		SupplierID:      supplierID,
		Version:         1,
	}, nil
}

// AdjustStock applies a signed quantity change with optimistic locking
func (p *Product) AdjustStock(delta decimal.Decimal, version int) error {
	if version != p.Version {
		return shared.NewDomainError("CONCURRENCY_CONFLICT", "Product was modified by another process")
	}
	next := p.Stock.Add(delta)
	if next.IsNegative() {
		return shared.NewDomainError("INSUFFICIENT_STOCK", "Stock cannot go below zero")
	}
	p.Stock = next
	p.Version++
	return nil
}
