package record

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/shopledger/backend/internal/domain/record"
	"github.com/shopledger/backend/internal/domain/shared"
)

// ListQuery carries pagination and search options for record listings.
type ListQuery struct {
	Page     int    `form:"page"`
	PageSize int    `form:"pageSize"`
	OrderBy  string `form:"orderBy"`
	OrderDir string `form:"orderDir"`
	Search   string `form:"search"`
}

// PartyRequest carries the fields shared by suppliers, customers and employees.
type PartyRequest struct {
	Name string `json:"name" binding:"required"`
	Note string `json:"note"`
}

// PartyResponse is the API shape of a supplier, customer or employee.
type PartyResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ProductRequest carries the fields for creating or updating a product.
type ProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Stock       decimal.Decimal `json:"stock"`
	Unit        string          `json:"unit"`
	SupplierID  *int64          `json:"supplierId"`
}

// ProductResponse is the API shape of a product.
type ProductResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Stock       decimal.Decimal `json:"stock"`
	Unit        string          `json:"unit"`
	SupplierID  *int64          `json:"supplierId,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// TradeRequest carries the fields shared by purchases, sales and returns.
type TradeRequest struct {
	ProductName string           `json:"productName" binding:"required"`
	Quantity    decimal.Decimal  `json:"quantity"`
	Date        *time.Time       `json:"date"`
	PartyID     *int64           `json:"partyId"`
	TotalPrice  *decimal.Decimal `json:"totalPrice"`
	Note        string           `json:"note"`
}

// TradeResponse is the API shape of a purchase, sale or return.
type TradeResponse struct {
	ID          int64            `json:"id"`
	ProductName string           `json:"productName"`
	Quantity    decimal.Decimal  `json:"quantity"`
	Date        *time.Time       `json:"date,omitempty"`
	PartyID     *int64           `json:"partyId,omitempty"`
	TotalPrice  *decimal.Decimal `json:"totalPrice,omitempty"`
	Note        string           `json:"note"`
	CreatedAt   time.Time        `json:"createdAt"`
}

// IncomeRequest carries the fields for an income entry.
type IncomeRequest struct {
	IncomeDate    *time.Time      `json:"incomeDate"`
	CustomerID    *int64          `json:"customerId"`
	Amount        decimal.Decimal `json:"amount"`
	Discount      decimal.Decimal `json:"discount"`
	EmployeeID    *int64          `json:"employeeId"`
	PaymentMethod string          `json:"paymentMethod"`
	Note          string          `json:"note"`
}

// IncomeResponse is the API shape of an income entry.
type IncomeResponse struct {
	ID            int64           `json:"id"`
	IncomeDate    *time.Time      `json:"incomeDate,omitempty"`
	CustomerID    *int64          `json:"customerId,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Discount      decimal.Decimal `json:"discount"`
	EmployeeID    *int64          `json:"employeeId,omitempty"`
	PaymentMethod string          `json:"paymentMethod"`
	Note          string          `json:"note"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// RemittanceRequest carries the fields for a remittance entry.
type RemittanceRequest struct {
	RemittanceDate *time.Time      `json:"remittanceDate"`
	SupplierID     *int64          `json:"supplierId"`
	Amount         decimal.Decimal `json:"amount"`
	EmployeeID     *int64          `json:"employeeId"`
	PaymentMethod  string          `json:"paymentMethod"`
	Note           string          `json:"note"`
}

// RemittanceResponse is the API shape of a remittance entry.
type RemittanceResponse struct {
	ID             int64           `json:"id"`
	RemittanceDate *time.Time      `json:"remittanceDate,omitempty"`
	SupplierID     *int64          `json:"supplierId,omitempty"`
	Amount         decimal.Decimal `json:"amount"`
	EmployeeID     *int64          `json:"employeeId,omitempty"`
	PaymentMethod  string          `json:"paymentMethod"`
	Note           string          `json:"note"`
	CreatedAt      time.Time       `json:"createdAt"`
}

func (q ListQuery) toFilter() shared.Filter {
	f := shared.DefaultFilter()
	if q.Page > 0 {
		f.Page = q.Page
	}
	if q.PageSize > 0 && q.PageSize <= 200 {
		f.PageSize = q.PageSize
	}
	if q.OrderBy != "" {
		f.OrderBy = q.OrderBy
	}
	if q.OrderDir != "" {
		f.OrderDir = q.OrderDir
	}
	f.Search = q.Search
	return f
}

func toPartyResponse(id int64, name, note string, createdAt, updatedAt time.Time) PartyResponse {
	return PartyResponse{ID: id, Name: name, Note: note, CreatedAt: createdAt, UpdatedAt: updatedAt}
}

func toProductResponse(p *record.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Stock:       p.Stock,
		Unit:        string(p.Unit),
		SupplierID:  p.SupplierID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
