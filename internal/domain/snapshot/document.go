package snapshot

import "time"

// ExportInfo is the producer metadata attached to every snapshot document.
type ExportInfo struct {
	Username      string    `json:"username"`
	WorkspaceName string    `json:"workspaceName"`
	WorkspaceID   int64     `json:"workspaceId"`
	ExportTime    time.Time `json:"exportTime"`
	Version       string    `json:"version"`
}

// Document is the portable snapshot of one workspace's business data.
// Immutable once produced; the restore path consumes it read-only.
type Document struct {
	ExportInfo ExportInfo `json:"exportInfo"`
	Data       Data       `json:"data"`
}

// Data holds the per-kind record lists. Field names match the wire keys and
// the Kind constants of the record package.
type Data struct {
	Suppliers  []PartyRecord      `json:"suppliers"`
	Customers  []PartyRecord      `json:"customers"`
	Employees  []PartyRecord      `json:"employees"`
	Products   []ProductRecord    `json:"products"`
	Purchases  []PurchaseRecord   `json:"purchases"`
	Sales      []SaleRecord       `json:"sales"`
	Returns    []ReturnRecord     `json:"returns"`
	Income     []IncomeRecord     `json:"income"`
	Remittance []RemittanceRecord `json:"remittance"`
}

// PartyRecord is the wire form of suppliers, customers and employees, which
// share one shape. The id is the producer-side identifier and is only
// meaningful for remapping during a restore.
type PartyRecord struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Note string `json:"note,omitempty"`
}

// ProductRecord is the wire form of a product.
type ProductRecord struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Stock       float64 `json:"stock"`
	Unit        string  `json:"unit"`
	SupplierID  *int64  `json:"supplierId,omitempty"`
}

// PurchaseRecord is the wire form of a purchase.
type PurchaseRecord struct {
	ProductName        string     `json:"productName"`
	Quantity           float64    `json:"quantity"`
	PurchaseDate       *time.Time `json:"purchaseDate,omitempty"`
	SupplierID         *int64     `json:"supplierId,omitempty"`
	TotalPurchasePrice *float64   `json:"totalPurchasePrice,omitempty"`
	Note               string     `json:"note,omitempty"`
}

// SaleRecord is the wire form of a sale.
type SaleRecord struct {
	ProductName    string     `json:"productName"`
	Quantity       float64    `json:"quantity"`
	CustomerID     *int64     `json:"customerId,omitempty"`
	SaleDate       *time.Time `json:"saleDate,omitempty"`
	TotalSalePrice *float64   `json:"totalSalePrice,omitempty"`
	Note           string     `json:"note,omitempty"`
}

// ReturnRecord is the wire form of a customer return.
type ReturnRecord struct {
	ProductName      string     `json:"productName"`
	Quantity         float64    `json:"quantity"`
	CustomerID       *int64     `json:"customerId,omitempty"`
	ReturnDate       *time.Time `json:"returnDate,omitempty"`
	TotalReturnPrice *float64   `json:"totalReturnPrice,omitempty"`
	Note             string     `json:"note,omitempty"`
}

// IncomeRecord is the wire form of an income entry.
type IncomeRecord struct {
	IncomeDate    *time.Time `json:"incomeDate,omitempty"`
	CustomerID    *int64     `json:"customerId,omitempty"`
	Amount        float64    `json:"amount"`
	Discount      *float64   `json:"discount,omitempty"`
	EmployeeID    *int64     `json:"employeeId,omitempty"`
	PaymentMethod string     `json:"paymentMethod"`
	Note          string     `json:"note,omitempty"`
}

// RemittanceRecord is the wire form of a remittance entry.
type RemittanceRecord struct {
	RemittanceDate *time.Time `json:"remittanceDate,omitempty"`
	SupplierID     *int64     `json:"supplierId,omitempty"`
	Amount         float64    `json:"amount"`
	EmployeeID     *int64     `json:"employeeId,omitempty"`
	PaymentMethod  string     `json:"paymentMethod"`
	Note           string     `json:"note,omitempty"`
}
