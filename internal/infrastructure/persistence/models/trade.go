package models

import (
	"time"

	"github.com/shopledger/backend/internal/domain/record"
	"github.com/shopspring/decimal"
)

// PurchaseModel is the persistence model for the Purchase domain entity.
type PurchaseModel struct {
	WorkspaceScopedModel
	ProductName        string           `gorm:"type:varchar(200);not null;index"`
	Quantity           decimal.Decimal  `gorm:"type:decimal(18,4);not null"`
	PurchaseDate       *time.Time       `gorm:"index"`
	SupplierID         *int64           `gorm:"index"`
	TotalPurchasePrice *decimal.Decimal `gorm:"type:decimal(18,4)"`
	Note               string           `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (PurchaseModel) TableName() string {
	return "purchases"
}

// ToDomain converts the persistence model to a domain Purchase entity.
func (m *PurchaseModel) ToDomain() *record.Purchase {
	return &record.Purchase{
		WorkspaceEntity:    m.ToDomainWorkspaceEntity(),
		ProductName:        m.ProductName,
		Quantity:           m.Quantity,
		PurchaseDate:       m.PurchaseDate,
		SupplierID:         m.SupplierID,
		TotalPurchasePrice: m.TotalPurchasePrice,
		Note:               m.Note,
	}
}

// FromDomain populates the persistence model from a domain Purchase entity.
func (m *PurchaseModel) FromDomain(p *record.Purchase) {
	m.FromDomainWorkspaceEntity(p.WorkspaceEntity)
	m.ProductName = p.ProductName
	m.Quantity = p.Quantity
	m.PurchaseDate = p.PurchaseDate
	m.SupplierID = p.SupplierID
	m.TotalPurchasePrice = p.TotalPurchasePrice
	m.Note = p.Note
}

// SaleModel is the persistence model for the Sale domain entity.
type SaleModel struct {
	WorkspaceScopedModel
	ProductName    string           `gorm:"type:varchar(200);not null;index"`
	Quantity       decimal.Decimal  `gorm:"type:decimal(18,4);not null"`
	SaleDate       *time.Time       `gorm:"index"`
	CustomerID     *int64           `gorm:"index"`
	TotalSalePrice *decimal.Decimal `gorm:"type:decimal(18,4)"`
	Note           string           `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (SaleModel) TableName() string {
	return "sales"
}

// ToDomain converts the persistence model to a domain Sale entity.
func (m *SaleModel) ToDomain() *record.Sale {
	return &record.Sale{
		WorkspaceEntity: m.ToDomainWorkspaceEntity(),
		ProductName:     m.ProductName,
		Quantity:        m.Quantity,
		SaleDate:        m.SaleDate,
		CustomerID:      m.CustomerID,
		TotalSalePrice:  m.TotalSalePrice,
		Note:            m.Note,
	}
}

// FromDomain populates the persistence model from a domain Sale entity.
func (m *SaleModel) FromDomain(s *record.Sale) {
	m.FromDomainWorkspaceEntity(s.WorkspaceEntity)
	m.ProductName = s.ProductName
	m.Quantity = s.Quantity
	m.SaleDate = s.SaleDate
	m.CustomerID = s.CustomerID
	m.TotalSalePrice = s.TotalSalePrice
	m.Note = s.Note
}

// ReturnModel is the persistence model for the Return domain entity.
type ReturnModel struct {
	WorkspaceScopedModel
	ProductName      string           `gorm:"type:varchar(200);not null;index"`
	Quantity         decimal.Decimal  `gorm:"type:decimal(18,4);not null"`
	ReturnDate       *time.Time       `gorm:"index"`
	CustomerID       *int64           `gorm:"index"`
	TotalReturnPrice *decimal.Decimal `gorm:"type:decimal(18,4)"`
	Note             string           `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (ReturnModel) TableName() string {
	return "returns"
}

// ToDomain converts the persistence model to a domain Return entity.
func (m *ReturnModel) ToDomain() *record.Return {
	return &record.Return{
		WorkspaceEntity:  m.ToDomainWorkspaceEntity(),
		ProductName:      m.ProductName,
		Quantity:         m.Quantity,
		ReturnDate:       m.ReturnDate,
		CustomerID:       m.CustomerID,
		TotalReturnPrice: m.TotalReturnPrice,
		Note:             m.Note,
	}
}

// FromDomain populates the persistence model from a domain Return entity.
func (m *ReturnModel) FromDomain(r *record.Return) {
	m.FromDomainWorkspaceEntity(r.WorkspaceEntity)
	m.ProductName = r.ProductName
	m.Quantity = r.Quantity
	m.ReturnDate = r.ReturnDate
	m.CustomerID = r.CustomerID
	m.TotalReturnPrice = r.TotalReturnPrice
	m.Note = r.Note
}
