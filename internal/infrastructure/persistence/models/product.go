package models

import (
	"github.com/shopledger/backend/internal/domain/record"
	"github.com/shopspring/decimal"
)

// ProductModel is the persistence model for the Product domain entity.
// supplier_id is a soft reference: restores may null it when the referenced
// supplier is missing from a snapshot, so no FK constraint is declared.
type ProductModel struct {
	WorkspaceScopedModel
	Name        string             `gorm:"type:varchar(200);not null"`
	Description string             `gorm:"type:text"`
	Stock       decimal.Decimal    `gorm:"type:decimal(18,4);not null;default:0"`
	Unit        record.ProductUnit `gorm:"type:varchar(20);not null;default:'kg'"`
	SupplierID  *int64             `gorm:"index"`
	Version     int                `gorm:"not null;default:1"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the persistence model to a domain Product entity.
func (m *ProductModel) ToDomain() *record.Product {
	return &record.Product{
		WorkspaceEntity: m.ToDomainWorkspaceEntity(),
		Name:            m.Name,
		Description:     m.Description,
		Stock:           m.Stock,
		Unit:            m.Unit,
		SupplierID:      m.SupplierID,
		Version:         m.Version,
	}
}

// FromDomain populates the persistence model from a domain Product entity.
func (m *ProductModel) FromDomain(p *record.Product) {
	m.FromDomainWorkspaceEntity(p.WorkspaceEntity)
	m.Name = p.Name
	m.Description = p.Description
	m.Stock = p.Stock
	m.Unit = p.Unit
	m.SupplierID = p.SupplierID
	m.Version = p.Version
}
