package models

import (
	"time"

	"github.com/shopledger/backend/internal/domain/record"
	"github.com/shopspring/decimal"
)

// IncomeModel is the persistence model for the Income domain entity.
type IncomeModel struct {
	WorkspaceScopedModel
	IncomeDate    *time.Time           `gorm:"index"`
	CustomerID    *int64               `gorm:"index"`
	Amount        decimal.Decimal      `gorm:"type:decimal(18,4);not null;default:0"`
	Discount      decimal.Decimal      `gorm:"type:decimal(18,4);not null;default:0"`
	EmployeeID    *int64               `gorm:"index"`
	PaymentMethod record.PaymentMethod `gorm:"type:varchar(30);not null;default:'cash'"`
	Note          string               `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (IncomeModel) TableName() string {
	return "income"
}

// ToDomain converts the persistence model to a domain Income entity.
func (m *IncomeModel) ToDomain() *record.Income {
	return &record.Income{
		WorkspaceEntity: m.ToDomainWorkspaceEntity(),
		IncomeDate:      m.IncomeDate,
		CustomerID:      m.CustomerID,
		Amount:          m.Amount,
		Discount:        m.Discount,
		EmployeeID:      m.EmployeeID,
		PaymentMethod:   m.PaymentMethod,
		Note:            m.Note,
	}
}

// FromDomain populates the persistence model from a domain Income entity.
func (m *IncomeModel) FromDomain(i *record.Income) {
	m.FromDomainWorkspaceEntity(i.WorkspaceEntity)
	m.IncomeDate = i.IncomeDate
	m.CustomerID = i.CustomerID
	m.Amount = i.Amount
	m.Discount = i.Discount
	m.EmployeeID = i.EmployeeID
	m.PaymentMethod = i.PaymentMethod
	m.Note = i.Note
}

// RemittanceModel is the persistence model for the Remittance domain entity.
type RemittanceModel struct {
	WorkspaceScopedModel
	RemittanceDate *time.Time           `gorm:"index"`
	SupplierID     *int64               `gorm:"index"`
	Amount         decimal.Decimal      `gorm:"type:decimal(18,4);not null;default:0"`
	EmployeeID     *int64               `gorm:"index"`
	PaymentMethod  record.PaymentMethod `gorm:"type:varchar(30);not null;default:'cash'"`
	Note           string               `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (RemittanceModel) TableName() string {
	return "remittance"
}

// ToDomain converts the persistence model to a domain Remittance entity.
func (m *RemittanceModel) ToDomain() *record.Remittance {
	return &record.Remittance{
		WorkspaceEntity: m.ToDomainWorkspaceEntity(),
		RemittanceDate:  m.RemittanceDate,
		SupplierID:      m.SupplierID,
		Amount:          m.Amount,
		EmployeeID:      m.EmployeeID,
		PaymentMethod:   m.PaymentMethod,
		Note:            m.Note,
	}
}

// FromDomain populates the persistence model from a domain Remittance entity.
func (m *RemittanceModel) FromDomain(r *record.Remittance) {
	m.FromDomainWorkspaceEntity(r.WorkspaceEntity)
	m.RemittanceDate = r.RemittanceDate
	m.SupplierID = r.SupplierID
	m.Amount = r.Amount
	m.EmployeeID = r.EmployeeID
	m.PaymentMethod = r.PaymentMethod
	m.Note = r.Note
}
