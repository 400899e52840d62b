package models

import (
	"github.com/shopledger/backend/internal/domain/record"
)

// SupplierModel is the persistence model for the Supplier domain entity.
type SupplierModel struct {
	WorkspaceScopedModel
	Name string `gorm:"type:varchar(200);not null"`
	Note string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (SupplierModel) TableName() string {
	return "suppliers"
}

// ToDomain converts the persistence model to a domain Supplier entity.
func (m *SupplierModel) ToDomain() *record.Supplier {
	return &record.Supplier{
		WorkspaceEntity: m.ToDomainWorkspaceEntity(),
		Name:            m.Name,
		Note:            m.Note,
	}
}

// FromDomain populates the persistence model from a domain Supplier entity.
func (m *SupplierModel) FromDomain(s *record.Supplier) {
	m.FromDomainWorkspaceEntity(s.WorkspaceEntity)
	m.Name = s.Name
	m.Note = s.Note
}

// CustomerModel is the persistence model for the Customer domain entity.
type CustomerModel struct {
	WorkspaceScopedModel
	Name string `gorm:"type:varchar(200);not null"`
	Note string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the persistence model to a domain Customer entity.
func (m *CustomerModel) ToDomain() *record.Customer {
	return &record.Customer{
		WorkspaceEntity: m.ToDomainWorkspaceEntity(),
		Name:            m.Name,
		Note:            m.Note,
	}
}

// FromDomain populates the persistence model from a domain Customer entity.
func (m *CustomerModel) FromDomain(c *record.Customer) {
	m.FromDomainWorkspaceEntity(c.WorkspaceEntity)
	m.Name = c.Name
	m.Note = c.Note
}

// EmployeeModel is the persistence model for the Employee domain entity.
type EmployeeModel struct {
	WorkspaceScopedModel
	Name string `gorm:"type:varchar(200);not null"`
	Note string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (EmployeeModel) TableName() string {
	return "employees"
}

// ToDomain converts the persistence model to a domain Employee entity.
func (m *EmployeeModel) ToDomain() *record.Employee {
	return &record.Employee{
		WorkspaceEntity: m.ToDomainWorkspaceEntity(),
		Name:            m.Name,
		Note:            m.Note,
	}
}

// FromDomain populates the persistence model from a domain Employee entity.
func (m *EmployeeModel) FromDomain(e *record.Employee) {
	m.FromDomainWorkspaceEntity(e.WorkspaceEntity)
	m.Name = e.Name
	m.Note = e.Note
}
