package record

import (
	"context"
	"strings"

	"github.com/shopledger/backend/internal/domain/record"
	"github.com/shopledger/backend/internal/domain/shared"
	"github.com/shopledger/backend/internal/domain/workspace"
)

// PartyService handles suppliers, customers and employees, which share one
// shape and one set of operations.
type PartyService struct {
	access
	supplierRepo record.SupplierRepository
	customerRepo record.CustomerRepository
	employeeRepo record.EmployeeRepository
}

// NewPartyService creates a party service
func NewPartyService(
	workspaceRepo workspace.Repository,
	supplierRepo record.SupplierRepository,
	customerRepo record.CustomerRepository,
	employeeRepo record.EmployeeRepository,
) *PartyService {
	return &PartyService{
		access:       access{workspaceRepo: workspaceRepo},
		supplierRepo: supplierRepo,
		customerRepo: customerRepo,
		employeeRepo: employeeRepo,
	}
}

// CreateSupplier creates a supplier in the workspace
func (s *PartyService) CreateSupplier(ctx context.Context, userID, workspaceID int64, req PartyRequest) (*PartyResponse, error) {
	if err := s.requireEditor(ctx, userID, workspaceID); err != nil {
		return nil, err
	}
	supplier, err := record.NewSupplier(workspaceID, userID, req.Name, req.Note)
	if err != nil {
		return nil, err
	}
	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}
	resp := toPartyResponse(supplier.ID, supplier.Name, supplier.Note, supplier.CreatedAt, supplier.UpdatedAt)
	return &resp, nil
}

// ListSuppliers lists the workspace's suppliers
func (s *PartyService) ListSuppliers(ctx context.Context, userID, workspaceID int64, q ListQuery) (*shared.Paginated[PartyResponse], error) {
	if _, err := s.requireMember(ctx, userID, workspaceID); err != nil {
		return nil, err
	}
	filter := q.toFilter()
	items, err := s.supplierRepo.FindAll(ctx, workspaceID, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.supplierRepo.Count(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	out := make([]PartyResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toPartyResponse(it.ID, it.Name, it.Note, it.CreatedAt, it.UpdatedAt))
	}
	page := shared.NewPaginated(out, total, filter.Page, filter.PageSize)
	return &page, nil
}

// UpdateSupplier renames a supplier or changes its note
func (s *PartyService) UpdateSupplier(ctx context.Context, userID, workspaceID, id int64, req PartyRequest) (*PartyResponse, error) {
	if err := s.requireEditor(ctx, userID, workspaceID); err != nil {
		return nil, err
	}
	supplier, err := s.supplierRepo.FindByID(ctx, workspaceID, id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Name cannot be empty")
	}
	supplier.Name = strings.TrimSpace(req.Name)
	supplier.Note = req.Note
	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}
	resp := toPartyResponse(supplier.ID, supplier.Name, supplier.Note, supplier.CreatedAt, supplier.UpdatedAt)
	return &resp, nil
}

// DeleteSupplier removes a supplier
func (s *PartyService) DeleteSupplier(ctx context.Context, userID, workspaceID, id int64) error {
	if err := s.requireEditor(ctx, userID, workspaceID); err != nil {
		return err
	}
	return s.supplierRepo.Delete(ctx, workspaceID, id)
}

// CreateCustomer creates a customer in the workspace
func (s *PartyService) CreateCustomer(ctx context.Context, userID, workspaceID int64, req PartyRequest) (*PartyResponse, error) {
	if err := s.requireEditor(ctx, userID, workspaceID); err != nil {
		return nil, err
	}
	customer, err := record.NewCustomer(workspaceID, userID, req.Name, req.Note)
	if err != nil {
		return nil, err
	}
	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}
	resp := toPartyResponse(customer.ID, customer.Name, customer.Note, customer.CreatedAt, customer.UpdatedAt)
	return &resp, nil
}

// ListCustomers lists the workspace's customers
func (s *PartyService) ListCustomers(ctx context.Context, userID, workspaceID int64, q ListQuery) (*shared.Paginated[PartyResponse], error) {
	if _, err := s.requireMember(ctx, userID, workspaceID); err != nil {
		return nil, err
	}
	filter := q.toFilter()
	items, err := s.customerRepo.FindAll(ctx, workspaceID, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.customerRepo.Count(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	out := make([]PartyResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toPartyResponse(it.ID, it.Name, it.Note, it.CreatedAt, it.UpdatedAt))
	}
	page := shared.NewPaginated(out, total, filter.Page, filter.PageSize)
	return &page, nil
}

// DeleteCustomer removes a customer
func (s *PartyService) DeleteCustomer(ctx context.Context, userID, workspaceID, id int64) error {
	if err := s.requireEditor(ctx, userID, workspaceID); err != nil {
		return err
	}
	return s.customerRepo.Delete(ctx, workspaceID, id)
}

// CreateEmployee creates an employee in the workspace
func (s *PartyService) CreateEmployee(ctx context.Context, userID, workspaceID int64, req PartyRequest) (*PartyResponse, error) {
	if err := s.requireEditor(ctx, userID, workspaceID); err != nil {
		return nil, err
	}
	employee, err := record.NewEmployee(workspaceID, userID, req.Name, req.Note)
	if err != nil {
		return nil, err
	}
	if err := s.employeeRepo.Save(ctx, employee); err != nil {
		return nil, err
	}
	resp := toPartyResponse(employee.ID, employee.Name, employee.Note, employee.CreatedAt, employee.UpdatedAt)
	return &resp, nil
}

// ListEmployees lists the workspace's employees
func (s *PartyService) ListEmployees(ctx context.Context, userID, workspaceID int64, q ListQuery) (*shared.Paginated[PartyResponse], error) {
	if _, err := s.requireMember(ctx, userID, workspaceID); err != nil {
		return nil, err
	}
	filter := q.toFilter()
	items, err := s.employeeRepo.FindAll(ctx, workspaceID, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.employeeRepo.Count(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	out := make([]PartyResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toPartyResponse(it.ID, it.Name, it.Note, it.CreatedAt, it.UpdatedAt))
	}
	page := shared.NewPaginated(out, total, filter.Page, filter.PageSize)
	return &page, nil
}

// DeleteEmployee removes an employee
func (s *PartyService) DeleteEmployee(ctx context.Context, userID, workspaceID, id int64) error {
	if err := s.requireEditor(ctx, userID, workspaceID); err != nil {
		return err
	}
	return s.employeeRepo.Delete(ctx, workspaceID, id)
}
