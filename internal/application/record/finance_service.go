package record

import (
	"context"

	"github.com/shopledger/backend/internal/domain/record"
	"github.com/shopledger/backend/internal/domain/shared"
	"github.com/shopledger/backend/internal/domain/workspace"
)

// FinanceService handles income and remittance entries
type FinanceService struct {
	access
	incomeRepo     record.IncomeRepository
	remittanceRepo record.RemittanceRepository
}

// NewFinanceService creates a finance service
func NewFinanceService(
	workspaceRepo workspace.Repository,
	incomeRepo record.IncomeRepository,
	remittanceRepo record.RemittanceRepository,
) *FinanceService {
	return &FinanceService{
		access:         access{workspaceRepo: workspaceRepo},
		incomeRepo:     incomeRepo,
		remittanceRepo: remittanceRepo,
	}
}

// CreateIncome records an income entry
func (s *FinanceService) CreateIncome(ctx context.Context, userID, workspaceID int64, req IncomeRequest) (*IncomeResponse, error) {
	if err := s.requireEditor(ctx, userID, workspaceID); err != nil {
		return nil, err
	}
	if req.Amount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Amount cannot be negative")
	}
	income := &record.Income{
		WorkspaceEntity: shared.WorkspaceEntity{WorkspaceID: workspaceID, UserID: userID},
		IncomeDate:      req.IncomeDate,
		CustomerID:      req.CustomerID,
		Amount:          req.Amount,
		Discount:        req.Discount,
		EmployeeID:      req.EmployeeID,
		PaymentMethod:   record.NormalizePaymentMethod(req.PaymentMethod),
		Note:            req.Note,
	}
	if err := s.incomeRepo.Save(ctx, income); err != nil {
		return nil, err
	}
	resp := toIncomeResponse(income)
	return &resp, nil
}

// ListIncome lists the workspace's income entries
func (s *FinanceService) ListIncome(ctx context.Context, userID, workspaceID int64, q ListQuery) (*shared.Paginated[IncomeResponse], error) {
	if _, err := s.requireMember(ctx, userID, workspaceID); err != nil {
		return nil, err
	}
	filter := q.toFilter()
	items, err := s.incomeRepo.FindAll(ctx, workspaceID, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.incomeRepo.Count(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	out := make([]IncomeResponse, 0, len(items))
	for i := range items {
		out = append(out, toIncomeResponse(&items[i]))
	}
	page := shared.NewPaginated(out, total, filter.Page, filter.PageSize)
	return &page, nil
}

// DeleteIncome removes an income entry
func (s *FinanceService) DeleteIncome(ctx context.Context, userID, workspaceID, id int64) error {
	if err := s.requireEditor(ctx, userID, workspaceID); err != nil {
		return err
	}
	return s.incomeRepo.Delete(ctx, workspaceID, id)
}

// CreateRemittance records a remittance entry
func (s *FinanceService) CreateRemittance(ctx context.Context, userID, workspaceID int64, req RemittanceRequest) (*RemittanceResponse, error) {
	if err := s.requireEditor(ctx, userID, workspaceID); err != nil {
		return nil, err
	}
	if req.Amount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Amount cannot be negative")
	}
	remittance := &record.Remittance{
		WorkspaceEntity: shared.WorkspaceEntity{WorkspaceID: workspaceID, UserID: userID},
		RemittanceDate:  req.RemittanceDate,
		SupplierID:      req.SupplierID,
		Amount:          req.Amount,
		EmployeeID:      req.EmployeeID,
		PaymentMethod:   record.NormalizePaymentMethod(req.PaymentMethod),
		Note:            req.Note,
	}
	if err := s.remittanceRepo.Save(ctx, remittance); err != nil {
		return nil, err
	}
	resp := toRemittanceResponse(remittance)
	return &resp, nil
}

// ListRemittance lists the workspace's remittance entries
func (s *FinanceService) ListRemittance(ctx context.Context, userID, workspaceID int64, q ListQuery) (*shared.Paginated[RemittanceResponse], error) {
	if _, err := s.requireMember(ctx, userID, workspaceID); err != nil {
		return nil, err
	}
	filter := q.toFilter()
	items, err := s.remittanceRepo.FindAll(ctx, workspaceID, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.remittanceRepo.Count(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	out := make([]RemittanceResponse, 0, len(items))
	for i := range items {
		out = append(out, toRemittanceResponse(&items[i]))
	}
	page := shared.NewPaginated(out, total, filter.Page, filter.PageSize)
	return &page, nil
}

// DeleteRemittance removes a remittance entry
func (s *FinanceService) DeleteRemittance(ctx context.Context, userID, workspaceID, id int64) error {
	if err := s.requireEditor(ctx, userID, workspaceID); err != nil {
		return err
	}
	return s.remittanceRepo.Delete(ctx, workspaceID, id)
}

func toIncomeResponse(i *record.Income) IncomeResponse {
	return IncomeResponse{
		ID:            i.ID,
		IncomeDate:    i.IncomeDate,
		CustomerID:    i.CustomerID,
		Amount:        i.Amount,
		Discount:      i.Discount,
		EmployeeID:    i.EmployeeID,
		PaymentMethod: string(i.PaymentMethod),
		Note:          i.Note,
		CreatedAt:     i.CreatedAt,
	}
}

func toRemittanceResponse(r *record.Remittance) RemittanceResponse {
	return RemittanceResponse{
		ID:             r.ID,
		RemittanceDate: r.RemittanceDate,
		SupplierID:     r.SupplierID,
		Amount:         r.Amount,
		EmployeeID:     r.EmployeeID,
		PaymentMethod:  string(r.PaymentMethod),
		Note:           r.Note,
		CreatedAt:      r.CreatedAt,
	}
}
