package record

import (
	"context"
	"strings"

	"github.com/shopledger/backend/internal/domain/record"
	"github.com/shopledger/backend/internal/domain/shared"
	"github.com/shopledger/backend/internal/domain/workspace"
)

// TradeService handles purchases, sales and returns
type TradeService struct {
	access
	purchaseRepo record.PurchaseRepository
	saleRepo     record.SaleRepository
	returnRepo   record.ReturnRepository
}

// NewTradeService creates a trade service
func NewTradeService(
	workspaceRepo workspace.Repository,
	purchaseRepo record.PurchaseRepository,
	saleRepo record.SaleRepository,
	returnRepo record.ReturnRepository,
) *TradeService {
	return &TradeService{
		access:       access{workspaceRepo: workspaceRepo},
		purchaseRepo: purchaseRepo,
		saleRepo:     saleRepo,
		returnRepo:   returnRepo,
	}
}

func validateTrade(req TradeRequest) error {
	if strings.TrimSpace(req.ProductName) == "" {
		return shared.NewDomainError("INVALID_INPUT", "Product name cannot be empty")
	}
	return nil
}

// CreatePurchase records a purchase. Quantity may be negative to reverse an
// earlier entry.
func (s *TradeService) CreatePurchase(ctx context.Context, userID, workspaceID int64, req TradeRequest) (*TradeResponse, error) {
	if err := s.requireEditor(ctx, userID, workspaceID); err != nil {
		return nil, err
	}
	if err := validateTrade(req); err != nil {
		return nil, err
	}
	purchase := &record.Purchase{
		WorkspaceEntity:    shared.WorkspaceEntity{WorkspaceID: workspaceID, UserID: userID},
		ProductName:        strings.TrimSpace(req.ProductName),
		Quantity:           req.Quantity,
		PurchaseDate:       req.Date,
		SupplierID:         req.PartyID,
		TotalPurchasePrice: req.TotalPrice,
		Note:               req.Note,
	}
	if err := s.purchaseRepo.Save(ctx, purchase); err != nil {
		return nil, err
	}
	return &TradeResponse{
		ID:          purchase.ID,
		ProductName: purchase.ProductName,
		Quantity:    purchase.Quantity,
		Date:        purchase.PurchaseDate,
		PartyID:     purchase.SupplierID,
		TotalPrice:  purchase.TotalPurchasePrice,
		Note:        purchase.Note,
		CreatedAt:   purchase.CreatedAt,
	}, nil
}

// ListPurchases lists the workspace's purchases
func (s *TradeService) ListPurchases(ctx context.Context, userID, workspaceID int64, q ListQuery) (*shared.Paginated[TradeResponse], error) {
	if _, err := s.requireMember(ctx, userID, workspaceID); err != nil {
		return nil, err
	}
	filter := q.toFilter()
	items, err := s.purchaseRepo.FindAll(ctx, workspaceID, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.purchaseRepo.Count(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	out := make([]TradeResponse, 0, len(items))
	for _, it := range items {
		out = append(out, TradeResponse{
			ID:          it.ID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Date:        it.PurchaseDate,
			PartyID:     it.SupplierID,
			TotalPrice:  it.TotalPurchasePrice,
			Note:        it.Note,
			CreatedAt:   it.CreatedAt,
		})
	}
	page := shared.NewPaginated(out, total, filter.Page, filter.PageSize)
	return &page, nil
}

// DeletePurchase removes a purchase
func (s *TradeService) DeletePurchase(ctx context.Context, userID, workspaceID, id int64) error {
	if err := s.requireEditor(ctx, userID, workspaceID); err != nil {
		return err
	}
	return s.purchaseRepo.Delete(ctx, workspaceID, id)
}

// CreateSale records a sale
func (s *TradeService) CreateSale(ctx context.Context, userID, workspaceID int64, req TradeRequest) (*TradeResponse, error) {
	if err := s.requireEditor(ctx, userID, workspaceID); err != nil {
		return nil, err
	}
	if err := validateTrade(req); err != nil {
		return nil, err
	}
	sale := &record.Sale{
		WorkspaceEntity: shared.WorkspaceEntity{WorkspaceID: workspaceID, UserID: userID},
		ProductName:     strings.TrimSpace(req.ProductName),
		Quantity:        req.Quantity,
		SaleDate:        req.Date,
		CustomerID:      req.PartyID,
		TotalSalePrice:  req.TotalPrice,
		Note:            req.Note,
	}
	if err := s.saleRepo.Save(ctx, sale); err != nil {
		return nil, err
	}
	return &TradeResponse{
		ID:          sale.ID,
		ProductName: sale.ProductName,
		Quantity:    sale.Quantity,
		Date:        sale.SaleDate,
		PartyID:     sale.CustomerID,
		TotalPrice:  sale.TotalSalePrice,
		Note:        sale.Note,
		CreatedAt:   sale.CreatedAt,
	}, nil
}

// ListSales lists the workspace's sales
func (s *TradeService) ListSales(ctx context.Context, userID, workspaceID int64, q ListQuery) (*shared.Paginated[TradeResponse], error) {
	if _, err := s.requireMember(ctx, userID, workspaceID); err != nil {
		return nil, err
	}
	filter := q.toFilter()
	items, err := s.saleRepo.FindAll(ctx, workspaceID, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.saleRepo.Count(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	out := make([]TradeResponse, 0, len(items))
	for _, it := range items {
		out = append(out, TradeResponse{
			ID:          it.ID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Date:        it.SaleDate,
			PartyID:     it.CustomerID,
			TotalPrice:  it.TotalSalePrice,
			Note:        it.Note,
			CreatedAt:   it.CreatedAt,
		})
	}
	page := shared.NewPaginated(out, total, filter.Page, filter.PageSize)
	return &page, nil
}

// DeleteSale removes a sale
func (s *TradeService) DeleteSale(ctx context.Context, userID, workspaceID, id int64) error {
	if err := s.requireEditor(ctx, userID, workspaceID); err != nil {
		return err
	}
	return s.saleRepo.Delete(ctx, workspaceID, id)
}

// CreateReturn records a customer return
func (s *TradeService) CreateReturn(ctx context.Context, userID, workspaceID int64, req TradeRequest) (*TradeResponse, error) {
	if err := s.requireEditor(ctx, userID, workspaceID); err != nil {
		return nil, err
	}
	if err := validateTrade(req); err != nil {
		return nil, err
	}
	ret := &record.Return{
		WorkspaceEntity:  shared.WorkspaceEntity{WorkspaceID: workspaceID, UserID: userID},
		ProductName:      strings.TrimSpace(req.ProductName),
		Quantity:         req.Quantity,
		ReturnDate:       req.Date,
		CustomerID:       req.PartyID,
		TotalReturnPrice: req.TotalPrice,
		Note:             req.Note,
	}
	if err := s.returnRepo.Save(ctx, ret); err != nil {
		return nil, err
	}
	return &TradeResponse{
		ID:          ret.ID,
		ProductName: ret.ProductName,
		Quantity:    ret.Quantity,
		Date:        ret.ReturnDate,
		PartyID:     ret.CustomerID,
		TotalPrice:  ret.TotalReturnPrice,
		Note:        ret.Note,
		CreatedAt:   ret.CreatedAt,
	}, nil
}

// ListReturns lists the workspace's returns
func (s *TradeService) ListReturns(ctx context.Context, userID, workspaceID int64, q ListQuery) (*shared.Paginated[TradeResponse], error) {
	if _, err := s.requireMember(ctx, userID, workspaceID); err != nil {
		return nil, err
	}
	filter := q.toFilter()
	items, err := s.returnRepo.FindAll(ctx, workspaceID, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.returnRepo.Count(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	out := make([]TradeResponse, 0, len(items))
	for _, it := range items {
		out = append(out, TradeResponse{
			ID:          it.ID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Date:        it.ReturnDate,
			PartyID:     it.CustomerID,
			TotalPrice:  it.TotalReturnPrice,
			Note:        it.Note,
			CreatedAt:   it.CreatedAt,
		})
	}
	page := shared.NewPaginated(out, total, filter.Page, filter.PageSize)
	return &page, nil
}

// DeleteReturn removes a return
func (s *TradeService) DeleteReturn(ctx context.Context, userID, workspaceID, id int64) error {
	if err := s.requireEditor(ctx, userID, workspaceID); err != nil {
		return err
	}
	return s.returnRepo.Delete(ctx, workspaceID, id)
}
