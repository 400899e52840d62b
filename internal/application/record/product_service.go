package record

import (
	"context"
	"strings"

	"github.com/shopledger/backend/internal/domain/record"
	"github.com/shopledger/backend/internal/domain/shared"
	"github.com/shopledger/backend/internal/domain/workspace"
)

// ProductService handles product operations
type ProductService struct {
	access
	productRepo  record.ProductRepository
	supplierRepo record.SupplierRepository
}

// NewProductService creates a product service
func NewProductService(workspaceRepo workspace.Repository, productRepo record.ProductRepository, supplierRepo record.SupplierRepository) *ProductService {
	return &ProductService{
		access:       access{workspaceRepo: workspaceRepo},
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
	}
}

// Create creates a product in the workspace. A supplier reference, when
// given, must resolve within the same workspace.
func (s *ProductService) Create(ctx context.Context, userID, workspaceID int64, req ProductRequest) (*ProductResponse, error) {
	if err := s.requireEditor(ctx, userID, workspaceID); err != nil {
		return nil, err
	}
	if err := s.checkSupplier(ctx, workspaceID, req.SupplierID); err != nil {
		return nil, err
	}
	product, err := record.NewProduct(workspaceID, userID, req.Name, req.Description, req.Stock, record.ProductUnit(req.Unit), req.SupplierID)
	if err != nil {
		return nil, err
	}
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// Get returns one product
func (s *ProductService) Get(ctx context.Context, userID, workspaceID, id int64) (*ProductResponse, error) {
	if _, err := s.requireMember(ctx, userID, workspaceID); err != nil {
		return nil, err
	}
	product, err := s.productRepo.FindByID(ctx, workspaceID, id)
	if err != nil {
		return nil, err
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// List lists the workspace's products
func (s *ProductService) List(ctx context.Context, userID, workspaceID int64, q ListQuery) (*shared.Paginated[ProductResponse], error) {
	if _, err := s.requireMember(ctx, userID, workspaceID); err != nil {
		return nil, err
	}
	filter := q.toFilter()
	items, err := s.productRepo.FindAll(ctx, workspaceID, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.productRepo.Count(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	out := make([]ProductResponse, 0, len(items))
	for i := range items {
		out = append(out, toProductResponse(&items[i]))
	}
	page := shared.NewPaginated(out, total, filter.Page, filter.PageSize)
	return &page, nil
}

// Update changes a product's fields
func (s *ProductService) Update(ctx context.Context, userID, workspaceID, id int64, req ProductRequest) (*ProductResponse, error) {
	if err := s.requireEditor(ctx, userID, workspaceID); err != nil {
		return nil, err
	}
	product, err := s.productRepo.FindByID(ctx, workspaceID, id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Product name cannot be empty")
	}
	if req.Stock.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Stock cannot be negative")
	}
	if err := s.checkSupplier(ctx, workspaceID, req.SupplierID); err != nil {
		return nil, err
	}

	product.Name = strings.TrimSpace(req.Name)
	product.Description = req.Description
	product.Stock = req.Stock
	product.Unit = record.NormalizeUnit(req.Unit)
	product.SupplierID = req.SupplierID
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// Delete removes a product
func (s *ProductService) Delete(ctx context.Context, userID, workspaceID, id int64) error {
	if err := s.requireEditor(ctx, userID, workspaceID); err != nil {
		return err
	}
	return s.productRepo.Delete(ctx, workspaceID, id)
}

func (s *ProductService) checkSupplier(ctx context.Context, workspaceID int64, supplierID *int64) error {
	if supplierID == nil {
		return nil
	}
	if _, err := s.supplierRepo.FindByID(ctx, workspaceID, *supplierID); err != nil {
		if err == shared.ErrNotFound {
			return shared.NewDomainError("INVALID_INPUT", "Supplier does not exist in this workspace")
		}
		return err
	}
	return nil
}
