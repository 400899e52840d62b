package record

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/shopledger/backend/internal/domain/record"
	"github.com/shopledger/backend/internal/domain/shared"
	"github.com/shopledger/backend/internal/domain/workspace"
)

func newProductFixture() (*ProductService, *MockWorkspaceRepository, *MockRepository[record.Product], *MockRepository[record.Supplier]) {
	workspaceRepo := new(MockWorkspaceRepository)
	productRepo := new(MockRepository[record.Product])
	supplierRepo := new(MockRepository[record.Supplier])
	svc := NewProductService(workspaceRepo, productRepo, supplierRepo)
	return svc, workspaceRepo, productRepo, supplierRepo
}

func TestProductService_Create_Success(t *testing.T) {
	svc, workspaceRepo, productRepo, _ := newProductFixture()
	grantRole(workspaceRepo, workspace.RoleEditor)

	productRepo.On("Save", mock.Anything, mock.MatchedBy(func(p *record.Product) bool {
		return p.Name == "Rice" && p.Unit == record.UnitKg && p.Version == 1
	})).Return(nil)

	resp, err := svc.Create(context.Background(), testUserID, testWorkspaceID, ProductRequest{
		Name:  "Rice",
		Stock: decimal.NewFromInt(100),
		Unit:  "kg",
	})

	require.NoError(t, err)
	assert.Equal(t, "kg", resp.Unit)
	productRepo.AssertExpectations(t)
}

func TestProductService_Create_UnknownUnitDefaulted(t *testing.T) {
	svc, workspaceRepo, productRepo, _ := newProductFixture()
	grantRole(workspaceRepo, workspace.RoleEditor)

	productRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

	resp, err := svc.Create(context.Background(), testUserID, testWorkspaceID, ProductRequest{
		Name: "Rice",
		Unit: "litre",
	})

	require.NoError(t, err)
	assert.Equal(t, "kg", resp.Unit)
}

func TestProductService_Create_SupplierMustExistInWorkspace(t *testing.T) {
	svc, workspaceRepo, productRepo, supplierRepo := newProductFixture()
	grantRole(workspaceRepo, workspace.RoleEditor)
	supplierID := int64(42)

	supplierRepo.On("FindByID", mock.Anything, testWorkspaceID, supplierID).
		Return(nil, shared.ErrNotFound)

	_, err := svc.Create(context.Background(), testUserID, testWorkspaceID, ProductRequest{
		Name:       "Rice",
		SupplierID: &supplierID,
	})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_INPUT", domainErr.Code)
	productRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestProductService_Create_NegativeStock(t *testing.T) {
	svc, workspaceRepo, productRepo, _ := newProductFixture()
	grantRole(workspaceRepo, workspace.RoleOwner)

	_, err := svc.Create(context.Background(), testUserID, testWorkspaceID, ProductRequest{
		Name:  "Rice",
		Stock: decimal.NewFromInt(-1),
	})

	require.Error(t, err)
	productRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestProductService_Update_Success(t *testing.T) {
	svc, workspaceRepo, productRepo, supplierRepo := newProductFixture()
	grantRole(workspaceRepo, workspace.RoleEditor)
	supplierID := int64(42)

	existing := &record.Product{Name: "Rice", Unit: record.UnitKg, Version: 1}
	existing.ID = 8
	existing.WorkspaceID = testWorkspaceID
	productRepo.On("FindByID", mock.Anything, testWorkspaceID, int64(8)).Return(existing, nil)
	supplier := &record.Supplier{Name: "Acme Trading"}
	supplier.ID = supplierID
	supplierRepo.On("FindByID", mock.Anything, testWorkspaceID, supplierID).Return(supplier, nil)
	productRepo.On("Save", mock.Anything, mock.MatchedBy(func(p *record.Product) bool {
		return p.Name == "Brown Rice" && p.Unit == record.UnitBag && p.SupplierID != nil
	})).Return(nil)

	resp, err := svc.Update(context.Background(), testUserID, testWorkspaceID, 8, ProductRequest{
		Name:       "Brown Rice",
		Stock:      decimal.NewFromInt(50),
		Unit:       "bag",
		SupplierID: &supplierID,
	})

	require.NoError(t, err)
	assert.Equal(t, "Brown Rice", resp.Name)
	assert.Equal(t, "bag", resp.Unit)
	productRepo.AssertExpectations(t)
}

func TestProductService_Get_NoAccess(t *testing.T) {
	svc, workspaceRepo, productRepo, _ := newProductFixture()
	denyAccess(workspaceRepo)

	_, err := svc.Get(context.Background(), testUserID, testWorkspaceID, 8)

	assert.ErrorIs(t, err, shared.ErrPermissionDenied)
	productRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything, mock.Anything)
}

func TestProductService_Delete_ViewerDenied(t *testing.T) {
	svc, workspaceRepo, productRepo, _ := newProductFixture()
	grantRole(workspaceRepo, workspace.RoleViewer)

	err := svc.Delete(context.Background(), testUserID, testWorkspaceID, 8)

	assert.ErrorIs(t, err, shared.ErrPermissionDenied)
	productRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
}
