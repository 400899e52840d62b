package integration

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopledger/backend/internal/domain/audit"
	"github.com/shopledger/backend/internal/domain/record"
	"github.com/shopledger/backend/internal/domain/snapshot"
	"github.com/shopledger/backend/internal/domain/workspace"
	"github.com/shopledger/backend/internal/infrastructure/persistence"
	"github.com/shopledger/backend/internal/infrastructure/persistence/models"
)

func newLocalStore(tdb *TestDB) *persistence.LocalWorkspaceStore {
	db := &persistence.Database{DB: tdb.DB}
	auditRepo := persistence.NewGormAuditRepository(tdb.DB)
	return persistence.NewLocalWorkspaceStore(db, auditRepo, nil)
}

func createUser(t *testing.T, tdb *TestDB, username string) int64 {
	t.Helper()
	u := models.UserModel{Username: username}
	require.NoError(t, tdb.DB.Create(&u).Error)
	return u.ID
}

func createWorkspace(t *testing.T, tdb *TestDB, ownerID int64, name string) int64 {
	t.Helper()
	ws := models.WorkspaceModel{Name: name, OwnerID: ownerID, StorageType: workspace.StorageLocal}
	require.NoError(t, tdb.DB.Create(&ws).Error)
	return ws.ID
}

func seedSupplier(t *testing.T, tdb *TestDB, workspaceID, userID int64, name string) int64 {
	t.Helper()
	m := models.SupplierModel{Name: name}
	m.WorkspaceID = workspaceID
	m.UserID = userID
	require.NoError(t, tdb.DB.Create(&m).Error)
	return m.ID
}

func seedCustomer(t *testing.T, tdb *TestDB, workspaceID, userID int64, name string) int64 {
	t.Helper()
	m := models.CustomerModel{Name: name}
	m.WorkspaceID = workspaceID
	m.UserID = userID
	require.NoError(t, tdb.DB.Create(&m).Error)
	return m.ID
}

func seedProduct(t *testing.T, tdb *TestDB, workspaceID, userID int64, name string, supplierID *int64) int64 {
	t.Helper()
	m := models.ProductModel{
		Name:       name,
		Stock:      decimal.NewFromInt(100),
		Unit:       record.UnitKg,
		SupplierID: supplierID,
		Version:    1,
	}
	m.WorkspaceID = workspaceID
	m.UserID = userID
	require.NoError(t, tdb.DB.Create(&m).Error)
	return m.ID
}

func actorFor(userID, workspaceID int64) workspace.ActorContext {
	return workspace.ActorContext{
		UserID:      userID,
		Username:    "alice",
		WorkspaceID: workspaceID,
		Role:        workspace.RoleOwner,
	}
}

func TestLocalStore_ExportRestoreRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	tdb := NewTestDB(t)
	store := newLocalStore(tdb)
	ctx := context.Background()

	userID := createUser(t, tdb, "alice")
	sourceID := createWorkspace(t, tdb, userID, "Source Shop")
	targetID := createWorkspace(t, tdb, userID, "Target Shop")

	supplierID := seedSupplier(t, tdb, sourceID, userID, "Acme Trading")
	customerID := seedCustomer(t, tdb, sourceID, userID, "Zhang Wei")
	seedProduct(t, tdb, sourceID, userID, "Rice", &supplierID)

	saleDate := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	sale := models.SaleModel{
		ProductName: "Rice",
		Quantity:    decimal.NewFromInt(5),
		SaleDate:    &saleDate,
		CustomerID:  &customerID,
	}
	sale.WorkspaceID = sourceID
	sale.UserID = userID
	require.NoError(t, tdb.DB.Create(&sale).Error)

	data, err := store.BuildSnapshot(ctx, sourceID)
	require.NoError(t, err)
	require.Len(t, data.Suppliers, 1)
	require.Len(t, data.Customers, 1)
	require.Len(t, data.Products, 1)
	require.Len(t, data.Sales, 1)

	doc := &snapshot.Document{
		ExportInfo: snapshot.ExportInfo{
			Username:      "alice",
			WorkspaceName: "Source Shop",
			WorkspaceID:   sourceID,
			ExportTime:    time.Now(),
			Version:       "1.2.0",
		},
		Data: *data,
	}

	// Pre-populate the target so the wipe has something to remove.
	seedSupplier(t, tdb, targetID, userID, "Old Supplier")

	result, err := store.WipeAndRestore(ctx, actorFor(userID, targetID), doc)
	require.NoError(t, err)
	assert.False(t, result.AuditWriteFailed)
	assert.Equal(t, int64(1), result.BeforeCounts[record.KindSupplier])
	assert.Equal(t, int64(1), result.AfterCounts[record.KindSupplier])
	assert.Equal(t, int64(1), result.AfterCounts[record.KindCustomer])
	assert.Equal(t, int64(1), result.AfterCounts[record.KindProduct])
	assert.Equal(t, int64(1), result.AfterCounts[record.KindSale])

	// The target's supplier got a fresh id and the product follows it.
	var newSupplier models.SupplierModel
	require.NoError(t, tdb.DB.Where("workspace_id = ?", targetID).First(&newSupplier).Error)
	assert.Equal(t, "Acme Trading", newSupplier.Name)
	assert.NotEqual(t, supplierID, newSupplier.ID)

	var newProduct models.ProductModel
	require.NoError(t, tdb.DB.Where("workspace_id = ?", targetID).First(&newProduct).Error)
	require.NotNil(t, newProduct.SupplierID)
	assert.Equal(t, newSupplier.ID, *newProduct.SupplierID)

	var newSale models.SaleModel
	require.NoError(t, tdb.DB.Where("workspace_id = ?", targetID).First(&newSale).Error)
	require.NotNil(t, newSale.CustomerID)
	assert.NotEqual(t, customerID, *newSale.CustomerID)

	// The source workspace is untouched.
	var sourceSuppliers int64
	require.NoError(t, tdb.DB.Model(&models.SupplierModel{}).
		Where("workspace_id = ?", sourceID).Count(&sourceSuppliers).Error)
	assert.Equal(t, int64(1), sourceSuppliers)

	// The restore appended a COVER audit entry for the target.
	var entry models.AuditEntryModel
	require.NoError(t, tdb.DB.Where("workspace_id = ?", targetID).First(&entry).Error)
	assert.Equal(t, audit.OperationCover, entry.OperationType)
	assert.Equal(t, audit.EntityTypeWorkspaceData, entry.EntityType)

	// Restoring the same document again replaces the data with an identical
	// copy: before and after counts match.
	again, err := store.WipeAndRestore(ctx, actorFor(userID, targetID), doc)
	require.NoError(t, err)
	assert.Equal(t, result.AfterCounts, again.BeforeCounts)
	assert.Equal(t, result.AfterCounts, again.AfterCounts)
}

func TestLocalStore_DanglingReferencesNulled(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	tdb := NewTestDB(t)
	store := newLocalStore(tdb)
	ctx := context.Background()

	userID := createUser(t, tdb, "alice")
	workspaceID := createWorkspace(t, tdb, userID, "Main Shop")

	missingSupplier := int64(9999)
	doc := &snapshot.Document{
		ExportInfo: snapshot.ExportInfo{Username: "alice", WorkspaceID: workspaceID},
		Data: snapshot.Data{
			Products: []snapshot.ProductRecord{
				{ID: 1, Name: "Rice", Stock: 10, Unit: "kg", SupplierID: &missingSupplier},
			},
			Purchases: []snapshot.PurchaseRecord{
				{ProductName: "Rice", Quantity: 3, SupplierID: &missingSupplier},
			},
		},
	}

	result, err := store.WipeAndRestore(ctx, actorFor(userID, workspaceID), doc)
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.AfterCounts[record.KindProduct])

	var product models.ProductModel
	require.NoError(t, tdb.DB.Where("workspace_id = ?", workspaceID).First(&product).Error)
	assert.Nil(t, product.SupplierID)

	var purchase models.PurchaseModel
	require.NoError(t, tdb.DB.Where("workspace_id = ?", workspaceID).First(&purchase).Error)
	assert.Nil(t, purchase.SupplierID)
}

func TestLocalStore_NormalizesEnumsOnRestore(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	tdb := NewTestDB(t)
	store := newLocalStore(tdb)
	ctx := context.Background()

	userID := createUser(t, tdb, "alice")
	workspaceID := createWorkspace(t, tdb, userID, "Main Shop")

	doc := &snapshot.Document{
		ExportInfo: snapshot.ExportInfo{Username: "alice", WorkspaceID: workspaceID},
		Data: snapshot.Data{
			Products: []snapshot.ProductRecord{
				{ID: 1, Name: "Rice", Stock: 10, Unit: "litre"},
			},
			Income: []snapshot.IncomeRecord{
				{Amount: 200, PaymentMethod: "cheque"},
			},
		},
	}

	_, err := store.WipeAndRestore(ctx, actorFor(userID, workspaceID), doc)
	require.NoError(t, err)

	var product models.ProductModel
	require.NoError(t, tdb.DB.Where("workspace_id = ?", workspaceID).First(&product).Error)
	assert.Equal(t, record.UnitKg, product.Unit)

	var income models.IncomeModel
	require.NoError(t, tdb.DB.Where("workspace_id = ?", workspaceID).First(&income).Error)
	assert.Equal(t, record.PaymentCash, income.PaymentMethod)
}

func TestWorkspaceRepository_ResolveRole(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	tdb := NewTestDB(t)
	repo := persistence.NewGormWorkspaceRepository(tdb.DB)
	ctx := context.Background()

	ownerID := createUser(t, tdb, "alice")
	memberID := createUser(t, tdb, "bob")
	strangerID := createUser(t, tdb, "carol")
	workspaceID := createWorkspace(t, tdb, ownerID, "Main Shop")

	require.NoError(t, repo.AddMember(ctx, &workspace.Member{
		WorkspaceID: workspaceID,
		UserID:      memberID,
		Role:        workspace.RoleEditor,
	}))

	role, err := repo.ResolveRole(ctx, workspaceID, ownerID)
	require.NoError(t, err)
	assert.Equal(t, workspace.RoleOwner, role)

	role, err = repo.ResolveRole(ctx, workspaceID, memberID)
	require.NoError(t, err)
	assert.Equal(t, workspace.RoleEditor, role)

	_, err = repo.ResolveRole(ctx, workspaceID, strangerID)
	require.Error(t, err)
}
