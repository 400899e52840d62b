package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/shopledger/backend/internal/domain/record"
	"github.com/shopledger/backend/internal/domain/shared"
)

// newMockGormDB opens a gorm connection over a sqlmock driver so repository
// queries can be asserted without a running database.
func newMockGormDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})
	db, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return db, mock
}

func supplierRows(now time.Time, ids ...int64) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "created_at", "updated_at", "workspace_id", "user_id", "name", "note"})
	for i, id := range ids {
		rows.AddRow(id, now, now, int64(7), int64(11), "Supplier "+string(rune('A'+i)), "")
	}
	return rows
}

func TestGormSupplierRepository_FindByID(t *testing.T) {
	db, mock := newMockGormDB(t)
	repo := NewGormSupplierRepository(db)
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "suppliers" WHERE workspace_id = \$1 AND id = \$2 ORDER BY .* LIMIT .*`).
		WithArgs(int64(7), int64(42), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at", "workspace_id", "user_id", "name", "note"}).
			AddRow(int64(42), now, now, int64(7), int64(11), "Acme Trading", "bulk grain"))

	supplier, err := repo.FindByID(context.Background(), 7, 42)

	require.NoError(t, err)
	assert.Equal(t, int64(42), supplier.ID)
	assert.Equal(t, int64(7), supplier.WorkspaceID)
	assert.Equal(t, "Acme Trading", supplier.Name)
	assert.Equal(t, "bulk grain", supplier.Note)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormSupplierRepository_FindByID_NotFound(t *testing.T) {
	db, mock := newMockGormDB(t)
	repo := NewGormSupplierRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "suppliers" WHERE workspace_id = \$1 AND id = \$2 ORDER BY .* LIMIT .*`).
		WithArgs(int64(7), int64(999), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	supplier, err := repo.FindByID(context.Background(), 7, 999)

	assert.Nil(t, supplier)
	assert.ErrorIs(t, err, shared.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormSupplierRepository_FindAll_DefaultOrder(t *testing.T) {
	db, mock := newMockGormDB(t)
	repo := NewGormSupplierRepository(db)
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "suppliers" WHERE workspace_id = \$1 ORDER BY created_at DESC`).
		WithArgs(int64(7)).
		WillReturnRows(supplierRows(now, 2, 1))

	suppliers, err := repo.FindAll(context.Background(), 7, shared.Filter{})

	require.NoError(t, err)
	require.Len(t, suppliers, 2)
	assert.Equal(t, int64(2), suppliers[0].ID)
	assert.Equal(t, int64(1), suppliers[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormSupplierRepository_FindAll_SearchAndPaging(t *testing.T) {
	db, mock := newMockGormDB(t)
	repo := NewGormSupplierRepository(db)
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "suppliers" WHERE workspace_id = \$1 AND name ILIKE \$2 ORDER BY name ASC LIMIT .*`).
		WithArgs(int64(7), "%acme%", 20).
		WillReturnRows(supplierRows(now, 5))

	suppliers, err := repo.FindAll(context.Background(), 7, shared.Filter{
		Page:     1,
		PageSize: 20,
		OrderBy:  "name",
		OrderDir: "asc",
		Search:   "acme",
	})

	require.NoError(t, err)
	require.Len(t, suppliers, 1)
	assert.Equal(t, int64(5), suppliers[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormSupplierRepository_FindAll_RejectsUnknownSortField(t *testing.T) {
	db, mock := newMockGormDB(t)
	repo := NewGormSupplierRepository(db)

	// "note; DROP TABLE" is not whitelisted, so the order falls back to
	// created_at DESC.
	mock.ExpectQuery(`SELECT \* FROM "suppliers" WHERE workspace_id = \$1 ORDER BY created_at DESC`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindAll(context.Background(), 7, shared.Filter{OrderBy: "note; DROP TABLE"})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormSupplierRepository_Count(t *testing.T) {
	db, mock := newMockGormDB(t)
	repo := NewGormSupplierRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "suppliers" WHERE workspace_id = \$1`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(3)))

	count, err := repo.Count(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormSupplierRepository_Save_InsertAssignsID(t *testing.T) {
	db, mock := newMockGormDB(t)
	repo := NewGormSupplierRepository(db)

	mock.ExpectQuery(`INSERT INTO "suppliers" .* RETURNING "id"`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), int64(7), int64(11), "Acme Trading", "bulk grain").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))

	supplier := &record.Supplier{
		WorkspaceEntity: shared.WorkspaceEntity{WorkspaceID: 7, UserID: 11},
		Name:            "Acme Trading",
		Note:            "bulk grain",
	}
	err := repo.Save(context.Background(), supplier)

	require.NoError(t, err)
	assert.Equal(t, int64(42), supplier.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormSupplierRepository_Save_Update(t *testing.T) {
	db, mock := newMockGormDB(t)
	repo := NewGormSupplierRepository(db)

	mock.ExpectExec(`UPDATE "suppliers" SET .* WHERE "id" = \$7`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), int64(7), int64(11), "Acme Trading Co", "bulk grain", int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	supplier := &record.Supplier{
		WorkspaceEntity: shared.WorkspaceEntity{
			BaseEntity:  shared.BaseEntity{ID: 42, CreatedAt: time.Now(), UpdatedAt: time.Now()},
			WorkspaceID: 7,
			UserID:      11,
		},
		Name: "Acme Trading Co",
		Note: "bulk grain",
	}
	err := repo.Save(context.Background(), supplier)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormSupplierRepository_Delete(t *testing.T) {
	db, mock := newMockGormDB(t)
	repo := NewGormSupplierRepository(db)

	mock.ExpectExec(`DELETE FROM "suppliers" WHERE workspace_id = \$1 AND id = \$2`).
		WithArgs(int64(7), int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Delete(context.Background(), 7, 42)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormSupplierRepository_Delete_NotFound(t *testing.T) {
	db, mock := newMockGormDB(t)
	repo := NewGormSupplierRepository(db)

	mock.ExpectExec(`DELETE FROM "suppliers" WHERE workspace_id = \$1 AND id = \$2`).
		WithArgs(int64(7), int64(999)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 7, 999)

	assert.ErrorIs(t, err, shared.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormProductRepository_FindByID_NullSupplier(t *testing.T) {
	db, mock := newMockGormDB(t)
	repo := NewGormProductRepository(db)
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "products" WHERE workspace_id = \$1 AND id = \$2 ORDER BY .* LIMIT .*`).
		WithArgs(int64(7), int64(8), 1).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "created_at", "updated_at", "workspace_id", "user_id",
			"name", "description", "stock", "unit", "supplier_id", "version",
		}).AddRow(int64(8), now, now, int64(7), int64(11), "Rice", "", "120.5", "kg", nil, 1))

	product, err := repo.FindByID(context.Background(), 7, 8)

	require.NoError(t, err)
	assert.Equal(t, "Rice", product.Name)
	assert.Equal(t, record.UnitKg, product.Unit)
	assert.Nil(t, product.SupplierID)
	assert.Equal(t, "120.5", product.Stock.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}
