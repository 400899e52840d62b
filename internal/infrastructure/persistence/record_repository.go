package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/shopledger/backend/internal/domain/record"
	"github.com/shopledger/backend/internal/domain/shared"
	"github.com/shopledger/backend/internal/infrastructure/persistence/models"
)

// recordModel is the mapping contract every record persistence model
// satisfies through its pointer type.
type recordModel[D any] interface {
	ToDomain() *D
	FromDomain(d *D)
}

// GormRecordRepository implements record.Repository[D] for one record kind.
// D is the domain entity, M the persistence model; *M must map both ways.
// All nine record kinds share the same workspace-scoped access pattern, so
// one implementation serves them all.
type GormRecordRepository[D any, M any, PM interface {
	*M
	recordModel[D]
}] struct {
	db           *gorm.DB
	sortFields   map[string]bool
	searchColumn string
}

func newGormRecordRepository[D any, M any, PM interface {
	*M
	recordModel[D]
}](db *gorm.DB, sortFields map[string]bool, searchColumn string) *GormRecordRepository[D, M, PM] {
	return &GormRecordRepository[D, M, PM]{
		db:           db,
		sortFields:   sortFields,
		searchColumn: searchColumn,
	}
}

// FindByID finds a record by id within a workspace
func (r *GormRecordRepository[D, M, PM]) FindByID(ctx context.Context, workspaceID, id int64) (*D, error) {
	var m M
	if err := r.db.WithContext(ctx).
		Where("workspace_id = ? AND id = ?", workspaceID, id).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return PM(&m).ToDomain(), nil
}

// FindAll finds all records in a workspace matching the filter
func (r *GormRecordRepository[D, M, PM]) FindAll(ctx context.Context, workspaceID int64, filter shared.Filter) ([]D, error) {
	var ms []M
	query := r.db.WithContext(ctx).Model(new(M)).Where("workspace_id = ?", workspaceID)
	query = r.applyFilter(query, filter)

	if err := query.Find(&ms).Error; err != nil {
		return nil, err
	}

	out := make([]D, 0, len(ms))
	for i := range ms {
		out = append(out, *PM(&ms[i]).ToDomain())
	}
	return out, nil
}

// Count counts all records in a workspace
func (r *GormRecordRepository[D, M, PM]) Count(ctx context.Context, workspaceID int64) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(new(M)).
		Where("workspace_id = ?", workspaceID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save inserts the record when its id is zero, updates it otherwise.
// The store-assigned id is written back into the domain entity.
func (r *GormRecordRepository[D, M, PM]) Save(ctx context.Context, entity *D) error {
	var m M
	PM(&m).FromDomain(entity)
	if err := r.db.WithContext(ctx).Save(&m).Error; err != nil {
		return err
	}
	*entity = *PM(&m).ToDomain()
	return nil
}

// Delete removes a record by id within a workspace
func (r *GormRecordRepository[D, M, PM]) Delete(ctx context.Context, workspaceID, id int64) error {
	result := r.db.WithContext(ctx).
		Where("workspace_id = ? AND id = ?", workspaceID, id).
		Delete(new(M))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *GormRecordRepository[D, M, PM]) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" && r.searchColumn != "" {
		query = query.Where(r.searchColumn+" ILIKE ?", "%"+filter.Search+"%")
	}

	orderBy := ValidateSortField(filter.OrderBy, r.sortFields, "created_at")
	orderDir := ValidateSortOrder(filter.OrderDir)
	query = query.Order(fmt.Sprintf("%s %s", orderBy, orderDir))

	if filter.PageSize > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		query = query.Offset((page - 1) * filter.PageSize).Limit(filter.PageSize)
	}
	return query
}

// NewGormSupplierRepository creates the supplier repository
func NewGormSupplierRepository(db *gorm.DB) record.SupplierRepository {
	return newGormRecordRepository[record.Supplier, models.SupplierModel](db, PartySortFields, "name")
}

// NewGormCustomerRepository creates the customer repository
func NewGormCustomerRepository(db *gorm.DB) record.CustomerRepository {
	return newGormRecordRepository[record.Customer, models.CustomerModel](db, PartySortFields, "name")
}

// NewGormEmployeeRepository creates the employee repository
func NewGormEmployeeRepository(db *gorm.DB) record.EmployeeRepository {
	return newGormRecordRepository[record.Employee, models.EmployeeModel](db, PartySortFields, "name")
}

// NewGormProductRepository creates the product repository
func NewGormProductRepository(db *gorm.DB) record.ProductRepository {
	return newGormRecordRepository[record.Product, models.ProductModel](db, ProductSortFields, "name")
}

// NewGormPurchaseRepository creates the purchase repository
func NewGormPurchaseRepository(db *gorm.DB) record.PurchaseRepository {
	return newGormRecordRepository[record.Purchase, models.PurchaseModel](db, PurchaseSortFields, "product_name")
}

// NewGormSaleRepository creates the sale repository
func NewGormSaleRepository(db *gorm.DB) record.SaleRepository {
	return newGormRecordRepository[record.Sale, models.SaleModel](db, SaleSortFields, "product_name")
}

// NewGormReturnRepository creates the return repository
func NewGormReturnRepository(db *gorm.DB) record.ReturnRepository {
	return newGormRecordRepository[record.Return, models.ReturnModel](db, ReturnSortFields, "product_name")
}

// NewGormIncomeRepository creates the income repository
func NewGormIncomeRepository(db *gorm.DB) record.IncomeRepository {
	return newGormRecordRepository[record.Income, models.IncomeModel](db, IncomeSortFields, "note")
}

// NewGormRemittanceRepository creates the remittance repository
func NewGormRemittanceRepository(db *gorm.DB) record.RemittanceRepository {
	return newGormRecordRepository[record.Remittance, models.RemittanceModel](db, RemittanceSortFields, "note")
}
