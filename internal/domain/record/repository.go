package record

import (
	"context"

	"github.com/shopledger/backend/internal/domain/shared"
)

// Repository is the access contract shared by all nine record kinds. Every
// operation is scoped to one workspace; the store never leaks rows across
// workspace boundaries.
type Repository[T any] interface {
	FindByID(ctx context.Context, workspaceID, id int64) (*T, error)
	FindAll(ctx context.Context, workspaceID int64, filter shared.Filter) ([]T, error)
	Count(ctx context.Context, workspaceID int64) (int64, error)
	Save(ctx context.Context, entity *T) error
	Delete(ctx context.Context, workspaceID, id int64) error
}

// Per-kind repository interfaces. Declared separately so services can depend
// on exactly the kinds they touch and mocks stay small.
type (
	SupplierRepository   interface{ Repository[Supplier] }
	CustomerRepository   interface{ Repository[Customer] }
	EmployeeRepository   interface{ Repository[Employee] }
	ProductRepository    interface{ Repository[Product] }
	PurchaseRepository   interface{ Repository[Purchase] }
	SaleRepository       interface{ Repository[Sale] }
	ReturnRepository     interface{ Repository[Return] }
	IncomeRepository     interface{ Repository[Income] }
	RemittanceRepository interface{ Repository[Remittance] }
)
