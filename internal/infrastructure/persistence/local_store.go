package persistence

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/shopledger/backend/internal/domain/audit"
	"github.com/shopledger/backend/internal/domain/record"
	"github.com/shopledger/backend/internal/domain/snapshot"
	"github.com/shopledger/backend/internal/domain/workspace"
	"github.com/shopledger/backend/internal/infrastructure/persistence/models"
)

// LocalWorkspaceStore implements snapshot.WorkspaceStore against the embedded
// database. A restore runs as one transaction: either every row of the
// workspace is replaced by the document's contents or none are.
type LocalWorkspaceStore struct {
	db       *Database
	auditLog audit.Repository
	logger   *zap.Logger
}

// NewLocalWorkspaceStore creates a local store backed by the given database
func NewLocalWorkspaceStore(db *Database, auditLog audit.Repository, logger *zap.Logger) *LocalWorkspaceStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LocalWorkspaceStore{db: db, auditLog: auditLog, logger: logger}
}

// BuildSnapshot gathers every entity of the workspace into wire form. The
// nine kinds are independent reads, so they run concurrently.
func (s *LocalWorkspaceStore) BuildSnapshot(ctx context.Context, workspaceID int64) (*snapshot.Data, error) {
	var data snapshot.Data
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var ms []models.SupplierModel
		if err := s.fetchAll(gctx, workspaceID, &ms); err != nil {
			return fmt.Errorf("suppliers: %w", err)
		}
		data.Suppliers = make([]snapshot.PartyRecord, 0, len(ms))
		for _, m := range ms {
			data.Suppliers = append(data.Suppliers, snapshot.PartyRecord{ID: m.ID, Name: m.Name, Note: m.Note})
		}
		return nil
	})
	g.Go(func() error {
		var ms []models.CustomerModel
		if err := s.fetchAll(gctx, workspaceID, &ms); err != nil {
			return fmt.Errorf("customers: %w", err)
		}
		data.Customers = make([]snapshot.PartyRecord, 0, len(ms))
		for _, m := range ms {
			data.Customers = append(data.Customers, snapshot.PartyRecord{ID: m.ID, Name: m.Name, Note: m.Note})
		}
		return nil
	})
	g.Go(func() error {
		var ms []models.EmployeeModel
		if err := s.fetchAll(gctx, workspaceID, &ms); err != nil {
			return fmt.Errorf("employees: %w", err)
		}
		data.Employees = make([]snapshot.PartyRecord, 0, len(ms))
		for _, m := range ms {
			data.Employees = append(data.Employees, snapshot.PartyRecord{ID: m.ID, Name: m.Name, Note: m.Note})
		}
		return nil
	})
	g.Go(func() error {
		var ms []models.ProductModel
		if err := s.fetchAll(gctx, workspaceID, &ms); err != nil {
			return fmt.Errorf("products: %w", err)
		}
		data.Products = make([]snapshot.ProductRecord, 0, len(ms))
		for _, m := range ms {
			data.Products = append(data.Products, snapshot.ProductRecord{
				ID:          m.ID,
				Name:        m.Name,
				Description: m.Description,
				Stock:       m.Stock.InexactFloat64(),
				Unit:        string(m.Unit),
				SupplierID:  m.SupplierID,
			})
		}
		return nil
	})
	g.Go(func() error {
		var ms []models.PurchaseModel
		if err := s.fetchAll(gctx, workspaceID, &ms); err != nil {
			return fmt.Errorf("purchases: %w", err)
		}
		data.Purchases = make([]snapshot.PurchaseRecord, 0, len(ms))
		for _, m := range ms {
			data.Purchases = append(data.Purchases, snapshot.PurchaseRecord{
				ProductName:        m.ProductName,
				Quantity:           m.Quantity.InexactFloat64(),
				PurchaseDate:       m.PurchaseDate,
				SupplierID:         m.SupplierID,
				TotalPurchasePrice: decimalPtrToFloat(m.TotalPurchasePrice),
				Note:               m.Note,
			})
		}
		return nil
	})
	g.Go(func() error {
		var ms []models.SaleModel
		if err := s.fetchAll(gctx, workspaceID, &ms); err != nil {
			return fmt.Errorf("sales: %w", err)
		}
		data.Sales = make([]snapshot.SaleRecord, 0, len(ms))
		for _, m := range ms {
			data.Sales = append(data.Sales, snapshot.SaleRecord{
				ProductName:    m.ProductName,
				Quantity:       m.Quantity.InexactFloat64(),
				SaleDate:       m.SaleDate,
				CustomerID:     m.CustomerID,
				TotalSalePrice: decimalPtrToFloat(m.TotalSalePrice),
				Note:           m.Note,
			})
		}
		return nil
	})
	g.Go(func() error {
		var ms []models.ReturnModel
		if err := s.fetchAll(gctx, workspaceID, &ms); err != nil {
			return fmt.Errorf("returns: %w", err)
		}
		data.Returns = make([]snapshot.ReturnRecord, 0, len(ms))
		for _, m := range ms {
			data.Returns = append(data.Returns, snapshot.ReturnRecord{
				ProductName:      m.ProductName,
				Quantity:         m.Quantity.InexactFloat64(),
				ReturnDate:       m.ReturnDate,
				CustomerID:       m.CustomerID,
				TotalReturnPrice: decimalPtrToFloat(m.TotalReturnPrice),
				Note:             m.Note,
			})
		}
		return nil
	})
	g.Go(func() error {
		var ms []models.IncomeModel
		if err := s.fetchAll(gctx, workspaceID, &ms); err != nil {
			return fmt.Errorf("income: %w", err)
		}
		data.Income = make([]snapshot.IncomeRecord, 0, len(ms))
		for _, m := range ms {
			discount := m.Discount.InexactFloat64()
			data.Income = append(data.Income, snapshot.IncomeRecord{
				IncomeDate:    m.IncomeDate,
				CustomerID:    m.CustomerID,
				Amount:        m.Amount.InexactFloat64(),
				Discount:      &discount,
				EmployeeID:    m.EmployeeID,
				PaymentMethod: string(m.PaymentMethod),
				Note:          m.Note,
			})
		}
		return nil
	})
	g.Go(func() error {
		var ms []models.RemittanceModel
		if err := s.fetchAll(gctx, workspaceID, &ms); err != nil {
			return fmt.Errorf("remittance: %w", err)
		}
		data.Remittance = make([]snapshot.RemittanceRecord, 0, len(ms))
		for _, m := range ms {
			data.Remittance = append(data.Remittance, snapshot.RemittanceRecord{
				RemittanceDate: m.RemittanceDate,
				SupplierID:     m.SupplierID,
				Amount:         m.Amount.InexactFloat64(),
				EmployeeID:     m.EmployeeID,
				PaymentMethod:  string(m.PaymentMethod),
				Note:           m.Note,
			})
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &data, nil
}

func (s *LocalWorkspaceStore) fetchAll(ctx context.Context, workspaceID int64, dest interface{}) error {
	return s.db.DB.WithContext(ctx).
		Where("workspace_id = ?", workspaceID).
		Order("id ASC").
		Find(dest).Error
}

// WipeAndRestore atomically replaces the workspace's business data with the
// document's contents. Deletes run children-first, inserts parents-first;
// snapshot-time ids of suppliers, customers, employees and products are
// remapped onto the freshly assigned ids, and references to entities absent
// from the snapshot are nulled rather than rejected.
//
// The audit entry is appended after the commit: a restore that succeeded
// must not be undone because the log write failed.
func (s *LocalWorkspaceStore) WipeAndRestore(ctx context.Context, actor workspace.ActorContext, doc *snapshot.Document) (*snapshot.RestoreResult, error) {
	workspaceID := actor.WorkspaceID
	result := &snapshot.RestoreResult{}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		tx = tx.WithContext(ctx)

		before, err := countWorkspace(tx, workspaceID)
		if err != nil {
			return fmt.Errorf("pre-count: %w", err)
		}
		result.BeforeCounts = before

		if err := wipeWorkspace(tx, workspaceID); err != nil {
			return err
		}

		remapper := snapshot.NewIdentityRemapper()
		if err := insertParties(tx, workspaceID, actor.UserID, doc.Data, remapper); err != nil {
			return err
		}
		if err := insertProducts(tx, workspaceID, actor.UserID, doc.Data.Products, remapper); err != nil {
			return err
		}
		if err := insertTrades(tx, workspaceID, actor.UserID, doc.Data, remapper); err != nil {
			return err
		}
		if err := insertFinance(tx, workspaceID, actor.UserID, doc.Data, remapper); err != nil {
			return err
		}

		after, err := countWorkspace(tx, workspaceID)
		if err != nil {
			return fmt.Errorf("post-count: %w", err)
		}
		result.AfterCounts = after
		return nil
	})
	if err != nil {
		return nil, err
	}

	entry := audit.NewRestoreEntry(actor, result.BeforeCounts, result.AfterCounts)
	if err := s.auditLog.Append(ctx, entry); err != nil {
		s.logger.Warn("restore committed but audit entry could not be written",
			zap.Int64("workspace_id", workspaceID),
			zap.Error(err))
		result.AuditWriteFailed = true
	}

	s.logger.Info("workspace restored from snapshot",
		zap.Int64("workspace_id", workspaceID),
		zap.Int64("user_id", actor.UserID),
		zap.Int64("rows_before", result.BeforeCounts.Total()),
		zap.Int64("rows_after", result.AfterCounts.Total()))
	return result, nil
}

// countWorkspace counts the rows of every kind within one workspace
func countWorkspace(tx *gorm.DB, workspaceID int64) (snapshot.Counts, error) {
	counts := make(snapshot.Counts, len(record.Kinds))
	for _, kind := range record.Kinds {
		var n int64
		if err := tx.Model(modelForKind(kind)).
			Where("workspace_id = ?", workspaceID).
			Count(&n).Error; err != nil {
			return nil, err
		}
		counts[kind] = n
	}
	return counts, nil
}

// wipeWorkspace deletes every row of the workspace, children before parents
func wipeWorkspace(tx *gorm.DB, workspaceID int64) error {
	for _, kind := range record.WipeOrder {
		if err := tx.Where("workspace_id = ?", workspaceID).
			Delete(modelForKind(kind)).Error; err != nil {
			return fmt.Errorf("wipe %s: %w", kind, err)
		}
	}
	return nil
}

func modelForKind(kind record.Kind) interface{} {
	switch kind {
	case record.KindSupplier:
		return &models.SupplierModel{}
	case record.KindCustomer:
		return &models.CustomerModel{}
	case record.KindEmployee:
		return &models.EmployeeModel{}
	case record.KindProduct:
		return &models.ProductModel{}
	case record.KindPurchase:
		return &models.PurchaseModel{}
	case record.KindSale:
		return &models.SaleModel{}
	case record.KindReturn:
		return &models.ReturnModel{}
	case record.KindIncome:
		return &models.IncomeModel{}
	case record.KindRemittance:
		return &models.RemittanceModel{}
	}
	panic(fmt.Sprintf("unknown record kind %q", kind))
}

// insertParties inserts suppliers, customers and employees, recording the
// old-to-new id mapping as each row comes back with its assigned id.
func insertParties(tx *gorm.DB, workspaceID, userID int64, data snapshot.Data, remapper *snapshot.IdentityRemapper) error {
	for _, rec := range data.Suppliers {
		m := models.SupplierModel{Name: rec.Name, Note: rec.Note}
		m.WorkspaceID = workspaceID
		m.UserID = userID
		if err := tx.Create(&m).Error; err != nil {
			return fmt.Errorf("insert supplier %q: %w", rec.Name, err)
		}
		remapper.Record(record.KindSupplier, rec.ID, m.ID)
	}
	for _, rec := range data.Customers {
		m := models.CustomerModel{Name: rec.Name, Note: rec.Note}
		m.WorkspaceID = workspaceID
		m.UserID = userID
		if err := tx.Create(&m).Error; err != nil {
			return fmt.Errorf("insert customer %q: %w", rec.Name, err)
		}
		remapper.Record(record.KindCustomer, rec.ID, m.ID)
	}
	for _, rec := range data.Employees {
		m := models.EmployeeModel{Name: rec.Name, Note: rec.Note}
		m.WorkspaceID = workspaceID
		m.UserID = userID
		if err := tx.Create(&m).Error; err != nil {
			return fmt.Errorf("insert employee %q: %w", rec.Name, err)
		}
		remapper.Record(record.KindEmployee, rec.ID, m.ID)
	}
	return nil
}

// insertProducts inserts products with supplier references remapped and
// units normalized onto the allowed set.
func insertProducts(tx *gorm.DB, workspaceID, userID int64, products []snapshot.ProductRecord, remapper *snapshot.IdentityRemapper) error {
	for _, rec := range products {
		m := models.ProductModel{
			Name:        rec.Name,
			Description: rec.Description,
			Stock:       decimal.NewFromFloat(rec.Stock),
			Unit:        record.NormalizeUnit(rec.Unit),
			SupplierID:  remapper.Resolve(record.KindSupplier, rec.SupplierID),
			Version:     1,
		}
		m.WorkspaceID = workspaceID
		m.UserID = userID
		if err := tx.Create(&m).Error; err != nil {
			return fmt.Errorf("insert product %q: %w", rec.Name, err)
		}
		remapper.Record(record.KindProduct, rec.ID, m.ID)
	}
	return nil
}

// insertTrades inserts purchases, sales and returns with their party
// references remapped. Products are referenced by name, so no product
// remapping is involved.
func insertTrades(tx *gorm.DB, workspaceID, userID int64, data snapshot.Data, remapper *snapshot.IdentityRemapper) error {
	for _, rec := range data.Purchases {
		m := models.PurchaseModel{
			ProductName:        rec.ProductName,
			Quantity:           decimal.NewFromFloat(rec.Quantity),
			PurchaseDate:       rec.PurchaseDate,
			SupplierID:         remapper.Resolve(record.KindSupplier, rec.SupplierID),
			TotalPurchasePrice: floatPtrToDecimal(rec.TotalPurchasePrice),
			Note:               rec.Note,
		}
		m.WorkspaceID = workspaceID
		m.UserID = userID
		if err := tx.Create(&m).Error; err != nil {
			return fmt.Errorf("insert purchase of %q: %w", rec.ProductName, err)
		}
	}
	for _, rec := range data.Sales {
		m := models.SaleModel{
			ProductName:    rec.ProductName,
			Quantity:       decimal.NewFromFloat(rec.Quantity),
			SaleDate:       rec.SaleDate,
			CustomerID:     remapper.Resolve(record.KindCustomer, rec.CustomerID),
			TotalSalePrice: floatPtrToDecimal(rec.TotalSalePrice),
			Note:           rec.Note,
		}
		m.WorkspaceID = workspaceID
		m.UserID = userID
		if err := tx.Create(&m).Error; err != nil {
			return fmt.Errorf("insert sale of %q: %w", rec.ProductName, err)
		}
	}
	for _, rec := range data.Returns {
		m := models.ReturnModel{
			ProductName:      rec.ProductName,
			Quantity:         decimal.NewFromFloat(rec.Quantity),
			ReturnDate:       rec.ReturnDate,
			CustomerID:       remapper.Resolve(record.KindCustomer, rec.CustomerID),
			TotalReturnPrice: floatPtrToDecimal(rec.TotalReturnPrice),
			Note:             rec.Note,
		}
		m.WorkspaceID = workspaceID
		m.UserID = userID
		if err := tx.Create(&m).Error; err != nil {
			return fmt.Errorf("insert return of %q: %w", rec.ProductName, err)
		}
	}
	return nil
}

// insertFinance inserts income and remittance rows with party and employee
// references remapped and payment methods normalized.
func insertFinance(tx *gorm.DB, workspaceID, userID int64, data snapshot.Data, remapper *snapshot.IdentityRemapper) error {
	for _, rec := range data.Income {
		discount := decimal.Zero
		if rec.Discount != nil {
			discount = decimal.NewFromFloat(*rec.Discount)
		}
		m := models.IncomeModel{
			IncomeDate:    rec.IncomeDate,
			CustomerID:    remapper.Resolve(record.KindCustomer, rec.CustomerID),
			Amount:        decimal.NewFromFloat(rec.Amount),
			Discount:      discount,
			EmployeeID:    remapper.Resolve(record.KindEmployee, rec.EmployeeID),
			PaymentMethod: record.NormalizePaymentMethod(rec.PaymentMethod),
			Note:          rec.Note,
		}
		m.WorkspaceID = workspaceID
		m.UserID = userID
		if err := tx.Create(&m).Error; err != nil {
			return fmt.Errorf("insert income: %w", err)
		}
	}
	for _, rec := range data.Remittance {
		m := models.RemittanceModel{
			RemittanceDate: rec.RemittanceDate,
			SupplierID:     remapper.Resolve(record.KindSupplier, rec.SupplierID),
			Amount:         decimal.NewFromFloat(rec.Amount),
			EmployeeID:     remapper.Resolve(record.KindEmployee, rec.EmployeeID),
			PaymentMethod:  record.NormalizePaymentMethod(rec.PaymentMethod),
			Note:           rec.Note,
		}
		m.WorkspaceID = workspaceID
		m.UserID = userID
		if err := tx.Create(&m).Error; err != nil {
			return fmt.Errorf("insert remittance: %w", err)
		}
	}
	return nil
}

func decimalPtrToFloat(d *decimal.Decimal) *float64 {
	if d == nil {
		return nil
	}
	f := d.InexactFloat64()
	return &f
}

func floatPtrToDecimal(f *float64) *decimal.Decimal {
	if f == nil {
		return nil
	}
	d := decimal.NewFromFloat(*f)
	return &d
}
