package record

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopledger/backend/internal/domain/shared"
)

func TestNewProduct(t *testing.T) {
	p, err := NewProduct(7, 11, "  Rice  ", "long grain", decimal.NewFromInt(100), "jin", nil)

	require.NoError(t, err)
	assert.Equal(t, "Rice", p.Name)
	assert.Equal(t, UnitJin, p.Unit)
	assert.Equal(t, 1, p.Version)
	assert.Nil(t, p.SupplierID)
}

func TestNewProduct_UnknownUnitDefaulted(t *testing.T) {
	p, err := NewProduct(7, 11, "Rice", "", decimal.Zero, "crate", nil)

	require.NoError(t, err)
	assert.Equal(t, UnitKg, p.Unit)
}

func TestNewProduct_Invalid(t *testing.T) {
	_, err := NewProduct(7, 11, "   ", "", decimal.Zero, "kg", nil)
	require.Error(t, err)

	_, err = NewProduct(7, 11, "Rice", "", decimal.NewFromInt(-5), "kg", nil)
	require.Error(t, err)
}

func TestProduct_AdjustStock(t *testing.T) {
	p, err := NewProduct(7, 11, "Rice", "", decimal.NewFromInt(10), "kg", nil)
	require.NoError(t, err)

	require.NoError(t, p.AdjustStock(decimal.NewFromInt(5), 1))
	assert.Equal(t, "15", p.Stock.String())
	assert.Equal(t, 2, p.Version)
}

func TestProduct_AdjustStock_VersionConflict(t *testing.T) {
	p, err := NewProduct(7, 11, "Rice", "", decimal.NewFromInt(10), "kg", nil)
	require.NoError(t, err)

	err = p.AdjustStock(decimal.NewFromInt(5), 2)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "CONCURRENCY_CONFLICT", domainErr.Code)
	assert.Equal(t, 1, p.Version)
}

func TestProduct_AdjustStock_CannotGoNegative(t *testing.T) {
	p, err := NewProduct(7, 11, "Rice", "", decimal.NewFromInt(10), "kg", nil)
	require.NoError(t, err)

	err = p.AdjustStock(decimal.NewFromInt(-11), 1)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INSUFFICIENT_STOCK", domainErr.Code)
	assert.Equal(t, "10", p.Stock.String())
}
