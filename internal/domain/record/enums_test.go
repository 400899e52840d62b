package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeUnit(t *testing.T) {
	assert.Equal(t, UnitJin, NormalizeUnit("jin"))
	assert.Equal(t, UnitKg, NormalizeUnit("kg"))
	assert.Equal(t, UnitBag, NormalizeUnit("bag"))

	assert.Equal(t, DefaultUnit, NormalizeUnit(""))
	assert.Equal(t, DefaultUnit, NormalizeUnit("litre"))
	assert.Equal(t, DefaultUnit, NormalizeUnit("KG"))
}

func TestNormalizePaymentMethod(t *testing.T) {
	assert.Equal(t, PaymentCash, NormalizePaymentMethod("cash"))
	assert.Equal(t, PaymentBankCard, NormalizePaymentMethod("bank_card"))
	assert.Equal(t, PaymentMobileTransfer, NormalizePaymentMethod("mobile_transfer"))
	assert.Equal(t, PaymentOtherWallet, NormalizePaymentMethod("other_wallet"))

	assert.Equal(t, DefaultPaymentMethod, NormalizePaymentMethod(""))
	assert.Equal(t, DefaultPaymentMethod, NormalizePaymentMethod("cheque"))
}

func TestWipeOrderIsReverseOfKinds(t *testing.T) {
	assert.Len(t, WipeOrder, len(Kinds))
	for i, k := range Kinds {
		assert.Equal(t, k, WipeOrder[len(WipeOrder)-1-i])
	}
}

func TestValidKind(t *testing.T) {
	for _, k := range Kinds {
		assert.True(t, ValidKind(k))
	}
	assert.False(t, ValidKind(Kind("invoices")))
	assert.False(t, ValidKind(Kind("")))
}
