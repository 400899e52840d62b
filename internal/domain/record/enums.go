package record

// ProductUnit is the unit a product's stock is counted in.
type ProductUnit string

const (
	UnitJin ProductUnit = "jin" // half-kilogram weight unit
	UnitKg  ProductUnit = "kg"
	UnitBag ProductUnit = "bag"
)

// DefaultUnit is substituted when an imported unit is missing or unrecognized.
const DefaultUnit = UnitKg

// NormalizeUnit maps an arbitrary unit string onto one of the three allowed
// values, falling back to the default weight unit.
func NormalizeUnit(v string) ProductUnit {
	switch ProductUnit(v) {
	case UnitJin, UnitKg, UnitBag:
		return ProductUnit(v)
	default:
		return DefaultUnit
	}
}

// PaymentMethod is how an income or remittance was settled.
type PaymentMethod string

const (
	PaymentCash           PaymentMethod = "cash"
	PaymentBankCard       PaymentMethod = "bank_card"
	PaymentMobileTransfer PaymentMethod = "mobile_transfer"
	PaymentOtherWallet    PaymentMethod = "other_wallet"
)

// DefaultPaymentMethod is substituted when an imported payment method is
// missing or unrecognized.
const DefaultPaymentMethod = PaymentCash

// NormalizePaymentMethod maps an arbitrary payment string onto one of the
// recognized values, falling back to cash.
func NormalizePaymentMethod(v string) PaymentMethod {
	switch PaymentMethod(v) {
	case PaymentCash, PaymentBankCard, PaymentMobileTransfer, PaymentOtherWallet:
		return PaymentMethod(v)
	default:
		return DefaultPaymentMethod
	}
}
