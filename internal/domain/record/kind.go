package record

// Kind identifies one of the nine business entity kinds. The string values
// double as the keys of the snapshot document's data section.
type Kind string

const (
	KindSupplier   Kind = "suppliers"
	KindCustomer   Kind = "customers"
	KindEmployee   Kind = "employees"
	KindProduct    Kind = "products"
	KindPurchase   Kind = "purchases"
	KindSale       Kind = "sales"
	KindReturn     Kind = "returns"
	KindIncome     Kind = "income"
	KindRemittance Kind = "remittance"
)

// Kinds lists all nine kinds in wipe-safe parent-first order for inserts.
// The reverse order is the dependency-safe order for deletes.
var Kinds = []Kind{
	KindSupplier,
	KindCustomer,
	KindEmployee,
	KindProduct,
	KindPurchase,
	KindSale,
	KindReturn,
	KindIncome,
	KindRemittance,
}

// WipeOrder lists the kinds children-first, the order rows must be deleted
// in when the store enforces foreign keys.
var WipeOrder = []Kind{
	KindRemittance,
	KindIncome,
	KindReturn,
	KindSale,
	KindPurchase,
	KindProduct,
	KindEmployee,
	KindCustomer,
	KindSupplier,
}

// ValidKind reports whether the name is a recognized entity kind
func ValidKind(k Kind) bool {
	switch k {
	case KindSupplier, KindCustomer, KindEmployee, KindProduct,
		KindPurchase, KindSale, KindReturn, KindIncome, KindRemittance:
		return true
	}
	return false
}
