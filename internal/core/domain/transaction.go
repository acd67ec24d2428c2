package domain

// TransactionCategory classifies a ledger transaction. Every category except
// CategoryCapitalInjection is an operating expense; capital injections are
// money put into the pool directly.
type TransactionCategory string

const (
	CategoryMarketing        TransactionCategory = "marketing"
	CategoryPackaging        TransactionCategory = "packaging"
	CategoryFruitStock       TransactionCategory = "fruit_stock"
	CategoryLogistics        TransactionCategory = "logistics"
	CategoryFoodMisc         TransactionCategory = "food_misc"
	CategoryCapitalInjection TransactionCategory = "capital_injection"
)

// TransactionCategories lists all valid categories.
var TransactionCategories = []TransactionCategory{
	CategoryMarketing,
	CategoryPackaging,
	CategoryFruitStock,
	CategoryLogistics,
	CategoryFoodMisc,
	CategoryCapitalInjection,
}

// IsValid reports whether the category is part of the closed enumeration.
func (c TransactionCategory) IsValid() bool {
	switch c {
	case CategoryMarketing, CategoryPackaging, CategoryFruitStock,
		CategoryLogistics, CategoryFoodMisc, CategoryCapitalInjection:
		return true
	}
	return false
}

// IsExpense reports whether the category counts toward total expenses.
// Capital injections are contributions only, never expenses.
func (c TransactionCategory) IsExpense() bool {
	return c != CategoryCapitalInjection
}

// Transaction is a single row of the append-only partnership ledger: either a
// capital injection or an expense a partner paid out of pocket. Amounts are in
// the smallest currency unit. Transactions are never updated or deleted.
//
// Every transaction, expenses included, also counts as capital contributed by
// the owning partner; out-of-pocket payments are contributions to the pool.
type Transaction struct {
	TransactionID string              `json:"transactionID"` // Primary Key (UUID)
	PartnerID     string              `json:"partnerID"`     // FK -> Partner.partnerID
	Amount        int64               `json:"amount"`        // Positive, smallest currency unit
	Category      TransactionCategory `json:"category"`
	Description   string              `json:"description"`          // Non-empty
	ReceiptURL    *string             `json:"receiptURL,omitempty"` // Optional reference into object storage
	AuditFields
}
