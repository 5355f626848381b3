package accounting

import "time"

type EntryType string

const (
	EntryDebit  EntryType = "debit"
	EntryCredit EntryType = "credit"
)

const (
	AccountIncome    = "income"
	AccountExpense   = "expense"
	AccountAsset     = "asset"
	AccountLiability = "liability"
)

type Cheque struct {
	ID        string    `json:"id"`
	Number    string    `json:"number"`
	Payee     string    `json:"payee"`
	Amount    float64   `json:"amount"`
	Memo      string    `json:"memo,omitempty"`
	Date      time.Time `json:"date"`
	Cleared   bool      `json:"cleared"`
	CreatedAt time.Time `json:"createdAt"`
}

type Deposit struct {
	ID        string    `json:"id"`
	Account   string    `json:"account"`
	Source    string    `json:"source"`
	Amount    float64   `json:"amount"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
}

type Payment struct {
	ID        string    `json:"id"`
	Vendor    string    `json:"vendor"`
	Method    string    `json:"method"`
	Amount    float64   `json:"amount"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
}

type Receipt struct {
	ID        string    `json:"id"`
	Customer  string    `json:"customer"`
	Amount    float64   `json:"amount"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
}

type PettyCashEntry struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Type        EntryType `json:"type"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"createdAt"`
}

type UtilityBill struct {
	ID        string    `json:"id"`
	Provider  string    `json:"provider"`
	Service   string    `json:"service"`
	Amount    float64   `json:"amount"`
	DueDate   time.Time `json:"dueDate"`
	Paid      bool      `json:"paid"`
	CreatedAt time.Time `json:"createdAt"`
}

type UtilityBillPayment struct {
	ID        string    `json:"id"`
	BillID    string    `json:"billId"`
	Amount    float64   `json:"amount"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
}

type SupplierBill struct {
	ID        string    `json:"id"`
	Supplier  string    `json:"supplier"`
	Reference string    `json:"reference"`
	Amount    float64   `json:"amount"`
	DueDate   time.Time `json:"dueDate"`
	CreatedAt time.Time `json:"createdAt"`
}

// Transaction is one ledger line. Account names double as the grouping key
// for the trial balance; AccountType drives the income statement split.
type Transaction struct {
	ID          string    `json:"id"`
	Account     string    `json:"account"`
	AccountType string    `json:"accountType"`
	Description string    `json:"description"`
	Type        EntryType `json:"type"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"createdAt"`
}
