package accounting

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store is the in-memory mock data store behind the accounting pages. It is
// deliberately not persistent: the accounting module serves demo data only,
// while real books live upstream.
type Store struct {
	mu sync.RWMutex

	cheques      []Cheque
	deposits     []Deposit
	payments     []Payment
	receipts     []Receipt
	pettyCash    []PettyCashEntry
	utilityBills []UtilityBill
	billPayments []UtilityBillPayment
	supplierBill []SupplierBill
	transactions []Transaction
}

func NewStore() *Store {
	return &Store{}
}

// NewSeededStore returns a store preloaded with a small, internally
// consistent books sample.
func NewSeededStore() *Store {
	s := NewStore()
	now := time.Now()
	day := func(offset int) time.Time { return now.AddDate(0, 0, offset) }

	s.AddCheque(Cheque{Number: "000101", Payee: "Apex Supplies", Amount: 1250.00, Memo: "office fittings", Date: day(-20), Cleared: true})
	s.AddCheque(Cheque{Number: "000102", Payee: "Metro Couriers", Amount: 310.50, Date: day(-6)})
	s.AddDeposit(Deposit{Account: "Operating", Source: "Invoice #2210", Amount: 8400.00, Date: day(-14)})
	s.AddDeposit(Deposit{Account: "Operating", Source: "Invoice #2214", Amount: 2150.00, Date: day(-3)})
	s.AddPayment(Payment{Vendor: "CloudHost Ltd", Method: "bank transfer", Amount: 420.00, Date: day(-10)})
	s.AddReceipt(Receipt{Customer: "Brightline Co", Amount: 990.00, Date: day(-8)})
	s.AddPettyCash(PettyCashEntry{Description: "float top-up", Amount: 200.00, Type: EntryDebit, Date: day(-12)})
	s.AddPettyCash(PettyCashEntry{Description: "stationery", Amount: 34.75, Type: EntryCredit, Date: day(-9)})
	bill := s.AddUtilityBill(UtilityBill{Provider: "City Power", Service: "electricity", Amount: 275.40, DueDate: day(5)})
	s.AddUtilityBillPayment(UtilityBillPayment{BillID: bill.ID, Amount: 275.40, Date: day(-1)})
	s.AddSupplierBill(SupplierBill{Supplier: "Apex Supplies", Reference: "AS-8841", Amount: 1625.00, DueDate: day(12)})

	s.AddTransaction(Transaction{Account: "Sales", AccountType: AccountIncome, Description: "Invoice #2210", Type: EntryCredit, Amount: 8400.00, Date: day(-14)})
	s.AddTransaction(Transaction{Account: "Sales", AccountType: AccountIncome, Description: "Invoice #2214", Type: EntryCredit, Amount: 2150.00, Date: day(-3)})
	s.AddTransaction(Transaction{Account: "Hosting", AccountType: AccountExpense, Description: "CloudHost Ltd", Type: EntryDebit, Amount: 420.00, Date: day(-10)})
	s.AddTransaction(Transaction{Account: "Utilities", AccountType: AccountExpense, Description: "City Power", Type: EntryDebit, Amount: 275.40, Date: day(-1)})
	s.AddTransaction(Transaction{Account: "Office", AccountType: AccountExpense, Description: "Apex Supplies", Type: EntryDebit, Amount: 1250.00, Date: day(-20)})
	return s
}

func (s *Store) AddCheque(c Cheque) Cheque {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = uuid.NewString()
	c.CreatedAt = time.Now()
	s.cheques = append(s.cheques, c)
	return c
}

func (s *Store) Cheques() []Cheque {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Cheque, len(s.cheques))
	copy(out, s.cheques)
	return out
}

func (s *Store) AddDeposit(d Deposit) Deposit {
	s.mu.Lock()
	defer s.mu.Unlock()
	d.ID = uuid.NewString()
	d.CreatedAt = time.Now()
	s.deposits = append(s.deposits, d)
	return d
}

func (s *Store) Deposits() []Deposit {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Deposit, len(s.deposits))
	copy(out, s.deposits)
	return out
}

func (s *Store) AddPayment(p Payment) Payment {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = uuid.NewString()
	p.CreatedAt = time.Now()
	s.payments = append(s.payments, p)
	return p
}

func (s *Store) Payments() []Payment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Payment, len(s.payments))
	copy(out, s.payments)
	return out
}

func (s *Store) AddReceipt(r Receipt) Receipt {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.ID = uuid.NewString()
	r.CreatedAt = time.Now()
	s.receipts = append(s.receipts, r)
	return r
}

func (s *Store) Receipts() []Receipt {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Receipt, len(s.receipts))
	copy(out, s.receipts)
	return out
}

func (s *Store) AddPettyCash(e PettyCashEntry) PettyCashEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.ID = uuid.NewString()
	e.CreatedAt = time.Now()
	s.pettyCash = append(s.pettyCash, e)
	return e
}

func (s *Store) PettyCash() []PettyCashEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]PettyCashEntry, len(s.pettyCash))
	copy(out, s.pettyCash)
	return out
}

func (s *Store) AddUtilityBill(b UtilityBill) UtilityBill {
	s.mu.Lock()
	defer s.mu.Unlock()
	b.ID = uuid.NewString()
	b.CreatedAt = time.Now()
	s.utilityBills = append(s.utilityBills, b)
	return b
}

func (s *Store) UtilityBills() []UtilityBill {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]UtilityBill, len(s.utilityBills))
	copy(out, s.utilityBills)
	return out
}

// AddUtilityBillPayment records a payment and marks the bill paid when the
// cumulative payments cover its amount.
func (s *Store) AddUtilityBillPayment(p UtilityBillPayment) UtilityBillPayment {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = uuid.NewString()
	p.CreatedAt = time.Now()
	s.billPayments = append(s.billPayments, p)

	paid := 0.0
	for _, existing := range s.billPayments {
		if existing.BillID == p.BillID {
			paid += existing.Amount
		}
	}
	for i := range s.utilityBills {
		if s.utilityBills[i].ID == p.BillID && paid >= s.utilityBills[i].Amount {
			s.utilityBills[i].Paid = true
		}
	}
	return p
}

func (s *Store) UtilityBillPayments() []UtilityBillPayment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]UtilityBillPayment, len(s.billPayments))
	copy(out, s.billPayments)
	return out
}

func (s *Store) AddSupplierBill(b SupplierBill) SupplierBill {
	s.mu.Lock()
	defer s.mu.Unlock()
	b.ID = uuid.NewString()
	b.CreatedAt = time.Now()
	s.supplierBill = append(s.supplierBill, b)
	return b
}

func (s *Store) SupplierBills() []SupplierBill {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]SupplierBill, len(s.supplierBill))
	copy(out, s.supplierBill)
	return out
}

func (s *Store) AddTransaction(t Transaction) Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	t.ID = uuid.NewString()
	t.CreatedAt = time.Now()
	s.transactions = append(s.transactions, t)
	return t
}

func (s *Store) Transactions() []Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}
