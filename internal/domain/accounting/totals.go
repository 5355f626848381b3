package accounting

import (
	"math"
	"sort"
)

type TransactionTotals struct {
	Debit  float64 `json:"debit"`
	Credit float64 `json:"credit"`
}

type TrialBalanceRow struct {
	Account string  `json:"account"`
	Debit   float64 `json:"debit"`
	Credit  float64 `json:"credit"`
}

type TrialBalance struct {
	Rows        []TrialBalanceRow `json:"rows"`
	TotalDebit  float64           `json:"totalDebit"`
	TotalCredit float64           `json:"totalCredit"`
	Balanced    bool              `json:"balanced"`
}

type IncomeStatement struct {
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Net      float64 `json:"net"`
}

// Totals sums debit and credit sides across all transactions.
func Totals(transactions []Transaction) TransactionTotals {
	var totals TransactionTotals
	for _, t := range transactions {
		switch t.Type {
		case EntryDebit:
			totals.Debit += t.Amount
		case EntryCredit:
			totals.Credit += t.Amount
		}
	}
	return totals
}

// BuildTrialBalance groups transactions per account and reports whether the
// books balance within a cent.
func BuildTrialBalance(transactions []Transaction) TrialBalance {
	byAccount := map[string]*TrialBalanceRow{}
	for _, t := range transactions {
		row, ok := byAccount[t.Account]
		if !ok {
			row = &TrialBalanceRow{Account: t.Account}
			byAccount[t.Account] = row
		}
		switch t.Type {
		case EntryDebit:
			row.Debit += t.Amount
		case EntryCredit:
			row.Credit += t.Amount
		}
	}

	balance := TrialBalance{Rows: make([]TrialBalanceRow, 0, len(byAccount))}
	for _, row := range byAccount {
		balance.Rows = append(balance.Rows, *row)
		balance.TotalDebit += row.Debit
		balance.TotalCredit += row.Credit
	}
	sort.Slice(balance.Rows, func(i, j int) bool {
		return balance.Rows[i].Account < balance.Rows[j].Account
	})
	balance.Balanced = math.Abs(balance.TotalDebit-balance.TotalCredit) < 0.01
	return balance
}

// BuildIncomeStatement splits transactions by account type into income and
// expenses; anything else (assets, liabilities) is outside the statement.
func BuildIncomeStatement(transactions []Transaction) IncomeStatement {
	var statement IncomeStatement
	for _, t := range transactions {
		switch t.AccountType {
		case AccountIncome:
			statement.Income += t.Amount
		case AccountExpense:
			statement.Expenses += t.Amount
		}
	}
	statement.Net = statement.Income - statement.Expenses
	return statement
}
