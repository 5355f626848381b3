package accountinghandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"bizsuite/internal/domain/accounting"
	"bizsuite/internal/transport/http/api"
	"bizsuite/internal/transport/http/middleware"
	"bizsuite/internal/transport/http/shared"
)

type Handler struct {
	Store        *accounting.Store
	StatementDir string
}

func NewHandler(store *accounting.Store, statementDir string) *Handler {
	return &Handler{Store: store, StatementDir: statementDir}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/accounting", func(r chi.Router) {
		r.Get("/cheques", h.handleListCheques)
		r.Post("/cheques", h.handleCreateCheque)
		r.Get("/deposits", h.handleListDeposits)
		r.Post("/deposits", h.handleCreateDeposit)
		r.Get("/payments", h.handleListPayments)
		r.Post("/payments", h.handleCreatePayment)
		r.Get("/receipts", h.handleListReceipts)
		r.Post("/receipts", h.handleCreateReceipt)
		r.Get("/petty-cash", h.handleListPettyCash)
		r.Post("/petty-cash", h.handleCreatePettyCash)
		r.Get("/utility-bills", h.handleListUtilityBills)
		r.Post("/utility-bills", h.handleCreateUtilityBill)
		r.Get("/utility-bill-payments", h.handleListBillPayments)
		r.Post("/utility-bill-payments", h.handleCreateBillPayment)
		r.Get("/supplier-bills", h.handleListSupplierBills)
		r.Post("/supplier-bills", h.handleCreateSupplierBill)
		r.Get("/transactions", h.handleListTransactions)
		r.Post("/transactions", h.handleCreateTransaction)
		r.Get("/reports/totals", h.handleTotals)
		r.Get("/reports/trial-balance", h.handleTrialBalance)
		r.Get("/reports/income-statement", h.handleIncomeStatement)
		r.Get("/reports/trial-balance/pdf", h.handleTrialBalancePDF)
		r.Get("/reports/income-statement/pdf", h.handleIncomeStatementPDF)
	})
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return false
	}
	return true
}

func (h *Handler) handleListCheques(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.Store.Cheques(), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateCheque(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Number string  `json:"number"`
		Payee  string  `json:"payee"`
		Amount float64 `json:"amount"`
		Memo   string  `json:"memo"`
		Date   string  `json:"date"`
	}
	if !decode(w, r, &payload) {
		return
	}
	date, err := shared.ParseDate(payload.Date)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid date", middleware.GetRequestID(r.Context()))
		return
	}
	created := h.Store.AddCheque(accounting.Cheque{Number: payload.Number, Payee: payload.Payee, Amount: payload.Amount, Memo: payload.Memo, Date: date})
	api.Created(w, created, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListDeposits(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.Store.Deposits(), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateDeposit(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Account string  `json:"account"`
		Source  string  `json:"source"`
		Amount  float64 `json:"amount"`
		Date    string  `json:"date"`
	}
	if !decode(w, r, &payload) {
		return
	}
	date, err := shared.ParseDate(payload.Date)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid date", middleware.GetRequestID(r.Context()))
		return
	}
	created := h.Store.AddDeposit(accounting.Deposit{Account: payload.Account, Source: payload.Source, Amount: payload.Amount, Date: date})
	api.Created(w, created, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListPayments(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.Store.Payments(), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreatePayment(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Vendor string  `json:"vendor"`
		Method string  `json:"method"`
		Amount float64 `json:"amount"`
		Date   string  `json:"date"`
	}
	if !decode(w, r, &payload) {
		return
	}
	date, err := shared.ParseDate(payload.Date)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid date", middleware.GetRequestID(r.Context()))
		return
	}
	created := h.Store.AddPayment(accounting.Payment{Vendor: payload.Vendor, Method: payload.Method, Amount: payload.Amount, Date: date})
	api.Created(w, created, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListReceipts(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.Store.Receipts(), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateReceipt(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Customer string  `json:"customer"`
		Amount   float64 `json:"amount"`
		Date     string  `json:"date"`
	}
	if !decode(w, r, &payload) {
		return
	}
	date, err := shared.ParseDate(payload.Date)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid date", middleware.GetRequestID(r.Context()))
		return
	}
	created := h.Store.AddReceipt(accounting.Receipt{Customer: payload.Customer, Amount: payload.Amount, Date: date})
	api.Created(w, created, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListPettyCash(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.Store.PettyCash(), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreatePettyCash(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Description string  `json:"description"`
		Amount      float64 `json:"amount"`
		Type        string  `json:"type"`
		Date        string  `json:"date"`
	}
	if !decode(w, r, &payload) {
		return
	}
	entryType := accounting.EntryType(payload.Type)
	if entryType != accounting.EntryDebit && entryType != accounting.EntryCredit {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "type must be debit or credit", middleware.GetRequestID(r.Context()))
		return
	}
	date, err := shared.ParseDate(payload.Date)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid date", middleware.GetRequestID(r.Context()))
		return
	}
	created := h.Store.AddPettyCash(accounting.PettyCashEntry{Description: payload.Description, Amount: payload.Amount, Type: entryType, Date: date})
	api.Created(w, created, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListUtilityBills(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.Store.UtilityBills(), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateUtilityBill(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Provider string  `json:"provider"`
		Service  string  `json:"service"`
		Amount   float64 `json:"amount"`
		DueDate  string  `json:"dueDate"`
	}
	if !decode(w, r, &payload) {
		return
	}
	dueDate, err := shared.ParseDate(payload.DueDate)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid due date", middleware.GetRequestID(r.Context()))
		return
	}
	created := h.Store.AddUtilityBill(accounting.UtilityBill{Provider: payload.Provider, Service: payload.Service, Amount: payload.Amount, DueDate: dueDate})
	api.Created(w, created, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListBillPayments(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.Store.UtilityBillPayments(), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateBillPayment(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		BillID string  `json:"billId"`
		Amount float64 `json:"amount"`
		Date   string  `json:"date"`
	}
	if !decode(w, r, &payload) {
		return
	}
	date, err := shared.ParseDate(payload.Date)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid date", middleware.GetRequestID(r.Context()))
		return
	}
	created := h.Store.AddUtilityBillPayment(accounting.UtilityBillPayment{BillID: payload.BillID, Amount: payload.Amount, Date: date})
	api.Created(w, created, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListSupplierBills(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.Store.SupplierBills(), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateSupplierBill(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Supplier  string  `json:"supplier"`
		Reference string  `json:"reference"`
		Amount    float64 `json:"amount"`
		DueDate   string  `json:"dueDate"`
	}
	if !decode(w, r, &payload) {
		return
	}
	dueDate, err := shared.ParseDate(payload.DueDate)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid due date", middleware.GetRequestID(r.Context()))
		return
	}
	created := h.Store.AddSupplierBill(accounting.SupplierBill{Supplier: payload.Supplier, Reference: payload.Reference, Amount: payload.Amount, DueDate: dueDate})
	api.Created(w, created, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.Store.Transactions(), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Account     string  `json:"account"`
		AccountType string  `json:"accountType"`
		Description string  `json:"description"`
		Type        string  `json:"type"`
		Amount      float64 `json:"amount"`
		Date        string  `json:"date"`
	}
	if !decode(w, r, &payload) {
		return
	}
	entryType := accounting.EntryType(payload.Type)
	if entryType != accounting.EntryDebit && entryType != accounting.EntryCredit {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "type must be debit or credit", middleware.GetRequestID(r.Context()))
		return
	}
	date, err := shared.ParseDate(payload.Date)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid date", middleware.GetRequestID(r.Context()))
		return
	}
	created := h.Store.AddTransaction(accounting.Transaction{
		Account:     payload.Account,
		AccountType: payload.AccountType,
		Description: payload.Description,
		Type:        entryType,
		Amount:      payload.Amount,
		Date:        date,
	})
	api.Created(w, created, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleTotals(w http.ResponseWriter, r *http.Request) {
	api.Success(w, accounting.Totals(h.Store.Transactions()), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleTrialBalance(w http.ResponseWriter, r *http.Request) {
	api.Success(w, accounting.BuildTrialBalance(h.Store.Transactions()), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleIncomeStatement(w http.ResponseWriter, r *http.Request) {
	api.Success(w, accounting.BuildIncomeStatement(h.Store.Transactions()), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleTrialBalancePDF(w http.ResponseWriter, r *http.Request) {
	path, err := accounting.WriteTrialBalancePDF(accounting.BuildTrialBalance(h.Store.Transactions()), h.StatementDir)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "statement_failed", "failed to generate statement", middleware.GetRequestID(r.Context()))
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	http.ServeFile(w, r, path)
}

func (h *Handler) handleIncomeStatementPDF(w http.ResponseWriter, r *http.Request) {
	path, err := accounting.WriteIncomeStatementPDF(accounting.BuildIncomeStatement(h.Store.Transactions()), h.StatementDir)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "statement_failed", "failed to generate statement", middleware.GetRequestID(r.Context()))
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	http.ServeFile(w, r, path)
}
