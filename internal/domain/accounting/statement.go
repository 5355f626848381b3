package accounting

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// WriteTrialBalancePDF renders the trial balance to a PDF under dir and
// returns the file path.
func WriteTrialBalancePDF(balance TrialBalance, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	filePath := filepath.Join(dir, fmt.Sprintf("trial-balance-%s.pdf", time.Now().Format("2006-01-02")))

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Trial Balance")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(80, 8, "Account")
	pdf.Cell(40, 8, "Debit")
	pdf.Cell(40, 8, "Credit")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	for _, row := range balance.Rows {
		pdf.Cell(80, 7, row.Account)
		pdf.Cell(40, 7, fmt.Sprintf("%.2f", row.Debit))
		pdf.Cell(40, 7, fmt.Sprintf("%.2f", row.Credit))
		pdf.Ln(7)
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(80, 8, "Total")
	pdf.Cell(40, 8, fmt.Sprintf("%.2f", balance.TotalDebit))
	pdf.Cell(40, 8, fmt.Sprintf("%.2f", balance.TotalCredit))
	pdf.Ln(10)
	if !balance.Balanced {
		pdf.Cell(0, 8, "WARNING: books do not balance")
	}

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", err
	}
	return filePath, nil
}

// WriteIncomeStatementPDF renders the income statement to a PDF under dir
// and returns the file path.
func WriteIncomeStatementPDF(statement IncomeStatement, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	filePath := filepath.Join(dir, fmt.Sprintf("income-statement-%s.pdf", time.Now().Format("2006-01-02")))

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Income Statement")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Income: %.2f", statement.Income))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Expenses: %.2f", statement.Expenses))
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Net: %.2f", statement.Net))

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", err
	}
	return filePath, nil
}
