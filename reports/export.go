package reports

import (
	"fmt"
	"io"

	"github.com/mmdatafocus/smartpos_backend/models"
	"github.com/mmdatafocus/smartpos_backend/utils"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	LedgerSheet  = "Ledger"
	SummarySheet = "Summary"

	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var ledgerHeadings = []string{"Date", "Type", "Category", "Description", "Location", "Order", "Amount (USD)"}

// ExportLedger writes transactions as a workbook with a Ledger sheet and a Summary sheet.
// Amounts are rounded to cents in the workbook only.
// A last column repeats each amount in currency when it is not USD.
func ExportLedger(w io.Writer, transactions []models.Transaction, locationNames map[string]string, currency models.Currency) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", LedgerSheet); err != nil {
		return err
	}
	converted := currency.Code != models.CurrencyUSD
	headings := ledgerHeadings
	if converted {
		headings = append(append([]string{}, ledgerHeadings...), fmt.Sprintf("Amount (%s)", currency.Code))
	}
	if err := setRow(f, LedgerSheet, 1, toCells(headings)); err != nil {
		return err
	}

	for i, tx := range transactions {
		location := locationNames[tx.LocationId]
		if location == "" {
			location = tx.LocationId
		}
		row := []interface{}{
			tx.Date.UTC().Format("2006-01-02 15:04"),
			string(tx.Type),
			tx.Category,
			tx.Description,
			location,
			tx.OrderId,
			money(tx.Amount),
		}
		if converted {
			row = append(row, money(currency.Convert(tx.Amount)))
		}
		if err := setRow(f, LedgerSheet, i+2, row); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet(SummarySheet); err != nil {
		return err
	}
	summary := Summarize(transactions)
	rows := [][]interface{}{
		{"Total Income", money(summary.Income)},
		{"Total Expenses", money(summary.Expenses)},
		{"Net Profit", money(summary.NetProfit)},
		{},
		{"Expense Category", "Amount (USD)", "Count"},
	}
	for _, c := range ExpenseByCategory(transactions) {
		rows = append(rows, []interface{}{c.Category, money(c.Amount), c.Count})
	}
	for i, row := range rows {
		if err := setRow(f, SummarySheet, i+1, row); err != nil {
			return err
		}
	}

	_, err := f.WriteTo(w)
	return err
}

func money(d decimal.Decimal) float64 {
	return utils.RoundMoney(d).InexactFloat64()
}

func setRow(f *excelize.File, sheet string, rowNo int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNo)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func toCells(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
