// Package reports aggregates already-scoped records. Callers pass in the records of one
// organization (or one location); nothing here filters by tenant.
package reports

import (
	"sort"

	"github.com/mmdatafocus/smartpos_backend/models"
	"github.com/shopspring/decimal"
)

type FinancialSummary struct {
	Income           decimal.Decimal `json:"income"`
	Expenses         decimal.Decimal `json:"expenses"`
	NetProfit        decimal.Decimal `json:"netProfit"`
	TransactionCount int             `json:"transactionCount"`
}

func Summarize(transactions []models.Transaction) FinancialSummary {
	summary := FinancialSummary{Income: decimal.Zero, Expenses: decimal.Zero}
	for _, tx := range transactions {
		switch tx.Type {
		case models.TransactionTypeIncome:
			summary.Income = summary.Income.Add(tx.Amount)
		case models.TransactionTypeExpense:
			summary.Expenses = summary.Expenses.Add(tx.Amount)
		}
	}
	summary.NetProfit = summary.Income.Sub(summary.Expenses)
	summary.TransactionCount = len(transactions)
	return summary
}

type CategoryTotal struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Count    int             `json:"count"`
}

// ExpenseByCategory totals expenses per category, largest first.
func ExpenseByCategory(transactions []models.Transaction) []CategoryTotal {
	index := map[string]int{}
	totals := []CategoryTotal{}
	for _, tx := range transactions {
		if tx.Type != models.TransactionTypeExpense {
			continue
		}
		i, ok := index[tx.Category]
		if !ok {
			i = len(totals)
			index[tx.Category] = i
			totals = append(totals, CategoryTotal{Category: tx.Category, Amount: decimal.Zero})
		}
		totals[i].Amount = totals[i].Amount.Add(tx.Amount)
		totals[i].Count++
	}
	sort.SliceStable(totals, func(a, b int) bool {
		if c := totals[a].Amount.Cmp(totals[b].Amount); c != 0 {
			return c > 0
		}
		return totals[a].Category < totals[b].Category
	})
	return totals
}

// LowStock returns ingredients at or below their threshold.
func LowStock(inventory []models.Ingredient) []models.Ingredient {
	out := []models.Ingredient{}
	for _, ing := range inventory {
		if ing.IsLowStock() {
			out = append(out, ing)
		}
	}
	return out
}

type StaffPerformance struct {
	EmployeeId string          `json:"employeeId"`
	Name       string          `json:"name"`
	Role       models.Role     `json:"role"`
	TotalSales decimal.Decimal `json:"totalSales"`
	TotalHours decimal.Decimal `json:"totalHours"`
	HourlyRate decimal.Decimal `json:"hourlyRate"`
	LaborCost  decimal.Decimal `json:"laborCost"`
	OnShift    bool            `json:"onShift"`
}

// Payroll reports sales, closed-shift hours and labor cost per employee, in employee order.
func Payroll(employees []models.Employee, shifts []models.Shift, transactions []models.Transaction) []StaffPerformance {
	out := make([]StaffPerformance, 0, len(employees))
	for _, emp := range employees {
		p := StaffPerformance{
			EmployeeId: emp.Id,
			Name:       emp.Name,
			Role:       emp.Role,
			TotalSales: decimal.Zero,
			TotalHours: decimal.Zero,
			HourlyRate: emp.HourlyRate,
		}
		for _, tx := range transactions {
			if tx.EmployeeId == emp.Id && tx.Type == models.TransactionTypeIncome {
				p.TotalSales = p.TotalSales.Add(tx.Amount)
			}
		}
		for _, sh := range shifts {
			if sh.EmployeeId != emp.Id {
				continue
			}
			if sh.IsOpen() {
				p.OnShift = true
				continue
			}
			if sh.HoursWorked != nil {
				p.TotalHours = p.TotalHours.Add(*sh.HoursWorked)
			}
		}
		p.LaborCost = p.TotalHours.Mul(emp.HourlyRate).Round(2)
		out = append(out, p)
	}
	return out
}

type LocationOverview struct {
	LocationId  string                `json:"locationId"`
	Name        string                `json:"name"`
	Type        models.LocationType   `json:"type"`
	Status      models.LocationStatus `json:"status"`
	Revenue     decimal.Decimal       `json:"revenue"`
	StaffCount  int                   `json:"staffCount"`
	ActiveStaff int                   `json:"activeStaff"`
}

// Locations reports revenue and staffing per location, in location order.
func Locations(locations []models.Location, transactions []models.Transaction, employees []models.Employee) []LocationOverview {
	out := make([]LocationOverview, 0, len(locations))
	for _, loc := range locations {
		o := LocationOverview{
			LocationId: loc.Id,
			Name:       loc.Name,
			Type:       loc.Type,
			Status:     loc.Status,
			Revenue:    decimal.Zero,
		}
		for _, tx := range transactions {
			if tx.LocationId == loc.Id && tx.Type == models.TransactionTypeIncome {
				o.Revenue = o.Revenue.Add(tx.Amount)
			}
		}
		for _, emp := range employees {
			if emp.LocationId != loc.Id {
				continue
			}
			o.StaffCount++
			if emp.Status == models.EmployeeClockedIn {
				o.ActiveStaff++
			}
		}
		out = append(out, o)
	}
	return out
}
