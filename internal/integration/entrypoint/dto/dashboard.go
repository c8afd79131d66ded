package dto

import (
	"time"

	"github.com/gestao-financeira/backend/internal/application/usecase/dashboard"
	"github.com/gestao-financeira/backend/internal/domain/aggregation"
)

// DashboardQuery represents the query parameters of the dashboard series endpoint.
type DashboardQuery struct {
	Months int `form:"months"`
}

// RecentRecordResponse is a sale or expense in the dashboard's recent lists.
type RecentRecordResponse struct {
	ID            string `json:"id"`
	Date          string `json:"date"`
	Payee         string `json:"payee,omitempty"`
	Category      string `json:"category,omitempty"`
	Description   string `json:"description,omitempty"`
	PaymentMethod string `json:"payment_method"`
	Status        string `json:"status,omitempty"`
	Value         string `json:"value"`
	Units         int    `json:"units,omitempty"`
}

// GoalStatusResponse represents the current month's goal and progress.
type GoalStatusResponse struct {
	Goal          GoalResponse `json:"goal"`
	SalesActual   string       `json:"sales_actual"`
	UnitsActual   int          `json:"units_actual"`
	SalesProgress float64      `json:"sales_progress"`
	UnitsProgress float64      `json:"units_progress"`
}

// DashboardSummaryResponse represents the dashboard summary.
type DashboardSummaryResponse struct {
	SalesTotal     string                     `json:"sales_total"`
	ExpensesTotal  string                     `json:"expenses_total"`
	Balance        string                     `json:"balance"`
	SaleCount      int                        `json:"sale_count"`
	ExpenseCount   int                        `json:"expense_count"`
	UnitsSold      int                        `json:"units_sold"`
	RecentSales    []RecentRecordResponse     `json:"recent_sales"`
	RecentExpenses []RecentRecordResponse     `json:"recent_expenses"`
	CurrentGoal    GoalStatusResponse         `json:"current_goal"`
	Warnings       []IntegrityWarningResponse `json:"warnings"`
	GeneratedAt    time.Time                  `json:"generated_at"`
}

// MonthlyPointResponse is one month of the dashboard series.
type MonthlyPointResponse struct {
	Month        int    `json:"month"`
	Year         int    `json:"year"`
	Sales        string `json:"sales"`
	Expenses     string `json:"expenses"`
	Balance      string `json:"balance"`
	SaleCount    int    `json:"sale_count"`
	ExpenseCount int    `json:"expense_count"`
	UnitsSold    int    `json:"units_sold"`
}

// MonthlySeriesResponse represents the dashboard monthly series.
type MonthlySeriesResponse struct {
	Points []MonthlyPointResponse `json:"points"`
}

// CategoryShareResponse is one category of the expense breakdown.
type CategoryShareResponse struct {
	Category   string  `json:"category"`
	Total      string  `json:"total"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// CategoryBreakdownResponse represents the expense breakdown by category.
type CategoryBreakdownResponse struct {
	Total      string                  `json:"total"`
	Categories []CategoryShareResponse `json:"categories"`
}

// ToRecentRecords converts engine records for the recent lists.
func ToRecentRecords(records []aggregation.Record) []RecentRecordResponse {
	out := make([]RecentRecordResponse, len(records))
	for i, r := range records {
		out[i] = RecentRecordResponse{
			ID:            r.ID,
			Date:          r.Date.Format(DateLayout),
			Payee:         r.Payee,
			Category:      r.Category,
			Description:   r.Description,
			PaymentMethod: r.PaymentMethod,
			Status:        r.Status,
			Value:         r.Value().StringFixed(2),
			Units:         r.Units(),
		}
	}
	return out
}

// ToDashboardSummaryResponse converts the summary use case output.
func ToDashboardSummaryResponse(output *dashboard.GetSummaryOutput) DashboardSummaryResponse {
	return DashboardSummaryResponse{
		SalesTotal:     output.SalesTotal.StringFixed(2),
		ExpensesTotal:  output.ExpensesTotal.StringFixed(2),
		Balance:        output.Balance.StringFixed(2),
		SaleCount:      output.SaleCount,
		ExpenseCount:   output.ExpenseCount,
		UnitsSold:      output.UnitsSold,
		RecentSales:    ToRecentRecords(output.RecentSales),
		RecentExpenses: ToRecentRecords(output.RecentExpenses),
		CurrentGoal: GoalStatusResponse{
			Goal:          ToGoalResponse(output.CurrentGoal.Goal),
			SalesActual:   output.CurrentGoal.SalesActual.StringFixed(2),
			UnitsActual:   output.CurrentGoal.UnitsActual,
			SalesProgress: output.CurrentGoal.SalesProgress,
			UnitsProgress: output.CurrentGoal.UnitsProgress,
		},
		Warnings:    ToIntegrityWarnings(output.Warnings),
		GeneratedAt: output.GeneratedAt,
	}
}

// ToMonthlySeriesResponse converts the series use case output.
func ToMonthlySeriesResponse(output *dashboard.GetMonthlySeriesOutput) MonthlySeriesResponse {
	points := make([]MonthlyPointResponse, len(output.Points))
	for i, p := range output.Points {
		points[i] = MonthlyPointResponse{
			Month:        p.Month,
			Year:         p.Year,
			Sales:        p.Sales.StringFixed(2),
			Expenses:     p.Expenses.StringFixed(2),
			Balance:      p.Balance.StringFixed(2),
			SaleCount:    p.SaleCount,
			ExpenseCount: p.ExpenseCount,
			UnitsSold:    p.UnitsSold,
		}
	}
	return MonthlySeriesResponse{Points: points}
}

// ToCategoryBreakdownResponse converts the breakdown use case output.
func ToCategoryBreakdownResponse(output *dashboard.GetCategoryBreakdownOutput) CategoryBreakdownResponse {
	categories := make([]CategoryShareResponse, len(output.Categories))
	for i, c := range output.Categories {
		categories[i] = CategoryShareResponse{
			Category:   c.Category,
			Total:      c.Total.StringFixed(2),
			Count:      c.Count,
			Percentage: c.Percentage,
		}
	}
	return CategoryBreakdownResponse{Total: output.Total.StringFixed(2), Categories: categories}
}
