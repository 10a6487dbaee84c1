package domain

import "time"

// DailyReport resume as vendas de um único dia. Quando não há vendas, todos os
// campos monetários ficam zerados e MostProfitableCarID fica nulo.
type DailyReport struct {
	ReportDate          time.Time `json:"report_date"`
	TotalSales          int       `json:"total_sales"`
	TotalRevenue        float64   `json:"total_revenue"`
	TotalProfit         float64   `json:"total_profit"`
	AvgProfitPerSale    float64   `json:"avg_profit_per_sale"`
	MostProfitableCarID *string   `json:"most_profitable_car_id"`
	HighestSingleProfit float64   `json:"highest_single_profit"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// MonthlyReport resume as vendas e o financeiro de um mês. Os agregados de
// vendas são calculados direto da tabela de vendas, nunca somando relatórios
// diários. Invariante: NetProfit + TotalFinanceCost == TotalProfit.
type MonthlyReport struct {
	Year             int        `json:"year"`
	Month            int        `json:"month"`
	TotalSales       int        `json:"total_sales"`
	TotalRevenue     float64    `json:"total_revenue"`
	TotalProfit      float64    `json:"total_profit"`
	AvgDailyProfit   float64    `json:"avg_daily_profit"`
	BestDay          *time.Time `json:"best_day"`
	BestDayProfit    float64    `json:"best_day_profit"`
	ProfitMargin     float64    `json:"profit_margin"`
	FinanceCost      float64    `json:"finance_cost"`
	TotalFinanceCost float64    `json:"total_finance_cost"`
	NetProfit        float64    `json:"net_profit"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// YearlyReport espelha o relatório mensal na granularidade de ano.
// Invariante: TotalNetProfit + TotalFinanceCost == TotalProfit.
type YearlyReport struct {
	Year             int       `json:"year"`
	TotalSales       int       `json:"total_sales"`
	TotalRevenue     float64   `json:"total_revenue"`
	TotalProfit      float64   `json:"total_profit"`
	AvgMonthlyProfit float64   `json:"avg_monthly_profit"`
	BestMonth        *int      `json:"best_month"`
	BestMonthProfit  float64   `json:"best_month_profit"`
	ProfitMargin     float64   `json:"profit_margin"`
	YoYGrowth        float64   `json:"yoy_growth"`
	TotalFinanceCost float64   `json:"total_finance_cost"`
	TotalNetProfit   float64   `json:"total_net_profit"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// GenerationTracker é a linha única de marcas d'água da geração em lote.
// Apenas o caminho de geração agendada/em lote escreve aqui; a cascata por
// evento nunca o consulta.
type GenerationTracker struct {
	LastDailyReportDate    *time.Time `json:"last_daily_report_date"`
	LastMonthlyReportYear  *int       `json:"last_monthly_report_year"`
	LastMonthlyReportMonth *int       `json:"last_monthly_report_month"`
	LastYearlyReportYear   *int       `json:"last_yearly_report_year"`
	UpdatedAt              time.Time  `json:"updated_at"`
}
