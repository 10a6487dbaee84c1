package reporting

import (
	"testing"
	"time"

	"github.com/FarmanOthman/BCMS-Server-sub001/internal/domain"
	"github.com/stretchr/testify/assert"
)

func stringPtr(s string) *string {
	return &s
}

func saleOn(date time.Time, carID string, salePrice, profitLoss float64) *domain.Sale {
	return &domain.Sale{
		ID:         "SALE-" + carID,
		CarID:      carID,
		SalePrice:  salePrice,
		ProfitLoss: profitLoss,
		SaleDate:   date,
	}
}

func TestAggregateDailySales(t *testing.T) {
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		sales    []*domain.Sale
		validate func(t *testing.T, report *domain.DailyReport)
	}{
		{
			name: "Duas vendas no dia - totais e carro mais lucrativo",
			sales: []*domain.Sale{
				saleOn(day, "CAR001", 25000, 3000),
				saleOn(day, "CAR002", 18000, 2000),
			},
			validate: func(t *testing.T, report *domain.DailyReport) {
				assert.Equal(t, 2, report.TotalSales)
				assert.Equal(t, 43000.0, report.TotalRevenue)
				assert.Equal(t, 5000.0, report.TotalProfit)
				assert.Equal(t, 2500.0, report.AvgProfitPerSale)
				assert.Equal(t, "CAR001", *report.MostProfitableCarID)
				assert.Equal(t, 3000.0, report.HighestSingleProfit)
			},
		},
		{
			name:  "Dia sem vendas - linha zerada com carro nulo",
			sales: nil,
			validate: func(t *testing.T, report *domain.DailyReport) {
				assert.Equal(t, 0, report.TotalSales)
				assert.Equal(t, 0.0, report.TotalRevenue)
				assert.Equal(t, 0.0, report.TotalProfit)
				assert.Equal(t, 0.0, report.AvgProfitPerSale)
				assert.Nil(t, report.MostProfitableCarID)
				assert.Equal(t, 0.0, report.HighestSingleProfit)
			},
		},
		{
			name: "Empate de lucro - primeira venda da ordem natural vence",
			sales: []*domain.Sale{
				saleOn(day, "CAR001", 20000, 1500),
				saleOn(day, "CAR002", 21000, 1500),
			},
			validate: func(t *testing.T, report *domain.DailyReport) {
				assert.Equal(t, "CAR001", *report.MostProfitableCarID)
				assert.Equal(t, 1500.0, report.HighestSingleProfit)
			},
		},
		{
			name: "Venda com prejuízo entra nos totais normalmente",
			sales: []*domain.Sale{
				saleOn(day, "CAR001", 10000, -500),
			},
			validate: func(t *testing.T, report *domain.DailyReport) {
				assert.Equal(t, 1, report.TotalSales)
				assert.Equal(t, -500.0, report.TotalProfit)
				assert.Equal(t, "CAR001", *report.MostProfitableCarID)
				assert.Equal(t, -500.0, report.HighestSingleProfit)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := AggregateDailySales(day, tt.sales)

			assert.Equal(t, day, report.ReportDate)
			tt.validate(t, report)
		})
	}
}

func TestAggregateFinance(t *testing.T) {
	desc := stringPtr("lançamento de teste")
	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name            string
		records         []*domain.FinanceRecord
		expectedExpense float64
		expectedIncome  float64
	}{
		{
			name: "Duas despesas somadas",
			records: []*domain.FinanceRecord{
				{Type: domain.FinanceRecordExpense, Cost: 2500, Description: desc, RecordDate: date},
				{Type: domain.FinanceRecordExpense, Cost: 5000, Description: desc, RecordDate: date},
			},
			expectedExpense: 7500,
			expectedIncome:  0,
		},
		{
			name: "Despesas e receitas particionadas por tipo",
			records: []*domain.FinanceRecord{
				{Type: domain.FinanceRecordExpense, Cost: 1200.50, RecordDate: date},
				{Type: domain.FinanceRecordIncome, Cost: 300.25, RecordDate: date},
				{Type: domain.FinanceRecordIncome, Cost: 99.75, RecordDate: date},
			},
			expectedExpense: 1200.50,
			expectedIncome:  400,
		},
		{
			name:            "Sem lançamentos - ambos os lados zerados",
			records:         nil,
			expectedExpense: 0,
			expectedIncome:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expenseTotal, incomeTotal := AggregateFinance(tt.records)

			assert.Equal(t, tt.expectedExpense, expenseTotal)
			assert.Equal(t, tt.expectedIncome, incomeTotal)
		})
	}
}

func TestAggregateMonthly(t *testing.T) {
	march10 := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	march15 := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		sales    []*domain.Sale
		records  []*domain.FinanceRecord
		validate func(t *testing.T, report *domain.MonthlyReport)
	}{
		{
			name: "Vendas e despesas do mês - identidade do lucro líquido",
			sales: []*domain.Sale{
				saleOn(march10, "CAR001", 25000, 3000),
				saleOn(march15, "CAR002", 18000, 2000),
			},
			records: []*domain.FinanceRecord{
				{Type: domain.FinanceRecordExpense, Cost: 2500, RecordDate: march10},
				{Type: domain.FinanceRecordExpense, Cost: 5000, RecordDate: march15},
			},
			validate: func(t *testing.T, report *domain.MonthlyReport) {
				assert.Equal(t, 2, report.TotalSales)
				assert.Equal(t, 43000.0, report.TotalRevenue)
				assert.Equal(t, 5000.0, report.TotalProfit)
				assert.Equal(t, 7500.0, report.FinanceCost)
				assert.Equal(t, 7500.0, report.TotalFinanceCost)
				assert.Equal(t, -2500.0, report.NetProfit)
				// NetProfit + TotalFinanceCost deve fechar com TotalProfit
				assert.Equal(t, report.TotalProfit, report.NetProfit+report.TotalFinanceCost)
			},
		},
		{
			name: "Receita supera despesa - custo financeiro líquido negativo",
			sales: []*domain.Sale{
				saleOn(march10, "CAR001", 20000, 4000),
			},
			records: []*domain.FinanceRecord{
				{Type: domain.FinanceRecordExpense, Cost: 1000, RecordDate: march10},
				{Type: domain.FinanceRecordIncome, Cost: 3000, RecordDate: march15},
			},
			validate: func(t *testing.T, report *domain.MonthlyReport) {
				assert.Equal(t, 1000.0, report.FinanceCost)
				assert.Equal(t, -2000.0, report.TotalFinanceCost)
				assert.Equal(t, 6000.0, report.NetProfit)
			},
		},
		{
			name: "Melhor dia por lucro agregado, com margem calculada",
			sales: []*domain.Sale{
				saleOn(march10, "CAR001", 10000, 1000),
				saleOn(march10, "CAR002", 10000, 1000),
				saleOn(march15, "CAR003", 20000, 1500),
			},
			records: nil,
			validate: func(t *testing.T, report *domain.MonthlyReport) {
				assert.Equal(t, march10, *report.BestDay)
				assert.Equal(t, 2000.0, report.BestDayProfit)
				// 3500 / 40000 * 100
				assert.Equal(t, 8.75, report.ProfitMargin)
			},
		},
		{
			name:    "Mês sem vendas nem lançamentos - linha zerada",
			sales:   nil,
			records: nil,
			validate: func(t *testing.T, report *domain.MonthlyReport) {
				assert.Equal(t, 0, report.TotalSales)
				assert.Equal(t, 0.0, report.TotalRevenue)
				assert.Equal(t, 0.0, report.ProfitMargin)
				assert.Nil(t, report.BestDay)
				assert.Equal(t, 0.0, report.NetProfit)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := AggregateMonthly(2024, 3, tt.sales, tt.records)

			assert.Equal(t, 2024, report.Year)
			assert.Equal(t, 3, report.Month)
			tt.validate(t, report)
		})
	}
}

func TestAggregateMonthly_avgDailyProfitUsesCalendarDays(t *testing.T) {
	feb5 := time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC)

	report := AggregateMonthly(2024, 2, []*domain.Sale{
		saleOn(feb5, "CAR001", 30000, 2900),
	}, nil)

	// Fevereiro de 2024 tem 29 dias
	assert.Equal(t, 100.0, report.AvgDailyProfit)
}

func TestAggregateYearly(t *testing.T) {
	january := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)
	june := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		sales     []*domain.Sale
		records   []*domain.FinanceRecord
		priorYear *domain.YearlyReport
		validate  func(t *testing.T, report *domain.YearlyReport)
	}{
		{
			name: "Totais do ano com melhor mês e identidade do lucro líquido",
			sales: []*domain.Sale{
				saleOn(january, "CAR001", 25000, 3000),
				saleOn(june, "CAR002", 18000, 2000),
				saleOn(june, "CAR003", 15000, 1800),
			},
			records: []*domain.FinanceRecord{
				{Type: domain.FinanceRecordExpense, Cost: 2000, RecordDate: january},
			},
			priorYear: nil,
			validate: func(t *testing.T, report *domain.YearlyReport) {
				assert.Equal(t, 3, report.TotalSales)
				assert.Equal(t, 58000.0, report.TotalRevenue)
				assert.Equal(t, 6800.0, report.TotalProfit)
				assert.Equal(t, 6, *report.BestMonth)
				assert.Equal(t, 3800.0, report.BestMonthProfit)
				assert.Equal(t, 2000.0, report.TotalFinanceCost)
				assert.Equal(t, 4800.0, report.TotalNetProfit)
				assert.Equal(t, report.TotalProfit, report.TotalNetProfit+report.TotalFinanceCost)
				// Sem ano anterior o crescimento fica zerado
				assert.Equal(t, 0.0, report.YoYGrowth)
			},
		},
		{
			name: "Crescimento ano a ano sobre o lucro do ano anterior",
			sales: []*domain.Sale{
				saleOn(june, "CAR001", 30000, 6000),
			},
			records:   nil,
			priorYear: &domain.YearlyReport{Year: 2023, TotalProfit: 4000},
			validate: func(t *testing.T, report *domain.YearlyReport) {
				// (6000 - 4000) / 4000 * 100
				assert.Equal(t, 50.0, report.YoYGrowth)
			},
		},
		{
			name: "Ano anterior com lucro zero - crescimento indefinido vira zero",
			sales: []*domain.Sale{
				saleOn(june, "CAR001", 30000, 6000),
			},
			records:   nil,
			priorYear: &domain.YearlyReport{Year: 2023, TotalProfit: 0},
			validate: func(t *testing.T, report *domain.YearlyReport) {
				assert.Equal(t, 0.0, report.YoYGrowth)
			},
		},
		{
			name: "Ano anterior com prejuízo - crescimento usa o valor absoluto",
			sales: []*domain.Sale{
				saleOn(june, "CAR001", 30000, 2000),
			},
			records:   nil,
			priorYear: &domain.YearlyReport{Year: 2023, TotalProfit: -4000},
			validate: func(t *testing.T, report *domain.YearlyReport) {
				// (2000 - (-4000)) / 4000 * 100
				assert.Equal(t, 150.0, report.YoYGrowth)
			},
		},
		{
			name:      "Ano sem vendas - linha zerada com melhor mês nulo",
			sales:     nil,
			records:   nil,
			priorYear: nil,
			validate: func(t *testing.T, report *domain.YearlyReport) {
				assert.Equal(t, 0, report.TotalSales)
				assert.Nil(t, report.BestMonth)
				assert.Equal(t, 0.0, report.AvgMonthlyProfit)
				assert.Equal(t, 0.0, report.TotalNetProfit)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := AggregateYearly(2024, tt.sales, tt.records, tt.priorYear)

			assert.Equal(t, 2024, report.Year)
			tt.validate(t, report)
		})
	}
}

func TestAggregateYearly_avgMonthlyProfitDividesByTwelve(t *testing.T) {
	june := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	report := AggregateYearly(2024, []*domain.Sale{
		saleOn(june, "CAR001", 30000, 6000),
	}, nil, nil)

	assert.Equal(t, 500.0, report.AvgMonthlyProfit)
}
