package reporting

import (
	"time"

	"github.com/FarmanOthman/BCMS-Server-sub001/internal/domain"
	"github.com/FarmanOthman/BCMS-Server-sub001/pkg/utils"
)

// Funções puras de agregação. Todos os campos monetários são arredondados para
// duas casas decimais no momento em que o relatório é montado.

// AggregateDailySales calcula o relatório diário a partir das vendas do dia.
// A fatia deve vir na ordem natural do fluxo de vendas (sale_date, created_at,
// id): o carro mais lucrativo só é substituído por lucro estritamente maior,
// então em caso de empate a primeira venda vence, de forma determinística.
func AggregateDailySales(date time.Time, sales []*domain.Sale) *domain.DailyReport {
	report := &domain.DailyReport{
		ReportDate: domain.DateOnly(date),
	}

	if len(sales) == 0 {
		return report
	}

	var bestCarID *string
	var highestProfit float64

	for _, sale := range sales {
		report.TotalRevenue += sale.SalePrice
		report.TotalProfit += sale.ProfitLoss

		if bestCarID == nil || sale.ProfitLoss > highestProfit {
			carID := sale.CarID
			bestCarID = &carID
			highestProfit = sale.ProfitLoss
		}
	}

	report.TotalSales = len(sales)
	report.TotalRevenue = utils.RoundWithTwoDecimalPlace(report.TotalRevenue)
	report.TotalProfit = utils.RoundWithTwoDecimalPlace(report.TotalProfit)
	report.AvgProfitPerSale = utils.RoundWithTwoDecimalPlace(report.TotalProfit / float64(report.TotalSales))
	report.MostProfitableCarID = bestCarID
	report.HighestSingleProfit = utils.RoundWithTwoDecimalPlace(highestProfit)

	return report
}

// AggregateFinance particiona os lançamentos por tipo e soma cada lado.
// O efeito líquido do período é expenseTotal - incomeTotal, podendo ser
// negativo quando a receita supera a despesa.
func AggregateFinance(records []*domain.FinanceRecord) (expenseTotal, incomeTotal float64) {
	for _, record := range records {
		switch record.Type {
		case domain.FinanceRecordExpense:
			expenseTotal += record.Cost
		case domain.FinanceRecordIncome:
			incomeTotal += record.Cost
		}
	}

	return utils.RoundWithTwoDecimalPlace(expenseTotal), utils.RoundWithTwoDecimalPlace(incomeTotal)
}

// AggregateMonthly calcula o relatório mensal direto das vendas e lançamentos
// do mês, sem depender de relatórios diários já gravados.
func AggregateMonthly(year, month int, sales []*domain.Sale, records []*domain.FinanceRecord) *domain.MonthlyReport {
	report := &domain.MonthlyReport{
		Year:  year,
		Month: month,
	}

	var revenue, profit float64
	for _, sale := range sales {
		revenue += sale.SalePrice
		profit += sale.ProfitLoss
	}

	period := domain.MonthPeriod{Year: year, Month: month}

	report.TotalSales = len(sales)
	report.TotalRevenue = utils.RoundWithTwoDecimalPlace(revenue)
	report.TotalProfit = utils.RoundWithTwoDecimalPlace(profit)
	report.AvgDailyProfit = utils.RoundWithTwoDecimalPlace(report.TotalProfit / float64(period.Days()))
	report.ProfitMargin = profitMargin(report.TotalProfit, report.TotalRevenue)
	report.BestDay, report.BestDayProfit = bestSaleDay(sales)

	expenseTotal, incomeTotal := AggregateFinance(records)
	report.FinanceCost = expenseTotal
	report.TotalFinanceCost = utils.RoundWithTwoDecimalPlace(expenseTotal - incomeTotal)
	report.NetProfit = utils.RoundWithTwoDecimalPlace(report.TotalProfit - report.TotalFinanceCost)

	return report
}

// AggregateYearly calcula o relatório anual direto das vendas e lançamentos do
// ano. priorYear é o relatório do ano anterior, quando existe, usado no
// crescimento ano a ano.
func AggregateYearly(year int, sales []*domain.Sale, records []*domain.FinanceRecord, priorYear *domain.YearlyReport) *domain.YearlyReport {
	report := &domain.YearlyReport{
		Year: year,
	}

	var revenue, profit float64
	for _, sale := range sales {
		revenue += sale.SalePrice
		profit += sale.ProfitLoss
	}

	report.TotalSales = len(sales)
	report.TotalRevenue = utils.RoundWithTwoDecimalPlace(revenue)
	report.TotalProfit = utils.RoundWithTwoDecimalPlace(profit)
	report.AvgMonthlyProfit = utils.RoundWithTwoDecimalPlace(report.TotalProfit / 12)
	report.ProfitMargin = profitMargin(report.TotalProfit, report.TotalRevenue)
	report.BestMonth, report.BestMonthProfit = bestSaleMonth(sales)
	report.YoYGrowth = yoyGrowth(report.TotalProfit, priorYear)

	expenseTotal, incomeTotal := AggregateFinance(records)
	report.TotalFinanceCost = utils.RoundWithTwoDecimalPlace(expenseTotal - incomeTotal)
	report.TotalNetProfit = utils.RoundWithTwoDecimalPlace(report.TotalProfit - report.TotalFinanceCost)

	return report
}

// bestSaleDay retorna a data com maior lucro agregado e esse lucro. Em caso de
// empate vence a data mais antiga.
func bestSaleDay(sales []*domain.Sale) (*time.Time, float64) {
	if len(sales) == 0 {
		return nil, 0
	}

	profitByDay := make(map[time.Time]float64)
	days := make([]time.Time, 0)

	for _, sale := range sales {
		day := domain.DateOnly(sale.SaleDate)
		if _, seen := profitByDay[day]; !seen {
			days = append(days, day)
		}
		profitByDay[day] += sale.ProfitLoss
	}

	var best *time.Time
	var bestProfit float64

	for _, day := range days {
		dayProfit := profitByDay[day]
		if best == nil || dayProfit > bestProfit || (dayProfit == bestProfit && day.Before(*best)) {
			d := day
			best = &d
			bestProfit = dayProfit
		}
	}

	return best, utils.RoundWithTwoDecimalPlace(bestProfit)
}

// bestSaleMonth retorna o mês (1-12) com maior lucro agregado e esse lucro.
// Em caso de empate vence o mês mais antigo.
func bestSaleMonth(sales []*domain.Sale) (*int, float64) {
	if len(sales) == 0 {
		return nil, 0
	}

	var profitByMonth [13]float64
	var hasSales [13]bool

	for _, sale := range sales {
		month := int(sale.SaleDate.Month())
		profitByMonth[month] += sale.ProfitLoss
		hasSales[month] = true
	}

	var best *int
	var bestProfit float64

	for month := 1; month <= 12; month++ {
		if !hasSales[month] {
			continue
		}
		if best == nil || profitByMonth[month] > bestProfit {
			m := month
			best = &m
			bestProfit = profitByMonth[month]
		}
	}

	return best, utils.RoundWithTwoDecimalPlace(bestProfit)
}

// profitMargin retorna lucro/receita em percentual, com receita zero tratada
// como margem zero
func profitMargin(profit, revenue float64) float64 {
	if revenue == 0 {
		return 0
	}
	return utils.RoundWithTwoDecimalPlace(profit / revenue * 100)
}

// yoyGrowth retorna a variação percentual do lucro frente ao ano anterior.
// Sem relatório anterior, ou com lucro anterior zero, o crescimento é zero.
func yoyGrowth(totalProfit float64, priorYear *domain.YearlyReport) float64 {
	if priorYear == nil || priorYear.TotalProfit == 0 {
		return 0
	}

	growth := (totalProfit - priorYear.TotalProfit) / utils.Abs(priorYear.TotalProfit) * 100
	return utils.RoundWithTwoDecimalPlace(growth)
}
