package repository

import (
	"database/sql"
	"fmt"

	"github.com/FarmanOthman/BCMS-Server-sub001/infrastructure/database/postgres"
	"github.com/FarmanOthman/BCMS-Server-sub001/internal/domain"
	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
)

const (
	yearlyReportsTable = "yearly_reports yr"
)

const yearlyReportColumns = "yr.year, yr.total_sales, yr.total_revenue, yr.total_profit, yr.avg_monthly_profit, yr.best_month, yr.best_month_profit, yr.profit_margin, yr.yoy_growth, yr.total_finance_cost, yr.total_net_profit, yr.created_at, yr.updated_at"

type YearlyReportRepository interface {
	GetByYear(year int) (*domain.YearlyReport, error)
	SaveOrUpdate(report *domain.YearlyReport) error
	GetLatestYear() (*int, error)
}

type yearlyReportRepository struct {
	conn *postgres.Connection
}

func NewYearlyReportRepository(conn *postgres.Connection) YearlyReportRepository {
	return &yearlyReportRepository{
		conn: conn,
	}
}

func (r *yearlyReportRepository) GetByYear(year int) (*domain.YearlyReport, error) {
	query, args, err := squirrel.
		Select(yearlyReportColumns).
		From(yearlyReportsTable).
		Where(squirrel.Eq{"yr.year": year}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	report := &domain.YearlyReport{}
	var bestMonth sql.NullInt64

	row := r.conn.QueryRow(query, args...)
	err = row.Scan(
		&report.Year,
		&report.TotalSales,
		&report.TotalRevenue,
		&report.TotalProfit,
		&report.AvgMonthlyProfit,
		&bestMonth,
		&report.BestMonthProfit,
		&report.ProfitMargin,
		&report.YoYGrowth,
		&report.TotalFinanceCost,
		&report.TotalNetProfit,
		&report.CreatedAt,
		&report.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear relatório anual: %w", err)
	}

	if bestMonth.Valid {
		month := int(bestMonth.Int64)
		report.BestMonth = &month
	}

	return report, nil
}

func (r *yearlyReportRepository) SaveOrUpdate(report *domain.YearlyReport) error {
	query := squirrel.StatementBuilder.
		Insert("yearly_reports").
		Columns("year", "total_sales", "total_revenue", "total_profit", "avg_monthly_profit", "best_month", "best_month_profit", "profit_margin", "yoy_growth", "total_finance_cost", "total_net_profit").
		Values(
			report.Year,
			report.TotalSales,
			report.TotalRevenue,
			report.TotalProfit,
			report.AvgMonthlyProfit,
			report.BestMonth,
			report.BestMonthProfit,
			report.ProfitMargin,
			report.YoYGrowth,
			report.TotalFinanceCost,
			report.TotalNetProfit,
		).
		Suffix(`
			ON CONFLICT (year) DO UPDATE SET
				total_sales = EXCLUDED.total_sales,
				total_revenue = EXCLUDED.total_revenue,
				total_profit = EXCLUDED.total_profit,
				avg_monthly_profit = EXCLUDED.avg_monthly_profit,
				best_month = EXCLUDED.best_month,
				best_month_profit = EXCLUDED.best_month_profit,
				profit_margin = EXCLUDED.profit_margin,
				yoy_growth = EXCLUDED.yoy_growth,
				total_finance_cost = EXCLUDED.total_finance_cost,
				total_net_profit = EXCLUDED.total_net_profit,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// GetLatestYear retorna o ano do relatório anual mais recente, ou nil
func (r *yearlyReportRepository) GetLatestYear() (*int, error) {
	query, args, err := squirrel.
		Select("MAX(yr.year)").
		From(yearlyReportsTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var latest sql.NullInt64
	if err := r.conn.QueryRow(query, args...).Scan(&latest); err != nil {
		return nil, fmt.Errorf("erro ao buscar ano mais recente: %w", err)
	}

	if !latest.Valid {
		return nil, nil
	}

	year := int(latest.Int64)
	return &year, nil
}
