package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/FarmanOthman/BCMS-Server-sub001/infrastructure/database/postgres"
	"github.com/FarmanOthman/BCMS-Server-sub001/internal/domain"
	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
)

const (
	monthlyReportsTable = "monthly_reports mr"
)

const monthlyReportColumns = "mr.year, mr.month, mr.total_sales, mr.total_revenue, mr.total_profit, mr.avg_daily_profit, mr.best_day, mr.best_day_profit, mr.profit_margin, mr.finance_cost, mr.total_finance_cost, mr.net_profit, mr.created_at, mr.updated_at"

type MonthlyReportRepository interface {
	GetByPeriod(year, month int) (*domain.MonthlyReport, error)
	ListAll() ([]*domain.MonthlyReport, error)
	SaveOrUpdate(report *domain.MonthlyReport) error
	GetLatestPeriod() (*domain.MonthPeriod, error)
}

type monthlyReportRepository struct {
	conn *postgres.Connection
}

func NewMonthlyReportRepository(conn *postgres.Connection) MonthlyReportRepository {
	return &monthlyReportRepository{
		conn: conn,
	}
}

func (r *monthlyReportRepository) GetByPeriod(year, month int) (*domain.MonthlyReport, error) {
	query, args, err := squirrel.
		Select(monthlyReportColumns).
		From(monthlyReportsTable).
		Where(squirrel.Eq{"mr.year": year, "mr.month": month}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	report, err := r.scanReport(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear relatório mensal: %w", err)
	}

	return report, nil
}

func (r *monthlyReportRepository) ListAll() ([]*domain.MonthlyReport, error) {
	query, args, err := squirrel.
		Select(monthlyReportColumns).
		From(monthlyReportsTable).
		OrderBy("mr.year ASC, mr.month ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	reports := make([]*domain.MonthlyReport, 0)
	for rows.Next() {
		report, err := r.scanReport(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear relatórios mensais: %w", err)
		}
		reports = append(reports, report)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return reports, nil
}

func (r *monthlyReportRepository) SaveOrUpdate(report *domain.MonthlyReport) error {
	var bestDay interface{}
	if report.BestDay != nil {
		bestDay = report.BestDay.Format(time.DateOnly)
	}

	query := squirrel.StatementBuilder.
		Insert("monthly_reports").
		Columns("year", "month", "total_sales", "total_revenue", "total_profit", "avg_daily_profit", "best_day", "best_day_profit", "profit_margin", "finance_cost", "total_finance_cost", "net_profit").
		Values(
			report.Year,
			report.Month,
			report.TotalSales,
			report.TotalRevenue,
			report.TotalProfit,
			report.AvgDailyProfit,
			bestDay,
			report.BestDayProfit,
			report.ProfitMargin,
			report.FinanceCost,
			report.TotalFinanceCost,
			report.NetProfit,
		).
		Suffix(`
			ON CONFLICT (year, month) DO UPDATE SET
				total_sales = EXCLUDED.total_sales,
				total_revenue = EXCLUDED.total_revenue,
				total_profit = EXCLUDED.total_profit,
				avg_daily_profit = EXCLUDED.avg_daily_profit,
				best_day = EXCLUDED.best_day,
				best_day_profit = EXCLUDED.best_day_profit,
				profit_margin = EXCLUDED.profit_margin,
				finance_cost = EXCLUDED.finance_cost,
				total_finance_cost = EXCLUDED.total_finance_cost,
				net_profit = EXCLUDED.net_profit,
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

// GetLatestPeriod retorna o período mensal mais recente já gerado, ou nil
func (r *monthlyReportRepository) GetLatestPeriod() (*domain.MonthPeriod, error) {
	query, args, err := squirrel.
		Select("mr.year, mr.month").
		From(monthlyReportsTable).
		OrderBy("mr.year DESC, mr.month DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	period := &domain.MonthPeriod{}
	err = r.conn.QueryRow(query, args...).Scan(&period.Year, &period.Month)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar período mais recente: %w", err)
	}

	return period, nil
}

func (r *monthlyReportRepository) scanReport(scan func(dest ...interface{}) error) (*domain.MonthlyReport, error) {
	report := &domain.MonthlyReport{}
	var bestDay sql.NullTime

	err := scan(
		&report.Year,
		&report.Month,
		&report.TotalSales,
		&report.TotalRevenue,
		&report.TotalProfit,
		&report.AvgDailyProfit,
		&bestDay,
		&report.BestDayProfit,
		&report.ProfitMargin,
		&report.FinanceCost,
		&report.TotalFinanceCost,
		&report.NetProfit,
		&report.CreatedAt,
		&report.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if bestDay.Valid {
		date := domain.DateOnly(bestDay.Time)
		report.BestDay = &date
	}

	return report, nil
}
