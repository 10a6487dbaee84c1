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
	dailyReportsTable = "daily_reports dr"
)

const dailyReportColumns = "dr.report_date, dr.total_sales, dr.total_revenue, dr.total_profit, dr.avg_profit_per_sale, dr.most_profitable_car_id, dr.highest_single_profit, dr.created_at, dr.updated_at"

type DailyReportRepository interface {
	GetByDate(date time.Time) (*domain.DailyReport, error)
	SaveOrUpdate(report *domain.DailyReport) error
	GetLatestDate() (*time.Time, error)
}

type dailyReportRepository struct {
	conn *postgres.Connection
}

func NewDailyReportRepository(conn *postgres.Connection) DailyReportRepository {
	return &dailyReportRepository{
		conn: conn,
	}
}

func (r *dailyReportRepository) GetByDate(date time.Time) (*domain.DailyReport, error) {
	query, args, err := squirrel.
		Select(dailyReportColumns).
		From(dailyReportsTable).
		Where(squirrel.Eq{"dr.report_date": date.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	report := &domain.DailyReport{}
	row := r.conn.QueryRow(query, args...)
	err = row.Scan(
		&report.ReportDate,
		&report.TotalSales,
		&report.TotalRevenue,
		&report.TotalProfit,
		&report.AvgProfitPerSale,
		&report.MostProfitableCarID,
		&report.HighestSingleProfit,
		&report.CreatedAt,
		&report.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear relatório diário: %w", err)
	}

	report.ReportDate = domain.DateOnly(report.ReportDate)

	return report, nil
}

// SaveOrUpdate insere ou sobrescreve a linha do dia. O ON CONFLICT garante no
// máximo uma linha por data e serializa escritas concorrentes na mesma chave.
func (r *dailyReportRepository) SaveOrUpdate(report *domain.DailyReport) error {
	query := squirrel.StatementBuilder.
		Insert("daily_reports").
		Columns("report_date", "total_sales", "total_revenue", "total_profit", "avg_profit_per_sale", "most_profitable_car_id", "highest_single_profit").
		Values(
			report.ReportDate.Format(time.DateOnly),
			report.TotalSales,
			report.TotalRevenue,
			report.TotalProfit,
			report.AvgProfitPerSale,
			report.MostProfitableCarID,
			report.HighestSingleProfit,
		).
		Suffix(`
			ON CONFLICT (report_date) DO UPDATE SET
				total_sales = EXCLUDED.total_sales,
				total_revenue = EXCLUDED.total_revenue,
				total_profit = EXCLUDED.total_profit,
				avg_profit_per_sale = EXCLUDED.avg_profit_per_sale,
				most_profitable_car_id = EXCLUDED.most_profitable_car_id,
				highest_single_profit = EXCLUDED.highest_single_profit,
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

// GetLatestDate retorna a data do relatório diário mais recente, ou nil se
// nenhum relatório existe. Usada para inicializar a marca d'água.
func (r *dailyReportRepository) GetLatestDate() (*time.Time, error) {
	query, args, err := squirrel.
		Select("MAX(dr.report_date)").
		From(dailyReportsTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var latest sql.NullTime
	if err := r.conn.QueryRow(query, args...).Scan(&latest); err != nil {
		return nil, fmt.Errorf("erro ao buscar data mais recente: %w", err)
	}

	if !latest.Valid {
		return nil, nil
	}

	date := domain.DateOnly(latest.Time)
	return &date, nil
}
