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
	generationTrackerTable = "report_generation_tracker"

	// A tabela guarda exatamente uma linha, criada sob demanda
	generationTrackerRowID = 1
)

type GenerationTrackerRepository interface {
	Get() (*domain.GenerationTracker, error)
	Save(tracker *domain.GenerationTracker) error
}

type generationTrackerRepository struct {
	conn *postgres.Connection
}

func NewGenerationTrackerRepository(conn *postgres.Connection) GenerationTrackerRepository {
	return &generationTrackerRepository{
		conn: conn,
	}
}

// Get retorna a linha única de marcas d'água, criando-a zerada na primeira
// leitura
func (r *generationTrackerRepository) Get() (*domain.GenerationTracker, error) {
	query, args, err := squirrel.
		Select("last_daily_report_date", "last_monthly_report_year", "last_monthly_report_month", "last_yearly_report_year", "updated_at").
		From(generationTrackerTable).
		Where(squirrel.Eq{"id": generationTrackerRowID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	tracker := &domain.GenerationTracker{}
	var lastDaily sql.NullTime
	var lastMonthlyYear, lastMonthlyMonth, lastYearlyYear sql.NullInt64

	row := r.conn.QueryRow(query, args...)
	err = row.Scan(&lastDaily, &lastMonthlyYear, &lastMonthlyMonth, &lastYearlyYear, &tracker.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return r.create()
		}
		return nil, fmt.Errorf("erro ao escanear tracker de geração: %w", err)
	}

	if lastDaily.Valid {
		date := domain.DateOnly(lastDaily.Time)
		tracker.LastDailyReportDate = &date
	}
	if lastMonthlyYear.Valid {
		year := int(lastMonthlyYear.Int64)
		tracker.LastMonthlyReportYear = &year
	}
	if lastMonthlyMonth.Valid {
		month := int(lastMonthlyMonth.Int64)
		tracker.LastMonthlyReportMonth = &month
	}
	if lastYearlyYear.Valid {
		year := int(lastYearlyYear.Int64)
		tracker.LastYearlyReportYear = &year
	}

	return tracker, nil
}

func (r *generationTrackerRepository) Save(tracker *domain.GenerationTracker) error {
	var lastDaily interface{}
	if tracker.LastDailyReportDate != nil {
		lastDaily = tracker.LastDailyReportDate.Format(time.DateOnly)
	}

	query := squirrel.StatementBuilder.
		Insert(generationTrackerTable).
		Columns("id", "last_daily_report_date", "last_monthly_report_year", "last_monthly_report_month", "last_yearly_report_year").
		Values(
			generationTrackerRowID,
			lastDaily,
			tracker.LastMonthlyReportYear,
			tracker.LastMonthlyReportMonth,
			tracker.LastYearlyReportYear,
		).
		Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				last_daily_report_date = EXCLUDED.last_daily_report_date,
				last_monthly_report_year = EXCLUDED.last_monthly_report_year,
				last_monthly_report_month = EXCLUDED.last_monthly_report_month,
				last_yearly_report_year = EXCLUDED.last_yearly_report_year,
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

func (r *generationTrackerRepository) create() (*domain.GenerationTracker, error) {
	tracker := &domain.GenerationTracker{}

	if err := r.Save(tracker); err != nil {
		return nil, fmt.Errorf("erro ao criar tracker de geração: %w", err)
	}

	return tracker, nil
}
