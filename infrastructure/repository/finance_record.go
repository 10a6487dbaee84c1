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
	financeRecordsTable = "finance_records fr"
)

const financeRecordColumns = "fr.id, fr.type, fr.cost, fr.description, fr.record_date, fr.created_at, fr.updated_at"

type FinanceRecordRepository interface {
	GetByID(id string) (*domain.FinanceRecord, error)
	ListByDateRange(startDate, endDate time.Time) ([]*domain.FinanceRecord, error)
	Create(record *domain.FinanceRecord) error
	Update(record *domain.FinanceRecord) error
	Delete(id string) error
}

type financeRecordRepository struct {
	conn *postgres.Connection
}

func NewFinanceRecordRepository(conn *postgres.Connection) FinanceRecordRepository {
	return &financeRecordRepository{
		conn: conn,
	}
}

func (r *financeRecordRepository) GetByID(id string) (*domain.FinanceRecord, error) {
	query, args, err := squirrel.
		Select(financeRecordColumns).
		From(financeRecordsTable).
		Where(squirrel.Eq{"fr.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	record := &domain.FinanceRecord{}
	row := r.conn.QueryRow(query, args...)
	err = row.Scan(
		&record.ID,
		&record.Type,
		&record.Cost,
		&record.Description,
		&record.RecordDate,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear lançamento financeiro: %w", err)
	}

	record.RecordDate = domain.DateOnly(record.RecordDate)

	return record, nil
}

func (r *financeRecordRepository) ListByDateRange(startDate, endDate time.Time) ([]*domain.FinanceRecord, error) {
	query, args, err := squirrel.
		Select(financeRecordColumns).
		From(financeRecordsTable).
		Where(squirrel.GtOrEq{"fr.record_date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"fr.record_date": endDate.Format(time.DateOnly)}).
		OrderBy("fr.record_date ASC, fr.created_at ASC, fr.id ASC").
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

	records := make([]*domain.FinanceRecord, 0)
	for rows.Next() {
		record := &domain.FinanceRecord{}
		err := rows.Scan(
			&record.ID,
			&record.Type,
			&record.Cost,
			&record.Description,
			&record.RecordDate,
			&record.CreatedAt,
			&record.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear lançamentos financeiros: %w", err)
		}
		record.RecordDate = domain.DateOnly(record.RecordDate)
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

func (r *financeRecordRepository) Create(record *domain.FinanceRecord) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("finance_records").
		Columns("id", "type", "cost", "description", "record_date").
		Values(
			record.ID,
			record.Type,
			record.Cost,
			record.Description,
			record.RecordDate.Format(time.DateOnly),
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *financeRecordRepository) Update(record *domain.FinanceRecord) error {
	query, args, err := squirrel.
		Update("finance_records").
		Set("type", record.Type).
		Set("cost", record.Cost).
		Set("description", record.Description).
		Set("record_date", record.RecordDate.Format(time.DateOnly)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": record.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *financeRecordRepository) Delete(id string) error {
	query, args, err := squirrel.
		Delete("finance_records").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}
