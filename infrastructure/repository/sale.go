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
	salesTable = "sales s"
)

// saleColumns é a projeção padrão das consultas de vendas
const saleColumns = "s.id, s.car_id, s.buyer_id, s.sale_price, s.purchase_cost, s.profit_loss, s.sale_date, s.created_at, s.updated_at"

// saleListOrder define a ordem natural do fluxo de vendas. O desempate do
// carro mais lucrativo depende dessa ordem: a primeira venda inserida vence.
const saleListOrder = "s.sale_date ASC, s.created_at ASC, s.id ASC"

type SaleRepository interface {
	GetByID(id string) (*domain.Sale, error)
	ListByDate(date time.Time) ([]*domain.Sale, error)
	ListByDateRange(startDate, endDate time.Time) ([]*domain.Sale, error)
	DistinctSaleDates(startDate, endDate time.Time) ([]time.Time, error)
	Create(sale *domain.Sale) error
	Update(sale *domain.Sale) error
	Delete(id string) error
}

type saleRepository struct {
	conn *postgres.Connection
}

func NewSaleRepository(conn *postgres.Connection) SaleRepository {
	return &saleRepository{
		conn: conn,
	}
}

func (r *saleRepository) GetByID(id string) (*domain.Sale, error) {
	query, args, err := squirrel.
		Select(saleColumns).
		From(salesTable).
		Where(squirrel.Eq{"s.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	sale, err := r.scanSaleRow(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear venda: %w", err)
	}

	return sale, nil
}

func (r *saleRepository) ListByDate(date time.Time) ([]*domain.Sale, error) {
	query, args, err := squirrel.
		Select(saleColumns).
		From(salesTable).
		Where(squirrel.Eq{"s.sale_date": date.Format(time.DateOnly)}).
		OrderBy(saleListOrder).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.querySales(query, args...)
}

func (r *saleRepository) ListByDateRange(startDate, endDate time.Time) ([]*domain.Sale, error) {
	query, args, err := squirrel.
		Select(saleColumns).
		From(salesTable).
		Where(squirrel.GtOrEq{"s.sale_date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"s.sale_date": endDate.Format(time.DateOnly)}).
		OrderBy(saleListOrder).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.querySales(query, args...)
}

// DistinctSaleDates lista as datas com pelo menos uma venda no intervalo,
// em ordem crescente. Usada pelo check-missing para descobrir dias a gerar.
func (r *saleRepository) DistinctSaleDates(startDate, endDate time.Time) ([]time.Time, error) {
	query, args, err := squirrel.
		Select("DISTINCT s.sale_date").
		From(salesTable).
		Where(squirrel.GtOrEq{"s.sale_date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"s.sale_date": endDate.Format(time.DateOnly)}).
		OrderBy("s.sale_date ASC").
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

	dates := make([]time.Time, 0)
	for rows.Next() {
		var date time.Time
		if err := rows.Scan(&date); err != nil {
			return nil, fmt.Errorf("erro ao escanear data de venda: %w", err)
		}
		dates = append(dates, domain.DateOnly(date))
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return dates, nil
}

func (r *saleRepository) Create(sale *domain.Sale) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("sales").
		Columns("id", "car_id", "buyer_id", "sale_price", "purchase_cost", "profit_loss", "sale_date").
		Values(
			sale.ID,
			sale.CarID,
			sale.BuyerID,
			sale.SalePrice,
			sale.PurchaseCost,
			sale.ProfitLoss,
			sale.SaleDate.Format(time.DateOnly),
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

func (r *saleRepository) Update(sale *domain.Sale) error {
	query, args, err := squirrel.
		Update("sales").
		Set("sale_price", sale.SalePrice).
		Set("profit_loss", sale.ProfitLoss).
		Set("sale_date", sale.SaleDate.Format(time.DateOnly)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": sale.ID}).
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

func (r *saleRepository) Delete(id string) error {
	query, args, err := squirrel.
		Delete("sales").
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

func (r *saleRepository) querySales(query string, args ...interface{}) ([]*domain.Sale, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	sales := make([]*domain.Sale, 0)
	for rows.Next() {
		sale, err := r.scanSaleRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear vendas: %w", err)
		}
		sales = append(sales, sale)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return sales, nil
}

func (r *saleRepository) scanSaleRow(row *sql.Row) (*domain.Sale, error) {
	sale := &domain.Sale{}

	err := row.Scan(
		&sale.ID,
		&sale.CarID,
		&sale.BuyerID,
		&sale.SalePrice,
		&sale.PurchaseCost,
		&sale.ProfitLoss,
		&sale.SaleDate,
		&sale.CreatedAt,
		&sale.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	sale.SaleDate = domain.DateOnly(sale.SaleDate)

	return sale, nil
}

func (r *saleRepository) scanSaleRows(rows *sql.Rows) (*domain.Sale, error) {
	sale := &domain.Sale{}

	err := rows.Scan(
		&sale.ID,
		&sale.CarID,
		&sale.BuyerID,
		&sale.SalePrice,
		&sale.PurchaseCost,
		&sale.ProfitLoss,
		&sale.SaleDate,
		&sale.CreatedAt,
		&sale.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	sale.SaleDate = domain.DateOnly(sale.SaleDate)

	return sale, nil
}
