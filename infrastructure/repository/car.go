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
	carsTable = "cars c"
)

const carColumns = "c.id, c.maker, c.model, c.year, c.color, c.cost_price, c.status, c.created_at, c.updated_at"

type CarRepository interface {
	GetByID(id string) (*domain.Car, error)
	List() ([]*domain.Car, error)
	Create(car *domain.Car) error
	UpdateStatus(id, status string) error
}

type carRepository struct {
	conn *postgres.Connection
}

func NewCarRepository(conn *postgres.Connection) CarRepository {
	return &carRepository{
		conn: conn,
	}
}

func (r *carRepository) GetByID(id string) (*domain.Car, error) {
	query, args, err := squirrel.
		Select(carColumns).
		From(carsTable).
		Where(squirrel.Eq{"c.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	car := &domain.Car{}
	err = r.conn.QueryRow(query, args...).Scan(
		&car.ID,
		&car.Maker,
		&car.Model,
		&car.Year,
		&car.Color,
		&car.CostPrice,
		&car.Status,
		&car.CreatedAt,
		&car.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear carro: %w", err)
	}

	return car, nil
}

func (r *carRepository) List() ([]*domain.Car, error) {
	query, args, err := squirrel.
		Select(carColumns).
		From(carsTable).
		OrderBy("c.created_at ASC").
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

	cars := make([]*domain.Car, 0)
	for rows.Next() {
		car := &domain.Car{}
		err := rows.Scan(
			&car.ID,
			&car.Maker,
			&car.Model,
			&car.Year,
			&car.Color,
			&car.CostPrice,
			&car.Status,
			&car.CreatedAt,
			&car.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear carros: %w", err)
		}
		cars = append(cars, car)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return cars, nil
}

func (r *carRepository) Create(car *domain.Car) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("cars").
		Columns("id", "maker", "model", "year", "color", "cost_price", "status").
		Values(
			car.ID,
			car.Maker,
			car.Model,
			car.Year,
			car.Color,
			car.CostPrice,
			car.Status,
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

func (r *carRepository) UpdateStatus(id, status string) error {
	query, args, err := squirrel.
		Update("cars").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
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
