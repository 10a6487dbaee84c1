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
	buyersTable = "buyers b"
)

const buyerColumns = "b.id, b.name, b.phone, b.address, b.created_at, b.updated_at"

type BuyerRepository interface {
	GetByID(id string) (*domain.Buyer, error)
	Create(buyer *domain.Buyer) error
}

type buyerRepository struct {
	conn *postgres.Connection
}

func NewBuyerRepository(conn *postgres.Connection) BuyerRepository {
	return &buyerRepository{
		conn: conn,
	}
}

func (r *buyerRepository) GetByID(id string) (*domain.Buyer, error) {
	query, args, err := squirrel.
		Select(buyerColumns).
		From(buyersTable).
		Where(squirrel.Eq{"b.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	buyer := &domain.Buyer{}
	err = r.conn.QueryRow(query, args...).Scan(
		&buyer.ID,
		&buyer.Name,
		&buyer.Phone,
		&buyer.Address,
		&buyer.CreatedAt,
		&buyer.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear comprador: %w", err)
	}

	return buyer, nil
}

func (r *buyerRepository) Create(buyer *domain.Buyer) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("buyers").
		Columns("id", "name", "phone", "address").
		Values(
			buyer.ID,
			buyer.Name,
			buyer.Phone,
			buyer.Address,
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
