package financing

import (
	"fmt"
	"time"

	"github.com/FarmanOthman/BCMS-Server-sub001/infrastructure/repository"
	"github.com/FarmanOthman/BCMS-Server-sub001/internal/domain"
	"github.com/FarmanOthman/BCMS-Server-sub001/pkg/utils"
)

// FinanceObserver recebe os eventos de mutação de lançamentos financeiros
// depois da persistência. Uma atualização que muda a data do lançamento
// dispara um evento por data afetada.
type FinanceObserver interface {
	OnFinanceRecordChanged(recordDate time.Time)
}

// CreateFinanceRecordRequest contém os dados de um novo lançamento
type CreateFinanceRecordRequest struct {
	Type        domain.FinanceRecordType `json:"type"`
	Cost        float64                  `json:"cost"`
	Description *string                  `json:"description"`
	RecordDate  time.Time                `json:"record_date"`
}

type FinanceService interface {
	GetRecord(id string) (*domain.FinanceRecord, error)
	ListRecordsByMonth(year, month int) ([]*domain.FinanceRecord, error)
	CreateRecord(req *CreateFinanceRecordRequest) (*domain.FinanceRecord, error)
	UpdateRecord(req *domain.UpdateFinanceRecordRequest) (*domain.FinanceRecord, error)
	DeleteRecord(id string) error
}

// Service implementa FinanceService seguindo a mesma disciplina das vendas:
// persiste primeiro, notifica depois.
type Service struct {
	financeRepo repository.FinanceRecordRepository
	observer    FinanceObserver
}

func NewService(financeRepo repository.FinanceRecordRepository) *Service {
	return &Service{
		financeRepo: financeRepo,
	}
}

// WithObserver registra o observador de mutações de lançamentos
func (s *Service) WithObserver(observer FinanceObserver) *Service {
	s.observer = observer
	return s
}

func (s *Service) GetRecord(id string) (*domain.FinanceRecord, error) {
	record, err := s.financeRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar lançamento: %w", err)
	}
	if record == nil {
		return nil, ErrRecordNotFound
	}

	return record, nil
}

func (s *Service) ListRecordsByMonth(year, month int) ([]*domain.FinanceRecord, error) {
	startDate, endDate := domain.MonthPeriod{Year: year, Month: month}.Range()
	return s.financeRepo.ListByDateRange(startDate, endDate)
}

func (s *Service) CreateRecord(req *CreateFinanceRecordRequest) (*domain.FinanceRecord, error) {
	if err := validateType(req.Type); err != nil {
		return nil, err
	}
	if req.Cost <= 0 {
		return nil, ErrInvalidCost
	}

	id, err := utils.GenerateEntityID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar identificador do lançamento: %w", err)
	}

	record := &domain.FinanceRecord{
		ID:          id,
		Type:        req.Type,
		Cost:        req.Cost,
		Description: req.Description,
		RecordDate:  domain.DateOnly(req.RecordDate),
	}

	if err := s.financeRepo.Create(record); err != nil {
		return nil, fmt.Errorf("erro ao gravar lançamento: %w", err)
	}

	s.notifyChanged(record.RecordDate)

	return record, nil
}

// UpdateRecord aplica os campos presentes no request. Se a data do lançamento
// mudou de mês, os dois meses precisam ser ressincronizados, então o
// observador é notificado para cada data.
func (s *Service) UpdateRecord(req *domain.UpdateFinanceRecordRequest) (*domain.FinanceRecord, error) {
	record, err := s.financeRepo.GetByID(req.ID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar lançamento: %w", err)
	}
	if record == nil {
		return nil, ErrRecordNotFound
	}

	oldDate := record.RecordDate

	if req.Type != nil {
		if err := validateType(*req.Type); err != nil {
			return nil, err
		}
		record.Type = *req.Type
	}

	if req.Cost != nil {
		if *req.Cost <= 0 {
			return nil, ErrInvalidCost
		}
		record.Cost = *req.Cost
	}

	if req.Description != nil {
		record.Description = req.Description
	}

	if req.RecordDate != nil {
		record.RecordDate = domain.DateOnly(*req.RecordDate)
	}

	if err := s.financeRepo.Update(record); err != nil {
		return nil, fmt.Errorf("erro ao atualizar lançamento: %w", err)
	}

	s.notifyChanged(oldDate)
	if !record.RecordDate.Equal(oldDate) {
		s.notifyChanged(record.RecordDate)
	}

	return record, nil
}

func (s *Service) DeleteRecord(id string) error {
	record, err := s.financeRepo.GetByID(id)
	if err != nil {
		return fmt.Errorf("erro ao buscar lançamento: %w", err)
	}
	if record == nil {
		return ErrRecordNotFound
	}

	if err := s.financeRepo.Delete(record.ID); err != nil {
		return fmt.Errorf("erro ao remover lançamento: %w", err)
	}

	s.notifyChanged(record.RecordDate)

	return nil
}

func (s *Service) notifyChanged(recordDate time.Time) {
	if s.observer != nil {
		s.observer.OnFinanceRecordChanged(recordDate)
	}
}

func validateType(recordType domain.FinanceRecordType) error {
	if recordType != domain.FinanceRecordIncome && recordType != domain.FinanceRecordExpense {
		return ErrInvalidType
	}

	return nil
}
