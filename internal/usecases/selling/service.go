package selling

import (
	"fmt"
	"time"

	"github.com/FarmanOthman/BCMS-Server-sub001/infrastructure/repository"
	"github.com/FarmanOthman/BCMS-Server-sub001/internal/domain"
	"github.com/FarmanOthman/BCMS-Server-sub001/pkg/utils"
)

// SaleObserver recebe os eventos de mutação de vendas depois da persistência.
// As datas carregadas são as chaves de período afetadas pela mutação.
type SaleObserver interface {
	OnSaleCreated(saleDate time.Time)
	OnSaleUpdated(oldDate, newDate time.Time)
	OnSaleDeleted(saleDate time.Time)
}

// CreateSaleRequest contém os dados para registrar uma venda
type CreateSaleRequest struct {
	CarID     string    `json:"car_id"`
	BuyerID   string    `json:"buyer_id"`
	SalePrice float64   `json:"sale_price"`
	SaleDate  time.Time `json:"sale_date"`
}

type SaleService interface {
	GetSale(id string) (*domain.Sale, error)
	ListSalesByDate(date time.Time) ([]*domain.Sale, error)
	CreateSale(req *CreateSaleRequest) (*domain.Sale, error)
	UpdateSale(req *domain.UpdateSaleRequest) (*domain.Sale, error)
	DeleteSale(id string) error
}

// Service implementa SaleService. A mutação sempre persiste primeiro e só
// depois notifica o observador; a notificação nunca desfaz a mutação.
type Service struct {
	saleRepo  repository.SaleRepository
	carRepo   repository.CarRepository
	buyerRepo repository.BuyerRepository
	observer  SaleObserver
}

func NewService(
	saleRepo repository.SaleRepository,
	carRepo repository.CarRepository,
	buyerRepo repository.BuyerRepository,
) *Service {
	return &Service{
		saleRepo:  saleRepo,
		carRepo:   carRepo,
		buyerRepo: buyerRepo,
	}
}

// WithObserver registra o observador de mutações de venda
func (s *Service) WithObserver(observer SaleObserver) *Service {
	s.observer = observer
	return s
}

func (s *Service) GetSale(id string) (*domain.Sale, error) {
	sale, err := s.saleRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar venda: %w", err)
	}
	if sale == nil {
		return nil, ErrSaleNotFound
	}

	return sale, nil
}

func (s *Service) ListSalesByDate(date time.Time) ([]*domain.Sale, error) {
	return s.saleRepo.ListByDate(domain.DateOnly(date))
}

// CreateSale registra uma venda. O custo de aquisição vem do cadastro do
// carro e o lucro é congelado na linha no momento da escrita.
func (s *Service) CreateSale(req *CreateSaleRequest) (*domain.Sale, error) {
	if req.SalePrice <= 0 {
		return nil, ErrInvalidSalePrice
	}

	car, err := s.carRepo.GetByID(req.CarID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar carro: %w", err)
	}
	if car == nil {
		return nil, ErrCarNotFound
	}
	if car.Status == domain.CarStatusSold {
		return nil, ErrCarAlreadySold
	}

	buyer, err := s.buyerRepo.GetByID(req.BuyerID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar comprador: %w", err)
	}
	if buyer == nil {
		return nil, ErrBuyerNotFound
	}

	id, err := utils.GenerateEntityID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar identificador da venda: %w", err)
	}

	sale := &domain.Sale{
		ID:           id,
		CarID:        car.ID,
		BuyerID:      buyer.ID,
		SalePrice:    req.SalePrice,
		PurchaseCost: car.CostPrice,
		ProfitLoss:   req.SalePrice - car.CostPrice,
		SaleDate:     domain.DateOnly(req.SaleDate),
	}

	if err := s.saleRepo.Create(sale); err != nil {
		return nil, fmt.Errorf("erro ao gravar venda: %w", err)
	}

	if err := s.carRepo.UpdateStatus(car.ID, domain.CarStatusSold); err != nil {
		return nil, fmt.Errorf("erro ao marcar carro como vendido: %w", err)
	}

	s.notifyCreated(sale.SaleDate)

	return sale, nil
}

// UpdateSale aplica os campos presentes no request. Se a data da venda mudou,
// o observador recebe as duas datas afetadas.
func (s *Service) UpdateSale(req *domain.UpdateSaleRequest) (*domain.Sale, error) {
	sale, err := s.saleRepo.GetByID(req.ID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar venda: %w", err)
	}
	if sale == nil {
		return nil, ErrSaleNotFound
	}

	oldDate := sale.SaleDate

	if req.SalePrice != nil {
		if *req.SalePrice <= 0 {
			return nil, ErrInvalidSalePrice
		}
		sale.SalePrice = *req.SalePrice
		sale.ProfitLoss = sale.SalePrice - sale.PurchaseCost
	}

	if req.SaleDate != nil {
		sale.SaleDate = domain.DateOnly(*req.SaleDate)
	}

	if err := s.saleRepo.Update(sale); err != nil {
		return nil, fmt.Errorf("erro ao atualizar venda: %w", err)
	}

	s.notifyUpdated(oldDate, sale.SaleDate)

	return sale, nil
}

// DeleteSale remove a venda e devolve o carro ao estoque
func (s *Service) DeleteSale(id string) error {
	sale, err := s.saleRepo.GetByID(id)
	if err != nil {
		return fmt.Errorf("erro ao buscar venda: %w", err)
	}
	if sale == nil {
		return ErrSaleNotFound
	}

	if err := s.saleRepo.Delete(sale.ID); err != nil {
		return fmt.Errorf("erro ao remover venda: %w", err)
	}

	if err := s.carRepo.UpdateStatus(sale.CarID, domain.CarStatusAvailable); err != nil {
		return fmt.Errorf("erro ao devolver carro ao estoque: %w", err)
	}

	s.notifyDeleted(sale.SaleDate)

	return nil
}

func (s *Service) notifyCreated(saleDate time.Time) {
	if s.observer != nil {
		s.observer.OnSaleCreated(saleDate)
	}
}

func (s *Service) notifyUpdated(oldDate, newDate time.Time) {
	if s.observer != nil {
		s.observer.OnSaleUpdated(oldDate, newDate)
	}
}

func (s *Service) notifyDeleted(saleDate time.Time) {
	if s.observer != nil {
		s.observer.OnSaleDeleted(saleDate)
	}
}
