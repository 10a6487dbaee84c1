package inventorying

import (
	"fmt"

	"github.com/FarmanOthman/BCMS-Server-sub001/infrastructure/repository"
	"github.com/FarmanOthman/BCMS-Server-sub001/internal/domain"
	"github.com/FarmanOthman/BCMS-Server-sub001/pkg/utils"
)

// RegisterCarRequest contém os dados para cadastrar um carro no estoque
type RegisterCarRequest struct {
	Maker     string  `json:"maker"`
	Model     string  `json:"model"`
	Year      int     `json:"year"`
	Color     string  `json:"color"`
	CostPrice float64 `json:"cost_price"`
}

// RegisterBuyerRequest contém os dados para cadastrar um comprador
type RegisterBuyerRequest struct {
	Name    string  `json:"name"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

type InventoryService interface {
	RegisterCar(req *RegisterCarRequest) (*domain.Car, error)
	GetCar(id string) (*domain.Car, error)
	ListCars() ([]*domain.Car, error)
	RegisterBuyer(req *RegisterBuyerRequest) (*domain.Buyer, error)
	GetBuyer(id string) (*domain.Buyer, error)
}

// Service implementa InventoryService. O estoque é o cadastro de origem das
// vendas: o custo de aquisição congelado na venda vem daqui.
type Service struct {
	carRepo   repository.CarRepository
	buyerRepo repository.BuyerRepository
}

func NewService(
	carRepo repository.CarRepository,
	buyerRepo repository.BuyerRepository,
) *Service {
	return &Service{
		carRepo:   carRepo,
		buyerRepo: buyerRepo,
	}
}

// RegisterCar cadastra um carro com status available
func (s *Service) RegisterCar(req *RegisterCarRequest) (*domain.Car, error) {
	if req.Maker == "" || req.Model == "" || req.Year == 0 {
		return nil, ErrMissingCarData
	}
	if req.CostPrice <= 0 {
		return nil, ErrInvalidCostPrice
	}

	id, err := utils.GenerateEntityID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar identificador: %w", err)
	}

	car := &domain.Car{
		ID:        id,
		Maker:     req.Maker,
		Model:     req.Model,
		Year:      req.Year,
		Color:     req.Color,
		CostPrice: req.CostPrice,
		Status:    domain.CarStatusAvailable,
	}

	if err := s.carRepo.Create(car); err != nil {
		return nil, fmt.Errorf("erro ao cadastrar carro: %w", err)
	}

	return car, nil
}

func (s *Service) GetCar(id string) (*domain.Car, error) {
	car, err := s.carRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar carro: %w", err)
	}
	if car == nil {
		return nil, ErrCarNotFound
	}

	return car, nil
}

func (s *Service) ListCars() ([]*domain.Car, error) {
	return s.carRepo.List()
}

// RegisterBuyer cadastra um comprador
func (s *Service) RegisterBuyer(req *RegisterBuyerRequest) (*domain.Buyer, error) {
	if req.Name == "" {
		return nil, ErrMissingBuyerName
	}

	id, err := utils.GenerateEntityID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar identificador: %w", err)
	}

	buyer := &domain.Buyer{
		ID:      id,
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
	}

	if err := s.buyerRepo.Create(buyer); err != nil {
		return nil, fmt.Errorf("erro ao cadastrar comprador: %w", err)
	}

	return buyer, nil
}

func (s *Service) GetBuyer(id string) (*domain.Buyer, error) {
	buyer, err := s.buyerRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar comprador: %w", err)
	}
	if buyer == nil {
		return nil, ErrBuyerNotFound
	}

	return buyer, nil
}
