package inventorying

import (
	"testing"

	repomocks "github.com/FarmanOthman/BCMS-Server-sub001/infrastructure/repository/mocks"
	"github.com/FarmanOthman/BCMS-Server-sub001/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type inventoryServiceMocks struct {
	carRepo   *repomocks.MockCarRepository
	buyerRepo *repomocks.MockBuyerRepository
}

func newInventoryServiceWithMocks(ctrl *gomock.Controller) (*Service, *inventoryServiceMocks) {
	m := &inventoryServiceMocks{
		carRepo:   repomocks.NewMockCarRepository(ctrl),
		buyerRepo: repomocks.NewMockBuyerRepository(ctrl),
	}

	service := NewService(m.carRepo, m.buyerRepo)

	return service, m
}

func strPtr(s string) *string {
	return &s
}

func TestService_RegisterCar(t *testing.T) {
	tests := []struct {
		name        string
		req         *RegisterCarRequest
		setup       func(m *inventoryServiceMocks)
		expectedErr error
		validate    func(t *testing.T, car *domain.Car)
	}{
		{
			name: "Cadastro válido - carro entra no estoque como available",
			req: &RegisterCarRequest{
				Maker:     "Toyota",
				Model:     "Corolla",
				Year:      2022,
				Color:     "prata",
				CostPrice: 22000,
			},
			setup: func(m *inventoryServiceMocks) {
				m.carRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(car *domain.Car) error {
					assert.NotEmpty(t, car.ID)
					assert.Equal(t, domain.CarStatusAvailable, car.Status)
					return nil
				})
			},
			validate: func(t *testing.T, car *domain.Car) {
				assert.Equal(t, "Toyota", car.Maker)
				assert.Equal(t, 22000.0, car.CostPrice)
				assert.Equal(t, domain.CarStatusAvailable, car.Status)
			},
		},
		{
			name: "Dados obrigatórios ausentes - rejeitado sem tocar no banco",
			req: &RegisterCarRequest{
				Maker:     "Toyota",
				CostPrice: 22000,
			},
			setup:       func(m *inventoryServiceMocks) {},
			expectedErr: ErrMissingCarData,
		},
		{
			name: "Custo de aquisição zero - rejeitado",
			req: &RegisterCarRequest{
				Maker: "Toyota",
				Model: "Corolla",
				Year:  2022,
			},
			setup:       func(m *inventoryServiceMocks) {},
			expectedErr: ErrInvalidCostPrice,
		},
		{
			name: "Falha de persistência - erro propagado",
			req: &RegisterCarRequest{
				Maker:     "Honda",
				Model:     "Civic",
				Year:      2021,
				CostPrice: 24000,
			},
			setup: func(m *inventoryServiceMocks) {
				m.carRepo.EXPECT().Create(gomock.Any()).Return(assert.AnError)
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, m := newInventoryServiceWithMocks(ctrl)
			tt.setup(m)

			car, err := service.RegisterCar(tt.req)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, car)
				return
			}

			assert.NoError(t, err)
			if tt.validate != nil {
				tt.validate(t, car)
			}
		})
	}
}

func TestService_GetCar(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newInventoryServiceWithMocks(ctrl)

	t.Run("Carro existente - retornado como está", func(t *testing.T) {
		m.carRepo.EXPECT().GetByID("CAR001").Return(&domain.Car{ID: "CAR001", Maker: "Toyota"}, nil)

		car, err := service.GetCar("CAR001")

		assert.NoError(t, err)
		assert.Equal(t, "CAR001", car.ID)
	})

	t.Run("Carro inexistente - ErrCarNotFound", func(t *testing.T) {
		m.carRepo.EXPECT().GetByID("CAR999").Return(nil, nil)

		car, err := service.GetCar("CAR999")

		assert.ErrorIs(t, err, ErrCarNotFound)
		assert.Nil(t, car)
	})
}

func TestService_RegisterBuyer(t *testing.T) {
	tests := []struct {
		name        string
		req         *RegisterBuyerRequest
		setup       func(m *inventoryServiceMocks)
		expectedErr error
	}{
		{
			name: "Cadastro válido - ID gerado e dados preservados",
			req: &RegisterBuyerRequest{
				Name:  "João Silva",
				Phone: strPtr("+55 11 99999-0000"),
			},
			setup: func(m *inventoryServiceMocks) {
				m.buyerRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(buyer *domain.Buyer) error {
					assert.NotEmpty(t, buyer.ID)
					assert.Equal(t, "João Silva", buyer.Name)
					return nil
				})
			},
		},
		{
			name:        "Nome ausente - rejeitado sem tocar no banco",
			req:         &RegisterBuyerRequest{},
			setup:       func(m *inventoryServiceMocks) {},
			expectedErr: ErrMissingBuyerName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, m := newInventoryServiceWithMocks(ctrl)
			tt.setup(m)

			buyer, err := service.RegisterBuyer(tt.req)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, buyer)
				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, buyer)
		})
	}
}

func TestService_GetBuyer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newInventoryServiceWithMocks(ctrl)

	t.Run("Comprador inexistente - ErrBuyerNotFound", func(t *testing.T) {
		m.buyerRepo.EXPECT().GetByID("BUY999").Return(nil, nil)

		buyer, err := service.GetBuyer("BUY999")

		assert.ErrorIs(t, err, ErrBuyerNotFound)
		assert.Nil(t, buyer)
	})
}

func TestService_ListCars(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newInventoryServiceWithMocks(ctrl)

	cars := []*domain.Car{
		{ID: "CAR001", Status: domain.CarStatusSold},
		{ID: "CAR002", Status: domain.CarStatusAvailable},
	}
	m.carRepo.EXPECT().List().Return(cars, nil)

	got, err := service.ListCars()

	assert.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, "CAR001", got[0].ID)
}
