package financing

import (
	"testing"
	"time"

	repomocks "github.com/FarmanOthman/BCMS-Server-sub001/infrastructure/repository/mocks"
	"github.com/FarmanOthman/BCMS-Server-sub001/internal/domain"
	"github.com/FarmanOthman/BCMS-Server-sub001/internal/usecases/financing/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func typePtr(t domain.FinanceRecordType) *domain.FinanceRecordType {
	return &t
}

func floatPtr(f float64) *float64 {
	return &f
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestService_CreateRecord(t *testing.T) {
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		req         *CreateFinanceRecordRequest
		setup       func(financeRepo *repomocks.MockFinanceRecordRepository, observer *mocks.MockFinanceObserver)
		expectedErr error
		validate    func(t *testing.T, record *domain.FinanceRecord)
	}{
		{
			name: "Despesa válida - gravada e observador notificado",
			req: &CreateFinanceRecordRequest{
				Type:       domain.FinanceRecordExpense,
				Cost:       2500,
				RecordDate: day,
			},
			setup: func(financeRepo *repomocks.MockFinanceRecordRepository, observer *mocks.MockFinanceObserver) {
				financeRepo.EXPECT().Create(gomock.Any()).Return(nil)
				observer.EXPECT().OnFinanceRecordChanged(day)
			},
			validate: func(t *testing.T, record *domain.FinanceRecord) {
				assert.NotEmpty(t, record.ID)
				assert.Equal(t, domain.FinanceRecordExpense, record.Type)
				assert.Equal(t, 2500.0, record.Cost)
				assert.Equal(t, day, record.RecordDate)
			},
		},
		{
			name: "Tipo desconhecido - rejeitado antes da gravação",
			req: &CreateFinanceRecordRequest{
				Type:       "transfer",
				Cost:       100,
				RecordDate: day,
			},
			setup:       func(*repomocks.MockFinanceRecordRepository, *mocks.MockFinanceObserver) {},
			expectedErr: ErrInvalidType,
		},
		{
			name: "Custo não positivo - rejeitado antes da gravação",
			req: &CreateFinanceRecordRequest{
				Type:       domain.FinanceRecordIncome,
				Cost:       0,
				RecordDate: day,
			},
			setup:       func(*repomocks.MockFinanceRecordRepository, *mocks.MockFinanceObserver) {},
			expectedErr: ErrInvalidCost,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			financeRepo := repomocks.NewMockFinanceRecordRepository(ctrl)
			observer := mocks.NewMockFinanceObserver(ctrl)
			service := NewService(financeRepo).WithObserver(observer)

			tt.setup(financeRepo, observer)

			record, err := service.CreateRecord(tt.req)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, record)
				return
			}

			assert.NoError(t, err)
			tt.validate(t, record)
		})
	}
}

func TestService_UpdateRecord(t *testing.T) {
	oldDay := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	newDay := time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC)

	existingRecord := func() *domain.FinanceRecord {
		return &domain.FinanceRecord{
			ID:         "FIN001",
			Type:       domain.FinanceRecordExpense,
			Cost:       2500,
			RecordDate: oldDay,
		}
	}

	t.Run("Custo alterado - notifica apenas a data original", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		financeRepo := repomocks.NewMockFinanceRecordRepository(ctrl)
		observer := mocks.NewMockFinanceObserver(ctrl)
		service := NewService(financeRepo).WithObserver(observer)

		financeRepo.EXPECT().GetByID("FIN001").Return(existingRecord(), nil)
		financeRepo.EXPECT().Update(gomock.Any()).Return(nil)
		observer.EXPECT().OnFinanceRecordChanged(oldDay).Times(1)

		record, err := service.UpdateRecord(&domain.UpdateFinanceRecordRequest{
			ID:   "FIN001",
			Cost: floatPtr(3000),
		})

		assert.NoError(t, err)
		assert.Equal(t, 3000.0, record.Cost)
	})

	t.Run("Data movida para outro mês - notifica as duas datas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		financeRepo := repomocks.NewMockFinanceRecordRepository(ctrl)
		observer := mocks.NewMockFinanceObserver(ctrl)
		service := NewService(financeRepo).WithObserver(observer)

		financeRepo.EXPECT().GetByID("FIN001").Return(existingRecord(), nil)
		financeRepo.EXPECT().Update(gomock.Any()).Return(nil)
		observer.EXPECT().OnFinanceRecordChanged(oldDay)
		observer.EXPECT().OnFinanceRecordChanged(newDay)

		record, err := service.UpdateRecord(&domain.UpdateFinanceRecordRequest{
			ID:         "FIN001",
			RecordDate: timePtr(newDay),
		})

		assert.NoError(t, err)
		assert.Equal(t, newDay, record.RecordDate)
	})

	t.Run("Tipo trocado de despesa para receita", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		financeRepo := repomocks.NewMockFinanceRecordRepository(ctrl)
		observer := mocks.NewMockFinanceObserver(ctrl)
		service := NewService(financeRepo).WithObserver(observer)

		financeRepo.EXPECT().GetByID("FIN001").Return(existingRecord(), nil)
		financeRepo.EXPECT().Update(gomock.Any()).Return(nil)
		observer.EXPECT().OnFinanceRecordChanged(oldDay)

		record, err := service.UpdateRecord(&domain.UpdateFinanceRecordRequest{
			ID:   "FIN001",
			Type: typePtr(domain.FinanceRecordIncome),
		})

		assert.NoError(t, err)
		assert.Equal(t, domain.FinanceRecordIncome, record.Type)
	})

	t.Run("Lançamento inexistente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		financeRepo := repomocks.NewMockFinanceRecordRepository(ctrl)
		service := NewService(financeRepo)

		financeRepo.EXPECT().GetByID("FIN999").Return(nil, nil)

		record, err := service.UpdateRecord(&domain.UpdateFinanceRecordRequest{ID: "FIN999"})

		assert.ErrorIs(t, err, ErrRecordNotFound)
		assert.Nil(t, record)
	})
}

func TestService_DeleteRecord(t *testing.T) {
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("Lançamento removido - observador notificado com a data da linha", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		financeRepo := repomocks.NewMockFinanceRecordRepository(ctrl)
		observer := mocks.NewMockFinanceObserver(ctrl)
		service := NewService(financeRepo).WithObserver(observer)

		financeRepo.EXPECT().
			GetByID("FIN001").
			Return(&domain.FinanceRecord{ID: "FIN001", RecordDate: day}, nil)
		financeRepo.EXPECT().Delete("FIN001").Return(nil)
		observer.EXPECT().OnFinanceRecordChanged(day)

		err := service.DeleteRecord("FIN001")

		assert.NoError(t, err)
	})

	t.Run("Lançamento inexistente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		financeRepo := repomocks.NewMockFinanceRecordRepository(ctrl)
		service := NewService(financeRepo)

		financeRepo.EXPECT().GetByID("FIN999").Return(nil, nil)

		err := service.DeleteRecord("FIN999")

		assert.ErrorIs(t, err, ErrRecordNotFound)
	})
}

func TestService_ListRecordsByMonth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	financeRepo := repomocks.NewMockFinanceRecordRepository(ctrl)
	service := NewService(financeRepo)

	startDate := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)

	financeRepo.EXPECT().
		ListByDateRange(startDate, endDate).
		Return([]*domain.FinanceRecord{{ID: "FIN001"}}, nil)

	records, err := service.ListRecordsByMonth(2024, 2)

	assert.NoError(t, err)
	assert.Len(t, records, 1)
}
