package reporting_test

import (
	"testing"
	"time"

	repomocks "github.com/FarmanOthman/BCMS-Server-sub001/infrastructure/repository/mocks"
	"github.com/FarmanOthman/BCMS-Server-sub001/internal/domain"
	"github.com/FarmanOthman/BCMS-Server-sub001/internal/usecases/reporting"
	reportingmocks "github.com/FarmanOthman/BCMS-Server-sub001/internal/usecases/reporting/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type serviceMocks struct {
	saleRepo    *repomocks.MockSaleRepository
	financeRepo *repomocks.MockFinanceRecordRepository
	dailyRepo   *repomocks.MockDailyReportRepository
	monthlyRepo *repomocks.MockMonthlyReportRepository
	yearlyRepo  *repomocks.MockYearlyReportRepository
	trackerRepo *repomocks.MockGenerationTrackerRepository
	notifier    *reportingmocks.MockCascadeNotifier
}

func newServiceWithMocks(ctrl *gomock.Controller) (*reporting.Service, *serviceMocks) {
	m := &serviceMocks{
		saleRepo:    repomocks.NewMockSaleRepository(ctrl),
		financeRepo: repomocks.NewMockFinanceRecordRepository(ctrl),
		dailyRepo:   repomocks.NewMockDailyReportRepository(ctrl),
		monthlyRepo: repomocks.NewMockMonthlyReportRepository(ctrl),
		yearlyRepo:  repomocks.NewMockYearlyReportRepository(ctrl),
		trackerRepo: repomocks.NewMockGenerationTrackerRepository(ctrl),
		notifier:    reportingmocks.NewMockCascadeNotifier(ctrl),
	}

	service := reporting.NewService(
		m.saleRepo,
		m.financeRepo,
		m.dailyRepo,
		m.monthlyRepo,
		m.yearlyRepo,
		m.trackerRepo,
	).WithCascade(m.notifier)

	return service, m
}

func testSale(date time.Time, carID string, salePrice, profitLoss float64) *domain.Sale {
	return &domain.Sale{
		ID:         "SALE-" + carID,
		CarID:      carID,
		SalePrice:  salePrice,
		ProfitLoss: profitLoss,
		SaleDate:   date,
	}
}

func TestService_GenerateDailyReport(t *testing.T) {
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		setup       func(m *serviceMocks)
		expectedErr error
		validate    func(t *testing.T, report *domain.DailyReport)
	}{
		{
			name: "Dia com vendas - grava o relatório e dispara a cascata",
			setup: func(m *serviceMocks) {
				m.saleRepo.EXPECT().
					ListByDate(day).
					Return([]*domain.Sale{
						testSale(day, "CAR001", 25000, 3000),
						testSale(day, "CAR002", 18000, 2000),
					}, nil)

				m.dailyRepo.EXPECT().
					SaveOrUpdate(gomock.Any()).
					Return(nil)

				m.notifier.EXPECT().OnDailyReportUpserted(day)
			},
			validate: func(t *testing.T, report *domain.DailyReport) {
				assert.Equal(t, 2, report.TotalSales)
				assert.Equal(t, 43000.0, report.TotalRevenue)
				assert.Equal(t, 5000.0, report.TotalProfit)
			},
		},
		{
			name: "Dia sem vendas - grava linha zerada e ainda dispara a cascata",
			setup: func(m *serviceMocks) {
				m.saleRepo.EXPECT().
					ListByDate(day).
					Return(nil, nil)

				m.dailyRepo.EXPECT().
					SaveOrUpdate(gomock.Any()).
					DoAndReturn(func(report *domain.DailyReport) error {
						assert.Equal(t, 0, report.TotalSales)
						assert.Nil(t, report.MostProfitableCarID)
						return nil
					})

				m.notifier.EXPECT().OnDailyReportUpserted(day)
			},
			validate: func(t *testing.T, report *domain.DailyReport) {
				assert.Equal(t, 0, report.TotalSales)
			},
		},
		{
			name: "Falha na consulta de vendas - nada é gravado",
			setup: func(m *serviceMocks) {
				m.saleRepo.EXPECT().
					ListByDate(day).
					Return(nil, assert.AnError)
			},
			expectedErr: reporting.ErrFetchSales,
		},
		{
			name: "Falha na gravação - cascata não dispara",
			setup: func(m *serviceMocks) {
				m.saleRepo.EXPECT().
					ListByDate(day).
					Return(nil, nil)

				m.dailyRepo.EXPECT().
					SaveOrUpdate(gomock.Any()).
					Return(assert.AnError)
			},
			expectedErr: reporting.ErrSaveDailyReport,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, m := newServiceWithMocks(ctrl)
			tt.setup(m)

			report, err := service.GenerateDailyReport(day)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, report)
				return
			}

			assert.NoError(t, err)
			tt.validate(t, report)
		})
	}
}

func TestService_GenerateDailyReport_normalizaDataParaMeiaNoite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	afternoon := time.Date(2024, 3, 15, 14, 37, 22, 0, time.UTC)
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	m.saleRepo.EXPECT().ListByDate(day).Return(nil, nil)
	m.dailyRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)
	m.notifier.EXPECT().OnDailyReportUpserted(day)

	report, err := service.GenerateDailyReport(afternoon)

	assert.NoError(t, err)
	assert.Equal(t, day, report.ReportDate)
}

func TestService_GenerateDailyReport_semCascataRegistrada(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Sem WithCascade a gravação não dispara nada e não entra em pânico
	saleRepo := repomocks.NewMockSaleRepository(ctrl)
	dailyRepo := repomocks.NewMockDailyReportRepository(ctrl)

	service := reporting.NewService(
		saleRepo,
		repomocks.NewMockFinanceRecordRepository(ctrl),
		dailyRepo,
		repomocks.NewMockMonthlyReportRepository(ctrl),
		repomocks.NewMockYearlyReportRepository(ctrl),
		repomocks.NewMockGenerationTrackerRepository(ctrl),
	)

	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	saleRepo.EXPECT().ListByDate(day).Return(nil, nil)
	dailyRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)

	_, err := service.GenerateDailyReport(day)

	assert.NoError(t, err)
}

func TestService_GenerateMonthlyReport(t *testing.T) {
	startDate := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	march10 := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("Mês válido - agrega vendas e financeiro e sobe para o anual", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newServiceWithMocks(ctrl)

		m.saleRepo.EXPECT().
			ListByDateRange(startDate, endDate).
			Return([]*domain.Sale{testSale(march10, "CAR001", 25000, 3000)}, nil)

		m.financeRepo.EXPECT().
			ListByDateRange(startDate, endDate).
			Return([]*domain.FinanceRecord{
				{Type: domain.FinanceRecordExpense, Cost: 2500, RecordDate: march10},
			}, nil)

		m.monthlyRepo.EXPECT().
			SaveOrUpdate(gomock.Any()).
			DoAndReturn(func(report *domain.MonthlyReport) error {
				assert.Equal(t, 2024, report.Year)
				assert.Equal(t, 3, report.Month)
				assert.Equal(t, 2500.0, report.TotalFinanceCost)
				assert.Equal(t, 500.0, report.NetProfit)
				return nil
			})

		m.notifier.EXPECT().OnMonthlyReportUpserted(2024, 3)

		report, err := service.GenerateMonthlyReport(2024, 3)

		assert.NoError(t, err)
		assert.Equal(t, 1, report.TotalSales)
	})

	t.Run("Mês fora do intervalo - rejeitado antes de qualquer consulta", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _ := newServiceWithMocks(ctrl)

		for _, month := range []int{0, 13, -1} {
			report, err := service.GenerateMonthlyReport(2024, month)

			assert.ErrorIs(t, err, reporting.ErrInvalidMonth)
			assert.Nil(t, report)
		}
	})
}

func TestService_GenerateYearlyReport(t *testing.T) {
	startDate := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	june := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	t.Run("Ano com histórico - crescimento calculado sobre o ano anterior", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newServiceWithMocks(ctrl)

		m.saleRepo.EXPECT().
			ListByDateRange(startDate, endDate).
			Return([]*domain.Sale{testSale(june, "CAR001", 30000, 6000)}, nil)

		m.financeRepo.EXPECT().
			ListByDateRange(startDate, endDate).
			Return(nil, nil)

		m.yearlyRepo.EXPECT().
			GetByYear(2023).
			Return(&domain.YearlyReport{Year: 2023, TotalProfit: 4000}, nil)

		m.yearlyRepo.EXPECT().
			SaveOrUpdate(gomock.Any()).
			Return(nil)

		// O relatório anual é terminal: nenhuma notificação esperada

		report, err := service.GenerateYearlyReport(2024)

		assert.NoError(t, err)
		assert.Equal(t, 50.0, report.YoYGrowth)
	})

	t.Run("Falha ao buscar o ano anterior - gera mesmo assim com YoY zerado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newServiceWithMocks(ctrl)

		m.saleRepo.EXPECT().
			ListByDateRange(startDate, endDate).
			Return([]*domain.Sale{testSale(june, "CAR001", 30000, 6000)}, nil)

		m.financeRepo.EXPECT().
			ListByDateRange(startDate, endDate).
			Return(nil, nil)

		m.yearlyRepo.EXPECT().
			GetByYear(2023).
			Return(nil, assert.AnError)

		m.yearlyRepo.EXPECT().
			SaveOrUpdate(gomock.Any()).
			Return(nil)

		report, err := service.GenerateYearlyReport(2024)

		assert.NoError(t, err)
		assert.Equal(t, 0.0, report.YoYGrowth)
	})
}

func TestService_RegenerateReportsForMonth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	monthStart := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	yearStart := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	m.saleRepo.EXPECT().ListByDateRange(monthStart, monthEnd).Return(nil, nil)
	m.financeRepo.EXPECT().ListByDateRange(monthStart, monthEnd).Return(nil, nil)
	m.monthlyRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)

	// A regeneração sobe para o anual diretamente, sem passar pela cascata:
	// OnMonthlyReportUpserted não pode ser chamado aqui
	m.saleRepo.EXPECT().ListByDateRange(yearStart, yearEnd).Return(nil, nil)
	m.financeRepo.EXPECT().ListByDateRange(yearStart, yearEnd).Return(nil, nil)
	m.yearlyRepo.EXPECT().GetByYear(2023).Return(nil, nil)
	m.yearlyRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)

	err := service.RegenerateReportsForMonth(2024, 3)

	assert.NoError(t, err)
}

func TestService_AutoGenerateReportsForNewPeriod(t *testing.T) {
	today := domain.DateOnly(time.Now())
	currentPeriod := domain.MonthPeriodOf(today)

	t.Run("Marca d'água dois dias atrás - gera os dias pendentes e avança", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newServiceWithMocks(ctrl)

		lastDaily := today.AddDate(0, 0, -2)
		year, month := currentPeriod.Year, currentPeriod.Month
		lastYear := today.Year()

		m.trackerRepo.EXPECT().
			Get().
			Return(&domain.GenerationTracker{
				LastDailyReportDate:    &lastDaily,
				LastMonthlyReportYear:  &year,
				LastMonthlyReportMonth: &month,
				LastYearlyReportYear:   &lastYear,
			}, nil)

		for _, day := range []time.Time{today.AddDate(0, 0, -1), today} {
			m.saleRepo.EXPECT().ListByDate(day).Return(nil, nil)
			m.notifier.EXPECT().OnDailyReportUpserted(day)
		}
		m.dailyRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil).Times(2)

		m.trackerRepo.EXPECT().
			Save(gomock.Any()).
			DoAndReturn(func(tracker *domain.GenerationTracker) error {
				assert.Equal(t, today, *tracker.LastDailyReportDate)
				return nil
			})

		result, err := service.AutoGenerateReportsForNewPeriod()

		assert.NoError(t, err)
		assert.Len(t, result.DailyGenerated, 2)
		assert.Empty(t, result.MonthlyGenerated)
		assert.Empty(t, result.YearlyGenerated)
		assert.Equal(t, 0, result.Failures)
	})

	t.Run("Falha no primeiro dia pendente - marca d'água não avança", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newServiceWithMocks(ctrl)

		lastDaily := today.AddDate(0, 0, -2)
		year, month := currentPeriod.Year, currentPeriod.Month
		lastYear := today.Year()

		m.trackerRepo.EXPECT().
			Get().
			Return(&domain.GenerationTracker{
				LastDailyReportDate:    &lastDaily,
				LastMonthlyReportYear:  &year,
				LastMonthlyReportMonth: &month,
				LastYearlyReportYear:   &lastYear,
			}, nil)

		m.saleRepo.EXPECT().
			ListByDate(today.AddDate(0, 0, -1)).
			Return(nil, assert.AnError)

		m.trackerRepo.EXPECT().
			Save(gomock.Any()).
			DoAndReturn(func(tracker *domain.GenerationTracker) error {
				// O período que falhou será tentado de novo na próxima execução
				assert.Equal(t, lastDaily, *tracker.LastDailyReportDate)
				return nil
			})

		result, err := service.AutoGenerateReportsForNewPeriod()

		assert.NoError(t, err)
		assert.Empty(t, result.DailyGenerated)
		assert.Equal(t, 1, result.Failures)
	})

	t.Run("Falha ao carregar o tracker - nada é gerado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newServiceWithMocks(ctrl)

		m.trackerRepo.EXPECT().Get().Return(nil, assert.AnError)

		result, err := service.AutoGenerateReportsForNewPeriod()

		assert.ErrorIs(t, err, reporting.ErrLoadTracker)
		assert.Nil(t, result)
	})
}

func TestService_CheckMissingReports(t *testing.T) {
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	march10 := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	march15 := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	t.Run("Intervalo invertido - rejeitado antes de qualquer consulta", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _ := newServiceWithMocks(ctrl)

		result, err := service.CheckMissingReports(to, from, true)

		assert.ErrorIs(t, err, reporting.ErrInvalidDateRange)
		assert.Nil(t, result)
	})

	t.Run("Dry run - relata os ausentes sem gravar nada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newServiceWithMocks(ctrl)

		m.saleRepo.EXPECT().
			DistinctSaleDates(from, to).
			Return([]time.Time{march10, march15}, nil)

		// O dia 10 já tem relatório, o dia 15 não
		m.dailyRepo.EXPECT().
			GetByDate(march10).
			Return(&domain.DailyReport{ReportDate: march10}, nil)
		m.dailyRepo.EXPECT().
			GetByDate(march15).
			Return(nil, nil)

		m.monthlyRepo.EXPECT().
			GetByPeriod(2024, 3).
			Return(nil, nil)

		m.yearlyRepo.EXPECT().
			GetByYear(2024).
			Return(nil, nil)

		result, err := service.CheckMissingReports(from, to, true)

		assert.NoError(t, err)
		assert.True(t, result.DryRun)
		assert.Equal(t, []time.Time{march15}, result.MissingDaily)
		assert.Equal(t, []domain.MonthPeriod{{Year: 2024, Month: 3}}, result.MissingMonthly)
		assert.Equal(t, []int{2024}, result.MissingYearly)
		assert.Equal(t, 0, result.Generated)
		assert.Equal(t, 0, result.Failed)
	})

	t.Run("Geração efetiva - preenche os buracos de baixo para cima", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newServiceWithMocks(ctrl)

		monthStart := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		monthEnd := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
		yearStart := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		yearEnd := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

		m.saleRepo.EXPECT().
			DistinctSaleDates(from, to).
			Return([]time.Time{march15}, nil)

		m.dailyRepo.EXPECT().GetByDate(march15).Return(nil, nil)
		m.saleRepo.EXPECT().ListByDate(march15).Return(nil, nil)
		m.dailyRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)
		m.notifier.EXPECT().OnDailyReportUpserted(march15)

		m.monthlyRepo.EXPECT().GetByPeriod(2024, 3).Return(nil, nil)
		m.saleRepo.EXPECT().ListByDateRange(monthStart, monthEnd).Return(nil, nil)
		m.financeRepo.EXPECT().ListByDateRange(monthStart, monthEnd).Return(nil, nil)
		m.monthlyRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)
		m.notifier.EXPECT().OnMonthlyReportUpserted(2024, 3)

		m.yearlyRepo.EXPECT().GetByYear(2024).Return(nil, nil)
		m.saleRepo.EXPECT().ListByDateRange(yearStart, yearEnd).Return(nil, nil)
		m.financeRepo.EXPECT().ListByDateRange(yearStart, yearEnd).Return(nil, nil)
		m.yearlyRepo.EXPECT().GetByYear(2023).Return(nil, nil)
		m.yearlyRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)

		result, err := service.CheckMissingReports(from, to, false)

		assert.NoError(t, err)
		assert.Equal(t, 3, result.Generated)
		assert.Equal(t, 0, result.Failed)
	})
}

func TestService_InitializeTracker(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	latestDaily := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	latestYear := 2023

	m.trackerRepo.EXPECT().Get().Return(&domain.GenerationTracker{}, nil)
	m.dailyRepo.EXPECT().GetLatestDate().Return(&latestDaily, nil)
	m.monthlyRepo.EXPECT().GetLatestPeriod().Return(&domain.MonthPeriod{Year: 2024, Month: 2}, nil)
	m.yearlyRepo.EXPECT().GetLatestYear().Return(&latestYear, nil)

	m.trackerRepo.EXPECT().
		Save(gomock.Any()).
		DoAndReturn(func(tracker *domain.GenerationTracker) error {
			assert.Equal(t, latestDaily, *tracker.LastDailyReportDate)
			assert.Equal(t, 2024, *tracker.LastMonthlyReportYear)
			assert.Equal(t, 2, *tracker.LastMonthlyReportMonth)
			assert.Equal(t, 2023, *tracker.LastYearlyReportYear)
			return nil
		})

	tracker, err := service.InitializeTracker()

	assert.NoError(t, err)
	assert.NotNil(t, tracker)
}

func TestService_UpdateMonthlyFinanceCosts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	febStart := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	febEnd := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)
	marchStart := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	marchEnd := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	m.monthlyRepo.EXPECT().
		ListAll().
		Return([]*domain.MonthlyReport{
			// Fevereiro já está correto perante os lançamentos atuais
			{Year: 2024, Month: 2, TotalProfit: 5000, FinanceCost: 1000, TotalFinanceCost: 1000, NetProfit: 4000},
			// Março gravou 2000 de custo mas os lançamentos somam 3000
			{Year: 2024, Month: 3, TotalProfit: 8000, FinanceCost: 2000, TotalFinanceCost: 2000, NetProfit: 6000},
		}, nil)

	m.financeRepo.EXPECT().
		ListByDateRange(febStart, febEnd).
		Return([]*domain.FinanceRecord{
			{Type: domain.FinanceRecordExpense, Cost: 1000, RecordDate: febStart},
		}, nil)

	m.financeRepo.EXPECT().
		ListByDateRange(marchStart, marchEnd).
		Return([]*domain.FinanceRecord{
			{Type: domain.FinanceRecordExpense, Cost: 3000, RecordDate: marchStart},
		}, nil)

	// Apenas o mês divergente é regravado e propagado para o anual
	m.monthlyRepo.EXPECT().
		SaveOrUpdate(gomock.Any()).
		DoAndReturn(func(report *domain.MonthlyReport) error {
			assert.Equal(t, 3, report.Month)
			assert.Equal(t, 3000.0, report.TotalFinanceCost)
			assert.Equal(t, 5000.0, report.NetProfit)
			return nil
		})
	m.notifier.EXPECT().OnMonthlyReportUpserted(2024, 3)

	updates, err := service.UpdateMonthlyFinanceCosts()

	assert.NoError(t, err)
	assert.Len(t, updates, 2)
	assert.Equal(t, reporting.FinanceCostAlreadyCorrect, updates[0].Status)
	assert.Equal(t, reporting.FinanceCostUpdated, updates[1].Status)
	assert.Equal(t, 3000.0, updates[1].TotalFinanceCost)
	assert.Equal(t, 5000.0, updates[1].NetProfit)
}
