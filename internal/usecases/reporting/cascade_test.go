package reporting_test

import (
	"testing"
	"time"

	"github.com/FarmanOthman/BCMS-Server-sub001/internal/usecases/reporting"
	reportingmocks "github.com/FarmanOthman/BCMS-Server-sub001/internal/usecases/reporting/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCascade_OnSaleCreated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	generator := reportingmocks.NewMockReportGenerator(ctrl)
	cascade := reporting.NewCascade(generator)

	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	t.Run("Venda criada - recalcula o dia da venda", func(t *testing.T) {
		generator.EXPECT().GenerateReportsForSale(day).Return(nil)

		cascade.OnSaleCreated(day)
	})

	t.Run("Hora da venda é descartada - o dia é a chave", func(t *testing.T) {
		generator.EXPECT().GenerateReportsForSale(day).Return(nil)

		cascade.OnSaleCreated(time.Date(2024, 3, 15, 18, 45, 0, 0, time.UTC))
	})

	t.Run("Falha na geração - engolida sem propagar", func(t *testing.T) {
		generator.EXPECT().GenerateReportsForSale(day).Return(assert.AnError)

		assert.NotPanics(t, func() {
			cascade.OnSaleCreated(day)
		})
	})
}

func TestCascade_OnSaleUpdated(t *testing.T) {
	oldDay := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	newDay := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)

	t.Run("Data da venda mudou - os dois dias afetados são recalculados", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		generator := reportingmocks.NewMockReportGenerator(ctrl)
		cascade := reporting.NewCascade(generator)

		generator.EXPECT().GenerateReportsForSale(oldDay).Return(nil)
		generator.EXPECT().GenerateReportsForSale(newDay).Return(nil)

		cascade.OnSaleUpdated(oldDay, newDay)
	})

	t.Run("Data inalterada - apenas um dia é recalculado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		generator := reportingmocks.NewMockReportGenerator(ctrl)
		cascade := reporting.NewCascade(generator)

		generator.EXPECT().GenerateReportsForSale(oldDay).Return(nil).Times(1)

		cascade.OnSaleUpdated(oldDay, oldDay)
	})

	t.Run("Mesmo dia em horários diferentes - ainda é um único recálculo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		generator := reportingmocks.NewMockReportGenerator(ctrl)
		cascade := reporting.NewCascade(generator)

		generator.EXPECT().GenerateReportsForSale(oldDay).Return(nil).Times(1)

		cascade.OnSaleUpdated(
			time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC),
			time.Date(2024, 3, 15, 17, 30, 0, 0, time.UTC),
		)
	})

	t.Run("Falha no dia antigo não impede o recálculo do novo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		generator := reportingmocks.NewMockReportGenerator(ctrl)
		cascade := reporting.NewCascade(generator)

		generator.EXPECT().GenerateReportsForSale(oldDay).Return(assert.AnError)
		generator.EXPECT().GenerateReportsForSale(newDay).Return(nil)

		cascade.OnSaleUpdated(oldDay, newDay)
	})
}

func TestCascade_OnSaleDeleted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	generator := reportingmocks.NewMockReportGenerator(ctrl)
	cascade := reporting.NewCascade(generator)

	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	generator.EXPECT().GenerateReportsForSale(day).Return(nil)

	cascade.OnSaleDeleted(day)
}

func TestCascade_OnFinanceRecordChanged(t *testing.T) {
	t.Run("Lançamento mudou - ressincroniza o mês inteiro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		generator := reportingmocks.NewMockReportGenerator(ctrl)
		cascade := reporting.NewCascade(generator)

		generator.EXPECT().RegenerateReportsForMonth(2024, 3).Return(nil)

		cascade.OnFinanceRecordChanged(time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC))
	})

	t.Run("Falha na ressincronização - engolida sem propagar", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		generator := reportingmocks.NewMockReportGenerator(ctrl)
		cascade := reporting.NewCascade(generator)

		generator.EXPECT().RegenerateReportsForMonth(2024, 3).Return(assert.AnError)

		assert.NotPanics(t, func() {
			cascade.OnFinanceRecordChanged(time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC))
		})
	})
}

func TestCascade_OnDailyReportUpserted(t *testing.T) {
	t.Run("Relatório diário gravado - sobe para o mês da data", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		generator := reportingmocks.NewMockReportGenerator(ctrl)
		cascade := reporting.NewCascade(generator)

		generator.EXPECT().GenerateMonthlyReport(2024, 3).Return(nil, nil)

		cascade.OnDailyReportUpserted(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))
	})

	t.Run("Falha no salto para o mensal - engolida sem propagar", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		generator := reportingmocks.NewMockReportGenerator(ctrl)
		cascade := reporting.NewCascade(generator)

		generator.EXPECT().GenerateMonthlyReport(2024, 3).Return(nil, assert.AnError)

		assert.NotPanics(t, func() {
			cascade.OnDailyReportUpserted(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))
		})
	})
}

func TestCascade_OnMonthlyReportUpserted(t *testing.T) {
	t.Run("Relatório mensal gravado - sobe para o ano e para lá", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		generator := reportingmocks.NewMockReportGenerator(ctrl)
		cascade := reporting.NewCascade(generator)

		generator.EXPECT().GenerateYearlyReport(2024).Return(nil, nil)

		cascade.OnMonthlyReportUpserted(2024, 3)
	})

	t.Run("Falha no salto para o anual - engolida sem propagar", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		generator := reportingmocks.NewMockReportGenerator(ctrl)
		cascade := reporting.NewCascade(generator)

		generator.EXPECT().GenerateYearlyReport(2024).Return(nil, assert.AnError)

		assert.NotPanics(t, func() {
			cascade.OnMonthlyReportUpserted(2024, 3)
		})
	})
}
