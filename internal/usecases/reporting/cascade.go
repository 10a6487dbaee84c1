package reporting

import (
	"time"

	"github.com/FarmanOthman/BCMS-Server-sub001/internal/domain"
	"github.com/sirupsen/logrus"
)

// Cascade liga as mutações de fatos à geração de relatórios e cada camada de
// relatório à camada seguinte. Toda falha aqui dentro é registrada e
// engolida: a contabilidade de relatórios nunca derruba a operação que a
// disparou.
type Cascade struct {
	generator ReportGenerator
}

// NewCascade cria a cascata sobre o gerador de relatórios
func NewCascade(generator ReportGenerator) *Cascade {
	return &Cascade{generator: generator}
}

// OnSaleCreated é disparado após a criação de uma venda
func (c *Cascade) OnSaleCreated(saleDate time.Time) {
	c.regenerateDay(saleDate)
}

// OnSaleUpdated é disparado após a atualização de uma venda. Se a data mudou,
// os dois dias afetados são recalculados; caso contrário, apenas um.
func (c *Cascade) OnSaleUpdated(oldDate, newDate time.Time) {
	oldDay := domain.DateOnly(oldDate)
	newDay := domain.DateOnly(newDate)

	c.regenerateDay(oldDay)
	if !newDay.Equal(oldDay) {
		c.regenerateDay(newDay)
	}
}

// OnSaleDeleted é disparado após a remoção de uma venda
func (c *Cascade) OnSaleDeleted(saleDate time.Time) {
	c.regenerateDay(saleDate)
}

// OnFinanceRecordChanged é disparado após qualquer mutação de um lançamento
// financeiro. Lançamentos só afetam as camadas mensal e anual, então o mês
// inteiro é ressincronizado.
func (c *Cascade) OnFinanceRecordChanged(recordDate time.Time) {
	period := domain.MonthPeriodOf(recordDate)

	if err := c.generator.RegenerateReportsForMonth(period.Year, period.Month); err != nil {
		logrus.WithError(err).WithField("period", period.String()).Error("Erro na cascata após mutação de lançamento financeiro")
	}
}

// OnDailyReportUpserted sobe um nível: a gravação de um relatório diário
// recalcula o mês daquela data
func (c *Cascade) OnDailyReportUpserted(date time.Time) {
	period := domain.MonthPeriodOf(date)

	if _, err := c.generator.GenerateMonthlyReport(period.Year, period.Month); err != nil {
		logrus.WithError(err).WithField("period", period.String()).Error("Erro na cascata do relatório diário para o mensal")
	}
}

// OnMonthlyReportUpserted sobe um nível: a gravação de um relatório mensal
// recalcula o ano. O relatório anual é terminal, a cascata para aqui.
func (c *Cascade) OnMonthlyReportUpserted(year, _ int) {
	if _, err := c.generator.GenerateYearlyReport(year); err != nil {
		logrus.WithError(err).WithField("year", year).Error("Erro na cascata do relatório mensal para o anual")
	}
}

func (c *Cascade) regenerateDay(date time.Time) {
	day := domain.DateOnly(date)

	if err := c.generator.GenerateReportsForSale(day); err != nil {
		logrus.WithError(err).WithField("report_date", day.Format(time.DateOnly)).Error("Erro na cascata após mutação de venda")
	}
}
