package reporting

import (
	"fmt"
	"time"

	"github.com/FarmanOthman/BCMS-Server-sub001/infrastructure/repository"
	"github.com/FarmanOthman/BCMS-Server-sub001/internal/domain"
	"github.com/FarmanOthman/BCMS-Server-sub001/pkg/utils"
	"github.com/sirupsen/logrus"
)

// Service implementa ReportGenerator sobre os repositórios de fatos e de
// relatórios. A propagação entre camadas acontece pelo CascadeNotifier
// registrado via WithCascade; sem notificador, cada camada é gerada isolada.
type Service struct {
	saleRepo    repository.SaleRepository
	financeRepo repository.FinanceRecordRepository
	dailyRepo   repository.DailyReportRepository
	monthlyRepo repository.MonthlyReportRepository
	yearlyRepo  repository.YearlyReportRepository
	trackerRepo repository.GenerationTrackerRepository
	notifier    CascadeNotifier
}

// NewService cria uma nova instância do serviço de geração de relatórios
func NewService(
	saleRepo repository.SaleRepository,
	financeRepo repository.FinanceRecordRepository,
	dailyRepo repository.DailyReportRepository,
	monthlyRepo repository.MonthlyReportRepository,
	yearlyRepo repository.YearlyReportRepository,
	trackerRepo repository.GenerationTrackerRepository,
) *Service {
	return &Service{
		saleRepo:    saleRepo,
		financeRepo: financeRepo,
		dailyRepo:   dailyRepo,
		monthlyRepo: monthlyRepo,
		yearlyRepo:  yearlyRepo,
		trackerRepo: trackerRepo,
	}
}

// WithCascade registra o notificador que liga as camadas entre si
func (s *Service) WithCascade(notifier CascadeNotifier) *Service {
	s.notifier = notifier
	return s
}

// GenerateDailyReport recalcula e grava o relatório do dia. Sempre tem
// sucesso com zero vendas, produzindo uma linha zerada: "nenhuma atividade"
// é representada explicitamente, não por ausência.
func (s *Service) GenerateDailyReport(date time.Time) (*domain.DailyReport, error) {
	day := domain.DateOnly(date)

	sales, err := s.saleRepo.ListByDate(day)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchSales, err)
	}

	report := AggregateDailySales(day, sales)

	if err := s.dailyRepo.SaveOrUpdate(report); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSaveDailyReport, err)
	}

	logrus.WithFields(logrus.Fields{
		"report_date":  day.Format(time.DateOnly),
		"total_sales":  report.TotalSales,
		"total_profit": report.TotalProfit,
	}).Info("Relatório diário gravado")

	s.notifyDailyUpserted(day)

	return report, nil
}

// GenerateMonthlyReport recalcula e grava o relatório do mês
func (s *Service) GenerateMonthlyReport(year, month int) (*domain.MonthlyReport, error) {
	return s.generateMonthly(year, month, true)
}

// generateMonthly faz o trabalho do relatório mensal. notify controla se a
// gravação dispara o próximo salto da cascata; a regeneração administrativa
// sobe para o ano por conta própria e passa false aqui.
func (s *Service) generateMonthly(year, month int, notify bool) (*domain.MonthlyReport, error) {
	if month < 1 || month > 12 {
		return nil, ErrInvalidMonth
	}

	period := domain.MonthPeriod{Year: year, Month: month}
	startDate, endDate := period.Range()

	sales, err := s.saleRepo.ListByDateRange(startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchSales, err)
	}

	records, err := s.financeRepo.ListByDateRange(startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFinanceRecords, err)
	}

	report := AggregateMonthly(year, month, sales, records)

	if err := s.monthlyRepo.SaveOrUpdate(report); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSaveMonthlyReport, err)
	}

	logrus.WithFields(logrus.Fields{
		"period":             period.String(),
		"total_sales":        report.TotalSales,
		"total_profit":       report.TotalProfit,
		"total_finance_cost": report.TotalFinanceCost,
		"net_profit":         report.NetProfit,
	}).Info("Relatório mensal gravado")

	if notify {
		s.notifyMonthlyUpserted(year, month)
	}

	return report, nil
}

// GenerateYearlyReport recalcula e grava o relatório do ano. É a camada
// terminal da cascata: a gravação não dispara nenhum observador.
func (s *Service) GenerateYearlyReport(year int) (*domain.YearlyReport, error) {
	startDate, endDate := domain.YearRange(year)

	sales, err := s.saleRepo.ListByDateRange(startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchSales, err)
	}

	records, err := s.financeRepo.ListByDateRange(startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFinanceRecords, err)
	}

	priorYear, err := s.yearlyRepo.GetByYear(year - 1)
	if err != nil {
		logrus.WithError(err).WithField("year", year-1).Warn("Erro ao buscar relatório do ano anterior, crescimento YoY ficará zerado")
		priorYear = nil
	}

	report := AggregateYearly(year, sales, records, priorYear)

	if err := s.yearlyRepo.SaveOrUpdate(report); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSaveYearlyReport, err)
	}

	logrus.WithFields(logrus.Fields{
		"year":             year,
		"total_sales":      report.TotalSales,
		"total_profit":     report.TotalProfit,
		"total_net_profit": report.TotalNetProfit,
	}).Info("Relatório anual gravado")

	return report, nil
}

// GenerateReportsForSale recalcula apenas a camada diária; os saltos para o
// mês e o ano acontecem pela cascata disparada na gravação do relatório diário
func (s *Service) GenerateReportsForSale(date time.Time) error {
	_, err := s.GenerateDailyReport(date)
	return err
}

// RegenerateReportsForMonth ressincroniza mês e ano sem passar pela cascata
// de observadores; é o ponto de entrada de recuperação manual.
func (s *Service) RegenerateReportsForMonth(year, month int) error {
	if _, err := s.generateMonthly(year, month, false); err != nil {
		return err
	}

	_, err := s.GenerateYearlyReport(year)
	return err
}

// AutoGenerateReportsForNewPeriod gera os períodos entre as marcas d'água e a
// data atual, um a um, e avança cada marca até o último período gerado com
// sucesso. Falhas de períodos individuais são registradas e não interrompem
// os demais.
func (s *Service) AutoGenerateReportsForNewPeriod() (*AutoGenerationResult, error) {
	tracker, err := s.trackerRepo.Get()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadTracker, err)
	}

	today := domain.DateOnly(time.Now())
	currentPeriod := domain.MonthPeriodOf(today)
	result := &AutoGenerationResult{}

	// Camada diária
	startDate := today
	if tracker.LastDailyReportDate != nil {
		startDate = tracker.LastDailyReportDate.AddDate(0, 0, 1)
	}

	for day := startDate; !day.After(today); day = day.AddDate(0, 0, 1) {
		if _, err := s.GenerateDailyReport(day); err != nil {
			logrus.WithError(err).WithField("report_date", day.Format(time.DateOnly)).Error("Erro na geração automática do relatório diário")
			result.Failures++
			break
		}
		generated := day
		tracker.LastDailyReportDate = &generated
		result.DailyGenerated = append(result.DailyGenerated, generated)
	}

	// Camada mensal
	startPeriod := currentPeriod
	if tracker.LastMonthlyReportYear != nil && tracker.LastMonthlyReportMonth != nil {
		startPeriod = domain.MonthPeriod{
			Year:  *tracker.LastMonthlyReportYear,
			Month: *tracker.LastMonthlyReportMonth,
		}.Next()
	}

	for period := startPeriod; !currentPeriod.Before(period); period = period.Next() {
		if _, err := s.GenerateMonthlyReport(period.Year, period.Month); err != nil {
			logrus.WithError(err).WithField("period", period.String()).Error("Erro na geração automática do relatório mensal")
			result.Failures++
			break
		}
		year, month := period.Year, period.Month
		tracker.LastMonthlyReportYear = &year
		tracker.LastMonthlyReportMonth = &month
		result.MonthlyGenerated = append(result.MonthlyGenerated, period)
	}

	// Camada anual
	startYear := today.Year()
	if tracker.LastYearlyReportYear != nil {
		startYear = *tracker.LastYearlyReportYear + 1
	}

	for year := startYear; year <= today.Year(); year++ {
		if _, err := s.GenerateYearlyReport(year); err != nil {
			logrus.WithError(err).WithField("year", year).Error("Erro na geração automática do relatório anual")
			result.Failures++
			break
		}
		generated := year
		tracker.LastYearlyReportYear = &generated
		result.YearlyGenerated = append(result.YearlyGenerated, generated)
	}

	if err := s.trackerRepo.Save(tracker); err != nil {
		return result, fmt.Errorf("%w: %v", ErrSaveTracker, err)
	}

	logrus.WithFields(logrus.Fields{
		"daily_generated":   len(result.DailyGenerated),
		"monthly_generated": len(result.MonthlyGenerated),
		"yearly_generated":  len(result.YearlyGenerated),
		"failures":          result.Failures,
	}).Info("Geração automática de relatórios concluída")

	return result, nil
}

// CheckMissingReports varre as datas de venda no intervalo e gera, de baixo
// para cima, os relatórios ausentes. Em dryRun nada é gravado, apenas
// relatado. Não consulta nem avança as marcas d'água: serve justamente para
// preencher buracos depois de importações em massa.
func (s *Service) CheckMissingReports(from, to time.Time, dryRun bool) (*MissingReportsResult, error) {
	fromDay := domain.DateOnly(from)
	toDay := domain.DateOnly(to)

	if fromDay.After(toDay) {
		return nil, ErrInvalidDateRange
	}

	dates, err := s.saleRepo.DistinctSaleDates(fromDay, toDay)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchSales, err)
	}

	result := &MissingReportsResult{
		From:   fromDay,
		To:     toDay,
		DryRun: dryRun,
	}

	// Camada diária
	for _, date := range dates {
		existing, err := s.dailyRepo.GetByDate(date)
		if err != nil {
			logrus.WithError(err).WithField("report_date", date.Format(time.DateOnly)).Error("Erro ao verificar relatório diário existente")
			result.Failed++
			continue
		}

		if existing != nil {
			continue
		}

		result.MissingDaily = append(result.MissingDaily, date)

		if dryRun {
			continue
		}

		if _, err := s.GenerateDailyReport(date); err != nil {
			logrus.WithError(err).WithField("report_date", date.Format(time.DateOnly)).Error("Erro ao gerar relatório diário ausente")
			result.Failed++
			continue
		}
		result.Generated++
	}

	// Camada mensal
	for _, period := range distinctPeriods(dates) {
		existing, err := s.monthlyRepo.GetByPeriod(period.Year, period.Month)
		if err != nil {
			logrus.WithError(err).WithField("period", period.String()).Error("Erro ao verificar relatório mensal existente")
			result.Failed++
			continue
		}

		if existing != nil {
			continue
		}

		result.MissingMonthly = append(result.MissingMonthly, period)

		if dryRun {
			continue
		}

		if _, err := s.GenerateMonthlyReport(period.Year, period.Month); err != nil {
			logrus.WithError(err).WithField("period", period.String()).Error("Erro ao gerar relatório mensal ausente")
			result.Failed++
			continue
		}
		result.Generated++
	}

	// Camada anual
	for _, year := range distinctYears(dates) {
		existing, err := s.yearlyRepo.GetByYear(year)
		if err != nil {
			logrus.WithError(err).WithField("year", year).Error("Erro ao verificar relatório anual existente")
			result.Failed++
			continue
		}

		if existing != nil {
			continue
		}

		result.MissingYearly = append(result.MissingYearly, year)

		if dryRun {
			continue
		}

		if _, err := s.GenerateYearlyReport(year); err != nil {
			logrus.WithError(err).WithField("year", year).Error("Erro ao gerar relatório anual ausente")
			result.Failed++
			continue
		}
		result.Generated++
	}

	return result, nil
}

// InitializeTracker aponta as marcas d'água para o que já existe gravado
func (s *Service) InitializeTracker() (*domain.GenerationTracker, error) {
	tracker, err := s.trackerRepo.Get()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadTracker, err)
	}

	latestDaily, err := s.dailyRepo.GetLatestDate()
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar relatório diário mais recente: %w", err)
	}

	latestPeriod, err := s.monthlyRepo.GetLatestPeriod()
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar relatório mensal mais recente: %w", err)
	}

	latestYear, err := s.yearlyRepo.GetLatestYear()
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar relatório anual mais recente: %w", err)
	}

	tracker.LastDailyReportDate = latestDaily
	tracker.LastMonthlyReportYear = nil
	tracker.LastMonthlyReportMonth = nil
	if latestPeriod != nil {
		tracker.LastMonthlyReportYear = &latestPeriod.Year
		tracker.LastMonthlyReportMonth = &latestPeriod.Month
	}
	tracker.LastYearlyReportYear = latestYear

	if err := s.trackerRepo.Save(tracker); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSaveTracker, err)
	}

	return tracker, nil
}

// UpdateMonthlyFinanceCosts recalcula os custos financeiros de cada relatório
// mensal existente a partir dos lançamentos atuais, informando por linha se a
// gravação mudou algo ou se já estava correta.
func (s *Service) UpdateMonthlyFinanceCosts() ([]*FinanceCostUpdate, error) {
	reports, err := s.monthlyRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSaveMonthlyReport, err)
	}

	updates := make([]*FinanceCostUpdate, 0, len(reports))

	for _, report := range reports {
		period := domain.MonthPeriod{Year: report.Year, Month: report.Month}
		update := &FinanceCostUpdate{Year: report.Year, Month: report.Month}
		updates = append(updates, update)

		startDate, endDate := period.Range()
		records, err := s.financeRepo.ListByDateRange(startDate, endDate)
		if err != nil {
			logrus.WithError(err).WithField("period", period.String()).Error("Erro ao buscar lançamentos do mês")
			update.Status = FinanceCostFailed
			continue
		}

		expenseTotal, incomeTotal := AggregateFinance(records)
		totalFinanceCost := utils.RoundWithTwoDecimalPlace(expenseTotal - incomeTotal)
		netProfit := utils.RoundWithTwoDecimalPlace(report.TotalProfit - totalFinanceCost)

		update.TotalFinanceCost = totalFinanceCost
		update.NetProfit = netProfit

		if report.FinanceCost == expenseTotal && report.TotalFinanceCost == totalFinanceCost && report.NetProfit == netProfit {
			update.Status = FinanceCostAlreadyCorrect
			continue
		}

		report.FinanceCost = expenseTotal
		report.TotalFinanceCost = totalFinanceCost
		report.NetProfit = netProfit

		if err := s.monthlyRepo.SaveOrUpdate(report); err != nil {
			logrus.WithError(err).WithField("period", period.String()).Error("Erro ao regravar custos financeiros do mês")
			update.Status = FinanceCostFailed
			continue
		}

		update.Status = FinanceCostUpdated
		s.notifyMonthlyUpserted(report.Year, report.Month)
	}

	return updates, nil
}

func (s *Service) notifyDailyUpserted(date time.Time) {
	if s.notifier != nil {
		s.notifier.OnDailyReportUpserted(date)
	}
}

func (s *Service) notifyMonthlyUpserted(year, month int) {
	if s.notifier != nil {
		s.notifier.OnMonthlyReportUpserted(year, month)
	}
}

// distinctPeriods extrai os períodos mensais das datas, preservando a ordem
func distinctPeriods(dates []time.Time) []domain.MonthPeriod {
	seen := make(map[domain.MonthPeriod]bool)
	periods := make([]domain.MonthPeriod, 0)

	for _, date := range dates {
		period := domain.MonthPeriodOf(date)
		if !seen[period] {
			seen[period] = true
			periods = append(periods, period)
		}
	}

	return periods
}

// distinctYears extrai os anos das datas, preservando a ordem
func distinctYears(dates []time.Time) []int {
	seen := make(map[int]bool)
	years := make([]int, 0)

	for _, date := range dates {
		if !seen[date.Year()] {
			seen[date.Year()] = true
			years = append(years, date.Year())
		}
	}

	return years
}
