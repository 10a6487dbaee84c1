package reporting

import (
	"fmt"
	"time"

	"github.com/FarmanOthman/BCMS-Server-sub001/internal/domain"
)

// ReportReader expõe a leitura dos relatórios gravados. Um período sem
// relatório retorna nil sem erro; quem consome decide como representar a
// ausência.
type ReportReader interface {
	GetDailyReport(date time.Time) (*domain.DailyReport, error)
	GetMonthlyReport(year, month int) (*domain.MonthlyReport, error)
	GetYearlyReport(year int) (*domain.YearlyReport, error)
	GetTracker() (*domain.GenerationTracker, error)
}

func (s *Service) GetDailyReport(date time.Time) (*domain.DailyReport, error) {
	report, err := s.dailyRepo.GetByDate(domain.DateOnly(date))
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar relatório diário: %w", err)
	}

	return report, nil
}

func (s *Service) GetMonthlyReport(year, month int) (*domain.MonthlyReport, error) {
	if month < 1 || month > 12 {
		return nil, ErrInvalidMonth
	}

	report, err := s.monthlyRepo.GetByPeriod(year, month)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar relatório mensal: %w", err)
	}

	return report, nil
}

func (s *Service) GetYearlyReport(year int) (*domain.YearlyReport, error) {
	report, err := s.yearlyRepo.GetByYear(year)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar relatório anual: %w", err)
	}

	return report, nil
}

func (s *Service) GetTracker() (*domain.GenerationTracker, error) {
	tracker, err := s.trackerRepo.Get()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadTracker, err)
	}

	return tracker, nil
}
