package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/FarmanOthman/BCMS-Server-sub001/internal/config"
	"github.com/FarmanOthman/BCMS-Server-sub001/internal/domain"
	"github.com/FarmanOthman/BCMS-Server-sub001/internal/usecases/reporting"
	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

// ReportGenerationConfig representa a configuração do agendador de relatórios
type ReportGenerationConfig struct {
	DailyCronSchedule   string
	DailyEnabled        bool
	MonthlyCronSchedule string
	MonthlyEnabled      bool
	YearlyCronSchedule  string
	YearlyEnabled       bool
}

// ReportGenerationService gerencia o agendamento da geração de relatórios.
// O job diário também cobre os fechamentos atrasados: ele delega para a
// geração automática por marca d'água, que preenche tudo que ficou para trás.
type ReportGenerationService struct {
	scheduler           *gocron.Scheduler
	config              ReportGenerationConfig
	generator           reporting.ReportGenerator
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewReportGenerationService cria uma nova instância do agendador de relatórios
func NewReportGenerationService(
	generator reporting.ReportGenerator,
	appConfig *config.Config,
) *ReportGenerationService {
	reportConfig := ReportGenerationConfig{
		DailyCronSchedule:   appConfig.ReportSync.CronSchedule,
		DailyEnabled:        appConfig.ReportSync.Enabled,
		MonthlyCronSchedule: appConfig.MonthlySync.CronSchedule,
		MonthlyEnabled:      appConfig.MonthlySync.Enabled,
		YearlyCronSchedule:  appConfig.YearlySync.CronSchedule,
		YearlyEnabled:       appConfig.YearlySync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"daily_cron":      reportConfig.DailyCronSchedule,
		"daily_enabled":   reportConfig.DailyEnabled,
		"monthly_cron":    reportConfig.MonthlyCronSchedule,
		"monthly_enabled": reportConfig.MonthlyEnabled,
		"yearly_cron":     reportConfig.YearlyCronSchedule,
		"yearly_enabled":  reportConfig.YearlyEnabled,
	}).Info("Configuração do agendador de relatórios carregada")

	return &ReportGenerationService{
		scheduler:   scheduler,
		config:      reportConfig,
		generator:   generator,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *ReportGenerationService) Start(ctx context.Context) error {
	if s.config.DailyEnabled {
		logrus.WithField("cron", s.config.DailyCronSchedule).Info("Agendando geração diária de relatórios")

		_, err := s.scheduler.Cron(s.config.DailyCronSchedule).Do(func() {
			s.runAutoGeneration()
		})
		if err != nil {
			return fmt.Errorf("erro ao agendar geração diária de relatórios: %w", err)
		}
	} else {
		logrus.Info("Geração diária de relatórios desabilitada por configuração")
	}

	if s.config.MonthlyEnabled {
		logrus.WithField("cron", s.config.MonthlyCronSchedule).Info("Agendando fechamento mensal de relatórios")

		_, err := s.scheduler.Cron(s.config.MonthlyCronSchedule).Do(func() {
			s.runMonthlyClose()
		})
		if err != nil {
			return fmt.Errorf("erro ao agendar fechamento mensal de relatórios: %w", err)
		}
	} else {
		logrus.Info("Fechamento mensal de relatórios desabilitado por configuração")
	}

	if s.config.YearlyEnabled {
		logrus.WithField("cron", s.config.YearlyCronSchedule).Info("Agendando fechamento anual de relatórios")

		_, err := s.scheduler.Cron(s.config.YearlyCronSchedule).Do(func() {
			s.runYearlyClose()
		})
		if err != nil {
			return fmt.Errorf("erro ao agendar fechamento anual de relatórios: %w", err)
		}
	} else {
		logrus.Info("Fechamento anual de relatórios desabilitado por configuração")
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de relatórios")
		s.scheduler.Stop()
	}()

	return nil
}

// runAutoGeneration executa a geração automática baseada nas marcas d'água
func (s *ReportGenerationService) runAutoGeneration() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Geração de relatórios já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando geração automática de relatórios")

	result, err := s.generator.AutoGenerateReportsForNewPeriod()
	if err != nil {
		logrus.WithError(err).Error("Erro na geração automática de relatórios")
		return
	}

	logrus.WithFields(logrus.Fields{
		"duration":          time.Since(startTime).String(),
		"daily_generated":   len(result.DailyGenerated),
		"monthly_generated": len(result.MonthlyGenerated),
		"yearly_generated":  len(result.YearlyGenerated),
		"failures":          result.Failures,
	}).Info("Geração automática de relatórios concluída")

	s.lastSyncCompletedAt = time.Now()
}

// runMonthlyClose fecha o mês anterior
func (s *ReportGenerationService) runMonthlyClose() {
	period := domain.MonthPeriodOf(time.Now()).Previous()

	logrus.WithField("period", period.String()).Info("Iniciando fechamento mensal de relatórios")

	if _, err := s.generator.GenerateMonthlyReport(period.Year, period.Month); err != nil {
		logrus.WithError(err).WithField("period", period.String()).Error("Erro no fechamento mensal de relatórios")
		return
	}

	logrus.WithField("period", period.String()).Info("Fechamento mensal de relatórios concluído")
}

// runYearlyClose fecha o ano anterior
func (s *ReportGenerationService) runYearlyClose() {
	year := time.Now().Year() - 1

	logrus.WithField("year", year).Info("Iniciando fechamento anual de relatórios")

	if _, err := s.generator.GenerateYearlyReport(year); err != nil {
		logrus.WithError(err).WithField("year", year).Error("Erro no fechamento anual de relatórios")
		return
	}

	logrus.WithField("year", year).Info("Fechamento anual de relatórios concluído")
}

// TriggerManualSync inicia manualmente a geração automática de relatórios.
// Retorna falso se uma geração já está em andamento.
func (s *ReportGenerationService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Geração de relatórios já em andamento, ignorando solicitação manual")
		return false
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando geração manual de relatórios")
	go s.runAutoGeneration()

	return true
}

// GetStatus retorna o status atual do agendador
func (s *ReportGenerationService) GetStatus() map[string]any {
	return map[string]any{
		"daily_enabled":          s.config.DailyEnabled,
		"daily_cron":             s.config.DailyCronSchedule,
		"monthly_enabled":        s.config.MonthlyEnabled,
		"monthly_cron":           s.config.MonthlyCronSchedule,
		"yearly_enabled":         s.config.YearlyEnabled,
		"yearly_cron":            s.config.YearlyCronSchedule,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
