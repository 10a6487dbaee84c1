package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/FarmanOthman/BCMS-Server-sub001/infrastructure/database/postgres"
	"github.com/FarmanOthman/BCMS-Server-sub001/infrastructure/repository"
	"github.com/FarmanOthman/BCMS-Server-sub001/internal/config"
	"github.com/FarmanOthman/BCMS-Server-sub001/internal/domain"
	"github.com/FarmanOthman/BCMS-Server-sub001/internal/usecases/reporting"
	"github.com/FarmanOthman/BCMS-Server-sub001/pkg/utils"
	"github.com/sirupsen/logrus"
)

const usage = `Uso: reports <comando> [opções]

Comandos:
  generate-daily [--date YYYY-MM-DD]        Gera o relatório diário (padrão: hoje)
  generate-monthly [--year N --month N]     Gera o relatório mensal (padrão: mês atual)
  generate-yearly [--year N]                Gera o relatório anual (padrão: ano atual)
  auto-generate                             Gera os períodos pendentes pelas marcas d'água
  check-missing --from YYYY-MM-DD --to YYYY-MM-DD [--dry-run]
                                            Varre e gera relatórios ausentes no intervalo
  initialize-tracker                        Aponta as marcas d'água para o que já existe
  update-monthly-finance-costs              Ressincroniza os custos financeiros mensais
`

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	service := reporting.NewService(
		repository.NewSaleRepository(conn),
		repository.NewFinanceRecordRepository(conn),
		repository.NewDailyReportRepository(conn),
		repository.NewMonthlyReportRepository(conn),
		repository.NewYearlyReportRepository(conn),
		repository.NewGenerationTrackerRepository(conn),
	)
	service.WithCascade(reporting.NewCascade(service))

	command := os.Args[1]
	args := os.Args[2:]

	var runErr error
	switch command {
	case "generate-daily":
		runErr = runGenerateDaily(service, args)
	case "generate-monthly":
		runErr = runGenerateMonthly(service, args)
	case "generate-yearly":
		runErr = runGenerateYearly(service, args)
	case "auto-generate":
		runErr = runAutoGenerate(service)
	case "check-missing":
		runErr = runCheckMissing(service, args)
	case "initialize-tracker":
		runErr = runInitializeTracker(service)
	case "update-monthly-finance-costs":
		runErr = runUpdateFinanceCosts(service)
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if runErr != nil {
		logrus.WithError(runErr).Error("Comando finalizado com erro")
		os.Exit(1)
	}
}

func runGenerateDaily(service *reporting.Service, args []string) error {
	fs := flag.NewFlagSet("generate-daily", flag.ExitOnError)
	dateFlag := fs.String("date", "", "data no formato YYYY-MM-DD (padrão: hoje)")
	fs.Parse(args)

	date := time.Now()
	if *dateFlag != "" {
		parsed, err := time.Parse(time.DateOnly, *dateFlag)
		if err != nil {
			return fmt.Errorf("data inválida: %w", err)
		}
		date = parsed
	}

	report, err := service.GenerateDailyReport(date)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"report_date":  report.ReportDate.Format(time.DateOnly),
		"total_sales":  report.TotalSales,
		"total_profit": report.TotalProfit,
	}).Info("Relatório diário gerado")

	return nil
}

func runGenerateMonthly(service *reporting.Service, args []string) error {
	fs := flag.NewFlagSet("generate-monthly", flag.ExitOnError)
	now := time.Now()
	yearFlag := fs.Int("year", now.Year(), "ano do relatório")
	monthFlag := fs.Int("month", int(now.Month()), "mês do relatório (1-12)")
	fs.Parse(args)

	report, err := service.GenerateMonthlyReport(*yearFlag, *monthFlag)
	if err != nil {
		return err
	}

	period := domain.MonthPeriod{Year: report.Year, Month: report.Month}
	logrus.WithFields(logrus.Fields{
		"period":      period.String(),
		"total_sales": report.TotalSales,
		"net_profit":  report.NetProfit,
	}).Info("Relatório mensal gerado")

	return nil
}

func runGenerateYearly(service *reporting.Service, args []string) error {
	fs := flag.NewFlagSet("generate-yearly", flag.ExitOnError)
	yearFlag := fs.Int("year", time.Now().Year(), "ano do relatório")
	fs.Parse(args)

	report, err := service.GenerateYearlyReport(*yearFlag)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"year":             report.Year,
		"total_sales":      report.TotalSales,
		"total_net_profit": report.TotalNetProfit,
	}).Info("Relatório anual gerado")

	return nil
}

func runAutoGenerate(service *reporting.Service) error {
	result, err := service.AutoGenerateReportsForNewPeriod()
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"daily_generated":   len(result.DailyGenerated),
		"monthly_generated": len(result.MonthlyGenerated),
		"yearly_generated":  len(result.YearlyGenerated),
		"failures":          result.Failures,
	}).Info("Geração automática concluída")

	generated := len(result.DailyGenerated) + len(result.MonthlyGenerated) + len(result.YearlyGenerated)
	if result.Failures > 0 && generated == 0 {
		return fmt.Errorf("todos os %d períodos falharam", result.Failures)
	}

	return nil
}

func runCheckMissing(service *reporting.Service, args []string) error {
	fs := flag.NewFlagSet("check-missing", flag.ExitOnError)
	fromFlag := fs.String("from", "", "data inicial no formato YYYY-MM-DD")
	toFlag := fs.String("to", "", "data final no formato YYYY-MM-DD")
	dryRun := fs.Bool("dry-run", false, "apenas relatar, sem gerar")
	fs.Parse(args)

	if *fromFlag == "" || *toFlag == "" {
		return fmt.Errorf("--from e --to são obrigatórios")
	}

	from, err := time.Parse(time.DateOnly, *fromFlag)
	if err != nil {
		return fmt.Errorf("data inicial inválida: %w", err)
	}

	to, err := time.Parse(time.DateOnly, *toFlag)
	if err != nil {
		return fmt.Errorf("data final inválida: %w", err)
	}

	result, err := service.CheckMissingReports(from, to, *dryRun)
	if err != nil {
		return err
	}

	if result.DryRun {
		fmt.Println(utils.PrettyJson(result))
	}

	logrus.WithFields(logrus.Fields{
		"dry_run":         result.DryRun,
		"missing_daily":   len(result.MissingDaily),
		"missing_monthly": len(result.MissingMonthly),
		"missing_yearly":  len(result.MissingYearly),
		"generated":       result.Generated,
		"failed":          result.Failed,
	}).Info("Varredura de relatórios ausentes concluída")

	missing := len(result.MissingDaily) + len(result.MissingMonthly) + len(result.MissingYearly)
	if result.Failed > 0 && result.Generated == 0 && missing > 0 && !result.DryRun {
		return fmt.Errorf("todos os %d períodos falharam", result.Failed)
	}

	return nil
}

func runInitializeTracker(service *reporting.Service) error {
	tracker, err := service.InitializeTracker()
	if err != nil {
		return err
	}

	fields := logrus.Fields{}
	if tracker.LastDailyReportDate != nil {
		fields["last_daily"] = tracker.LastDailyReportDate.Format(time.DateOnly)
	}
	if tracker.LastMonthlyReportYear != nil && tracker.LastMonthlyReportMonth != nil {
		period := domain.MonthPeriod{Year: *tracker.LastMonthlyReportYear, Month: *tracker.LastMonthlyReportMonth}
		fields["last_monthly"] = period.String()
	}
	if tracker.LastYearlyReportYear != nil {
		fields["last_yearly"] = *tracker.LastYearlyReportYear
	}

	logrus.WithFields(fields).Info("Tracker de geração inicializado")
	return nil
}

func runUpdateFinanceCosts(service *reporting.Service) error {
	updates, err := service.UpdateMonthlyFinanceCosts()
	if err != nil {
		return err
	}

	var updated, alreadyCorrect, failed int
	for _, update := range updates {
		switch update.Status {
		case reporting.FinanceCostUpdated:
			updated++
		case reporting.FinanceCostAlreadyCorrect:
			alreadyCorrect++
		case reporting.FinanceCostFailed:
			failed++
		}

		period := domain.MonthPeriod{Year: update.Year, Month: update.Month}
		logrus.WithFields(logrus.Fields{
			"period":             period.String(),
			"status":             update.Status,
			"total_finance_cost": update.TotalFinanceCost,
			"net_profit":         update.NetProfit,
		}).Info("Custos financeiros do mês processados")
	}

	logrus.WithFields(logrus.Fields{
		"updated":         updated,
		"already_correct": alreadyCorrect,
		"failed":          failed,
	}).Info("Ressincronização de custos financeiros concluída")

	if failed > 0 && updated == 0 && alreadyCorrect == 0 {
		return fmt.Errorf("todos os %d meses falharam", failed)
	}

	return nil
}
