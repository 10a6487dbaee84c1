package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/FarmanOthman/BCMS-Server-sub001/infrastructure/database/postgres"
	"github.com/FarmanOthman/BCMS-Server-sub001/infrastructure/repository"
	"github.com/FarmanOthman/BCMS-Server-sub001/internal/api"
	"github.com/FarmanOthman/BCMS-Server-sub001/internal/config"
	"github.com/FarmanOthman/BCMS-Server-sub001/internal/scheduler"
	"github.com/FarmanOthman/BCMS-Server-sub001/internal/usecases/authenticating"
	"github.com/FarmanOthman/BCMS-Server-sub001/internal/usecases/financing"
	"github.com/FarmanOthman/BCMS-Server-sub001/internal/usecases/inventorying"
	"github.com/FarmanOthman/BCMS-Server-sub001/internal/usecases/reporting"
	"github.com/FarmanOthman/BCMS-Server-sub001/internal/usecases/selling"
	"github.com/sirupsen/logrus"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	carRepo := repository.NewCarRepository(pgConn)
	buyerRepo := repository.NewBuyerRepository(pgConn)
	saleRepo := repository.NewSaleRepository(pgConn)
	financeRepo := repository.NewFinanceRecordRepository(pgConn)
	dailyReportRepo := repository.NewDailyReportRepository(pgConn)
	monthlyReportRepo := repository.NewMonthlyReportRepository(pgConn)
	yearlyReportRepo := repository.NewYearlyReportRepository(pgConn)
	trackerRepo := repository.NewGenerationTrackerRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	// Serviço de relatórios com a cascata entre camadas ligada
	reportService := reporting.NewService(
		saleRepo,
		financeRepo,
		dailyReportRepo,
		monthlyReportRepo,
		yearlyReportRepo,
		trackerRepo,
	)
	cascade := reporting.NewCascade(reportService)
	reportService.WithCascade(cascade)

	// Mutações de fatos notificam a cascata depois de persistir
	inventoryService := inventorying.NewService(carRepo, buyerRepo)
	saleService := selling.NewService(saleRepo, carRepo, buyerRepo).WithObserver(cascade)
	financeService := financing.NewService(financeRepo).WithObserver(cascade)

	reportSyncService := scheduler.NewReportGenerationService(reportService, cfg)

	if err := reportSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de relatórios")
	} else {
		logrus.Info("Agendador de relatórios iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		inventoryService,
		saleService,
		financeService,
		reportService,
		authenticator,
		reportSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
