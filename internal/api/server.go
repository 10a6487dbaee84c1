package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/FarmanOthman/BCMS-Server-sub001/internal/api/handler"
	"github.com/FarmanOthman/BCMS-Server-sub001/internal/api/handler/router"
	"github.com/FarmanOthman/BCMS-Server-sub001/internal/config"
	"github.com/FarmanOthman/BCMS-Server-sub001/internal/scheduler"
	"github.com/FarmanOthman/BCMS-Server-sub001/internal/usecases/authenticating"
	"github.com/FarmanOthman/BCMS-Server-sub001/internal/usecases/financing"
	"github.com/FarmanOthman/BCMS-Server-sub001/internal/usecases/inventorying"
	"github.com/FarmanOthman/BCMS-Server-sub001/internal/usecases/reporting"
	"github.com/FarmanOthman/BCMS-Server-sub001/internal/usecases/selling"
	"github.com/FarmanOthman/BCMS-Server-sub001/pkg/middleware"
	jsoniter "github.com/json-iterator/go"
	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	inventoryService inventorying.InventoryService,
	saleService selling.SaleService,
	financeService financing.FinanceService,
	reportService *reporting.Service,
	authenticator authenticating.Authenticator,
	reportSyncService *scheduler.ReportGenerationService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		ReportGenerationService: reportSyncService,
	}

	reportServices := handler.ReportServices{
		Reader:    reportService,
		Generator: reportService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.User(authenticator)...),
		router.WithRoutes(handler.Inventory(inventoryService)...),
		router.WithRoutes(handler.Sales(saleService)...),
		router.WithRoutes(handler.FinanceRecords(financeService)...),
		router.WithRoutes(handler.Reports(reportServices)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(authenticator),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	logrus.Info("Executando operações de limpeza antes do desligamento")

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
