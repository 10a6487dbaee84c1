package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/FarmanOthman/BCMS-Server-sub001/internal/usecases/reporting"
	"github.com/FarmanOthman/BCMS-Server-sub001/pkg/apiErrors"
	"github.com/FarmanOthman/BCMS-Server-sub001/pkg/utils"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ReportServices agrupa a leitura e a administração dos relatórios
type ReportServices struct {
	Reader    reporting.ReportReader
	Generator reporting.ReportGenerator
}

// GetDailyReport retorna o relatório diário de uma data (query param date=YYYY-MM-DD)
func GetDailyReport(services ReportServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date, err := utils.ParseDate(r.URL.Query().Get("date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use o formato YYYY-MM-DD", nil)
			return
		}
		if date.IsZero() {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro date é obrigatório", nil)
			return
		}

		report, err := services.Reader.GetDailyReport(*date)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar relatório diário", nil)
			return
		}

		if report == nil {
			apiErrors.WriteError(w, apiErrors.ErrReportNotFound, "Nenhum relatório para a data informada", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(report)
	}
}

// GetMonthlyReport retorna o relatório mensal de um período
func GetMonthlyReport(services ReportServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		year, month, ok := parsePeriodParams(w, r)
		if !ok {
			return
		}

		report, err := services.Reader.GetMonthlyReport(year, month)
		if err != nil {
			if errors.Is(err, reporting.ErrInvalidMonth) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, "Mês inválido, deve estar entre 1 e 12", nil)
				return
			}
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar relatório mensal", nil)
			return
		}

		if report == nil {
			apiErrors.WriteError(w, apiErrors.ErrReportNotFound, "Nenhum relatório para o período informado", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(report)
	}
}

// GetYearlyReport retorna o relatório anual
func GetYearlyReport(services ReportServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		yearParam := httprouter.ParamsFromContext(r.Context()).ByName("year")
		year, err := strconv.Atoi(yearParam)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Ano inválido", nil)
			return
		}

		report, err := services.Reader.GetYearlyReport(year)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar relatório anual", nil)
			return
		}

		if report == nil {
			apiErrors.WriteError(w, apiErrors.ErrReportNotFound, "Nenhum relatório para o ano informado", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(report)
	}
}

// GetGenerationTracker retorna as marcas d'água da geração automática
func GetGenerationTracker(services ReportServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tracker, err := services.Reader.GetTracker()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar tracker de geração", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(tracker)
	}
}

// RegenerateMonth ressincroniza o relatório mensal e o anual de um período
func RegenerateMonth(services ReportServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RegenerateMonth")

		year, month, ok := parsePeriodParams(w, r)
		if !ok {
			return
		}

		if err := services.Generator.RegenerateReportsForMonth(year, month); err != nil {
			if errors.Is(err, reporting.ErrInvalidMonth) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, "Mês inválido, deve estar entre 1 e 12", nil)
				return
			}
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrReportGeneration, "Erro ao regenerar relatórios do período", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"message": "Relatórios do período regenerados com sucesso",
			"year":    year,
			"month":   month,
		})
	}
}

// CheckMissingReports varre um intervalo e gera (ou relata, com dry_run=true)
// os relatórios ausentes
func CheckMissingReports(services ReportServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CheckMissingReports")

		query := r.URL.Query()

		from, err := time.Parse(time.DateOnly, query.Get("from"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro from inválido, use o formato YYYY-MM-DD", nil)
			return
		}

		to, err := time.Parse(time.DateOnly, query.Get("to"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro to inválido, use o formato YYYY-MM-DD", nil)
			return
		}

		dryRun := query.Get("dry_run") == "true"

		result, err := services.Generator.CheckMissingReports(from, to, dryRun)
		if err != nil {
			if errors.Is(err, reporting.ErrInvalidDateRange) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, "A data inicial não pode ser posterior à final", nil)
				return
			}
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrReportGeneration, "Erro ao verificar relatórios ausentes", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	}
}

// InitializeTracker aponta as marcas d'água para os relatórios já gravados
func InitializeTracker(services ReportServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - InitializeTracker")

		tracker, err := services.Generator.InitializeTracker()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrReportGeneration, "Erro ao inicializar tracker de geração", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(tracker)
	}
}

// UpdateMonthlyFinanceCosts ressincroniza os custos financeiros de todos os
// relatórios mensais
func UpdateMonthlyFinanceCosts(services ReportServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateMonthlyFinanceCosts")

		updates, err := services.Generator.UpdateMonthlyFinanceCosts()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrReportGeneration, "Erro ao atualizar custos financeiros", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(updates)
	}
}

// parsePeriodParams extrai e valida os parâmetros :year e :month da rota
func parsePeriodParams(w http.ResponseWriter, r *http.Request) (int, int, bool) {
	params := httprouter.ParamsFromContext(r.Context())

	year, err := strconv.Atoi(params.ByName("year"))
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Ano inválido", nil)
		return 0, 0, false
	}

	month, err := strconv.Atoi(params.ByName("month"))
	if err != nil || month < 1 || month > 12 {
		apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, "Mês inválido, deve estar entre 1 e 12", nil)
		return 0, 0, false
	}

	return year, month, true
}
