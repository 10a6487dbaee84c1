package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/FarmanOthman/BCMS-Server-sub001/internal/domain"
	"github.com/FarmanOthman/BCMS-Server-sub001/internal/usecases/financing"
	"github.com/FarmanOthman/BCMS-Server-sub001/pkg/apiErrors"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// CreateFinanceRecord cria um lançamento no livro-caixa
func CreateFinanceRecord(service financing.FinanceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateFinanceRecord")

		var req financing.CreateFinanceRecordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if req.RecordDate.IsZero() {
			req.RecordDate = time.Now()
		}

		record, err := service.CreateRecord(&req)
		if err != nil {
			handleFinanceError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(record)
	}
}

// GetFinanceRecord retorna um lançamento por ID
func GetFinanceRecord(service financing.FinanceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		record, err := service.GetRecord(id)
		if err != nil {
			handleFinanceError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(record)
	}
}

// ListFinanceRecordsByMonth lista os lançamentos de um mês
func ListFinanceRecordsByMonth(service financing.FinanceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())

		year, err := strconv.Atoi(params.ByName("year"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Ano inválido", nil)
			return
		}

		month, err := strconv.Atoi(params.ByName("month"))
		if err != nil || month < 1 || month > 12 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, "Mês inválido, deve estar entre 1 e 12", nil)
			return
		}

		records, err := service.ListRecordsByMonth(year, month)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar lançamentos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(records)
	}
}

// UpdateFinanceRecord atualiza um lançamento
func UpdateFinanceRecord(service financing.FinanceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateFinanceRecord")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req struct {
			Type        *domain.FinanceRecordType `json:"type"`
			Cost        *float64                  `json:"cost"`
			Description *string                   `json:"description"`
			RecordDate  *string                   `json:"record_date"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		update := &domain.UpdateFinanceRecordRequest{
			ID:          id,
			Type:        req.Type,
			Cost:        req.Cost,
			Description: req.Description,
		}
		if req.RecordDate != nil {
			date, err := time.Parse(time.DateOnly, *req.RecordDate)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use o formato YYYY-MM-DD", nil)
				return
			}
			update.RecordDate = &date
		}

		record, err := service.UpdateRecord(update)
		if err != nil {
			handleFinanceError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(record)
	}
}

// DeleteFinanceRecord remove um lançamento
func DeleteFinanceRecord(service financing.FinanceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteFinanceRecord")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteRecord(id); err != nil {
			handleFinanceError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"message": "Lançamento removido com sucesso",
		})
	}
}

func handleFinanceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, financing.ErrRecordNotFound):
		apiErrors.WriteError(w, apiErrors.ErrRecordNotFound, "Lançamento não encontrado", nil)

	case errors.Is(err, financing.ErrInvalidType):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Tipo de lançamento inválido, use income ou expense", nil)

	case errors.Is(err, financing.ErrInvalidCost):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "O valor do lançamento deve ser maior que zero", nil)

	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao processar lançamento", nil)
	}
}
