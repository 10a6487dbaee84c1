package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/FarmanOthman/BCMS-Server-sub001/internal/domain"
	"github.com/FarmanOthman/BCMS-Server-sub001/internal/usecases/selling"
	"github.com/FarmanOthman/BCMS-Server-sub001/pkg/apiErrors"
	"github.com/FarmanOthman/BCMS-Server-sub001/pkg/utils"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// CreateSale registra uma venda. A geração dos relatórios do período
// acontece em segundo plano e nunca derruba a criação da venda.
func CreateSale(service selling.SaleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateSale")

		var req selling.CreateSaleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if req.CarID == "" || req.BuyerID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Carro e comprador são obrigatórios", nil)
			return
		}

		if req.SaleDate.IsZero() {
			req.SaleDate = time.Now()
		}

		sale, err := service.CreateSale(&req)
		if err != nil {
			handleSaleError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(sale)
	}
}

// GetSale retorna uma venda por ID
func GetSale(service selling.SaleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		sale, err := service.GetSale(id)
		if err != nil {
			handleSaleError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(sale)
	}
}

// ListSalesByDate lista as vendas de uma data (query param date=YYYY-MM-DD)
func ListSalesByDate(service selling.SaleService) http.HandlerFunc {
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

		sales, err := service.ListSalesByDate(*date)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar vendas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(sales)
	}
}

// UpdateSale atualiza preço ou data de uma venda
func UpdateSale(service selling.SaleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateSale")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req struct {
			SalePrice *float64 `json:"sale_price"`
			SaleDate  *string  `json:"sale_date"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		update := &domain.UpdateSaleRequest{ID: id, SalePrice: req.SalePrice}
		if req.SaleDate != nil {
			date, err := time.Parse(time.DateOnly, *req.SaleDate)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use o formato YYYY-MM-DD", nil)
				return
			}
			update.SaleDate = &date
		}

		sale, err := service.UpdateSale(update)
		if err != nil {
			handleSaleError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(sale)
	}
}

// DeleteSale remove uma venda e devolve o carro ao estoque
func DeleteSale(service selling.SaleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteSale")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteSale(id); err != nil {
			handleSaleError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"message": "Venda removida com sucesso",
		})
	}
}

func handleSaleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, selling.ErrSaleNotFound):
		apiErrors.WriteError(w, apiErrors.ErrSaleNotFound, "Venda não encontrada", nil)

	case errors.Is(err, selling.ErrCarNotFound):
		apiErrors.WriteError(w, apiErrors.ErrCarNotFound, "Carro não encontrado", nil)

	case errors.Is(err, selling.ErrBuyerNotFound):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Comprador não encontrado", nil)

	case errors.Is(err, selling.ErrCarAlreadySold):
		apiErrors.WriteError(w, apiErrors.ErrCarAlreadySold, "O carro já foi vendido", nil)

	case errors.Is(err, selling.ErrInvalidSalePrice):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "O preço de venda deve ser maior que zero", nil)

	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao processar venda", nil)
	}
}
