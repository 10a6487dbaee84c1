package handler

import (
	"encoding/json"
	"net/http"

	"github.com/FarmanOthman/BCMS-Server-sub001/internal/usecases/inventorying"
	"github.com/FarmanOthman/BCMS-Server-sub001/pkg/apiErrors"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// RegisterCar cadastra um carro no estoque
func RegisterCar(service inventorying.InventoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RegisterCar")

		var req inventorying.RegisterCarRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		car, err := service.RegisterCar(&req)
		if err != nil {
			handleInventoryError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(car)
	}
}

// GetCar retorna um carro por ID
func GetCar(service inventorying.InventoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		car, err := service.GetCar(id)
		if err != nil {
			handleInventoryError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(car)
	}
}

// ListCars lista o estoque na ordem de cadastro
func ListCars(service inventorying.InventoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cars, err := service.ListCars()
		if err != nil {
			handleInventoryError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(cars)
	}
}

// RegisterBuyer cadastra um comprador
func RegisterBuyer(service inventorying.InventoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RegisterBuyer")

		var req inventorying.RegisterBuyerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		buyer, err := service.RegisterBuyer(&req)
		if err != nil {
			handleInventoryError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(buyer)
	}
}

// GetBuyer retorna um comprador por ID
func GetBuyer(service inventorying.InventoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		buyer, err := service.GetBuyer(id)
		if err != nil {
			handleInventoryError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(buyer)
	}
}

func handleInventoryError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, inventorying.ErrCarNotFound):
		apiErrors.WriteError(w, apiErrors.ErrCarNotFound, "Carro não encontrado", nil)

	case errors.Is(err, inventorying.ErrBuyerNotFound):
		apiErrors.WriteError(w, apiErrors.ErrBuyerNotFound, "Comprador não encontrado", nil)

	case errors.Is(err, inventorying.ErrMissingCarData):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Marca, modelo e ano do carro são obrigatórios", nil)

	case errors.Is(err, inventorying.ErrInvalidCostPrice):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "O custo de aquisição deve ser maior que zero", nil)

	case errors.Is(err, inventorying.ErrMissingBuyerName):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "O nome do comprador é obrigatório", nil)

	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao processar cadastro", nil)
	}
}
