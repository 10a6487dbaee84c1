package financing

import "github.com/pkg/errors"

var (
	ErrRecordNotFound = errors.New("lançamento financeiro não encontrado")
	ErrInvalidType    = errors.New("tipo de lançamento inválido: deve ser income ou expense")
	ErrInvalidCost    = errors.New("o valor do lançamento deve ser maior que zero")
)
