package inventorying

import "github.com/pkg/errors"

var (
	ErrCarNotFound      = errors.New("carro não encontrado")
	ErrBuyerNotFound    = errors.New("comprador não encontrado")
	ErrMissingCarData   = errors.New("marca, modelo e ano do carro são obrigatórios")
	ErrInvalidCostPrice = errors.New("o custo de aquisição deve ser maior que zero")
	ErrMissingBuyerName = errors.New("o nome do comprador é obrigatório")
)
