package selling

import "github.com/pkg/errors"

var (
	ErrSaleNotFound     = errors.New("venda não encontrada")
	ErrCarNotFound      = errors.New("carro não encontrado")
	ErrBuyerNotFound    = errors.New("comprador não encontrado")
	ErrCarAlreadySold   = errors.New("o carro já foi vendido")
	ErrInvalidSalePrice = errors.New("o preço de venda deve ser maior que zero")
)
