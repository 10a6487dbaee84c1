package reporting

import "github.com/pkg/errors"

// Erros da geração de relatórios
var (
	// Erros de consulta aos fatos
	ErrFetchSales          = errors.New("erro ao buscar vendas")
	ErrFetchFinanceRecords = errors.New("erro ao buscar lançamentos financeiros")

	// Erros de gravação de relatórios
	ErrSaveDailyReport   = errors.New("erro ao gravar relatório diário")
	ErrSaveMonthlyReport = errors.New("erro ao gravar relatório mensal")
	ErrSaveYearlyReport  = errors.New("erro ao gravar relatório anual")

	// Erros do tracker de geração
	ErrLoadTracker = errors.New("erro ao carregar tracker de geração")
	ErrSaveTracker = errors.New("erro ao gravar tracker de geração")

	// Erros de validação de período
	ErrInvalidMonth     = errors.New("mês inválido: deve estar entre 1 e 12")
	ErrInvalidDateRange = errors.New("intervalo inválido: a data inicial não pode ser posterior à final")
)
