package domain

import "time"

// FinanceRecordType identifica o lado de um lançamento financeiro
type FinanceRecordType string

const (
	FinanceRecordIncome  FinanceRecordType = "income"
	FinanceRecordExpense FinanceRecordType = "expense"
)

// FinanceRecord representa um lançamento do livro-caixa. O efeito líquido de um
// período é (soma das despesas) - (soma das receitas), podendo ser negativo.
type FinanceRecord struct {
	ID          string            `json:"id"`
	Type        FinanceRecordType `json:"type"`
	Cost        float64           `json:"cost"`
	Description *string           `json:"description"`
	RecordDate  time.Time         `json:"record_date"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// UpdateFinanceRecordRequest contém os campos mutáveis de um lançamento
type UpdateFinanceRecordRequest struct {
	ID          string             `json:"id"`
	Type        *FinanceRecordType `json:"type"`
	Cost        *float64           `json:"cost"`
	Description *string            `json:"description"`
	RecordDate  *time.Time         `json:"record_date"`
}
