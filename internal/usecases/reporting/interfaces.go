package reporting

import (
	"time"

	"github.com/FarmanOthman/BCMS-Server-sub001/internal/domain"
)

// ReportGenerator é o orquestrador da geração de relatórios em três camadas
// (diário, mensal, anual). Todas as operações são idempotentes: chamar duas
// vezes com os mesmos fatos produz exatamente a mesma linha gravada.
type ReportGenerator interface {
	// GenerateDailyReport recalcula e grava o relatório do dia a partir das
	// vendas daquela data. Um dia sem vendas produz uma linha zerada.
	GenerateDailyReport(date time.Time) (*domain.DailyReport, error)

	// GenerateMonthlyReport recalcula e grava o relatório do mês direto das
	// vendas e lançamentos financeiros, sem somar relatórios diários.
	GenerateMonthlyReport(year, month int) (*domain.MonthlyReport, error)

	// GenerateYearlyReport recalcula e grava o relatório do ano direto das
	// vendas e lançamentos financeiros do ano.
	GenerateYearlyReport(year int) (*domain.YearlyReport, error)

	// GenerateReportsForSale recalcula apenas a camada diária da data de uma
	// venda; a propagação para cima acontece pela cascata de observadores.
	GenerateReportsForSale(date time.Time) error

	// RegenerateReportsForMonth ressincroniza o mês e o ano explicitamente,
	// sem passar pela cascata de observadores.
	RegenerateReportsForMonth(year, month int) error

	// AutoGenerateReportsForNewPeriod compara a data atual com as marcas
	// d'água do tracker, gera apenas os períodos ainda não cobertos e avança
	// as marcas.
	AutoGenerateReportsForNewPeriod() (*AutoGenerationResult, error)

	// CheckMissingReports varre as vendas no intervalo e gera (ou apenas
	// relata, em dryRun) os relatórios ausentes de todas as camadas.
	CheckMissingReports(from, to time.Time, dryRun bool) (*MissingReportsResult, error)

	// InitializeTracker aponta as marcas d'água para os relatórios mais
	// recentes já existentes, sem gerar nada.
	InitializeTracker() (*domain.GenerationTracker, error)

	// UpdateMonthlyFinanceCosts recalcula os custos financeiros de todos os
	// relatórios mensais existentes, informando por linha se houve mudança.
	UpdateMonthlyFinanceCosts() ([]*FinanceCostUpdate, error)
}

// CascadeNotifier recebe os eventos de gravação das camadas de relatório.
// É o gancho pelo qual a cascata sobe um nível por vez.
type CascadeNotifier interface {
	OnDailyReportUpserted(date time.Time)
	OnMonthlyReportUpserted(year, month int)
}

// AutoGenerationResult resume uma execução da geração automática
type AutoGenerationResult struct {
	DailyGenerated   []time.Time          `json:"daily_generated"`
	MonthlyGenerated []domain.MonthPeriod `json:"monthly_generated"`
	YearlyGenerated  []int                `json:"yearly_generated"`
	Failures         int                  `json:"failures"`
}

// MissingReportsResult resume uma varredura de relatórios ausentes
type MissingReportsResult struct {
	From           time.Time            `json:"from"`
	To             time.Time            `json:"to"`
	DryRun         bool                 `json:"dry_run"`
	MissingDaily   []time.Time          `json:"missing_daily"`
	MissingMonthly []domain.MonthPeriod `json:"missing_monthly"`
	MissingYearly  []int                `json:"missing_yearly"`
	Generated      int                  `json:"generated"`
	Failed         int                  `json:"failed"`
}

// Status possíveis de uma linha em UpdateMonthlyFinanceCosts
const (
	FinanceCostUpdated        = "updated"
	FinanceCostAlreadyCorrect = "already_correct"
	FinanceCostFailed         = "failed"
)

// FinanceCostUpdate descreve o resultado da ressincronização de um mês
type FinanceCostUpdate struct {
	Year             int     `json:"year"`
	Month            int     `json:"month"`
	Status           string  `json:"status"`
	TotalFinanceCost float64 `json:"total_finance_cost"`
	NetProfit        float64 `json:"net_profit"`
}
