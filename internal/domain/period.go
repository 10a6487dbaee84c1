package domain

import (
	"fmt"
	"time"
)

// MonthPeriod identifica um par (ano, mês), com mês em [1,12]
type MonthPeriod struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// MonthPeriodOf extrai o período mensal de uma data
func MonthPeriodOf(date time.Time) MonthPeriod {
	return MonthPeriod{Year: date.Year(), Month: int(date.Month())}
}

// String formata o período no padrão mm-yyyy usado em logs e na API
func (p MonthPeriod) String() string {
	return fmt.Sprintf("%02d-%04d", p.Month, p.Year)
}

// Before informa se p antecede other na ordem cronológica
func (p MonthPeriod) Before(other MonthPeriod) bool {
	if p.Year != other.Year {
		return p.Year < other.Year
	}
	return p.Month < other.Month
}

// Next retorna o período do mês seguinte
func (p MonthPeriod) Next() MonthPeriod {
	if p.Month == 12 {
		return MonthPeriod{Year: p.Year + 1, Month: 1}
	}
	return MonthPeriod{Year: p.Year, Month: p.Month + 1}
}

// Previous retorna o período do mês anterior
func (p MonthPeriod) Previous() MonthPeriod {
	if p.Month == 1 {
		return MonthPeriod{Year: p.Year - 1, Month: 12}
	}
	return MonthPeriod{Year: p.Year, Month: p.Month - 1}
}

// Range retorna o primeiro e o último dia do mês
func (p MonthPeriod) Range() (time.Time, time.Time) {
	start := time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).AddDate(0, 0, -1)
	return start, end
}

// Days retorna a quantidade de dias do mês
func (p MonthPeriod) Days() int {
	start, end := p.Range()
	return int(end.Sub(start).Hours()/24) + 1
}

// YearRange retorna o primeiro e o último dia do ano
func YearRange(year int) (time.Time, time.Time) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	return start, end
}

// DateOnly normaliza uma data para meia-noite UTC, a chave natural do
// relatório diário
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
