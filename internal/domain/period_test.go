package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthPeriod_NextPrevious(t *testing.T) {
	tests := []struct {
		name             string
		period           MonthPeriod
		expectedNext     MonthPeriod
		expectedPrevious MonthPeriod
	}{
		{
			name:             "Mês no meio do ano",
			period:           MonthPeriod{Year: 2024, Month: 6},
			expectedNext:     MonthPeriod{Year: 2024, Month: 7},
			expectedPrevious: MonthPeriod{Year: 2024, Month: 5},
		},
		{
			name:             "Dezembro vira para o ano seguinte",
			period:           MonthPeriod{Year: 2024, Month: 12},
			expectedNext:     MonthPeriod{Year: 2025, Month: 1},
			expectedPrevious: MonthPeriod{Year: 2024, Month: 11},
		},
		{
			name:             "Janeiro volta para o ano anterior",
			period:           MonthPeriod{Year: 2024, Month: 1},
			expectedNext:     MonthPeriod{Year: 2024, Month: 2},
			expectedPrevious: MonthPeriod{Year: 2023, Month: 12},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedNext, tt.period.Next())
			assert.Equal(t, tt.expectedPrevious, tt.period.Previous())
		})
	}
}

func TestMonthPeriod_Range(t *testing.T) {
	tests := []struct {
		name          string
		period        MonthPeriod
		expectedStart time.Time
		expectedEnd   time.Time
		expectedDays  int
	}{
		{
			name:          "Mês de 31 dias",
			period:        MonthPeriod{Year: 2024, Month: 3},
			expectedStart: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
			expectedDays:  31,
		},
		{
			name:          "Fevereiro em ano bissexto",
			period:        MonthPeriod{Year: 2024, Month: 2},
			expectedStart: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
			expectedDays:  29,
		},
		{
			name:          "Fevereiro em ano comum",
			period:        MonthPeriod{Year: 2023, Month: 2},
			expectedStart: time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2023, 2, 28, 0, 0, 0, 0, time.UTC),
			expectedDays:  28,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := tt.period.Range()

			assert.Equal(t, tt.expectedStart, start)
			assert.Equal(t, tt.expectedEnd, end)
			assert.Equal(t, tt.expectedDays, tt.period.Days())
		})
	}
}

func TestMonthPeriod_BeforeAndString(t *testing.T) {
	older := MonthPeriod{Year: 2023, Month: 12}
	newer := MonthPeriod{Year: 2024, Month: 1}

	assert.True(t, older.Before(newer))
	assert.False(t, newer.Before(older))
	assert.False(t, newer.Before(newer))

	assert.Equal(t, "01-2024", newer.String())
	assert.Equal(t, "12-2023", older.String())
}

func TestDateOnly(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	afternoon := time.Date(2024, 3, 15, 14, 37, 22, 999, loc)

	day := DateOnly(afternoon)

	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), day)
}

func TestYearRange(t *testing.T) {
	start, end := YearRange(2024)

	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), end)
}
