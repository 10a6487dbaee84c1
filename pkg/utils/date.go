package utils

import "time"

// ParseDate interpreta uma data no formato YYYY-MM-DD. String vazia devolve
// uma data zerada, que o chamador distingue com IsZero.
func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}
