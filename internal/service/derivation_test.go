package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(value string) time.Time {
	ts, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return ts
}

func TestDeriveProductionOutcome(t *testing.T) {
	cases := []struct {
		name          string
		producedQty   int
		dateRequested string
		dateFulfilled string
		wantFulfilled bool
		wantOnTime    bool
	}{
		{"over threshold and early", 150, "2025-10-05", "2025-10-03", true, true},
		{"under threshold and late", 50, "2025-10-01", "2025-10-10", false, false},
		{"exactly at threshold", 100, "2025-10-05", "2025-10-05", true, true},
		{"one below threshold", 99, "2025-10-05", "2025-10-04", false, true},
		{"same day counts as on time", 120, "2025-10-05", "2025-10-05", true, true},
		{"one day late", 120, "2025-10-05", "2025-10-06", true, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fulfilled, onTime := deriveProductionOutcome(tc.producedQty, day(tc.dateRequested), day(tc.dateFulfilled))
			assert.Equal(t, tc.wantFulfilled, fulfilled)
			assert.Equal(t, tc.wantOnTime, onTime)
		})
	}
}

func TestParseDateFormats(t *testing.T) {
	plain, err := parseDate("2025-10-05")
	assert.NoError(t, err)
	assert.Equal(t, 2025, plain.Year())

	rfc, err := parseDate("2025-10-05T14:30:00Z")
	assert.NoError(t, err)
	assert.Equal(t, 14, rfc.Hour())

	_, err = parseDate("05/10/2025")
	assert.Error(t, err)
}
