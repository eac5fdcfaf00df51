package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDateRangeOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a        DateRange
		b        DateRange
		expected bool
	}{
		{
			name:     "disjoint ranges",
			a:        DateRange{date(2024, 6, 1), date(2024, 6, 5)},
			b:        DateRange{date(2024, 6, 10), date(2024, 6, 12)},
			expected: false,
		},
		{
			name:     "touching on boundary day",
			a:        DateRange{date(2024, 6, 1), date(2024, 6, 5)},
			b:        DateRange{date(2024, 6, 5), date(2024, 6, 8)},
			expected: true,
		},
		{
			name:     "adjacent days do not overlap",
			a:        DateRange{date(2024, 6, 1), date(2024, 6, 5)},
			b:        DateRange{date(2024, 6, 6), date(2024, 6, 8)},
			expected: false,
		},
		{
			name:     "contained range",
			a:        DateRange{date(2024, 6, 1), date(2024, 6, 30)},
			b:        DateRange{date(2024, 6, 10), date(2024, 6, 12)},
			expected: true,
		},
		{
			name:     "partial overlap",
			a:        DateRange{date(2024, 6, 1), date(2024, 6, 10)},
			b:        DateRange{date(2024, 6, 8), date(2024, 6, 15)},
			expected: true,
		},
		{
			name:     "single day ranges same day",
			a:        DateRange{date(2024, 6, 1), date(2024, 6, 1)},
			b:        DateRange{date(2024, 6, 1), date(2024, 6, 1)},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.Overlaps(tt.b))
			// Пересечение симметрично
			assert.Equal(t, tt.expected, tt.b.Overlaps(tt.a))
		})
	}
}

func TestDateRangeIsValid(t *testing.T) {
	assert.True(t, DateRange{date(2024, 6, 1), date(2024, 6, 1)}.IsValid())
	assert.True(t, DateRange{date(2024, 6, 1), date(2024, 6, 5)}.IsValid())
	assert.False(t, DateRange{date(2024, 6, 5), date(2024, 6, 1)}.IsValid())
	assert.False(t, DateRange{}.IsValid())
	assert.False(t, DateRange{From: date(2024, 6, 1)}.IsValid())
}

func TestDateRangeExtendEnd(t *testing.T) {
	r := DateRange{date(2024, 6, 1), date(2024, 6, 5)}

	extended := r.ExtendEnd(2)
	assert.Equal(t, date(2024, 6, 1), extended.From)
	assert.Equal(t, date(2024, 6, 7), extended.To)

	// Нулевой буфер не меняет диапазон
	assert.Equal(t, r, r.ExtendEnd(0))
}

func TestDateRangeDays(t *testing.T) {
	assert.Equal(t, 1, DateRange{date(2024, 6, 1), date(2024, 6, 1)}.Days())
	assert.Equal(t, 5, DateRange{date(2024, 6, 1), date(2024, 6, 5)}.Days())
}

func TestNewDateRangeTruncatesTime(t *testing.T) {
	from := time.Date(2024, 6, 1, 15, 30, 0, 0, time.UTC)
	to := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)

	r := NewDateRange(from, to)
	assert.Equal(t, date(2024, 6, 1), r.From)
	assert.Equal(t, date(2024, 6, 3), r.To)
}

func TestReservationBlockedRange(t *testing.T) {
	res := &Reservation{
		StartDate: date(2024, 6, 1),
		EndDate:   date(2024, 6, 5),
		Status:    StatusConfirmed,
	}

	blocked := res.BlockedRange(2)
	assert.Equal(t, date(2024, 6, 1), blocked.From)
	assert.Equal(t, date(2024, 6, 7), blocked.To)

	// Запрос сразу после буфера не пересекается
	assert.False(t, blocked.Overlaps(DateRange{date(2024, 6, 8), date(2024, 6, 10)}))
	// Запрос внутри буфера пересекается
	assert.True(t, blocked.Overlaps(DateRange{date(2024, 6, 6), date(2024, 6, 7)}))
}

func TestReservationStatusIsBlocking(t *testing.T) {
	assert.True(t, StatusPending.IsBlocking())
	assert.True(t, StatusConfirmed.IsBlocking())
	assert.True(t, StatusActive.IsBlocking())
	assert.False(t, StatusReturned.IsBlocking())
	assert.False(t, StatusCancelled.IsBlocking())
}
