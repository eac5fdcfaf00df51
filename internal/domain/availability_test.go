package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstConflict(t *testing.T) {
	reservations := []*Reservation{
		{ID: "r1", StartDate: date(2024, 6, 1), EndDate: date(2024, 6, 5), Status: StatusConfirmed},
		{ID: "r2", StartDate: date(2024, 6, 20), EndDate: date(2024, 6, 25), Status: StatusPending},
		{ID: "r3", StartDate: date(2024, 6, 10), EndDate: date(2024, 6, 12), Status: StatusCancelled},
	}

	tests := []struct {
		name       string
		candidate  DateRange
		bufferDays int
		conflictID string
	}{
		{
			name:       "range inside buffer is rejected",
			candidate:  DateRange{date(2024, 6, 6), date(2024, 6, 7)},
			bufferDays: 2,
			conflictID: "r1",
		},
		{
			name:       "range right after buffer is free",
			candidate:  DateRange{date(2024, 6, 8), date(2024, 6, 10)},
			bufferDays: 2,
			conflictID: "",
		},
		{
			name:       "zero buffer allows next day booking",
			candidate:  DateRange{date(2024, 6, 6), date(2024, 6, 7)},
			bufferDays: 0,
			conflictID: "",
		},
		{
			name:       "cancelled reservation does not block",
			candidate:  DateRange{date(2024, 6, 10), date(2024, 6, 12)},
			bufferDays: 1,
			conflictID: "",
		},
		{
			name:       "direct overlap with pending reservation",
			candidate:  DateRange{date(2024, 6, 24), date(2024, 6, 28)},
			bufferDays: 0,
			conflictID: "r2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conflict := FirstConflict(tt.candidate, reservations, tt.bufferDays)
			if tt.conflictID == "" {
				assert.Nil(t, conflict)
				return
			}
			require.NotNil(t, conflict)
			assert.Equal(t, tt.conflictID, conflict.ID)
		})
	}
}

func TestMergeBlockedRanges(t *testing.T) {
	t.Run("merges touching buffered windows", func(t *testing.T) {
		reservations := []*Reservation{
			{StartDate: date(2024, 6, 10), EndDate: date(2024, 6, 12), Status: StatusConfirmed},
			{StartDate: date(2024, 6, 1), EndDate: date(2024, 6, 5), Status: StatusConfirmed},
			// Буфер первого (до 13-го) соприкасается с началом этого
			{StartDate: date(2024, 6, 14), EndDate: date(2024, 6, 15), Status: StatusActive},
		}

		merged := MergeBlockedRanges(reservations, 1)
		require.Len(t, merged, 2)
		assert.Equal(t, DateRange{date(2024, 6, 1), date(2024, 6, 6)}, merged[0])
		assert.Equal(t, DateRange{date(2024, 6, 10), date(2024, 6, 16)}, merged[1])
	})

	t.Run("skips non-blocking reservations", func(t *testing.T) {
		reservations := []*Reservation{
			{StartDate: date(2024, 6, 1), EndDate: date(2024, 6, 5), Status: StatusReturned},
			{StartDate: date(2024, 6, 10), EndDate: date(2024, 6, 12), Status: StatusCancelled},
		}
		assert.Empty(t, MergeBlockedRanges(reservations, 1))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, MergeBlockedRanges(nil, 2))
	})
}
