package get_unavailable_ranges

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/JWL-RentalService/internal/domain"
	itemRepo "github.com/m04kA/JWL-RentalService/internal/infra/storage/item"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type fakeReservations struct {
	blocking []*domain.Reservation
}

func (f *fakeReservations) GetBlockingByItemID(_ context.Context, _ string) ([]*domain.Reservation, error) {
	return f.blocking, nil
}

type fakeItems struct {
	known map[string]bool
}

func (f *fakeItems) GetByID(_ context.Context, id string) (*domain.Item, error) {
	if f.known[id] {
		return &domain.Item{ID: id, Name: "Emerald Ring", Status: domain.ItemStatusActive}, nil
	}
	return nil, itemRepo.ErrItemNotFound
}

type fakeSettings struct {
	settings *domain.BookingSettings
}

func (f *fakeSettings) Get(_ context.Context) (*domain.BookingSettings, error) {
	return f.settings, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestExecute(t *testing.T) {
	reservations := &fakeReservations{blocking: []*domain.Reservation{
		{
			ID:        "r1",
			ItemID:    "ring-1",
			StartDate: date(2024, 6, 1),
			EndDate:   date(2024, 6, 3),
			Status:    domain.StatusConfirmed,
		},
		{
			// Смежное с учетом буфера окно, должно слиться с первым
			ID:        "r2",
			ItemID:    "ring-1",
			StartDate: date(2024, 6, 5),
			EndDate:   date(2024, 6, 7),
			Status:    domain.StatusPending,
		},
		{
			ID:        "r3",
			ItemID:    "ring-1",
			StartDate: date(2024, 6, 20),
			EndDate:   date(2024, 6, 22),
			Status:    domain.StatusActive,
		},
	}}

	uc := NewUseCase(reservations, &fakeItems{known: map[string]bool{"ring-1": true}},
		&fakeSettings{settings: &domain.BookingSettings{TurnaroundBufferDays: 1}}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{ItemID: "ring-1"})
	require.NoError(t, err)

	assert.Equal(t, "ring-1", resp.ItemID)
	assert.Equal(t, 1, resp.BufferDays)

	// r1 (01..03 + буфер = 01..04) и r2 (05..07 + буфер = 05..08) смежные,
	// сливаются в одно окно 01..08; r3 остается отдельным окном 20..23
	require.Len(t, resp.Ranges, 2)
	assert.Equal(t, date(2024, 6, 1), resp.Ranges[0].From)
	assert.Equal(t, date(2024, 6, 8), resp.Ranges[0].To)
	assert.Equal(t, date(2024, 6, 20), resp.Ranges[1].From)
	assert.Equal(t, date(2024, 6, 23), resp.Ranges[1].To)
}

func TestExecuteEmptyCalendar(t *testing.T) {
	uc := NewUseCase(&fakeReservations{}, &fakeItems{known: map[string]bool{"ring-1": true}},
		&fakeSettings{settings: domain.DefaultBookingSettings()}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{ItemID: "ring-1"})
	require.NoError(t, err)
	assert.Empty(t, resp.Ranges)
}

func TestExecuteItemNotFound(t *testing.T) {
	uc := NewUseCase(&fakeReservations{}, &fakeItems{known: map[string]bool{}},
		&fakeSettings{settings: domain.DefaultBookingSettings()}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{ItemID: "no-such-item"})
	require.ErrorIs(t, err, ErrItemNotFound)
}

func TestExecuteMissingItemID(t *testing.T) {
	uc := NewUseCase(&fakeReservations{}, &fakeItems{known: map[string]bool{}},
		&fakeSettings{settings: domain.DefaultBookingSettings()}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{})
	require.ErrorIs(t, err, ErrInvalidInput)
}
