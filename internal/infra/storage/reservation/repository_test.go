package reservation

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/JWL-RentalService/internal/domain"
	"github.com/m04kA/JWL-RentalService/pkg/dbmetrics"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func reservationRows(reservations ...*domain.Reservation) *sqlmock.Rows {
	rows := sqlmock.NewRows(reservationColumns)
	for _, r := range reservations {
		rows.AddRow(
			r.ID, r.ItemID, r.ProfileID, r.StartDate, r.EndDate, string(r.Status),
			r.GroupID, r.Notes, r.DispatchNotes, r.ReturnNotes, r.DispatchImage, r.ReturnImage,
			r.CancellationReason, r.CancelledAt, r.CreatedAt, r.UpdatedAt,
		)
	}
	return rows
}

func TestCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(
		"INSERT INTO reservations (id,item_id,profile_id,start_date,end_date,status,group_id,notes) "+
			"VALUES ($1,$2,$3,$4,$5,$6,$7,$8) RETURNING created_at, updated_at")).
		WithArgs("res-1", "ring-1", "profile-1", date(2024, 6, 10), date(2024, 6, 12),
			domain.StatusPending, nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	created, err := repo.Create(context.Background(), &domain.Reservation{
		ID:        "res-1",
		ItemID:    "ring-1",
		ProfileID: "profile-1",
		StartDate: date(2024, 6, 10),
		EndDate:   date(2024, 6, 12),
		Status:    domain.StatusPending,
	})
	require.NoError(t, err)
	assert.Equal(t, now, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOverlapConflict(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	tests := []struct {
		name string
		code pq.ErrorCode
	}{
		{name: "exclusion violation", code: "23P01"},
		{name: "unique violation", code: "23505"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock.ExpectQuery("INSERT INTO reservations").
				WillReturnError(&pq.Error{Code: tt.code})

			_, err := repo.Create(context.Background(), &domain.Reservation{
				ID:        "res-1",
				ItemID:    "ring-1",
				ProfileID: "profile-1",
				StartDate: date(2024, 6, 10),
				EndDate:   date(2024, 6, 12),
				Status:    domain.StatusPending,
			})
			require.ErrorIs(t, err, ErrOverlapConflict)
		})
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateGroupSingleStatement(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	groupID := "group-1"

	// Обе строки группы уходят одним INSERT
	mock.ExpectExec(regexp.QuoteMeta(
		"INSERT INTO reservations (id,item_id,profile_id,start_date,end_date,status,group_id,notes) "+
			"VALUES ($1,$2,$3,$4,$5,$6,$7,$8),($9,$10,$11,$12,$13,$14,$15,$16)")).
		WillReturnResult(sqlmock.NewResult(0, 2))

	reservations := []*domain.Reservation{
		{ID: "res-1", ItemID: "ring-1", ProfileID: "profile-1", StartDate: date(2024, 6, 10), EndDate: date(2024, 6, 12), Status: domain.StatusPending, GroupID: &groupID},
		{ID: "res-2", ItemID: "necklace", ProfileID: "profile-1", StartDate: date(2024, 6, 10), EndDate: date(2024, 6, 12), Status: domain.StatusPending, GroupID: &groupID},
	}

	require.NoError(t, repo.CreateGroup(context.Background(), reservations))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateGroupOverlapConflict(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	groupID := "group-1"

	mock.ExpectExec("INSERT INTO reservations").
		WillReturnError(&pq.Error{Code: "23P01"})

	err = repo.CreateGroup(context.Background(), []*domain.Reservation{
		{ID: "res-1", ItemID: "ring-1", ProfileID: "profile-1", StartDate: date(2024, 6, 10), EndDate: date(2024, 6, 12), Status: domain.StatusPending, GroupID: &groupID},
	})
	require.ErrorIs(t, err, ErrOverlapConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBlockingByItemID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	existing := &domain.Reservation{
		ID:        "res-1",
		ItemID:    "ring-1",
		ProfileID: "profile-1",
		StartDate: date(2024, 6, 1),
		EndDate:   date(2024, 6, 5),
		Status:    domain.StatusConfirmed,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	// Вне транзакции запрос уходит без FOR UPDATE
	mock.ExpectQuery(regexp.QuoteMeta(
		"WHERE item_id = $1 AND status IN ($2,$3,$4) ORDER BY start_date ASC") + "$").
		WithArgs("ring-1", "pending", "confirmed", "active").
		WillReturnRows(reservationRows(existing))

	reservations, err := repo.GetBlockingByItemID(context.Background(), "ring-1")
	require.NoError(t, err)
	require.Len(t, reservations, 1)
	assert.Equal(t, "res-1", reservations[0].ID)
	assert.Equal(t, domain.StatusConfirmed, reservations[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBlockingByItemIDLocksRowsInTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY start_date ASC FOR UPDATE")).
		WithArgs("ring-1", "pending", "confirmed", "active").
		WillReturnRows(reservationRows())
	mock.ExpectCommit()

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err)

	ctx := dbmetrics.WithTx(context.Background(), tx)

	reservations, err := repo.GetBlockingByItemID(ctx, "ring-1")
	require.NoError(t, err)
	assert.Empty(t, reservations)

	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("found", func(t *testing.T) {
		existing := &domain.Reservation{
			ID:        "res-1",
			ItemID:    "ring-1",
			ProfileID: "profile-1",
			StartDate: date(2024, 6, 1),
			EndDate:   date(2024, 6, 5),
			Status:    domain.StatusPending,
		}

		mock.ExpectQuery(regexp.QuoteMeta("FROM reservations WHERE id = $1")).
			WithArgs("res-1").
			WillReturnRows(reservationRows(existing))

		res, err := repo.GetByID(context.Background(), "res-1")
		require.NoError(t, err)
		assert.Equal(t, "ring-1", res.ItemID)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM reservations WHERE id = $1")).
			WithArgs("missing").
			WillReturnRows(reservationRows())

		_, err := repo.GetByID(context.Background(), "missing")
		require.ErrorIs(t, err, ErrReservationNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancel(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(
			"UPDATE reservations SET status = $1, cancellation_reason = $2, "+
				"cancelled_at = NOW(), updated_at = NOW() WHERE id = $3")).
			WithArgs(domain.StatusCancelled, "client request", "res-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Cancel(context.Background(), "res-1", "client request"))
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectExec("UPDATE reservations").
			WithArgs(domain.StatusCancelled, "client request", "missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Cancel(context.Background(), "missing", "client request")
		require.ErrorIs(t, err, ErrReservationNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
