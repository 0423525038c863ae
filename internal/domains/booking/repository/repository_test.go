package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roomlist/infras/otel/mocks"
	"roomlist/infras/postgres"
	"roomlist/internal/domains/booking/repository"
)

func setupMockDB(t *testing.T) (sqlmock.Sqlmock, repository.Booking) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	conn := &postgres.Connection{Read: sqlxDB, Write: sqlxDB}

	return mock, repository.New(conn, mocks.NewOtel())
}

func TestBookingRepository_GetAllWithEvent(t *testing.T) {
	columns := []string{
		"booking_id", "hotel_id", "event_id", "guest_name",
		"guest_phone_number", "check_in_date", "check_out_date",
		"created_at", "event_name",
	}

	t.Run("tolerates a missing event on the joined row", func(t *testing.T) {
		mock, repo := setupMockDB(t)

		now := time.Now()
		rows := sqlmock.NewRows(columns).
			AddRow(int64(1), int64(101), int64(1), "Olivia Carter", nil, now, now, now, "Ultra Miami").
			AddRow(int64(2), int64(101), int64(99), "Liam Nguyen", nil, now, now, now, nil)

		mock.ExpectQuery("SELECT bookings.booking_id").WillReturnRows(rows)

		result, err := repo.GetAllWithEvent(context.Background())

		assert.NoError(t, err)
		require.Len(t, result, 2)
		require.NotNil(t, result[0].EventName)
		assert.Equal(t, "Ultra Miami", *result[0].EventName)
		assert.Nil(t, result[1].EventName)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error surfaces", func(t *testing.T) {
		mock, repo := setupMockDB(t)

		mock.ExpectQuery("SELECT bookings.booking_id").
			WillReturnError(errors.New("connection lost"))

		_, err := repo.GetAllWithEvent(context.Background())

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
