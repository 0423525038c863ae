package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roomlist/infras/otel/mocks"
	"roomlist/infras/postgres"
	"roomlist/internal/domains/roominglist/model"
	"roomlist/internal/domains/roominglist/repository"
	gDto "roomlist/shared/dto"
)

func setupMockDB(t *testing.T) (sqlmock.Sqlmock, repository.RoomingList) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	conn := &postgres.Connection{Read: sqlxDB, Write: sqlxDB}

	return mock, repository.New(conn, mocks.NewOtel())
}

func TestRoomingListRepository_GetAllWithEvent(t *testing.T) {
	columns := []string{
		"rooming_list_id", "event_id", "hotel_id", "rfp_name", "cut_off_date",
		"status", "agreement_type", "created_at", "event_name", "booking_count",
	}

	t.Run("tolerates a missing event on the joined row", func(t *testing.T) {
		mock, repo := setupMockDB(t)

		now := time.Now()
		rows := sqlmock.NewRows(columns).
			AddRow(int64(1), int64(1), int64(101), "ACL-2024", now, "Active", "leisure", now, "Ultra Miami", 3).
			AddRow(int64(2), int64(99), int64(101), "ACL-2024-Staff", now, "Closed", "staff", now, nil, 0)

		mock.ExpectQuery("SELECT rooming_lists.rooming_list_id").WillReturnRows(rows)

		result, err := repo.GetAllWithEvent(context.Background())

		assert.NoError(t, err)
		require.Len(t, result, 2)
		require.NotNil(t, result[0].EventName)
		assert.Equal(t, "Ultra Miami", *result[0].EventName)
		assert.Nil(t, result[1].EventName)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRoomingListRepository_GetByEvent(t *testing.T) {
	columns := []string{
		"rooming_list_id", "event_id", "hotel_id", "rfp_name", "cut_off_date",
		"status", "agreement_type", "created_at",
	}

	t.Run("filters by event with the requested ordering", func(t *testing.T) {
		mock, repo := setupMockDB(t)

		now := time.Now()
		rows := sqlmock.NewRows(columns).
			AddRow(int64(1), int64(1), int64(101), "ACL-2024", now, "Active", "leisure", now)

		mock.ExpectPrepare("SELECT (.+) FROM rooming_lists (.+) ORDER BY cut_off_date ASC").
			ExpectQuery().
			WillReturnRows(rows)

		params := gDto.QueryParams{SortBy: model.FieldCutOffDate, SortDir: gDto.SortDirAsc}

		result, err := repo.GetByEvent(context.Background(), 1, params)

		assert.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, int64(1), result[0].RoomingListID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("pagination adds a limit and offset", func(t *testing.T) {
		mock, repo := setupMockDB(t)

		mock.ExpectPrepare("SELECT (.+) FROM rooming_lists (.+) ORDER BY cut_off_date ASC LIMIT (.+) OFFSET (.+)").
			ExpectQuery().
			WillReturnRows(sqlmock.NewRows(columns))

		params := gDto.QueryParams{Page: 2, Limit: 5, SortBy: model.FieldCutOffDate, SortDir: gDto.SortDirAsc}

		result, err := repo.GetByEvent(context.Background(), 1, params)

		assert.NoError(t, err)
		assert.Empty(t, result)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
