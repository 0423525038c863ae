package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"roomlist/infras/otel"
	"roomlist/infras/postgres"
	bookingRepo "roomlist/internal/domains/booking/repository"
	eventModel "roomlist/internal/domains/event/model"
	"roomlist/internal/domains/importer/model"
	linkRepo "roomlist/internal/domains/link/repository"
	roomingListRepo "roomlist/internal/domains/roominglist/repository"
	"roomlist/shared/constant"
	"roomlist/shared/logger"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// clearStatements empty the import-affected tables children first and
// restart each serial generator at 1.
var clearStatements = []string{
	"DELETE FROM rooming_list_bookings",
	"DELETE FROM rooming_lists",
	"DELETE FROM bookings",
	"DELETE FROM events",
	"ALTER SEQUENCE rooming_list_bookings_id_seq RESTART WITH 1",
	"ALTER SEQUENCE rooming_lists_rooming_list_id_seq RESTART WITH 1",
	"ALTER SEQUENCE bookings_booking_id_seq RESTART WITH 1",
	"ALTER SEQUENCE events_event_id_seq RESTART WITH 1",
}

// advanceStatements position each serial generator one past the highest
// imported identifier so subsequent inserts cannot collide with imported rows.
var advanceStatements = []string{
	"SELECT setval('events_event_id_seq', COALESCE((SELECT MAX(event_id) FROM events), 0) + 1, false)",
	"SELECT setval('bookings_booking_id_seq', COALESCE((SELECT MAX(booking_id) FROM bookings), 0) + 1, false)",
	"SELECT setval('rooming_lists_rooming_list_id_seq', COALESCE((SELECT MAX(rooming_list_id) FROM rooming_lists), 0) + 1, false)",
	"SELECT setval('rooming_list_bookings_id_seq', COALESCE((SELECT MAX(id) FROM rooming_list_bookings), 0) + 1, false)",
}

const insertEventsQuery = `INSERT INTO events (event_id, event_name, description, created_at)
VALUES (:event_id, :event_name, :description, :created_at)
ON CONFLICT (event_id) DO NOTHING`

type Importer interface {
	ReplaceAll(ctx context.Context, data model.ImportData) error
	ClearAll(ctx context.Context) error
}

type repositoryImpl struct {
	db              *postgres.Connection
	bookingRepo     bookingRepo.Booking
	roomingListRepo roomingListRepo.RoomingList
	linkRepo        linkRepo.Link
	otel            otel.Otel
}

func New(db *postgres.Connection, bookingRepo bookingRepo.Booking, roomingListRepo roomingListRepo.RoomingList, linkRepo linkRepo.Link, otel otel.Otel) Importer {
	return &repositoryImpl{
		db:              db,
		bookingRepo:     bookingRepo,
		roomingListRepo: roomingListRepo,
		linkRepo:        linkRepo,
		otel:            otel,
	}
}

// ReplaceAll swaps the entire dataset inside a single transaction: clear,
// reload, reposition sequences. Any failure rolls back to the prior state.
func (repo *repositoryImpl) ReplaceAll(ctx context.Context, data model.ImportData) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".importer.ReplaceAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin import transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("failed to roll back import transaction")
			}
		}
	}()

	if err = repo.clear(ctx, tx); err != nil {
		return err
	}

	if err = repo.insertEvents(ctx, tx, data.Events); err != nil {
		return err
	}

	if err = repo.bookingRepo.InsertBulkTx(ctx, tx, data.Bookings); err != nil {
		return err //nolint:wrapcheck
	}

	if err = repo.roomingListRepo.InsertBulkTx(ctx, tx, data.RoomingLists); err != nil {
		return err //nolint:wrapcheck
	}

	if err = repo.linkRepo.InsertBulkTx(ctx, tx, data.Links); err != nil {
		return err //nolint:wrapcheck
	}

	for _, statement := range advanceStatements {
		if _, err = tx.ExecContext(ctx, statement); err != nil {
			logger.ErrorWithStack(err)

			return fmt.Errorf("failed to advance sequence: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit import transaction: %w", err)
	}

	return nil
}

// ClearAll empties the four import-affected tables and restarts their
// sequences at 1, in a single transaction.
func (repo *repositoryImpl) ClearAll(ctx context.Context) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".importer.ClearAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin clear transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("failed to roll back clear transaction")
			}
		}
	}()

	if err = repo.clear(ctx, tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit clear transaction: %w", err)
	}

	return nil
}

func (repo *repositoryImpl) clear(ctx context.Context, tx *sqlx.Tx) error {
	for _, statement := range clearStatements {
		if _, err := tx.ExecContext(ctx, statement); err != nil {
			logger.ErrorWithStack(err)

			return fmt.Errorf("failed to clear table data: %w", err)
		}
	}

	return nil
}

func (repo *repositoryImpl) insertEvents(ctx context.Context, tx *sqlx.Tx, events []eventModel.Event) error {
	if len(events) == 0 {
		return nil
	}

	if _, err := tx.NamedExecContext(ctx, insertEventsQuery, events); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to bulk insert data (%s): %w", eventModel.EntityName, err)
	}

	return nil
}
