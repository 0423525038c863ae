package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"roomlist/infras/otel"
	"roomlist/infras/postgres"
	bookingModel "roomlist/internal/domains/booking/model"
	"roomlist/internal/domains/link/model"
	roomingListModel "roomlist/internal/domains/roominglist/model"
	"roomlist/shared/constant"
	gDto "roomlist/shared/dto"
	"roomlist/shared/logger"
	gRepo "roomlist/shared/repository"

	"github.com/jmoiron/sqlx"
)

const (
	getRoomingListsByBookingQuery = `
SELECT rooming_lists.rooming_list_id, rooming_lists.event_id, rooming_lists.hotel_id,
	rooming_lists.rfp_name, rooming_lists.cut_off_date, rooming_lists.status,
	rooming_lists.agreement_type, rooming_lists.created_at
FROM rooming_lists
JOIN rooming_list_bookings ON rooming_list_bookings.rooming_list_id = rooming_lists.rooming_list_id
WHERE rooming_list_bookings.booking_id = $1
ORDER BY rooming_lists.cut_off_date ASC`

	getBookingsByRoomingListQuery = `
SELECT bookings.booking_id, bookings.hotel_id, bookings.event_id, bookings.guest_name,
	bookings.guest_phone_number, bookings.check_in_date, bookings.check_out_date,
	bookings.created_at
FROM bookings
JOIN rooming_list_bookings ON rooming_list_bookings.booking_id = bookings.booking_id
WHERE rooming_list_bookings.rooming_list_id = $1
ORDER BY bookings.check_in_date ASC`

	insertBulkQuery = `INSERT INTO rooming_list_bookings (rooming_list_id, booking_id, created_at)
VALUES (:rooming_list_id, :booking_id, :created_at)`
)

type Link interface {
	InsertReturning(ctx context.Context, model model.RoomingListBooking) (int64, error)
	InsertBulkTx(ctx context.Context, sqltx *sqlx.Tx, models []model.RoomingListBooking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.RoomingListBooking, error)
	GetRoomingListsByBooking(ctx context.Context, bookingID int64) ([]roomingListModel.RoomingList, error)
	GetBookingsByRoomingList(ctx context.Context, roomingListID int64) ([]bookingModel.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.RoomingListBooking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Link {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.RoomingListBooking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// InsertBulkTx omits the id column so the sequence issues junction identifiers.
func (repo *repositoryImpl) InsertBulkTx(ctx context.Context, sqltx *sqlx.Tx, models []model.RoomingListBooking) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".link.InsertBulkTx")
	defer scope.End()

	if len(models) == 0 {
		return nil
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, insertBulkQuery)

	if _, err := sqltx.NamedExecContext(ctx, insertBulkQuery, models); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to bulk insert data (%s): %w", model.EntityName, err)
	}

	return nil
}

func (repo *repositoryImpl) GetRoomingListsByBooking(ctx context.Context, bookingID int64) ([]roomingListModel.RoomingList, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".link.GetRoomingListsByBooking")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, getRoomingListsByBookingQuery)

	var models []roomingListModel.RoomingList

	err := repo.db.Read.SelectContext(ctx, &models, getRoomingListsByBookingQuery, bookingID)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return models, fmt.Errorf("failed to get rooming lists by booking: %w", err)
	}

	return models, nil
}

func (repo *repositoryImpl) GetBookingsByRoomingList(ctx context.Context, roomingListID int64) ([]bookingModel.Booking, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".link.GetBookingsByRoomingList")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, getBookingsByRoomingListQuery)

	var models []bookingModel.Booking

	err := repo.db.Read.SelectContext(ctx, &models, getBookingsByRoomingListQuery, roomingListID)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return models, fmt.Errorf("failed to get bookings by rooming list: %w", err)
	}

	return models, nil
}
