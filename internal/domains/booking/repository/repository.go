package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"roomlist/infras/otel"
	"roomlist/infras/postgres"
	"roomlist/internal/domains/booking/model"
	"roomlist/shared/constant"
	gDto "roomlist/shared/dto"
	"roomlist/shared/logger"
	gRepo "roomlist/shared/repository"

	"github.com/jmoiron/sqlx"
)

const getAllWithEventQuery = `
SELECT bookings.booking_id, bookings.hotel_id, bookings.event_id, bookings.guest_name,
	bookings.guest_phone_number, bookings.check_in_date, bookings.check_out_date,
	bookings.created_at, events.event_name
FROM bookings
LEFT JOIN events ON events.event_id = bookings.event_id
ORDER BY bookings.check_in_date ASC`

type Booking interface {
	InsertReturning(ctx context.Context, model model.Booking) (int64, error)
	InsertBulkTx(ctx context.Context, sqltx *sqlx.Tx, models []model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAllWithEvent(ctx context.Context) ([]model.BookingWithEvent, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) GetAllWithEvent(ctx context.Context) ([]model.BookingWithEvent, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.GetAllWithEvent")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, getAllWithEventQuery)

	var models []model.BookingWithEvent

	err := repo.db.Read.SelectContext(ctx, &models, getAllWithEventQuery)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return models, fmt.Errorf("failed to get all data (%s): %w", model.EntityName, err)
	}

	return models, nil
}
