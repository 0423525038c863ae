package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"roomlist/infras/otel"
	"roomlist/infras/postgres"
	"roomlist/internal/domains/roominglist/model"
	"roomlist/shared"
	"roomlist/shared/constant"
	gDto "roomlist/shared/dto"
	"roomlist/shared/logger"
	gRepo "roomlist/shared/repository"

	"github.com/jmoiron/sqlx"
)

const getAllWithEventQuery = `
SELECT rooming_lists.rooming_list_id, rooming_lists.event_id, rooming_lists.hotel_id,
	rooming_lists.rfp_name, rooming_lists.cut_off_date, rooming_lists.status,
	rooming_lists.agreement_type, rooming_lists.created_at, events.event_name,
	COUNT(rooming_list_bookings.id) AS booking_count
FROM rooming_lists
LEFT JOIN events ON events.event_id = rooming_lists.event_id
LEFT JOIN rooming_list_bookings ON rooming_list_bookings.rooming_list_id = rooming_lists.rooming_list_id
GROUP BY rooming_lists.rooming_list_id, events.event_name
ORDER BY rooming_lists.created_at DESC`

type RoomingList interface {
	InsertReturning(ctx context.Context, model model.RoomingList) (int64, error)
	InsertBulkTx(ctx context.Context, sqltx *sqlx.Tx, models []model.RoomingList) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.RoomingList, error)
	GetAllWithEvent(ctx context.Context) ([]model.RoomingListWithEvent, error)
	GetByEvent(ctx context.Context, eventID int64, params gDto.QueryParams) ([]model.RoomingList, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.RoomingList]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) RoomingList {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.RoomingList](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) GetAllWithEvent(ctx context.Context) ([]model.RoomingListWithEvent, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".rooming_list.GetAllWithEvent")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, getAllWithEventQuery)

	var models []model.RoomingListWithEvent

	err := repo.db.Read.SelectContext(ctx, &models, getAllWithEventQuery)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return models, fmt.Errorf("failed to get all data (%s): %w", model.EntityName, err)
	}

	return models, nil
}

func (repo *repositoryImpl) GetByEvent(ctx context.Context, eventID int64, params gDto.QueryParams) ([]model.RoomingList, error) {
	return repo.Repository.GetAll(ctx, params, shared.FilterByID(eventID, model.FieldEventID, model.TableName)) //nolint:wrapcheck
}
