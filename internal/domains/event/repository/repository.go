package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"roomlist/infras/otel"
	"roomlist/infras/postgres"
	"roomlist/internal/domains/event/model"
	"roomlist/shared/constant"
	gDto "roomlist/shared/dto"
	"roomlist/shared/logger"
	gRepo "roomlist/shared/repository"

	"github.com/jmoiron/sqlx"
)

const getAllWithCountsQuery = `
SELECT events.event_id, events.event_name, events.description, events.created_at,
	COUNT(DISTINCT rooming_lists.rooming_list_id) AS rooming_list_count,
	COUNT(DISTINCT bookings.booking_id) AS booking_count
FROM events
LEFT JOIN rooming_lists ON rooming_lists.event_id = events.event_id
LEFT JOIN bookings ON bookings.event_id = events.event_id
GROUP BY events.event_id
ORDER BY events.created_at DESC`

type Event interface {
	InsertReturning(ctx context.Context, model model.Event) (int64, error)
	InsertBulkTx(ctx context.Context, sqltx *sqlx.Tx, models []model.Event) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Event, error)
	GetAllWithCounts(ctx context.Context) ([]model.EventWithCounts, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Event]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Event {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Event](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) GetAllWithCounts(ctx context.Context) ([]model.EventWithCounts, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".event.GetAllWithCounts")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, getAllWithCountsQuery)

	var models []model.EventWithCounts

	err := repo.db.Read.SelectContext(ctx, &models, getAllWithCountsQuery)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return models, fmt.Errorf("failed to get all data (%s): %w", model.EntityName, err)
	}

	return models, nil
}
