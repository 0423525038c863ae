package service

import (
	"context"
	"fmt"

	"roomlist/config"
	"roomlist/infras/otel"
	"roomlist/internal/domains/event/model"
	"roomlist/internal/domains/event/model/dto"
	"roomlist/internal/domains/event/repository"
	"roomlist/shared"
	"roomlist/shared/constant"
	"roomlist/shared/failure"

	"github.com/rs/zerolog/log"
)

type Event interface {
	GetAll(ctx context.Context) ([]dto.EventWithCountsResponse, error)
	Get(ctx context.Context, id int64) (dto.EventResponse, error)
	Create(ctx context.Context, req dto.CreateEventRequest) (dto.EventResponse, error)
	Update(ctx context.Context, req dto.UpdateEventRequest, id int64) (dto.EventResponse, error)
	Delete(ctx context.Context, id int64) (dto.EventResponse, error)
}

type serviceImpl struct {
	repo repository.Event
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Event, cfg *config.Config, otel otel.Otel) Event {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []dto.EventWithCountsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	models, err := s.repo.GetAllWithCounts(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get events")

		return res, fmt.Errorf("failed to get events: %w", err)
	}

	res = make([]dto.EventWithCountsResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.EventResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	event, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get event")

		return res, fmt.Errorf("failed to get event: %w", err)
	}

	if event.EventID == 0 {
		return res, failure.NotFound("Event not found") //nolint:wrapcheck
	}

	res.FromModel(event)

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateEventRequest) (res dto.EventResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	event := req.ToModel()

	id, err := s.repo.InsertReturning(ctx, event)
	if err != nil {
		log.Error().Err(err).Msg("failed to create event")

		return res, fmt.Errorf("failed to create event: %w", err)
	}

	event.EventID = id
	res.FromModel(event)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateEventRequest, id int64) (res dto.EventResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	updatedFields := shared.TransformFields(req)
	if len(updatedFields) == 0 {
		return res, failure.BadRequestFromString("update request cannot be empty") //nolint:wrapcheck
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if event exists")

		return res, fmt.Errorf("failed to check if event exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound("Event not found") //nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update event")

		return res, fmt.Errorf("failed to update event: %w", err)
	}

	event, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get updated event")

		return res, fmt.Errorf("failed to get updated event: %w", err)
	}

	res.FromModel(event)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (res dto.EventResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	event, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get event")

		return res, fmt.Errorf("failed to get event: %w", err)
	}

	if event.EventID == 0 {
		return res, failure.NotFound("Event not found") //nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete event")

		return res, fmt.Errorf("failed to delete event: %w", err)
	}

	res.FromModel(event)

	return res, nil
}
