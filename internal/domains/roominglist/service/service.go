package service

import (
	"context"
	"fmt"

	"roomlist/config"
	"roomlist/infras/otel"
	"roomlist/internal/domains/roominglist/model"
	"roomlist/internal/domains/roominglist/model/dto"
	"roomlist/internal/domains/roominglist/repository"
	"roomlist/shared"
	"roomlist/shared/constant"
	gDto "roomlist/shared/dto"
	"roomlist/shared/failure"

	"github.com/rs/zerolog/log"
)

type RoomingList interface {
	GetAll(ctx context.Context) ([]dto.RoomingListWithEventResponse, error)
	Get(ctx context.Context, id int64) (dto.RoomingListResponse, error)
	GetByEvent(ctx context.Context, eventID int64, params gDto.QueryParams) ([]dto.RoomingListResponse, error)
	Create(ctx context.Context, req dto.CreateRoomingListRequest) (dto.RoomingListResponse, error)
	Update(ctx context.Context, req dto.UpdateRoomingListRequest, id int64) (dto.RoomingListResponse, error)
	Delete(ctx context.Context, id int64) (dto.RoomingListResponse, error)
}

type serviceImpl struct {
	repo repository.RoomingList
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.RoomingList, cfg *config.Config, otel otel.Otel) RoomingList {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []dto.RoomingListWithEventResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	models, err := s.repo.GetAllWithEvent(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooming lists")

		return res, fmt.Errorf("failed to get rooming lists: %w", err)
	}

	res = make([]dto.RoomingListWithEventResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.RoomingListResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	roomingList, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooming list")

		return res, fmt.Errorf("failed to get rooming list: %w", err)
	}

	if roomingList.RoomingListID == 0 {
		return res, failure.NotFound("Rooming list not found") //nolint:wrapcheck
	}

	res.FromModel(roomingList)

	return res, nil
}

// sortableColumns are the columns a caller may order event rooming lists by.
var sortableColumns = map[string]bool{
	model.FieldCutOffDate: true,
	model.FieldCreatedAt:  true,
	model.FieldRFPName:    true,
	model.FieldStatus:     true,
}

func (s *serviceImpl) GetByEvent(ctx context.Context, eventID int64, params gDto.QueryParams) (res []dto.RoomingListResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByEvent")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !sortableColumns[params.SortBy] {
		params.SortBy = model.FieldCutOffDate
	}

	if params.SortDir == "" {
		params.SortDir = gDto.SortDirAsc
	}

	models, err := s.repo.GetByEvent(ctx, eventID, params)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooming lists by event")

		return res, fmt.Errorf("failed to get rooming lists by event: %w", err)
	}

	res = make([]dto.RoomingListResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomingListRequest) (res dto.RoomingListResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	roomingList, err := req.ToModel()
	if err != nil {
		return res, failure.BadRequest(err) //nolint:wrapcheck
	}

	id, err := s.repo.InsertReturning(ctx, roomingList)
	if err != nil {
		log.Error().Err(err).Msg("failed to create rooming list")

		return res, fmt.Errorf("failed to create rooming list: %w", err)
	}

	roomingList.RoomingListID = id
	res.FromModel(roomingList)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateRoomingListRequest, id int64) (res dto.RoomingListResponse, err error) {
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
		log.Error().Err(err).Msg("failed to check if rooming list exists")

		return res, fmt.Errorf("failed to check if rooming list exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound("Rooming list not found") //nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update rooming list")

		return res, fmt.Errorf("failed to update rooming list: %w", err)
	}

	roomingList, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get updated rooming list")

		return res, fmt.Errorf("failed to get updated rooming list: %w", err)
	}

	res.FromModel(roomingList)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (res dto.RoomingListResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	roomingList, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooming list")

		return res, fmt.Errorf("failed to get rooming list: %w", err)
	}

	if roomingList.RoomingListID == 0 {
		return res, failure.NotFound("Rooming list not found") //nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete rooming list")

		return res, fmt.Errorf("failed to delete rooming list: %w", err)
	}

	res.FromModel(roomingList)

	return res, nil
}
