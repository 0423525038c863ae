package service

import (
	"context"
	"errors"
	"fmt"

	"roomlist/config"
	"roomlist/infras/otel"
	bookingModel "roomlist/internal/domains/booking/model"
	bookingDto "roomlist/internal/domains/booking/model/dto"
	bookingRepo "roomlist/internal/domains/booking/repository"
	"roomlist/internal/domains/link/model"
	"roomlist/internal/domains/link/model/dto"
	"roomlist/internal/domains/link/repository"
	roomingListModel "roomlist/internal/domains/roominglist/model"
	roomingListDto "roomlist/internal/domains/roominglist/model/dto"
	roomingListRepo "roomlist/internal/domains/roominglist/repository"
	"roomlist/shared"
	"roomlist/shared/constant"
	gDto "roomlist/shared/dto"
	"roomlist/shared/failure"
	"roomlist/shared/timezone"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

type Link interface {
	Link(ctx context.Context, bookingID, roomingListID int64) (dto.LinkResponse, error)
	Unlink(ctx context.Context, bookingID, roomingListID int64) error
	GetRoomingListsForBooking(ctx context.Context, bookingID int64) ([]roomingListDto.RoomingListResponse, error)
	GetBookingsForRoomingList(ctx context.Context, roomingListID int64) ([]bookingDto.BookingResponse, error)
}

type serviceImpl struct {
	repo            repository.Link
	bookingRepo     bookingRepo.Booking
	roomingListRepo roomingListRepo.RoomingList
	cfg             *config.Config
	otel            otel.Otel
}

func New(repo repository.Link, bookingRepo bookingRepo.Booking, roomingListRepo roomingListRepo.RoomingList, cfg *config.Config, otel otel.Otel) Link {
	return &serviceImpl{
		repo:            repo,
		bookingRepo:     bookingRepo,
		roomingListRepo: roomingListRepo,
		cfg:             cfg,
		otel:            otel,
	}
}

func pairFilter(bookingID, roomingListID int64) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldBookingID,
				Operator: gDto.FilterOperatorEq,
				Value:    bookingID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldRoomingListID,
				Operator: gDto.FilterOperatorEq,
				Value:    roomingListID,
				Table:    model.TableName,
			},
		},
	}
}

func (s *serviceImpl) Link(ctx context.Context, bookingID, roomingListID int64) (res dto.LinkResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Link")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.bookingRepo.Exist(ctx, shared.FilterByID(bookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if booking exists")

		return res, fmt.Errorf("failed to check if booking exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound("Booking not found") //nolint:wrapcheck
	}

	exist, err = s.roomingListRepo.Exist(ctx, shared.FilterByID(roomingListID, roomingListModel.FieldID, roomingListModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if rooming list exists")

		return res, fmt.Errorf("failed to check if rooming list exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound("Rooming list not found") //nolint:wrapcheck
	}

	exist, err = s.repo.Exist(ctx, pairFilter(bookingID, roomingListID))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if link exists")

		return res, fmt.Errorf("failed to check if link exists: %w", err)
	}

	if exist {
		return res, failure.BadRequestFromString("Booking is already linked to this rooming list") //nolint:wrapcheck
	}

	link := model.RoomingListBooking{
		RoomingListID: roomingListID,
		BookingID:     bookingID,
		CreatedAt:     timezone.Now(),
	}

	id, err := s.repo.InsertReturning(ctx, link)
	if err != nil {
		// The existence checks race with concurrent writes, the constraint
		// violations carry the authoritative answer.
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch string(pqErr.Code) {
			case constant.PqErrorCodeUniqueViolation:
				return res, failure.BadRequestFromString("Booking is already linked to this rooming list") //nolint:wrapcheck
			case constant.PqErrorCodeFkViolation:
				return res, failure.NotFound("Booking or rooming list not found") //nolint:wrapcheck
			}
		}

		log.Error().Err(err).Msg("failed to link booking to rooming list")

		return res, fmt.Errorf("failed to link booking to rooming list: %w", err)
	}

	link.ID = id
	res.FromModel(link)

	return res, nil
}

func (s *serviceImpl) Unlink(ctx context.Context, bookingID, roomingListID int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Unlink")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := pairFilter(bookingID, roomingListID)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if link exists")

		return fmt.Errorf("failed to check if link exists: %w", err)
	}

	if !exist {
		return failure.NotFound("Link not found") //nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to unlink booking from rooming list")

		return fmt.Errorf("failed to unlink booking from rooming list: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetRoomingListsForBooking(ctx context.Context, bookingID int64) (res []roomingListDto.RoomingListResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetRoomingListsForBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	models, err := s.repo.GetRoomingListsByBooking(ctx, bookingID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooming lists for booking")

		return res, fmt.Errorf("failed to get rooming lists for booking: %w", err)
	}

	res = make([]roomingListDto.RoomingListResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res, nil
}

func (s *serviceImpl) GetBookingsForRoomingList(ctx context.Context, roomingListID int64) (res []bookingDto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBookingsForRoomingList")
	defer scope.End()
	defer scope.TraceIfError(err)

	models, err := s.repo.GetBookingsByRoomingList(ctx, roomingListID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings for rooming list")

		return res, fmt.Errorf("failed to get bookings for rooming list: %w", err)
	}

	res = make([]bookingDto.BookingResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res, nil
}
