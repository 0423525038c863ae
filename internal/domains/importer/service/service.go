package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"roomlist/config"
	"roomlist/infras/otel"
	bookingModel "roomlist/internal/domains/booking/model"
	bookingRepo "roomlist/internal/domains/booking/repository"
	eventModel "roomlist/internal/domains/event/model"
	eventRepo "roomlist/internal/domains/event/repository"
	"roomlist/internal/domains/importer/model"
	"roomlist/internal/domains/importer/model/dto"
	"roomlist/internal/domains/importer/repository"
	linkModel "roomlist/internal/domains/link/model"
	linkRepo "roomlist/internal/domains/link/repository"
	roomingListModel "roomlist/internal/domains/roominglist/model"
	roomingListRepo "roomlist/internal/domains/roominglist/repository"
	"roomlist/shared/constant"
	gDto "roomlist/shared/dto"
	"roomlist/shared/timezone"
	"roomlist/shared/validator"

	"github.com/rs/zerolog/log"
)

type Importer interface {
	Import(ctx context.Context) (dto.ImportResult, error)
	Status(ctx context.Context) (dto.DataStatusResponse, error)
	Clear(ctx context.Context) error
}

type serviceImpl struct {
	repo            repository.Importer
	eventRepo       eventRepo.Event
	bookingRepo     bookingRepo.Booking
	roomingListRepo roomingListRepo.RoomingList
	linkRepo        linkRepo.Link
	cfg             *config.Config
	otel            otel.Otel
}

func New(repo repository.Importer, eventRepo eventRepo.Event, bookingRepo bookingRepo.Booking, roomingListRepo roomingListRepo.RoomingList, linkRepo linkRepo.Link, cfg *config.Config, otel otel.Otel) Importer {
	return &serviceImpl{
		repo:            repo,
		eventRepo:       eventRepo,
		bookingRepo:     bookingRepo,
		roomingListRepo: roomingListRepo,
		linkRepo:        linkRepo,
		cfg:             cfg,
		otel:            otel,
	}
}

// Import reads the three source files, validates every record up front, and
// replaces the whole dataset in one transaction. Nothing is mutated unless
// all three files parse cleanly.
func (s *serviceImpl) Import(ctx context.Context) (res dto.ImportResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Import")
	defer scope.End()
	defer scope.TraceIfError(err)

	bookingRecords, err := readRecords[dto.BookingRecord](s.cfg.Import.BookingsFile)
	if err != nil {
		log.Error().Err(err).Str("file", s.cfg.Import.BookingsFile).Msg("failed to load bookings file")

		return res, err
	}

	roomingListRecords, err := readRecords[dto.RoomingListRecord](s.cfg.Import.RoomingListsFile)
	if err != nil {
		log.Error().Err(err).Str("file", s.cfg.Import.RoomingListsFile).Msg("failed to load rooming lists file")

		return res, err
	}

	linkRecords, err := readRecords[dto.LinkRecord](s.cfg.Import.RoomingListBookingsFile)
	if err != nil {
		log.Error().Err(err).Str("file", s.cfg.Import.RoomingListBookingsFile).Msg("failed to load rooming list bookings file")

		return res, err
	}

	data, err := buildImportData(bookingRecords, roomingListRecords, linkRecords)
	if err != nil {
		return res, err
	}

	if err = s.repo.ReplaceAll(ctx, data); err != nil {
		log.Error().Err(err).Msg("failed to replace dataset")

		return res, fmt.Errorf("failed to replace dataset: %w", err)
	}

	log.Info().
		Int("events", len(data.Events)).
		Int("bookings", len(data.Bookings)).
		Int("rooming_lists", len(data.RoomingLists)).
		Int("links", len(data.Links)).
		Msg("dataset imported")

	return dto.ImportResult{
		EventsDerived:        len(data.Events),
		BookingsInserted:     len(data.Bookings),
		RoomingListsInserted: len(data.RoomingLists),
		LinksInserted:        len(data.Links),
	}, nil
}

func (s *serviceImpl) Status(ctx context.Context) (res dto.DataStatusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Status")
	defer scope.End()
	defer scope.TraceIfError(err)

	if res.Events, err = s.eventRepo.Count(ctx, gDto.FilterGroup{}); err != nil {
		log.Error().Err(err).Msg("failed to count events")

		return res, fmt.Errorf("failed to count events: %w", err)
	}

	if res.Bookings, err = s.bookingRepo.Count(ctx, gDto.FilterGroup{}); err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	if res.RoomingLists, err = s.roomingListRepo.Count(ctx, gDto.FilterGroup{}); err != nil {
		log.Error().Err(err).Msg("failed to count rooming lists")

		return res, fmt.Errorf("failed to count rooming lists: %w", err)
	}

	if res.RoomingListBookings, err = s.linkRepo.Count(ctx, gDto.FilterGroup{}); err != nil {
		log.Error().Err(err).Msg("failed to count rooming list bookings")

		return res, fmt.Errorf("failed to count rooming list bookings: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) Clear(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Clear")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.repo.ClearAll(ctx); err != nil {
		log.Error().Err(err).Msg("failed to clear dataset")

		return fmt.Errorf("failed to clear dataset: %w", err)
	}

	log.Info().Msg("dataset cleared")

	return nil
}

func readRecords[T any](path string) ([]T, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("required data file missing or unreadable (%s): %w", path, err)
	}

	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("malformed data file (%s): %w", path, err)
	}

	for i := range records {
		if err := validator.ValidateStruct(&records[i]); err != nil {
			return nil, fmt.Errorf("invalid record in data file (%s): %w", path, err)
		}
	}

	return records, nil
}

// buildImportData converts the validated records into store models and derives
// one placeholder event per distinct event identifier referenced by bookings,
// in first-appearance order.
func buildImportData(bookingRecords []dto.BookingRecord, roomingListRecords []dto.RoomingListRecord, linkRecords []dto.LinkRecord) (model.ImportData, error) {
	data := model.ImportData{
		Bookings:     make([]bookingModel.Booking, 0, len(bookingRecords)),
		RoomingLists: make([]roomingListModel.RoomingList, 0, len(roomingListRecords)),
		Links:        make([]linkModel.RoomingListBooking, 0, len(linkRecords)),
	}

	seen := map[int64]bool{}

	for i := range bookingRecords {
		booking, err := bookingRecords[i].ToModel()
		if err != nil {
			return data, fmt.Errorf("invalid booking record: %w", err)
		}

		data.Bookings = append(data.Bookings, booking)

		if seen[booking.EventID] {
			continue
		}

		seen[booking.EventID] = true
		data.Events = append(data.Events, eventModel.Event{
			EventID:   booking.EventID,
			EventName: fmt.Sprintf("Event %d", booking.EventID),
			CreatedAt: timezone.Now(),
		})
	}

	for i := range roomingListRecords {
		roomingList, err := roomingListRecords[i].ToModel()
		if err != nil {
			return data, fmt.Errorf("invalid rooming list record: %w", err)
		}

		data.RoomingLists = append(data.RoomingLists, roomingList)
	}

	for i := range linkRecords {
		data.Links = append(data.Links, linkRecords[i].ToModel())
	}

	return data, nil
}
