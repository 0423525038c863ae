package service_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"roomlist/config"
	"roomlist/infras/otel/mocks"
	bookingMocks "roomlist/internal/domains/booking/mocks"
	eventMocks "roomlist/internal/domains/event/mocks"
	importerMocks "roomlist/internal/domains/importer/mocks"
	"roomlist/internal/domains/importer/model"
	"roomlist/internal/domains/importer/service"
	linkMocks "roomlist/internal/domains/link/mocks"
	roomingListMocks "roomlist/internal/domains/roominglist/mocks"
)

const (
	validBookings = `[
		{"bookingId": 1, "hotelId": 101, "eventId": 10, "guestName": "Olivia Carter", "checkInDate": "2024-09-02", "checkOutDate": "2024-09-05"},
		{"bookingId": 2, "hotelId": 101, "eventId": 10, "guestName": "Liam Nguyen", "checkInDate": "2024-09-02", "checkOutDate": "2024-09-06"},
		{"bookingId": 3, "hotelId": 102, "eventId": 20, "guestName": "Sophia Martinez", "checkInDate": "2024-10-01", "checkOutDate": "2024-10-03"}
	]`

	validRoomingLists = `[
		{"roomingListId": 100, "eventId": 10, "hotelId": 101, "rfpName": "ACL-2024", "cutOffDate": "2024-08-15", "agreement_type": "leisure"}
	]`

	validLinks = `[
		{"roomingListId": 100, "bookingId": 1}
	]`
)

func writeDataFiles(t *testing.T, bookings, roomingLists, links string) *config.Config {
	t.Helper()

	dir := t.TempDir()

	cfg := &config.Config{}
	cfg.Import.BookingsFile = filepath.Join(dir, "bookings.json")
	cfg.Import.RoomingListsFile = filepath.Join(dir, "rooming-lists.json")
	cfg.Import.RoomingListBookingsFile = filepath.Join(dir, "rooming-list-bookings.json")

	if bookings != "" {
		require.NoError(t, os.WriteFile(cfg.Import.BookingsFile, []byte(bookings), 0o600))
	}

	if roomingLists != "" {
		require.NoError(t, os.WriteFile(cfg.Import.RoomingListsFile, []byte(roomingLists), 0o600))
	}

	if links != "" {
		require.NoError(t, os.WriteFile(cfg.Import.RoomingListBookingsFile, []byte(links), 0o600))
	}

	return cfg
}

func newService(t *testing.T, cfg *config.Config) (service.Importer, *importerMocks.MockImporter) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := importerMocks.NewMockImporter(ctrl)
	mockEventRepo := eventMocks.NewMockEvent(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomingListRepo := roomingListMocks.NewMockRoomingList(ctrl)
	mockLinkRepo := linkMocks.NewMockLink(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockEventRepo, mockBookingRepo, mockRoomingListRepo, mockLinkRepo, cfg, mockOtel)

	return svc, mockRepo
}

func TestImporterService_Import(t *testing.T) {
	t.Run("successful import derives distinct events", func(t *testing.T) {
		cfg := writeDataFiles(t, validBookings, validRoomingLists, validLinks)
		svc, mockRepo := newService(t, cfg)

		mockRepo.EXPECT().
			ReplaceAll(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, data model.ImportData) error {
				assert.Len(t, data.Events, 2)
				assert.Equal(t, "Event 10", data.Events[0].EventName)
				assert.Equal(t, "Event 20", data.Events[1].EventName)
				assert.Len(t, data.Bookings, 3)
				assert.Len(t, data.RoomingLists, 1)
				assert.Len(t, data.Links, 1)

				return nil
			})

		result, err := svc.Import(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 2, result.EventsDerived)
		assert.Equal(t, 3, result.BookingsInserted)
		assert.Equal(t, 1, result.RoomingListsInserted)
		assert.Equal(t, 1, result.LinksInserted)
	})

	t.Run("missing bookings file fails before any store access", func(t *testing.T) {
		cfg := writeDataFiles(t, "", validRoomingLists, validLinks)
		svc, _ := newService(t, cfg)

		_, err := svc.Import(context.Background())

		assert.Error(t, err)
	})

	t.Run("malformed rooming lists file fails before any store access", func(t *testing.T) {
		cfg := writeDataFiles(t, validBookings, "{not an array", validLinks)
		svc, _ := newService(t, cfg)

		_, err := svc.Import(context.Background())

		assert.Error(t, err)
	})

	t.Run("record missing required field fails before any store access", func(t *testing.T) {
		badRoomingLists := `[{"roomingListId": 100, "eventId": 10, "hotelId": 101, "cutOffDate": "2024-08-15", "agreement_type": "leisure"}]`

		cfg := writeDataFiles(t, validBookings, badRoomingLists, validLinks)
		svc, _ := newService(t, cfg)

		_, err := svc.Import(context.Background())

		assert.Error(t, err)
	})

	t.Run("agreement type outside closed set fails before any store access", func(t *testing.T) {
		badRoomingLists := `[{"roomingListId": 100, "eventId": 10, "hotelId": 101, "rfpName": "X", "cutOffDate": "2024-08-15", "agreement_type": "vip"}]`

		cfg := writeDataFiles(t, validBookings, badRoomingLists, validLinks)
		svc, _ := newService(t, cfg)

		_, err := svc.Import(context.Background())

		assert.Error(t, err)
	})

	t.Run("replace failure surfaces as error", func(t *testing.T) {
		cfg := writeDataFiles(t, validBookings, validRoomingLists, validLinks)
		svc, mockRepo := newService(t, cfg)

		mockRepo.EXPECT().
			ReplaceAll(gomock.Any(), gomock.Any()).
			Return(errors.New("constraint violation"))

		_, err := svc.Import(context.Background())

		assert.Error(t, err)
	})
}

func TestImporterService_Status(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := importerMocks.NewMockImporter(ctrl)
	mockEventRepo := eventMocks.NewMockEvent(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomingListRepo := roomingListMocks.NewMockRoomingList(ctrl)
	mockLinkRepo := linkMocks.NewMockLink(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockEventRepo, mockBookingRepo, mockRoomingListRepo, mockLinkRepo, cfg, mockOtel)

	t.Run("successful status", func(t *testing.T) {
		mockEventRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
		mockBookingRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
		mockRoomingListRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
		mockLinkRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)

		result, err := svc.Status(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 1, result.Events)
		assert.Equal(t, 2, result.Bookings)
		assert.Equal(t, 1, result.RoomingLists)
		assert.Equal(t, 1, result.RoomingListBookings)
	})

	t.Run("count error", func(t *testing.T) {
		mockEventRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("database error"))

		_, err := svc.Status(context.Background())

		assert.Error(t, err)
	})
}

func TestImporterService_Clear(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := importerMocks.NewMockImporter(ctrl)
	mockEventRepo := eventMocks.NewMockEvent(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomingListRepo := roomingListMocks.NewMockRoomingList(ctrl)
	mockLinkRepo := linkMocks.NewMockLink(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockEventRepo, mockBookingRepo, mockRoomingListRepo, mockLinkRepo, cfg, mockOtel)

	t.Run("successful clear", func(t *testing.T) {
		mockRepo.EXPECT().ClearAll(gomock.Any()).Return(nil)

		assert.NoError(t, svc.Clear(context.Background()))
	})

	t.Run("clear error", func(t *testing.T) {
		mockRepo.EXPECT().ClearAll(gomock.Any()).Return(errors.New("database error"))

		assert.Error(t, svc.Clear(context.Background()))
	})
}
