package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"roomlist/config"
	"roomlist/infras/otel/mocks"
	bookingMocks "roomlist/internal/domains/booking/mocks"
	bookingModel "roomlist/internal/domains/booking/model"
	linkMocks "roomlist/internal/domains/link/mocks"
	"roomlist/internal/domains/link/service"
	roomingListMocks "roomlist/internal/domains/roominglist/mocks"
	roomingListModel "roomlist/internal/domains/roominglist/model"
	"roomlist/shared/constant"
	"roomlist/shared/failure"
	"roomlist/shared/timezone"
)

func TestLinkService_Link(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := linkMocks.NewMockLink(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomingListRepo := roomingListMocks.NewMockRoomingList(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockBookingRepo, mockRoomingListRepo, cfg, mockOtel)

	tests := []struct {
		name          string
		bookingID     int64
		roomingListID int64
		setupMock     func()
		wantErr       bool
		wantCode      int
	}{
		{
			name:          "successful link",
			bookingID:     1,
			roomingListID: 100,
			setupMock: func() {
				mockBookingRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRoomingListRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					InsertReturning(gomock.Any(), gomock.Any()).
					Return(int64(5), nil)
			},
			wantErr: false,
		},
		{
			name:          "booking not found",
			bookingID:     99,
			roomingListID: 100,
			setupMock: func() {
				mockBookingRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name:          "rooming list not found",
			bookingID:     1,
			roomingListID: 999,
			setupMock: func() {
				mockBookingRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRoomingListRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name:          "duplicate pair rejected",
			bookingID:     1,
			roomingListID: 100,
			setupMock: func() {
				mockBookingRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRoomingListRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: 400,
		},
		{
			name:          "insert error",
			bookingID:     1,
			roomingListID: 100,
			setupMock: func() {
				mockBookingRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRoomingListRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					InsertReturning(gomock.Any(), gomock.Any()).
					Return(int64(0), errors.New("database error"))
			},
			wantErr:  true,
			wantCode: 500,
		},
		{
			name:          "concurrent duplicate maps unique violation to bad request",
			bookingID:     1,
			roomingListID: 100,
			setupMock: func() {
				mockBookingRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRoomingListRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					InsertReturning(gomock.Any(), gomock.Any()).
					Return(int64(0), &pq.Error{Code: pq.ErrorCode(constant.PqErrorCodeUniqueViolation)})
			},
			wantErr:  true,
			wantCode: 400,
		},
		{
			name:          "concurrent delete maps foreign key violation to not found",
			bookingID:     1,
			roomingListID: 100,
			setupMock: func() {
				mockBookingRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRoomingListRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					InsertReturning(gomock.Any(), gomock.Any()).
					Return(int64(0), &pq.Error{Code: pq.ErrorCode(constant.PqErrorCodeFkViolation)})
			},
			wantErr:  true,
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Link(context.Background(), tt.bookingID, tt.roomingListID)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.bookingID, result.BookingID)
				assert.Equal(t, tt.roomingListID, result.RoomingListID)
			}
		})
	}
}

func TestLinkService_Unlink(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := linkMocks.NewMockLink(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomingListRepo := roomingListMocks.NewMockRoomingList(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockBookingRepo, mockRoomingListRepo, cfg, mockOtel)

	tests := []struct {
		name          string
		bookingID     int64
		roomingListID int64
		setupMock     func()
		wantErr       bool
		wantCode      int
	}{
		{
			name:          "successful unlink",
			bookingID:     1,
			roomingListID: 100,
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name:          "link not found",
			bookingID:     1,
			roomingListID: 999,
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name:          "delete error",
			bookingID:     1,
			roomingListID: 100,
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr:  true,
			wantCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Unlink(context.Background(), tt.bookingID, tt.roomingListID)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLinkService_GetRoomingListsForBooking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := linkMocks.NewMockLink(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomingListRepo := roomingListMocks.NewMockRoomingList(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockBookingRepo, mockRoomingListRepo, cfg, mockOtel)

	tests := []struct {
		name      string
		bookingID int64
		setupMock func()
		wantErr   bool
		wantLen   int
	}{
		{
			name:      "successful get",
			bookingID: 1,
			setupMock: func() {
				roomingLists := []roomingListModel.RoomingList{
					{
						RoomingListID: 100,
						EventID:       1,
						HotelID:       101,
						RFPName:       "ACL-2024",
						CutOffDate:    timezone.Now(),
						Status:        roomingListModel.StatusActive,
						AgreementType: roomingListModel.AgreementLeisure,
						CreatedAt:     timezone.Now(),
					},
				}

				mockRepo.EXPECT().
					GetRoomingListsByBooking(gomock.Any(), int64(1)).
					Return(roomingLists, nil)
			},
			wantErr: false,
			wantLen: 1,
		},
		{
			name:      "unlinked booking returns empty list",
			bookingID: 2,
			setupMock: func() {
				mockRepo.EXPECT().
					GetRoomingListsByBooking(gomock.Any(), int64(2)).
					Return([]roomingListModel.RoomingList{}, nil)
			},
			wantErr: false,
			wantLen: 0,
		},
		{
			name:      "repository error",
			bookingID: 1,
			setupMock: func() {
				mockRepo.EXPECT().
					GetRoomingListsByBooking(gomock.Any(), int64(1)).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.GetRoomingListsForBooking(context.Background(), tt.bookingID)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, result, tt.wantLen)
			}
		})
	}
}

func TestLinkService_GetBookingsForRoomingList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := linkMocks.NewMockLink(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomingListRepo := roomingListMocks.NewMockRoomingList(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockBookingRepo, mockRoomingListRepo, cfg, mockOtel)

	tests := []struct {
		name          string
		roomingListID int64
		setupMock     func()
		wantErr       bool
		wantLen       int
	}{
		{
			name:          "successful get",
			roomingListID: 100,
			setupMock: func() {
				bookings := []bookingModel.Booking{
					{
						BookingID: 1,
						HotelID:   101,
						EventID:   1,
						GuestName: "Olivia Carter",
						CreatedAt: timezone.Now(),
					},
				}

				mockRepo.EXPECT().
					GetBookingsByRoomingList(gomock.Any(), int64(100)).
					Return(bookings, nil)
			},
			wantErr: false,
			wantLen: 1,
		},
		{
			name:          "repository error",
			roomingListID: 100,
			setupMock: func() {
				mockRepo.EXPECT().
					GetBookingsByRoomingList(gomock.Any(), int64(100)).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.GetBookingsForRoomingList(context.Background(), tt.roomingListID)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, result, tt.wantLen)
			}
		})
	}
}
