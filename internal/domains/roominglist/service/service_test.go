package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"roomlist/config"
	"roomlist/infras/otel/mocks"
	roomingListMocks "roomlist/internal/domains/roominglist/mocks"
	"roomlist/internal/domains/roominglist/model"
	"roomlist/internal/domains/roominglist/model/dto"
	"roomlist/internal/domains/roominglist/service"
	gDto "roomlist/shared/dto"
	"roomlist/shared/failure"
	"roomlist/shared/timezone"
)

func TestRoomingListService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomingListMocks.NewMockRoomingList(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mockOtel)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantLen   int
	}{
		{
			name: "successful get all",
			setupMock: func() {
				eventName := "Ultra Miami"
				roomingLists := []model.RoomingListWithEvent{
					{
						RoomingList: model.RoomingList{
							RoomingListID: 1,
							EventID:       1,
							HotelID:       101,
							RFPName:       "ACL-2024",
							CutOffDate:    timezone.Now(),
							Status:        model.StatusActive,
							AgreementType: model.AgreementLeisure,
							CreatedAt:     timezone.Now(),
						},
						EventName:    &eventName,
						BookingCount: 3,
					},
				}

				mockRepo.EXPECT().
					GetAllWithEvent(gomock.Any()).
					Return(roomingLists, nil)
			},
			wantErr: false,
			wantLen: 1,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockRepo.EXPECT().
					GetAllWithEvent(gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.GetAll(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, result, tt.wantLen)
			}
		})
	}
}

func TestRoomingListService_GetByEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomingListMocks.NewMockRoomingList(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mockOtel)

	defaultParams := gDto.QueryParams{SortBy: model.FieldCutOffDate, SortDir: gDto.SortDirAsc}

	tests := []struct {
		name      string
		eventID   int64
		params    gDto.QueryParams
		setupMock func()
		wantErr   bool
		wantLen   int
	}{
		{
			name:    "successful get by event",
			eventID: 1,
			setupMock: func() {
				roomingLists := []model.RoomingList{
					{
						RoomingListID: 1,
						EventID:       1,
						HotelID:       101,
						RFPName:       "ACL-2024",
						CutOffDate:    timezone.Now(),
						Status:        model.StatusActive,
						AgreementType: model.AgreementLeisure,
						CreatedAt:     timezone.Now(),
					},
					{
						RoomingListID: 2,
						EventID:       1,
						HotelID:       102,
						RFPName:       "ACL-2024-Staff",
						CutOffDate:    timezone.Now(),
						Status:        model.StatusClosed,
						AgreementType: model.AgreementStaff,
						CreatedAt:     timezone.Now(),
					},
				}

				mockRepo.EXPECT().
					GetByEvent(gomock.Any(), int64(1), defaultParams).
					Return(roomingLists, nil)
			},
			wantErr: false,
			wantLen: 2,
		},
		{
			name:    "unknown event returns empty list",
			eventID: 99,
			setupMock: func() {
				mockRepo.EXPECT().
					GetByEvent(gomock.Any(), int64(99), defaultParams).
					Return([]model.RoomingList{}, nil)
			},
			wantErr: false,
			wantLen: 0,
		},
		{
			name:    "caller pagination and sort pass through",
			eventID: 1,
			params:  gDto.QueryParams{Page: 2, Limit: 5, SortBy: model.FieldCreatedAt, SortDir: gDto.SortDirDesc},
			setupMock: func() {
				mockRepo.EXPECT().
					GetByEvent(gomock.Any(), int64(1), gDto.QueryParams{Page: 2, Limit: 5, SortBy: model.FieldCreatedAt, SortDir: gDto.SortDirDesc}).
					Return([]model.RoomingList{}, nil)
			},
			wantErr: false,
			wantLen: 0,
		},
		{
			name:    "unsortable column falls back to cut-off date",
			eventID: 1,
			params:  gDto.QueryParams{SortBy: "guest_name", SortDir: gDto.SortDirAsc},
			setupMock: func() {
				mockRepo.EXPECT().
					GetByEvent(gomock.Any(), int64(1), defaultParams).
					Return([]model.RoomingList{}, nil)
			},
			wantErr: false,
			wantLen: 0,
		},
		{
			name:    "repository error",
			eventID: 1,
			setupMock: func() {
				mockRepo.EXPECT().
					GetByEvent(gomock.Any(), int64(1), defaultParams).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.GetByEvent(context.Background(), tt.eventID, tt.params)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, result, tt.wantLen)
			}
		})
	}
}

func TestRoomingListService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomingListMocks.NewMockRoomingList(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mockOtel)

	tests := []struct {
		name       string
		req        dto.CreateRoomingListRequest
		setupMock  func()
		wantErr    bool
		wantStatus string
	}{
		{
			name: "successful creation",
			req: dto.CreateRoomingListRequest{
				EventID:       1,
				HotelID:       101,
				RFPName:       "ACL-2024",
				CutOffDate:    "2024-08-15",
				Status:        "Closed",
				AgreementType: "leisure",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					InsertReturning(gomock.Any(), gomock.Any()).
					Return(int64(1), nil)
			},
			wantErr:    false,
			wantStatus: "Closed",
		},
		{
			name: "status defaults to Active",
			req: dto.CreateRoomingListRequest{
				EventID:       1,
				HotelID:       101,
				RFPName:       "ACL-2024",
				CutOffDate:    "2024-08-15",
				AgreementType: "staff",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					InsertReturning(gomock.Any(), gomock.Any()).
					Return(int64(2), nil)
			},
			wantErr:    false,
			wantStatus: "Active",
		},
		{
			name: "repository error",
			req: dto.CreateRoomingListRequest{
				EventID:       1,
				HotelID:       101,
				RFPName:       "ACL-2024",
				CutOffDate:    "2024-08-15",
				AgreementType: "artist",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					InsertReturning(gomock.Any(), gomock.Any()).
					Return(int64(0), errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantStatus, result.Status)
				assert.Equal(t, tt.req.CutOffDate, result.CutOffDate)
			}
		})
	}
}

func TestRoomingListService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomingListMocks.NewMockRoomingList(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mockOtel)

	tests := []struct {
		name      string
		req       dto.UpdateRoomingListRequest
		id        int64
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "status only update preserves other fields",
			req: dto.UpdateRoomingListRequest{
				Status: "Closed",
			},
			id: 1,
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), map[string]any{"status": "Closed"}, gomock.Any()).
					Return(nil)

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.RoomingList{
						RoomingListID: 1,
						EventID:       1,
						HotelID:       101,
						RFPName:       "ACL-2024",
						CutOffDate:    timezone.Now(),
						Status:        model.StatusClosed,
						AgreementType: model.AgreementLeisure,
						CreatedAt:     timezone.Now(),
					}, nil)
			},
			wantErr: false,
		},
		{
			name:      "empty update request",
			req:       dto.UpdateRoomingListRequest{},
			id:        1,
			setupMock: func() {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name: "rooming list not found",
			req: dto.UpdateRoomingListRequest{
				Status: "Closed",
			},
			id: 99,
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Update(context.Background(), tt.req, tt.id)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "Closed", result.Status)
				assert.Equal(t, "ACL-2024", result.RFPName)
			}
		})
	}
}

func TestRoomingListService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomingListMocks.NewMockRoomingList(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mockOtel)

	roomingList := model.RoomingList{
		RoomingListID: 1,
		EventID:       1,
		HotelID:       101,
		RFPName:       "ACL-2024",
		CutOffDate:    timezone.Now(),
		Status:        model.StatusActive,
		AgreementType: model.AgreementLeisure,
		CreatedAt:     timezone.Now(),
	}

	tests := []struct {
		name      string
		id        int64
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful delete returns deleted record",
			id:   1,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomingList, nil)

				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "rooming list not found",
			id:   99,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.RoomingList{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Delete(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, roomingList.RoomingListID, result.RoomingListID)
			}
		})
	}
}
