package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"roomlist/config"
	"roomlist/infras/otel/mocks"
	eventMocks "roomlist/internal/domains/event/mocks"
	"roomlist/internal/domains/event/model"
	"roomlist/internal/domains/event/model/dto"
	"roomlist/internal/domains/event/service"
	"roomlist/shared/failure"
	"roomlist/shared/timezone"
)

func TestEventService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := eventMocks.NewMockEvent(ctrl)
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
				events := []model.EventWithCounts{
					{
						Event: model.Event{
							EventID:   1,
							EventName: "Ultra Miami",
							CreatedAt: timezone.Now(),
						},
						RoomingListCount: 2,
						BookingCount:     5,
					},
				}

				mockRepo.EXPECT().
					GetAllWithCounts(gomock.Any()).
					Return(events, nil)
			},
			wantErr: false,
			wantLen: 1,
		},
		{
			name: "empty result",
			setupMock: func() {
				mockRepo.EXPECT().
					GetAllWithCounts(gomock.Any()).
					Return([]model.EventWithCounts{}, nil)
			},
			wantErr: false,
			wantLen: 0,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockRepo.EXPECT().
					GetAllWithCounts(gomock.Any()).
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

func TestEventService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := eventMocks.NewMockEvent(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mockOtel)

	event := model.Event{
		EventID:   1,
		EventName: "Ultra Miami",
		CreatedAt: timezone.Now(),
	}

	tests := []struct {
		name      string
		id        int64
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful get",
			id:   1,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(event, nil)
			},
			wantErr: false,
		},
		{
			name: "event not found",
			id:   99,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Event{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "repository error",
			id:   1,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Event{}, errors.New("database error"))
			},
			wantErr:  true,
			wantCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Get(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, event.EventID, result.EventID)
				assert.Equal(t, event.EventName, result.EventName)
			}
		})
	}
}

func TestEventService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := eventMocks.NewMockEvent(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mockOtel)

	tests := []struct {
		name      string
		req       dto.CreateEventRequest
		setupMock func()
		wantErr   bool
		wantID    int64
	}{
		{
			name: "successful creation",
			req: dto.CreateEventRequest{
				EventName: "Rolling Loud",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					InsertReturning(gomock.Any(), gomock.Any()).
					Return(int64(7), nil)
			},
			wantErr: false,
			wantID:  7,
		},
		{
			name: "repository error",
			req: dto.CreateEventRequest{
				EventName: "Rolling Loud",
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
				assert.Equal(t, tt.wantID, result.EventID)
				assert.Equal(t, tt.req.EventName, result.EventName)
			}
		})
	}
}

func TestEventService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := eventMocks.NewMockEvent(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mockOtel)

	tests := []struct {
		name      string
		req       dto.UpdateEventRequest
		id        int64
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful update",
			req: dto.UpdateEventRequest{
				EventName: "Updated Event",
			},
			id: 1,
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Event{
						EventID:   1,
						EventName: "Updated Event",
						CreatedAt: timezone.Now(),
					}, nil)
			},
			wantErr: false,
		},
		{
			name:      "empty update request",
			req:       dto.UpdateEventRequest{},
			id:        1,
			setupMock: func() {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name: "event not found",
			req: dto.UpdateEventRequest{
				EventName: "Updated Event",
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
		{
			name: "update error",
			req: dto.UpdateEventRequest{
				EventName: "Updated Event",
			},
			id: 1,
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr:  true,
			wantCode: 500,
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
				assert.Equal(t, tt.req.EventName, result.EventName)
			}
		})
	}
}

func TestEventService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := eventMocks.NewMockEvent(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mockOtel)

	event := model.Event{
		EventID:   1,
		EventName: "Ultra Miami",
		CreatedAt: timezone.Now(),
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
					Return(event, nil)

				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "event not found",
			id:   99,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Event{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "delete error",
			id:   1,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(event, nil)

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

			result, err := svc.Delete(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, event.EventID, result.EventID)
			}
		})
	}
}
