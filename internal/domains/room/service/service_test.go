package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotelier/config"
	"hotelier/infras/otel/mocks"
	roomMocks "hotelier/internal/domains/room/mocks"
	"hotelier/internal/domains/room/model"
	"hotelier/internal/domains/room/model/dto"
	"hotelier/internal/domains/room/service"
	cacheMocks "hotelier/shared/cache/mocks"
	gDto "hotelier/shared/dto"
	gModel "hotelier/shared/model"
	"hotelier/shared/timezone"
)

func boolPtr(b bool) *bool {
	return &b
}

func TestRoomService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	tests := []struct {
		name          string
		req           dto.CreateRoomRequest
		setupMock     func()
		wantErr       bool
		wantAvailable bool
	}{
		{
			name: "successful creation",
			req: dto.CreateRoomRequest{
				RoomType:      "Deluxe",
				PricePerNight: 120.00,
				IsAvailable:   boolPtr(false),
			},
			setupMock: func() {
				mockRepo.EXPECT().
					InsertReturningID(gomock.Any(), gomock.Any()).
					Return(int64(3), nil)
			},
			wantErr:       false,
			wantAvailable: false,
		},
		{
			name: "availability defaults to true",
			req: dto.CreateRoomRequest{
				RoomType:      "Standard",
				PricePerNight: 80.00,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					InsertReturningID(gomock.Any(), gomock.Any()).
					Return(int64(4), nil)
			},
			wantErr:       false,
			wantAvailable: true,
		},
		{
			name: "repository error",
			req: dto.CreateRoomRequest{
				RoomType:      "Suite",
				PricePerNight: 300.00,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					InsertReturningID(gomock.Any(), gomock.Any()).
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
				assert.Equal(t, tt.req.RoomType, result.RoomType)
				assert.Equal(t, tt.wantAvailable, result.IsAvailable)
			}
		})
	}
}

func TestRoomService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	tests := []struct {
		name      string
		filter    gDto.FilterGroup
		setupMock func()
		wantErr   bool
		wantTotal int
	}{
		{
			name:   "successful get all on cache miss",
			filter: gDto.FilterGroup{},
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss")).
					Times(2)

				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				rooms := []model.Room{
					{
						ID:            1,
						RoomType:      "Deluxe",
						PricePerNight: 120.00,
						IsAvailable:   true,
						Metadata: gModel.Metadata{
							CreatedAt:  timezone.Now(),
							ModifiedAt: timezone.Now(),
						},
					},
				}

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(rooms, nil)
			},
			wantErr:   false,
			wantTotal: 1,
		},
		{
			name:   "available rooms filter",
			filter: service.AvailabilityFilter(true),
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss")).
					Times(2)

				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, nil)

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Room{}, nil)
			},
			wantErr: false,
		},
		{
			name:   "count error",
			filter: gDto.FilterGroup{},
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss")).
					Times(2)

				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, errors.New("count error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			params := gDto.QueryParams{Limit: 10, Page: 1}

			result, err := svc.GetAll(context.Background(), params, tt.filter)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				if tt.wantTotal != 0 {
					assert.Equal(t, tt.wantTotal, result.TotalData)
				}
			}
		})
	}
}
