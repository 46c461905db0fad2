package service_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotelier/config"
	"hotelier/infras/otel/mocks"
	customerMocks "hotelier/internal/domains/customer/mocks"
	"hotelier/internal/domains/customer/model"
	"hotelier/internal/domains/customer/model/dto"
	"hotelier/internal/domains/customer/service"
	cacheMocks "hotelier/shared/cache/mocks"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/failure"
	gModel "hotelier/shared/model"
	"hotelier/shared/timezone"
)

func TestCustomerService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := customerMocks.NewMockCustomer(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	tests := []struct {
		name      string
		req       dto.CreateCustomerRequest
		setupMock func()
		wantErr   bool
		wantID    int64
	}{
		{
			name: "successful creation",
			req: dto.CreateCustomerRequest{
				Name:  "John Doe",
				Phone: "555-0100",
				Email: "john@example.com",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					InsertReturningID(gomock.Any(), gomock.Any()).
					Return(int64(42), nil)
			},
			wantErr: false,
			wantID:  42,
		},
		{
			name: "repository error",
			req: dto.CreateCustomerRequest{
				Name:  "John Doe",
				Phone: "555-0100",
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
				assert.Equal(t, tt.wantID, result.ID)
				assert.Equal(t, tt.req.Name, result.Name)
			}
		})
	}
}

func TestCustomerService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := customerMocks.NewMockCustomer(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	tests := []struct {
		name       string
		params     gDto.QueryParams
		setupMock  func()
		wantErr    bool
		wantResult dto.GetCustomersResponse
	}{
		{
			name: "successful get all on cache miss",
			params: gDto.QueryParams{
				Limit: 10,
				Page:  1,
			},
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss")).
					Times(2)

				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				customers := []model.Customer{
					{
						ID:    1,
						Name:  "John Doe",
						Phone: "555-0100",
						Metadata: gModel.Metadata{
							CreatedAt:  timezone.Now(),
							ModifiedAt: timezone.Now(),
						},
					},
				}

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(customers, nil)
			},
			wantErr: false,
			wantResult: dto.GetCustomersResponse{
				TotalData: 1,
				TotalPage: 1,
			},
		},
		{
			name: "cache hit",
			params: gDto.QueryParams{
				Limit: 10,
				Page:  1,
			},
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "count error",
			params: gDto.QueryParams{
				Limit: 10,
				Page:  1,
			},
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
		{
			name: "get all error",
			params: gDto.QueryParams{
				Limit: 10,
				Page:  1,
			},
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss")).
					Times(2)

				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("get all error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.GetAll(context.Background(), tt.params, gDto.FilterGroup{})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				if tt.wantResult.TotalData != 0 {
					assert.Equal(t, tt.wantResult.TotalData, result.TotalData)
					assert.Equal(t, tt.wantResult.TotalPage, result.TotalPage)
				}
			}
		})
	}
}

func TestCustomerService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := customerMocks.NewMockCustomer(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	req := dto.UpdateCustomerRequest{
		Name:  "Jane Doe",
		Phone: "555-0200",
	}

	tests := []struct {
		name      string
		id        int64
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful update",
			id:   1,
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Customer{ID: 1, Name: "Jane Doe", Phone: "555-0200"}, nil)
			},
			wantErr: false,
		},
		{
			name: "customer not found",
			id:   99,
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "update error",
			id:   1,
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Update(context.Background(), req, tt.id)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "Jane Doe", result.Name)
			}
		})
	}
}

func TestCustomerService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := customerMocks.NewMockCustomer(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	tests := []struct {
		name      string
		id        int64
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful delete",
			id:   1,
			setupMock: func() {
				mockRepo.EXPECT().
					DeleteGuarded(gomock.Any(), int64(1)).
					Return(model.DeleteOutcomeDeleted, nil)
			},
			wantErr: false,
		},
		{
			name: "customer has bookings",
			id:   2,
			setupMock: func() {
				mockRepo.EXPECT().
					DeleteGuarded(gomock.Any(), int64(2)).
					Return(model.DeleteOutcomeHasBookings, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "customer not found",
			id:   99,
			setupMock: func() {
				mockRepo.EXPECT().
					DeleteGuarded(gomock.Any(), int64(99)).
					Return(model.DeleteOutcomeNotFound, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "booking committed during delete trips the foreign key",
			id:   3,
			setupMock: func() {
				fkErr := fmt.Errorf("failed to delete data (customer): %w",
					&pq.Error{Code: pq.ErrorCode(constant.PqErrorCodeFkViolation)})

				mockRepo.EXPECT().
					DeleteGuarded(gomock.Any(), int64(3)).
					Return(model.DeleteOutcome(0), fkErr)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "repository error",
			id:   1,
			setupMock: func() {
				mockRepo.EXPECT().
					DeleteGuarded(gomock.Any(), int64(1)).
					Return(model.DeleteOutcome(0), errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Delete(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
