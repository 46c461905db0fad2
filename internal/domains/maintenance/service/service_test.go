package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotelier/config"
	"hotelier/infras/otel/mocks"
	maintenanceMocks "hotelier/internal/domains/maintenance/mocks"
	"hotelier/internal/domains/maintenance/service"
	cacheMocks "hotelier/shared/cache/mocks"
	"hotelier/shared/constant"
)

func TestMaintenanceService_ResetDatabase(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMigrator := maintenanceMocks.NewMockMigrator(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockMigrator, cfg, mockCache, mockOtel)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful reset",
			setupMock: func() {
				mockMigrator.EXPECT().Drop(cfg).Return(nil)
				mockMigrator.EXPECT().Up(cfg).Return(nil)
				mockCache.EXPECT().Clear(gomock.Any(), constant.Asterix).Return(nil)
			},
			wantErr: false,
		},
		{
			name: "drop error",
			setupMock: func() {
				mockMigrator.EXPECT().Drop(cfg).Return(errors.New("drop failed"))
			},
			wantErr: true,
		},
		{
			name: "recreate error",
			setupMock: func() {
				mockMigrator.EXPECT().Drop(cfg).Return(nil)
				mockMigrator.EXPECT().Up(cfg).Return(errors.New("migration failed"))
			},
			wantErr: true,
		},
		{
			name: "cache flush error is not fatal",
			setupMock: func() {
				mockMigrator.EXPECT().Drop(cfg).Return(nil)
				mockMigrator.EXPECT().Up(cfg).Return(nil)
				mockCache.EXPECT().Clear(gomock.Any(), constant.Asterix).Return(errors.New("redis down"))
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.ResetDatabase(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
