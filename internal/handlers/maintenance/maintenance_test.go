package maintenance_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotelier/config"
	"hotelier/infras/otel/mocks"
	maintenanceMocks "hotelier/internal/domains/maintenance/mocks"
	"hotelier/internal/handlers/maintenance"
	"hotelier/shared/constant"
	"hotelier/transport/http/middleware"
)

func TestMaintenanceHandler_DropDatabase(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name       string
		adminKey   string
		requestKey string
		setupMock  func(mockService *maintenanceMocks.MockMaintenance)
		wantStatus int
		wantBody   string
	}{
		{
			name:       "successful reset with valid key",
			adminKey:   "super-secret",
			requestKey: "super-secret",
			setupMock: func(mockService *maintenanceMocks.MockMaintenance) {
				mockService.EXPECT().ResetDatabase(gomock.Any()).Return(nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   "Database reset successfully",
		},
		{
			name:       "invalid key is rejected",
			adminKey:   "super-secret",
			requestKey: "wrong-key",
			setupMock:  func(mockService *maintenanceMocks.MockMaintenance) {},
			wantStatus: http.StatusForbidden,
			wantBody:   "Invalid API key",
		},
		{
			name:       "missing key is rejected",
			adminKey:   "super-secret",
			requestKey: "",
			setupMock:  func(mockService *maintenanceMocks.MockMaintenance) {},
			wantStatus: http.StatusForbidden,
			wantBody:   "Invalid API key",
		},
		{
			name:       "unset admin key disables the endpoint",
			adminKey:   "",
			requestKey: "anything",
			setupMock:  func(mockService *maintenanceMocks.MockMaintenance) {},
			wantStatus: http.StatusForbidden,
			wantBody:   "Maintenance endpoints are disabled",
		},
		{
			name:       "reset failure surfaces as server error",
			adminKey:   "super-secret",
			requestKey: "super-secret",
			setupMock: func(mockService *maintenanceMocks.MockMaintenance) {
				mockService.EXPECT().
					ResetDatabase(gomock.Any()).
					Return(errors.New("migration failed"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := maintenanceMocks.NewMockMaintenance(ctrl)
			tt.setupMock(mockService)

			cfg := &config.Config{}
			cfg.App.AdminKey = tt.adminKey

			mockOtel := mocks.NewOtel()
			handler := maintenance.New(mockService, middleware.NewAdminMiddleware(mockOtel, cfg), mockOtel)

			router := chi.NewRouter()
			handler.Router(router)

			request := httptest.NewRequest(http.MethodDelete, "/admin/drop-database", nil)
			if tt.requestKey != "" {
				request.Header.Set(constant.RequestHeaderAPIKey, tt.requestKey)
			}

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantStatus, recorder.Code)

			if tt.wantBody != "" {
				assert.Contains(t, recorder.Body.String(), tt.wantBody)
			}
		})
	}
}
