package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/drivahub/drivahub/internal/domain"
	"github.com/drivahub/drivahub/internal/dto"
	"github.com/drivahub/drivahub/pkg/auth"
)

func NewMock(t *testing.T) (*DashboardHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func TestGetStatsHandler(t *testing.T) {
	handler, service := NewMock(t)
	ctx := context.WithValue(context.Background(), auth.UserIDKey, 1)
	stats := &domain.DashboardStats{
		TotalEarnings: 1000,
		NetIncome:     800,
		RPM:           2.5,
		RPMChange:     10,
		TotalMiles:    400,
		DeadheadMiles: 50,
	}

	tests := []struct {
		name           string
		url            string
		prepareMock    func()
		expectedCode   int
		expectedPeriod string
	}{
		{
			name: "Default period",
			url:  "/api/user/dashboard",
			prepareMock: func() {
				service.EXPECT().GetStats(ctx, 1, domain.PeriodWeekly).Return(stats, nil)
			},
			expectedCode:   http.StatusOK,
			expectedPeriod: "Weekly",
		},
		{
			name: "Period in any case",
			url:  "/api/user/dashboard?period=yearly",
			prepareMock: func() {
				service.EXPECT().GetStats(ctx, 1, domain.PeriodYearly).Return(stats, nil)
			},
			expectedCode:   http.StatusOK,
			expectedPeriod: "Yearly",
		},
		{
			name:         "Invalid period",
			url:          "/api/user/dashboard?period=Daily",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Internal server error",
			url:  "/api/user/dashboard?period=Monthly",
			prepareMock: func() {
				service.EXPECT().GetStats(ctx, 1, domain.PeriodMonthly).Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodGet, tt.url, nil).WithContext(ctx)
			w := httptest.NewRecorder()

			handler.GetStats(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.DashboardResponseDTO
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, tt.expectedPeriod, body.Period)
				assert.Equal(t, 800.0, body.NetIncome)
				assert.Equal(t, 2.5, body.RPM)
				assert.Equal(t, 10.0, body.RPMChange)
			}
		})
	}
}
