package profile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/drivahub/drivahub/internal/domain"
	"github.com/drivahub/drivahub/internal/dto"
	"github.com/drivahub/drivahub/internal/service/profileservice"
	"github.com/drivahub/drivahub/pkg/auth"
)

func NewMock(t *testing.T) (*ProfileHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func TestGetProfileHandler(t *testing.T) {
	handler, service := NewMock(t)
	ctx := context.WithValue(context.Background(), auth.UserIDKey, 1)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedBody  *dto.ProfileResponseDTO
		expectedError string
	}{
		{
			name: "Profile returned",
			prepareMock: func() {
				service.EXPECT().GetProfile(ctx, 1).Return(&domain.Profile{DriverName: "Sam Carter", Phone: "555-0100"}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &dto.ProfileResponseDTO{DriverName: "Sam Carter", Phone: "555-0100"},
		},
		{
			name: "User not found",
			prepareMock: func() {
				service.EXPECT().GetProfile(ctx, 1).Return(nil, domain.ErrUserNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "User not found",
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().GetProfile(ctx, 1).Return(nil, errors.New("database error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodGet, "/api/user/profile", nil).WithContext(ctx)
			w := httptest.NewRecorder()

			handler.GetProfile(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedBody != nil {
				var body dto.ProfileResponseDTO
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, *tt.expectedBody, body)
			}
		})
	}
}

func TestUpdateProfileHandler(t *testing.T) {
	handler, service := NewMock(t)
	ctx := context.WithValue(context.Background(), auth.UserIDKey, 1)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Profile updated",
			body: `{"driver_name":"Sam Carter","company_name":"Carter Freight","phone":"555-0100"}`,
			prepareMock: func() {
				service.EXPECT().
					UpdateProfile(ctx, 1, domain.Profile{DriverName: "Sam Carter", CompanyName: "Carter Freight", Phone: "555-0100"}).
					Return(&domain.Profile{DriverName: "Sam Carter", CompanyName: "Carter Freight", Phone: "555-0100"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid request body",
			body:          `{bad`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Invalid profile",
			body: `{"phone":"555555555555555555555555555555555"}`,
			prepareMock: func() {
				service.EXPECT().UpdateProfile(ctx, 1, gomock.Any()).
					Return(nil, fmt.Errorf("%w: phone is longer than 32 characters", profileservice.ErrInvalidProfile))
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "phone is longer than 32 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPut, "/api/user/profile", bytes.NewBufferString(tt.body)).WithContext(ctx)
			w := httptest.NewRecorder()

			handler.UpdateProfile(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}
