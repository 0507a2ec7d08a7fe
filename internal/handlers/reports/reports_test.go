package reports

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/drivahub/drivahub/internal/export"
	"github.com/drivahub/drivahub/internal/service/reportservice"
	"github.com/drivahub/drivahub/pkg/auth"
)

func NewMock(t *testing.T) (*ReportHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func TestExportHandler(t *testing.T) {
	handler, service := NewMock(t)
	ctx := context.WithValue(context.Background(), auth.UserIDKey, 1)

	tests := []struct {
		name                string
		url                 string
		prepareMock         func()
		expectedCode        int
		expectedType        string
		expectedDisposition string
	}{
		{
			name: "PDF by default",
			url:  "/api/user/statements/export",
			prepareMock: func() {
				service.EXPECT().Export(ctx, 1, "pdf").Return(&reportservice.Document{
					ContentType: export.ContentTypePDF,
					Filename:    "drivahub-report-2024-05-10.pdf",
					Body:        []byte("%PDF"),
				}, nil)
			},
			expectedCode:        http.StatusOK,
			expectedType:        export.ContentTypePDF,
			expectedDisposition: `attachment; filename="drivahub-report-2024-05-10.pdf"`,
		},
		{
			name: "XLSX",
			url:  "/api/user/statements/export?format=xlsx",
			prepareMock: func() {
				service.EXPECT().Export(ctx, 1, "xlsx").Return(&reportservice.Document{
					ContentType: export.ContentTypeXLSX,
					Filename:    "drivahub-report-2024-05-10.xlsx",
					Body:        []byte("PK"),
				}, nil)
			},
			expectedCode:        http.StatusOK,
			expectedType:        export.ContentTypeXLSX,
			expectedDisposition: `attachment; filename="drivahub-report-2024-05-10.xlsx"`,
		},
		{
			name: "Unsupported format",
			url:  "/api/user/statements/export?format=csv",
			prepareMock: func() {
				service.EXPECT().Export(ctx, 1, "csv").Return(nil, reportservice.ErrUnsupportedFormat)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Internal server error",
			url:  "/api/user/statements/export?format=pdf",
			prepareMock: func() {
				service.EXPECT().Export(ctx, 1, "pdf").Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodGet, tt.url, nil).WithContext(ctx)
			w := httptest.NewRecorder()

			handler.Export(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				assert.Equal(t, tt.expectedType, w.Header().Get("Content-Type"))
				assert.Equal(t, tt.expectedDisposition, w.Header().Get("Content-Disposition"))
				assert.NotEmpty(t, w.Body.Bytes())
			}
		})
	}
}
