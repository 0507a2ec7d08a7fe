package uploads

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/drivahub/drivahub/internal/domain"
	"github.com/drivahub/drivahub/internal/dto"
	"github.com/drivahub/drivahub/internal/extractor"
	"github.com/drivahub/drivahub/internal/ingest"
	"github.com/drivahub/drivahub/pkg/auth"
)

func NewMock(t *testing.T) (*UploadHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func multipartBody(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	if field != "" {
		part, err := mw.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return body, mw.FormDataContentType()
}

func TestUploadHandler(t *testing.T) {
	handler, service := NewMock(t)
	ctx := context.WithValue(context.Background(), auth.UserIDKey, 1)
	content := []byte("%PDF-1.4 statement")

	tests := []struct {
		name          string
		field         string
		filename      string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:     "Statement ingested",
			field:    "file",
			filename: "week-19.pdf",
			prepareMock: func() {
				service.EXPECT().Ingest(ctx, 1, "week-19.pdf", content).Return(&domain.Ingestion{
					Statement: &domain.Statement{ID: "s-1", Date: "2024-05-10", Amount: 1000, Type: domain.StatementTypeRegular},
					Loads:     []domain.Load{{ID: "l-1", Pickup: "Dallas, TX", Dropoff: "Houston, TX"}},
				}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Missing file",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "File is required",
		},
		{
			name:          "Unsupported file type",
			field:         "file",
			filename:      "statement.docx",
			prepareMock:   func() {},
			expectedCode:  http.StatusUnsupportedMediaType,
			expectedError: "Only PDF, PNG and JPEG files are supported",
		},
		{
			name:     "Extraction response unreadable",
			field:    "file",
			filename: "photo.JPG",
			prepareMock: func() {
				service.EXPECT().Ingest(ctx, 1, "photo.JPG", content).
					Return(nil, fmt.Errorf("%w: no data found", ingest.ErrParse))
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: retryMessage,
		},
		{
			name:     "Extraction service down",
			field:    "file",
			filename: "week-19.png",
			prepareMock: func() {
				service.EXPECT().Ingest(ctx, 1, "week-19.png", content).
					Return(nil, fmt.Errorf("%w: connection refused", extractor.ErrTransport))
			},
			expectedCode: http.StatusBadGateway,
		},
		{
			name:     "Internal server error",
			field:    "file",
			filename: "week-19.pdf",
			prepareMock: func() {
				service.EXPECT().Ingest(ctx, 1, "week-19.pdf", content).Return(nil, errors.New("database error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			body, contentType := multipartBody(t, tt.field, tt.filename, content)
			r := httptest.NewRequest(http.MethodPost, "/api/user/statements/upload", body).WithContext(ctx)
			r.Header.Set("Content-Type", contentType)
			w := httptest.NewRecorder()

			handler.Upload(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusCreated {
				var resp dto.IngestionResponseDTO
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				require.NotNil(t, resp.Statement)
				assert.Equal(t, "s-1", resp.Statement.ID)
				assert.Len(t, resp.Loads, 1)
			}
		})
	}
}

func TestUploadHandler_TooLarge(t *testing.T) {
	handler, _ := NewMock(t)
	ctx := context.WithValue(context.Background(), auth.UserIDKey, 1)

	body, contentType := multipartBody(t, "file", "big.pdf", bytes.Repeat([]byte("a"), maxUploadSize+1))
	r := httptest.NewRequest(http.MethodPost, "/api/user/statements/upload", body).WithContext(ctx)
	r.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	handler.Upload(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "File is larger than 10 MiB")
}

func TestImportHandler(t *testing.T) {
	handler, service := NewMock(t)
	ctx := context.WithValue(context.Background(), auth.UserIDKey, 1)
	payload := `{"data":"{\"Date\":\"2024-05-10\",\"Amount\":\"$1,000.00\"}"}`

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Response imported",
			prepareMock: func() {
				service.EXPECT().IngestResponse(ctx, 1, []byte(payload)).Return(&domain.Ingestion{
					Statement: &domain.Statement{ID: "s-1", Date: "2024-05-10", Amount: 1000},
					Loads:     []domain.Load{},
				}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Malformed response",
			prepareMock: func() {
				service.EXPECT().IngestResponse(ctx, 1, []byte(payload)).
					Return(nil, fmt.Errorf("%w: %w", ingest.ErrParse, ingest.ErrMalformedEnvelope))
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: retryMessage,
		},
		{
			name: "Statement date unreadable",
			prepareMock: func() {
				service.EXPECT().IngestResponse(ctx, 1, []byte(payload)).
					Return(nil, fmt.Errorf("%w: %q", ingest.ErrInvalidDate, "Week ending 3/8"))
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: retryMessage,
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().IngestResponse(ctx, 1, []byte(payload)).Return(nil, errors.New("tx failed"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/api/user/statements/import", bytes.NewBufferString(payload)).WithContext(ctx)
			w := httptest.NewRecorder()

			handler.Import(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}
