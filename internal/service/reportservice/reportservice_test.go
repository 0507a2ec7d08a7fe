package reportservice

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	gomock "go.uber.org/mock/gomock"

	"github.com/drivahub/drivahub/internal/domain"
	"github.com/drivahub/drivahub/internal/export"
)

func NewMock(t *testing.T) (*Service, *MockProfileRepo, *MockStatementRepo, *MockLoadRepo) {
	ctrl := gomock.NewController(t)
	profiles := NewMockProfileRepo(ctrl)
	statements := NewMockStatementRepo(ctrl)
	loads := NewMockLoadRepo(ctrl)
	service := New(profiles, statements, loads)
	service.now = func() time.Time { return time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC) }
	return service, profiles, statements, loads
}

func TestExport(t *testing.T) {
	service, profiles, statements, loads := NewMock(t)

	expectAll := func() {
		profiles.EXPECT().GetProfile(gomock.Any(), 1).Return(&domain.Profile{DriverName: "Sam Carter"}, nil)
		statements.EXPECT().FindByUserID(gomock.Any(), 1).Return([]domain.Statement{
			{ID: "s-1", Date: "2024-05-08", Amount: 1000, Miles: 400, Type: domain.StatementTypeRegular},
		}, nil)
		loads.EXPECT().FindByUserID(gomock.Any(), 1).Return([]domain.Load{
			{ID: "l-1", Pickup: "Dallas, TX", Dropoff: "Houston, TX", Amount: 600, Date: "2024-05-08"},
		}, nil)
	}

	tests := []struct {
		name                string
		format              string
		prepareMock         func()
		expectedContentType string
		expectedFilename    string
		expectedError       error
	}{
		{
			name:                "PDF report",
			format:              "pdf",
			prepareMock:         expectAll,
			expectedContentType: export.ContentTypePDF,
			expectedFilename:    "drivahub-report-2024-05-10.pdf",
		},
		{
			name:                "XLSX report, format in upper case",
			format:              "XLSX",
			prepareMock:         expectAll,
			expectedContentType: export.ContentTypeXLSX,
			expectedFilename:    "drivahub-report-2024-05-10.xlsx",
		},
		{
			name:          "Unknown format",
			format:        "csv",
			prepareMock:   func() {},
			expectedError: ErrUnsupportedFormat,
		},
		{
			name:   "Store failure",
			format: "pdf",
			prepareMock: func() {
				profiles.EXPECT().GetProfile(gomock.Any(), 1).Return(&domain.Profile{}, nil).AnyTimes()
				statements.EXPECT().FindByUserID(gomock.Any(), 1).Return(nil, assert.AnError)
				loads.EXPECT().FindByUserID(gomock.Any(), 1).Return([]domain.Load{}, nil).AnyTimes()
			},
			expectedError: assert.AnError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			doc, err := service.Export(context.Background(), 1, tt.format)
			if tt.expectedError != nil {
				assert.True(t, errors.Is(err, tt.expectedError))
				assert.Nil(t, doc)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedContentType, doc.ContentType)
			assert.Equal(t, tt.expectedFilename, doc.Filename)
			assert.NotEmpty(t, doc.Body)
		})
	}
}

func TestExport_SummaryPerPeriod(t *testing.T) {
	service, profiles, statements, loads := NewMock(t)

	profiles.EXPECT().GetProfile(gomock.Any(), 1).Return(&domain.Profile{}, nil)
	statements.EXPECT().FindByUserID(gomock.Any(), 1).Return([]domain.Statement{
		{ID: "s-1", Date: "2024-05-08", Amount: 1000, Miles: 400},
		{ID: "s-2", Date: "2024-04-20", Amount: 500, Miles: 100},
	}, nil)
	loads.EXPECT().FindByUserID(gomock.Any(), 1).Return([]domain.Load{}, nil)

	doc, err := service.Export(context.Background(), 1, "xlsx")
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(doc.Body))
	require.NoError(t, err)
	defer f.Close()

	row := func(n int) []string {
		var values []string
		for _, col := range []string{"A", "B", "C", "D", "E", "F", "G"} {
			v, err := f.GetCellValue("summary", fmt.Sprintf("%s%d", col, n))
			require.NoError(t, err)
			values = append(values, v)
		}
		return values
	}
	assert.Equal(t, []string{"Weekly", "1000", "800", "2.5", "10", "400", "0"}, row(7))
	assert.Equal(t, []string{"Monthly", "1500", "1200", "3", "10", "500", "0"}, row(8))
	assert.Equal(t, "Yearly", row(9)[0])
}
