package reportservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/drivahub/drivahub/internal/domain"
	"github.com/drivahub/drivahub/internal/export"
	"github.com/drivahub/drivahub/internal/metrics"
	"github.com/drivahub/drivahub/internal/stats"
)

//go:generate mockgen -source=reportservice.go -destination=mock_reportservice.go -package=reportservice

var ErrUnsupportedFormat = errors.New("unsupported report format, use pdf or xlsx")

var summaryPeriods = []domain.Period{domain.PeriodWeekly, domain.PeriodMonthly, domain.PeriodYearly}

type ProfileRepo interface {
	GetProfile(ctx context.Context, userID int) (*domain.Profile, error)
}

type StatementRepo interface {
	FindByUserID(ctx context.Context, userID int) ([]domain.Statement, error)
}

type LoadRepo interface {
	FindByUserID(ctx context.Context, userID int) ([]domain.Load, error)
}

type Document struct {
	ContentType string
	Filename    string
	Body        []byte
}

type renderer struct {
	contentType string
	build       func(export.Report) ([]byte, error)
}

var renderers = map[string]renderer{
	export.FormatPDF:  {contentType: export.ContentTypePDF, build: export.BuildPDF},
	export.FormatXLSX: {contentType: export.ContentTypeXLSX, build: export.BuildXLSX},
}

type Service struct {
	profileRepo   ProfileRepo
	statementRepo StatementRepo
	loadRepo      LoadRepo
	now           func() time.Time
}

func New(profileRepo ProfileRepo, statementRepo StatementRepo, loadRepo LoadRepo) *Service {
	return &Service{
		profileRepo:   profileRepo,
		statementRepo: statementRepo,
		loadRepo:      loadRepo,
		now:           time.Now,
	}
}

// Export renders every statement and load of the user, with a summary per dashboard period.
func (s *Service) Export(ctx context.Context, userID int, format string) (*Document, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	r, ok := renderers[format]
	if !ok {
		return nil, ErrUnsupportedFormat
	}

	start := time.Now()
	report, err := s.collect(ctx, userID)
	if err != nil {
		metrics.ObserveExport(format, metrics.ResultError, time.Since(start))
		zap.L().Error("can't collect report data", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}

	body, err := r.build(*report)
	if err != nil {
		metrics.ObserveExport(format, metrics.ResultError, time.Since(start))
		zap.L().Error("can't render report", zap.String("format", format), zap.Error(err))
		return nil, fmt.Errorf("render %s report: %w", format, err)
	}

	metrics.ObserveExport(format, metrics.ResultSuccess, time.Since(start))
	return &Document{
		ContentType: r.contentType,
		Filename:    fmt.Sprintf("drivahub-report-%s.%s", report.GeneratedAt.Format(domain.DateLayout), format),
		Body:        body,
	}, nil
}

func (s *Service) collect(ctx context.Context, userID int) (*export.Report, error) {
	now := s.now().UTC()
	report := &export.Report{GeneratedAt: now}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		profile, err := s.profileRepo.GetProfile(ctx, userID)
		if err != nil {
			return fmt.Errorf("profile: %w", err)
		}
		report.Profile = *profile
		return nil
	})
	g.Go(func() error {
		statements, err := s.statementRepo.FindByUserID(ctx, userID)
		if err != nil {
			return fmt.Errorf("statements: %w", err)
		}
		report.Statements = statements
		return nil
	})
	g.Go(func() error {
		loads, err := s.loadRepo.FindByUserID(ctx, userID)
		if err != nil {
			return fmt.Errorf("loads: %w", err)
		}
		report.Loads = loads
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, p := range summaryPeriods {
		report.Summaries = append(report.Summaries, export.Summary{
			Period: p,
			Stats:  stats.Compute(report.Statements, p, now),
		})
	}
	return report, nil
}
