package dashboardservice

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/drivahub/drivahub/internal/domain"
	"github.com/drivahub/drivahub/internal/metrics"
	"github.com/drivahub/drivahub/internal/stats"
)

//go:generate mockgen -source=dashboardservice.go -destination=mock_dashboardservice.go -package=dashboardservice

type StatementRepo interface {
	FindByUserID(ctx context.Context, userID int) ([]domain.Statement, error)
}

type Service struct {
	repo StatementRepo
	now  func() time.Time
}

func New(repo StatementRepo) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// GetStats reads the user's statements and aggregates those inside the period window.
func (s *Service) GetStats(ctx context.Context, userID int, period domain.Period) (*domain.DashboardStats, error) {
	start := time.Now()
	statements, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		metrics.ObserveStats(string(period), metrics.ResultError, time.Since(start))
		zap.L().Error("can't load statements for dashboard", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}

	result := stats.Compute(statements, period, s.now())
	metrics.ObserveStats(string(period), metrics.ResultSuccess, time.Since(start))
	return &result, nil
}
