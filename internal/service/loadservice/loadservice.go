package loadservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/drivahub/drivahub/internal/domain"
)

//go:generate mockgen -source=loadservice.go -destination=mock_loadservice.go -package=loadservice

var ErrInvalidLoad = errors.New("invalid load")

type Repo interface {
	Create(ctx context.Context, userID int, draft domain.LoadDraft) (*domain.Load, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.Load, error)
}

type Service struct {
	repo Repo
	now  func() time.Time
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

func (s *Service) AddLoad(ctx context.Context, userID int, draft domain.LoadDraft) (*domain.Load, error) {
	draft.Pickup = strings.TrimSpace(draft.Pickup)
	draft.Dropoff = strings.TrimSpace(draft.Dropoff)
	draft.Date = strings.TrimSpace(draft.Date)
	if draft.Date == "" {
		draft.Date = s.now().UTC().Format(domain.DateLayout)
	}
	if err := validate(draft); err != nil {
		return nil, err
	}

	load, err := s.repo.Create(ctx, userID, draft)
	if err != nil {
		zap.L().Error("can't add load", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	zap.L().Info("load added", zap.Int("userID", userID), zap.String("loadID", load.ID))
	return load, nil
}

// GetLoads returns the user's loads whose id, pickup or dropoff contains query, ignoring case.
// An empty query returns every load.
func (s *Service) GetLoads(ctx context.Context, userID int, query string) ([]domain.Load, error) {
	loads, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("can't get loads", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return loads, nil
	}
	matched := make([]domain.Load, 0, len(loads))
	for _, l := range loads {
		if strings.Contains(strings.ToLower(l.ID), query) ||
			strings.Contains(strings.ToLower(l.Pickup), query) ||
			strings.Contains(strings.ToLower(l.Dropoff), query) {
			matched = append(matched, l)
		}
	}
	return matched, nil
}

func validate(d domain.LoadDraft) error {
	if d.Pickup == "" || d.Dropoff == "" {
		return fmt.Errorf("%w: pickup and dropoff are required", ErrInvalidLoad)
	}
	if !domain.IsISODate(d.Date) {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidLoad)
	}
	if d.Amount < 0 || d.Miles < 0 {
		return fmt.Errorf("%w: amount and miles must not be negative", ErrInvalidLoad)
	}
	return nil
}
