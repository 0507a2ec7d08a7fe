package profileservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/drivahub/drivahub/internal/domain"
)

//go:generate mockgen -source=profileservice.go -destination=mock_profileservice.go -package=profileservice

const (
	maxPhoneLen = 32
	maxNameLen  = 200
)

var ErrInvalidProfile = errors.New("invalid profile")

type Repo interface {
	GetProfile(ctx context.Context, userID int) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, userID int, profile *domain.Profile) error
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetProfile(ctx context.Context, userID int) (*domain.Profile, error) {
	profile, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		zap.L().Error("can't get profile", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	return profile, nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID int, profile domain.Profile) (*domain.Profile, error) {
	profile = domain.Profile{
		DriverName:  strings.TrimSpace(profile.DriverName),
		CompanyName: strings.TrimSpace(profile.CompanyName),
		Phone:       strings.TrimSpace(profile.Phone),
	}
	if err := validate(profile); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateProfile(ctx, userID, &profile); err != nil {
		zap.L().Error("can't update profile", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	zap.L().Info("profile updated", zap.Int("userID", userID))
	return &profile, nil
}

func validate(p domain.Profile) error {
	if utf8.RuneCountInString(p.Phone) > maxPhoneLen {
		return fmt.Errorf("%w: phone is longer than %d characters", ErrInvalidProfile, maxPhoneLen)
	}
	if utf8.RuneCountInString(p.DriverName) > maxNameLen || utf8.RuneCountInString(p.CompanyName) > maxNameLen {
		return fmt.Errorf("%w: name is longer than %d characters", ErrInvalidProfile, maxNameLen)
	}
	return nil
}
