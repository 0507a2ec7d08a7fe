package statementservice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/drivahub/drivahub/internal/domain"
)

//go:generate mockgen -source=statementservice.go -destination=mock_statementservice.go -package=statementservice

var ErrInvalidStatement = errors.New("invalid statement")

type Repo interface {
	Create(ctx context.Context, userID int, draft domain.StatementDraft) (*domain.Statement, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.Statement, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{repo: repo}
}

func (s *Service) AddStatement(ctx context.Context, userID int, draft domain.StatementDraft) (*domain.Statement, error) {
	draft.Date = strings.TrimSpace(draft.Date)
	if draft.Type == "" {
		draft.Type = domain.StatementTypeRegular
	}
	if err := Validate(draft); err != nil {
		return nil, err
	}

	statement, err := s.repo.Create(ctx, userID, draft)
	if err != nil {
		zap.L().Error("can't add statement", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	zap.L().Info("statement added", zap.Int("userID", userID), zap.String("statementID", statement.ID))
	return statement, nil
}

func (s *Service) GetStatements(ctx context.Context, userID int) ([]domain.Statement, error) {
	statements, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("can't get statements", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	return statements, nil
}

// Validate checks a statement entered by hand.
func Validate(d domain.StatementDraft) error {
	if !domain.IsISODate(d.Date) {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidStatement)
	}
	if d.Amount < 0 || d.Miles < 0 {
		return fmt.Errorf("%w: amount and miles must not be negative", ErrInvalidStatement)
	}
	if d.DeadheadMiles != nil && *d.DeadheadMiles < 0 {
		return fmt.Errorf("%w: deadhead miles must not be negative", ErrInvalidStatement)
	}
	if !d.Type.Valid() {
		return fmt.Errorf("%w: unknown type %q", ErrInvalidStatement, d.Type)
	}
	return nil
}
