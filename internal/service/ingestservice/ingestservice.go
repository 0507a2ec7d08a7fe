// Package ingestservice turns extraction responses into persisted statements and loads.
package ingestservice

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/drivahub/drivahub/internal/domain"
	"github.com/drivahub/drivahub/internal/events"
	"github.com/drivahub/drivahub/internal/ingest"
	"github.com/drivahub/drivahub/internal/metrics"
	"github.com/drivahub/drivahub/internal/pg"
)

//go:generate mockgen -source=ingestservice.go -destination=mock_ingestservice.go -package=ingestservice

type Extractor interface {
	Extract(ctx context.Context, filename string, content []byte) ([]byte, error)
}

type StatementRepo interface {
	Create(ctx context.Context, userID int, draft domain.StatementDraft) (*domain.Statement, error)
}

type LoadRepo interface {
	Create(ctx context.Context, userID int, draft domain.LoadDraft) (*domain.Load, error)
}

type Service struct {
	extractor     Extractor
	statementRepo StatementRepo
	loadRepo      LoadRepo
	txManager     pg.TXManager
	publisher     events.Publisher
	normalizer    *ingest.Normalizer
	now           func() time.Time
}

func New(
	extractor Extractor,
	statementRepo StatementRepo,
	loadRepo LoadRepo,
	txManager pg.TXManager,
	publisher events.Publisher,
	normalizer *ingest.Normalizer,
) *Service {
	return &Service{
		extractor:     extractor,
		statementRepo: statementRepo,
		loadRepo:      loadRepo,
		txManager:     txManager,
		publisher:     publisher,
		normalizer:    normalizer,
		now:           time.Now,
	}
}

// Ingest sends an uploaded document to the extractor and stores what it returns.
func (s *Service) Ingest(ctx context.Context, userID int, filename string, content []byte) (*domain.Ingestion, error) {
	start := time.Now()
	body, err := s.extractor.Extract(ctx, filename, content)
	if err != nil {
		metrics.ObserveIngest(metrics.ResultExtractError, time.Since(start))
		zap.L().Error("can't extract document", zap.Int("userID", userID), zap.String("file", filename), zap.Error(err))
		return nil, err
	}
	return s.ingest(ctx, userID, body, start)
}

// IngestResponse stores the records found in a raw extraction response.
func (s *Service) IngestResponse(ctx context.Context, userID int, body []byte) (*domain.Ingestion, error) {
	return s.ingest(ctx, userID, body, time.Now())
}

func (s *Service) ingest(ctx context.Context, userID int, body []byte, start time.Time) (*domain.Ingestion, error) {
	doc, err := ingest.Decode(body)
	if err == nil {
		var result *ingest.Result
		result, err = s.normalizer.Normalize(doc)
		if err == nil {
			return s.store(ctx, userID, result, start)
		}
	}
	metrics.ObserveIngest(metrics.ResultParseError, time.Since(start))
	zap.L().Warn("can't read extraction response", zap.Int("userID", userID), zap.Error(err))
	return nil, err
}

// store persists the statement before its loads in one transaction, then announces them.
func (s *Service) store(ctx context.Context, userID int, result *ingest.Result, start time.Time) (*domain.Ingestion, error) {
	var ingestion *domain.Ingestion
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		ingestion = &domain.Ingestion{Loads: make([]domain.Load, 0, len(result.Loads))}
		if result.Statement != nil {
			statement, err := s.statementRepo.Create(ctx, userID, *result.Statement)
			if err != nil {
				return err
			}
			ingestion.Statement = statement
		}
		for _, draft := range result.Loads {
			load, err := s.loadRepo.Create(ctx, userID, draft)
			if err != nil {
				return err
			}
			ingestion.Loads = append(ingestion.Loads, *load)
		}
		return nil
	})
	if err != nil {
		metrics.ObserveIngest(metrics.ResultStoreError, time.Since(start))
		zap.L().Error("can't store ingestion", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}

	s.announce(ctx, userID, ingestion)

	statements := 0
	if ingestion.Statement != nil {
		statements = 1
	}
	metrics.AddRecords("statement", statements)
	metrics.AddRecords("load", len(ingestion.Loads))
	metrics.ObserveIngest(metrics.ResultSuccess, time.Since(start))
	zap.L().Info("ingestion stored",
		zap.Int("userID", userID),
		zap.Int("statements", statements),
		zap.Int("loads", len(ingestion.Loads)),
	)
	return ingestion, nil
}

func (s *Service) announce(ctx context.Context, userID int, ingestion *domain.Ingestion) {
	now := s.now().UTC()
	publish := func(eventType, recordID string) {
		event := events.Event{Type: eventType, UserID: userID, RecordID: recordID, OccurredAt: now}
		if err := s.publisher.Publish(ctx, event); err != nil {
			zap.L().Error("can't publish event", zap.String("type", eventType), zap.Error(err))
		}
	}
	if ingestion.Statement != nil {
		publish(events.StatementCreated, ingestion.Statement.ID)
	}
	for _, load := range ingestion.Loads {
		publish(events.LoadCreated, load.ID)
	}
}
