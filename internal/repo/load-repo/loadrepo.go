package loadrepo

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/drivahub/drivahub/internal/domain"
	"github.com/drivahub/drivahub/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) Create(ctx context.Context, userID int, draft domain.LoadDraft) (*domain.Load, error) {
	query := `
        INSERT INTO loads (id, user_id, pickup, dropoff, amount, date, miles)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING created_at
    `
	load := &domain.Load{
		ID:      uuid.NewString(),
		UserID:  userID,
		Pickup:  draft.Pickup,
		Dropoff: draft.Dropoff,
		Amount:  draft.Amount,
		Date:    draft.Date,
		Miles:   draft.Miles,
	}
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		err := r.db.QueryRow(ctx, query,
			load.ID, load.UserID, load.Pickup, load.Dropoff, load.Amount, load.Date, load.Miles,
		).Scan(&load.CreatedAt)
		if err != nil {
			zap.L().Error("can't save load", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return load, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.Load, error) {
	query := `
        SELECT id::text, user_id, pickup, dropoff, amount, date::text, miles, created_at
        FROM loads
        WHERE user_id = $1
        ORDER BY date DESC, created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get loads", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	loads := make([]domain.Load, 0)
	for rows.Next() {
		var l domain.Load
		err := rows.Scan(&l.ID, &l.UserID, &l.Pickup, &l.Dropoff, &l.Amount, &l.Date, &l.Miles, &l.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan load row", zap.Error(err))
			return nil, err
		}
		loads = append(loads, l)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't read load rows", zap.Error(err))
		return nil, err
	}
	return loads, nil
}
