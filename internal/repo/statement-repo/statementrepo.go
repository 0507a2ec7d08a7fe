package statementrepo

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

func (r *Repository) Create(ctx context.Context, userID int, draft domain.StatementDraft) (*domain.Statement, error) {
	query := `
        INSERT INTO statements (id, user_id, date, amount, miles, deadhead_miles, type)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING created_at
    `
	statement := &domain.Statement{
		ID:            uuid.NewString(),
		UserID:        userID,
		Date:          draft.Date,
		Amount:        draft.Amount,
		Miles:         draft.Miles,
		DeadheadMiles: draft.DeadheadMiles,
		Type:          draft.Type,
	}
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		err := r.db.QueryRow(ctx, query,
			statement.ID, statement.UserID, statement.Date, statement.Amount,
			statement.Miles, statement.DeadheadMiles, statement.Type,
		).Scan(&statement.CreatedAt)
		if err != nil {
			zap.L().Error("can't save statement", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return statement, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.Statement, error) {
	query := `
        SELECT id::text, user_id, date::text, amount, miles, deadhead_miles, type, created_at
        FROM statements
        WHERE user_id = $1
        ORDER BY date DESC, created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get statements", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	statements := make([]domain.Statement, 0)
	for rows.Next() {
		var s domain.Statement
		err := rows.Scan(&s.ID, &s.UserID, &s.Date, &s.Amount, &s.Miles, &s.DeadheadMiles, &s.Type, &s.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan statement row", zap.Error(err))
			return nil, err
		}
		statements = append(statements, s)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't read statement rows", zap.Error(err))
		return nil, err
	}
	return statements, nil
}
