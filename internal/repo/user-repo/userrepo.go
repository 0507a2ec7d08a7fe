package userrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/drivahub/drivahub/internal/domain"
	"github.com/drivahub/drivahub/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	var user domain.User
	err := repo.db.QueryRow(ctx, "SELECT id, login, password_hash FROM users WHERE login = $1", login).Scan(&user.ID, &user.Login, &user.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (login, password_hash)
		VALUES ($1, $2)
		RETURNING id
	`
	err := repo.db.QueryRow(ctx, query, user.Login, user.PasswordHash).Scan(&user.ID)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) GetProfile(ctx context.Context, userID int) (*domain.Profile, error) {
	query := `
		SELECT driver_name, company_name, phone
		FROM users
		WHERE id = $1
	`
	var profile domain.Profile
	err := repo.db.QueryRow(ctx, query, userID).Scan(&profile.DriverName, &profile.CompanyName, &profile.Phone)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		zap.L().Error("can't get profile", zap.Error(err))
		return nil, err
	}
	return &profile, nil
}

func (repo *Repository) UpdateProfile(ctx context.Context, userID int, profile *domain.Profile) error {
	query := `
		UPDATE users
		SET driver_name = $1, company_name = $2, phone = $3
		WHERE id = $4
	`
	tag, err := repo.db.Exec(ctx, query, profile.DriverName, profile.CompanyName, profile.Phone, userID)
	if err != nil {
		zap.L().Error("can't update profile", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
