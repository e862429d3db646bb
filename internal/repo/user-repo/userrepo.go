package userrepo

import (
	"context"

	"github.com/aidchain/aidchain/internal/domain"
	"github.com/aidchain/aidchain/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	var account domain.Account
	err := repo.db.QueryRow(ctx, "SELECT id, email, name, role, password_hash FROM accounts WHERE email = $1", email).
		Scan(&account.ID, &account.Email, &account.Name, &account.Role, &account.PasswordHash)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find account", zap.Error(err))
		return nil, err
	}
	return &account, nil
}

func (repo *Repository) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	query := `
		INSERT INTO accounts (email, name, role, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := repo.db.QueryRow(ctx, query, account.Email, account.Name, account.Role, account.PasswordHash).Scan(&account.ID)
	if err != nil {
		zap.L().Error("can't save account", zap.Error(err))
		return nil, err
	}
	return account, nil
}
