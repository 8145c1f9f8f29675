package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/finance-tracker-api/internal/domain/entity"
	"github.com/oksasatya/finance-tracker-api/internal/domain/repository"
)

const uniqueViolation = "23505"

const userColumns = `id, email, password_hash, name, is_active, refresh_tokens, version, created_at, updated_at`

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	tokens, err := encodeTokens(u.RefreshTokens)
	if err != nil {
		return err
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (id, email, password_hash, name, is_active, refresh_tokens, version)
		VALUES ($1, $2, $3, $4, $5, $6, 1)
		RETURNING version, created_at, updated_at
	`, u.ID, u.Email, u.PasswordHash, u.Name, u.IsActive, tokens)

	if err := row.Scan(&u.Version, &u.CreatedAt, &u.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return repository.ErrEmailTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (r *UserRepository) findOne(ctx context.Context, query string, arg string) (*entity.User, error) {
	u := &entity.User{}
	var tokens []byte

	row := r.pool.QueryRow(ctx, query, arg)
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.IsActive,
		&tokens, &u.Version, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		// ids are UUID columns; a malformed id simply matches nobody
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "22P02" {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("select user: %w", err)
	}

	if err := json.Unmarshal(tokens, &u.RefreshTokens); err != nil {
		return nil, fmt.Errorf("decode refresh tokens: %w", err)
	}
	if u.RefreshTokens == nil {
		u.RefreshTokens = []entity.RefreshToken{}
	}
	return u, nil
}

func (r *UserRepository) Save(ctx context.Context, u *entity.User) error {
	tokens, err := encodeTokens(u.RefreshTokens)
	if err != nil {
		return err
	}

	row := r.pool.QueryRow(ctx, `
		UPDATE users
		SET email = $1, password_hash = $2, name = $3, is_active = $4,
		    refresh_tokens = $5, version = version + 1, updated_at = now()
		WHERE id = $6 AND version = $7
		RETURNING version, updated_at
	`, u.Email, u.PasswordHash, u.Name, u.IsActive, tokens, u.ID, u.Version)

	if err := row.Scan(&u.Version, &u.UpdatedAt); err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
				return repository.ErrEmailTaken
			}
			return fmt.Errorf("update user: %w", err)
		}
		var exists bool
		if err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, u.ID).Scan(&exists); err != nil {
			return fmt.Errorf("check user: %w", err)
		}
		if !exists {
			return repository.ErrNotFound
		}
		return repository.ErrVersionConflict
	}
	return nil
}

func (r *UserRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func encodeTokens(tokens []entity.RefreshToken) ([]byte, error) {
	if tokens == nil {
		tokens = []entity.RefreshToken{}
	}
	b, err := json.Marshal(tokens)
	if err != nil {
		return nil, fmt.Errorf("encode refresh tokens: %w", err)
	}
	return b, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
