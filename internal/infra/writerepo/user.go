package writerepo

import (
	"context"
	"errors"

	"leftoversaver/internal/domain/user"
	"leftoversaver/internal/infra"
	"leftoversaver/internal/infra/db"
	"leftoversaver/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgErrCodeUniqueViolation = "23505"

const createUserSQL = `
INSERT INTO users (id, email, password_hash, role, display_name, photo_url)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id
`

const updateUserLastLoginSQL = `
UPDATE users SET last_login = now(), updated_at = now() WHERE id = $1
`

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(dbtx db.DBTX) *UserRepository {
	return &UserRepository{db: dbtx}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, createUserSQL,
		pgconv.UUIDToPgtype(u.ID()),
		u.Email().Value(),
		u.PasswordHash(),
		u.Role().String(),
		u.DisplayName(),
		pgconv.StringPtrToPgtype(u.PhotoURL()),
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation {
			return uuid.Nil, infra.WrapRepoErr("email already registered", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}

	return id, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID) error {
	if _, err := r.db.Exec(ctx, updateUserLastLoginSQL, pgconv.UUIDToPgtype(userID)); err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}
