package readstore

import (
	"context"

	"leftoversaver/internal/infra"
	"leftoversaver/internal/infra/db"
	"leftoversaver/internal/pkg/pgconv"
	"leftoversaver/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const findUserByIDSQL = `
SELECT id, email, role, display_name, photo_url, is_active
FROM users
WHERE id = $1
`

const findUserByEmailSQL = `
SELECT id, email, role, display_name, photo_url, is_active, password_hash
FROM users
WHERE email = $1
`

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var (
		view     queries.AuthorizedUserView
		rowID    pgtype.UUID
		photoURL pgtype.Text
	)
	err := r.db.QueryRow(ctx, findUserByIDSQL, pgconv.UUIDToPgtype(id)).Scan(
		&rowID, &view.Email, &view.Role, &view.DisplayName, &photoURL, &view.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	view.ID = uuid.UUID(rowID.Bytes)
	view.PhotoURL = pgconv.StringPtrFromPgtype(photoURL)
	return &view, nil
}

// FindByEmail also returns the stored password hash for credential checks.
func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	var (
		view         queries.AuthorizedUserView
		rowID        pgtype.UUID
		photoURL     pgtype.Text
		passwordHash string
	)
	err := r.db.QueryRow(ctx, findUserByEmailSQL, email).Scan(
		&rowID, &view.Email, &view.Role, &view.DisplayName, &photoURL, &view.IsActive, &passwordHash,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}

	view.ID = uuid.UUID(rowID.Bytes)
	view.PhotoURL = pgconv.StringPtrFromPgtype(photoURL)
	return &view, passwordHash, nil
}
