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

const findStoreByIDSQL = `
SELECT id, address, contact, categories, lat, lng, created_at, updated_at
FROM stores
WHERE id = $1
`

type StoreReadStore struct {
	db db.DBTX
}

func NewStoreReadStore(dbtx db.DBTX) *StoreReadStore {
	return &StoreReadStore{db: dbtx}
}

func (r *StoreReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.StoreView, error) {
	var (
		view       queries.StoreView
		rowID      pgtype.UUID
		categories []string
		lat, lng   pgtype.Float8
		createdAt  pgtype.Timestamptz
		updatedAt  pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, findStoreByIDSQL, pgconv.UUIDToPgtype(id)).Scan(
		&rowID, &view.Address, &view.Contact, &categories,
		&lat, &lng, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("store not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find store by ID", err)
	}

	view.ID = uuid.UUID(rowID.Bytes)
	view.Categories = categories
	view.Lat = pgconv.Float64PtrFromPgtype(lat)
	view.Lng = pgconv.Float64PtrFromPgtype(lng)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}
