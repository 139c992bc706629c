package writerepo

import (
	"context"

	"leftoversaver/internal/domain/store"
	"leftoversaver/internal/infra"
	"leftoversaver/internal/infra/db"
	"leftoversaver/internal/pkg/pgconv"
)

const upsertStoreSQL = `
INSERT INTO stores (id, address, contact, categories, lat, lng)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (id) DO UPDATE SET
    address    = EXCLUDED.address,
    contact    = EXCLUDED.contact,
    categories = EXCLUDED.categories,
    lat        = EXCLUDED.lat,
    lng        = EXCLUDED.lng,
    updated_at = now()
`

type StoreRepository struct {
	db db.DBTX
}

func NewStoreRepository(dbtx db.DBTX) *StoreRepository {
	return &StoreRepository{db: dbtx}
}

func (r *StoreRepository) Upsert(ctx context.Context, s *store.Store) error {
	var lat, lng *float64
	if coord := s.Location(); coord != nil {
		latV, lngV := coord.Lat(), coord.Lng()
		lat, lng = &latV, &lngV
	}

	_, err := r.db.Exec(ctx, upsertStoreSQL,
		pgconv.UUIDToPgtype(s.ID()),
		s.Address(),
		s.Contact(),
		[]string(s.Categories()),
		pgconv.Float64PtrToPgtype(lat),
		pgconv.Float64PtrToPgtype(lng),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to upsert store", err)
	}
	return nil
}
