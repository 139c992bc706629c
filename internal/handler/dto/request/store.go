package request

import (
	"leftoversaver/internal/domain/offer"
	"leftoversaver/internal/domain/store"

	"github.com/google/uuid"
)

type UpsertStoreRequest struct {
	Address    string   `json:"address" binding:"required,max=300"`
	Contact    string   `json:"contact,omitempty" binding:"max=100"`
	Categories []string `json:"categories,omitempty"`
	Lat        *float64 `json:"lat,omitempty"`
	Lng        *float64 `json:"lng,omitempty"`
}

func (r *UpsertStoreRequest) ToDomain(ownerID uuid.UUID) (*store.Store, error) {
	var coord *offer.Coordinate
	if r.Lat != nil && r.Lng != nil {
		c, err := offer.NewCoordinate(*r.Lat, *r.Lng)
		if err != nil {
			return nil, err
		}
		coord = &c
	}

	return store.NewStore(ownerID, r.Address, r.Contact, offer.NewCategories(r.Categories), coord)
}
