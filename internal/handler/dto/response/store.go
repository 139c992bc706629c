package response

import (
	"time"

	"leftoversaver/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type StoreResponse struct {
	ID         uuid.UUID `json:"id"`
	Address    string    `json:"address"`
	Contact    string    `json:"contact"`
	Categories []string  `json:"categories,omitempty"`
	Lat        *float64  `json:"lat,omitempty"`
	Lng        *float64  `json:"lng,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func FromStoreView(rm *queries.StoreView) *StoreResponse {
	var resp StoreResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}
