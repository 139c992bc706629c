package store

import (
	"errors"
	"strings"
	"time"

	"leftoversaver/internal/domain/offer"

	"github.com/google/uuid"
)

var ErrEmptyAddress = errors.New("store address cannot be empty")

// Store is a partner's pickup location. Its id is the owning account's id;
// one store per partner. Read-only from the ranking side.
type Store struct {
	id         uuid.UUID
	address    string
	contact    string
	categories offer.Categories
	coord      *offer.Coordinate
	createdAt  time.Time
	updatedAt  time.Time
}

func NewStore(ownerID uuid.UUID, address, contact string, categories offer.Categories, coord *offer.Coordinate) (*Store, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, ErrEmptyAddress
	}
	return &Store{
		id:         ownerID,
		address:    address,
		contact:    strings.TrimSpace(contact),
		categories: categories,
		coord:      coord,
	}, nil
}

func ReconstructStore(
	id uuid.UUID,
	address, contact string,
	categories offer.Categories,
	coord *offer.Coordinate,
	createdAt, updatedAt time.Time,
) *Store {
	return &Store{
		id:         id,
		address:    address,
		contact:    contact,
		categories: categories,
		coord:      coord,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (s *Store) ID() uuid.UUID                 { return s.id }
func (s *Store) Address() string               { return s.address }
func (s *Store) Contact() string               { return s.contact }
func (s *Store) Categories() offer.Categories  { return s.categories }
func (s *Store) Location() *offer.Coordinate   { return s.coord }
func (s *Store) CreatedAt() time.Time          { return s.createdAt }
func (s *Store) UpdatedAt() time.Time          { return s.updatedAt }
