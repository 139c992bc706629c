package commands

import (
	"context"

	reqdto "leftoversaver/internal/handler/dto/request"
	"leftoversaver/internal/pkg/errs"
	"leftoversaver/internal/usecase/queries"
	"leftoversaver/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateOfferResult struct {
	Offer *queries.OfferView
}

type OfferCommands interface {
	CreateOffer(ctx context.Context, req reqdto.CreateOfferRequest, storeID uuid.UUID) (*CreateOfferResult, error)
}

type offerUseCaseImpl struct {
	uow          shared.UnitOfWork
	offerQueries queries.OfferQueries
}

func NewOfferUseCase(uow shared.UnitOfWork, offerQueries queries.OfferQueries) OfferCommands {
	return &offerUseCaseImpl{
		uow:          uow,
		offerQueries: offerQueries,
	}
}

func (uc *offerUseCaseImpl) CreateOffer(ctx context.Context, req reqdto.CreateOfferRequest, storeID uuid.UUID) (*CreateOfferResult, error) {
	entity, err := req.ToDomain(storeID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, txErr := tx.Offers().Create(ctx, entity)
		if txErr != nil {
			return txErr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, mapTransactionError(err)
	}

	view, err := uc.offerQueries.GetByID(ctx, createdID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return &CreateOfferResult{Offer: view}, nil
}
