package commands

import (
	"context"

	reqdto "leftoversaver/internal/handler/dto/request"
	"leftoversaver/internal/pkg/errs"
	"leftoversaver/internal/usecase/queries"
	"leftoversaver/internal/usecase/shared"

	"github.com/google/uuid"
)

type UpsertStoreResult struct {
	Store *queries.StoreView
}

type StoreCommands interface {
	UpsertStore(ctx context.Context, req reqdto.UpsertStoreRequest, ownerID uuid.UUID) (*UpsertStoreResult, error)
}

type storeUseCaseImpl struct {
	uow          shared.UnitOfWork
	storeQueries queries.StoreQueries
}

func NewStoreUseCase(uow shared.UnitOfWork, storeQueries queries.StoreQueries) StoreCommands {
	return &storeUseCaseImpl{
		uow:          uow,
		storeQueries: storeQueries,
	}
}

func (uc *storeUseCaseImpl) UpsertStore(ctx context.Context, req reqdto.UpsertStoreRequest, ownerID uuid.UUID) (*UpsertStoreResult, error) {
	entity, err := req.ToDomain(ownerID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Stores().Upsert(ctx, entity)
	})
	if err != nil {
		return nil, mapTransactionError(err)
	}

	view, err := uc.storeQueries.GetByID(ctx, ownerID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return &UpsertStoreResult{Store: view}, nil
}
