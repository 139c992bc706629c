package commands

import (
	"context"
	"strings"

	"leftoversaver/internal/pkg/errs"
	"leftoversaver/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrEmptyDeviceToken = errs.New("empty device token")

type NotificationCommands interface {
	RegisterDeviceToken(ctx context.Context, userID uuid.UUID, token string) error
}

type notificationUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewNotificationUseCase(uow shared.UnitOfWork) NotificationCommands {
	return &notificationUseCaseImpl{uow: uow}
}

func (uc *notificationUseCaseImpl) RegisterDeviceToken(ctx context.Context, userID uuid.UUID, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrEmptyDeviceToken
	}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Notifications().SaveDeviceToken(ctx, userID, token)
	})
	if err != nil {
		return mapTransactionError(err)
	}
	return nil
}
