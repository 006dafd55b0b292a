package commands

import (
	"context"

	"premium-reconciler/internal/domain/user"
	"premium-reconciler/internal/pkg/clock"
	"premium-reconciler/internal/usecase/shared"
)

type RegisterUserRequest struct {
	Owner     user.ID
	Username  string
	FirstName string
}

type userCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewUserCommands(uow shared.UnitOfWork, clk clock.Clock) UserCommands {
	return &userCommandsImpl{uow: uow, clock: clk}
}

func (c *userCommandsImpl) RegisterUser(ctx context.Context, req RegisterUserRequest) (*shared.UserSnapshot, error) {
	profile, err := user.NewProfile(req.Owner, req.Username, req.FirstName, c.clock.Now())
	if err != nil {
		return nil, err
	}

	var snap *shared.UserSnapshot
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		snap, err = tx.Users().UpsertProfile(ctx, tx.DB(), profile)
		return err
	})
	if err != nil {
		return nil, err
	}
	return snap, nil
}
