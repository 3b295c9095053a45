package commands_test

import (
	"testing"
	"time"

	"railmeals/internal/core/application/usecases/commands"
	"railmeals/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createDeliveryPersonCommand(t *testing.T) commands.CreateDeliveryPersonCommand {
	t.Helper()
	phone, err := kernel.NewPhone("9123456780")
	require.NoError(t, err)
	cmd, err := commands.NewCreateDeliveryPersonCommand(
		kernel.NewUUID(), kernel.NewUUID(), "Suresh Yadav", phone,
		time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), "",
	)
	require.NoError(t, err)
	return cmd
}

func TestCreateDeliveryPersonCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := createDeliveryPersonCommand(t)

	repo := new(MockDeliveryPersonRepository)
	uow := new(MockRosterUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryPersonRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*roster.DeliveryPerson")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRosterUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateDeliveryPersonCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateDeliveryPersonCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateDeliveryPersonCommand{} // not constructed properly
	h := commands.NewCreateDeliveryPersonCommandHandler(new(MockRosterUoWFactory))
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestNewCreateDeliveryPersonCommand_RequiresName(t *testing.T) {
	phone, err := kernel.NewPhone("9123456780")
	require.NoError(t, err)
	_, err = commands.NewCreateDeliveryPersonCommand(
		kernel.NewUUID(), kernel.NewUUID(), "", phone,
		time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), "",
	)
	require.Error(t, err)
}
