package commands_test

import (
	"errors"
	"log/slog"
	"strings"
	"testing"

	"carcheck/internal/core/application/usecases/commands"
	"carcheck/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateBookingCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := testBookingCommand(t)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	sender := &fakeSender{}
	h := commands.NewCreateBookingCommandHandler(
		factory, newTestDispatcher(sender), newTestPipeline(t), slog.New(slog.DiscardHandler))

	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(result.Number.String(), "CC-"))
	assert.True(t, result.Notifications.CustomerSent)
	assert.True(t, result.Notifications.InspectorSent)
	assert.Equal(t, []string{"jane@example.com", testInspectorAddress}, sender.sent)

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateBookingCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	var cmd commands.CreateBookingCommand // not constructed properly

	factory := new(MockOrderUoWFactory)
	h := commands.NewCreateBookingCommandHandler(
		factory, newTestDispatcher(&fakeSender{}), newTestPipeline(t), slog.New(slog.DiscardHandler))

	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateBookingCommandHandler_Handle_PersistFailure_SkipsNotifications(t *testing.T) {
	ctx := t.Context()
	cmd := testBookingCommand(t)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
			Return(errors.New("connection reset")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	sender := &fakeSender{}
	h := commands.NewCreateBookingCommandHandler(
		factory, newTestDispatcher(sender), newTestPipeline(t), slog.New(slog.DiscardHandler))

	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrPersistence)
	assert.Empty(t, sender.sent, "no notification may go out for an unpersisted order")

	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreateBookingCommandHandler_Handle_CustomerNotificationFailure_StillSucceeds(t *testing.T) {
	ctx := t.Context()
	cmd := testBookingCommand(t)

	repo := new(MockOrderRepository)
	repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once()

	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	sender := &fakeSender{failTo: "jane@example.com"}
	h := commands.NewCreateBookingCommandHandler(
		factory, newTestDispatcher(sender), newTestPipeline(t), slog.New(slog.DiscardHandler))

	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err, "a failed confirmation email must not fail the booking")

	assert.False(t, result.Notifications.CustomerSent)
	assert.Error(t, result.Notifications.CustomerErr)
	assert.True(t, result.Notifications.InspectorSent)
}
